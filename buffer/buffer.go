// Package buffer provides a fixed-capacity byte buffer used as both the RX
// accumulator and the TX queue of a PMBus slave-frame handler.
package buffer

// Buffer is a fixed-capacity mutable byte queue. The backing storage is
// bound once at Init and owned by the caller; Buffer never allocates.
//
// The top slot of storage is reserved: Len never reaches Cap, so the usable
// payload of a Buffer of capacity n is n-1 bytes. This mirrors the original
// PMBus slave-frame implementation's buffer, which leaves headroom for a PEC
// byte or terminator some hosts expect.
//
// A Buffer is filled by Append and drained from the front by Take. RX usage
// only ever appends (Bytes returns the whole accumulated frame, never
// wrapping since head stays 0 until the next Reset); TX usage is filled by
// Append while idle and then drained byte by byte by Take once the handler
// starts putting bytes on the wire — exactly the two roles spec'd for the
// buffer's cursor. storage is treated as a ring so that a partial drain
// followed by further Appends never runs past the end of storage.
type Buffer struct {
	storage []byte
	head    int // index of the oldest valid byte
	len     int // number of valid bytes, starting at head, wrapping mod cap
}

// Init binds storage as the buffer's backing array, zeroes it and resets the
// buffer to empty. storage's length becomes the buffer's capacity for the
// lifetime of the buffer.
func (b *Buffer) Init(storage []byte) {
	for i := range storage {
		storage[i] = 0
	}
	b.storage = storage
	b.head = 0
	b.len = 0
}

// Cap returns the buffer's capacity, i.e. len(storage) passed to Init.
func (b *Buffer) Cap() int {
	return len(b.storage)
}

// Len returns the number of valid bytes currently held.
func (b *Buffer) Len() int {
	return b.len
}

// Append writes d to the back of the buffer. It returns false and leaves the
// buffer unchanged if the buffer already holds capacity-1 bytes, its maximum
// usable length.
func (b *Buffer) Append(d byte) bool {
	if b.len >= len(b.storage)-1 {
		return false
	}
	b.storage[(b.head+b.len)%len(b.storage)] = d
	b.len++
	return true
}

// Peek returns the oldest byte in the buffer without removing it. It
// returns (0, false) if the buffer is empty.
func (b *Buffer) Peek() (byte, bool) {
	if b.len == 0 {
		return 0, false
	}
	return b.storage[b.head], true
}

// Take removes and returns the oldest byte in the buffer. It returns
// (0, false) if the buffer is empty.
func (b *Buffer) Take() (byte, bool) {
	if b.len == 0 {
		return 0, false
	}
	d := b.storage[b.head]
	b.head = (b.head + 1) % len(b.storage)
	b.len--
	return d, true
}

// Reset empties the buffer. storage contents are left as-is.
func (b *Buffer) Reset() {
	b.head = 0
	b.len = 0
}

// Bytes returns the valid content of the buffer in order. The returned slice
// aliases the buffer's backing storage and is only valid until the next call
// to Append, Take or Reset. Bytes only supports the non-wrapped case
// (head+len within storage's bounds), which holds for every caller in this
// module: the RX buffer never calls Take/Peek, so its head stays 0 for its
// entire life between Resets.
func (b *Buffer) Bytes() []byte {
	return b.storage[b.head : b.head+b.len]
}
