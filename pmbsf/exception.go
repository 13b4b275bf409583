package pmbsf

import "sync/atomic"

// Exception is a sticky, OR-accumulated bitset of conditions raised by the
// handler's state machine. Bits persist until the host's ErrorCheck callback
// acknowledges them and the handler clears the register on its way back to
// StateIdle.
//
// Bit values are wire-stable and must be preserved exactly for hosts that
// log or persist them.
type Exception uint32

const (
	NoExcep         Exception = 0x00
	TimeOut         Exception = 0x01
	FrameCheckFail  Exception = 0x02
	SendNotComplete Exception = 0x04
	Halt            Exception = 0x10
	BufferFull      Exception = 0x20
	PECError        Exception = 0x40
)

// Has reports whether all bits of v are set in e.
func (e Exception) Has(v Exception) bool {
	return e&v == v
}

// String names the set exception bits, most significant first, joined by
// "|". It returns "NO_EXCEP" for a zero value.
func (e Exception) String() string {
	if e == NoExcep {
		return "NO_EXCEP"
	}
	var s string
	add := func(v Exception, name string) {
		if e&v != 0 {
			if s != "" {
				s += "|"
			}
			s += name
		}
	}
	add(PECError, "PEC_ERROR")
	add(BufferFull, "BUFFER_FULL")
	add(Halt, "HALT")
	add(SendNotComplete, "SEND_NOT_COMPLETE")
	add(FrameCheckFail, "FRAME_CHECK_FAIL")
	add(TimeOut, "TIME_OUT")
	return s
}

// exceptionRegister is an atomic word holding an Exception bitset.
type exceptionRegister struct {
	bits atomic.Uint32
}

func (r *exceptionRegister) set(e Exception) {
	for {
		old := r.bits.Load()
		if Exception(old)&e == e {
			return
		}
		if r.bits.CompareAndSwap(old, old|uint32(e)) {
			return
		}
	}
}

func (r *exceptionRegister) load() Exception {
	return Exception(r.bits.Load())
}

func (r *exceptionRegister) any() bool {
	return r.bits.Load() != 0
}

func (r *exceptionRegister) clear() {
	r.bits.Store(0)
}
