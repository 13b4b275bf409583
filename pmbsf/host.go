package pmbsf

// Host is the set of capabilities a handler is generic over: the hardware
// byte-level I/O and the application-level checking/execution that the
// handler's state machine invokes at most once per method per Step call. A
// device binds one Host implementation to each Handler it constructs.
//
// None of these methods may block for an unbounded time; Step itself never
// blocks, and a Host that blocks inside one of these methods defeats that
// guarantee.
type Host interface {
	// GetSDAData reports whether a new received byte is available and, if
	// so, returns it with ok=true. It is called zero or one time per Step
	// while the handler is in StateReceive.
	GetSDAData() (b byte, ok bool)

	// FrameCheck reports whether frame is a recognized, well-formed command.
	// It must be pure relative to its argument.
	FrameCheck(frame []byte) bool

	// CheckPEC reports whether frame's trailing byte is a valid Packet Error
	// Code for the rest of frame. Only called when PEC checking is enabled.
	CheckPEC(frame []byte) bool

	// SpecialCmdExec begins asynchronous handling of frame. It must not
	// block; the host calls (*Handler).NotifySpecialCmdEnd once the async
	// work completes.
	SpecialCmdExec(frame []byte)

	// PutDataToSDA reports whether b was accepted onto the line. False
	// indicates backpressure; the handler stops draining for this Step.
	PutDataToSDA(b byte) bool

	// CmdExec executes frame as a normal (non-special) command. Its return
	// value is reserved for future use; the handler does not act on it.
	CmdExec(frame []byte) bool

	// ErrorCheck reports whether the host has consumed/acknowledged
	// exception and the handler may clear its registers and return to
	// StateIdle.
	ErrorCheck(exception Exception) bool
}
