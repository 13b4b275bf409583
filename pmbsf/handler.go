package pmbsf

import (
	"sync/atomic"

	"github.com/Alfredisabug/libPMBSF/buffer"
)

// Handler is the nine-state cooperative PMBus slave-frame protocol state
// machine. It consumes bytes arriving on the serial data line, validates
// framing (optionally including PEC), dispatches the received command to a
// Host, and produces outgoing bytes when the master issues a read
// turn-around.
//
// Handler is constructed once via NewHandler, bound to a Host and a pair of
// RX/TX buffers, and is thereafter driven only through its notifier methods
// (safe to call from an ISR context) and Step (called by a host tick loop).
// It is never destroyed during normal operation.
type Handler struct {
	state atomic.Uint32 // State, atomic so NotifyStop can read it concurrently with Step

	event     eventRegister
	exception exceptionRegister

	rx, tx *buffer.Buffer

	pecEnabled atomic.Bool

	host Host
}

// NewHandler constructs a Handler bound to host, rx and tx. rx and tx must
// already be Init'd by the caller. The handler starts in StateIdle with no
// events or exceptions pending.
func NewHandler(host Host, rx, tx *buffer.Buffer, pecEnabled bool) *Handler {
	h := &Handler{
		rx:   rx,
		tx:   tx,
		host: host,
	}
	h.state.Store(uint32(StateIdle))
	h.pecEnabled.Store(pecEnabled)
	return h
}

// State returns the handler's current state.
func (h *Handler) State() State {
	return State(h.state.Load())
}

// Exception returns the handler's current exception bitset.
func (h *Handler) Exception() Exception {
	return h.exception.load()
}

func (h *Handler) setState(s State) {
	h.state.Store(uint32(s))
}

// Step performs the work of the current state and then at most one state
// transition. It never blocks. A host tick loop calls Step repeatedly; a
// state with no pending work simply returns until the next call.
func (h *Handler) Step() {
	switch h.State() {

	case StateIdle:
		switch {
		case h.event.has(EventFrameStart):
			h.tx.Reset()
			h.setState(StateReceive)
		case h.event.has(EventQuerySign):
			h.setState(StateWaitTrans)
		}

	case StateReceive:
		if b, ok := h.host.GetSDAData(); ok {
			if !h.rx.Append(b) {
				h.exception.set(BufferFull)
			}
		}
		switch {
		case h.exception.any():
			h.setState(StateErrorCheck)
		case h.event.has(EventQuerySign) || h.event.has(EventStopSign):
			h.setState(StateFrameCheck)
		}

	case StateFrameCheck:
		if h.pecEnabled.Load() {
			if !h.host.CheckPEC(h.rx.Bytes()) {
				h.exception.set(PECError)
			}
		}
		if !h.exception.any() {
			if !h.host.FrameCheck(h.rx.Bytes()) {
				h.exception.set(FrameCheckFail)
			}
		}
		if h.exception.any() {
			if h.event.has(EventStopSign) {
				h.setState(StateErrorCheck)
			}
			// else remain in StateFrameCheck until a stop arrives; a timeout
			// alone does not leave this state
		} else {
			h.setState(StateFrameCheckOK)
		}

	case StateFrameCheckOK:
		if h.event.has(EventSpecialCmd) {
			h.host.SpecialCmdExec(h.rx.Bytes())
			h.event.set(EventSpecialCmdInWaiting)
		}
		switch {
		case h.event.has(EventSpecialCmdInWaiting):
			h.setState(StateSpecialCmdInWaiting)
		case h.event.has(EventQuerySign):
			h.setState(StateWaitTrans)
		default:
			h.setState(StateExecCmd)
		}

	case StateSpecialCmdInWaiting:
		if h.event.has(EventSpecialCmdEnd) {
			if h.event.has(EventQuerySign) {
				h.setState(StateWaitTrans)
			} else {
				h.setState(StateExecCmd)
			}
		}
		if h.exception.any() {
			h.setState(StateErrorCheck)
		}

	case StateExecCmd:
		h.host.CmdExec(h.rx.Bytes())
		h.setState(StateErrorCheck)

	case StateWaitTrans:
		for h.tx.Len() > 0 {
			b, _ := h.tx.Peek()
			if !h.host.PutDataToSDA(b) {
				break
			}
			h.tx.Take()
		}
		if h.exception.any() || h.event.has(EventStopSign) {
			if h.tx.Len() > 0 {
				h.exception.set(SendNotComplete)
			}
			h.setState(StateErrorCheck)
		}

	case StateErrorCheck:
		if h.host.ErrorCheck(h.exception.load()) {
			h.exception.clear()
			h.event.clear()
			h.rx.Reset()
			h.setState(StateIdle)
		}
		// else remain in StateErrorCheck until the host is done handling it

	case StateHalt:
		// Exclusive equality test, not a set-membership test: reset from
		// HALT requires the reset flag alone to be set. This is an
		// intentional departure from the bit-test idiom used by every other
		// state, preserved from the original implementation.
		switch h.event.load() {
		case EventReset:
			h.setState(StateIdle)
		case EventStopSign:
			h.setState(StateErrorCheck)
		}

	default:
		h.exception.set(Halt)
	}
}

// NotifyFrameStart notifies the handler that a PMBus START addressed to this
// slave was detected. Safe to call from an ISR context.
func (h *Handler) NotifyFrameStart() {
	h.event.set(EventFrameStart)
}

// NotifySpecialCmd notifies the handler that the received command was
// recognized as special, requiring asynchronous completion. Safe to call
// from an ISR context.
func (h *Handler) NotifySpecialCmd() {
	h.event.set(EventSpecialCmd)
}

// NotifyQuery notifies the handler that the master issued a repeated start
// plus read bit (it wants to read). Safe to call from an ISR context.
func (h *Handler) NotifyQuery() {
	h.event.set(EventQuerySign)
}

// NotifySpecialCmdEnd notifies the handler that a previously dispatched
// special command's asynchronous execution has completed. Safe to call from
// an ISR context.
func (h *Handler) NotifySpecialCmdEnd() {
	h.event.set(EventSpecialCmdEnd)
}

// NotifyReset requests a software reset of the handler. Safe to call from an
// ISR context.
func (h *Handler) NotifyReset() {
	h.event.set(EventReset)
}

// NotifyStop notifies the handler that a PMBus STOP was detected. It is a
// no-op while the handler is idle, preventing line noise between
// transactions from producing spurious transitions. Safe to call from an
// ISR context.
func (h *Handler) NotifyStop() {
	if h.State() == StateIdle {
		return
	}
	h.event.set(EventStopSign)
}

// NotifyTimeout notifies the handler of an external timeout source. When
// fired is true, both the time_out event and the TIME_OUT exception are set;
// when false, this is a no-op. Safe to call from an ISR context.
func (h *Handler) NotifyTimeout(fired bool) {
	if !fired {
		return
	}
	h.event.set(EventTimeOut)
	h.exception.set(TimeOut)
}

// SetUsePEC enables or disables PEC checking in StateFrameCheck. Safe to
// call from an ISR context.
func (h *Handler) SetUsePEC(used bool) {
	h.pecEnabled.Store(used)
}

// PutTransmitByte appends d to the TX buffer, returning whether it fit. Safe
// to call from any context, but all PutTransmitByte calls for a frame must
// complete before the handler enters StateWaitTrans; Step's draining of the
// TX buffer races with concurrent appends otherwise.
func (h *Handler) PutTransmitByte(d byte) bool {
	return h.tx.Append(d)
}
