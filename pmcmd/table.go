// Package pmcmd provides a reference command dispatch table that a device
// can wire into its pmbsf.Host implementation to supply FrameCheck, CmdExec
// and SpecialCmdExec without hand-writing a switch over command codes. It is
// optional: pmbsf has no dependency on this package.
package pmcmd

// Command describes one registered PMBus command.
type Command struct {
	// MinLen and MaxLen bound the accepted frame length, inclusive, command
	// code byte included.
	MinLen, MaxLen int

	// Special marks this as a special command: CommandTable dispatches it
	// through SpecialCmdExec instead of CmdExec.
	Special bool

	// Exec runs the command against frame and reports success. For a special
	// command, the caller is responsible for eventually signalling
	// completion back to the handler via (*pmbsf.Handler).NotifySpecialCmdEnd;
	// CommandTable itself has no handler reference to do this automatically.
	Exec func(frame []byte) bool
}

// CommandTable is a registry of Command keyed by PMBus command code (a
// frame's first byte). It implements the FrameCheck, CmdExec and
// SpecialCmdExec methods of pmbsf.Host.
type CommandTable struct {
	commands map[byte]Command
}

// NewCommandTable returns an empty CommandTable.
func NewCommandTable() *CommandTable {
	return &CommandTable{commands: make(map[byte]Command)}
}

// Register adds or replaces the Command for code.
func (t *CommandTable) Register(code byte, cmd Command) {
	t.commands[code] = cmd
}

func (t *CommandTable) lookup(frame []byte) (Command, bool) {
	if len(frame) == 0 {
		return Command{}, false
	}
	cmd, ok := t.commands[frame[0]]
	return cmd, ok
}

// FrameCheck reports whether frame's command code is registered and frame's
// length falls within that command's declared bounds.
func (t *CommandTable) FrameCheck(frame []byte) bool {
	cmd, ok := t.lookup(frame)
	if !ok {
		return false
	}
	return len(frame) >= cmd.MinLen && len(frame) <= cmd.MaxLen
}

// CmdExec looks up frame's command and runs it if it is not a special
// command. It reports false (and runs nothing) if the command is unknown or
// itself marked Special — special commands are only ever run from
// SpecialCmdExec.
func (t *CommandTable) CmdExec(frame []byte) bool {
	cmd, ok := t.lookup(frame)
	if !ok || cmd.Special {
		return false
	}
	return cmd.Exec(frame)
}

// SpecialCmdExec looks up frame's command and, if it is registered and
// marked Special, runs it. Unknown or non-special commands are silently
// ignored, matching pmbsf.Host.SpecialCmdExec's no-return-value contract.
func (t *CommandTable) SpecialCmdExec(frame []byte) {
	cmd, ok := t.lookup(frame)
	if !ok || !cmd.Special {
		return
	}
	cmd.Exec(frame)
}
