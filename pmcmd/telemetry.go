package pmcmd

import "github.com/Alfredisabug/libPMBSF/pmtelemetry"

// Standard PMBus command codes for the telemetry read-back commands
// RegisterTelemetry wires up.
const (
	CmdReadVout        byte = 0x8B
	CmdReadIout        byte = 0x8C
	CmdReadTemperature byte = 0x8D
)

// TelemetrySource supplies the raw LINEAR11 register contents a device
// backs its telemetry commands with.
type TelemetrySource interface {
	Vout() uint16
	Iout() uint16
	Temperature() uint16
}

// RegisterTelemetry registers READ_VOUT, READ_IOUT and READ_TEMPERATURE
// against src, decoding each with pmtelemetry and handing the decoded
// physic.* value's string form to record. Every registered command is a
// command-code-only frame, optionally followed by a trailing PEC byte (the
// handler passes FrameCheck/CmdExec the raw received bytes, PEC included
// when PEC checking is enabled), so MinLen/MaxLen span 1-2.
func RegisterTelemetry(t *CommandTable, src TelemetrySource, record func(name, decoded string)) {
	t.Register(CmdReadVout, Command{
		MinLen: 1, MaxLen: 2,
		Exec: func(frame []byte) bool {
			record("READ_VOUT", pmtelemetry.DecodeVoltage(src.Vout()).String())
			return true
		},
	})
	t.Register(CmdReadIout, Command{
		MinLen: 1, MaxLen: 2,
		Exec: func(frame []byte) bool {
			record("READ_IOUT", pmtelemetry.DecodeCurrent(src.Iout()).String())
			return true
		},
	})
	t.Register(CmdReadTemperature, Command{
		MinLen: 1, MaxLen: 2,
		Exec: func(frame []byte) bool {
			record("READ_TEMPERATURE", pmtelemetry.DecodeTemperature(src.Temperature()).String())
			return true
		},
	})
}
