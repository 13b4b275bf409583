// Package pmlog provides a pmbsf.Host decorator that logs exception state on
// every ErrorCheck call before forwarding to a wrapped Host.
package pmlog

import (
	"log"

	"github.com/Alfredisabug/libPMBSF/pmbsf"
)

// Logger wraps a pmbsf.Host, logging every ErrorCheck call's exception bits
// before forwarding to base. All other methods pass through unchanged.
type Logger struct {
	logger *log.Logger
	base   pmbsf.Host
}

// NewLogger returns a Logger that writes to l (stdlib *log.Logger, so its
// flags/prefix/output are controlled the normal way) and forwards every call
// to base.
func NewLogger(l *log.Logger, base pmbsf.Host) *Logger {
	return &Logger{logger: l, base: base}
}

func (l *Logger) GetSDAData() (byte, bool) { return l.base.GetSDAData() }
func (l *Logger) FrameCheck(frame []byte) bool { return l.base.FrameCheck(frame) }
func (l *Logger) CheckPEC(frame []byte) bool { return l.base.CheckPEC(frame) }
func (l *Logger) SpecialCmdExec(frame []byte) { l.base.SpecialCmdExec(frame) }
func (l *Logger) PutDataToSDA(b byte) bool { return l.base.PutDataToSDA(b) }
func (l *Logger) CmdExec(frame []byte) bool { return l.base.CmdExec(frame) }

// ErrorCheck logs exception (using its wire-stable bit names, "NO_EXCEP"
// when clean) and then forwards to base, returning base's verdict unchanged.
func (l *Logger) ErrorCheck(exception pmbsf.Exception) bool {
	l.logger.Printf("pmbsf: error_check exception=%s", exception)
	return l.base.ErrorCheck(exception)
}
