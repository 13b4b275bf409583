package pmcmd

import "testing"

func TestFrameCheckUnknownCommand(t *testing.T) {
	tbl := NewCommandTable()
	if tbl.FrameCheck([]byte{0x01}) {
		t.Fatal("FrameCheck on unregistered command = true, want false")
	}
}

func TestFrameCheckLengthBounds(t *testing.T) {
	tbl := NewCommandTable()
	tbl.Register(0x20, Command{MinLen: 2, MaxLen: 3, Exec: func([]byte) bool { return true }})

	cases := []struct {
		frame []byte
		want  bool
	}{
		{[]byte{0x20}, false},            // too short
		{[]byte{0x20, 0x01}, true},       // min bound
		{[]byte{0x20, 0x01, 0x02}, true}, // max bound
		{[]byte{0x20, 0, 0, 0}, false},   // too long
	}
	for _, c := range cases {
		if got := tbl.FrameCheck(c.frame); got != c.want {
			t.Errorf("FrameCheck(%x) = %v, want %v", c.frame, got, c.want)
		}
	}
}

func TestCmdExecDispatchesRegisteredCommand(t *testing.T) {
	tbl := NewCommandTable()
	var called []byte
	tbl.Register(0x30, Command{
		MinLen: 1, MaxLen: 4,
		Exec: func(frame []byte) bool {
			called = append([]byte(nil), frame...)
			return true
		},
	})

	if !tbl.CmdExec([]byte{0x30, 0xAA}) {
		t.Fatal("CmdExec = false, want true")
	}
	if string(called) != "\x30\xaa" {
		t.Fatalf("Exec called with %x, want 30aa", called)
	}
}

func TestCmdExecRefusesSpecialCommand(t *testing.T) {
	tbl := NewCommandTable()
	ran := false
	tbl.Register(0x40, Command{MinLen: 1, MaxLen: 1, Special: true, Exec: func([]byte) bool { ran = true; return true }})

	if tbl.CmdExec([]byte{0x40}) {
		t.Fatal("CmdExec on a special command = true, want false")
	}
	if ran {
		t.Fatal("Exec ran via CmdExec for a special command")
	}
}

func TestSpecialCmdExecDispatchesOnlySpecialCommands(t *testing.T) {
	tbl := NewCommandTable()
	ran := false
	tbl.Register(0x50, Command{MinLen: 1, MaxLen: 1, Exec: func([]byte) bool { ran = true; return true }})

	tbl.SpecialCmdExec([]byte{0x50}) // not special, must be a no-op
	if ran {
		t.Fatal("SpecialCmdExec ran a non-special command")
	}

	tbl.Register(0x51, Command{MinLen: 1, MaxLen: 1, Special: true, Exec: func([]byte) bool { ran = true; return true }})
	tbl.SpecialCmdExec([]byte{0x51})
	if !ran {
		t.Fatal("SpecialCmdExec did not run a registered special command")
	}
}

func TestLookupEmptyFrame(t *testing.T) {
	tbl := NewCommandTable()
	if tbl.FrameCheck(nil) {
		t.Fatal("FrameCheck(nil) = true, want false")
	}
	if tbl.CmdExec(nil) {
		t.Fatal("CmdExec(nil) = true, want false")
	}
}
