// This file is part of gme8.
//
// gme8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gme8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gme8.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gme8/test"
)

func program(t *testing.T, data []byte) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "program.bin")
	test.DemandSuccess(t, os.WriteFile(fn, data, 0o644))
	return fn
}

func TestRun(t *testing.T) {
	// LD A,$80; OUT ($AA),A; RET
	fn := program(t, []byte{0x3e, 0x80, 0xd3, 0xaa, 0xc9})
	wav := filepath.Join(t.TempDir(), "beeper.wav")
	dot := filepath.Join(t.TempDir(), "memory.dot")

	w := &test.CompareWriter{}
	r := launch([]string{"run", "-cpu", "kss", "-load", "$0100", "-irq", "0", "-frames", "2", "-wav", wav, "-memviz", dot, fn}, w)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, w.Contains("2 frames, 0 interrupts, 0 illegal\n"))

	st, err := os.Stat(wav)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Size() > 44)

	st, err = os.Stat(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Size() > 0)
}

func TestRunIdle(t *testing.T) {
	fn := program(t, []byte{0xc9})

	w := &test.CompareWriter{}
	r := launch([]string{"-cpu", "gbs", "-load", "$0400", "-irq", "0", "-idle", "-frames", "100", fn}, w)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, w.Contains("1 frames"))
}

func TestDigest(t *testing.T) {
	// LD A,$80; OUT ($AA),A; RET
	fn := program(t, []byte{0x3e, 0x80, 0xd3, 0xaa, 0xc9})
	args := []string{"run", "-cpu", "kss", "-load", "256", "-irq", "0", "-frames", "3", "-digest", fn}

	a := &test.CompareWriter{}
	test.ExpectEquality(t, launch(args, a), exitOK)
	test.ExpectSuccess(t, a.Contains("digest: "))

	// the run is deterministic
	b := &test.CompareWriter{}
	test.ExpectEquality(t, launch(args, b), exitOK)
	test.ExpectEquality(t, a.String(), b.String())
}

func TestDisasm(t *testing.T) {
	// LDA #$05; KIL
	fn := program(t, []byte{0xa9, 0x05, 0x02})

	w := &test.CompareWriter{}
	r := launch([]string{"disasm", "-count", "2", fn}, w)
	test.ExpectEquality(t, r, exitOK)
	test.ExpectSuccess(t, w.Contains("$8000 LDA  #$05"))
	test.ExpectSuccess(t, w.Contains("$8002 KIL"))

	w.Clear()
	r = launch([]string{"disasm", "-cpu", "gbs", fn}, w)
	test.ExpectEquality(t, r, exitModeError)
	test.ExpectSuccess(t, w.Contains("no disassembly for GBS"))
}

func TestErrors(t *testing.T) {
	fn := program(t, []byte{0x00})

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"run", "-cpu", "vcs", fn}, w), exitModeError)
	test.ExpectEquality(t, launch([]string{"run"}, w), exitModeError)
	test.ExpectEquality(t, launch([]string{"run", "-load", "$zz", fn}, w), exitModeError)

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-version"}, w), exitOK)
	test.ExpectSuccess(t, w.Contains("gme8 "))

	w.Clear()
	test.ExpectEquality(t, launch([]string{"-help"}, w), exitOK)
	test.ExpectSuccess(t, w.Contains("available sub-modes: RUN, DEBUG, DISASM, PERFORMANCE"))
}
