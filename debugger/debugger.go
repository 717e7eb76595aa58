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


package debugger

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/jetsetilly/gme8/debugger/easyterm"
	"github.com/jetsetilly/gme8/disassembly"
	"github.com/jetsetilly/gme8/harness"
	"github.com/jetsetilly/gme8/logger"
)

// MaxFrames is the default limit on the number of frames a continue command
// will run for.
const MaxFrames = 600

// Debugger is the interactive stepper for a harness.
type Debugger struct {
	h   *harness.Harness
	in  *bufio.Reader
	out io.Writer

	breaks breakpoints

	// the most frames the continue command will run for
	MaxFrames int
}

// NewDebugger is the preferred method of initialisation for the Debugger
// type.
func NewDebugger(h *harness.Harness, in io.Reader, out io.Writer) *Debugger {
	return &Debugger{
		h:         h,
		in:        bufio.NewReader(in),
		out:       out,
		breaks:    newBreakpoints(),
		MaxFrames: MaxFrames,
	}
}

// AddBreak adds a breakpoint at the address.
func (dbg *Debugger) AddBreak(address uint16) {
	dbg.breaks.add(address)
}

// Loop reads and runs commands until the quit command or the end of the
// input.
func (dbg *Debugger) Loop() error {
	if err := dbg.printState(); err != nil {
		return err
	}

	for {
		key, err := dbg.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("debugger: %w", err)
		}

		switch key {
		case 'q', easyterm.KeyInterrupt:
			return nil
		case easyterm.KeySuspend:
			easyterm.SuspendProcess()
			continue
		case ' ', 's', easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			if _, err := dbg.h.Step(); err != nil {
				return fmt.Errorf("debugger: %w", err)
			}
		case 'f':
			if err := dbg.runFrame(); err != nil {
				return err
			}
		case 'c':
			if err := dbg.cont(); err != nil {
				return err
			}
		case 'b':
			pc := dbg.h.CPU.PC()
			if dbg.breaks.toggle(pc) {
				dbg.printf("break at $%04x\n", pc)
			} else {
				dbg.printf("break at $%04x removed\n", pc)
			}
			continue
		case 'd':
			if err := dbg.disassemble(8); err != nil {
				return err
			}
			continue
		case 'm':
			dbg.printf("%s\n", dbg.h.CPU.Memory().Summary())
			continue
		default:
			continue
		}

		if err := dbg.printState(); err != nil {
			return err
		}
	}
}

// step until the end of the frame or a breakpoint
func (dbg *Debugger) runFrame() error {
	for {
		ended, err := dbg.h.Step()
		if err != nil {
			return fmt.Errorf("debugger: %w", err)
		}
		if ended || dbg.breaks.check(dbg.h.CPU.PC()) {
			return nil
		}
	}
}

// step until a breakpoint, an illegal opcode or the CPU becoming idle
func (dbg *Debugger) cont() error {
	illegal := dbg.h.Illegal
	frames := dbg.h.Frames

	for dbg.h.Frames-frames < dbg.MaxFrames {
		if _, err := dbg.h.Step(); err != nil {
			return fmt.Errorf("debugger: %w", err)
		}

		pc := dbg.h.CPU.PC()
		if dbg.breaks.check(pc) {
			dbg.printf("break at $%04x\n", pc)
			return nil
		}
		if dbg.h.Illegal != illegal {
			dbg.printf("illegal opcode\n")
			return nil
		}
		if dbg.h.Idle() {
			return nil
		}
	}

	logger.Logf(logger.Allow, "debugger", "continue stopped after %d frames", dbg.MaxFrames)
	return nil
}

func (dbg *Debugger) printState() error {
	dbg.printf("[%d] %d %s\n", dbg.h.Frames, dbg.h.CPU.Now(), dbg.h.CPU.String())
	return dbg.disassemble(1)
}

func (dbg *Debugger) disassemble(count int) error {
	defs := dbg.h.Definitions()
	if defs == nil {
		dbg.printf("$%04x\n", dbg.h.CPU.PC())
		return nil
	}

	entries := disassembly.Disassemble(defs, dbg.h.CPU.Memory().Peek, dbg.h.CPU.PC(), count)
	err := disassembly.Write(dbg.out, entries, disassembly.WriteAttr{ByteCode: true, Cycles: true})
	if err != nil {
		return fmt.Errorf("debugger: %w", err)
	}
	return nil
}

func (dbg *Debugger) printf(format string, a ...any) {
	_, _ = io.WriteString(dbg.out, fmt.Sprintf(format, a...))
}
