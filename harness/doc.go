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


// Package harness is a minimal owning emulator for the CPU engines. It is
// used by the command line tool and by the performance package, and it is
// an example of how a player should drive an engine.
//
// The harness maps 64k of flat RAM, with a single page of IO for the
// consoles that have memory mapped hardware, and delivers a periodic
// interrupt. Writes to a single address (or port for the Z80 consoles) drive
// a one bit beeper, which is recorded and can be converted to samples.
//
//	h, _ := harness.New(harness.NES)
//	_ = h.Load(program, 0x8000)
//	h.Call(0x8000)
//	h.RunFrames(60)
//	samples := h.Beeper.Samples(h.Clock(), 44100)
package harness
