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

// Package mos6502 is a time budgeted emulation of the NMOS 6502.
//
// Two variants are supported. The RP2A03 of the NES has no decimal mode. The
// 6502 of the Atari 8bit computers, as used by SAP music files, has the
// NMOS decimal mode.
//
// All official opcodes are implemented along with the stable undocumented
// opcodes. The KIL opcodes and the unstable undocumented opcodes are treated
// as illegal: they are skipped and counted and Run() returns true.
//
// The CPU is driven by calling Run() with an end time. Instructions are
// executed until the stop time is reached, at which point the host's
// BudgetExhausted() function is called. The host can request an interrupt or
// move the end time to continue execution. Otherwise Run() returns.
//
// An instruction that starts before the stop time is always completed so
// Now() may be a few cycles past the end time when Run() returns. The
// overrun is carried into the next call to Run().
package mos6502
