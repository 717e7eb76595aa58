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


// Package lr35902 implements the dispatch engine for the Sharp LR35902, the
// CPU of the Game Boy. It is used to play GBS files.
//
// The CPU is a relative of the Z80 without the index registers, the
// alternate register set, the ED prefixed instructions and the I/O port
// space. Hardware registers are memory mapped at $ff00 and should be mapped
// as IO pages so that the host services every access.
//
// Instruction costs are in clocks of the 4.19MHz master clock. Every memory
// access takes four clocks.
//
// The eleven undefined opcodes are illegal. They are counted, logged and
// skipped as single byte instructions.
package lr35902
