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

// Package instructions defines the opcode tables of the 6502 family CPU
// cores.
//
// A table is read from CSV data, one opcode per record:
//
//	opcode, mnemonic, bytes, cycles, addressing mode [, effect [, flags...]]
//
// The effect defaults to READ. Flags are PAGESENS for instructions that take
// an extra cycle when indexing crosses a page, UNDOC for undocumented but
// stable instructions, and ILLEGAL for opcodes that the CPU core does not
// execute. Lines starting with a # are comments.
//
// The cycles value of each definition is the cost that the CPU core charges
// before executing the instruction. The bytes value of an illegal opcode is
// the number of bytes that the CPU core skips.
package instructions
