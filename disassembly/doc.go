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


// Package disassembly decodes the instructions of the CPUs that are
// described by an instructions.Table. ie. the 6502 and the HuC6280.
//
// Disassembly is linear. It starts at an address and decodes the requested
// number of instructions, with no attempt to follow the flow of the program.
//
//	entries := disassembly.Disassemble(mos6502.Definitions(), mem.Peek, 0x8000, 16)
//	disassembly.Write(os.Stdout, entries, disassembly.WriteAttr{ByteCode: true})
package disassembly
