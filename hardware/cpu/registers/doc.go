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

// Package registers contains the register helpers shared by the CPU cores.
//
// Inside a call to Run() a CPU core keeps its registers in local variables.
// The functions in this package operate on plain values and return the new
// value with the flags that result, for example:
//
//	a, carry, overflow = registers.Add(a, operand, carry)
//	zero = a == 0
//
// The StatusRegister type is the 6502 family status register in its
// authoritative form, as seen between calls to Run(). The Pair type is a 16
// bit register pair of the Z80 family with byte accessors.
package registers
