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


// Package z80 implements the Zilog Z80 dispatch engine used by the MSX (KSS)
// and ZX Spectrum (AY) music players.
//
// The main, CB, ED, DD and FD opcode tables are decoded, including the
// undocumented IXH/IXL/IYH/IYL forms and the undocumented flag bits 5 and 3.
// The refresh register is stored but never counted.
//
// Instruction costs are in T-states. Unlike the 6502 family there is no
// static definitions table for the Z80: the opcode space is decoded by the
// bit fields of the opcode in the manner of the Zilog documentation.
//
// Memory is accessed through a paged.Map. I/O ports are accessed through
// the cpubus.Ports interface given to NewCPU().
//
// Interrupts are requested by the host from the BudgetExhausted() callback.
// The interrupt Vector is the address of the RST instruction for modes 0
// and 1 and the low byte of the table index for mode 2. The non-maskable
// interrupt is requested with cpubus.Z80NMI.
package z80
