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


// Package debugger steps through a harness one instruction at a time. Each
// command is a single key press, so the input should be a terminal in cbreak
// mode (see the easyterm package) when the debugger is used interactively.
//
//	space, return, s	step one instruction
//	f			run to the end of the frame
//	c			continue until a breakpoint or the CPU is idle
//	b			toggle a breakpoint at the current address
//	d			disassemble from the current address
//	m			print the memory map
//	q			quit
//
// The state of the CPU is printed after every command.
package debugger
