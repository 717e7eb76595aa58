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

// Package huc6280 implements the CPU of the PC Engine. The HuC6280 is a
// 65C02 with eight memory mapping registers, block transfer instructions and
// direct access to the video display controller.
//
// The logical address space is divided into eight pages of 8k. Each page is
// mapped to one of 256 physical banks by a mapping register. The CPU records
// the value of each mapping register and leaves it to the Host to remap the
// page, which it does with the RemapBank() or MapIO() functions of the memory
// map.
//
// The zero page is at logical address $2000 and the stack is at $2100. Both
// are accessed through the memory map and so are subject to the mapping of
// page one, which is normally the work RAM bank $f8.
package huc6280
