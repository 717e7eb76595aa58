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

package cpubus

// Vector addresses of the 6502 family.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// Vector addresses of the HuC6280.
const (
	HuCIRQ2  = uint16(0xfff6)
	HuCIRQ1  = uint16(0xfff8)
	HuCTimer = uint16(0xfffa)
	HuCNMI   = uint16(0xfffc)
	HuCReset = uint16(0xfffe)
)

// Interrupt addresses of the Z80 and LR35902.
const (
	// Z80 mode 1 and the RST $38 delivered by a mode 0 data bus of $ff
	Z80IRQ = uint16(0x0038)
	Z80NMI = uint16(0x0066)

	GBVBlank = uint16(0x0040)
	GBLCD    = uint16(0x0048)
	GBTimer  = uint16(0x0050)
	GBSerial = uint16(0x0058)
	GBJoypad = uint16(0x0060)
)
