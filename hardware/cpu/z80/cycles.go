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


package z80

// cost of each instruction in the main table. instructions with a prefix
// start with the cost of the prefix opcode
var baseCycles = [256]uint8{
	4, 10, 7, 6, 4, 4, 7, 4, 4, 11, 7, 6, 4, 4, 7, 4, // 0
	13, 10, 7, 6, 4, 4, 7, 4, 12, 11, 7, 6, 4, 4, 7, 4, // 1
	12, 10, 16, 6, 4, 4, 7, 4, 12, 11, 16, 6, 4, 4, 7, 4, // 2
	12, 10, 13, 6, 11, 11, 10, 4, 12, 11, 13, 6, 4, 4, 7, 4, // 3
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 4
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 5
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 6
	7, 7, 7, 7, 7, 7, 4, 7, 4, 4, 4, 4, 4, 4, 7, 4, // 7
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 8
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 9
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // A
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // B
	11, 10, 10, 10, 17, 11, 7, 11, 11, 10, 10, 8, 17, 17, 7, 11, // C
	11, 10, 10, 11, 17, 11, 7, 11, 11, 4, 10, 11, 17, 8, 7, 11, // D
	11, 10, 10, 19, 17, 11, 7, 11, 11, 4, 10, 4, 17, 8, 7, 11, // E
	11, 10, 10, 4, 17, 11, 7, 11, 11, 6, 10, 4, 17, 8, 7, 11, // F
}

// additional cost of prefixed instructions. the high nibble is added to the
// cost of ED prefixed instructions and the low nibble to the cost of DD and
// FD prefixed instructions
var prefixCycles = [256]uint8{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 0
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 1
	0x00, 0x06, 0x0C, 0x02, 0x00, 0x00, 0x03, 0x00, 0x00, 0x07, 0x0C, 0x02, 0x00, 0x00, 0x03, 0x00, // 2
	0x00, 0x00, 0x00, 0x00, 0x0F, 0x0F, 0x0B, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // 3
	0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0x10, 0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0x10, // 4
	0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0x10, 0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0x10, // 5
	0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0xA0, 0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0xA0, // 6
	0x4B, 0x4B, 0x7B, 0xCB, 0x0B, 0x6B, 0x00, 0x0B, 0x40, 0x40, 0x70, 0xC0, 0x00, 0x60, 0x0B, 0x00, // 7
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0B, 0x00, // 8
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0B, 0x00, // 9
	0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x0B, 0x00, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x0B, 0x00, // A
	0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x0B, 0x00, 0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x0B, 0x00, // B
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00, 0x00, // C
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // D
	0x00, 0x06, 0x00, 0x0F, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // E
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // F
}

// extra cost of a block instruction that repeats
const repeatCycles = 5

// extra cost of the CB prefixed instructions that operate on (HL)
const (
	bitHLCycles    = 4
	modifyHLCycles = 7
)

// cost of the interrupt responses
const (
	nmiCycles = 11
	im1Cycles = 13
	im2Cycles = 19
)

func edCycles(op uint8) int {
	return int(prefixCycles[op] >> 4)
}

func indexCycles(op uint8) int {
	return int(prefixCycles[op] & 0x0f)
}
