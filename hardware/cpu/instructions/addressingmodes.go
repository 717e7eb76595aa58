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

package instructions

// AddressingMode describes the method of memory addressing used by an instruction
type AddressingMode int

// List of supported addressing modes.
const (
	Implied   AddressingMode = iota
	Immediate                // #imm
	Relative                 // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // (abs)

	IndexedIndirect // (zpg,X)
	IndirectIndexed // (zpg),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	// 65C02 and HuC6280 modes
	ZeroPageIndirect        // (zpg)
	AbsoluteIndexedIndirect // (abs,X)
	ZeroPageRelative        // zpg,rel
	BlockTransfer           // src,dst,len
	ImmediateZeroPage       // #imm,zpg
	ImmediateAbsolute       // #imm,abs
	ImmediateZeroPageX      // #imm,zpg,X
	ImmediateAbsoluteX      // #imm,abs,X
)

// the names used in CSV data.
var modeNames = map[string]AddressingMode{
	"IMP":  Implied,
	"IMM":  Immediate,
	"REL":  Relative,
	"ABS":  Absolute,
	"ZP":   ZeroPage,
	"IND":  Indirect,
	"IZX":  IndexedIndirect,
	"IZY":  IndirectIndexed,
	"ABX":  AbsoluteIndexedX,
	"ABY":  AbsoluteIndexedY,
	"ZPX":  ZeroPageIndexedX,
	"ZPY":  ZeroPageIndexedY,
	"ZPI":  ZeroPageIndirect,
	"AIX":  AbsoluteIndexedIndirect,
	"ZPR":  ZeroPageRelative,
	"BLK":  BlockTransfer,
	"IZP":  ImmediateZeroPage,
	"IAB":  ImmediateAbsolute,
	"IZPX": ImmediateZeroPageX,
	"IABX": ImmediateAbsoluteX,
}

func (m AddressingMode) String() string {
	for k, v := range modeNames {
		if v == m {
			return k
		}
	}
	return "unknown addressing mode"
}
