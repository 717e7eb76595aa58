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


package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
)

// Entry is a single decoded instruction.
type Entry struct {
	Address  uint16
	Bytes    []uint8
	Mnemonic string

	// the operand decorated according to the addressing mode. branch
	// destinations are absolute addresses
	Operand string

	Defn *instructions.Definition
}

// String returns a very basic representation of an Entry.
func (e Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("$%04x %s", e.Address, e.Mnemonic)
	}
	return fmt.Sprintf("$%04x %s %s", e.Address, e.Mnemonic, e.Operand)
}

// Bytecode returns the bytes of the instruction as a string of hex pairs.
func (e Entry) Bytecode() string {
	s := strings.Builder{}
	for i, b := range e.Bytes {
		if i > 0 {
			s.WriteRune(' ')
		}
		s.WriteString(fmt.Sprintf("%02x", b))
	}
	return s.String()
}

// Cycles returns the base cost of the instruction. A plus sign indicates
// that the cost may be higher.
func (e Entry) Cycles() string {
	if e.Defn.PageSensitive || e.Defn.IsBranch() || e.Defn.AddressingMode == instructions.BlockTransfer {
		return fmt.Sprintf("%d+", e.Defn.Cycles)
	}
	return fmt.Sprintf("%d", e.Defn.Cycles)
}

// Notes returns a short string describing anything unusual about the
// instruction.
func (e Entry) Notes() string {
	switch {
	case e.Defn.Illegal:
		return "illegal"
	case e.Defn.Undocumented:
		return "undocumented"
	}
	return ""
}

// the absolute destination of a branch. the offset is relative to the
// address of the next instruction
func branchDestination(next uint16, offset uint8) uint16 {
	return next + uint16(int8(offset))
}

func word(lo uint8, hi uint8) uint16 {
	return uint16(lo) | uint16(hi)<<8
}

// operand returns the operand of the instruction decorated according to the
// addressing mode
func operand(mode instructions.AddressingMode, address uint16, bytes []uint8) string {
	next := address + uint16(len(bytes))

	// longest instruction is seven bytes
	var b [7]uint8
	copy(b[:], bytes)

	switch mode {
	case instructions.Implied:
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", b[1])
	case instructions.Relative:
		return fmt.Sprintf("$%04x", branchDestination(next, b[1]))
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", word(b[1], b[2]))
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", b[1])
	case instructions.Indirect:
		return fmt.Sprintf("($%04x)", word(b[1], b[2]))
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", b[1])
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", b[1])
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", word(b[1], b[2]))
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", word(b[1], b[2]))
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", b[1])
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", b[1])
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", b[1])
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", word(b[1], b[2]))
	case instructions.ZeroPageRelative:
		return fmt.Sprintf("$%02x,$%04x", b[1], branchDestination(next, b[2]))
	case instructions.BlockTransfer:
		return fmt.Sprintf("$%04x,$%04x,$%04x", word(b[1], b[2]), word(b[3], b[4]), word(b[5], b[6]))
	case instructions.ImmediateZeroPage:
		return fmt.Sprintf("#$%02x,$%02x", b[1], b[2])
	case instructions.ImmediateAbsolute:
		return fmt.Sprintf("#$%02x,$%04x", b[1], word(b[2], b[3]))
	case instructions.ImmediateZeroPageX:
		return fmt.Sprintf("#$%02x,$%02x,X", b[1], b[2])
	case instructions.ImmediateAbsoluteX:
		return fmt.Sprintf("#$%02x,$%04x,X", b[1], word(b[2], b[3]))
	}

	return "???"
}
