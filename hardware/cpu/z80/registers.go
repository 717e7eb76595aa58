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

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gme8/hardware/cpu/registers"
)

// Bits of the F register. FlagP is both the parity and the overflow flag.
// Flag5 and Flag3 are the undocumented copies of bits 5 and 3 of a result.
const (
	FlagS = 0x80
	FlagZ = 0x40
	Flag5 = 0x20
	FlagH = 0x10
	Flag3 = 0x08
	FlagP = 0x04
	FlagN = 0x02
	FlagC = 0x01
)

// Registers is the register file of the CPU.
type Registers struct {
	PC uint16
	SP uint16

	A  uint8
	F  uint8
	BC registers.Pair
	DE registers.Pair
	HL registers.Pair
	IX registers.Pair
	IY registers.Pair

	// the alternate register set
	AltAF registers.Pair
	AltBC registers.Pair
	AltDE registers.Pair
	AltHL registers.Pair

	I uint8
	R uint8

	IFF1 bool
	IFF2 bool
	IM   uint8
}

// AF returns the accumulator and flags as a pair.
func (r Registers) AF() registers.Pair {
	return registers.MakePair(r.A, r.F)
}

// SetAF sets the accumulator and flags from a pair.
func (r *Registers) SetAF(p registers.Pair) {
	r.A = p.Hi()
	r.F = p.Lo()
}

// Flags returns the F register as a string. Set flags are in upper case.
func (r Registers) Flags() string {
	s := strings.Builder{}
	for i, c := range "sz5h3pnc" {
		if r.F&(0x80>>i) != 0 {
			s.WriteString(strings.ToUpper(string(c)))
		} else {
			s.WriteRune(c)
		}
	}
	return s.String()
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x AF=%s BC=%s DE=%s HL=%s IX=%s IY=%s F=%s IM=%d IFF=%v",
		r.PC, r.SP, r.AF(), r.BC, r.DE, r.HL, r.IX, r.IY, r.Flags(), r.IM, r.IFF1)
}

// reg8 returns the 8 bit register with the index used in the opcode bit
// fields. index 6 is (HL) in the opcode encoding and must be handled by the
// caller. it reads as zero
func (r *Registers) reg8(i uint8) uint8 {
	switch i & 7 {
	case 0:
		return r.BC.Hi()
	case 1:
		return r.BC.Lo()
	case 2:
		return r.DE.Hi()
	case 3:
		return r.DE.Lo()
	case 4:
		return r.HL.Hi()
	case 5:
		return r.HL.Lo()
	case 7:
		return r.A
	}
	return 0
}

// setReg8 is the counterpart of reg8. writes to index 6 are discarded
func (r *Registers) setReg8(i uint8, v uint8) {
	switch i & 7 {
	case 0:
		r.BC.SetHi(v)
	case 1:
		r.BC.SetLo(v)
	case 2:
		r.DE.SetHi(v)
	case 3:
		r.DE.SetLo(v)
	case 4:
		r.HL.SetHi(v)
	case 5:
		r.HL.SetLo(v)
	case 7:
		r.A = v
	}
}

// reg16 returns the 16 bit register with the index used by the LD, INC, DEC
// and ADD instructions. index 3 is the stack pointer
func (r *Registers) reg16(i uint8) uint16 {
	switch i & 3 {
	case 0:
		return uint16(r.BC)
	case 1:
		return uint16(r.DE)
	case 2:
		return uint16(r.HL)
	}
	return r.SP
}

func (r *Registers) setReg16(i uint8, v uint16) {
	switch i & 3 {
	case 0:
		r.BC = registers.Pair(v)
	case 1:
		r.DE = registers.Pair(v)
	case 2:
		r.HL = registers.Pair(v)
	default:
		r.SP = v
	}
}

// condition returns true if the condition with the index used by the JP, CALL
// and RET instructions is met. the JR instructions use the first four
func (r *Registers) condition(cc uint8) bool {
	var f uint8
	switch cc >> 1 & 3 {
	case 0:
		f = FlagZ
	case 1:
		f = FlagC
	case 2:
		f = FlagP
	case 3:
		f = FlagS
	}
	return (r.F&f != 0) == (cc&1 == 1)
}
