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


package lr35902

import (
	"fmt"

	"github.com/jetsetilly/gme8/hardware/cpu/registers"
)

// Bits of the F register. The low nibble is always zero.
const (
	FlagZ = 0x80
	FlagN = 0x40
	FlagH = 0x20
	FlagC = 0x10
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

	// interrupt master enable
	IME bool
}

func (r Registers) String() string {
	f := []byte("znhc")
	for i := range f {
		if r.F&(0x80>>i) != 0 {
			f[i] -= 'a' - 'A'
		}
	}
	return fmt.Sprintf("PC=%04x SP=%04x A=%02x BC=%s DE=%s HL=%s F=%s IME=%v",
		r.PC, r.SP, r.A, r.BC, r.DE, r.HL, f, r.IME)
}

// reg8 returns the register with the index used by the opcode bit fields.
// index 6 is (HL) and must be handled by the caller
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

// index 3 is the stack pointer
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

// the four conditions are NZ, Z, NC and C
func (r *Registers) condition(cc uint8) bool {
	f := uint8(FlagZ)
	if cc&2 == 2 {
		f = FlagC
	}
	return (r.F&f != 0) == (cc&1 == 1)
}
