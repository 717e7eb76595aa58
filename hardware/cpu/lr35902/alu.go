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

import "github.com/jetsetilly/gme8/hardware/cpu/registers"

func zero(v uint8) uint8 {
	if v == 0 {
		return FlagZ
	}
	return 0
}

func (d *dispatch) carry() uint8 {
	return (d.r.F >> 4) & 1
}

// alu performs the operation selected by bits 3 to 5 of the opcode
func (d *dispatch) alu(op uint8, v uint8) {
	r := &d.r
	a := r.A

	switch op >> 3 & 7 {
	case 0, 1: // ADD ADC
		c := uint8(0)
		if op&0x08 != 0 {
			c = d.carry()
		}
		sum := uint16(a) + uint16(v) + uint16(c)
		r.A = uint8(sum)
		r.F = zero(r.A)
		if a&0x0f+v&0x0f+c > 0x0f {
			r.F |= FlagH
		}
		if sum > 0xff {
			r.F |= FlagC
		}
	case 2, 3, 7: // SUB SBC CP
		c := uint8(0)
		if op>>3&7 == 3 {
			c = d.carry()
		}
		res := uint8(uint16(a) - uint16(v) - uint16(c))
		r.F = zero(res) | FlagN
		if uint16(a&0x0f) < uint16(v&0x0f)+uint16(c) {
			r.F |= FlagH
		}
		if uint16(a) < uint16(v)+uint16(c) {
			r.F |= FlagC
		}
		if op>>3&7 != 7 {
			r.A = res
		}
	case 4: // AND
		r.A = a & v
		r.F = zero(r.A) | FlagH
	case 5: // XOR
		r.A = a ^ v
		r.F = zero(r.A)
	case 6: // OR
		r.A = a | v
		r.F = zero(r.A)
	}
}

func (d *dispatch) inc(v uint8) uint8 {
	v++
	d.r.F = d.r.F&FlagC | zero(v)
	if v&0x0f == 0 {
		d.r.F |= FlagH
	}
	return v
}

func (d *dispatch) dec(v uint8) uint8 {
	v--
	d.r.F = d.r.F&FlagC | zero(v) | FlagN
	if v&0x0f == 0x0f {
		d.r.F |= FlagH
	}
	return v
}

// addHL leaves the zero flag alone. half carry is from bit 11
func (d *dispatch) addHL(v uint16) {
	hl := uint16(d.r.HL)
	sum := uint32(hl) + uint32(v)
	d.r.F &= FlagZ
	if hl&0x0fff+v&0x0fff > 0x0fff {
		d.r.F |= FlagH
	}
	if sum > 0xffff {
		d.r.F |= FlagC
	}
	d.r.HL = registers.Pair(sum)
}

// offsetSP is the result of ADD SP,e and LD HL,SP+e. the flags are from the
// unsigned addition of the low bytes
func (d *dispatch) offsetSP(e uint8) uint16 {
	sp := d.r.SP
	d.r.F = 0
	if uint8(sp)&0x0f+e&0x0f > 0x0f {
		d.r.F |= FlagH
	}
	if uint16(uint8(sp))+uint16(e) > 0xff {
		d.r.F |= FlagC
	}
	return sp + uint16(int8(e))
}

func (d *dispatch) daa() {
	r := &d.r
	a := r.A
	c := r.F & FlagC

	if r.F&FlagN == 0 {
		if c != 0 || a > 0x99 {
			a += 0x60
			c = FlagC
		}
		if r.F&FlagH != 0 || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if c != 0 {
			a -= 0x60
		}
		if r.F&FlagH != 0 {
			a -= 0x06
		}
	}

	r.A = a
	r.F = zero(a) | r.F&FlagN | c
}

// rotate performs the shift or rotate selected by bits 3 to 5 of the CB
// prefixed opcode. the accumulator forms in the main table clear the zero
// flag afterwards
func (d *dispatch) rotate(op uint8, v uint8) uint8 {
	var w uint8
	var c uint8

	switch op >> 3 & 7 {
	case 0: // RLC
		c = v >> 7
		w = v<<1 | c
	case 1: // RRC
		c = v & 1
		w = v>>1 | c<<7
	case 2: // RL
		c = v >> 7
		w = v<<1 | d.carry()
	case 3: // RR
		c = v & 1
		w = v>>1 | d.carry()<<7
	case 4: // SLA
		c = v >> 7
		w = v << 1
	case 5: // SRA
		c = v & 1
		w = v>>1 | v&0x80
	case 6: // SWAP
		w = v<<4 | v>>4
	case 7: // SRL
		c = v & 1
		w = v >> 1
	}

	d.r.F = zero(w) | c<<4
	return w
}

func (d *dispatch) bit(op uint8, v uint8) {
	d.r.F = d.r.F&FlagC | FlagH
	if v&(1<<(op>>3&7)) == 0 {
		d.r.F |= FlagZ
	}
}
