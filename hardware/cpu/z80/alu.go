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

import "github.com/jetsetilly/gme8/hardware/cpu/registers"

// sign, zero, bit 5, bit 3 and parity flags for every 8 bit result. the
// upper half of the table is the same with the carry flag set so that a 9 bit
// result can be used as the index
var flagTable [0x200]uint8

func init() {
	for i := 0; i < 0x100; i++ {
		even := uint8(1)
		for b := i; b != 0; b >>= 1 {
			even ^= uint8(b & 1)
		}
		f := uint8(i)&(FlagS|Flag5|Flag3) | even*FlagP
		flagTable[i] = f
		flagTable[i+0x100] = f | FlagC
	}
	flagTable[0x000] |= FlagZ
	flagTable[0x100] |= FlagZ
}

// flags of a 9 bit result without the parity flag
func sz53c(v int) uint8 {
	return flagTable[v&0x1ff] &^ FlagP
}

func sz53(v uint8) uint8 {
	return flagTable[v] &^ FlagP
}

func sz53p(v uint8) uint8 {
	return flagTable[v]
}

// add or subtract the value and the carry from the accumulator
func (d *dispatch) add(v uint8, carry uint8, sub bool) {
	a := int(d.r.A)
	data := int(v)
	result := data + int(carry)
	data ^= a

	f := 0
	if sub {
		f = FlagN
		result = -result
	}
	result += a
	data ^= result

	f |= data&FlagH | ((data+0x80)>>6)&FlagP
	d.r.F = uint8(f) | sz53c(result)
	d.r.A = uint8(result)
}

// the result of the comparison is discarded. bits 5 and 3 of the flags come
// from the operand and not the result
func (d *dispatch) compare(v uint8) {
	a := int(d.r.A)
	data := int(v)
	result := a - data

	f := FlagN | data&(Flag5|Flag3) | (result>>8)&FlagC
	data ^= a
	f |= (((result^a)&data)>>5)&FlagP | ((data&FlagH)^result)&(FlagS|FlagH)
	if uint8(result) == 0 {
		f |= FlagZ
	}
	d.r.F = uint8(f)
}

// alu performs the arithmetic or logical operation selected by bits 3 to 5 of
// the opcode
func (d *dispatch) alu(op uint8, v uint8) {
	switch op >> 3 & 7 {
	case 0:
		d.add(v, 0, false)
	case 1:
		d.add(v, d.r.F&FlagC, false)
	case 2:
		d.add(v, 0, true)
	case 3:
		d.add(v, d.r.F&FlagC, true)
	case 4:
		d.r.A &= v
		d.r.F = sz53p(d.r.A) | FlagH
	case 5:
		d.r.A ^= v
		d.r.F = sz53p(d.r.A)
	case 6:
		d.r.A |= v
		d.r.F = sz53p(d.r.A)
	case 7:
		d.compare(v)
	}
}

func (d *dispatch) inc(v uint8) uint8 {
	v++
	f := d.r.F&FlagC | sz53(v)
	if v&0x0f == 0 {
		f |= FlagH
	}
	if v == 0x80 {
		f |= FlagP
	}
	d.r.F = f
	return v
}

func (d *dispatch) dec(v uint8) uint8 {
	v--
	f := d.r.F&FlagC | FlagN | sz53(v)
	if v&0x0f == 0x0f {
		f |= FlagH
	}
	if v == 0x7f {
		f |= FlagP
	}
	d.r.F = f
	return v
}

// add16 is ADD HL and ADD IX/IY. the sign, zero and overflow flags are not
// changed
func (d *dispatch) add16(dst uint16, v uint16) uint16 {
	sum := uint32(dst) + uint32(v)
	x := uint32(dst ^ v)
	f := uint32(d.r.F)&(FlagS|FlagZ|FlagP) | sum>>16 | (sum>>8)&(Flag5|Flag3) | ((x^sum)>>8)&FlagH
	d.r.F = uint8(f)
	return uint16(sum)
}

// adc16 is the ED prefixed ADC HL and SBC HL
func (d *dispatch) adc16(v uint16, sub bool) {
	hl := uint32(d.r.HL)
	temp := uint32(v)
	sum := temp + uint32(d.r.F&FlagC)

	var f uint32
	if sub {
		f = FlagN
		sum = -sum
	}
	sum += hl
	temp ^= hl
	temp ^= sum

	f |= (sum>>16)&FlagC | (temp>>8)&FlagH | (sum>>8)&(FlagS|Flag5|Flag3) | ((temp+0x8000)>>14)&FlagP
	if uint16(sum) == 0 {
		f |= FlagZ
	}
	d.r.F = uint8(f)
	d.r.HL = registers.Pair(sum)
}

func (d *dispatch) daa() {
	a := int(d.r.A)
	f := int(d.r.F)
	if a > 0x99 {
		f |= FlagC
	}

	adjust := 0
	if f&FlagC != 0 {
		adjust = 0x60
	}
	if f&FlagH != 0 || a&0x0f > 9 {
		adjust |= 0x06
	}
	if f&FlagN != 0 {
		adjust = -adjust
	}
	a += adjust

	d.r.F = uint8(f&(FlagC|FlagN)|(int(d.r.A)^a)&FlagH) | sz53p(uint8(a))
	d.r.A = uint8(a)
}

// rotate performs the CB prefixed rotate or shift selected by bits 3 to 5 of
// the opcode
func (d *dispatch) rotate(op uint8, v uint8) uint8 {
	var result uint8

	switch op >> 3 & 7 {
	case 0: // RLC
		result = v<<1 | v>>7
		d.r.F = sz53p(result) | result&FlagC
	case 1: // RRC
		result = v<<7 | v>>1
		d.r.F = sz53p(result) | v&FlagC
	case 2: // RL
		w := int(v)<<1 | int(d.r.F&FlagC)
		d.r.F = flagTable[w]
		result = uint8(w)
	case 3: // RR
		result = d.r.F<<7 | v>>1
		d.r.F = sz53p(result) | v&FlagC
	case 4: // SLA
		w := int(v) << 1
		d.r.F = flagTable[w]
		result = uint8(w)
	case 5: // SRA
		result = v&0x80 | v>>1
		d.r.F = sz53p(result) | v&FlagC
	case 6: // SLL
		w := int(v)<<1 | 1
		d.r.F = flagTable[w]
		result = uint8(w)
	case 7: // SRL
		result = v >> 1
		d.r.F = sz53p(result) | v&FlagC
	}

	return result
}

// bit is the BIT instruction. bits 5 and 3 of the flags are copied from the
// operand only when the operand is a register
func (d *dispatch) bit(op uint8, v uint8, register bool) {
	f := d.r.F&FlagC | FlagH
	if register {
		f |= v & (Flag5 | Flag3)
	}
	masked := v & (1 << (op >> 3 & 7))
	f |= masked & FlagS
	if masked == 0 {
		f |= FlagZ | FlagP
	}
	d.r.F = f
}

// setOrReset is the SET and RES instructions
func setOrReset(op uint8, v uint8) uint8 {
	b := uint8(1) << (op >> 3 & 7)
	if op&0x40 == 0x40 {
		return v | b
	}
	return v &^ b
}
