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

// CB prefixed instructions. the program counter points to the opcode that
// follows the prefix
func (d *dispatch) bitInstructions(op uint8) {
	d.r.PC++
	z := op & 7

	if z == 6 {
		if op&0xc0 == 0x40 {
			d.cpu.Adjust(bitHLCycles)
		} else {
			d.cpu.Adjust(modifyHLCycles)
		}
	}

	v := d.operand(z)

	switch op & 0xc0 {
	case 0x00:
		d.setOperand(z, d.rotate(op, v))
	case 0x40:
		d.bit(op, v, z != 6)
	default:
		d.setOperand(z, setOrReset(op, v))
	}
}

// ED prefixed instructions. code starts with the opcode that follows the
// prefix
func (d *dispatch) extended(code []byte) {
	r := &d.r
	op := code[0]
	nn := uint16(code[1]) | uint16(code[2])<<8

	r.PC++
	d.cpu.Adjust(edCycles(op))

	y := op >> 3 & 7
	p := op >> 4 & 3

	switch op {
	case 0x40, 0x48, 0x50, 0x58, 0x60, 0x68, 0x70, 0x78: // IN r,(C)
		v := d.in(uint16(r.BC))
		r.setReg8(y, v)
		r.F = r.F&FlagC | sz53p(v)

	case 0x41, 0x49, 0x51, 0x59, 0x61, 0x69, 0x71, 0x79: // OUT (C),r
		// OUT (C),0 for index 6
		d.out(uint16(r.BC), r.reg8(y))

	case 0x42, 0x52, 0x62, 0x72: // SBC HL,rr
		d.adc16(r.reg16(p), true)
	case 0x4a, 0x5a, 0x6a, 0x7a: // ADC HL,rr
		d.adc16(r.reg16(p), false)

	case 0x43, 0x53, 0x63, 0x73: // LD (nn),rr
		r.PC += 2
		d.writeWord(nn, r.reg16(p))
	case 0x4b, 0x5b, 0x6b, 0x7b: // LD rr,(nn)
		r.PC += 2
		r.setReg16(p, d.readWord(nn))

	case 0x44, 0x4c, 0x54, 0x5c, 0x64, 0x6c, 0x74, 0x7c: // NEG
		v := r.A
		r.A = 0
		d.add(v, 0, true)

	case 0x45, 0x4d, 0x55, 0x5d, 0x65, 0x6d, 0x75, 0x7d: // RETN and RETI
		r.PC = d.pop()
		if r.IFF1 != r.IFF2 {
			r.IFF1 = r.IFF2
			d.flush()
			d.cpu.SetMasked(!r.IFF1)
		}

	case 0x46, 0x4e, 0x66, 0x6e: // IM 0
		r.IM = 0
	case 0x56, 0x76: // IM 1
		r.IM = 1
	case 0x5e, 0x7e: // IM 2
		r.IM = 2

	case 0x47: // LD I,A
		r.I = r.A
	case 0x4f: // LD R,A
		r.R = r.A
		d.warning = true
		d.cpu.Diagnostics.Unsupport("LD R,A")
	case 0x57: // LD A,I
		r.A = r.I
		d.loadIR()
	case 0x5f: // LD A,R
		r.A = r.R
		d.warning = true
		d.cpu.Diagnostics.Unsupport("LD A,R")
		d.loadIR()

	case 0x67: // RRD
		v := d.read(uint16(r.HL))
		d.write(uint16(r.HL), r.A<<4|v>>4)
		r.A = r.A&0xf0 | v&0x0f
		r.F = r.F&FlagC | sz53p(r.A)
	case 0x6f: // RLD
		v := d.read(uint16(r.HL))
		d.write(uint16(r.HL), v<<4|r.A&0x0f)
		r.A = r.A&0xf0 | v>>4
		r.F = r.F&FlagC | sz53p(r.A)

	case 0xa0, 0xa8, 0xb0, 0xb8: // LDI, LDD, LDIR, LDDR
		d.blockLoad(op)
	case 0xa1, 0xa9, 0xb1, 0xb9: // CPI, CPD, CPIR, CPDR
		d.blockCompare(op)
	case 0xa2, 0xaa, 0xb2, 0xba: // INI, IND, INIR, INDR
		d.blockIn(op)
	case 0xa3, 0xab, 0xb3, 0xbb: // OUTI, OUTD, OTIR, OTDR
		d.blockOut(op)

	default:
		d.warning = true
		d.cpu.Diagnostics.IllegalPrefixed(r.PC-2, 0xed, op)
	}
}

func (d *dispatch) loadIR() {
	f := d.r.F&FlagC | sz53(d.r.A)
	if d.r.IFF2 {
		f |= FlagP
	}
	d.r.F = f
}

// direction of a block instruction. bit 3 of the opcode is set for the
// decrementing instructions
func step(op uint8) uint16 {
	if op&0x08 == 0x08 {
		return 0xffff
	}
	return 1
}

// repeating block instructions execute again until they are finished
func (d *dispatch) repeat(op uint8) {
	if op >= 0xb0 {
		d.r.PC -= 2
		d.cpu.Adjust(repeatCycles)
	}
}

func (d *dispatch) blockLoad(op uint8) {
	r := &d.r
	v := d.read(uint16(r.HL))
	r.HL += registers.Pair(step(op))
	d.write(uint16(r.DE), v)
	r.DE += registers.Pair(step(op))

	t := v + r.A
	f := r.F&(FlagS|FlagZ|FlagC) | t&Flag3 | (t<<4)&Flag5
	r.BC--
	if r.BC != 0 {
		f |= FlagP
		d.repeat(op)
	}
	r.F = f
}

func (d *dispatch) blockCompare(op uint8) {
	r := &d.r
	v := int(d.read(uint16(r.HL)))
	r.HL += registers.Pair(step(op))

	a := int(r.A)
	result := a - v
	f := int(r.F&FlagC) | FlagN | (((v^a)&FlagH)^result)&(FlagS|FlagH)
	if uint8(result) == 0 {
		f |= FlagZ
	}
	result -= (f & FlagH) >> 4
	f |= result & Flag3
	f |= (result << 4) & Flag5

	r.BC--
	if r.BC != 0 {
		f |= FlagP
		if f&FlagZ == 0 {
			d.repeat(op)
		}
	}
	r.F = uint8(f)
}

func (d *dispatch) blockIn(op uint8) {
	r := &d.r
	address := uint16(r.HL)
	r.HL += registers.Pair(step(op))

	v := d.in(uint16(r.BC))
	b := r.BC.Hi() - 1
	r.BC.SetHi(b)
	r.F = (v>>6)&FlagN | sz53(b)
	if b != 0 {
		d.repeat(op)
	}

	d.write(address, v)
}

func (d *dispatch) blockOut(op uint8) {
	r := &d.r
	v := d.read(uint16(r.HL))
	r.HL += registers.Pair(step(op))

	b := r.BC.Hi() - 1
	r.BC.SetHi(b)
	r.F = (v>>6)&FlagN | sz53(b)
	if b != 0 {
		d.repeat(op)
	}

	d.out(uint16(r.BC), v)
}

// DD and FD prefixed instructions. ixy is the IX or IY register and code
// starts with the opcode that follows the prefix. opcodes that do not use
// the index register are executed as if there was no prefix
func (d *dispatch) indexed(ixy *registers.Pair, code []byte) {
	r := &d.r
	op := code[0]
	n := code[1]
	nn := uint16(code[1]) | uint16(code[2])<<8

	// address of the (IX+d) forms
	disp := uint16(*ixy) + uint16(int8(n))

	r.PC++
	d.cpu.Adjust(indexCycles(op))

	y := op >> 3 & 7
	z := op & 7

	switch op {
	case 0x86, 0x8e, 0x96, 0x9e, 0xa6, 0xae, 0xb6, 0xbe: // ALU (IX+d)
		r.PC++
		d.alu(op, d.read(disp))
	case 0x84, 0x8c, 0x94, 0x9c, 0xa4, 0xac, 0xb4, 0xbc: // ALU IXH
		d.alu(op, ixy.Hi())
	case 0x85, 0x8d, 0x95, 0x9d, 0xa5, 0xad, 0xb5, 0xbd: // ALU IXL
		d.alu(op, ixy.Lo())

	case 0x09, 0x19, 0x39: // ADD IX,rr
		*ixy = registers.Pair(d.add16(uint16(*ixy), r.reg16(op>>4)))
	case 0x29: // ADD IX,IX
		*ixy = registers.Pair(d.add16(uint16(*ixy), uint16(*ixy)))

	case 0x70, 0x71, 0x72, 0x73, 0x74, 0x75, 0x77: // LD (IX+d),r
		r.PC++
		d.write(disp, r.reg8(z))
	case 0x36: // LD (IX+d),n
		r.PC += 2
		d.write(disp, code[2])

	case 0x46, 0x4e, 0x56, 0x5e, 0x66, 0x6e, 0x7e: // LD r,(IX+d)
		r.PC++
		r.setReg8(y, d.read(disp))

	case 0x44, 0x4c, 0x54, 0x5c, 0x7c: // LD r,IXH
		r.setReg8(y, ixy.Hi())
	case 0x45, 0x4d, 0x55, 0x5d, 0x7d: // LD r,IXL
		r.setReg8(y, ixy.Lo())
	case 0x64, 0x6d: // LD IXH,IXH and LD IXL,IXL
	case 0x60, 0x61, 0x62, 0x63, 0x67: // LD IXH,r
		ixy.SetHi(r.reg8(z))
	case 0x65: // LD IXH,IXL
		ixy.SetHi(ixy.Lo())
	case 0x68, 0x69, 0x6a, 0x6b, 0x6f: // LD IXL,r
		ixy.SetLo(r.reg8(z))
	case 0x6c: // LD IXL,IXH
		ixy.SetLo(ixy.Hi())
	case 0x26: // LD IXH,n
		r.PC++
		ixy.SetHi(n)
	case 0x2e: // LD IXL,n
		r.PC++
		ixy.SetLo(n)

	case 0x21: // LD IX,nn
		r.PC += 2
		*ixy = registers.Pair(nn)
	case 0x22: // LD (nn),IX
		r.PC += 2
		d.writeWord(nn, uint16(*ixy))
	case 0x2a: // LD IX,(nn)
		r.PC += 2
		*ixy = registers.Pair(d.readWord(nn))
	case 0xf9: // LD SP,IX
		r.SP = uint16(*ixy)

	case 0x23: // INC IX
		*ixy++
	case 0x2b: // DEC IX
		*ixy--
	case 0x34: // INC (IX+d)
		r.PC++
		d.write(disp, d.inc(d.read(disp)))
	case 0x35: // DEC (IX+d)
		r.PC++
		d.write(disp, d.dec(d.read(disp)))
	case 0x24: // INC IXH
		ixy.SetHi(d.inc(ixy.Hi()))
	case 0x2c: // INC IXL
		ixy.SetLo(d.inc(ixy.Lo()))
	case 0x25: // DEC IXH
		ixy.SetHi(d.dec(ixy.Hi()))
	case 0x2d: // DEC IXL
		ixy.SetLo(d.dec(ixy.Lo()))

	case 0xe5: // PUSH IX
		d.push(uint16(*ixy))
	case 0xe1: // POP IX
		*ixy = registers.Pair(d.pop())
	case 0xe9: // JP (IX)
		r.PC = uint16(*ixy)
	case 0xe3: // EX (SP),IX
		t := d.readWord(r.SP)
		d.writeWord(r.SP, uint16(*ixy))
		*ixy = registers.Pair(t)

	case 0xcb:
		r.PC += 2
		d.indexedBitInstructions(disp, code[2])

	default:
		// the prefix is ignored and the opcode executes normally
		r.PC--
		d.warning = true
		d.cpu.Diagnostics.Unsupport("Unnecessary DD/FD prefix")
	}
}

// DDCB and FDCB prefixed instructions. the forms that name a register other
// than (HL) operate on (IX+d) and also copy the result to the register
func (d *dispatch) indexedBitInstructions(address uint16, op uint8) {
	v := d.read(address)
	z := op & 7

	switch op & 0xc0 {
	case 0x00:
		v = d.rotate(op, v)
	case 0x40:
		d.bit(op, v, false)
		return
	default:
		v = setOrReset(op, v)
	}

	d.write(address, v)
	if z != 6 {
		d.r.setReg8(z, v)
	}
}
