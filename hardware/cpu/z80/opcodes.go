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

// execute the instruction in the main table. the program counter has been
// advanced past the opcode and the base cost has been charged. code is the
// instruction starting with the opcode
func (d *dispatch) execute(opcode uint8, code []byte) {
	r := &d.r
	n := code[1]
	nn := uint16(code[1]) | uint16(code[2])<<8

	// bit fields of the opcode
	y := opcode >> 3 & 7
	z := opcode & 7
	p := opcode >> 4 & 3

	switch {
	case opcode == 0x76: // HALT
		r.PC--
		d.cpu.halted = true
		d.cpu.haltAddress = r.PC
		d.flush()
		d.cpu.SetLocal(d.cpu.Local() & 3)
		return

	case opcode&0xc0 == 0x40: // LD r,r'
		d.setOperand(y, d.operand(z))
		return

	case opcode&0xc0 == 0x80: // ALU r
		d.alu(opcode, d.operand(z))
		return
	}

	switch opcode {
	case 0x00: // NOP

	case 0x01, 0x11, 0x21, 0x31: // LD rr,nn
		r.setReg16(p, nn)
		r.PC += 2

	case 0x02: // LD (BC),A
		d.write(uint16(r.BC), r.A)
	case 0x12: // LD (DE),A
		d.write(uint16(r.DE), r.A)
	case 0x0a: // LD A,(BC)
		r.A = d.read(uint16(r.BC))
	case 0x1a: // LD A,(DE)
		r.A = d.read(uint16(r.DE))

	case 0x22: // LD (nn),HL
		r.PC += 2
		d.writeWord(nn, uint16(r.HL))
	case 0x2a: // LD HL,(nn)
		r.PC += 2
		r.HL = registers.Pair(d.readWord(nn))
	case 0x32: // LD (nn),A
		r.PC += 2
		d.write(nn, r.A)
	case 0x3a: // LD A,(nn)
		r.PC += 2
		r.A = d.read(nn)

	case 0x03, 0x13, 0x23, 0x33: // INC rr
		r.setReg16(p, r.reg16(p)+1)
	case 0x0b, 0x1b, 0x2b, 0x3b: // DEC rr
		r.setReg16(p, r.reg16(p)-1)

	case 0x04, 0x0c, 0x14, 0x1c, 0x24, 0x2c, 0x34, 0x3c: // INC r
		d.setOperand(y, d.inc(d.operand(y)))
	case 0x05, 0x0d, 0x15, 0x1d, 0x25, 0x2d, 0x35, 0x3d: // DEC r
		d.setOperand(y, d.dec(d.operand(y)))

	case 0x06, 0x0e, 0x16, 0x1e, 0x26, 0x2e, 0x36, 0x3e: // LD r,n
		r.PC++
		d.setOperand(y, n)

	case 0x09, 0x19, 0x29, 0x39: // ADD HL,rr
		r.HL = registers.Pair(d.add16(uint16(r.HL), r.reg16(p)))

	case 0x07: // RLCA
		t := r.A<<1 | r.A>>7
		r.F = r.F&(FlagS|FlagZ|FlagP) | t&(Flag5|Flag3|FlagC)
		r.A = t
	case 0x0f: // RRCA
		t := r.A<<7 | r.A>>1
		r.F = r.F&(FlagS|FlagZ|FlagP) | r.A&FlagC | t&(Flag5|Flag3)
		r.A = t
	case 0x17: // RLA
		t := r.A<<1 | r.F&FlagC
		r.F = r.F&(FlagS|FlagZ|FlagP) | t&(Flag5|Flag3) | r.A>>7
		r.A = t
	case 0x1f: // RRA
		t := r.F<<7 | r.A>>1
		r.F = r.F&(FlagS|FlagZ|FlagP) | t&(Flag5|Flag3) | r.A&FlagC
		r.A = t

	case 0x27: // DAA
		d.daa()
	case 0x2f: // CPL
		r.A = ^r.A
		r.F = r.F&(FlagS|FlagZ|FlagP|FlagC) | r.A&(Flag5|Flag3) | FlagH | FlagN
	case 0x37: // SCF
		r.F = r.F&(FlagS|FlagZ|FlagP) | FlagC | r.A&(Flag5|Flag3)
	case 0x3f: // CCF
		r.F = r.F&(FlagS|FlagZ|FlagP|FlagC) ^ FlagC | (r.F<<4)&FlagH | r.A&(Flag5|Flag3)

	case 0x08: // EX AF,AF'
		af := r.AF()
		r.SetAF(r.AltAF)
		r.AltAF = af
	case 0xd9: // EXX
		r.BC, r.AltBC = r.AltBC, r.BC
		r.DE, r.AltDE = r.AltDE, r.DE
		r.HL, r.AltHL = r.AltHL, r.HL
	case 0xeb: // EX DE,HL
		r.DE, r.HL = r.HL, r.DE
	case 0xe3: // EX (SP),HL
		t := d.readWord(r.SP)
		d.writeWord(r.SP, uint16(r.HL))
		r.HL = registers.Pair(t)

	case 0x10: // DJNZ
		b := r.BC.Hi() - 1
		r.BC.SetHi(b)
		d.jr(b != 0, n)
	case 0x18: // JR
		d.jr(true, n)
	case 0x20, 0x28, 0x30, 0x38: // JR cc
		d.jr(r.condition(y&3), n)

	case 0xc3: // JP nn
		r.PC = nn
	case 0xc2, 0xca, 0xd2, 0xda, 0xe2, 0xea, 0xf2, 0xfa: // JP cc,nn
		if r.condition(y) {
			r.PC = nn
		} else {
			r.PC += 2
		}
	case 0xe9: // JP (HL)
		r.PC = uint16(r.HL)

	case 0xcd: // CALL nn
		d.push(r.PC + 2)
		r.PC = nn
	case 0xc4, 0xcc, 0xd4, 0xdc, 0xe4, 0xec, 0xf4, 0xfc: // CALL cc,nn
		if r.condition(y) {
			d.push(r.PC + 2)
			r.PC = nn
		} else {
			d.cpu.Adjust(-7)
			r.PC += 2
		}

	case 0xc9: // RET
		r.PC = d.pop()
	case 0xc0, 0xc8, 0xd0, 0xd8, 0xe0, 0xe8, 0xf0, 0xf8: // RET cc
		if r.condition(y) {
			r.PC = d.pop()
		} else {
			d.cpu.Adjust(-6)
		}

	case 0xc7, 0xcf, 0xd7, 0xdf, 0xe7, 0xef, 0xf7, 0xff: // RST
		d.push(r.PC)
		r.PC = uint16(opcode & 0x38)

	case 0xc5, 0xd5, 0xe5: // PUSH rr
		d.push(r.reg16(p))
	case 0xf5: // PUSH AF
		d.push(uint16(r.AF()))
	case 0xc1, 0xd1, 0xe1: // POP rr
		r.setReg16(p, d.pop())
	case 0xf1: // POP AF
		r.SetAF(registers.Pair(d.pop()))

	case 0xc6, 0xce, 0xd6, 0xde, 0xe6, 0xee, 0xf6, 0xfe: // ALU n
		r.PC++
		d.alu(opcode, n)

	case 0xd3: // OUT (n),A
		r.PC++
		d.out(uint16(r.A)<<8|uint16(n), r.A)
	case 0xdb: // IN A,(n)
		r.PC++
		r.A = d.in(uint16(r.A)<<8 | uint16(n))

	case 0xf3: // DI
		d.setIFF(false)
	case 0xfb: // EI
		d.setIFF(true)

	case 0xf9: // LD SP,HL
		r.SP = uint16(r.HL)

	case 0xcb:
		d.bitInstructions(n)
	case 0xed:
		d.extended(code[1:])
	case 0xdd:
		d.indexed(&r.IX, code[1:])
	case 0xfd:
		d.indexed(&r.IY, code[1:])
	}
}

// relative jump. the displacement has not been consumed
func (d *dispatch) jr(taken bool, offset uint8) {
	d.r.PC++
	if taken {
		d.r.PC += uint16(int8(offset))
		return
	}
	d.cpu.Adjust(-5)
}
