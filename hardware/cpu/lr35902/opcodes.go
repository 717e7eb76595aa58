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

// execute the instruction in the main table. the program counter has been
// advanced past the opcode and the base cost has been charged
func (d *dispatch) execute(opcode uint8, code []byte) {
	r := &d.r
	n := code[1]
	nn := uint16(code[1]) | uint16(code[2])<<8

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

	case opcode&0xc7 == 0xc6: // ALU n
		r.PC++
		d.alu(opcode, n)
		return

	case opcode&0xc7 == 0x04: // INC r
		d.setOperand(y, d.inc(d.operand(y)))
		return

	case opcode&0xc7 == 0x05: // DEC r
		d.setOperand(y, d.dec(d.operand(y)))
		return

	case opcode&0xc7 == 0x06: // LD r,n
		r.PC++
		d.setOperand(y, n)
		return

	case opcode&0xc7 == 0xc7: // RST
		d.push(r.PC)
		r.PC = uint16(y) << 3
		return
	}

	switch opcode {
	case 0x00: // NOP

	case 0x10: // STOP
		r.PC++
		d.cpu.Diagnostics.Unsupport("STOP")

	case 0x01, 0x11, 0x21, 0x31: // LD rr,nn
		r.PC += 2
		r.setReg16(p, nn)

	case 0x03, 0x13, 0x23, 0x33: // INC rr
		r.setReg16(p, r.reg16(p)+1)
	case 0x0b, 0x1b, 0x2b, 0x3b: // DEC rr
		r.setReg16(p, r.reg16(p)-1)
	case 0x09, 0x19, 0x29, 0x39: // ADD HL,rr
		d.addHL(r.reg16(p))

	case 0x02: // LD (BC),A
		d.write(uint16(r.BC), r.A)
	case 0x12: // LD (DE),A
		d.write(uint16(r.DE), r.A)
	case 0x0a: // LD A,(BC)
		r.A = d.read(uint16(r.BC))
	case 0x1a: // LD A,(DE)
		r.A = d.read(uint16(r.DE))

	case 0x22: // LD (HL+),A
		d.write(uint16(r.HL), r.A)
		r.HL++
	case 0x32: // LD (HL-),A
		d.write(uint16(r.HL), r.A)
		r.HL--
	case 0x2a: // LD A,(HL+)
		r.A = d.read(uint16(r.HL))
		r.HL++
	case 0x3a: // LD A,(HL-)
		r.A = d.read(uint16(r.HL))
		r.HL--

	case 0x08: // LD (nn),SP
		r.PC += 2
		d.writeWord(nn, r.SP)

	case 0xe0: // LDH (n),A
		r.PC++
		d.write(0xff00|uint16(n), r.A)
	case 0xf0: // LDH A,(n)
		r.PC++
		r.A = d.read(0xff00 | uint16(n))
	case 0xe2: // LD (C),A
		d.write(0xff00|uint16(r.BC.Lo()), r.A)
	case 0xf2: // LD A,(C)
		r.A = d.read(0xff00 | uint16(r.BC.Lo()))
	case 0xea: // LD (nn),A
		r.PC += 2
		d.write(nn, r.A)
	case 0xfa: // LD A,(nn)
		r.PC += 2
		r.A = d.read(nn)

	case 0xe8: // ADD SP,e
		r.PC++
		r.SP = d.offsetSP(n)
	case 0xf8: // LD HL,SP+e
		r.PC++
		r.HL = registers.Pair(d.offsetSP(n))
	case 0xf9: // LD SP,HL
		r.SP = uint16(r.HL)

	case 0x07, 0x0f, 0x17, 0x1f: // RLCA RRCA RLA RRA
		r.A = d.rotate(opcode, r.A)
		r.F &= FlagC

	case 0x27: // DAA
		d.daa()
	case 0x2f: // CPL
		r.A ^= 0xff
		r.F |= FlagN | FlagH
	case 0x37: // SCF
		r.F = r.F&FlagZ | FlagC
	case 0x3f: // CCF
		r.F = (r.F & (FlagZ | FlagC)) ^ FlagC

	case 0x18: // JR e
		d.jr(true, n)
	case 0x20, 0x28, 0x30, 0x38: // JR cc,e
		d.jr(r.condition(y&3), n)

	case 0xc3: // JP nn
		r.PC = nn
	case 0xc2, 0xca, 0xd2, 0xda: // JP cc,nn
		if r.condition(y & 3) {
			d.cpu.Adjust(takenJP)
			r.PC = nn
		} else {
			r.PC += 2
		}
	case 0xe9: // JP HL
		r.PC = uint16(r.HL)

	case 0xcd: // CALL nn
		d.push(r.PC + 2)
		r.PC = nn
	case 0xc4, 0xcc, 0xd4, 0xdc: // CALL cc,nn
		if r.condition(y & 3) {
			d.cpu.Adjust(takenCall)
			d.push(r.PC + 2)
			r.PC = nn
		} else {
			r.PC += 2
		}

	case 0xc9: // RET
		r.PC = d.pop()
	case 0xc0, 0xc8, 0xd0, 0xd8: // RET cc
		if r.condition(y & 3) {
			d.cpu.Adjust(takenRet)
			r.PC = d.pop()
		}
	case 0xd9: // RETI
		r.PC = d.pop()
		d.setIME(true, true)

	case 0xc5, 0xd5, 0xe5: // PUSH rr
		d.push(r.reg16(p))
	case 0xf5: // PUSH AF
		d.push(uint16(r.A)<<8 | uint16(r.F))
	case 0xc1, 0xd1, 0xe1: // POP rr
		r.setReg16(p, d.pop())
	case 0xf1: // POP AF
		af := d.pop()
		r.A = uint8(af >> 8)
		r.F = uint8(af) & 0xf0

	case 0xf3: // DI
		d.setIME(false, false)
	case 0xfb: // EI
		d.setIME(true, false)

	case 0xcb:
		r.PC++
		d.bitInstructions(n)
	}
}

func (d *dispatch) jr(taken bool, offset uint8) {
	d.r.PC++
	if taken {
		d.cpu.Adjust(takenJR)
		d.r.PC += uint16(int8(offset))
	}
}

// the CB prefixed table
func (d *dispatch) bitInstructions(op uint8) {
	z := op & 7

	if z == 6 {
		if op&0xc0 == 0x40 {
			d.cpu.Adjust(cbBitHL)
		} else {
			d.cpu.Adjust(cbModifyHL)
		}
	} else {
		d.cpu.Adjust(cbRegister)
	}

	v := d.operand(z)

	switch op >> 6 {
	case 0:
		d.setOperand(z, d.rotate(op, v))
	case 1: // BIT
		d.bit(op, v)
	case 2: // RES
		d.setOperand(z, v&^(1<<(op>>3&7)))
	case 3: // SET
		d.setOperand(z, v|1<<(op>>3&7))
	}
}
