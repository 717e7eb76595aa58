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

package huc6280

import (
	"fmt"

	"github.com/jetsetilly/gme8/assert"
	"github.com/jetsetilly/gme8/hardware/cpu/execution"
	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
	"github.com/jetsetilly/gme8/hardware/cpu/registers"
	"github.com/jetsetilly/gme8/hardware/cpu/timing"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
)

// PageSize is the size of each of the eight logical pages.
const PageSize = 0x2000

// PageCount is the number of logical pages and mapping registers.
const PageCount = 8

// logical addresses of the zero page and the stack
const (
	zeroPage = 0x2000
	stack    = 0x2100
)

// Host is implemented by the emulator that owns the CPU. In addition to the
// memory access of cpubus.Host it is told of every change to a mapping
// register and of every write by the ST0, ST1 and ST2 instructions.
type Host interface {
	cpubus.Host

	// SetMMR is called when a mapping register is written. The host should
	// remap the page to the bank.
	SetMMR(page int, bank uint8)

	// WriteVDC writes to VDC register port 0, 2 or 3.
	WriteVDC(register int, data uint8, time int)
}

// Registers is the register file of the CPU.
type Registers struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status registers.StatusRegister
}

func (r Registers) String() string {
	return fmt.Sprintf("PC=%04x A=%02x X=%02x Y=%02x SP=%02x SR=%s", r.PC, r.A, r.X, r.Y, r.SP, r.Status)
}

// CPU implements the HuC6280 dispatch engine.
type CPU struct {
	timing.Scheduler

	R   Registers
	Mem *paged.Map

	Diagnostics execution.Diagnostics

	host Host
	mmr  [PageCount]uint8

	idleAddress uint16
	idle        bool

	owner assert.Owner
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(host Host, arena *paged.Arena) (*CPU, error) {
	mem, err := paged.NewMap(arena, 0x10000, PageSize)
	if err != nil {
		return nil, fmt.Errorf("huc6280: %w", err)
	}

	cpu := &CPU{
		Mem:         mem,
		Diagnostics: execution.NewDiagnostics("huc6280"),
		host:        host,
	}
	cpu.Reset(IllegalOpcode)

	return cpu, nil
}

func (cpu *CPU) String() string {
	return cpu.R.String()
}

// Reset the CPU. Every page is unmapped and every mapping register is zero.
// The host is not told of the mapping register reset.
func (cpu *CPU) Reset(fill uint8) {
	cpu.R = Registers{}
	cpu.R.Status.Reset()
	cpu.Mem.Reset(fill)
	cpu.Scheduler.Reset()
	cpu.Diagnostics.Reset()
	cpu.mmr = [PageCount]uint8{}
	cpu.idle = false
	cpu.owner.Release()
}

// MMR returns the value of the mapping register for the page.
func (cpu *CPU) MMR(page int) uint8 {
	return cpu.mmr[page&(PageCount-1)]
}

// SetMMR sets the mapping register for the page and tells the host. Used
// during track setup in the same way as the TAM instruction.
func (cpu *CPU) SetMMR(page int, bank uint8) {
	page &= PageCount - 1
	cpu.mmr[page] = bank
	cpu.host.SetMMR(page, bank)
}

// SetIdleAddress sets the address at which the CPU is considered to be idle.
func (cpu *CPU) SetIdleAddress(address uint16) {
	cpu.idleAddress = address
	cpu.idle = true
}

// ClearIdleAddress removes the idle address.
func (cpu *CPU) ClearIdleAddress() {
	cpu.idle = false
}

// Vector loads the program counter from the vector at the address.
func (cpu *CPU) Vector(address uint16) {
	cpu.R.PC = uint16(cpu.Mem.Peek(address)) | uint16(cpu.Mem.Peek(address+1))<<8
}

// status value as pushed to the stack. the T flag is never set
func pushStatus(sr registers.StatusRegister, brk bool) uint8 {
	v := sr.Value() &^ (registers.Unused | registers.Break)
	if brk {
		v |= registers.Break
	}
	return v
}

// state of a single call to Run()
type dispatch struct {
	cpu *CPU
	mem *paged.Map
	r   Registers

	// the instruction being executed
	defn *instructions.Definition
	code []byte
	ea   uint16

	// immediate value of the TST, TAM, TMA and ST instructions
	imm uint8

	illegal bool
}

func (d *dispatch) flush() {
	d.cpu.R = d.r
}

func (d *dispatch) read(address uint16) uint8 {
	if v, ok := d.mem.Load(address); ok {
		return v
	}
	d.flush()
	return d.cpu.host.Read(address, d.cpu.Now())
}

func (d *dispatch) write(address uint16, data uint8) {
	if d.mem.Store(address, data) {
		return
	}
	d.flush()
	d.cpu.host.Write(address, data, d.cpu.Now())
}

func (d *dispatch) readWord(address uint16) uint16 {
	return uint16(d.read(address)) | uint16(d.read(address+1))<<8
}

func (d *dispatch) push(data uint8) {
	d.write(stack|uint16(d.r.SP), data)
	d.r.SP--
}

func (d *dispatch) pull() uint8 {
	d.r.SP++
	return d.read(stack | uint16(d.r.SP))
}

// zero page pointer. the high byte wraps within the zero page
func (d *dispatch) pointer(zp uint8) uint16 {
	return uint16(d.read(zeroPage|uint16(zp))) | uint16(d.read(zeroPage|uint16(zp+1)))<<8
}

func (d *dispatch) setNZ(v uint8) {
	d.r.Status.Zero = v == 0
	d.r.Status.Sign = v&0x80 == 0x80
}

func (d *dispatch) compare(reg uint8, v uint8) {
	d.r.Status.Carry, d.r.Status.Zero, d.r.Status.Sign = registers.Compare(reg, v)
}

func (d *dispatch) decimal() {
	if d.r.Status.DecimalMode {
		d.cpu.Diagnostics.Unsupport("Decimal mode")
	}
}

// reflect a change to the I flag made by CLI, SEI or PLP
func (d *dispatch) changeMask() {
	d.flush()
	if d.r.Status.InterruptDisable {
		if !d.cpu.DisableIRQ() {
			d.cpu.Diagnostics.Unsupport("Delayed SEI")
		}
	} else if !d.cpu.EnableIRQ() {
		d.cpu.Diagnostics.Unsupport("Delayed CLI")
	}
}

func (d *dispatch) interrupt(vector uint16, brk bool) {
	r := &d.r
	d.cpu.Adjust(7)
	d.push(uint8(r.PC >> 8))
	d.push(uint8(r.PC))
	d.push(pushStatus(r.Status, brk))
	r.Status.DecimalMode = false
	r.Status.InterruptDisable = true
	r.PC = d.readWord(vector)
	d.flush()
	d.cpu.SetMasked(true)
}

func (d *dispatch) operand() uint8 {
	if d.defn.AddressingMode == instructions.Immediate {
		return d.imm
	}
	return d.read(d.ea)
}

// the single operand change made by a read-modify-write operation
func (d *dispatch) change(op operation, v uint8) uint8 {
	r := &d.r
	switch op {
	case opINC:
		return v + 1
	case opDEC:
		return v - 1
	case opASL:
		r.Status.Carry = v&0x80 == 0x80
		return v << 1
	case opLSR:
		r.Status.Carry = v&0x01 == 0x01
		return v >> 1
	case opROL:
		c := r.Status.Carry
		r.Status.Carry = v&0x80 == 0x80
		v <<= 1
		if c {
			v |= 0x01
		}
	case opROR:
		c := r.Status.Carry
		r.Status.Carry = v&0x01 == 0x01
		v >>= 1
		if c {
			v |= 0x80
		}
	}
	return v
}

// read-modify-write of memory or of the accumulator
func (d *dispatch) modify(op operation) uint8 {
	if d.defn.AddressingMode == instructions.Implied {
		d.r.A = d.change(op, d.r.A)
		return d.r.A
	}
	v := d.change(op, d.read(d.ea))
	d.write(d.ea, v)
	return v
}

// a not taken branch is two cycles cheaper than the charged cost
func (d *dispatch) branch(taken bool, offset uint8) {
	if taken {
		d.r.PC += uint16(int8(offset))
	} else {
		d.cpu.Adjust(-2)
	}
}

// decode the addressing mode of the instruction into the effective address
// and the immediate value
func (d *dispatch) decode() {
	r := &d.r
	code := d.code

	d.ea = 0
	d.imm = 0

	switch d.defn.AddressingMode {
	case instructions.Immediate:
		d.imm = code[1]
	case instructions.ZeroPage, instructions.ZeroPageRelative:
		d.ea = zeroPage | uint16(code[1])
	case instructions.ZeroPageIndexedX:
		d.ea = zeroPage | uint16(code[1]+r.X)
	case instructions.ZeroPageIndexedY:
		d.ea = zeroPage | uint16(code[1]+r.Y)
	case instructions.ZeroPageIndirect:
		d.ea = d.pointer(code[1])
	case instructions.IndexedIndirect:
		d.ea = d.pointer(code[1] + r.X)
	case instructions.IndirectIndexed:
		d.ea = d.pointer(code[1]) + uint16(r.Y)
	case instructions.Absolute:
		d.ea = uint16(code[1]) | uint16(code[2])<<8
	case instructions.AbsoluteIndexedX:
		d.ea = (uint16(code[1]) | uint16(code[2])<<8) + uint16(r.X)
	case instructions.AbsoluteIndexedY:
		d.ea = (uint16(code[1]) | uint16(code[2])<<8) + uint16(r.Y)
	case instructions.Indirect:
		d.ea = d.readWord(uint16(code[1]) | uint16(code[2])<<8)
	case instructions.AbsoluteIndexedIndirect:
		d.ea = d.readWord((uint16(code[1]) | uint16(code[2])<<8) + uint16(r.X))
	case instructions.ImmediateZeroPage:
		d.imm = code[1]
		d.ea = zeroPage | uint16(code[2])
	case instructions.ImmediateZeroPageX:
		d.imm = code[1]
		d.ea = zeroPage | uint16(code[2]+r.X)
	case instructions.ImmediateAbsolute:
		d.imm = code[1]
		d.ea = uint16(code[2]) | uint16(code[3])<<8
	case instructions.ImmediateAbsoluteX:
		d.imm = code[1]
		d.ea = (uint16(code[2]) | uint16(code[3])<<8) + uint16(r.X)
	}
}

// Run executes instructions until the end time is reached and the host
// doesn't request an interrupt. Returns true if an illegal or unsupported
// opcode was encountered.
func (cpu *CPU) Run(endTime int) bool {
	cpu.owner.Check("huc6280.Run")

	d := dispatch{
		cpu: cpu,
		mem: cpu.Mem,
		r:   cpu.R,
	}

	cpu.SetMasked(d.r.Status.InterruptDisable)
	cpu.SetEndTime(endTime)

	for {
		if assert.Enabled && !cpu.Consistent() {
			panic(fmt.Sprintf("huc6280: stop time inconsistent: %s", cpu.Scheduler.String()))
		}

		if cpu.idle && d.r.PC == cpu.idleAddress && cpu.Local() < 0 {
			cpu.SetLocal(0)
		}

		if cpu.Local() >= 0 {
			d.flush()
			irq := cpu.host.BudgetExhausted(cpu.Now())
			d.r = cpu.R
			if irq.Pending {
				d.interrupt(irq.Vector, false)
				continue
			}
			if cpu.Local() < 0 {
				continue
			}
			break
		}

		d.code = d.mem.CodePointer(d.r.PC)
		opcode := d.code[0]
		d.defn = &definitions[opcode]

		cpu.Adjust(cycles[opcode])

		d.decode()
		pc := d.r.PC
		d.r.PC += uint16(d.defn.Bytes)

		d.execute(opcode, pc)
	}

	d.flush()

	return d.illegal
}

func (d *dispatch) execute(opcode uint8, pc uint16) {
	cpu := d.cpu
	r := &d.r
	code := d.code
	ea := d.ea
	imm := d.imm

	switch op := operations[opcode]; op {
	case opIllegal:
		d.illegal = true
		cpu.Diagnostics.IllegalOpcode(pc, opcode)

	case opNOP, opCSH:

	case opCSL:
		d.illegal = true
		cpu.Diagnostics.Unsupport("CSL")
	case opSET:
		d.illegal = true
		cpu.Diagnostics.Unsupport("SET")

	case opLDA:
		r.A = d.operand()
		d.setNZ(r.A)
	case opLDX:
		r.X = d.operand()
		d.setNZ(r.X)
	case opLDY:
		r.Y = d.operand()
		d.setNZ(r.Y)

	case opSTA:
		d.write(ea, r.A)
	case opSTX:
		d.write(ea, r.X)
	case opSTY:
		d.write(ea, r.Y)
	case opSTZ:
		d.write(ea, 0)

	case opADC:
		d.decimal()
		r.A, r.Status.Carry, r.Status.Overflow = registers.Add(r.A, d.operand(), r.Status.Carry)
		d.setNZ(r.A)
	case opSBC:
		d.decimal()
		r.A, r.Status.Carry, r.Status.Overflow = registers.Subtract(r.A, d.operand(), r.Status.Carry)
		d.setNZ(r.A)

	case opAND:
		r.A &= d.operand()
		d.setNZ(r.A)
	case opORA:
		r.A |= d.operand()
		d.setNZ(r.A)
	case opEOR:
		r.A ^= d.operand()
		d.setNZ(r.A)

	case opCMP:
		d.compare(r.A, d.operand())
	case opCPX:
		d.compare(r.X, d.operand())
	case opCPY:
		d.compare(r.Y, d.operand())

	case opBIT:
		v := d.operand()
		r.Status.Sign = v&0x80 == 0x80
		r.Status.Overflow = v&0x40 == 0x40
		r.Status.Zero = v&r.A == 0
	case opTST:
		v := d.read(ea)
		r.Status.Sign = v&0x80 == 0x80
		r.Status.Overflow = v&0x40 == 0x40
		r.Status.Zero = v&imm == 0

	case opTSB:
		v := d.read(ea) | r.A
		r.Status.Overflow = v&0x40 == 0x40
		d.setNZ(v)
		d.write(ea, v)
	case opTRB:
		v := d.read(ea) &^ r.A
		r.Status.Overflow = v&0x40 == 0x40
		d.setNZ(v)
		d.write(ea, v)

	case opRMB:
		d.write(ea, d.read(ea)&^(1<<(opcode>>4&7)))
	case opSMB:
		d.write(ea, d.read(ea)|1<<(opcode>>4&7))

	case opINC, opDEC, opASL, opLSR, opROL, opROR:
		d.setNZ(d.modify(op))

	case opINX:
		r.X++
		d.setNZ(r.X)
	case opINY:
		r.Y++
		d.setNZ(r.Y)
	case opDEX:
		r.X--
		d.setNZ(r.X)
	case opDEY:
		r.Y--
		d.setNZ(r.Y)

	case opTAX:
		r.X = r.A
		d.setNZ(r.X)
	case opTAY:
		r.Y = r.A
		d.setNZ(r.Y)
	case opTXA:
		r.A = r.X
		d.setNZ(r.A)
	case opTYA:
		r.A = r.Y
		d.setNZ(r.A)
	case opTSX:
		r.X = r.SP
		d.setNZ(r.X)
	case opTXS:
		r.SP = r.X

	// the swap and clear instructions do not change the flags
	case opSXY:
		r.X, r.Y = r.Y, r.X
	case opSAX:
		r.A, r.X = r.X, r.A
	case opSAY:
		r.A, r.Y = r.Y, r.A
	case opCLA:
		r.A = 0
	case opCLX:
		r.X = 0
	case opCLY:
		r.Y = 0

	case opPHA:
		d.push(r.A)
	case opPHX:
		d.push(r.X)
	case opPHY:
		d.push(r.Y)
	case opPHP:
		d.push(pushStatus(r.Status, true))
	case opPLA:
		r.A = d.pull()
		d.setNZ(r.A)
	case opPLX:
		r.X = d.pull()
		d.setNZ(r.X)
	case opPLY:
		r.Y = d.pull()
		d.setNZ(r.Y)
	case opPLP:
		i := r.Status.InterruptDisable
		r.Status.FromValue(d.pull())
		r.Status.Break = false
		if i != r.Status.InterruptDisable {
			d.changeMask()
		}

	case opCLC:
		r.Status.Carry = false
	case opSEC:
		r.Status.Carry = true
	case opCLD:
		r.Status.DecimalMode = false
	case opSED:
		r.Status.DecimalMode = true
	case opCLV:
		r.Status.Overflow = false
	case opCLI:
		if r.Status.InterruptDisable {
			r.Status.InterruptDisable = false
			d.changeMask()
		}
	case opSEI:
		if !r.Status.InterruptDisable {
			r.Status.InterruptDisable = true
			d.changeMask()
		}

	case opJMP:
		r.PC = ea
	case opJSR:
		ret := r.PC - 1
		d.push(uint8(ret >> 8))
		d.push(uint8(ret))
		r.PC = ea
	case opBSR:
		ret := r.PC - 1
		d.push(uint8(ret >> 8))
		d.push(uint8(ret))
		r.PC += uint16(int8(code[1]))
	case opRTS:
		lo := d.pull()
		hi := d.pull()
		r.PC = (uint16(hi)<<8 | uint16(lo)) + 1
	case opRTI:
		i := r.Status.InterruptDisable
		r.Status.FromValue(d.pull())
		r.Status.Break = false
		lo := d.pull()
		hi := d.pull()
		r.PC = uint16(hi)<<8 | uint16(lo)
		if i != r.Status.InterruptDisable {
			d.flush()
			cpu.SetMasked(r.Status.InterruptDisable)
		}
	case opBRK:
		r.PC++
		d.interrupt(cpubus.HuCIRQ2, true)

	case opBranch:
		var flag bool
		switch opcode >> 6 {
		case 0:
			flag = r.Status.Sign
		case 1:
			flag = r.Status.Overflow
		case 2:
			flag = r.Status.Carry
		case 3:
			flag = r.Status.Zero
		}
		d.branch(flag == (opcode&0x20 == 0x20), code[1])
	case opBRA:
		d.branch(true, code[1])
	case opBBR:
		d.branch(d.read(ea)&(1<<(opcode>>4&7)) == 0, code[2])
	case opBBS:
		d.branch(d.read(ea)&(1<<(opcode>>4&7)) != 0, code[2])

	case opTAM:
		for i := 0; i < PageCount; i++ {
			if imm&(1<<i) != 0 {
				d.flush()
				cpu.SetMMR(i, r.A)
			}
		}
	case opTMA:
		for i := 0; i < PageCount; i++ {
			if imm&(1<<i) != 0 {
				r.A = cpu.mmr[i]
			}
		}

	case opST0:
		d.flush()
		cpu.host.WriteVDC(0, imm, cpu.Now())
	case opST1:
		d.flush()
		cpu.host.WriteVDC(2, imm, cpu.Now())
	case opST2:
		d.flush()
		cpu.host.WriteVDC(3, imm, cpu.Now())

	case opBlock:
		d.blockTransfer(opcode)
	}
}

// direction of the source or destination address of a block transfer
type direction int

const (
	increment direction = iota
	decrement
	fixed
	alternate
)

// offset of the address for byte i of the transfer
func (dir direction) offset(i int) uint16 {
	switch dir {
	case increment:
		return uint16(i)
	case decrement:
		return uint16(-i)
	case alternate:
		return uint16(i & 1)
	}
	return 0
}

// blockTransfer performs one of the TII, TDD, TIN, TIA and TAI instructions.
// Y, A and X are saved below the stack pointer, which is not changed. A
// length of zero transfers 64k bytes.
func (d *dispatch) blockTransfer(opcode uint8) {
	r := &d.r
	code := d.code

	src := uint16(code[1]) | uint16(code[2])<<8
	dst := uint16(code[3]) | uint16(code[4])<<8
	length := int(code[5]) | int(code[6])<<8
	if length == 0 {
		length = 0x10000
	}

	d.write(stack|uint16(r.SP), r.Y)
	d.write(stack|uint16(r.SP-1), r.A)
	d.write(stack|uint16(r.SP-2), r.X)

	var srcDir, dstDir direction

	switch opcode {
	case 0x73: // TII
		srcDir, dstDir = increment, increment
	case 0xc3: // TDD
		srcDir, dstDir = decrement, decrement
	case 0xd3: // TIN
		srcDir, dstDir = increment, fixed
	case 0xe3: // TIA
		srcDir, dstDir = increment, alternate
	case 0xf3: // TAI
		srcDir, dstDir = alternate, increment
	}

	for i := 0; i < length; i++ {
		v := d.read(src + srcDir.offset(i))
		d.cpu.Adjust(6)
		d.write(dst+dstDir.offset(i), v)
	}
}

// Call the routine at the address. The return address is pushed in the same
// way as JSR so that RTS continues at ret.
func (cpu *CPU) Call(address uint16, ret uint16) {
	ret--
	cpu.Mem.Poke(stack|uint16(cpu.R.SP), uint8(ret>>8))
	cpu.R.SP--
	cpu.Mem.Poke(stack|uint16(cpu.R.SP), uint8(ret))
	cpu.R.SP--
	cpu.R.PC = address
}

// PC returns the program counter.
func (cpu *CPU) PC() uint16 {
	return cpu.R.PC
}

// Memory returns the memory map.
func (cpu *CPU) Memory() *paged.Map {
	return cpu.Mem
}

// Diag returns the diagnostics.
func (cpu *CPU) Diag() *execution.Diagnostics {
	return &cpu.Diagnostics
}
