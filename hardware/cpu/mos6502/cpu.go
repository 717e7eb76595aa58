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

package mos6502

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

// Variant selects the differences between the 6502 based consoles.
type Variant struct {
	Name string

	// whether the D flag affects ADC and SBC
	Decimal bool

	// size of each page in the memory map
	PageSize int
}

// List of supported variants.
var (
	RP2A03 = Variant{Name: "RP2A03", Decimal: false, PageSize: 0x800}
	Atari  = Variant{Name: "6502", Decimal: true, PageSize: 0x800}
)

// Registers is the register file of the CPU. It is authoritative only
// between calls to Run().
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

// CPU implements the 6502 dispatch engine.
type CPU struct {
	// time and the stop time of the dispatch loop
	timing.Scheduler

	R   Registers
	Mem *paged.Map

	Diagnostics execution.Diagnostics

	variant Variant
	host    cpubus.Host

	idleAddress uint16
	idle        bool

	owner assert.Owner
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// memory map has a 64k address space with pages of the size given by the
// variant.
func NewCPU(host cpubus.Host, arena *paged.Arena, variant Variant) (*CPU, error) {
	mem, err := paged.NewMap(arena, 0x10000, variant.PageSize)
	if err != nil {
		return nil, fmt.Errorf("mos6502: %w", err)
	}

	cpu := &CPU{
		Mem:         mem,
		Diagnostics: execution.NewDiagnostics("mos6502"),
		variant:     variant,
		host:        host,
	}
	cpu.Reset(IllegalOpcode)

	return cpu, nil
}

func (cpu *CPU) String() string {
	return cpu.R.String()
}

// Variant returns the variant of the CPU.
func (cpu *CPU) Variant() Variant {
	return cpu.variant
}

// Reset the CPU. Registers are zeroed, except for the stack pointer which is
// $ff, and interrupts are disabled. Every page of memory is unmapped and
// filled with the fill value. Time is zero and no interrupt is pending.
func (cpu *CPU) Reset(fill uint8) {
	cpu.R = Registers{SP: 0xff}
	cpu.R.Status.Reset()
	cpu.Mem.Reset(fill)
	cpu.Scheduler.Reset()
	cpu.Diagnostics.Reset()
	cpu.idle = false
	cpu.owner.Release()
}

// SetIdleAddress sets the address at which the CPU is considered to be idle.
// When the program counter reaches the address, time is advanced to the stop
// time. Players use this to park the CPU after the play routine returns.
func (cpu *CPU) SetIdleAddress(address uint16) {
	cpu.idleAddress = address
	cpu.idle = true
}

// ClearIdleAddress removes the idle address.
func (cpu *CPU) ClearIdleAddress() {
	cpu.idle = false
}

// Vector loads the program counter from the vector at the address. eg.
// cpubus.Reset.
func (cpu *CPU) Vector(address uint16) {
	cpu.R.PC = uint16(cpu.Mem.Peek(address)) | uint16(cpu.Mem.Peek(address+1))<<8
}

// state of a single call to Run()
type dispatch struct {
	cpu     *CPU
	mem     *paged.Map
	r       Registers
	decimal bool

	// the instruction being executed
	defn *instructions.Definition
	code []byte
	ea   uint16

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
	d.write(0x100|uint16(d.r.SP), data)
	d.r.SP--
}

func (d *dispatch) pull() uint8 {
	d.r.SP++
	return d.read(0x100 | uint16(d.r.SP))
}

func (d *dispatch) setNZ(v uint8) {
	d.r.Status.Zero = v == 0
	d.r.Status.Sign = v&0x80 == 0x80
}

func (d *dispatch) adc(v uint8) {
	r := &d.r
	if d.decimal && r.Status.DecimalMode {
		r.A, r.Status.Carry, r.Status.Zero, r.Status.Overflow, r.Status.Sign = registers.AddDecimal(r.A, v, r.Status.Carry)
		return
	}
	r.A, r.Status.Carry, r.Status.Overflow = registers.Add(r.A, v, r.Status.Carry)
	d.setNZ(r.A)
}

func (d *dispatch) sbc(v uint8) {
	r := &d.r
	bin, carry, overflow := registers.Subtract(r.A, v, r.Status.Carry)
	if d.decimal && r.Status.DecimalMode {
		r.A, _ = registers.SubtractDecimal(r.A, v, r.Status.Carry)
	} else {
		r.A = bin
	}
	r.Status.Carry = carry
	r.Status.Overflow = overflow
	d.setNZ(bin)
}

func (d *dispatch) compare(reg uint8, v uint8) {
	d.r.Status.Carry, d.r.Status.Zero, d.r.Status.Sign = registers.Compare(reg, v)
}

func (d *dispatch) asl(v uint8) uint8 {
	d.r.Status.Carry = v&0x80 == 0x80
	return v << 1
}

func (d *dispatch) lsr(v uint8) uint8 {
	d.r.Status.Carry = v&0x01 == 0x01
	return v >> 1
}

func (d *dispatch) rol(v uint8) uint8 {
	c := d.r.Status.Carry
	d.r.Status.Carry = v&0x80 == 0x80
	v <<= 1
	if c {
		v |= 0x01
	}
	return v
}

func (d *dispatch) ror(v uint8) uint8 {
	c := d.r.Status.Carry
	d.r.Status.Carry = v&0x01 == 0x01
	v >>= 1
	if c {
		v |= 0x80
	}
	return v
}

// the single operand change made by a read-modify-write operation
func (d *dispatch) change(op operation, v uint8) uint8 {
	switch op {
	case opINC:
		return v + 1
	case opDEC:
		return v - 1
	case opASL, opSLO:
		return d.asl(v)
	case opLSR, opSRE:
		return d.lsr(v)
	case opROL, opRLA:
		return d.rol(v)
	case opROR, opRRA:
		return d.ror(v)
	}
	return v
}

// read operand. immediate values are taken from the code
func (d *dispatch) operand() uint8 {
	if d.defn.AddressingMode == instructions.Immediate {
		return d.code[1]
	}
	return d.read(d.ea)
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

func (d *dispatch) interrupt(vector uint16, brk bool) {
	r := &d.r
	d.cpu.Adjust(7)
	d.push(uint8(r.PC >> 8))
	d.push(uint8(r.PC))
	sr := r.Status.Value() &^ registers.Break
	if brk {
		sr |= registers.Break
	}
	d.push(sr)
	r.Status.InterruptDisable = true
	r.PC = d.readWord(vector)

	// interrupts are now masked so the stop time is the end time
	d.flush()
	d.cpu.SetMasked(true)
}

func (d *dispatch) crossed(base uint16, ea uint16) uint16 {
	if d.defn.PageSensitive && base&0xff00 != ea&0xff00 {
		d.cpu.Adjust(1)
	}
	return ea
}

// the effective address of the instruction, charging the page crossing cycle
// where necessary
func (d *dispatch) effectiveAddress() uint16 {
	r := &d.r
	code := d.code

	switch d.defn.AddressingMode {
	case instructions.Immediate:
		return r.PC + 1
	case instructions.ZeroPage:
		return uint16(code[1])
	case instructions.ZeroPageIndexedX:
		return uint16(code[1] + r.X)
	case instructions.ZeroPageIndexedY:
		return uint16(code[1] + r.Y)
	case instructions.Absolute:
		return uint16(code[1]) | uint16(code[2])<<8
	case instructions.AbsoluteIndexedX:
		base := uint16(code[1]) | uint16(code[2])<<8
		return d.crossed(base, base+uint16(r.X))
	case instructions.AbsoluteIndexedY:
		base := uint16(code[1]) | uint16(code[2])<<8
		return d.crossed(base, base+uint16(r.Y))
	case instructions.IndexedIndirect:
		zp := code[1] + r.X
		return uint16(d.read(uint16(zp))) | uint16(d.read(uint16(zp+1)))<<8
	case instructions.IndirectIndexed:
		zp := code[1]
		base := uint16(d.read(uint16(zp))) | uint16(d.read(uint16(zp+1)))<<8
		return d.crossed(base, base+uint16(r.Y))
	case instructions.Indirect:
		// the high byte of the pointer is not incremented when the low
		// byte wraps
		ptr := uint16(code[1]) | uint16(code[2])<<8
		return uint16(d.read(ptr)) | uint16(d.read(ptr&0xff00|(ptr+1)&0x00ff))<<8
	}
	return 0
}

// Run executes instructions until the end time is reached and the host
// doesn't request an interrupt. Returns true if an illegal opcode was
// encountered.
func (cpu *CPU) Run(endTime int) bool {
	cpu.owner.Check("mos6502.Run")

	d := dispatch{
		cpu:     cpu,
		mem:     cpu.Mem,
		r:       cpu.R,
		decimal: cpu.variant.Decimal,
	}

	cpu.SetMasked(d.r.Status.InterruptDisable)
	cpu.SetEndTime(endTime)

	for {
		if assert.Enabled && !cpu.Consistent() {
			panic(fmt.Sprintf("mos6502: stop time inconsistent: %s", cpu.Scheduler.String()))
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

		// the cost of the instruction is charged before it executes
		cpu.Adjust(cycles[opcode])

		d.ea = d.effectiveAddress()
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

	switch op := operations[opcode]; op {
	case opIllegal:
		d.illegal = true
		cpu.Diagnostics.IllegalOpcode(pc, opcode)

	case opNOP:

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

	case opADC:
		d.adc(d.operand())
	case opSBC:
		d.sbc(d.operand())

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
		r.Status.Zero = v&r.A == 0
		r.Status.Sign = v&0x80 == 0x80
		r.Status.Overflow = v&0x40 == 0x40

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

	case opPHA:
		d.push(r.A)
	case opPHP:
		d.push(r.Status.Value() | registers.Break)
	case opPLA:
		r.A = d.pull()
		d.setNZ(r.A)
	case opPLP:
		i := r.Status.InterruptDisable
		r.Status.FromValue(d.pull())
		r.Status.Break = false
		if i != r.Status.InterruptDisable {
			d.flush()
			if r.Status.InterruptDisable {
				if !cpu.DisableIRQ() {
					cpu.Diagnostics.Unsupport("Delayed SEI")
				}
			} else if !cpu.EnableIRQ() {
				cpu.Diagnostics.Unsupport("Delayed CLI")
			}
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
			d.flush()
			if !cpu.EnableIRQ() {
				cpu.Diagnostics.Unsupport("Delayed CLI")
			}
		}
	case opSEI:
		if !r.Status.InterruptDisable {
			r.Status.InterruptDisable = true
			d.flush()
			if !cpu.DisableIRQ() {
				cpu.Diagnostics.Unsupport("Delayed SEI")
			}
		}

	case opJMP:
		r.PC = ea
	case opJSR:
		ret := r.PC - 1
		d.push(uint8(ret >> 8))
		d.push(uint8(ret))
		r.PC = ea
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
		// the byte after BRK is skipped
		r.PC++
		cpu.Adjust(-7)
		d.interrupt(cpubus.IRQ, true)

	case opBranch:
		d.branch(opcode)

	case opLAX:
		r.A = d.operand()
		r.X = r.A
		d.setNZ(r.A)
	case opSAX:
		d.write(ea, r.A&r.X)
	case opDCP:
		v := d.read(ea) - 1
		d.write(ea, v)
		d.compare(r.A, v)
	case opISC:
		v := d.read(ea) + 1
		d.write(ea, v)
		d.sbc(v)
	case opSLO:
		r.A |= d.modify(op)
		d.setNZ(r.A)
	case opRLA:
		r.A &= d.modify(op)
		d.setNZ(r.A)
	case opSRE:
		r.A ^= d.modify(op)
		d.setNZ(r.A)
	case opRRA:
		d.adc(d.modify(op))
	case opANC:
		r.A &= code[1]
		d.setNZ(r.A)
		r.Status.Carry = r.Status.Sign
	case opALR:
		r.A = d.lsr(r.A & code[1])
		d.setNZ(r.A)
	case opARR:
		if d.decimal && r.Status.DecimalMode {
			cpu.Diagnostics.Unsupport("Decimal ARR")
		}
		v := r.A & code[1]
		r.A = v >> 1
		if r.Status.Carry {
			r.A |= 0x80
		}
		d.setNZ(r.A)
		r.Status.Carry = r.A&0x40 == 0x40
		r.Status.Overflow = (r.A>>6)&1 != (r.A>>5)&1
	case opSBX:
		v := r.A & r.X
		r.Status.Carry = v >= code[1]
		r.X = v - code[1]
		d.setNZ(r.X)
	}
}

// conditional branches. the condition flag is selected by the top two bits of
// the opcode and the value it is compared with by bit 5
func (d *dispatch) branch(opcode uint8) {
	r := &d.r

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
	if flag == (opcode&0x20 == 0x20) {
		target := r.PC + uint16(int8(d.code[1]))
		d.cpu.Adjust(1)
		if target&0xff00 != r.PC&0xff00 {
			d.cpu.Adjust(1)
		}
		r.PC = target
	}
}

// Call the routine at the address. The return address is pushed in the same
// way as JSR so that RTS continues at ret.
func (cpu *CPU) Call(address uint16, ret uint16) {
	ret--
	cpu.Mem.Poke(0x0100|uint16(cpu.R.SP), uint8(ret>>8))
	cpu.R.SP--
	cpu.Mem.Poke(0x0100|uint16(cpu.R.SP), uint8(ret))
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
