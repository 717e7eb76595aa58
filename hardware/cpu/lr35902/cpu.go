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

	"github.com/jetsetilly/gme8/assert"
	"github.com/jetsetilly/gme8/hardware/cpu/execution"
	"github.com/jetsetilly/gme8/hardware/cpu/timing"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
)

// IllegalOpcode is the opcode that hosts can use to fill unmapped memory.
const IllegalOpcode = 0xd3

// PageSize is small enough for the hardware registers at $ff00 to be mapped
// separately from the high RAM at $ff80.
const PageSize = 0x80

// CPU implements the LR35902 dispatch engine.
type CPU struct {
	timing.Scheduler

	R   Registers
	Mem *paged.Map

	Diagnostics execution.Diagnostics

	host cpubus.Host

	idleAddress uint16
	idle        bool

	haltAddress uint16
	halted      bool

	owner assert.Owner
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(host cpubus.Host, arena *paged.Arena) (*CPU, error) {
	mem, err := paged.NewMap(arena, 0x10000, PageSize)
	if err != nil {
		return nil, fmt.Errorf("lr35902: %w", err)
	}

	cpu := &CPU{
		Mem:         mem,
		Diagnostics: execution.NewDiagnostics("lr35902"),
		host:        host,
	}
	cpu.Reset(IllegalOpcode)

	return cpu, nil
}

func (cpu *CPU) String() string {
	return cpu.R.String()
}

// Reset the CPU. Interrupts are disabled and every page is unmapped.
func (cpu *CPU) Reset(fill uint8) {
	cpu.R = Registers{SP: 0xfffe}
	cpu.Mem.Reset(fill)
	cpu.Scheduler.Reset()
	cpu.Diagnostics.Reset()
	cpu.idle = false
	cpu.halted = false
	cpu.owner.Release()
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

// Halted returns true if the CPU is stopped by a HALT instruction.
func (cpu *CPU) Halted() bool {
	return cpu.halted && cpu.R.PC == cpu.haltAddress
}

// Wake a halted CPU without taking an interrupt. This is what happens when
// an interrupt is flagged while the interrupt master enable is off.
func (cpu *CPU) Wake() {
	if cpu.Halted() {
		cpu.R.PC++
	}
	cpu.halted = false
}

// state of a single call to Run()
type dispatch struct {
	cpu *CPU
	mem *paged.Map
	r   Registers

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

func (d *dispatch) writeWord(address uint16, data uint16) {
	d.write(address, uint8(data))
	d.write(address+1, uint8(data>>8))
}

func (d *dispatch) push(data uint16) {
	d.r.SP -= 2
	d.writeWord(d.r.SP, data)
}

func (d *dispatch) pop() uint16 {
	v := d.readWord(d.r.SP)
	d.r.SP += 2
	return v
}

func (d *dispatch) operand(i uint8) uint8 {
	if i&7 == 6 {
		return d.read(uint16(d.r.HL))
	}
	return d.r.reg8(i)
}

func (d *dispatch) setOperand(i uint8, v uint8) {
	if i&7 == 6 {
		d.write(uint16(d.r.HL), v)
		return
	}
	d.r.setReg8(i, v)
}

// setIME changes the interrupt master enable from inside the dispatch loop.
// the immediate flag is used by RETI which has no delayed effect
func (d *dispatch) setIME(enable bool, immediate bool) {
	if d.r.IME == enable {
		return
	}
	d.r.IME = enable
	d.flush()

	switch {
	case immediate:
		d.cpu.SetMasked(!enable)
	case enable:
		if !d.cpu.EnableIRQ() {
			d.cpu.Diagnostics.Unsupport("EI delayed effect")
		}
	default:
		if !d.cpu.DisableIRQ() {
			d.cpu.Diagnostics.Unsupport("Delayed DI")
		}
	}
}

// take the interrupt requested by the host. the vector is the address of the
// interrupt handler
func (d *dispatch) interrupt(irq cpubus.Interrupt) {
	ret := d.r.PC
	if d.cpu.halted && d.r.PC == d.cpu.haltAddress {
		ret++
	}
	d.cpu.halted = false

	d.cpu.Adjust(interruptCycles)
	d.r.IME = false
	d.push(ret)
	d.r.PC = irq.Vector
	d.flush()
	d.cpu.SetMasked(true)
}

// Run executes instructions until the end time is reached and the host
// doesn't request an interrupt. Returns true if an undefined opcode was
// encountered.
func (cpu *CPU) Run(endTime int) bool {
	cpu.owner.Check("lr35902.Run")

	d := dispatch{
		cpu: cpu,
		mem: cpu.Mem,
		r:   cpu.R,
	}

	cpu.SetMasked(!d.r.IME)
	cpu.SetEndTime(endTime)

	for {
		if assert.Enabled && !cpu.Consistent() {
			panic(fmt.Sprintf("lr35902: stop time inconsistent: %s", cpu.Scheduler.String()))
		}

		if cpu.idle && d.r.PC == cpu.idleAddress && cpu.Local() < 0 {
			cpu.SetLocal(0)
		}

		if cpu.Local() >= 0 {
			d.flush()
			irq := cpu.host.BudgetExhausted(cpu.Now())
			d.r = cpu.R
			if irq.Pending {
				d.interrupt(irq)
				continue
			}
			if cpu.Local() < 0 {
				continue
			}
			break
		}

		code := d.mem.CodePointer(d.r.PC)
		opcode := code[0]
		cpu.Adjust(int(cycles[opcode]))
		d.r.PC++

		if undefined[opcode] {
			d.illegal = true
			cpu.Diagnostics.IllegalOpcode(d.r.PC-1, opcode)
			continue
		}

		d.execute(opcode, code)
	}

	d.flush()

	return d.illegal
}

// Call the routine at the address. The return address is pushed so that RET
// continues at ret.
func (cpu *CPU) Call(address uint16, ret uint16) {
	cpu.R.SP -= 2
	cpu.Mem.Poke(cpu.R.SP, uint8(ret))
	cpu.Mem.Poke(cpu.R.SP+1, uint8(ret>>8))
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
