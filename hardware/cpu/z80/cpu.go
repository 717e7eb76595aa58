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

	"github.com/jetsetilly/gme8/assert"
	"github.com/jetsetilly/gme8/hardware/cpu/execution"
	"github.com/jetsetilly/gme8/hardware/cpu/timing"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
)

// IllegalOpcode is the opcode that hosts can use to fill unmapped memory.
// The CPU reads the byte pair ED ED as an undefined two byte NOP which is
// counted as illegal.
const IllegalOpcode = 0xed

// Variant selects the memory layout of the console.
type Variant struct {
	Name     string
	PageSize int
}

// KSS is the MSX and the Sega consoles played by the KSS format. The ROM
// banks of those consoles are switched in 8K pages.
var KSS = Variant{Name: "KSS", PageSize: 0x2000}

// AY is the ZX Spectrum and Amstrad CPC. The whole address space is RAM and
// the map has a single page.
var AY = Variant{Name: "AY", PageSize: 0x10000}

// CPU implements the Z80 dispatch engine.
type CPU struct {
	timing.Scheduler

	R   Registers
	Mem *paged.Map

	Diagnostics execution.Diagnostics

	variant Variant
	host    cpubus.Host
	ports   cpubus.Ports

	idleAddress uint16
	idle        bool

	// the address of the HALT instruction that stopped the CPU
	haltAddress uint16
	halted      bool

	owner assert.Owner
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(host cpubus.Host, ports cpubus.Ports, arena *paged.Arena, variant Variant) (*CPU, error) {
	mem, err := paged.NewMap(arena, 0x10000, variant.PageSize)
	if err != nil {
		return nil, fmt.Errorf("z80: %w", err)
	}

	cpu := &CPU{
		Mem:         mem,
		Diagnostics: execution.NewDiagnostics("z80"),
		variant:     variant,
		host:        host,
		ports:       ports,
	}
	cpu.Reset(IllegalOpcode)

	return cpu, nil
}

func (cpu *CPU) String() string {
	return cpu.R.String()
}

// Variant returns the variant the CPU was created with.
func (cpu *CPU) Variant() Variant {
	return cpu.variant
}

// Reset the CPU. Interrupts are disabled, the interrupt mode is zero and
// every page is unmapped.
func (cpu *CPU) Reset(fill uint8) {
	cpu.R = Registers{SP: 0xffff}
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

// Halted returns true if the CPU is stopped by a HALT instruction. It stops
// being halted when an interrupt is taken or when the host moves the
// program counter.
func (cpu *CPU) Halted() bool {
	return cpu.halted && cpu.R.PC == cpu.haltAddress
}

// state of a single call to Run()
type dispatch struct {
	cpu *CPU
	mem *paged.Map
	r   Registers

	// the instruction was illegal or not supported
	warning bool
}

// registers must be written back before any call to the host
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

func (d *dispatch) in(port uint16) uint8 {
	d.flush()
	return d.cpu.ports.In(port, d.cpu.Now())
}

func (d *dispatch) out(port uint16, data uint8) {
	d.flush()
	d.cpu.ports.Out(port, data, d.cpu.Now())
}

// operand reads the register with the index used in the opcode bit fields,
// including (HL) for index 6
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

// setIFF changes the interrupt flip-flops from inside the dispatch loop
func (d *dispatch) setIFF(enable bool) {
	was := d.r.IFF1
	d.r.IFF1 = enable
	d.r.IFF2 = enable
	if was == enable {
		return
	}

	d.flush()
	if enable {
		if !d.cpu.EnableIRQ() {
			d.cpu.Diagnostics.Unsupport("EI delayed effect")
		}
	} else if !d.cpu.DisableIRQ() {
		d.cpu.Diagnostics.Unsupport("Delayed DI")
	}
}

// take the interrupt requested by the host
func (d *dispatch) interrupt(irq cpubus.Interrupt) {
	ret := d.r.PC
	if d.cpu.halted && d.r.PC == d.cpu.haltAddress {
		ret++
	}
	d.cpu.halted = false

	var target uint16

	if irq.Vector == cpubus.Z80NMI {
		d.cpu.Adjust(nmiCycles)
		d.r.IFF1 = false
		target = cpubus.Z80NMI
	} else {
		d.r.IFF1 = false
		d.r.IFF2 = false
		switch d.r.IM {
		case 2:
			d.cpu.Adjust(im2Cycles)
			target = d.readWord(uint16(d.r.I)<<8 | irq.Vector&0x00ff)
		case 1:
			d.cpu.Adjust(im1Cycles)
			target = cpubus.Z80IRQ
		default:
			d.cpu.Adjust(im1Cycles)
			target = irq.Vector
		}
	}

	d.push(ret)
	d.r.PC = target
	d.flush()
	d.cpu.SetMasked(true)
}

// Run executes instructions until the end time is reached and the host
// doesn't request an interrupt. Returns true if an undefined or unsupported
// instruction was encountered.
func (cpu *CPU) Run(endTime int) bool {
	cpu.owner.Check("z80.Run")

	d := dispatch{
		cpu: cpu,
		mem: cpu.Mem,
		r:   cpu.R,
	}

	cpu.SetMasked(!d.r.IFF1)
	cpu.SetEndTime(endTime)

	for {
		if assert.Enabled && !cpu.Consistent() {
			panic(fmt.Sprintf("z80: stop time inconsistent: %s", cpu.Scheduler.String()))
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
		cpu.Adjust(int(baseCycles[opcode]))
		d.r.PC++
		d.execute(opcode, code)
	}

	d.flush()

	return d.warning
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
