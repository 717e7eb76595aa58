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


package lr35902_test

import (
	"testing"

	"github.com/jetsetilly/gme8/hardware/cpu/lr35902"
	"github.com/jetsetilly/gme8/hardware/cpu/timing"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
	"github.com/jetsetilly/gme8/logger"
	"github.com/jetsetilly/gme8/test"
)

type busWrite struct {
	address uint16
	data    uint8
	time    int
}

type mockHost struct {
	cpu *lr35902.CPU

	io     [0x10000]uint8
	writes []busWrite

	irq       cpubus.Interrupt
	exhausted []int
}

func (h *mockHost) Read(address uint16, time int) uint8 {
	return h.io[address]
}

func (h *mockHost) Write(address uint16, data uint8, time int) {
	h.io[address] = data
	h.writes = append(h.writes, busWrite{address: address, data: data, time: time})
}

func (h *mockHost) BudgetExhausted(time int) cpubus.Interrupt {
	h.exhausted = append(h.exhausted, time)
	if !h.irq.Pending || time < h.cpu.IRQTime() || !h.cpu.R.IME {
		return cpubus.None
	}
	irq := h.irq
	h.irq = cpubus.None
	h.cpu.SetIRQTime(timing.Never)
	return irq
}

// RAM from $0000 to $7fff and from $ff80 to $ffff. IO from $ff00 to $ff7f
func newTestCPU(t *testing.T) (*lr35902.CPU, *mockHost) {
	t.Helper()

	host := &mockHost{}
	arena := paged.NewArena()
	mc, err := lr35902.NewCPU(host, arena)
	test.DemandSuccess(t, err)
	host.cpu = mc

	mc.Diagnostics.Permission = logger.Deny

	low := arena.Alloc(0x8000, 0)
	test.DemandSuccess(t, mc.Mem.Map(0x0000, 0x8000, low, 0, paged.RAM))
	test.DemandSuccess(t, mc.Mem.MapIO(0xff00, 0x80))
	high := arena.Alloc(0x80, 0)
	test.DemandSuccess(t, mc.Mem.Map(0xff80, 0x80, high, 0, paged.RAM))

	return mc, host
}

func putInstructions(mc *lr35902.CPU, origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mc.Mem.Poke(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func TestLoadStoreJump(t *testing.T) {
	mc, host := newTestCPU(t)

	// LD A,$05; LD ($4000),A; JP $0000
	putInstructions(mc, 0x0000, 0x3e, 0x05, 0xea, 0x00, 0x40, 0xc3, 0x00, 0x00)

	test.ExpectFailure(t, mc.Run(40))
	test.ExpectEquality(t, mc.R.A, 0x05)
	test.ExpectEquality(t, mc.Mem.Peek(0x4000), 0x05)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectEquality(t, mc.Now(), 40)
	test.ExpectEquality(t, len(host.exhausted), 1)
}

func TestHighPage(t *testing.T) {
	mc, host := newTestCPU(t)

	host.io[0xff44] = 0x90

	// LD A,$91; LDH ($40),A; LDH A,($44); LD C,$45; LD (C),A; JR -2
	putInstructions(mc, 0x0000, 0x3e, 0x91, 0xe0, 0x40, 0xf0, 0x44, 0x0e, 0x45, 0xe2, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(48))
	test.ExpectEquality(t, mc.R.PC, 0x0009)
	test.ExpectEquality(t, mc.R.A, 0x90)
	test.ExpectEquality(t, len(host.writes), 2)
	test.ExpectEquality(t, host.writes[0], busWrite{address: 0xff40, data: 0x91, time: 20})
	test.ExpectEquality(t, host.writes[1], busWrite{address: 0xff45, data: 0x90, time: 48})

	// IO is not visible to Peek()
	test.ExpectEquality(t, mc.Mem.Peek(0xff44), lr35902.IllegalOpcode)
}

func TestIncrementingLoads(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD HL,$4000; LD A,$aa; LD (HL+),A; LD (HL+),A; LD A,(HL-); JR -2
	putInstructions(mc, 0x0000, 0x21, 0x00, 0x40, 0x3e, 0xaa, 0x22, 0x22, 0x3a, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(44))
	test.ExpectEquality(t, mc.Now(), 44)
	test.ExpectEquality(t, mc.Mem.Peek(0x4000), 0xaa)
	test.ExpectEquality(t, mc.Mem.Peek(0x4001), 0xaa)
	test.ExpectEquality(t, mc.R.A, 0x00)
	test.ExpectEquality(t, mc.R.HL, 0x4001)
}

func TestConditionalCosts(t *testing.T) {
	mc, _ := newTestCPU(t)

	// XOR A; CALL NZ,$1000; RET NZ; CALL Z,$0100; JP $0008
	putInstructions(mc, 0x0000, 0xaf, 0xc4, 0x00, 0x10, 0xc0, 0xcc, 0x00, 0x01, 0xc3, 0x08, 0x00)

	// RET Z
	putInstructions(mc, 0x0100, 0xc8)

	// 4 + 12 + 8 + 24 + 20 + 16
	test.ExpectFailure(t, mc.Run(84))
	test.ExpectEquality(t, mc.Now(), 84)
	test.ExpectEquality(t, mc.R.PC, 0x0008)
	test.ExpectEquality(t, mc.R.SP, 0xfffe)
	test.ExpectEquality(t, mc.Mem.Peek(0xfffc), 0x08)
}

func TestRelativeJumpCosts(t *testing.T) {
	mc, _ := newTestCPU(t)
	mc.R.F = 0

	// JR +0; JR NZ,+0; JR Z,+0; JR -2
	putInstructions(mc, 0x0000, 0x18, 0x00, 0x20, 0x00, 0x28, 0x00, 0x18, 0xfe)

	// unconditional JR costs the same as a taken JR cc
	test.ExpectFailure(t, mc.Run(1))
	test.ExpectEquality(t, mc.Now(), 12)
	test.ExpectEquality(t, mc.R.PC, 0x0002)

	test.ExpectFailure(t, mc.Run(13))
	test.ExpectEquality(t, mc.Now(), 24)
	test.ExpectEquality(t, mc.R.PC, 0x0004)

	test.ExpectFailure(t, mc.Run(25))
	test.ExpectEquality(t, mc.Now(), 32)
	test.ExpectEquality(t, mc.R.PC, 0x0006)

	test.ExpectFailure(t, mc.Run(33))
	test.ExpectEquality(t, mc.Now(), 44)
	test.ExpectEquality(t, mc.R.PC, 0x0006)
}

func TestAddHL(t *testing.T) {
	mc, _ := newTestCPU(t)

	// XOR A; LD HL,$8fff; LD BC,$8001; ADD HL,BC; JR -2
	putInstructions(mc, 0x0000, 0xaf, 0x21, 0xff, 0x8f, 0x01, 0x01, 0x80, 0x09, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(36))
	test.ExpectEquality(t, mc.R.HL, 0x1000)

	// the zero flag is unaffected
	test.ExpectEquality(t, mc.R.F, lr35902.FlagZ|lr35902.FlagH|lr35902.FlagC)
}

func TestStackOffset(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD HL,SP+2; ADD SP,-2; JR -2
	putInstructions(mc, 0x0000, 0xf8, 0x02, 0xe8, 0xfe, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(12))
	test.ExpectEquality(t, mc.R.HL, 0x0000)
	test.ExpectEquality(t, mc.R.F, lr35902.FlagH|lr35902.FlagC)

	test.ExpectFailure(t, mc.Run(28))
	test.ExpectEquality(t, mc.R.SP, 0xfffc)
	test.ExpectEquality(t, mc.R.F, lr35902.FlagH|lr35902.FlagC)
}

func TestPopAF(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD BC,$12ff; PUSH BC; POP AF; JR -2
	putInstructions(mc, 0x0000, 0x01, 0xff, 0x12, 0xc5, 0xf1, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(40))
	test.ExpectEquality(t, mc.R.A, 0x12)

	// the low nibble of F is always zero
	test.ExpectEquality(t, mc.R.F, 0xf0)
}

func TestDAA(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD A,$15; ADD A,$27; DAA; JR -2
	putInstructions(mc, 0x0000, 0x3e, 0x15, 0xc6, 0x27, 0x27, 0x18, 0xfe)
	test.ExpectFailure(t, mc.Run(20))
	test.ExpectEquality(t, mc.R.A, 0x42)
	test.ExpectEquality(t, mc.R.F, 0x00)

	// LD A,$10; SUB $01; DAA; JR -2
	mc.R.PC = 0x0010
	putInstructions(mc, 0x0010, 0x3e, 0x10, 0xd6, 0x01, 0x27, 0x18, 0xfe)
	test.ExpectFailure(t, mc.Run(mc.Now()+20))
	test.ExpectEquality(t, mc.R.A, 0x09)
	test.ExpectEquality(t, mc.R.F, lr35902.FlagN)
}

func TestBitInstructions(t *testing.T) {
	mc, _ := newTestCPU(t)

	mc.R.HL = 0x4000

	// LD B,$f0; SWAP B; BIT 7,B; SET 7,(HL); BIT 7,(HL); JR -2
	putInstructions(mc, 0x0000, 0x06, 0xf0, 0xcb, 0x30, 0xcb, 0x78, 0xcb, 0xfe, 0xcb, 0x7e, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(16))
	test.ExpectEquality(t, mc.R.BC.Hi(), 0x0f)
	test.ExpectEquality(t, mc.R.F, 0x00)

	test.ExpectFailure(t, mc.Run(24))
	test.ExpectEquality(t, mc.R.F, lr35902.FlagZ|lr35902.FlagH)

	// 8 + 8 + 8 + 16 + 12
	test.ExpectFailure(t, mc.Run(52))
	test.ExpectEquality(t, mc.Now(), 52)
	test.ExpectEquality(t, mc.R.PC, 0x000a)
	test.ExpectEquality(t, mc.Mem.Peek(0x4000), 0x80)
	test.ExpectEquality(t, mc.R.F, lr35902.FlagH)
}

func TestInterrupt(t *testing.T) {
	mc, host := newTestCPU(t)

	// EI; JR -2
	putInstructions(mc, 0x0000, 0xfb, 0x18, 0xfe)

	// RETI
	putInstructions(mc, 0x0050, 0xd9)

	host.irq = cpubus.Request(0x0050)
	mc.SetIRQTime(20)

	test.ExpectFailure(t, mc.Run(40))

	// the interrupt is noticed after the JR that ends at 28
	test.ExpectEquality(t, host.exhausted[0], 28)
	test.ExpectEquality(t, mc.Now(), 48)
	test.ExpectEquality(t, mc.R.PC, 0x0050)
	test.ExpectEquality(t, mc.R.SP, 0xfffc)
	test.ExpectEquality(t, mc.Mem.Peek(0xfffc), 0x01)
	test.ExpectFailure(t, mc.R.IME)
	test.ExpectSuccess(t, mc.Masked())

	// RETI enables interrupts without delay
	test.ExpectFailure(t, mc.Run(100))
	test.ExpectEquality(t, mc.Now(), 100)
	test.ExpectEquality(t, mc.R.PC, 0x0001)
	test.ExpectEquality(t, mc.R.SP, 0xfffe)
	test.ExpectSuccess(t, mc.R.IME)
	test.ExpectFailure(t, mc.Masked())
}

func TestMaskedInterrupt(t *testing.T) {
	mc, host := newTestCPU(t)

	// JR -2
	putInstructions(mc, 0x0000, 0x18, 0xfe)

	host.irq = cpubus.Request(0x0040)
	mc.SetIRQTime(20)

	test.ExpectFailure(t, mc.Run(48))
	test.ExpectEquality(t, host.exhausted[0], 48)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectSuccess(t, host.irq.Pending)
}

func TestEI(t *testing.T) {
	mc, host := newTestCPU(t)

	// EI; LD A,1; JR -2
	putInstructions(mc, 0x0000, 0xfb, 0x3e, 0x01, 0x18, 0xfe)
	putInstructions(mc, 0x0040, 0x18, 0xfe)

	// the interrupt is already due when EI executes. the instruction after
	// EI is executed before the interrupt is taken
	host.irq = cpubus.Request(0x0040)
	mc.SetIRQTime(2)

	test.ExpectFailure(t, mc.Run(40))
	test.ExpectEquality(t, host.exhausted[0], 12)
	test.ExpectEquality(t, mc.R.A, 0x01)
	test.ExpectEquality(t, mc.Mem.Peek(0xfffc), 0x03)
}

func TestHalt(t *testing.T) {
	mc, _ := newTestCPU(t)

	// HALT; INC A; JR -2
	putInstructions(mc, 0x0000, 0x76, 0x3c, 0x18, 0xfe)

	// interrupts disabled. the CPU remains halted at the end time
	test.ExpectFailure(t, mc.Run(40))
	test.ExpectEquality(t, mc.Now(), 40)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectSuccess(t, mc.Halted())

	// waking without an interrupt continues after the HALT
	mc.Wake()
	test.ExpectFailure(t, mc.Halted())
	test.ExpectFailure(t, mc.Run(60))
	test.ExpectEquality(t, mc.Now(), 68)
	test.ExpectEquality(t, mc.R.A, 0x01)
	test.ExpectEquality(t, mc.R.PC, 0x0002)

	mc, host := newTestCPU(t)

	// EI; HALT
	putInstructions(mc, 0x0000, 0xfb, 0x76)
	putInstructions(mc, 0x0050, 0x18, 0xfe)

	host.irq = cpubus.Request(0x0050)
	mc.SetIRQTime(50)

	test.ExpectFailure(t, mc.Run(100))

	// HALT at 4 is charged 4 cycles and then advances in steps of four until
	// it reaches the interrupt at 50
	test.ExpectEquality(t, host.exhausted[0], 52)
	test.ExpectEquality(t, mc.Now(), 108)

	// the return address is after the HALT
	test.ExpectEquality(t, mc.Mem.Peek(0xfffc), 0x02)
	test.ExpectFailure(t, mc.Halted())
}

func TestIdleAddress(t *testing.T) {
	mc, host := newTestCPU(t)

	// NOP; JR -2
	putInstructions(mc, 0x0000, 0x00, 0x18, 0xfe)
	mc.SetIdleAddress(0x0001)

	test.ExpectFailure(t, mc.Run(1000))
	test.ExpectEquality(t, mc.Now(), 1000)
	test.ExpectEquality(t, mc.R.PC, 0x0001)
	test.ExpectEquality(t, len(host.exhausted), 1)
}

func TestStop(t *testing.T) {
	mc, _ := newTestCPU(t)

	// STOP; JR -2
	putInstructions(mc, 0x0000, 0x10, 0x00, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(4))
	test.ExpectEquality(t, mc.R.PC, 0x0002)
	test.ExpectEquality(t, mc.Diagnostics.Unsupported["STOP"], 1)
}

func TestIllegalOpcode(t *testing.T) {
	mc, _ := newTestCPU(t)

	putInstructions(mc, 0x0000, lr35902.IllegalOpcode, 0xfd, 0x18, 0xfe)

	test.ExpectSuccess(t, mc.Run(8))
	test.ExpectEquality(t, mc.Now(), 8)
	test.ExpectEquality(t, mc.R.PC, 0x0002)
	test.ExpectEquality(t, mc.Diagnostics.IllegalCount, 2)
	test.ExpectEquality(t, mc.Diagnostics.LastIllegal.Opcode, 0xfd)
	test.ExpectEquality(t, mc.Diagnostics.LastIllegal.Address, 0x0001)
}

// flags of an 8 bit addition or subtraction computed the long way
func arithmeticOracle(a, v uint8, carry bool, sub bool) (uint8, uint8) {
	c := 0
	if carry {
		c = 1
	}

	var result int
	var half bool
	if sub {
		result = int(a) - int(v) - c
		half = int(a&0x0f)-int(v&0x0f)-c < 0
	} else {
		result = int(a) + int(v) + c
		half = int(a&0x0f)+int(v&0x0f)+c > 0x0f
	}

	r := uint8(result)
	var f uint8
	if r == 0 {
		f |= lr35902.FlagZ
	}
	if sub {
		f |= lr35902.FlagN
	}
	if half {
		f |= lr35902.FlagH
	}
	if result < 0 || result > 0xff {
		f |= lr35902.FlagC
	}

	return r, f
}

func TestArithmeticOracle(t *testing.T) {
	mc, _ := newTestCPU(t)

	// ADC A,B; SBC A,B; CP B
	putInstructions(mc, 0x0000, 0x88)
	putInstructions(mc, 0x0010, 0x98)
	putInstructions(mc, 0x0020, 0xb8)

	for _, sub := range []bool{false, true} {
		for _, carry := range []bool{false, true} {
			for a := 0; a <= 0xff; a++ {
				for v := 0; v <= 0xff; v++ {
					mc.R.A = uint8(a)
					mc.R.BC.SetHi(uint8(v))
					mc.R.F = 0
					if carry {
						mc.R.F = lr35902.FlagC
					}
					mc.R.PC = 0x0000
					if sub {
						mc.R.PC = 0x0010
					}
					mc.Run(mc.Now() + 1)

					result, flags := arithmeticOracle(uint8(a), uint8(v), carry, sub)
					if !test.ExpectEquality(t, mc.R.A, result, a, v, carry, sub) {
						return
					}
					if !test.ExpectEquality(t, mc.R.F, flags, a, v, carry, sub) {
						return
					}
				}
			}
		}
	}

	// compare is a subtraction without carry that keeps the accumulator
	for a := 0; a <= 0xff; a++ {
		for v := 0; v <= 0xff; v++ {
			mc.R.A = uint8(a)
			mc.R.BC.SetHi(uint8(v))
			mc.R.F = lr35902.FlagC
			mc.R.PC = 0x0020
			mc.Run(mc.Now() + 1)

			_, flags := arithmeticOracle(uint8(a), uint8(v), false, true)
			if !test.ExpectEquality(t, mc.R.A, uint8(a), a, v) {
				return
			}
			if !test.ExpectEquality(t, mc.R.F, flags, a, v) {
				return
			}
		}
	}
}
