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


package z80_test

import (
	"testing"

	"github.com/jetsetilly/gme8/hardware/cpu/timing"
	"github.com/jetsetilly/gme8/hardware/cpu/z80"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
	"github.com/jetsetilly/gme8/logger"
	"github.com/jetsetilly/gme8/test"
)

type portWrite struct {
	port uint16
	data uint8
	time int
}

type mockHost struct {
	cpu *z80.CPU

	io   [0x10000]uint8
	in   [0x10000]uint8
	outs []portWrite

	// interrupt raised when the IRQ time is reached and interrupts are
	// enabled. the NMI is raised regardless of the interrupt flip-flops
	irq cpubus.Interrupt

	exhausted []int
}

func (h *mockHost) Read(address uint16, time int) uint8 {
	return h.io[address]
}

func (h *mockHost) Write(address uint16, data uint8, time int) {
	h.io[address] = data
}

func (h *mockHost) In(port uint16, time int) uint8 {
	return h.in[port]
}

func (h *mockHost) Out(port uint16, data uint8, time int) {
	h.outs = append(h.outs, portWrite{port: port, data: data, time: time})
}

func (h *mockHost) BudgetExhausted(time int) cpubus.Interrupt {
	h.exhausted = append(h.exhausted, time)
	if !h.irq.Pending || time < h.cpu.IRQTime() {
		return cpubus.None
	}
	if h.irq.Vector != cpubus.Z80NMI && !h.cpu.R.IFF1 {
		return cpubus.None
	}
	irq := h.irq
	h.irq = cpubus.None
	h.cpu.SetIRQTime(timing.Never)
	return irq
}

// RAM from $0000 to $7fff and from $a000 to $ffff. IO from $8000 to $9fff
func newTestCPU(t *testing.T) (*z80.CPU, *mockHost) {
	t.Helper()

	host := &mockHost{}
	arena := paged.NewArena()
	mc, err := z80.NewCPU(host, host, arena, z80.KSS)
	test.DemandSuccess(t, err)
	host.cpu = mc

	mc.Diagnostics.Permission = logger.Deny

	low := arena.Alloc(0x8000, 0)
	test.DemandSuccess(t, mc.Mem.Map(0x0000, 0x8000, low, 0, paged.RAM))
	test.DemandSuccess(t, mc.Mem.MapIO(0x8000, 0x2000))
	high := arena.Alloc(0x6000, 0)
	test.DemandSuccess(t, mc.Mem.Map(0xa000, 0x6000, high, 0, paged.RAM))

	return mc, host
}

func putInstructions(mc *z80.CPU, origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mc.Mem.Poke(origin+uint16(i), b)
	}
	return origin + uint16(len(bytes))
}

func TestLoadStoreJump(t *testing.T) {
	mc, host := newTestCPU(t)

	// LD A,$05; LD ($4000),A; JP $0000
	putInstructions(mc, 0x0000, 0x3e, 0x05, 0x32, 0x00, 0x40, 0xc3, 0x00, 0x00)

	test.ExpectFailure(t, mc.Run(30))
	test.ExpectEquality(t, mc.R.A, 0x05)
	test.ExpectEquality(t, mc.Mem.Peek(0x4000), 0x05)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectEquality(t, mc.Now(), 30)
	test.ExpectEquality(t, len(host.exhausted), 1)
}

func TestHostAccess(t *testing.T) {
	mc, host := newTestCPU(t)

	host.io[0x8001] = 0x42

	// LD A,($8001); LD ($8002),A; JR -2
	putInstructions(mc, 0x0000, 0x3a, 0x01, 0x80, 0x32, 0x02, 0x80, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(26))
	test.ExpectEquality(t, mc.R.A, 0x42)
	test.ExpectEquality(t, host.io[0x8002], 0x42)

	// IO is not visible to Peek()
	test.ExpectEquality(t, mc.Mem.Peek(0x8001), z80.IllegalOpcode)
}

func TestDJNZ(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD B,3; DJNZ -2; JP $0004
	putInstructions(mc, 0x0000, 0x06, 0x03, 0x10, 0xfe, 0xc3, 0x04, 0x00)

	// two taken branches of 13 and one of 8
	test.ExpectFailure(t, mc.Run(41))
	test.ExpectEquality(t, mc.Now(), 41)
	test.ExpectEquality(t, mc.R.PC, 0x0004)
	test.ExpectEquality(t, mc.R.BC.Hi(), 0x00)
}

func TestConditionalCosts(t *testing.T) {
	mc, _ := newTestCPU(t)

	// XOR A; CALL NZ,$1000; RET NZ; CALL Z,$0100; JP $0008
	putInstructions(mc, 0x0000, 0xaf, 0xc4, 0x00, 0x10, 0xc0, 0xcc, 0x00, 0x01, 0xc3, 0x08, 0x00)

	// RET Z
	putInstructions(mc, 0x0100, 0xc8)

	// 4 + 10 + 5 + 17 + 11
	test.ExpectFailure(t, mc.Run(47))
	test.ExpectEquality(t, mc.Now(), 47)
	test.ExpectEquality(t, mc.R.PC, 0x0008)
	test.ExpectEquality(t, mc.R.SP, 0xffff)
	test.ExpectEquality(t, mc.Mem.Peek(0xfffd), 0x08)
}

func TestInterruptMode1(t *testing.T) {
	mc, host := newTestCPU(t)

	// IM 1; EI; JR -2
	putInstructions(mc, 0x0000, 0xed, 0x56, 0xfb, 0x18, 0xfe)
	putInstructions(mc, 0x0038, 0x18, 0xfe)

	host.irq = cpubus.Request(cpubus.Z80IRQ)
	mc.SetIRQTime(20)

	test.ExpectFailure(t, mc.Run(30))

	// the interrupt is noticed after the JR that ends at 24 and costs 13
	test.ExpectEquality(t, host.exhausted[0], 24)
	test.ExpectEquality(t, mc.Now(), 37)
	test.ExpectEquality(t, mc.R.PC, 0x0038)
	test.ExpectEquality(t, mc.R.SP, 0xfffd)
	test.ExpectEquality(t, mc.Mem.Peek(0xfffd), 0x03)
	test.ExpectFailure(t, mc.R.IFF1)
	test.ExpectFailure(t, mc.R.IFF2)
	test.ExpectSuccess(t, mc.Masked())
}

func TestInterruptMode2(t *testing.T) {
	mc, host := newTestCPU(t)

	// IM 2; EI; JR -2
	putInstructions(mc, 0x0000, 0xed, 0x5e, 0xfb, 0x18, 0xfe)
	putInstructions(mc, 0x12fe, 0x00, 0x40)
	putInstructions(mc, 0x4000, 0x18, 0xfe)
	mc.R.I = 0x12

	host.irq = cpubus.Request(0x00fe)
	mc.SetIRQTime(20)

	test.ExpectFailure(t, mc.Run(30))
	test.ExpectEquality(t, mc.Now(), 43)
	test.ExpectEquality(t, mc.R.PC, 0x4000)
	test.ExpectEquality(t, mc.R.IM, 2)
}

func TestMaskedInterrupt(t *testing.T) {
	mc, host := newTestCPU(t)

	// JR -2
	putInstructions(mc, 0x0000, 0x18, 0xfe)

	host.irq = cpubus.Request(cpubus.Z80IRQ)
	mc.SetIRQTime(20)

	// interrupts are disabled after reset so the budget is only exhausted at
	// the end time
	test.ExpectFailure(t, mc.Run(48))
	test.ExpectEquality(t, host.exhausted[0], 48)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectSuccess(t, host.irq.Pending)
}

func TestNMI(t *testing.T) {
	mc, host := newTestCPU(t)

	// JR -2
	putInstructions(mc, 0x0000, 0x18, 0xfe)

	// RETN
	putInstructions(mc, 0x0066, 0xed, 0x45)

	host.irq = cpubus.Request(cpubus.Z80NMI)
	mc.SetIRQTime(20)

	test.ExpectFailure(t, mc.Run(24))
	test.ExpectEquality(t, host.exhausted[0], 24)
	test.ExpectEquality(t, mc.Now(), 35)
	test.ExpectEquality(t, mc.R.PC, 0x0066)

	test.ExpectFailure(t, mc.Run(50))
	test.ExpectEquality(t, mc.Now(), 61)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectEquality(t, mc.R.SP, 0xffff)
}

func TestEI(t *testing.T) {
	mc, host := newTestCPU(t)

	// IM 1; DI; EI; LD A,1; JR -2
	putInstructions(mc, 0x0000, 0xed, 0x56, 0xf3, 0xfb, 0x3e, 0x01, 0x18, 0xfe)
	putInstructions(mc, 0x0038, 0x18, 0xfe)

	// the interrupt is already due when the EI instruction executes. the
	// instruction after EI is executed before the interrupt is taken
	host.irq = cpubus.Request(cpubus.Z80IRQ)
	mc.SetIRQTime(5)

	test.ExpectFailure(t, mc.Run(40))
	test.ExpectEquality(t, host.exhausted[0], 23)
	test.ExpectEquality(t, mc.R.A, 0x01)
	test.ExpectEquality(t, mc.Mem.Peek(0xfffd), 0x06)
}

func TestHalt(t *testing.T) {
	mc, _ := newTestCPU(t)

	// HALT
	putInstructions(mc, 0x0000, 0x76)

	// interrupts disabled. the CPU remains halted at the end time
	test.ExpectFailure(t, mc.Run(40))
	test.ExpectEquality(t, mc.Now(), 40)
	test.ExpectEquality(t, mc.R.PC, 0x0000)
	test.ExpectSuccess(t, mc.Halted())

	mc, host := newTestCPU(t)

	// IM 1; EI; HALT
	putInstructions(mc, 0x0000, 0xed, 0x56, 0xfb, 0x76)
	putInstructions(mc, 0x0038, 0x18, 0xfe)

	host.irq = cpubus.Request(cpubus.Z80IRQ)
	mc.SetIRQTime(50)

	test.ExpectFailure(t, mc.Run(100))

	// HALT at 12 is charged 4 cycles and then advances in steps of four
	// until it reaches the interrupt at 50
	test.ExpectEquality(t, host.exhausted[0], 52)
	test.ExpectEquality(t, mc.Now(), 101)

	// execution resumes after the HALT instruction
	test.ExpectEquality(t, mc.Mem.Peek(0xfffd), 0x04)
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

func TestBlockLoad(t *testing.T) {
	mc, _ := newTestCPU(t)

	putInstructions(mc, 0x4000, 0x11, 0x22, 0x33)

	// LD HL,$4000; LD DE,$5000; LD BC,3; LDIR; JR -2
	putInstructions(mc, 0x0000, 0x21, 0x00, 0x40, 0x11, 0x00, 0x50, 0x01, 0x03, 0x00, 0xed, 0xb0, 0x18, 0xfe)

	// LDIR is 21 cycles when it repeats and 16 when it finishes
	test.ExpectFailure(t, mc.Run(88))
	test.ExpectEquality(t, mc.Now(), 88)
	test.ExpectEquality(t, mc.R.PC, 0x000b)
	test.ExpectEquality(t, mc.R.BC, 0x0000)
	test.ExpectEquality(t, mc.R.HL, 0x4003)
	test.ExpectEquality(t, mc.R.DE, 0x5003)
	test.ExpectEquality(t, mc.Mem.Peek(0x5000), 0x11)
	test.ExpectEquality(t, mc.Mem.Peek(0x5001), 0x22)
	test.ExpectEquality(t, mc.Mem.Peek(0x5002), 0x33)
	test.ExpectEquality(t, mc.R.F&z80.FlagP, 0)
}

func TestBlockCompare(t *testing.T) {
	mc, _ := newTestCPU(t)

	putInstructions(mc, 0x4000, 0x11, 0x22, 0x33, 0x44)

	// LD A,$33; LD HL,$4000; LD BC,4; CPIR; JR -2
	putInstructions(mc, 0x0000, 0x3e, 0x33, 0x21, 0x00, 0x40, 0x01, 0x04, 0x00, 0xed, 0xb1, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(85))
	test.ExpectEquality(t, mc.Now(), 85)
	test.ExpectEquality(t, mc.R.PC, 0x000a)
	test.ExpectEquality(t, mc.R.BC, 0x0001)
	test.ExpectEquality(t, mc.R.HL, 0x4003)
	test.ExpectEquality(t, mc.R.F&(z80.FlagZ|z80.FlagP|z80.FlagN), z80.FlagZ|z80.FlagP|z80.FlagN)
}

func TestBlockOut(t *testing.T) {
	mc, host := newTestCPU(t)

	putInstructions(mc, 0x4000, 0xaa, 0xbb)

	// LD HL,$4000; LD BC,$0210; OTIR; JR -2
	putInstructions(mc, 0x0000, 0x21, 0x00, 0x40, 0x01, 0x10, 0x02, 0xed, 0xb3, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(57))
	test.ExpectEquality(t, mc.R.PC, 0x0008)
	test.ExpectEquality(t, len(host.outs), 2)

	// B is decremented before the port is written
	test.ExpectEquality(t, host.outs[0].port, 0x0110)
	test.ExpectEquality(t, host.outs[0].data, 0xaa)
	test.ExpectEquality(t, host.outs[0].time, 41)
	test.ExpectEquality(t, host.outs[1].port, 0x0010)
	test.ExpectEquality(t, host.outs[1].data, 0xbb)
	test.ExpectEquality(t, host.outs[1].time, 57)
	test.ExpectEquality(t, mc.R.F&z80.FlagZ, z80.FlagZ)
}

func TestPorts(t *testing.T) {
	mc, host := newTestCPU(t)

	host.in[0x1234] = 0x99

	// LD A,$12; OUT ($34),A; LD A,$12; IN A,($34); JR -2
	putInstructions(mc, 0x0000, 0x3e, 0x12, 0xd3, 0x34, 0x3e, 0x12, 0xdb, 0x34, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(36))
	test.ExpectEquality(t, len(host.outs), 1)
	test.ExpectEquality(t, host.outs[0], portWrite{port: 0x1234, data: 0x12, time: 18})
	test.ExpectEquality(t, mc.R.A, 0x99)
}

func TestIndexed(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD IX,$4000; LD (IX+5),$77; INC (IX+5); LD A,(IX+5); SET 0,(IX+5)
	end := putInstructions(mc, 0x0000,
		0xdd, 0x21, 0x00, 0x40,
		0xdd, 0x36, 0x05, 0x77,
		0xdd, 0x34, 0x05,
		0xdd, 0x7e, 0x05,
		0xdd, 0xcb, 0x05, 0xc6,
	)

	// JR -2
	putInstructions(mc, end, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(98))
	test.ExpectEquality(t, mc.Now(), 98)
	test.ExpectEquality(t, mc.R.PC, end)
	test.ExpectEquality(t, mc.R.A, 0x78)
	test.ExpectEquality(t, mc.Mem.Peek(0x4005), 0x79)
}

func TestIndexedHalves(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD IY,$8000; LD IYH,$12; LD A,IYH; LD IYL,A; RL (IY-1),B
	end := putInstructions(mc, 0x0000,
		0xfd, 0x21, 0x00, 0x80,
		0xfd, 0x26, 0x12,
		0xfd, 0x7c,
		0xfd, 0x6f,
		0xfd, 0xcb, 0xff, 0x10,
	)
	putInstructions(mc, end, 0x18, 0xfe)
	putInstructions(mc, 0x1211, 0x81)

	test.ExpectFailure(t, mc.Run(64))
	test.ExpectEquality(t, mc.R.PC, end)
	test.ExpectEquality(t, mc.R.A, 0x12)
	test.ExpectEquality(t, mc.R.IY, 0x1212)

	// the result is written to memory and copied to B
	test.ExpectEquality(t, mc.Mem.Peek(0x1211), 0x02)
	test.ExpectEquality(t, mc.R.BC.Hi(), 0x02)
	test.ExpectEquality(t, mc.R.F&z80.FlagC, z80.FlagC)
}

func TestUnnecessaryPrefix(t *testing.T) {
	mc, _ := newTestCPU(t)

	// DD NOP; JR -2
	putInstructions(mc, 0x0000, 0xdd, 0x00, 0x18, 0xfe)

	test.ExpectSuccess(t, mc.Run(12))
	test.ExpectEquality(t, mc.Now(), 12)
	test.ExpectEquality(t, mc.R.PC, 0x0002)
	test.ExpectEquality(t, mc.Diagnostics.Unsupported["Unnecessary DD/FD prefix"], 1)
}

func TestIllegalOpcode(t *testing.T) {
	mc, _ := newTestCPU(t)

	putInstructions(mc, 0x0000, z80.IllegalOpcode, z80.IllegalOpcode, 0x18, 0xfe)

	test.ExpectSuccess(t, mc.Run(8))
	test.ExpectEquality(t, mc.Now(), 8)
	test.ExpectEquality(t, mc.R.PC, 0x0002)
	test.ExpectEquality(t, mc.Diagnostics.IllegalCount, 1)
	test.ExpectEquality(t, mc.Diagnostics.LastIllegal.Prefix, 0xed)
	test.ExpectEquality(t, mc.Diagnostics.LastIllegal.Opcode, 0xed)
	test.ExpectEquality(t, mc.Diagnostics.LastIllegal.Address, 0x0000)
}

func TestExchange(t *testing.T) {
	mc, _ := newTestCPU(t)

	mc.R.A = 0x01
	mc.R.F = 0x02
	mc.R.BC = 0x0304
	mc.R.DE = 0x0506
	mc.R.HL = 0x0708
	mc.R.AltAF = 0x1112
	mc.R.AltBC = 0x1314

	// EX AF,AF'; EXX; EX DE,HL; JR -2
	putInstructions(mc, 0x0000, 0x08, 0xd9, 0xeb, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(12))
	test.ExpectEquality(t, mc.R.A, 0x11)
	test.ExpectEquality(t, mc.R.F, 0x12)
	test.ExpectEquality(t, mc.R.AltAF, 0x0102)
	test.ExpectEquality(t, mc.R.BC, 0x1314)
	test.ExpectEquality(t, mc.R.AltBC, 0x0304)
	test.ExpectEquality(t, mc.R.AltDE, 0x0506)
	test.ExpectEquality(t, mc.R.AltHL, 0x0708)
	test.ExpectEquality(t, mc.R.DE, 0x0000)
	test.ExpectEquality(t, mc.R.HL, 0x0000)
}

func TestIncDecFlags(t *testing.T) {
	mc, _ := newTestCPU(t)

	// LD A,$7f; INC A; DEC A; JR -2
	putInstructions(mc, 0x0000, 0x3e, 0x7f, 0x3c, 0x18, 0xfe)
	test.ExpectFailure(t, mc.Run(11))
	test.ExpectEquality(t, mc.R.A, 0x80)
	test.ExpectEquality(t, mc.R.F, z80.FlagS|z80.FlagH|z80.FlagP)

	mc.R.PC = 0x0010
	putInstructions(mc, 0x0010, 0x3d, 0x18, 0xfe)
	test.ExpectFailure(t, mc.Run(mc.Now()+4))
	test.ExpectEquality(t, mc.R.A, 0x7f)
	test.ExpectEquality(t, mc.R.F, z80.Flag5|z80.FlagH|z80.Flag3|z80.FlagP|z80.FlagN)
}

func TestBitTiming(t *testing.T) {
	mc, _ := newTestCPU(t)

	mc.R.HL = 0x4000
	mc.Mem.Poke(0x4000, 0x80)

	// BIT 7,(HL); SET 0,(HL); BIT 0,B; JR -2
	putInstructions(mc, 0x0000, 0xcb, 0x7e, 0xcb, 0xc6, 0xcb, 0x40, 0x18, 0xfe)

	test.ExpectFailure(t, mc.Run(12))
	test.ExpectEquality(t, mc.R.F&(z80.FlagS|z80.FlagZ|z80.FlagH), z80.FlagS|z80.FlagH)

	test.ExpectFailure(t, mc.Run(27))
	test.ExpectEquality(t, mc.Mem.Peek(0x4000), 0x81)

	test.ExpectFailure(t, mc.Run(35))
	test.ExpectEquality(t, mc.R.F&(z80.FlagZ|z80.FlagP), z80.FlagZ|z80.FlagP)
	test.ExpectEquality(t, mc.R.PC, 0x0006)
}

// flags of an 8 bit addition or subtraction computed the long way
func arithmeticOracle(a, v uint8, carry bool, sub bool) (uint8, uint8) {
	c := 0
	if carry {
		c = 1
	}

	var result int
	var half, overflow bool
	if sub {
		result = int(a) - int(v) - c
		half = int(a&0x0f)-int(v&0x0f)-c < 0
		overflow = (a^v)&0x80 != 0 && (a^uint8(result))&0x80 != 0
	} else {
		result = int(a) + int(v) + c
		half = int(a&0x0f)+int(v&0x0f)+c > 0x0f
		overflow = (a^v)&0x80 == 0 && (a^uint8(result))&0x80 != 0
	}

	r := uint8(result)
	f := r & (z80.FlagS | z80.Flag5 | z80.Flag3)
	if r == 0 {
		f |= z80.FlagZ
	}
	if half {
		f |= z80.FlagH
	}
	if overflow {
		f |= z80.FlagP
	}
	if sub {
		f |= z80.FlagN
	}
	if result < 0 || result > 0xff {
		f |= z80.FlagC
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
						mc.R.F = z80.FlagC
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

	// compare is a subtraction without carry that keeps the accumulator.
	// bits 5 and 3 come from the operand
	for a := 0; a <= 0xff; a++ {
		for v := 0; v <= 0xff; v++ {
			mc.R.A = uint8(a)
			mc.R.BC.SetHi(uint8(v))
			mc.R.F = z80.FlagC
			mc.R.PC = 0x0020
			mc.Run(mc.Now() + 1)

			_, flags := arithmeticOracle(uint8(a), uint8(v), false, true)
			flags = flags&^(z80.Flag5|z80.Flag3) | uint8(v)&(z80.Flag5|z80.Flag3)
			if !test.ExpectEquality(t, mc.R.A, uint8(a), a, v) {
				return
			}
			if !test.ExpectEquality(t, mc.R.F, flags, a, v) {
				return
			}
		}
	}
}
