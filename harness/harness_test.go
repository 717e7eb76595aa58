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


package harness_test

import (
	"testing"

	"github.com/jetsetilly/gme8/curated"
	"github.com/jetsetilly/gme8/harness"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
	"github.com/jetsetilly/gme8/test"
)

func TestParseKind(t *testing.T) {
	k, err := harness.ParseKind("gbs")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, k, harness.GBS)
	test.ExpectEquality(t, k.String(), "GBS")

	_, err = harness.ParseKind("vcs")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, harness.UnknownKind))

	for _, n := range harness.Kinds() {
		_, err := harness.ParseKind(n)
		test.ExpectSuccess(t, err, n)
	}
}

func TestNESInterrupt(t *testing.T) {
	h, err := harness.New(harness.NES)
	test.DemandSuccess(t, err)

	// CLI; JMP $8001
	test.DemandSuccess(t, h.Load([]byte{0x58, 0x4c, 0x01, 0x80}, 0x8000))

	// LDA $10; EOR #$40; STA $10; STA $4011; RTI
	test.DemandSuccess(t, h.Load([]byte{0xa5, 0x10, 0x49, 0x40, 0x85, 0x10, 0x8d, 0x11, 0x40, 0x40}, 0x9000))
	test.DemandSuccess(t, h.Load([]byte{0x00, 0x90}, 0xfffe))

	h.Call(0x8000)
	test.ExpectSuccess(t, h.RunFrames(3))

	// the interrupt at the end of a frame is handled in the next frame
	test.ExpectEquality(t, h.Frames, 3)
	test.ExpectEquality(t, h.Interrupts, 3)
	test.ExpectEquality(t, h.Illegal, 0)

	tr := h.Beeper.Transitions()
	test.DemandEquality(t, len(tr), 2)
	test.ExpectSuccess(t, tr[0].Level)
	test.ExpectFailure(t, tr[1].Level)
	test.ExpectSuccess(t, tr[0].Time > h.FrameLength)
	test.ExpectSuccess(t, tr[1].Time > h.FrameLength*2)

	// the IO page is not RAM
	test.ExpectEquality(t, h.CPU.Memory().AccessAt(0x4011), paged.IO)
	test.ExpectEquality(t, h.CPU.Memory().AccessAt(0x8000), paged.RAM)
}

func TestCallIdle(t *testing.T) {
	h, err := harness.New(harness.KSS)
	test.DemandSuccess(t, err)
	h.SetPeriod(0)

	// LD A,$80; OUT ($AA),A; RET
	test.DemandSuccess(t, h.Load([]byte{0x3e, 0x80, 0xd3, 0xaa, 0xc9}, 0x0100))

	h.Call(0x0100)
	test.ExpectSuccess(t, h.RunFrames(1))
	test.ExpectSuccess(t, h.Idle())
	test.ExpectEquality(t, h.CPU.Now(), 0)

	tr := h.Beeper.Transitions()
	test.DemandEquality(t, len(tr), 1)
	test.ExpectEquality(t, tr[0], harness.Transition{Time: 18, Level: true})

	samples := h.Beeper.Samples(h.Clock(), 44100)
	test.ExpectSuccess(t, len(samples) > 1)
	test.ExpectApproximate(t, samples[1], harness.Amplitude, 0.001)
}

func TestGameBoyWake(t *testing.T) {
	h, err := harness.New(harness.GBS)
	test.DemandSuccess(t, err)

	// HALT; LD A,$08; LDH ($12),A; JR -2
	test.DemandSuccess(t, h.Load([]byte{0x76, 0x3e, 0x08, 0xe0, 0x12, 0x18, 0xfe}, 0x0200))

	h.Call(0x0200)

	// interrupts are disabled so the CPU wakes without taking the interrupt
	test.ExpectSuccess(t, h.RunFrames(2))
	test.ExpectEquality(t, h.Interrupts, 0)
	test.ExpectEquality(t, h.CPU.PC(), 0x0205)
	test.ExpectEquality(t, len(h.Beeper.Transitions()), 1)
}

func TestHuCMapping(t *testing.T) {
	h, err := harness.New(harness.HES)
	test.DemandSuccess(t, err)
	h.SetPeriod(0)

	mem := h.CPU.Memory()
	test.ExpectEquality(t, mem.AccessAt(0x0000), paged.IO)
	test.ExpectEquality(t, mem.AccessAt(0x2000), paged.RAM)

	// ST1 #$34; RTS
	test.DemandSuccess(t, h.Load([]byte{0x13, 0x34, 0x60}, 0x4000))

	h.Call(0x4000)
	test.ExpectSuccess(t, h.RunFrames(1))
	test.ExpectSuccess(t, h.Idle())
	test.ExpectEquality(t, h.VDC[2], 0x34)
}

func TestLoadTooLarge(t *testing.T) {
	h, err := harness.New(harness.AY)
	test.DemandSuccess(t, err)

	err = h.Load(make([]byte, 0x20), 0xfff0)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, harness.LoadTooLarge))
}

func TestStep(t *testing.T) {
	h, err := harness.New(harness.KSS)
	test.DemandSuccess(t, err)
	h.SetPeriod(0)

	// LD A,$80; OUT ($AA),A; RET
	test.DemandSuccess(t, h.Load([]byte{0x3e, 0x80, 0xd3, 0xaa, 0xc9}, 0x0100))
	h.Call(0x0100)

	ended, err := h.Step()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, ended)
	test.ExpectEquality(t, h.CPU.PC(), uint16(0x0102))
	test.ExpectEquality(t, h.CPU.Now(), 7)

	_, err = h.Step()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.CPU.PC(), uint16(0x0104))
	test.ExpectEquality(t, h.CPU.Now(), 18)

	_, err = h.Step()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, h.Idle())

	// the z80 has no table for the disassembler
	test.ExpectSuccess(t, h.Definitions() == nil)
}
