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


package harness

import (
	"fmt"

	"github.com/jetsetilly/gme8/curated"
	"github.com/jetsetilly/gme8/hardware/clocks"
	"github.com/jetsetilly/gme8/hardware/cpu"
	"github.com/jetsetilly/gme8/hardware/cpu/huc6280"
	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
	"github.com/jetsetilly/gme8/hardware/cpu/lr35902"
	"github.com/jetsetilly/gme8/hardware/cpu/mos6502"
	"github.com/jetsetilly/gme8/hardware/cpu/timing"
	"github.com/jetsetilly/gme8/hardware/cpu/z80"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
	"github.com/jetsetilly/gme8/logger"
)

// IdleAddress is the return address of routines started with Call(). The
// CPU is idle when the routine has returned.
const IdleAddress = 0xfff0

// the number of log entries each CPU is allowed to make
const maxLogEntries = 100

// LoadTooLarge is returned by Load() when the data does not fit.
const LoadTooLarge = "harness: %d bytes at %#04x is larger than the address space"

// Harness is the owning emulator of a CPU.
type Harness struct {
	CPU  cpu.CPU
	Kind Kind

	// number of cycles in a frame. defaults to the frame rate of the console
	FrameLength int

	// number of cycles between periodic interrupts. zero for no interrupts
	Period int

	// the recorded output of the beeper
	Beeper Beeper

	// counts since the last reset
	Frames     int
	Interrupts int
	Illegal    int

	// OnFrame is called at the end of every frame, if it is not nil. An
	// error stops RunFrames()
	OnFrame func(frame int) error

	profile profile
	arena   *paged.Arena
	ram     paged.Handle

	// the host side of memory mapped IO and of the Z80 ports. reads return
	// the last value written
	io    [0x10000]uint8
	ports [0x100]uint8

	// last value written to each VDC register by the HuC6280
	VDC [4]uint8

	// the concrete engines with features outside of the CPU interface
	huc *huc6280.CPU
	gb  *lr35902.CPU
}

// New creates a harness for the console kind. The CPU is reset and the
// memory is mapped.
func New(kind Kind) (*Harness, error) {
	if kind < 0 || int(kind) >= len(profiles) {
		return nil, curated.Errorf(UnknownKind, kind)
	}

	h := &Harness{
		Kind:    kind,
		profile: profiles[kind],
		arena:   paged.NewArena(),
	}
	h.ram = h.arena.Alloc(0x10000, 0)
	h.FrameLength = clocks.CyclesPerFrame(h.profile.clock, h.profile.fps)
	h.Period = h.FrameLength

	var err error

	switch kind {
	case NES:
		h.CPU, err = mos6502.NewCPU(h, h.arena, mos6502.RP2A03)
	case SAP:
		h.CPU, err = mos6502.NewCPU(h, h.arena, mos6502.Atari)
	case HES:
		h.huc, err = huc6280.NewCPU(h, h.arena)
		h.CPU = h.huc
	case KSS:
		h.CPU, err = z80.NewCPU(h, h, h.arena, z80.KSS)
	case AY:
		h.CPU, err = z80.NewCPU(h, h, h.arena, z80.AY)
	case GBS:
		h.gb, err = lr35902.NewCPU(h, h.arena)
		h.CPU = h.gb
	}
	if err != nil {
		return nil, fmt.Errorf("harness: %w", err)
	}

	// a program that has gone wrong can meet an illegal opcode on every
	// frame
	h.CPU.Diag().Permission = logger.NewLimit(maxLogEntries)

	if err := h.Reset(); err != nil {
		return nil, err
	}

	return h, nil
}

// Reset the CPU and remap memory. The contents of RAM are not changed.
func (h *Harness) Reset() error {
	mem := h.CPU.Memory()
	h.CPU.Reset(mem.Fill())

	if err := mem.Map(0, mem.AddressSpace(), h.ram, 0, paged.RAM); err != nil {
		return fmt.Errorf("harness: %w", err)
	}

	switch {
	case h.huc != nil:
		// IO in the first page and the rest of memory in order
		h.huc.SetMMR(0, 0xff)
		for p := 1; p < huc6280.PageCount; p++ {
			h.huc.SetMMR(p, uint8(p))
		}
	case !h.profile.ports:
		if err := mem.MapIO(int(h.profile.io), mem.PageSize()); err != nil {
			return fmt.Errorf("harness: %w", err)
		}
	}

	h.Beeper.Reset()
	h.Frames = 0
	h.Interrupts = 0
	h.Illegal = 0

	if h.Period > 0 {
		h.CPU.SetIRQTime(h.Period)
	}

	return nil
}

// Clock returns the speed of the CPU in MHz.
func (h *Harness) Clock() float64 {
	return h.profile.clock
}

// FrameRate returns the number of frames per second of the console.
func (h *Harness) FrameRate() float64 {
	return h.profile.fps
}

// RAM returns the bytes of the flat RAM.
func (h *Harness) RAM() []byte {
	return h.arena.Bytes(h.ram)[:0x10000]
}

// Load copies the data into RAM at the address.
func (h *Harness) Load(data []byte, address uint16) error {
	if int(address)+len(data) > 0x10000 {
		return curated.Errorf(LoadTooLarge, len(data), address)
	}
	copy(h.RAM()[address:], data)
	logger.Logf(logger.Allow, "harness", "loaded %d bytes at %#04x", len(data), address)
	return nil
}

// Call the routine at the address. The CPU idles at IdleAddress when the
// routine returns.
func (h *Harness) Call(address uint16) {
	h.CPU.SetIdleAddress(IdleAddress)
	h.CPU.Call(address, IdleAddress)
}

// Idle returns true if the CPU is at the idle address.
func (h *Harness) Idle() bool {
	return h.CPU.PC() == IdleAddress
}

// RunFrames runs the CPU for the number of frames.
func (h *Harness) RunFrames(frames int) error {
	for i := 0; i < frames; i++ {
		if h.CPU.Run(h.FrameLength) {
			h.Illegal++
		}
		if err := h.endFrame(); err != nil {
			return err
		}
	}
	return nil
}

// Step runs a single instruction, or a single interrupt, and ends the frame
// if the frame is complete. Returns true if the frame has ended.
func (h *Harness) Step() (bool, error) {
	end := h.CPU.Now() + 1
	if end > h.FrameLength {
		end = h.FrameLength
	}
	if h.CPU.Run(end) {
		h.Illegal++
	}
	if h.CPU.Now() < h.FrameLength {
		return false, nil
	}
	return true, h.endFrame()
}

func (h *Harness) endFrame() error {
	h.CPU.EndFrame(h.FrameLength)
	h.Beeper.endFrame(h.FrameLength)
	h.Frames++

	if h.OnFrame != nil {
		return h.OnFrame(h.Frames)
	}
	return nil
}

// Definitions returns the instruction table of the CPU for use with the
// disassembly package. Returns nil if the CPU has no table.
func (h *Harness) Definitions() *instructions.Table {
	switch h.Kind {
	case NES, SAP:
		return mos6502.Definitions()
	case HES:
		return huc6280.Definitions()
	}
	return nil
}

// SetPeriod changes the number of cycles between periodic interrupts. The
// next interrupt is one period from now. Zero stops the interrupts.
func (h *Harness) SetPeriod(period int) {
	h.Period = period
	if period <= 0 {
		h.CPU.SetIRQTime(timing.Never)
		return
	}
	h.CPU.SetIRQTime(h.CPU.Now() + period)
}

// schedule the next periodic interrupt
func (h *Harness) reschedule() {
	next := h.CPU.IRQTime() + h.Period
	if h.Period <= 0 {
		next = timing.Never
	}
	h.CPU.SetIRQTime(next)
}

// BudgetExhausted implements the cpubus.Host interface.
func (h *Harness) BudgetExhausted(time int) cpubus.Interrupt {
	if h.Period <= 0 || time < h.CPU.IRQTime() {
		return cpubus.None
	}

	if h.CPU.Masked() {
		// a halted game boy CPU wakes when an interrupt is flagged even if
		// the interrupt isn't taken
		if h.gb != nil && h.gb.Halted() {
			h.gb.Wake()
			h.reschedule()
		}
		return cpubus.None
	}

	h.reschedule()
	h.Interrupts++
	return cpubus.Request(h.profile.vector)
}

// Read implements the cpubus.Host interface.
func (h *Harness) Read(address uint16, time int) uint8 {
	return h.io[address]
}

// Write implements the cpubus.Host interface.
func (h *Harness) Write(address uint16, data uint8, time int) {
	h.io[address] = data
	if !h.profile.ports && address == h.profile.beeper {
		h.Beeper.set(data&h.profile.mask != 0, time)
	}
}

// In implements the cpubus.Ports interface. Only the low byte of the port
// is decoded.
func (h *Harness) In(port uint16, time int) uint8 {
	return h.ports[port&0xff]
}

// Out implements the cpubus.Ports interface.
func (h *Harness) Out(port uint16, data uint8, time int) {
	h.ports[port&0xff] = data
	if h.profile.ports && port&0xff == h.profile.beeper {
		h.Beeper.set(data&h.profile.mask != 0, time)
	}
}

// SetMMR implements the huc6280.Host interface. Bank $ff is the hardware
// page. Every other bank selects one of the eight pages of RAM.
func (h *Harness) SetMMR(page int, bank uint8) {
	mem := h.CPU.Memory()
	addr := page * huc6280.PageSize

	var err error
	if bank == 0xff {
		err = mem.MapIO(addr, huc6280.PageSize)
	} else {
		err = mem.Map(addr, huc6280.PageSize, h.ram, int(bank&0x07)*huc6280.PageSize, paged.RAM)
	}
	if err != nil {
		logger.Log(logger.Allow, "harness", err)
	}
}

// WriteVDC implements the huc6280.Host interface.
func (h *Harness) WriteVDC(register int, data uint8, time int) {
	h.VDC[register&0x03] = data
}
