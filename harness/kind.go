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
	"strings"

	"github.com/jetsetilly/gme8/curated"
	"github.com/jetsetilly/gme8/hardware/clocks"
	"github.com/jetsetilly/gme8/hardware/memory/cpubus"
)

// Kind is the type of console being emulated.
type Kind int

// List of console kinds.
const (
	NES Kind = iota
	SAP
	HES
	KSS
	AY
	GBS
)

var kindNames = []string{"NES", "SAP", "HES", "KSS", "AY", "GBS"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns the names of every console kind.
func Kinds() []string {
	return append([]string{}, kindNames...)
}

// UnknownKind is returned by ParseKind() when the name is not recognised.
const UnknownKind = "harness: unknown console kind (%s)"

// ParseKind returns the Kind with the name. Case insensitive.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if strings.EqualFold(n, name) {
			return Kind(i), nil
		}
	}
	return 0, curated.Errorf(UnknownKind, name)
}

// the differences between consoles that the harness cares about
type profile struct {
	// clock speed in MHz and the frame rate
	clock float64
	fps   float64

	// vector of the periodic interrupt
	vector uint16

	// address of the IO page. not used by the HES kind, where IO is selected
	// by the mapping registers, or by the Z80 consoles
	io uint16

	// beeper is an address, or a port number when ports is true. the level of
	// the beeper is the bit selected by the mask
	beeper uint16
	mask   uint8
	ports  bool
}

var profiles = [...]profile{
	NES: {clock: clocks.NES_NTSC, fps: clocks.NTSC_FPS, vector: cpubus.IRQ, io: 0x4000, beeper: 0x4011, mask: 0x40},
	SAP: {clock: clocks.Atari_PAL, fps: clocks.PAL_FPS, vector: cpubus.IRQ, io: 0xd000, beeper: 0xd201, mask: 0x08},
	HES: {clock: clocks.PCEngine, fps: clocks.NTSC_FPS, vector: cpubus.HuCTimer, beeper: 0x0806, mask: 0x10},
	KSS: {clock: clocks.MSX, fps: clocks.NTSC_FPS, vector: cpubus.Z80IRQ, beeper: 0xaa, mask: 0x80, ports: true},
	AY:  {clock: clocks.Spectrum, fps: clocks.PAL_FPS, vector: cpubus.Z80IRQ, beeper: 0xfe, mask: 0x10, ports: true},
	GBS: {clock: clocks.GameBoy, fps: clocks.NTSC_FPS, vector: cpubus.GBTimer, io: 0xff00, beeper: 0xff12, mask: 0x08},
}
