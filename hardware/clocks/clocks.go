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


// Package clocks defines the speed of the CPU clock in each of the consoles
// that the CPU engines are used for. Values are in MHz.
//
// The cycle counts used by the engines are in units of these clocks, except
// for the HuC6280 which counts cycles of the 7.16MHz high speed mode, and
// the LR35902 which counts cycles of the 4.19MHz master clock.
package clocks

import "math"

// 6502 based consoles.
const (
	NES_NTSC   = 1.789773
	NES_PAL    = 1.662607
	Atari_NTSC = 1.789790
	Atari_PAL  = 1.773447
)

// Other consoles.
const (
	PCEngine = 7.159090
	MSX      = 3.579545
	Spectrum = 3.546900
	GameBoy  = 4.194304
)

// Frame rates.
const (
	NTSC_FPS = 60.0
	PAL_FPS  = 50.0
)

// CyclesPerSecond converts a clock in MHz to the number of cycles in a
// second.
func CyclesPerSecond(mhz float64) int {
	return int(math.Round(mhz * 1000000))
}

// CyclesPerFrame returns the number of cycles in a frame at the frame rate.
func CyclesPerFrame(mhz float64, fps float64) int {
	return int(math.Round(mhz * 1000000 / fps))
}

// Duration returns the number of seconds taken by the number of cycles.
func Duration(mhz float64, cycles int) float64 {
	return float64(cycles) / (mhz * 1000000)
}
