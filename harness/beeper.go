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

// Amplitude of a sample when the beeper is high for the whole of the sample.
const Amplitude = 0x3fff

// Transition is a change in the level of the beeper.
type Transition struct {
	// time in cycles since the beeper was reset
	Time  int
	Level bool
}

// Beeper records the changes to a one bit output.
type Beeper struct {
	transitions []Transition
	level       bool

	// time of the start of the current frame. the CPU reports time relative
	// to this
	origin int
}

// Reset removes all transitions. The level of the beeper is low.
func (b *Beeper) Reset() {
	b.transitions = b.transitions[:0]
	b.level = false
	b.origin = 0
}

func (b *Beeper) set(level bool, time int) {
	if level == b.level {
		return
	}
	b.level = level
	b.transitions = append(b.transitions, Transition{Time: b.origin + time, Level: level})
}

func (b *Beeper) endFrame(length int) {
	b.origin += length
}

// Transitions returns the recorded transitions.
func (b *Beeper) Transitions() []Transition {
	return b.transitions
}

// Length returns the number of cycles in the completed frames.
func (b *Beeper) Length() int {
	return b.origin
}

// Samples converts the transitions in the completed frames to samples at the
// sample rate. The clock is in MHz. Each sample is the proportion of time
// that the beeper was high during the sample multiplied by Amplitude.
func (b *Beeper) Samples(mhz float64, sampleRate int) []int {
	step := mhz * 1000000 / float64(sampleRate)
	n := int(float64(b.origin) / step)
	samples := make([]int, n)

	level := false
	t := 0
	for i := range samples {
		start := float64(i) * step
		end := start + step

		var high float64
		from := start
		for t < len(b.transitions) && float64(b.transitions[t].Time) < end {
			at := float64(b.transitions[t].Time)
			if at > from {
				if level {
					high += at - from
				}
				from = at
			}
			level = b.transitions[t].Level
			t++
		}
		if level {
			high += end - from
		}

		samples[i] = int(high / step * Amplitude)
	}

	return samples
}
