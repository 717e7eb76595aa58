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

package timing

import "fmt"

// Never is the interrupt time used when no interrupt is pending. It is large
// enough to be later than any end time but small enough that adding a frame
// of cycles to it does not overflow a 32bit int.
const Never = 0x40000001

// Scheduler decides the stop time of the dispatch loop from the requested end
// time, the time of the next interrupt and whether interrupts are masked by
// the CPU status.
//
// Every change to one of those three values rebases the embedded clock so
// that the base is always equal to the stop time.
type Scheduler struct {
	Clock

	end    int
	irq    int
	masked bool
}

func (s Scheduler) String() string {
	irq := "never"
	if s.irq < Never {
		irq = fmt.Sprintf("%d", s.irq)
	}
	return fmt.Sprintf("now %d end %d irq %s masked %v", s.Now(), s.end, irq, s.masked)
}

// Reset zeroes the clock and the end time. No interrupt is pending and
// interrupts are masked, which is the state of every CPU core after a reset.
func (s *Scheduler) Reset() {
	s.Clock = Clock{}
	s.end = 0
	s.irq = Never
	s.masked = true
}

// Stop returns the time at which the dispatch loop must next stop.
func (s *Scheduler) Stop() int {
	if s.masked || s.end < s.irq {
		return s.end
	}
	return s.irq
}

// Consistent returns true if the base of the clock is the stop time. It
// should always return true.
func (s *Scheduler) Consistent() bool {
	return s.base == s.Stop()
}

func (s *Scheduler) update() {
	s.Rebase(s.Stop())
}

// SetEndTime sets the time at which the current call to Run() should end.
func (s *Scheduler) SetEndTime(t int) {
	s.end = t
	s.update()
}

// EndTime returns the requested end time.
func (s *Scheduler) EndTime() int {
	return s.end
}

// SetIRQTime sets the time of the next interrupt. Use Never if there is no
// pending interrupt.
func (s *Scheduler) SetIRQTime(t int) {
	s.irq = t
	s.update()
}

// IRQTime returns the time of the next interrupt.
func (s *Scheduler) IRQTime() int {
	return s.irq
}

// SetMasked changes the mask state without any of the one instruction delay
// handling of EnableIRQ() and DisableIRQ(). Used when an interrupt is taken
// and when registers are changed between calls to Run().
func (s *Scheduler) SetMasked(masked bool) {
	s.masked = masked
	s.update()
}

// Masked returns true if interrupts are masked.
func (s *Scheduler) Masked() bool {
	return s.masked
}

// EnableIRQ unmasks interrupts from inside the dispatch loop. It is the CLI
// and EI instructions.
//
// If an interrupt is already due the stop time is moved so that exactly one
// more instruction executes before the interrupt is taken. This approximates
// the delayed effect of enabling interrupts. The function returns false if
// the delay cannot be honoured, in which case the interrupt will be taken
// when the budget is next found to be exhausted.
func (s *Scheduler) EnableIRQ() bool {
	s.masked = false

	delta := s.Rebase(s.Stop())
	if delta <= 0 {
		// interrupt is not earlier than the end time
		return s.Now() < s.irq
	}

	if s.local < 0 {
		// interrupt is still in the future
		return true
	}

	if delta >= s.local+1 {
		// interrupt is due. delay it until after the next instruction
		s.base += s.local + 1
		s.local = -1
		s.irq = s.base
		return true
	}

	return false
}

// DisableIRQ masks interrupts from inside the dispatch loop. It is the SEI
// and DI instructions.
//
// The stop time becomes the end time. The function returns false if an
// interrupt was due when the mask was set, in which case the interrupt will
// not be taken. A real CPU would take the interrupt after the instruction
// that follows SEI.
func (s *Scheduler) DisableIRQ() bool {
	s.masked = true
	s.update()
	return s.local < 0
}

// EndFrame moves the origin of absolute time forward by length cycles. The
// end time and the interrupt time move with it. Use this at the end of every
// frame so that absolute time stays small.
func (s *Scheduler) EndFrame(length int) {
	s.local -= length
	s.end -= length
	if s.irq < Never {
		s.irq -= length
	}
	s.update()
}
