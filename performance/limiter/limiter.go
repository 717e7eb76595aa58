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


// Package limiter paces the emulation of frames to a fixed rate. Without a
// limiter the CPU engines run as quickly as the host machine allows.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Frames can then be paced with the Wait() function. For example:
//
//	for {
//		lim.Wait()
//		h.RunFrames(1)
//	}
package limiter

import (
	"time"
)

// Limiter will trigger at the frame rate.
type Limiter struct {
	tick chan bool
	quit chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The rate is in frames per second.
func NewLimiter(framesPerSecond float64) *Limiter {
	lim := &Limiter{
		tick: make(chan bool),
		quit: make(chan bool),
	}

	period := time.Duration(float64(time.Second) / framesPerSecond)

	// the sleep is adjusted by the error of the previous sleep so that the
	// average rate is correct
	go func() {
		adjusted := period
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - period
			if adjusted < 0 {
				adjusted = 0
			}
			t = nt
		}
	}()

	return lim
}

// Wait will block until the next trigger.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if the trigger has already happened and false
// if it is still yet to happen. It does not block.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}

// Stop the limiter. It must not be used afterwards.
func (lim *Limiter) Stop() {
	close(lim.quit)
}
