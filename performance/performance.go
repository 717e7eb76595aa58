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


package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gme8/harness"
	"github.com/jetsetilly/gme8/logger"
	"github.com/jetsetilly/gme8/performance/limiter"
)

// LeadTime is the period the harness runs for before measurement starts.
var LeadTime = 2 * time.Second

// sentinal error returned by the frame callback.
var timedOut = errors.New("performance timed out")

// Result of a call to Check().
type Result struct {
	Frames   int
	Cycles   int
	Duration time.Duration

	// emulated clock speed in MHz and the percentage of the real console
	MHz      float64
	Accuracy float64
}

func (r Result) String() string {
	return fmt.Sprintf("%.2f MHz (%d frames in %.2f seconds) %.1f%%", r.MHz, r.Frames, r.Duration.Seconds(), r.Accuracy)
}

// CalcSpeed takes the number of cycles and the duration (in seconds) and
// returns the emulated clock speed in MHz and the accuracy of that value as
// a percentage of the real clock speed.
func CalcSpeed(clock float64, cycles int, duration float64) (mhz float64, accuracy float64) {
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / clock
	return mhz, accuracy
}

// Check the performance of the harness. The harness should have had a
// program loaded and called before Check() is used.
//
// The harness will run for the specified duration and will create a cpu,
// memory profile, a trace (or a combination of those) as defined by the
// Profile argument. Without the uncapped flag frames are limited to the
// frame rate of the console.
func Check(output io.Writer, profile Profile, h *harness.Harness, uncapped bool, duration string) (Result, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	var lim *limiter.Limiter
	if !uncapped {
		lim = limiter.NewLimiter(h.FrameRate())
		defer lim.Stop()
	}

	startFrame := h.Frames

	// chain the existing frame callback
	onFrame := h.OnFrame
	defer func() {
		h.OnFrame = onFrame
	}()

	runner := func() error {
		// signals false when the lead time has elapsed and true when the
		// measurement period has finished
		timerChan := make(chan bool, 2)
		time.AfterFunc(LeadTime, func() {
			timerChan <- false
			time.AfterFunc(dur, func() {
				timerChan <- true
			})
		})

		h.OnFrame = func(frame int) error {
			if onFrame != nil {
				if err := onFrame(frame); err != nil {
					return err
				}
			}

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startFrame = frame
				logger.Log(logger.Allow, "performance", "lead time complete")
			default:
			}

			if lim != nil {
				lim.Wait()
			}
			return nil
		}

		for {
			if err := h.RunFrames(1); err != nil {
				return err
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return Result{}, fmt.Errorf("performance: %w", err)
	}

	r := Result{
		Frames:   h.Frames - startFrame,
		Duration: dur,
	}
	r.Cycles = r.Frames * h.FrameLength
	r.MHz, r.Accuracy = CalcSpeed(h.Clock(), r.Cycles, dur.Seconds())

	if output != nil {
		if _, err := io.WriteString(output, r.String()+"\n"); err != nil {
			return r, fmt.Errorf("performance: %w", err)
		}
	}

	return r, nil
}
