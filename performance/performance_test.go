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


package performance_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gme8/curated"
	"github.com/jetsetilly/gme8/harness"
	"github.com/jetsetilly/gme8/performance"
	"github.com/jetsetilly/gme8/test"
)

func TestCalcSpeed(t *testing.T) {
	mhz, accuracy := performance.CalcSpeed(2.0, 4000000, 2.0)
	test.ExpectEquality(t, mhz, 2.0)
	test.ExpectEquality(t, accuracy, 100.0)

	mhz, accuracy = performance.CalcSpeed(4.0, 1000000, 0.5)
	test.ExpectEquality(t, mhz, 2.0)
	test.ExpectEquality(t, accuracy, 50.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,TRACE")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileTrace)

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.UnknownProfile))
}

func TestCheck(t *testing.T) {
	performance.LeadTime = 10 * time.Millisecond

	h, err := harness.New(harness.NES)
	test.DemandSuccess(t, err)

	// JMP $8000
	test.DemandSuccess(t, h.Load([]byte{0x4c, 0x00, 0x80}, 0x8000))
	h.Call(0x8000)

	w := &test.CompareWriter{}
	r, err := performance.Check(w, performance.ProfileNone, h, true, "50ms")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, r.Frames > 0)
	test.ExpectEquality(t, r.Cycles, r.Frames*h.FrameLength)
	test.ExpectSuccess(t, w.Contains("MHz"))
	test.ExpectSuccess(t, h.OnFrame == nil)
}
