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


package digest_test

import (
	"testing"

	"github.com/jetsetilly/gme8/digest"
	"github.com/jetsetilly/gme8/test"
)

func TestAudio(t *testing.T) {
	a := digest.NewAudio()
	b := digest.NewAudio()
	test.ExpectEquality(t, a.Hash(), "0000000000000000000000000000000000000000")

	samples := make([]int, 2000)
	for i := range samples {
		samples[i] = i * 16
	}

	// the same samples in different sized chunks produce the same value
	test.ExpectSuccess(t, a.SetAudio(samples))
	test.ExpectSuccess(t, b.SetAudio(samples[:700]))
	test.ExpectSuccess(t, b.SetAudio(samples[700:]))
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// clipping
	c := digest.NewAudio()
	d := digest.NewAudio()
	test.ExpectSuccess(t, c.SetAudio([]int{40000}))
	test.ExpectSuccess(t, d.SetAudio([]int{32767}))
	test.ExpectEquality(t, c.Hash(), d.Hash())

	c.Reset()
	test.ExpectSuccess(t, c.SetAudio([]int{1}))
	test.ExpectInequality(t, c.Hash(), d.Hash())
}
