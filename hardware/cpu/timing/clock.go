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

// Clock counts cycles in two parts: a base and a local offset from that
// base. The zero value is a clock at time zero.
type Clock struct {
	local int
	base  int
}

func (c Clock) String() string {
	return fmt.Sprintf("%d (local %d base %d)", c.local+c.base, c.local, c.base)
}

// Now returns the absolute time.
func (c *Clock) Now() int {
	return c.local + c.base
}

// SetNow changes the absolute time by changing the local count. The base is
// unaffected.
func (c *Clock) SetNow(t int) {
	c.local = t - c.base
}

// Adjust shifts the local count by delta cycles. Cycle costs are charged
// with Adjust and corrections for costs discovered after decoding are made
// with it too.
func (c *Clock) Adjust(delta int) {
	c.local += delta
}

// Local returns the time relative to the base. A negative value is the
// number of cycles remaining before the stop time.
func (c *Clock) Local() int {
	return c.local
}

// SetLocal sets the time relative to the base.
func (c *Clock) SetLocal(local int) {
	c.local = local
}

// Base returns the absolute time that the local count is relative to.
func (c *Clock) Base() int {
	return c.base
}

// Rebase moves the base to stop and corrects the local count so that Now()
// is unchanged. The correction that was added to the local count is
// returned.
func (c *Clock) Rebase(stop int) int {
	delta := c.base - stop
	c.base = stop
	c.local += delta
	return delta
}
