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

// Package timing keeps the cycle count of a CPU core and decides when the
// dispatch loop of that core must stop.
//
// Time is held as two values. The base is the absolute time at which the
// dispatch loop must next stop. The local count is the time relative to that
// base. While the local count is negative there is budget remaining; once it
// reaches zero the loop has reached the stop time.
//
// The absolute time is always the sum of the two:
//
//	absolute = local + base
//
// When the stop time changes, because a new end time has been requested or
// because an interrupt has been scheduled or masked, the base is moved and the
// local count is corrected by the opposite amount. Now() is unchanged by the
// move and the dispatch loop continues to compare its local count with zero.
//
// The Scheduler type merges the requested end time and the pending interrupt
// time into the stop time. When interrupts are masked the interrupt time is
// ignored:
//
//	stop = masked ? end : min(end, irq)
//
// The Never value is used as the interrupt time when no interrupt is pending.
package timing
