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


package logger

import "sync/atomic"

// Permission implementations indicate whether the source of a log request is
// allowed to create new log entries. Every CPU core has a Permission in its
// diagnostics.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed.
var Allow Permission = allow{}

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

// Deny indicates that the logging request should be ignored. Useful for
// silencing a CPU that is being run many times over, in a benchmark for
// example.
var Deny Permission = deny{}

// Limit allows a fixed number of log requests and denies every request
// after that.
type Limit struct {
	remaining atomic.Int64
}

// NewLimit is the preferred method of initialisation for the Limit type.
func NewLimit(n int) *Limit {
	l := &Limit{}
	l.remaining.Store(int64(n))
	return l
}

// AllowLogging implements the Permission interface.
func (l *Limit) AllowLogging() bool {
	return l.remaining.Add(-1) >= 0
}
