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

package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that first drives a CPU core. A core is not safe
// for concurrent use and every later call must come from the same goroutine.
//
// The zero value is ready to use. Checks are only made when the package is
// built with the assertions build tag.
type Owner struct {
	id atomic.Uint64
}

// Check panics if the calling goroutine is not the owner.
func (o *Owner) Check(context string) {
	if !Enabled {
		return
	}
	id := GetGoRoutineID()
	if o.id.CompareAndSwap(0, id) {
		return
	}
	if owner := o.id.Load(); owner != id {
		panic(fmt.Sprintf("assert: %s called from goroutine %d but owned by goroutine %d", context, id, owner))
	}
}

// Release forgets the owning goroutine. The next call to Check() claims
// ownership again.
func (o *Owner) Release() {
	o.id.Store(0)
}
