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


// breakpoints are used to halt execution when the program counter reaches
// a specific address.

package debugger

// breakpoints keeps track of all the currently defined addresses
type breakpoints struct {
	addresses map[uint16]bool
}

func newBreakpoints() breakpoints {
	return breakpoints{addresses: make(map[uint16]bool)}
}

func (bp breakpoints) add(address uint16) {
	bp.addresses[address] = true
}

// toggle returns true if the breakpoint has been added
func (bp breakpoints) toggle(address uint16) bool {
	if bp.addresses[address] {
		delete(bp.addresses, address)
		return false
	}
	bp.addresses[address] = true
	return true
}

func (bp breakpoints) check(address uint16) bool {
	return bp.addresses[address]
}
