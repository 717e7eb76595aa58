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

// Package cpubus defines the contract between a CPU core and the emulator
// that owns it.
//
// The owning emulator implements Host. The CPU core calls Read() and Write()
// for every access that the page table can not service directly: reads and
// writes of IO pages, and writes to anything other than RAM. The time
// argument is the absolute time of the access. The CPU state is coherent when
// these functions are called and it is safe for the host to query or change
// the time of the CPU from inside them. The host must not call Run() from
// inside a callback.
//
// BudgetExhausted() is called when the dispatch loop reaches the stop time.
// The host returns a pending Interrupt if the stop was caused by an interrupt
// that should be taken now. Otherwise it returns the zero value and the CPU
// either continues, if the stop time has been moved into the future, or
// returns from Run().
package cpubus

import "fmt"

// Host is implemented by the emulator that owns a CPU core.
type Host interface {
	Read(address uint16, time int) uint8
	Write(address uint16, data uint8, time int)
	BudgetExhausted(time int) Interrupt
}

// Ports is implemented by the owner of a CPU that has a separate IO address
// space. ie. the Z80.
type Ports interface {
	In(port uint16, time int) uint8
	Out(port uint16, data uint8, time int)
}

// Interrupt is returned by BudgetExhausted().
//
// For the 6502 family, Vector is the address of the vector word. For the Z80
// and LR35902 it is the address of the interrupt routine, except in Z80
// interrupt mode 2 where only the low byte is used.
type Interrupt struct {
	Pending bool
	Vector  uint16
}

func (i Interrupt) String() string {
	if !i.Pending {
		return "none"
	}
	return fmt.Sprintf("vector %#04x", i.Vector)
}

// None is the Interrupt value for no interrupt.
var None = Interrupt{}

// Request returns an Interrupt for the vector.
func Request(vector uint16) Interrupt {
	return Interrupt{Pending: true, Vector: vector}
}
