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


package cpu

import (
	"github.com/jetsetilly/gme8/hardware/cpu/execution"
	"github.com/jetsetilly/gme8/hardware/memory/paged"
)

// CPU is implemented by every dispatch engine. It is the part of an engine
// that can be used without knowing which processor is being emulated.
type CPU interface {
	// Reset the CPU and fill unmapped memory with the value
	Reset(fill uint8)

	// Run until the end time. Returns true if an illegal opcode was met
	Run(endTime int) bool

	// absolute time
	Now() int

	// EndFrame moves the origin of absolute time forward
	EndFrame(length int)

	SetIRQTime(t int)
	IRQTime() int

	// Masked returns true if maskable interrupts would not be taken
	Masked() bool

	SetIdleAddress(address uint16)
	ClearIdleAddress()

	// Call the routine at the address. When the routine returns the program
	// counter will be the return address
	Call(address uint16, ret uint16)

	// PC returns the program counter
	PC() uint16

	// Memory returns the memory map of the CPU
	Memory() *paged.Map

	// Diag returns the diagnostics of the CPU
	Diag() *execution.Diagnostics

	String() string
}
