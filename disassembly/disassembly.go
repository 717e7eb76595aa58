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


package disassembly

import (
	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
)

// Read returns the byte at the address without side effects. The Peek()
// function of a paged.Map can be used.
type Read func(address uint16) uint8

// Disassemble count instructions starting at the address.
func Disassemble(defs *instructions.Table, read Read, address uint16, count int) []Entry {
	entries := make([]Entry, 0, count)

	for i := 0; i < count; i++ {
		e := decode(defs, read, address)
		entries = append(entries, e)
		address += uint16(len(e.Bytes))
	}

	return entries
}

func decode(defs *instructions.Table, read Read, address uint16) Entry {
	defn := &defs[read(address)]

	e := Entry{
		Address:  address,
		Bytes:    make([]uint8, defn.Bytes),
		Mnemonic: defn.Mnemonic,
		Defn:     defn,
	}

	for i := range e.Bytes {
		e.Bytes[i] = read(address + uint16(i))
	}

	e.Operand = operand(defn.AddressingMode, address, e.Bytes)

	return e
}
