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

package registers

import "fmt"

// Pair is a 16 bit register made of two 8 bit halves, such as the BC pair of
// the Z80. The halves are computed arithmetically so there is no assumption
// about byte order.
type Pair uint16

func (p Pair) String() string {
	return fmt.Sprintf("%04x", uint16(p))
}

// Hi returns the most significant byte.
func (p Pair) Hi() uint8 {
	return uint8(p >> 8)
}

// Lo returns the least significant byte.
func (p Pair) Lo() uint8 {
	return uint8(p)
}

// SetHi changes the most significant byte.
func (p *Pair) SetHi(v uint8) {
	*p = Pair(uint16(v)<<8 | uint16(*p)&0x00ff)
}

// SetLo changes the least significant byte.
func (p *Pair) SetLo(v uint8) {
	*p = Pair(uint16(*p)&0xff00 | uint16(v))
}

// MakePair joins two bytes into a Pair.
func MakePair(hi, lo uint8) Pair {
	return Pair(uint16(hi)<<8 | uint16(lo))
}
