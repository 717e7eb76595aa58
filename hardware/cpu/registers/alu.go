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

// Add val to reg. Returns the result with the carry and overflow states.
func Add(reg uint8, val uint8, carry bool) (r uint8, rcarry bool, overflow bool) {
	sum := uint16(reg) + uint16(val)
	if carry {
		sum++
	}
	r = uint8(sum)

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	overflow = ((reg ^ r) & (val ^ r) & 0x80) != 0

	return r, sum > 0xff, overflow
}

// Subtract val from reg in the manner of the 6502. The carry argument is the
// inverse of borrow, as is the carry result.
func Subtract(reg uint8, val uint8, carry bool) (uint8, bool, bool) {
	return Add(reg, ^val, carry)
}

// Compare reg with val. Returns the carry, zero and sign flags of the
// comparison.
func Compare(reg uint8, val uint8) (carry bool, zero bool, sign bool) {
	r := reg - val
	return reg >= val, r == 0, r&0x80 == 0x80
}

// AddDecimal adds val to reg as though both are decimal representations.
// Returns the result with the new carry, zero, overflow and sign flags as
// produced by the NMOS 6502.
//
// The zero flag is that of the binary addition. The sign and overflow flags
// are computed after adjusting the low nibble but before adjusting the high
// nibble.
func AddDecimal(reg uint8, val uint8, carry bool) (r uint8, rcarry bool, zero bool, overflow bool, sign bool) {
	c := 0
	if carry {
		c = 1
	}

	lo := int(reg&0x0f) + int(val&0x0f) + c
	if lo >= 0x0a {
		lo = ((lo + 0x06) & 0x0f) + 0x10
	}

	// sign and overflow use the high nibbles as signed values
	s := int(int8(reg&0xf0)) + int(int8(val&0xf0)) + lo
	sign = s&0x80 == 0x80
	overflow = s < -128 || s > 127

	a := int(reg&0xf0) + int(val&0xf0) + lo
	if a >= 0xa0 {
		a += 0x60
	}

	zero = uint8(int(reg)+int(val)+c) == 0

	return uint8(a), a >= 0x100, zero, overflow, sign
}

// SubtractDecimal subtracts val from reg as though both are decimal
// representations. Returns the result and the new carry. On the NMOS 6502 the
// zero, overflow and sign flags of decimal subtraction are those of the
// binary subtraction and should be taken from Subtract().
func SubtractDecimal(reg uint8, val uint8, carry bool) (uint8, bool) {
	c := 0
	if carry {
		c = 1
	}

	lo := int(reg&0x0f) - int(val&0x0f) + c - 1
	if lo < 0 {
		lo = ((lo - 0x06) & 0x0f) - 0x10
	}

	a := int(reg&0xf0) - int(val&0xf0) + lo
	if a < 0 {
		a -= 0x60
	}

	// carry is the inverse of borrow in the binary subtraction
	return uint8(a), int(reg)-int(val)+c-1 >= 0
}
