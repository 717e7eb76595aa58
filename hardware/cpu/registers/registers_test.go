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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gme8/hardware/cpu/registers"
	"github.com/jetsetilly/gme8/test"
)

func TestAdd(t *testing.T) {
	var r uint8
	var carry, overflow bool

	r, _, _ = registers.Add(127, 2, false)
	test.ExpectEquality(t, r, uint8(129))

	// addition boundary
	r, carry, overflow = registers.Add(255, 1, false)
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)

	// addition boundary with carry
	r, carry, overflow = registers.Add(254, 1, true)
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, false)

	r, carry, _ = registers.Add(255, 1, true)
	test.ExpectEquality(t, r, uint8(1))
	test.ExpectEquality(t, carry, true)

	// adding 0xff with carry leaves the value unchanged and sets carry
	r, carry, _ = registers.Add(0x42, 0xff, true)
	test.ExpectEquality(t, r, uint8(0x42))
	test.ExpectEquality(t, carry, true)

	// signed overflow
	_, _, overflow = registers.Add(0x7f, 1, false)
	test.ExpectEquality(t, overflow, true)
	_, _, overflow = registers.Add(0x80, 0xff, false)
	test.ExpectEquality(t, overflow, true)
}

func TestSubtract(t *testing.T) {
	var r uint8
	var carry bool

	r, _, _ = registers.Subtract(11, 1, true)
	test.ExpectEquality(t, r, uint8(10))

	r, _, _ = registers.Subtract(12, 1, false)
	test.ExpectEquality(t, r, uint8(10))

	r, _, _ = registers.Subtract(0x01, 0x06, false)
	test.ExpectEquality(t, r, uint8(0xfa))

	// subtract on boundary
	r, carry, _ = registers.Subtract(0, 1, true)
	test.ExpectEquality(t, r, uint8(255))
	test.ExpectEquality(t, carry, false)
	r, _, _ = registers.Subtract(1, 1, false)
	test.ExpectEquality(t, r, uint8(255))
	r, carry, _ = registers.Subtract(1, 1, true)
	test.ExpectEquality(t, r, uint8(0))
	test.ExpectEquality(t, carry, true)
}

// the carry and overflow of every 8bit addition compared with the result of
// the addition in a wider integer
func TestAddSweep(t *testing.T) {
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			for c := 0; c < 2; c++ {
				r, carry, overflow := registers.Add(uint8(a), uint8(b), c == 1)
				sum := a + b + c
				signed := int(int8(a)) + int(int8(b)) + c
				if r != uint8(sum) || carry != (sum > 255) || overflow != (signed < -128 || signed > 127) {
					t.Fatalf("add %02x %02x %d: got %02x %v %v", a, b, c, r, carry, overflow)
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	carry, zero, sign := registers.Compare(0x10, 0x10)
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
	test.ExpectEquality(t, sign, false)

	carry, zero, sign = registers.Compare(0x10, 0x11)
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)
	test.ExpectEquality(t, sign, true)
}

func TestDecimalMode(t *testing.T) {
	var r uint8
	var carry, zero bool

	// addition without and with carry
	r, carry, _, _, _ = registers.AddDecimal(0, 1, false)
	test.ExpectEquality(t, r, uint8(0x01))
	test.ExpectEquality(t, carry, false)
	r, _, _, _, _ = registers.AddDecimal(r, 1, true)
	test.ExpectEquality(t, r, uint8(0x03))

	// subtraction with and without carry
	r, _ = registers.SubtractDecimal(0x09, 1, true)
	test.ExpectEquality(t, r, uint8(0x08))
	r, _ = registers.SubtractDecimal(r, 1, false)
	test.ExpectEquality(t, r, uint8(0x06))

	// tens boundary
	r, _, _, _, _ = registers.AddDecimal(0x09, 1, false)
	test.ExpectEquality(t, r, uint8(0x10))
	r, _ = registers.SubtractDecimal(r, 1, true)
	test.ExpectEquality(t, r, uint8(0x09))

	// hundreds boundary. zero flag is that of the binary addition
	r, carry, zero, _, _ = registers.AddDecimal(0x99, 1, false)
	test.ExpectEquality(t, r, uint8(0x00))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, false)
	r, carry = registers.SubtractDecimal(r, 1, true)
	test.ExpectEquality(t, r, uint8(0x99))
	test.ExpectEquality(t, carry, false)

	r, carry, _, _, _ = registers.AddDecimal(0x58, 0x46, true)
	test.ExpectEquality(t, r, uint8(0x05))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.SubtractDecimal(0x46, 0x12, true)
	test.ExpectEquality(t, r, uint8(0x34))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.SubtractDecimal(0x21, 0x34, true)
	test.ExpectEquality(t, r, uint8(0x87))
	test.ExpectEquality(t, carry, false)
}

// every valid pair of BCD values compared with decimal arithmetic
func TestDecimalSweep(t *testing.T) {
	bcd := func(v int) uint8 { return uint8((v/10)<<4 | v%10) }
	for a := 0; a < 100; a++ {
		for b := 0; b < 100; b++ {
			for c := 0; c < 2; c++ {
				r, carry, _, _, _ := registers.AddDecimal(bcd(a), bcd(b), c == 1)
				sum := a + b + c
				if r != bcd(sum%100) || carry != (sum > 99) {
					t.Fatalf("decimal add %d %d %d: got %02x %v", a, b, c, r, carry)
				}

				r, carry = registers.SubtractDecimal(bcd(a), bcd(b), c == 1)
				diff := a - b - (1 - c)
				if diff < 0 {
					diff += 100
				}
				if r != bcd(diff) || carry != (a-b-(1-c) >= 0) {
					t.Fatalf("decimal subtract %d %d %d: got %02x %v", a, b, c, r, carry)
				}
			}
		}
	}
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "sv-bdIzc")
	test.ExpectEquality(t, sr.Value(), uint8(0x24))

	sr.FromValue(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.Value(), uint8(0xff))

	sr.FromValue(0x81)
	test.ExpectEquality(t, sr.Sign, true)
	test.ExpectEquality(t, sr.Carry, true)
	test.ExpectEquality(t, sr.Zero, false)
	test.ExpectEquality(t, sr.Value(), uint8(0xa1))
	test.ExpectEquality(t, sr.Label(), "SR")
}

func TestPair(t *testing.T) {
	p := registers.MakePair(0x12, 0x34)
	test.ExpectEquality(t, uint16(p), uint16(0x1234))
	test.ExpectEquality(t, p.Hi(), uint8(0x12))
	test.ExpectEquality(t, p.Lo(), uint8(0x34))

	p.SetHi(0xab)
	test.ExpectEquality(t, uint16(p), uint16(0xab34))
	p.SetLo(0xcd)
	test.ExpectEquality(t, uint16(p), uint16(0xabcd))
	test.ExpectEquality(t, p.String(), "abcd")
}
