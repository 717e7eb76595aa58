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

package instructions_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gme8/curated"
	"github.com/jetsetilly/gme8/hardware/cpu/instructions"
	"github.com/jetsetilly/gme8/test"
)

// every opcode is a two cycle NOP except for the first
func nopTable(first string) string {
	s := strings.Builder{}
	s.WriteString("# test table\n")
	s.WriteString(first)
	s.WriteString("\n")
	for i := 1; i < 256; i++ {
		s.WriteString(fmt.Sprintf("%02x, NOP, 1, 2, IMP\n", i))
	}
	return s.String()
}

func TestParse(t *testing.T) {
	tab, err := instructions.Parse(strings.NewReader(nopTable("00, lda, 3, 4, abx, pagesens")))
	test.DemandSuccess(t, err)

	d := tab[0x00]
	test.ExpectEquality(t, d.Mnemonic, "LDA")
	test.ExpectEquality(t, d.Bytes, 3)
	test.ExpectEquality(t, d.Cycles, 4)
	test.ExpectEquality(t, d.AddressingMode, instructions.AbsoluteIndexedX)
	test.ExpectEquality(t, d.PageSensitive, true)
	test.ExpectEquality(t, d.Effect, instructions.Read)
	test.ExpectEquality(t, d.Illegal, false)

	test.ExpectEquality(t, tab[0xff].Mnemonic, "NOP")
	test.ExpectEquality(t, tab.Cycles()[0xff], 2)
	test.ExpectEquality(t, tab.Cycles()[0x00], 4)

	tab, err = instructions.Parse(strings.NewReader(nopTable("00, BEQ, 2, 2, REL, FLOW")))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, tab[0x00].IsBranch())
	test.ExpectFailure(t, tab[0x01].IsBranch())

	tab, err = instructions.Parse(strings.NewReader(nopTable("00, KIL, 1, 2, IMP, ILLEGAL")))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, tab[0x00].Illegal)
}

func TestParseErrors(t *testing.T) {
	_, err := instructions.Parse(strings.NewReader(nopTable("")))
	test.ExpectSuccess(t, curated.Is(err, instructions.MissingOpcode))

	_, err = instructions.Parse(strings.NewReader(nopTable("01, NOP, 1, 2, IMP")))
	test.ExpectSuccess(t, curated.Is(err, instructions.DuplicateCode))

	_, err = instructions.Parse(strings.NewReader(nopTable("00, NOP, 1, 2, XYZ")))
	test.ExpectSuccess(t, curated.Is(err, instructions.ParseError))

	_, err = instructions.Parse(strings.NewReader(nopTable("00, NOP, 1, 2, IMP, WIBBLE")))
	test.ExpectSuccess(t, curated.Is(err, instructions.ParseError))

	_, err = instructions.Parse(strings.NewReader(nopTable("00, NOP, 0, 2, IMP")))
	test.ExpectSuccess(t, curated.Is(err, instructions.ParseError))

	_, err = instructions.Parse(strings.NewReader(nopTable("00, NOP, 1")))
	test.ExpectSuccess(t, curated.Is(err, instructions.ParseError))
}
