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

package instructions

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gme8/curated"
)

// Error patterns returned by Parse().
const (
	ParseError    = "instructions: line %d: %v"
	MissingOpcode = "instructions: no definition for opcode %#02x"
	DuplicateCode = "instructions: opcode %#02x defined more than once"
)

// Parse reads CSV data and returns a complete Table. Every opcode must be
// defined exactly once.
func Parse(r io.Reader) (*Table, error) {
	csvr := csv.NewReader(r)
	csvr.Comment = rune('#')
	csvr.TrimLeadingSpace = true

	// the effect and flag fields are optional
	csvr.FieldsPerRecord = -1

	var t Table
	var defined [256]bool

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, curated.Errorf("instructions: %v", err)
		}

		line, _ := csvr.FieldPos(0)

		if len(rec) < 5 {
			return nil, curated.Errorf(ParseError, line, "too few fields")
		}

		defn := Definition{Effect: Read}

		op, err := strconv.ParseUint(rec[0], 16, 8)
		if err != nil {
			return nil, curated.Errorf(ParseError, line, err)
		}
		defn.OpCode = uint8(op)

		defn.Mnemonic = strings.ToUpper(rec[1])

		defn.Bytes, err = strconv.Atoi(rec[2])
		if err != nil || defn.Bytes < 1 {
			return nil, curated.Errorf(ParseError, line, "bad byte count")
		}

		defn.Cycles, err = strconv.Atoi(rec[3])
		if err != nil || defn.Cycles < 1 {
			return nil, curated.Errorf(ParseError, line, "bad cycle count")
		}

		var ok bool
		defn.AddressingMode, ok = modeNames[strings.ToUpper(rec[4])]
		if !ok {
			return nil, curated.Errorf(ParseError, line, "unknown addressing mode "+rec[4])
		}

		for _, f := range rec[5:] {
			f = strings.ToUpper(f)
			if c, ok := categoryNames[f]; ok {
				defn.Effect = c
				continue
			}
			switch f {
			case "PAGESENS":
				defn.PageSensitive = true
			case "UNDOC":
				defn.Undocumented = true
			case "ILLEGAL":
				defn.Illegal = true
			default:
				return nil, curated.Errorf(ParseError, line, "unknown field "+f)
			}
		}

		if defined[defn.OpCode] {
			return nil, curated.Errorf(DuplicateCode, defn.OpCode)
		}
		defined[defn.OpCode] = true
		t[defn.OpCode] = defn
	}

	for i, d := range defined {
		if !d {
			return nil, curated.Errorf(MissingOpcode, i)
		}
	}

	return &t, nil
}

// MustParse is like Parse() but panics on error. Used to initialise the
// tables embedded in the CPU packages.
func MustParse(data string) *Table {
	t, err := Parse(strings.NewReader(data))
	if err != nil {
		panic(err)
	}
	return t
}
