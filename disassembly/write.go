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
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
	Notes    bool
}

// Write the entries to io.Writer, one per line.
func Write(output io.Writer, entries []Entry, attr WriteAttr) error {
	for _, e := range entries {
		if err := WriteLine(output, e, attr); err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single entry to io.Writer. The bytecode column is wide
// enough for the longest HuC6280 instruction.
func WriteLine(output io.Writer, e Entry, attr WriteAttr) error {
	var s string

	if attr.ByteCode {
		s = fmt.Sprintf("%-21s ", e.Bytecode())
	}

	s = fmt.Sprintf("%s$%04x %-4s %-18s", s, e.Address, e.Mnemonic, e.Operand)

	if attr.Cycles {
		s = fmt.Sprintf("%s %-3s", s, e.Cycles())
	}

	if attr.Notes && e.Notes() != "" {
		s = fmt.Sprintf("%s ; %s", s, e.Notes())
	}

	_, err := io.WriteString(output, fmt.Sprintf("%s\n", strings.TrimRight(s, " ")))
	return err
}
