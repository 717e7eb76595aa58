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

package execution

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gme8/logger"
)

// Illegal describes the most recent illegal opcode.
type Illegal struct {
	Opcode  uint8
	Prefix  uint8
	Address uint16
}

func (il Illegal) String() string {
	if il.Prefix != 0 {
		return fmt.Sprintf("illegal opcode $%02X $%02X at $%04X", il.Prefix, il.Opcode, il.Address)
	}
	return fmt.Sprintf("illegal opcode $%02X at $%04X", il.Opcode, il.Address)
}

// Diagnostics counts the illegal opcodes and unsupported features met by a
// CPU core.
type Diagnostics struct {
	// the logger tag. usually the name of the CPU package
	Tag string

	// whether entries are written to the central logger
	Permission logger.Permission

	// number of illegal opcodes since the last Reset()
	IllegalCount int
	LastIllegal  Illegal

	// number of times each unsupported feature has been met
	Unsupported map[string]int
}

// NewDiagnostics is the preferred method of initialisation for the
// Diagnostics type.
func NewDiagnostics(tag string) Diagnostics {
	return Diagnostics{
		Tag:         tag,
		Permission:  logger.Allow,
		Unsupported: make(map[string]int),
	}
}

// Reset the counts.
func (d *Diagnostics) Reset() {
	d.IllegalCount = 0
	d.LastIllegal = Illegal{}
	d.Unsupported = make(map[string]int)
}

// IllegalOpcode records an illegal opcode at the address.
func (d *Diagnostics) IllegalOpcode(address uint16, opcode uint8) {
	d.illegal(Illegal{Opcode: opcode, Address: address})
}

// IllegalPrefixed records an illegal opcode that follows a prefix byte.
func (d *Diagnostics) IllegalPrefixed(address uint16, prefix uint8, opcode uint8) {
	d.illegal(Illegal{Prefix: prefix, Opcode: opcode, Address: address})
}

func (d *Diagnostics) illegal(il Illegal) {
	d.IllegalCount++
	d.LastIllegal = il
	logger.Log(d.Permission, d.Tag, il)
}

// Unsupport records a feature that is approximated rather than emulated.
func (d *Diagnostics) Unsupport(feature string) {
	if d.Unsupported == nil {
		d.Unsupported = make(map[string]int)
	}
	d.Unsupported[feature]++
	logger.Logf(d.Permission, d.Tag, "%s not supported", feature)
}

// Warnings returns true if anything has been recorded since the last Reset().
func (d Diagnostics) Warnings() bool {
	return d.IllegalCount > 0 || len(d.Unsupported) > 0
}

// String summarises the diagnostics on a single line.
func (d Diagnostics) String() string {
	if !d.Warnings() {
		return fmt.Sprintf("%s: no warnings", d.Tag)
	}

	s := strings.Builder{}
	s.WriteString(d.Tag)
	s.WriteString(":")
	if d.IllegalCount > 0 {
		s.WriteString(fmt.Sprintf(" %d illegal (last %s)", d.IllegalCount, d.LastIllegal))
	}

	features := make([]string, 0, len(d.Unsupported))
	for f := range d.Unsupported {
		features = append(features, f)
	}
	sort.Strings(features)
	for _, f := range features {
		s.WriteString(fmt.Sprintf(" [%s x%d]", f, d.Unsupported[f]))
	}

	return s.String()
}
