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

// Category of an instruction describes its effect
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	Modify

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.
	Flow
	Subroutine
	Interrupt
)

var categoryNames = map[string]Category{
	"READ":       Read,
	"WRITE":      Write,
	"RMW":        Modify,
	"FLOW":       Flow,
	"SUBROUTINE": Subroutine,
	"INTERRUPT":  Interrupt,
}

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
