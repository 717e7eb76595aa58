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


package logger

import (
	"io"
)

// the central logger is shared by every CPU core and by the harness. a CPU
// that needs its own log can be given a Permission that denies the central
// log and the caller can use NewLogger() instead
var central = NewLogger(maxCentral)

// the central log is bounded so that a program stuck on an illegal opcode
// cannot grow it without limit
const maxCentral = 256

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail any) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, detail string, args ...any) {
	central.Logf(perm, tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write the contents of the central logger to io.Writer. Returns false if
// there was nothing to write.
func Write(output io.Writer) bool {
	return central.Write(output)
}

// Tail writes the last N entries of the central logger to io.Writer.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}

// SetEcho prints new entries of the central logger to io.Writer. A nil
// writer turns echoing off.
func SetEcho(output io.Writer) {
	central.SetEcho(output)
}
