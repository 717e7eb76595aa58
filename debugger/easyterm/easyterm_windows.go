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


package easyterm

import (
	"os"
)

// Terminal does nothing on windows. Key presses are not available until the
// return key is pressed.
type Terminal struct{}

// Initialise the Terminal.
func (pt *Terminal) Initialise(input *os.File) error {
	return nil
}

// CanonicalMode is a no-op.
func (pt *Terminal) CanonicalMode() error {
	return nil
}

// CBreakMode is a no-op.
func (pt *Terminal) CBreakMode() error {
	return nil
}

// Flush is a no-op.
func (pt *Terminal) Flush() error {
	return nil
}

// SuspendProcess is a no-op.
func SuspendProcess() {}
