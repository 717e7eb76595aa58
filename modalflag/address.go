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


package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddress converts the string to a 16 bit address. A $ prefix means
// the number is hexadecimal, as does a 0x prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("address: %w", err)
	}
	return uint16(v), nil
}

// address implements the flag.Value interface.
type address uint16

func (a *address) String() string {
	if a == nil {
		return "$0000"
	}
	return fmt.Sprintf("$%04x", uint16(*a))
}

func (a *address) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = address(v)
	return nil
}

// addressList implements the flag.Value interface.
type addressList struct {
	addresses []uint16
}

func (l *addressList) String() string {
	if l == nil {
		return ""
	}
	s := make([]string, len(l.addresses))
	for i, a := range l.addresses {
		s[i] = fmt.Sprintf("$%04x", a)
	}
	return strings.Join(s, ",")
}

func (l *addressList) Set(s string) error {
	for _, f := range strings.Split(s, ",") {
		v, err := ParseAddress(f)
		if err != nil {
			return err
		}
		l.addresses = append(l.addresses, v)
	}
	return nil
}
