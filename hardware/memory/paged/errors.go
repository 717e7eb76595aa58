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

package paged

// Error patterns for the configuration errors returned by Arena and Map.
const (
	OutOfRange   = "paged: address range %#x to %#x outside address space of %#x"
	NotAligned   = "paged: %s %#x is not a multiple of the page size %#x"
	BadHandle    = "paged: no buffer with handle %d"
	ShortPadding = "paged: buffer of %d bytes is too short for %d bytes plus %d bytes of padding"
	ShortBuffer  = "paged: buffer %d has %d bytes but %d bytes from offset %#x are required"
	BadPageSize  = "paged: page size %#x must be a power of two and divide the address space %#x"
)
