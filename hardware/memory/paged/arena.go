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

import (
	"github.com/jetsetilly/gme8/curated"
)

// Padding is the number of bytes that can be read safely past the end of a
// page. It must be at least the length of the longest instruction of any CPU
// that uses the map.
const Padding = 8

// Handle refers to a buffer in an Arena.
type Handle int

// NoHandle is the handle of the sentinel buffer of unmapped pages.
const NoHandle Handle = -1

type buffer struct {
	// data has Padding more bytes than size
	data []byte
	size int
}

// Arena owns the memory buffers referred to by the pages of one or more
// Maps. Buffers are never freed or moved so a Handle is valid for the
// lifetime of the arena.
type Arena struct {
	buffers []buffer
}

// NewArena is the preferred method of initialisation for the Arena type.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) add(data []byte, size int) Handle {
	a.buffers = append(a.buffers, buffer{data: data, size: size})
	return Handle(len(a.buffers) - 1)
}

// Alloc creates a new buffer of size bytes. Every byte, including the
// padding, is set to the fill value.
func (a *Arena) Alloc(size int, fill uint8) Handle {
	data := make([]byte, size+Padding)
	if fill != 0 {
		for i := range data {
			data[i] = fill
		}
	}
	return a.add(data, size)
}

// Load creates a new buffer containing a copy of data. The padding is
// zeroed. This is the only copy made of the data.
func (a *Arena) Load(data []byte) Handle {
	b := make([]byte, len(data)+Padding)
	copy(b, data)
	return a.add(b, len(data))
}

// Adopt takes ownership of an existing buffer without copying it. The buffer
// must have at least Padding bytes more than size.
func (a *Arena) Adopt(data []byte, size int) (Handle, error) {
	if len(data) < size+Padding {
		return NoHandle, curated.Errorf(ShortPadding, len(data), size, Padding)
	}
	return a.add(data, size), nil
}

// Valid returns true if the handle refers to a buffer in the arena.
func (a *Arena) Valid(h Handle) bool {
	return h >= 0 && int(h) < len(a.buffers)
}

// Bytes returns the usable part of the buffer. Writes to the returned slice
// are seen by every page that refers to the buffer. Returns nil if the handle
// is not valid.
func (a *Arena) Bytes(h Handle) []byte {
	if !a.Valid(h) {
		return nil
	}
	b := a.buffers[h]
	return b.data[:b.size]
}

// Len returns the usable size of the buffer. Returns zero if the handle is
// not valid.
func (a *Arena) Len(h Handle) int {
	if !a.Valid(h) {
		return 0
	}
	return a.buffers[h].size
}

// Count returns the number of buffers in the arena.
func (a *Arena) Count() int {
	return len(a.buffers)
}

// view returns the part of the buffer that a page starting at offset refers
// to, including the padding.
func (a *Arena) view(h Handle, offset int, pageSize int) ([]byte, error) {
	if !a.Valid(h) {
		return nil, curated.Errorf(BadHandle, h)
	}
	b := a.buffers[h]
	if offset < 0 || offset+pageSize > b.size {
		return nil, curated.Errorf(ShortBuffer, h, b.size, pageSize, offset)
	}
	return b.data[offset : offset+pageSize+Padding], nil
}
