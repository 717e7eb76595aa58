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
	"fmt"
	"strings"

	"github.com/jetsetilly/gme8/curated"
)

// Access describes how the CPU core treats a page.
type Access int

// List of valid Access values.
const (
	// reads return the fill value, writes go to the host
	Unmapped Access = iota

	// reads are direct, writes go to the host
	ROM

	// reads and writes are direct
	RAM

	// reads and writes go to the host
	IO
)

func (a Access) String() string {
	switch a {
	case Unmapped:
		return "unmapped"
	case ROM:
		return "ROM"
	case RAM:
		return "RAM"
	case IO:
		return "IO"
	}
	return "undefined"
}

// Entry is a single page in the Map.
type Entry struct {
	Handle Handle
	Offset int
	Access Access

	// the bytes of the page plus padding
	view []byte
}

// Map is the page table of a CPU core.
type Map struct {
	arena *Arena

	addressSpace int
	pageSize     int
	shift        uint
	mask         int

	pages []Entry

	// backing buffer for unmapped and IO pages
	sentinel []byte
	fill     uint8
}

// NewMap is the preferred method of initialisation for the Map type. The page
// size must be a power of two that divides the address space. All pages are
// unmapped with a fill value of zero.
func NewMap(arena *Arena, addressSpace int, pageSize int) (*Map, error) {
	if pageSize <= 0 || pageSize&(pageSize-1) != 0 || addressSpace <= 0 || addressSpace%pageSize != 0 {
		return nil, curated.Errorf(BadPageSize, pageSize, addressSpace)
	}

	m := &Map{
		arena:        arena,
		addressSpace: addressSpace,
		pageSize:     pageSize,
		mask:         pageSize - 1,
		pages:        make([]Entry, addressSpace/pageSize),
		sentinel:     make([]byte, pageSize+Padding),
	}

	for m.shift = 0; 1<<m.shift < pageSize; m.shift++ {
	}

	m.Reset(0)

	return m, nil
}

// Arena returns the arena that the map's handles refer to.
func (m *Map) Arena() *Arena {
	return m.arena
}

// Reset unmaps every page and fills the sentinel buffer with the fill value.
func (m *Map) Reset(fill uint8) {
	m.fill = fill
	for i := range m.sentinel {
		m.sentinel[i] = fill
	}
	for i := range m.pages {
		m.pages[i] = Entry{Handle: NoHandle, Access: Unmapped, view: m.sentinel}
	}
}

// Fill returns the value that unmapped memory reads as.
func (m *Map) Fill() uint8 {
	return m.fill
}

// PageSize returns the size of each page in bytes.
func (m *Map) PageSize() int {
	return m.pageSize
}

// PageCount returns the number of pages in the map.
func (m *Map) PageCount() int {
	return len(m.pages)
}

// AddressSpace returns the size of the address space in bytes.
func (m *Map) AddressSpace() int {
	return m.addressSpace
}

// Page returns a copy of the page entry. Returns an unmapped entry if the
// page index is out of range.
func (m *Map) Page(page int) Entry {
	if page < 0 || page >= len(m.pages) {
		return Entry{Handle: NoHandle, Access: Unmapped}
	}
	return m.pages[page]
}

// PageOf returns the index of the page that contains the address.
func (m *Map) PageOf(addr uint16) int {
	return (int(addr) >> m.shift) % len(m.pages)
}

func (m *Map) checkRange(addr int, size int) error {
	if addr&m.mask != 0 {
		return curated.Errorf(NotAligned, "address", addr, m.pageSize)
	}
	if size&m.mask != 0 {
		return curated.Errorf(NotAligned, "size", size, m.pageSize)
	}
	if addr < 0 || size < 0 || addr+size > m.addressSpace {
		return curated.Errorf(OutOfRange, addr, addr+size-1, m.addressSpace)
	}
	return nil
}

// Map installs consecutive page entries for the range addr to addr+size,
// referring to the buffer from offset onwards.
func (m *Map) Map(addr int, size int, h Handle, offset int, access Access) error {
	return m.Mirror(addr, size, h, offset, size, access)
}

// Mirror installs page entries for the range addr to addr+size, referring
// repeatedly to a span of the buffer starting at offset. A span of one page
// maps the same page into every entry.
func (m *Map) Mirror(addr int, size int, h Handle, offset int, span int, access Access) error {
	if err := m.checkRange(addr, size); err != nil {
		return err
	}
	if size > 0 && (span <= 0 || span&m.mask != 0) {
		return curated.Errorf(NotAligned, "span", span, m.pageSize)
	}

	// check every view before writing any entry
	views := make([][]byte, size/m.pageSize)
	for i := range views {
		v, err := m.arena.view(h, offset+(i*m.pageSize)%span, m.pageSize)
		if err != nil {
			return err
		}
		views[i] = v
	}

	first := addr >> m.shift
	for i, v := range views {
		m.pages[first+i] = Entry{
			Handle: h,
			Offset: offset + (i*m.pageSize)%span,
			Access: access,
			view:   v,
		}
	}

	return nil
}

// MapIO marks the range as input/output. All reads and writes in the range
// go to the host.
func (m *Map) MapIO(addr int, size int) error {
	if err := m.checkRange(addr, size); err != nil {
		return err
	}
	first := addr >> m.shift
	for i := 0; i < size/m.pageSize; i++ {
		m.pages[first+i] = Entry{Handle: NoHandle, Access: IO, view: m.sentinel}
	}
	return nil
}

// Unmap returns the range to the sentinel buffer.
func (m *Map) Unmap(addr int, size int) error {
	if err := m.checkRange(addr, size); err != nil {
		return err
	}
	first := addr >> m.shift
	for i := 0; i < size/m.pageSize; i++ {
		m.pages[first+i] = Entry{Handle: NoHandle, Access: Unmapped, view: m.sentinel}
	}
	return nil
}

// RemapBank points a single page at a new region of a buffer. The access of
// the page is unchanged unless it is Unmapped or IO, in which case the page
// becomes ROM.
func (m *Map) RemapBank(page int, h Handle, offset int) error {
	if page < 0 || page >= len(m.pages) {
		return curated.Errorf(OutOfRange, page*m.pageSize, (page+1)*m.pageSize-1, m.addressSpace)
	}

	v, err := m.arena.view(h, offset, m.pageSize)
	if err != nil {
		return err
	}

	e := &m.pages[page]
	e.Handle = h
	e.Offset = offset
	e.view = v
	if e.Access == Unmapped || e.Access == IO {
		e.Access = ROM
	}

	return nil
}

// SetAccess changes the access of a single mapped page. Unmapped and IO
// pages can not be changed with this function.
func (m *Map) SetAccess(page int, access Access) {
	if page < 0 || page >= len(m.pages) {
		return
	}
	e := &m.pages[page]
	if e.Handle == NoHandle || access == Unmapped || access == IO {
		return
	}
	e.Access = access
}

// AccessAt returns the access of the page containing the address.
func (m *Map) AccessAt(addr uint16) Access {
	return m.pages[m.PageOf(addr)].Access
}

// CodePointer returns the bytes from the address to the end of the page plus
// padding. The returned slice is always at least Padding+1 bytes long.
func (m *Map) CodePointer(addr uint16) []byte {
	return m.pages[m.PageOf(addr)].view[int(addr)&m.mask:]
}

// Load reads the byte at the address. The second return value is false if the
// page is IO, in which case the host must service the read.
func (m *Map) Load(addr uint16) (uint8, bool) {
	e := &m.pages[m.PageOf(addr)]
	if e.Access == IO {
		return m.fill, false
	}
	return e.view[int(addr)&m.mask], true
}

// Store writes the byte at the address. The write only happens for RAM pages.
// The return value is false if the write must go to the host instead.
func (m *Map) Store(addr uint16, data uint8) bool {
	e := &m.pages[m.PageOf(addr)]
	if e.Access != RAM {
		return false
	}
	e.view[int(addr)&m.mask] = data
	return true
}

// Peek reads the byte at the address without side effects. IO pages read as
// the fill value.
func (m *Map) Peek(addr uint16) uint8 {
	return m.pages[m.PageOf(addr)].view[int(addr)&m.mask]
}

// Poke writes the byte at the address regardless of access, except that
// unmapped and IO pages can not be written.
func (m *Map) Poke(addr uint16, data uint8) {
	e := &m.pages[m.PageOf(addr)]
	if e.Handle == NoHandle {
		return
	}
	e.view[int(addr)&m.mask] = data
}

// Summary returns a multiline string detailing the page table. Consecutive
// pages of the same buffer and access are shown as a single line.
func (m *Map) Summary() string {
	s := strings.Builder{}

	line := func(from, to int, e Entry) {
		if e.Handle == NoHandle {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", from, to, e.Access))
		} else {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\tbuffer %d offset %#x\n", from, to, e.Access, e.Handle, e.Offset))
		}
	}

	start := 0
	for i := 1; i <= len(m.pages); i++ {
		if i < len(m.pages) {
			p := m.pages[i-1]
			c := m.pages[i]
			if c.Handle == p.Handle && c.Access == p.Access &&
				(c.Handle == NoHandle || c.Offset == p.Offset+m.pageSize) {
				continue
			}
		}
		line(start*m.pageSize, i*m.pageSize-1, m.pages[start])
		start = i
	}

	return s.String()
}
