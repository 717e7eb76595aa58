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


package harness

import "github.com/jetsetilly/gme8/hardware/memory/paged"

// Page describes a single entry in the memory map of the CPU.
type Page struct {
	Start  int
	Access string
	Handle int
	Offset int
}

// Snapshot is a summary of the harness state. It contains no references to
// the harness and is suitable for visualisation.
type Snapshot struct {
	Kind       string
	Registers  string
	Now        int
	IRQTime    int
	Masked     bool
	Frames     int
	Interrupts int
	Pages      []Page
}

// Snapshot returns the current state of the harness. Consecutive pages with
// the same access are merged.
func (h *Harness) Snapshot() Snapshot {
	s := Snapshot{
		Kind:       h.Kind.String(),
		Registers:  h.CPU.String(),
		Now:        h.CPU.Now(),
		IRQTime:    h.CPU.IRQTime(),
		Masked:     h.CPU.Masked(),
		Frames:     h.Frames,
		Interrupts: h.Interrupts,
	}

	mem := h.CPU.Memory()
	for i := 0; i < mem.PageCount(); i++ {
		e := mem.Page(i)
		if n := len(s.Pages); n > 0 {
			last := s.Pages[n-1]
			if last.Access == e.Access.String() && last.Handle == int(e.Handle) && (e.Handle == paged.NoHandle || e.Offset == last.Offset+(i*mem.PageSize()-last.Start)) {
				continue
			}
		}
		s.Pages = append(s.Pages, Page{
			Start:  i * mem.PageSize(),
			Access: e.Access.String(),
			Handle: int(e.Handle),
			Offset: e.Offset,
		})
	}

	return s
}
