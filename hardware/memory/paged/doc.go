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

// Package paged implements the address space of a CPU core as a table of
// fixed size pages.
//
// Memory is owned by an Arena. Each buffer in the arena is referred to by a
// Handle and is allocated with Padding bytes past its end, so that the
// dispatch loop of a CPU can read a complete instruction starting at any
// address in a page without a bounds check.
//
// A Map is a table of page entries. Each entry refers to a region of a buffer
// in the arena by handle and offset. Bank switching is RemapBank(), which
// writes a single entry and never copies memory.
//
// Pages that are not mapped refer to a sentinel buffer that belongs to the
// map. The sentinel is filled with the value given to Reset(). CPU cores use
// their illegal opcode value as the fill so that execution of unmapped memory
// is detected deterministically.
//
// Configuration errors are returned as curated errors. No entry is written by
// a call that returns an error.
package paged
