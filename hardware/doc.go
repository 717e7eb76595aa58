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


// Package hardware is the base package for the CPU cores. The cpu
// sub-packages contain the dispatch engines and the memory sub-packages
// contain the paged memory map and the contract between a CPU and its host.
// The clocks package lists the speeds of the consoles that use the cores.
//
// There is no emulation of the rest of a console here. The harness package
// is a minimal host for running programs.
package hardware
