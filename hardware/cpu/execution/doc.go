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

// Package execution records the recoverable conditions met by a CPU core
// while executing instructions.
//
// Neither condition stops execution. An illegal opcode is skipped and
// counted. An unsupported feature, such as the delayed effect of enabling
// interrupts, is approximated. Both are written to the central logger under
// the tag of the CPU. Logging can be silenced by replacing the Permission
// field of the Diagnostics.
package execution
