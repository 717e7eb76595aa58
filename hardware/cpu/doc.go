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


// Package cpu defines the interface shared by the dispatch engines in the
// sub-packages:
//
//	mos6502		NMOS 6502 (NES and Atari 8-bit variants)
//	huc6280		HuC6280 (PC Engine)
//	z80		Z80 (MSX and ZX Spectrum variants)
//	lr35902		Game Boy CPU
//
// Each engine runs instructions until its time budget is spent. The owning
// emulator decides how long the budget is and when interrupts happen. See
// the timing package for how time is measured and the cpubus package for
// the callbacks that an owning emulator implements.
//
// All engines are used in the same way. Create the engine with NewCPU(),
// map memory with the Mem field and set the registers in the R field. Then
// call Run() with an end time, as many times as required.
//
//	arena := paged.NewArena()
//	mc, _ := mos6502.NewCPU(host, arena, mos6502.RP2A03)
//	ram := arena.Alloc(0x10000, 0)
//	_ = mc.Mem.Map(0, 0x10000, ram, 0, paged.RAM)
//	mc.R.PC = 0x8000
//
//	for {
//		mc.Run(frameLength)
//		mc.EndFrame(frameLength)
//	}
//
// Time is reported in absolute terms with Now(). EndFrame() keeps absolute
// time small.
package cpu
