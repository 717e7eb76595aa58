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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Whereas flag.FlagSet is given the arguments with the call to Parse(),
// modalflag is given the arguments with NewArgs() and Parse() takes no
// arguments. This allows the arguments to be parsed in layers, one layer for
// each mode. For example, the gme8 command line is parsed like this:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")
//	if p, err := md.Parse(); p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		kind := md.AddString("cpu", "NES", "console kind")
//		load := md.AddAddress("load", 0x8000, "load address")
//		if p, err := md.Parse(); p != modalflag.ParseContinue {
//			return err
//		}
//		run(*kind, *load, md.GetArg(0))
//	}
//
// The first sub-mode in the list is the default. Sub-mode comparisons are
// case insensitive and Mode() always returns the upper case name. Modes can
// be chained as deep as required and Path() returns the chain of modes found
// so far.
//
// Help is printed to the Output writer when the -help flag is found, in
// which case Parse() returns ParseHelp.
//
// Addresses are a common argument for gme8 and have their own flag type.
// They can be specified in decimal, with a 0x prefix or with a $ prefix.
package modalflag
