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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example, the paged memory package exports the
// patterns of the configuration errors it can return:
//
//	err := mem.Map(0x1000, 0x0800, h, 0, paged.RAM)
//
//	if curated.Is(err, paged.NotAligned) {
//		fmt.Println("mapping is not page aligned")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(paged.NotAligned, "start address", 0x1000)
//	f := curated.Errorf("harness: %v", e)
//
//	if curated.Has(f, paged.NotAligned) {
//		fmt.Println("true")
//	}
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is
// 'curated' and false if the error is 'uncurated'. We can think of the
// difference as being 'expected' and 'unexpected' depending on how we choose
// to handle the result of the function call.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example:
//
//	e := curated.Errorf("paged: %v", curated.Errorf("paged: bad handle"))
//
// will print as
//
//	paged: bad handle
//
// and not:
//
//	paged: paged: bad handle
//
// For the purposes of this package we think of chains as being composed of
// parts separated by the sub-string ': ' as suggested on p239 of "The Go
// Programming Language" (Donovan, Kernighan).
//
// Sentinel patterns should be stored as a const string, suitably named and
// commented, in the package that returns the error.
package curated
