// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package errors

// error messages for the catastrophic conditions the loader reports as a
// failure for the whole file, rather than as a diagnostic. See the error
// handling table in the loader's specification.
const (
	// ELF / DWARF section discovery
	NoDWARFSection           = "dwarf: ELF file has no %s section"
	UnsupportedDWARFVersion  = "dwarf: version %d of DWARF is not supported"
	ELFOpenError             = "dwarf: could not open ELF file: %v"
	ELFSectionReadError      = "dwarf: could not read %s section: %v"

	// compilation unit construction
	CompileUnitExpected = "dwarf: expected DW_TAG_compile_unit at CU root, found %v"
	AssertionFailure     = "dwarf: assertion failure: %v"

	// reference resolution
	BitfieldRecodeUnsupported = "dwarf: cannot recode bitfield base of kind %v"

	// stealer contract
	LoadAborted = "dwarf: loading aborted by stealer"
)
