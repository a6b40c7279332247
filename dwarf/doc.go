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

// Package dwarf walks the DIE tree of a DWARF v2/v3/v4 compilation unit,
// as produced by the standard library's debug/dwarf package, and builds a
// dense, indexed model of the program's types, functions, variables and
// lexical structure.
//
// Construction happens in three passes. The first pass (see builder.go)
// descends the DIE tree and materialises one Node per DIE, recording every
// cross-reference as a raw DWARF offset. The second pass (see resolve.go)
// gives every row of the CU's types, tags, functions and variables tables
// its dense index, then rewrites each DW_AT_type-style offset into the
// index of the referenced row in the types table. The third pass, the
// bitfield recoder (bitfield.go), synthesises one width-specific BaseType
// per distinct type name and bit width; it follows typedef, const and
// volatile wrappers down to their base without re-creating them, and
// recodes an enumeration base as a plain BaseType, not as an enumeration.
// After that a size cache (sizecache.go) derives per-type byte sizes and
// a member cache (membercache.go) records per-member byte/bit sizes.
//
// Line number programs, call frame information, macro information, split
// DWARF and DWARF expression evaluation beyond the offset-constant forms
// needed for member placement are not implemented; see SPEC_FULL.md.
package dwarf
