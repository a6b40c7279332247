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

package dwarf

import (
	"debug/dwarf"

	"github.com/jetsetilly/dwarfloader/strtab"
)

// CU is the dense, indexed model of one compilation unit. The types, tags,
// functions and variables tables hold every top-level DIE, addressed by
// the small_id the resolver assigned it; byIDAny and byIDType remain
// populated after resolution purely as a diagnostic aid, keyed by the
// DIE's original DWARF offset.
type CU struct {
	// Types holds every DIE whose Kind.isTypeKind() is true: base types,
	// qualified types, aggregates, enumerations, arrays, namespaces,
	// pointer-to-member types and subroutine types. Type DIEs nested
	// inside a namespace, aggregate or function scope get a row here
	// too, as do the base types the bitfield recoder synthesises.
	Types []Node

	// Tags holds every other top-level DIE that isn't a type and isn't a
	// subprogram or variable: imported declarations/modules, labels,
	// lexical blocks and inlined subroutines at the CU root.
	Tags []Node

	// Functions holds every top-level DW_TAG_subprogram.
	Functions []*Subprogram

	// Variables holds every top-level DW_TAG_variable.
	Variables []*Variable

	// byIDAny maps a DIE's raw DWARF offset to the Node built from it,
	// across every table. Populated during the build pass and consulted
	// during resolution; retained afterwards for diagnostics.
	byIDAny map[dwarf.Offset]Node

	// byIDType is the restriction of byIDAny to DIEs that live in Types,
	// used by the resolver when rewriting DW_AT_type references, which
	// may only point at a type DIE.
	byIDType map[dwarf.Offset]Node

	Language   int64
	PointerSize int
	BuildID    string
	Filename   string

	// Bitfields collects the width-specific base types the bitfield
	// recoder synthesises, deduplicated by name and bit-width; each one
	// is also appended to Types at the moment it is synthesised.
	Bitfields []*BaseType

	// Sizes is the post-load size cache, populated by loadOneCU once
	// resolution and bitfield recoding have both settled. Every real
	// Load/loadFile call populates it; only a test driving the build
	// passes directly, without going through loadOneCU, may leave it nil.
	Sizes *SizeCache
}

// voidType returns the synthetic Node that always occupies cu.Types[0].
// small_id 0 means void throughout this package (resolveTypeRef returns it
// for a zero DW_AT_type offset without even looking the reference up), so
// that slot has to be reserved before the build pass appends any real
// type, or the first type a CU happens to declare would silently collide
// with "no type" — matching the original's cu__new, whose types_table
// entry 0 is the untouched void slot that cu__recode_dwarf_types_table
// skips by starting its loop at i=1.
func voidType() Node {
	return &QualifiedType{Tag: Tag{Kind: KindVoid, Raw: &RawMeta{SmallID: 0}}}
}

// newCU returns an empty CU ready for the build pass to populate, with
// cu.Types[0] already holding the void sentinel.
func newCU(filename string, pointerSize int) *CU {
	return &CU{
		Types:       []Node{voidType()},
		byIDAny:     make(map[dwarf.Offset]Node),
		byIDType:    make(map[dwarf.Offset]Node),
		Filename:    filename,
		PointerSize: pointerSize,
	}
}

// File is the top-level result of a successful Load: one CU per
// DW_TAG_compile_unit the ELF file's debug_info section contained, plus
// the string table every CU's names were interned into.
type File struct {
	CUs     []*CU
	Strings *strtab.Table
}
