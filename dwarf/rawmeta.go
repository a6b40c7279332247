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

import "debug/dwarf"

// RawMeta carries everything the first construction pass records about a
// DIE's cross-references, before the resolver rewrites them into small_ids.
// Load keeps it on the Tag header after resolution only when
// LoadConfig.ExtraDebugInfo is set; otherwise it is dropped once the CU
// is fully built.
type RawMeta struct {
	// ID is this DIE's own offset, the key it is found under in the owning
	// CU's byIDAny/byIDType hashes.
	ID dwarf.Offset

	// TypeRef is the raw DW_AT_type offset, or 0 if the DIE has none (which
	// this loader treats as a reference to void).
	TypeRef dwarf.Offset

	// AbstractOriginRef is the raw DW_AT_abstract_origin offset, or 0.
	AbstractOriginRef dwarf.Offset

	// ContainingTypeRef is the raw DW_AT_containing_type offset, or 0.
	ContainingTypeRef dwarf.Offset

	// SpecificationRef is the raw DW_AT_specification offset, or 0.
	SpecificationRef dwarf.Offset

	DeclFile int64
	DeclLine int64

	// SmallID is filled in during resolution: the dense index this DIE was
	// assigned in its owning table. Other DIEs' DW_AT_type and
	// DW_AT_containing_type offsets that point at a type DIE's ID are
	// rewritten to that DIE's SmallID.
	SmallID int
}
