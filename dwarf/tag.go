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

import "github.com/jetsetilly/dwarfloader/strtab"

// Node is implemented by every per-kind variant struct this package
// produces from a DIE. Callers type-switch on the concrete type, or use
// Header() for the fields common to all of them.
type Node interface {
	Header() *Tag
}

// Tag is embedded by every Node implementation. It carries the fields
// every DWARF DIE has in common, once resolution has rewritten its
// cross-references from raw offsets into small_ids.
type Tag struct {
	Kind Kind

	// Name is the interned DW_AT_name of this DIE, or the zero handle if it
	// has none.
	Name strtab.Handle

	// Type is the small_id of this DIE's DW_AT_type within the owning CU's
	// types table, or 0 if the DIE has no type (meaning void).
	Type int

	// TopLevel is true for DIEs that are direct children of the
	// compilation unit root and therefore hold a row in one of the CU's
	// dense tables (types, tags, functions or variables).
	TopLevel bool

	// Raw is the DIE's raw cross-reference metadata. Load sets it to nil
	// once resolution, bitfield recoding and the size caches have run,
	// unless LoadConfig.ExtraDebugInfo asked to keep it.
	Raw *RawMeta
}

// Header satisfies Node for any struct that embeds Tag directly.
func (t *Tag) Header() *Tag { return t }
