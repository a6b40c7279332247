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
	"io"
)

// dwarfReader is the subset of *dwarf.Reader the cursor needs. Factoring
// it out as an interface lets tests replay a fixed entry sequence without
// constructing a real dwarf.Data.
type dwarfReader interface {
	Next() (*dwarf.Entry, error)
}

// dieNode is an in-memory node of one compilation unit's DIE tree, built
// ahead of interpretation so the builder can look at a DIE's children (and
// its parent, for DW_TAG_subrange_type's array owner) without re-driving
// the underlying Reader.
type dieNode struct {
	entry    *dwarf.Entry
	children []*dieNode
	parent   *dieNode
}

// readChildren reads parent's children from r, recursing into
// grandchildren as they are encountered, until the reader emits the
// null entry debug/dwarf uses to mark the end of a sibling chain.
//
// debug/dwarf.Reader.Next does not collapse that null entry away: callers
// walking children manually see it as an *dwarf.Entry with Tag == 0, and
// must stop there rather than treat it as a real DIE.
func readChildren(r dwarfReader, parent *dieNode, byOffset map[dwarf.Offset]*dieNode) error {
	if !parent.entry.Children {
		return nil
	}
	for {
		e, err := r.Next()
		if err != nil {
			return err
		}
		if e == nil {
			return io.ErrUnexpectedEOF
		}
		if e.Tag == 0 {
			return nil
		}

		child := &dieNode{entry: e, parent: parent}
		parent.children = append(parent.children, child)
		byOffset[e.Offset] = child

		if e.Children {
			if err := readChildren(r, child, byOffset); err != nil {
				return err
			}
		}
	}
}

// readCU reads one compilation unit's DIE tree starting at r's current
// position, which must be positioned at a top-level entry (as produced by
// dwarf.Data.Reader after a prior CU has been fully consumed). It returns
// a nil root, with no error, once the reader is exhausted.
func readCU(r dwarfReader) (*dieNode, map[dwarf.Offset]*dieNode, error) {
	e, err := r.Next()
	if err != nil {
		return nil, nil, err
	}
	if e == nil {
		return nil, nil, nil
	}

	root := &dieNode{entry: e}
	byOffset := map[dwarf.Offset]*dieNode{e.Offset: root}

	if err := readChildren(r, root, byOffset); err != nil {
		return nil, nil, err
	}
	return root, byOffset, nil
}
