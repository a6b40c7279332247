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
	"fmt"
)

// resolveCU is the second construction pass. It assigns every entry of the
// types, tags, functions and variables tables a dense small_id equal to
// its position in that table, then walks
// every Node in the CU — top-level and nested alike — rewriting its
// Tag.Type (and, for a ptr_to_member_type, its ContainingType) from the
// raw DWARF offset recorded during the build pass into that small_id.
//
// A reference that cannot be resolved, because it points at a DIE this
// loader didn't recognise or at an offset outside the CU entirely, is left
// at 0 (void) and reported once via diag.
func resolveCU(cu *CU, diag *Diagnostics) {
	for i, n := range cu.Types {
		n.Header().Raw.SmallID = i
	}
	for i, n := range cu.Tags {
		n.Header().Raw.SmallID = i
	}
	for i, n := range cu.Functions {
		n.Header().Raw.SmallID = i
	}
	for i, n := range cu.Variables {
		n.Header().Raw.SmallID = i
	}

	for _, n := range cu.Types {
		resolveNode(n, cu, diag)
	}
	for _, n := range cu.Tags {
		resolveNode(n, cu, diag)
	}
	for _, n := range cu.Functions {
		resolveNode(n, cu, diag)
	}
	for _, n := range cu.Variables {
		resolveNode(n, cu, diag)
	}
}

// resolveTypeRef looks up the small_id a raw DW_AT_type-shaped offset
// refers to. A zero offset means "no type", i.e. void, and returns 0
// without a diagnostic: a legitimate reference rather than a failure. An
// offset with no type DIE behind it also returns 0, after a warning.
func resolveTypeRef(cu *CU, diag *Diagnostics, ref dwarf.Offset) int {
	if ref == 0 {
		return 0
	}
	target, ok := cu.byIDType[ref]
	if !ok {
		diag.warnOnce(fmt.Sprintf("unresolved-type-%#x", ref), "dwarf", "unresolved type reference at offset %#x", ref)
		return 0
	}
	return target.Header().Raw.SmallID
}

// resolveOriginRef looks up the Node a DW_AT_abstract_origin or
// DW_AT_specification offset refers to. Both attributes can point at any
// DIE kind, so the lookup goes through the tags hash (byIDAny) rather than
// the types-only byIDType.
func resolveOriginRef(cu *CU, ref dwarf.Offset) (Node, bool) {
	if ref == 0 {
		return nil, false
	}
	n, ok := cu.byIDAny[ref]
	return n, ok
}

// resolveTypeAndName rewrites h's own type reference into a small_id. When
// h has no DW_AT_type (and/or no DW_AT_name) of its own, it copies the
// missing piece from whichever of DW_AT_abstract_origin / DW_AT_specification
// resolves to another DIE: this is how a producer records an out-of-line
// function instance, an inlined formal parameter, or a declaration split
// from its definition, where the concrete DIE is otherwise empty and the
// real type and name live on the origin. The origin's own raw type offset
// is resolved directly rather than trusting its already-resolved Tag.Type,
// since resolveCU processes the types, tags, functions and variables
// tables in that fixed order and the origin may not have been visited yet.
func resolveTypeAndName(h *Tag, cu *CU, diag *Diagnostics) {
	if h.Raw.TypeRef != 0 {
		h.Type = resolveTypeRef(cu, diag, dwarf.Offset(h.Raw.TypeRef))
	} else if origin, ok := resolveOriginRef(cu, h.Raw.AbstractOriginRef); ok {
		h.Type = resolveTypeRef(cu, diag, dwarf.Offset(origin.Header().Raw.TypeRef))
	} else if spec, ok := resolveOriginRef(cu, h.Raw.SpecificationRef); ok {
		h.Type = resolveTypeRef(cu, diag, dwarf.Offset(spec.Header().Raw.TypeRef))
	}

	if h.Name != 0 {
		return
	}
	if origin, ok := resolveOriginRef(cu, h.Raw.AbstractOriginRef); ok {
		h.Name = origin.Header().Name
	} else if spec, ok := resolveOriginRef(cu, h.Raw.SpecificationRef); ok {
		h.Name = spec.Header().Name
	}
}

// resolveNode rewrites one Node's own cross-references and recurses into
// whatever nested Nodes it owns.
func resolveNode(n Node, cu *CU, diag *Diagnostics) {
	h := n.Header()
	resolveTypeAndName(h, cu, diag)

	switch t := n.(type) {
	case *PtrToMemberType:
		t.ContainingType = resolveTypeRef(cu, diag, dwarf.Offset(t.Raw.ContainingTypeRef))

	case *ArrayType:
		for i := range t.Dimensions {
			d := &t.Dimensions[i]
			d.Type = resolveTypeRef(cu, diag, dwarf.Offset(d.Raw.TypeRef))
		}

	case *AggregateType:
		for i := range t.Members {
			m := &t.Members[i]
			m.Type = resolveTypeRef(cu, diag, dwarf.Offset(m.Raw.TypeRef))
		}
		for i := range t.Inheritances {
			inh := &t.Inheritances[i]
			inh.Type = resolveTypeRef(cu, diag, dwarf.Offset(inh.Raw.TypeRef))
		}
		for _, c := range t.Children {
			resolveNode(c, cu, diag)
		}

	case *NamespaceType:
		for _, c := range t.Children {
			resolveNode(c, cu, diag)
		}

	case *FunctionType:
		for i := range t.Parameters {
			resolveTypeAndName(t.Parameters[i].Header(), cu, diag)
		}

	case *Subprogram:
		for i := range t.Parameters {
			resolveTypeAndName(t.Parameters[i].Header(), cu, diag)
		}
		for _, c := range t.Children {
			resolveNode(c, cu, diag)
		}

	case *LexicalBlock:
		for _, c := range t.Children {
			resolveNode(c, cu, diag)
		}

	case *InlineExpansion:
		for _, c := range t.Children {
			resolveNode(c, cu, diag)
		}
	}
}

// clearCURawMetadata drops every Node's raw cross-reference offsets and
// decl_file/decl_line once resolution and bitfield recoding no longer
// need them, per the specification's rule that a Tag's raw metadata is
// only kept around when the caller's LoadConfig.ExtraDebugInfo asked for
// it. Safe to call only after resolveCU and recodeBitfields have both
// run to completion, since every small_id lookup needs the very metadata
// this clears.
func clearCURawMetadata(cu *CU) {
	for _, n := range cu.Types {
		clearRaw(n)
	}
	for _, n := range cu.Tags {
		clearRaw(n)
	}
	for _, n := range cu.Functions {
		clearRaw(n)
	}
	for _, n := range cu.Variables {
		clearRaw(n)
	}
}

// clearRaw nils out n's own raw metadata and recurses into whatever
// nested Nodes and value-typed children (members, parameters,
// inheritances, array dimensions, enumerators) it owns, mirroring
// resolveNode's traversal of the same shapes.
func clearRaw(n Node) {
	n.Header().Raw = nil

	switch t := n.(type) {
	case *ArrayType:
		for i := range t.Dimensions {
			t.Dimensions[i].Raw = nil
		}

	case *EnumerationType:
		for i := range t.Enumerators {
			t.Enumerators[i].Raw = nil
		}

	case *AggregateType:
		for i := range t.Members {
			t.Members[i].Raw = nil
		}
		for i := range t.Inheritances {
			t.Inheritances[i].Raw = nil
		}
		for _, c := range t.Children {
			clearRaw(c)
		}

	case *NamespaceType:
		for _, c := range t.Children {
			clearRaw(c)
		}

	case *FunctionType:
		for i := range t.Parameters {
			t.Parameters[i].Raw = nil
		}

	case *Subprogram:
		for i := range t.Parameters {
			t.Parameters[i].Raw = nil
		}
		for _, c := range t.Children {
			clearRaw(c)
		}

	case *LexicalBlock:
		for _, c := range t.Children {
			clearRaw(c)
		}

	case *InlineExpansion:
		for _, c := range t.Children {
			clearRaw(c)
		}
	}
}
