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

	"github.com/jetsetilly/dwarfloader/errors"
)

// buildCU walks one compilation unit's DIE tree, already materialised as a
// dieNode tree by readCU, and populates cu's tables with the Nodes built
// from it. Every cross-reference left on a Node's Tag.Raw is still a raw
// DWARF offset at this point; resolve.go rewrites them in a second pass
// once every DIE in the CU has been seen.
func buildCU(cu *CU, root *dieNode, opts *buildOpts, diag *Diagnostics) error {
	if root.entry.Tag != dwarf.TagCompileUnit {
		return errors.Errorf(errors.CompileUnitExpected, root.entry.Tag)
	}

	opts.diag = diag
	cu.Language, _ = attrInt64(root.entry, dwarf.AttrLanguage)

	for _, child := range root.children {
		node := buildChildNode(child, cu, opts, diag, true)
		if node == nil {
			continue
		}
		node.Header().TopLevel = true
		assignTopLevel(cu, node)
	}

	return nil
}

// assignTopLevel files a freshly built top-level Node into the table its
// Kind belongs in.
func assignTopLevel(cu *CU, node Node) {
	switch n := node.(type) {
	case *Subprogram:
		cu.Functions = append(cu.Functions, n)
	case *Variable:
		cu.Variables = append(cu.Variables, n)
	default:
		if node.Header().Kind.isTypeKind() {
			cu.Types = append(cu.Types, node)
		} else {
			cu.Tags = append(cu.Tags, node)
		}
	}
}

// buildChildNode builds the Node for n, recursing into whatever
// kind-specific children it owns, and registers it in the CU's
// offset-keyed hashes so the resolver can later look it up by the raw
// DWARF offset other DIEs refer to it by. It returns nil for a DIE kind
// this loader doesn't recognise, after reporting it to diag once.
//
// isRoot is true only for a DIE that is a direct child of the compile
// unit: buildCU itself gives those a table slot via assignTopLevel once
// this call returns. A type-kind DIE nested inside a namespace or
// aggregate has no such second pass, so buildChildNode reserves its
// types-table slot (and small_id) here instead, the moment it is built.
func buildChildNode(n *dieNode, cu *CU, opts *buildOpts, diag *Diagnostics, isRoot bool) Node {
	node := buildNode(n, opts, func(t dwarf.Tag) {
		diag.warnOnce(fmt.Sprintf("unsupported-tag-%d", t), "dwarf", "skipping DIE with unsupported tag %v at offset %#x", t, n.entry.Offset)
	})
	if node == nil {
		return nil
	}

	cu.byIDAny[n.entry.Offset] = node
	if node.Header().Kind.isTypeKind() {
		cu.byIDType[n.entry.Offset] = node
		if !isRoot {
			cu.Types = append(cu.Types, node)
		}
	}

	switch t := node.(type) {
	case *ArrayType:
		const maxDimensions = 64
		for _, c := range n.children {
			sub, ok := buildNode(c, opts, func(dwarf.Tag) {}).(*SubrangeType)
			if !ok {
				continue
			}
			if len(t.Dimensions) >= maxDimensions {
				diag.warnOnce("array-dimension-overflow", "dwarf", "array_type at offset %#x exceeds %d dimensions, truncating", n.entry.Offset, maxDimensions)
				continue
			}
			t.Dimensions = append(t.Dimensions, *sub)
		}

	case *EnumerationType:
		for _, c := range n.children {
			if en, ok := buildNode(c, opts, func(dwarf.Tag) {}).(*Enumerator); ok {
				t.Enumerators = append(t.Enumerators, *en)
			}
		}

	case *AggregateType:
		for _, c := range n.children {
			switch c.entry.Tag {
			case dwarf.TagMember:
				if m, ok := buildNode(c, opts, func(dwarf.Tag) {}).(*Member); ok {
					cu.byIDAny[c.entry.Offset] = m
					t.Members = append(t.Members, *m)
				}
			case dwarf.TagInheritance:
				if inh, ok := buildNode(c, opts, func(dwarf.Tag) {}).(*Inheritance); ok {
					cu.byIDAny[c.entry.Offset] = inh
					t.Inheritances = append(t.Inheritances, *inh)
				}
			default:
				if nested := buildChildNode(c, cu, opts, diag, false); nested != nil {
					t.Children = append(t.Children, nested)
				}
			}
		}

	case *NamespaceType:
		for _, c := range n.children {
			if nested := buildChildNode(c, cu, opts, diag, false); nested != nil {
				t.Children = append(t.Children, nested)
			}
		}

	case *FunctionType:
		buildFunctionChildren(n, cu, opts, t)

	case *Subprogram:
		buildFunctionChildren(n, cu, opts, &t.FunctionType)
		for _, c := range n.children {
			switch c.entry.Tag {
			case dwarf.TagFormalParameter, dwarf.TagUnspecifiedParameters:
				// consumed by buildFunctionChildren above
			default:
				if nested := buildChildNode(c, cu, opts, diag, false); nested != nil {
					t.Children = append(t.Children, nested)
				}
			}
		}

	case *LexicalBlock:
		for _, c := range n.children {
			if nested := buildChildNode(c, cu, opts, diag, false); nested != nil {
				t.Children = append(t.Children, nested)
			}
		}

	case *InlineExpansion:
		for _, c := range n.children {
			if nested := buildChildNode(c, cu, opts, diag, false); nested != nil {
				t.Children = append(t.Children, nested)
			}
		}
	}

	return node
}

// buildFunctionChildren fills in fn.Parameters and fn.Variadic from n's
// formal-parameter children, shared between a bare subroutine_type and a
// subprogram's own signature.
func buildFunctionChildren(n *dieNode, cu *CU, opts *buildOpts, fn *FunctionType) {
	for _, c := range n.children {
		switch c.entry.Tag {
		case dwarf.TagFormalParameter:
			if p, ok := buildNode(c, opts, func(dwarf.Tag) {}).(*Parameter); ok {
				cu.byIDAny[c.entry.Offset] = p
				fn.Parameters = append(fn.Parameters, *p)
			}
		case dwarf.TagUnspecifiedParameters:
			fn.Variadic = true
		}
	}
}
