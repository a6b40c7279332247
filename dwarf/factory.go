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
	"encoding/binary"

	"github.com/jetsetilly/dwarfloader/strtab"
)

// buildOpts carries the construction-time settings that would otherwise
// have to be threaded through buildNode's every recursive caller as
// separate parameters: the shared string table, and the get_addr_info
// option (6.4) along with what it takes to decode an address (the
// target's pointer width and byte order).
type buildOpts struct {
	strings     *strtab.Table
	getAddrInfo bool
	byteOrder   binary.ByteOrder
	pointerSize int

	// ranges resolves a DIE's PC ranges, decoding DW_AT_ranges against
	// .debug_ranges/.debug_rnglists when DW_AT_low_pc/high_pc don't
	// already describe a contiguous span. Bound to
	// (*dwarf.Data).Ranges by Load; left nil by tests that build
	// fixtures without a backing dwarf.Data, in which case a
	// zero-width inline expansion's ranges are simply left empty.
	ranges func(e *dwarf.Entry) ([][2]uint64, error)

	diag *Diagnostics
}

// makeTag fills in the fields every Node shares, reading the raw
// cross-reference offsets into a fresh RawMeta. Per-kind factories call
// this first and then decode their own extra attributes.
func makeTag(e *dwarf.Entry, kind Kind, strings *strtab.Table) Tag {
	raw := &RawMeta{ID: e.Offset}

	if off, ok := attrOffset(e, dwarf.AttrType); ok {
		raw.TypeRef = off
	}
	if off, ok := attrOffset(e, dwarf.AttrAbstractOrigin); ok {
		raw.AbstractOriginRef = off
	}
	if off, ok := attrOffset(e, dwarf.AttrContainingType); ok {
		raw.ContainingTypeRef = off
	}
	if off, ok := attrOffset(e, dwarf.AttrSpecification); ok {
		raw.SpecificationRef = off
	}
	raw.DeclFile, _ = attrInt64(e, dwarf.AttrDeclFile)
	raw.DeclLine, _ = attrInt64(e, dwarf.AttrDeclLine)

	return Tag{
		Kind: kind,
		Name: strings.Intern(attrString(e, dwarf.AttrName)),
		Raw:  raw,
	}
}

// buildNode constructs the Node for a single DIE, not yet recursing into
// children (the builder does that separately, since child handling is
// kind-specific: array dimensions, enumerators, aggregate members and
// nested declarations are all assembled differently). unsupported is
// called for every DIE whose kind buildNode doesn't recognise; callers
// that report it deduplicate per kind themselves.
func buildNode(n *dieNode, opts *buildOpts, unsupported func(dwarf.Tag)) Node {
	e := n.entry
	kind, ok := kindFromTag(e.Tag)
	if !ok {
		unsupported(e.Tag)
		return nil
	}

	strings := opts.strings

	switch kind {
	case KindBaseType:
		t := &BaseType{Tag: makeTag(e, kind, strings)}
		t.ByteSize, _ = attrInt64(e, dwarf.AttrByteSize)
		t.Encoding, _ = attrInt64(e, dwarf.AttrEncoding)
		return t

	case KindTypedef, KindConstType, KindVolatileType, KindPointerType,
		KindReferenceType, KindImportedModule, KindImportedDeclaration:
		return &QualifiedType{Tag: makeTag(e, kind, strings)}

	case KindPtrToMemberType:
		// ContainingType is rewritten from Tag.Raw.ContainingTypeRef by
		// resolve.go, the same way every Tag.Type is rewritten from
		// Tag.Raw.TypeRef.
		return &PtrToMemberType{Tag: makeTag(e, kind, strings)}

	case KindArrayType:
		return &ArrayType{Tag: makeTag(e, kind, strings)}

	case KindSubrangeType:
		t := &SubrangeType{Tag: makeTag(e, kind, strings)}
		if v, ok := attrInt64(e, dwarf.AttrCount); ok {
			t.Count, t.HasCount = v, true
		}
		if v, ok := attrInt64(e, dwarf.AttrUpperBound); ok {
			t.UpperBound, t.HasUpper = v, true
		}
		return t

	case KindEnumerator:
		t := &Enumerator{Tag: makeTag(e, kind, strings)}
		t.Value, _ = attrInt64(e, dwarf.AttrConstValue)
		return t

	case KindEnumerationType:
		t := &EnumerationType{Tag: makeTag(e, kind, strings)}
		if v, ok := attrInt64(e, dwarf.AttrByteSize); ok {
			t.ByteSize = v
		} else {
			// DW_AT_byte_size absent defaults to one machine integer (32
			// bits).
			t.ByteSize = 4
		}
		return t

	case KindMember:
		t := &Member{Tag: makeTag(e, kind, strings)}
		t.ByteOffset = attrMemberOffset(e, opts.diag)
		if v, ok := attrInt64(e, dwarf.AttrBitSize); ok {
			t.BitSize, t.HasBitfield = v, true
		}
		t.RecodedType = -1
		t.Accessibility, _ = attrInt64(e, dwarf.AttrAccessibility)
		t.Virtuality, _ = attrInt64(e, dwarf.AttrVirtuality)
		return t

	case KindInheritance:
		t := &Inheritance{Tag: makeTag(e, kind, strings)}
		t.ByteOffset, _ = attrConstOrBlockOffset(e, dwarf.AttrDataMemberLoc)
		t.Accessibility, _ = attrInt64(e, dwarf.AttrAccessibility)
		return t

	case KindFormalParameter, KindUnspecifiedParameters:
		return &Parameter{Tag: makeTag(e, kind, strings)}

	case KindVariable:
		t := &Variable{Tag: makeTag(e, kind, strings)}
		if v, ok := attrInt64(e, dwarf.AttrConstValue); ok {
			t.ConstValue, t.HasConstValue = v, true
		}
		t.External = attrBool(e, dwarf.AttrExternal)
		t.Declaration = attrBool(e, dwarf.AttrDeclaration)
		t.Location = attrLocation(e, dwarf.AttrLocation)
		if opts.getAddrInfo && t.Location == LocGlobal {
			if addr, ok := attrLocationAddr(e, dwarf.AttrLocation, opts.byteOrder, opts.pointerSize); ok {
				t.Address, t.HasAddress = addr, true
			}
		}
		return t

	case KindLabel:
		t := &Label{Tag: makeTag(e, kind, strings)}
		if opts.getAddrInfo {
			if addr, ok := attrAddr(e, dwarf.AttrLowpc); ok {
				t.Address, t.HasAddress = addr, true
			}
		}
		return t

	case KindInlinedSubroutine:
		t := &InlineExpansion{Tag: makeTag(e, kind, strings)}
		t.CallFile, _ = attrInt64(e, dwarf.AttrCallFile)
		t.CallLine, _ = attrInt64(e, dwarf.AttrCallLine)
		if opts.getAddrInfo {
			t.Ranges, t.Size = inlineRangesAndSize(e, opts.ranges)
		}
		return t

	case KindLexicalBlock:
		return &LexicalBlock{Tag: makeTag(e, kind, strings), Ranges: readRanges(e, opts.getAddrInfo)}

	case KindSubroutineType:
		return &FunctionType{Tag: makeTag(e, kind, strings)}

	case KindSubprogram:
		t := &Subprogram{FunctionType: FunctionType{Tag: makeTag(e, kind, strings)}}
		t.Ranges = readRanges(e, opts.getAddrInfo)
		t.Declaration = attrBool(e, dwarf.AttrDeclaration)
		t.External = attrBool(e, dwarf.AttrExternal)
		t.LinkageName = strings.Intern(attrString(e, dwarf.AttrLinkageName))
		t.Inline, _ = attrInt64(e, dwarf.AttrInline)
		t.Accessibility, _ = attrInt64(e, dwarf.AttrAccessibility)
		t.Virtuality, _ = attrInt64(e, dwarf.AttrVirtuality)
		t.VtableEntry, t.HasVtableEntry = attrVtableEntry(e)
		return t

	case KindNamespace:
		return &NamespaceType{Tag: makeTag(e, kind, strings)}

	case KindClassType, KindStructType, KindUnionType, KindInterfaceType:
		t := &AggregateType{Tag: makeTag(e, kind, strings)}
		t.ByteSize, _ = attrInt64(e, dwarf.AttrByteSize)
		t.Declaration = attrBool(e, dwarf.AttrDeclaration)
		return t
	}

	unsupported(e.Tag)
	return nil
}

// readRanges decodes the low/high program-counter pair a subprogram,
// lexical block or inlined subroutine carries. DW_AT_ranges (a reference
// into debug_ranges, used when a scope isn't contiguous) is not
// interpreted; scopes that use it are recorded with no ranges at all.
// When getAddrInfo is false, per the specification's get_addr_info
// option, no ranges are decoded at all and every scope defaults to empty.
func readRanges(e *dwarf.Entry, getAddrInfo bool) []AddrRange {
	if !getAddrInfo {
		return nil
	}

	low, lok := e.Val(dwarf.AttrLowpc).(uint64)
	if !lok {
		return nil
	}

	var high uint64
	switch v := e.Val(dwarf.AttrHighpc).(type) {
	case uint64:
		high = v
	case int64:
		// DWARF4 permits DW_AT_high_pc to be encoded as an offset from
		// DW_AT_low_pc rather than an absolute address.
		high = low + uint64(v)
	default:
		return nil
	}

	return []AddrRange{{Low: low, High: high}}
}

// inlineRangesAndSize computes an inlined subroutine's address ranges and
// their summed size. A contiguous DW_AT_low_pc/high_pc pair is used
// directly; when that pair is absent or describes a zero-width span, the
// loader falls back to DW_AT_ranges (decoded by the ranges hook, which is
// nil in tests run without a backing dwarf.Data) and sums the resulting
// list of contiguous spans, per the specification's inline-expansion
// size rule.
func inlineRangesAndSize(e *dwarf.Entry, ranges func(*dwarf.Entry) ([][2]uint64, error)) ([]AddrRange, int64) {
	contiguous := readRanges(e, true)
	if len(contiguous) == 1 && contiguous[0].High > contiguous[0].Low {
		return contiguous, int64(contiguous[0].High - contiguous[0].Low)
	}
	if ranges == nil {
		return nil, 0
	}
	pairs, err := ranges(e)
	if err != nil || len(pairs) == 0 {
		return contiguous, 0
	}
	out := make([]AddrRange, 0, len(pairs))
	var size int64
	for _, p := range pairs {
		out = append(out, AddrRange{Low: p[0], High: p[1]})
		size += int64(p[1] - p[0])
	}
	return out, size
}
