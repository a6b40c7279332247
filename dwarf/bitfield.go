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
	"fmt"

	"github.com/jetsetilly/dwarfloader/strtab"
)

// bitfieldKey identifies a synthesised width-specific base type by the
// name of the type it narrows and the bit width it narrows it to, so two
// members that both declare "unsigned flag : 3" share one recoded type
// rather than each getting their own.
type bitfieldKey struct {
	name strtab.Handle
	bits int64
}

// recodeBitfields is the third construction pass, run once resolveCU has
// settled every ordinary type reference. For each member that declared a
// bit-size narrower than its underlying type, it synthesises (or reuses,
// if an identical one was already synthesised elsewhere in the CU) a
// BaseType standing in for that narrowed width, appends it to cu.Types,
// and points the member's RecodedType at it instead of its original
// Tag.Type.
//
// A member whose bit-size already covers its whole underlying type's
// width ("silly" per the specification, since declaring a bitfield of a
// type's own width is a no-op in every C producer this loader has seen)
// is never recoded: RecodedType stays -1 and readers should fall back to
// Tag.Type. When fixupSilly is set, such a member additionally has its
// HasBitfield/BitSize cleared, normalizing it to an ordinary member, per
// the specification's fixup_silly_bitfields option.
func recodeBitfields(cu *CU, diag *Diagnostics, fixupSilly bool) {
	shared := make(map[bitfieldKey]int)

	walkAggregates(cu, func(agg *AggregateType) {
		for i := range agg.Members {
			m := &agg.Members[i]
			if !m.HasBitfield {
				continue
			}
			recodeMember(cu, diag, shared, m, fixupSilly)
		}
	})
}

// recodeMember resolves the synthetic type for a single bitfield member,
// consulting shared for one already built with the same name and width
// before synthesising a fresh one.
func recodeMember(cu *CU, diag *Diagnostics, shared map[bitfieldKey]int, m *Member, fixupSilly bool) {
	underlying, ok := underlyingBaseType(cu, m.Type)
	if !ok {
		diag.warnOnce(fmt.Sprintf("bitfield-base-%d", m.Type), "dwarf", "cannot recode bitfield: member's underlying type at small_id %d is not a base or enumeration type", m.Type)
		return
	}

	if m.BitSize >= underlying.ByteSize*8 {
		if fixupSilly {
			m.HasBitfield = false
			m.BitSize = 0
		}
		return
	}

	key := bitfieldKey{name: underlying.Name, bits: m.BitSize}
	if id, ok := shared[key]; ok {
		m.RecodedType = id
		return
	}

	recoded := &BaseType{
		Tag: Tag{
			Kind: KindBaseType,
			Name: underlying.Name,
			Raw:  &RawMeta{SmallID: len(cu.Types)},
		},
		ByteSize: byteWidthForBits(m.BitSize),
		Encoding: underlying.Encoding,
		BitWidth: m.BitSize,
	}

	id := len(cu.Types)
	cu.Types = append(cu.Types, recoded)
	cu.Bitfields = append(cu.Bitfields, recoded)
	shared[key] = id
	m.RecodedType = id
}

// underlyingBaseType follows a chain of qualifier wrappers (typedef,
// const, volatile) down to the BaseType they ultimately describe, or
// reduces an enumeration to a synthetic BaseType of its declared byte
// size, since both are valid bitfield bases. It reports false for any
// other kind, which this loader cannot recode.
func underlyingBaseType(cu *CU, typeID int) (*BaseType, bool) {
	seen := 0
	for typeID >= 0 && typeID < len(cu.Types) && seen < len(cu.Types) {
		switch t := cu.Types[typeID].(type) {
		case *BaseType:
			return t, true
		case *QualifiedType:
			switch t.Kind {
			case KindTypedef, KindConstType, KindVolatileType:
				typeID = t.Type
			default:
				return nil, false
			}
		case *EnumerationType:
			return &BaseType{Tag: Tag{Name: t.Name}, ByteSize: t.ByteSize}, true
		default:
			return nil, false
		}
		seen++
	}
	return nil, false
}

// byteWidthForBits rounds a bit width up to the smallest power-of-two byte
// size able to hold it, which is how this loader picks the storage class
// for a recoded bitfield base.
func byteWidthForBits(bits int64) int64 {
	switch {
	case bits <= 8:
		return 1
	case bits <= 16:
		return 2
	case bits <= 32:
		return 4
	default:
		return 8
	}
}

// walkAggregates calls fn once for every AggregateType reachable from cu,
// at any nesting depth.
func walkAggregates(cu *CU, fn func(*AggregateType)) {
	// A nested aggregate is both a child of its parent and a row of
	// cu.Types, so it is reached twice; seen keeps fn to one call.
	seen := make(map[*AggregateType]bool)

	var walkNode func(Node)
	walkNode = func(n Node) {
		switch t := n.(type) {
		case *AggregateType:
			if seen[t] {
				return
			}
			seen[t] = true
			fn(t)
			for _, c := range t.Children {
				walkNode(c)
			}
		case *NamespaceType:
			for _, c := range t.Children {
				walkNode(c)
			}
		case *Subprogram:
			for _, c := range t.Children {
				walkNode(c)
			}
		case *LexicalBlock:
			for _, c := range t.Children {
				walkNode(c)
			}
		case *InlineExpansion:
			for _, c := range t.Children {
				walkNode(c)
			}
		}
	}

	for _, n := range cu.Types {
		walkNode(n)
	}
	for _, n := range cu.Tags {
		walkNode(n)
	}
	for _, n := range cu.Functions {
		walkNode(n)
	}
}
