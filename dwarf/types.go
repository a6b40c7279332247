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

// LocationCategory classifies the first opcode of a DW_AT_location
// expression, as decoded by attrLocation.
type LocationCategory int

const (
	// LocUnknown is a DW_AT_location present but whose first opcode this
	// loader does not recognise.
	LocUnknown LocationCategory = iota

	// LocGlobal is DW_OP_addr: a fixed load-time address.
	LocGlobal

	// LocRegister is DW_OP_reg0..31 or DW_OP_breg0..31: the variable
	// lives in (or relative to) a register.
	LocRegister

	// LocLocal is DW_OP_fbreg: an offset from the enclosing function's
	// frame base.
	LocLocal

	// LocOptimized marks a variable with no DW_AT_location at all,
	// typically one the compiler optimized away.
	LocOptimized
)

func (c LocationCategory) String() string {
	switch c {
	case LocGlobal:
		return "global"
	case LocRegister:
		return "register"
	case LocLocal:
		return "local"
	case LocOptimized:
		return "optimized"
	default:
		return "unknown"
	}
}

// BaseType is a DW_TAG_base_type: a primitive with no further structure,
// identified by name, byte size and DW_ATE encoding.
type BaseType struct {
	Tag
	ByteSize int64
	Encoding int64

	// BitWidth is the exact declared width, in bits, of a base type the
	// bitfield recoder synthesised to stand in for a narrowed member; zero
	// for every ordinary base type read directly off a DW_TAG_base_type
	// DIE. Unlike ByteSize, which a recoded type still carries as its
	// rounded-up storage class, BitWidth is never rounded to a byte
	// boundary.
	BitWidth int64
}

// QualifiedType is shared by every kind that does nothing but wrap another
// type: typedef, const, volatile, pointer, reference, imported_module and
// imported_declaration. Tag.Type carries the wrapped type's small_id.
type QualifiedType struct {
	Tag
}

// PtrToMemberType is a DW_TAG_ptr_to_member_type: a pointer to a member of
// a class, carrying the small_id of the containing class alongside the
// small_id of the pointed-to member type (held in Tag.Type).
type PtrToMemberType struct {
	Tag
	ContainingType int
}

// SubrangeType is a DW_TAG_subrange_type child of an ArrayType, giving one
// dimension's element count.
type SubrangeType struct {
	Tag
	Count      int64
	HasCount   bool
	UpperBound int64
	HasUpper   bool
}

// ArrayType is a DW_TAG_array_type. Dimensions is one entry per
// DW_TAG_subrange_type child, outermost first.
type ArrayType struct {
	Tag
	Dimensions []SubrangeType
}

// Enumerator is a DW_TAG_enumerator child of an EnumerationType.
type Enumerator struct {
	Tag
	Value int64
}

// EnumerationType is a DW_TAG_enumeration_type. Enumerators are owned
// directly rather than as small_ids, since they have no independent
// existence outside their parent enumeration.
type EnumerationType struct {
	Tag
	ByteSize    int64
	Enumerators []Enumerator
}

// Member is a DW_TAG_member child of a struct/union/class.
type Member struct {
	Tag

	// ByteOffset is DW_AT_data_member_location when it was encoded as a
	// plain constant or as a single DW_OP_plus_uconst block. Members of a
	// union, and members placed via any other location expression, leave
	// this at zero.
	ByteOffset int64

	// BitSize is the member's DW_AT_bit_size, and HasBitfield is set when
	// that attribute is present. The member's bit offset within its
	// storage unit (DW_AT_data_bit_offset / DW_AT_bit_offset) is not
	// decoded.
	BitSize   int64
	HasBitfield bool

	// RecodedType is filled in by the bitfield recoder: the small_id of a
	// synthesised width-specific BaseType replacing Tag.Type, or -1 if
	// this member is not a bitfield, its bit size covers its whole type,
	// or its type cannot be recoded.
	RecodedType int

	// Accessibility and Virtuality carry DW_AT_accessibility /
	// DW_AT_virtuality, present on C++ class members; absent (left at
	// zero) on a plain C struct member.
	Accessibility int64
	Virtuality    int64

	// CachedByteSize and CachedBitSize are filled in by the post-load size
	// cache, once resolution and bitfield recoding have both settled. For
	// an ordinary member they mirror the resolved type's size (in bytes
	// and in bits); for a bitfield still flagged HasBitfield they hold the
	// underlying base type's integral container size, looked up by name
	// rather than recomputed from the (possibly narrowed) recoded type,
	// and the member's exact declared bit width. A bitfield normalized
	// away by the silly-bitfield fixup is cached as an ordinary member,
	// since HasBitfield is already false by the time the cache runs.
	// CachedByteSize is zero when the underlying type's name isn't in the
	// integral size table.
	CachedByteSize int64
	CachedBitSize  int64
}

// Inheritance is a DW_TAG_inheritance child of a class/struct describing a
// base class.
type Inheritance struct {
	Tag
	ByteOffset int64
	Accessibility int64
}

// Parameter is a DW_TAG_formal_parameter, a child of a subprogram or
// subroutine_type.
type Parameter struct {
	Tag
}

// Variable is a DW_TAG_variable: a top-level global or a child of a
// lexical block / subprogram.
type Variable struct {
	Tag
	HasConstValue bool
	ConstValue    int64

	External    bool
	Declaration bool

	// Location classifies DW_AT_location's first opcode; it is always
	// computed, independent of LoadConfig.GetAddrInfo, since it costs
	// nothing beyond the opcode byte already in hand.
	Location LocationCategory

	// Address is the static address a DW_AT_location of the form
	// DW_OP_addr resolves to; only meaningful when Location is
	// LocGlobal. It is only decoded when LoadConfig asked for it;
	// otherwise HasAddress stays false, per the specification's
	// get_addr_info option.
	Address    uint64
	HasAddress bool
}

// Label is a DW_TAG_label.
type Label struct {
	Tag

	// Address is DW_AT_low_pc, decoded only when LoadConfig.GetAddrInfo
	// is set.
	Address    uint64
	HasAddress bool
}

// AddrRange is one [Low, High) program-counter range belonging to a
// subprogram, lexical block or inlined subroutine.
type AddrRange struct {
	Low  uint64
	High uint64
}

// InlineExpansion is a DW_TAG_inlined_subroutine.
type InlineExpansion struct {
	Tag

	// CallFile and CallLine are DW_AT_call_file/DW_AT_call_line: the
	// raw file-table index and line number of the call site. CallFile
	// is left as the producer's raw index rather than resolved to a
	// name, since resolving it needs the line-number program, which
	// this loader does not interpret.
	CallFile int64
	CallLine int64

	Ranges []AddrRange

	// Size is the summed byte length of Ranges. When DW_AT_low_pc and
	// DW_AT_high_pc describe a zero-width scope, it is recomputed from
	// DW_AT_ranges instead, per the specification's range-summing rule
	// for inline expansions.
	Size int64

	Children []Node
}

// LexicalBlock is a DW_TAG_lexical_block.
type LexicalBlock struct {
	Tag
	Ranges   []AddrRange
	Children []Node
}

// FunctionType carries the signature shared by a Subprogram and a
// DW_TAG_subroutine_type: its formal parameters and whether it is
// variadic (signalled by a DW_TAG_unspecified_parameters child).
type FunctionType struct {
	Tag
	Parameters []Parameter
	Variadic   bool
}

// Subprogram is a DW_TAG_subprogram. It embeds FunctionType so a function
// pointer's subroutine_type and a concrete function's subprogram share the
// same parameter/variadic representation, per the specification.
type Subprogram struct {
	FunctionType
	Ranges      []AddrRange
	Declaration bool
	External    bool

	// LinkageName is the interned DW_AT_linkage_name (a compiler's
	// mangled symbol name), or the zero handle if the producer didn't
	// emit one.
	LinkageName strtab.Handle

	// Inline is the raw DW_AT_inline value: one of DW_INL_not_inlined,
	// DW_INL_inlined, DW_INL_declared_not_inlined or
	// DW_INL_declared_inlined. Left at zero (not inlined) if absent.
	Inline int64

	// Accessibility and Virtuality carry DW_AT_accessibility /
	// DW_AT_virtuality, present on a C++ member function.
	Accessibility int64
	Virtuality    int64

	// VtableEntry is the function's slot index in its class's virtual
	// dispatch table, decoded from DW_AT_vtable_elem_location when that
	// attribute holds the single-operand DW_OP_constu form this loader
	// recognises. HasVtableEntry is false for any non-virtual function,
	// and for a virtual one whose location expression this loader
	// doesn't interpret.
	VtableEntry    int64
	HasVtableEntry bool

	Children []Node
}

// NamespaceType is a DW_TAG_namespace.
type NamespaceType struct {
	Tag
	Children []Node
}

// AggregateType is shared by DW_TAG_class_type, DW_TAG_structure_type,
// DW_TAG_union_type and DW_TAG_interface_type: a named byte-sized
// collection of members, inherited bases and nested declarations.
type AggregateType struct {
	Tag
	ByteSize     int64
	Declaration  bool
	Members      []Member
	Inheritances []Inheritance
	Children     []Node
}
