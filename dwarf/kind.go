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

// Kind is the discriminant of the tagged sum type every Node in this
// package belongs to. It mirrors the DWARF tag codes this loader
// recognises (see the supported tag kinds list in the specification).
type Kind int

const (
	KindInvalid Kind = iota

	// top-level (table-bearing) kinds
	KindArrayType
	KindBaseType
	KindConstType
	KindImportedDeclaration
	KindImportedModule
	KindPointerType
	KindReferenceType
	KindVolatileType
	KindPtrToMemberType
	KindEnumerationType
	KindNamespace
	KindClassType
	KindInterfaceType
	KindStructType
	KindSubprogram
	KindSubroutineType
	KindTypedef
	KindUnionType
	KindVariable

	// child-level kinds
	KindFormalParameter
	KindUnspecifiedParameters
	KindMember
	KindInheritance
	KindInlinedSubroutine
	KindLexicalBlock
	KindLabel
	KindEnumerator
	KindSubrangeType

	// KindVoid is never produced by kindFromTag: it marks the synthetic
	// Node newCU reserves at cu.Types[0], the small_id every unresolved
	// or absent DW_AT_type rewrites to.
	KindVoid
)

// String returns the DWARF tag name of k without its DW_TAG_ prefix, or
// "invalid" for a value that is not one of the constants above.
func (k Kind) String() string {
	switch k {
	case KindArrayType:
		return "array_type"
	case KindBaseType:
		return "base_type"
	case KindConstType:
		return "const_type"
	case KindImportedDeclaration:
		return "imported_declaration"
	case KindImportedModule:
		return "imported_module"
	case KindPointerType:
		return "pointer_type"
	case KindReferenceType:
		return "reference_type"
	case KindVolatileType:
		return "volatile_type"
	case KindPtrToMemberType:
		return "ptr_to_member_type"
	case KindEnumerationType:
		return "enumeration_type"
	case KindNamespace:
		return "namespace"
	case KindClassType:
		return "class_type"
	case KindInterfaceType:
		return "interface_type"
	case KindStructType:
		return "structure_type"
	case KindSubprogram:
		return "subprogram"
	case KindSubroutineType:
		return "subroutine_type"
	case KindTypedef:
		return "typedef"
	case KindUnionType:
		return "union_type"
	case KindVariable:
		return "variable"
	case KindFormalParameter:
		return "formal_parameter"
	case KindUnspecifiedParameters:
		return "unspecified_parameters"
	case KindMember:
		return "member"
	case KindInheritance:
		return "inheritance"
	case KindInlinedSubroutine:
		return "inlined_subroutine"
	case KindLexicalBlock:
		return "lexical_block"
	case KindLabel:
		return "label"
	case KindEnumerator:
		return "enumerator"
	case KindSubrangeType:
		return "subrange_type"
	case KindVoid:
		return "void"
	}
	return "invalid"
}

// kindFromTag maps a debug/dwarf tag code onto the Kind this loader
// recognises. The second return value is false for any DIE kind not in the
// supported set (see §6.2 of the specification); the caller is expected to
// warn once per unsupported kind and skip the DIE.
func kindFromTag(t dwarf.Tag) (Kind, bool) {
	switch t {
	case dwarf.TagArrayType:
		return KindArrayType, true
	case dwarf.TagBaseType:
		return KindBaseType, true
	case dwarf.TagConstType:
		return KindConstType, true
	case dwarf.TagImportedDeclaration:
		return KindImportedDeclaration, true
	case dwarf.TagImportedModule:
		return KindImportedModule, true
	case dwarf.TagPointerType:
		return KindPointerType, true
	case dwarf.TagReferenceType:
		return KindReferenceType, true
	case dwarf.TagVolatileType:
		return KindVolatileType, true
	case dwarf.TagPtrToMemberType:
		return KindPtrToMemberType, true
	case dwarf.TagEnumerationType:
		return KindEnumerationType, true
	case dwarf.TagNamespace:
		return KindNamespace, true
	case dwarf.TagClassType:
		return KindClassType, true
	case dwarf.TagInterfaceType:
		return KindInterfaceType, true
	case dwarf.TagStructType:
		return KindStructType, true
	case dwarf.TagSubprogram:
		return KindSubprogram, true
	case dwarf.TagSubroutineType:
		return KindSubroutineType, true
	case dwarf.TagTypedef:
		return KindTypedef, true
	case dwarf.TagUnionType:
		return KindUnionType, true
	case dwarf.TagVariable:
		return KindVariable, true
	case dwarf.TagFormalParameter:
		return KindFormalParameter, true
	case dwarf.TagUnspecifiedParameters:
		return KindUnspecifiedParameters, true
	case dwarf.TagMember:
		return KindMember, true
	case dwarf.TagInheritance:
		return KindInheritance, true
	case dwarf.TagInlinedSubroutine:
		return KindInlinedSubroutine, true
	case dwarf.TagLexDwarfBlock:
		return KindLexicalBlock, true
	case dwarf.TagLabel:
		return KindLabel, true
	case dwarf.TagEnumerator:
		return KindEnumerator, true
	case dwarf.TagSubrangeType:
		return KindSubrangeType, true
	}
	return KindInvalid, false
}

// isTypeKind reports whether a Node of this Kind belongs in a CU's types
// table, as opposed to its tags or functions table.
func (k Kind) isTypeKind() bool {
	switch k {
	case KindArrayType, KindBaseType, KindConstType, KindPointerType,
		KindReferenceType, KindVolatileType, KindPtrToMemberType,
		KindEnumerationType, KindNamespace, KindClassType, KindInterfaceType,
		KindStructType, KindSubroutineType, KindTypedef, KindUnionType:
		return true
	}
	return false
}

// isAggregate reports whether a Node of this Kind owns an ordered list of
// child Nodes that the reference resolver must recurse into.
func (k Kind) isAggregate() bool {
	switch k {
	case KindNamespace, KindClassType, KindInterfaceType, KindStructType,
		KindUnionType, KindEnumerationType:
		return true
	}
	return false
}
