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
	"testing"

	"github.com/jetsetilly/dwarfloader/test"
)

func TestKindFromTagRecognisesEveryMappedTag(t *testing.T) {
	cases := map[dwarf.Tag]Kind{
		dwarf.TagBaseType:        KindBaseType,
		dwarf.TagStructType:      KindStructType,
		dwarf.TagPointerType:     KindPointerType,
		dwarf.TagSubprogram:      KindSubprogram,
		dwarf.TagArrayType:       KindArrayType,
		dwarf.TagSubrangeType:    KindSubrangeType,
		dwarf.TagEnumerationType: KindEnumerationType,
		dwarf.TagEnumerator:      KindEnumerator,

		dwarf.TagConstType:             KindConstType,
		dwarf.TagImportedDeclaration:   KindImportedDeclaration,
		dwarf.TagImportedModule:        KindImportedModule,
		dwarf.TagReferenceType:         KindReferenceType,
		dwarf.TagVolatileType:          KindVolatileType,
		dwarf.TagPtrToMemberType:       KindPtrToMemberType,
		dwarf.TagNamespace:             KindNamespace,
		dwarf.TagClassType:             KindClassType,
		dwarf.TagInterfaceType:         KindInterfaceType,
		dwarf.TagSubroutineType:        KindSubroutineType,
		dwarf.TagTypedef:               KindTypedef,
		dwarf.TagUnionType:             KindUnionType,
		dwarf.TagVariable:              KindVariable,
		dwarf.TagFormalParameter:       KindFormalParameter,
		dwarf.TagUnspecifiedParameters: KindUnspecifiedParameters,
		dwarf.TagMember:                KindMember,
		dwarf.TagInheritance:           KindInheritance,
		dwarf.TagInlinedSubroutine:     KindInlinedSubroutine,
		dwarf.TagLexDwarfBlock:         KindLexicalBlock,
		dwarf.TagLabel:                 KindLabel,
	}
	for tag, want := range cases {
		got, ok := kindFromTag(tag)
		test.ExpectSuccess(t, ok)
		test.Equate(t, got, want)
	}
}

func TestKindFromTagRejectsUnmapped(t *testing.T) {
	_, ok := kindFromTag(dwarf.TagCompileUnit)
	test.ExpectFailure(t, ok)
}

func TestIsTypeKindAndIsAggregate(t *testing.T) {
	test.ExpectSuccess(t, KindBaseType.isTypeKind())
	test.ExpectFailure(t, KindVariable.isTypeKind())
	test.ExpectSuccess(t, KindStructType.isAggregate())
	test.ExpectFailure(t, KindBaseType.isAggregate())
}

func TestKindStringIsStable(t *testing.T) {
	test.Equate(t, KindBaseType.String(), "base_type")
	test.Equate(t, Kind(999).String(), "invalid")
}
