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

func TestAttrStringMissingIsEmpty(t *testing.T) {
	e := entry(0, dwarf.TagBaseType, false)
	test.Equate(t, attrString(e, dwarf.AttrName), "")
}

func TestAttrInt64AcceptsUint64Form(t *testing.T) {
	e := &dwarf.Entry{Field: []dwarf.Field{
		{Attr: dwarf.AttrByteSize, Val: uint64(4), Class: dwarf.ClassConstant},
	}}
	v, ok := attrInt64(e, dwarf.AttrByteSize)
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, int64(4))
}

func TestAttrOffsetAcceptsRawDwarfOffset(t *testing.T) {
	e := &dwarf.Entry{Field: []dwarf.Field{
		{Attr: dwarf.AttrType, Val: dwarf.Offset(0x42), Class: dwarf.ClassReference},
	}}
	off, ok := attrOffset(e, dwarf.AttrType)
	test.ExpectSuccess(t, ok)
	test.Equate(t, off, dwarf.Offset(0x42))
}

func TestDecodeUconstBlockSingleOperand(t *testing.T) {
	// DW_OP_plus_uconst (0x23) followed by a ULEB128-encoded 12.
	block := []byte{0x23, 0x0c}
	v, ok := decodeUconstBlock(block)
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, int64(12))
}

func TestDecodeUconstBlockRejectsOtherOpcodes(t *testing.T) {
	block := []byte{0x03, 0x00, 0x00, 0x00, 0x00}
	_, ok := decodeUconstBlock(block)
	test.ExpectFailure(t, ok)
}

func TestAttrConstOrBlockOffsetPrefersPlainConstant(t *testing.T) {
	e := &dwarf.Entry{Field: []dwarf.Field{
		{Attr: dwarf.AttrDataMemberLoc, Val: int64(8), Class: dwarf.ClassConstant},
	}}
	v, ok := attrConstOrBlockOffset(e, dwarf.AttrDataMemberLoc)
	test.ExpectSuccess(t, ok)
	test.Equate(t, v, int64(8))
}
