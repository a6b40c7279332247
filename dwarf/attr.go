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
	"fmt"

	"github.com/jetsetilly/dwarfloader/dwarf/leb128"
)

// attrString returns the string value of attr, or "" if the DIE has no
// such attribute, or it isn't a string.
func attrString(e *dwarf.Entry, attr dwarf.Attr) string {
	v, ok := e.Val(attr).(string)
	if !ok {
		return ""
	}
	return v
}

// attrInt64 returns the numeric value of attr as an int64, accepting any
// of the integer forms debug/dwarf may hand back (int64 or uint64), and
// reports whether the DIE carried the attribute at all.
func attrInt64(e *dwarf.Entry, attr dwarf.Attr) (int64, bool) {
	switch v := e.Val(attr).(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	}
	return 0, false
}

// attrBool returns the boolean value of attr, defaulting to false if
// absent.
func attrBool(e *dwarf.Entry, attr dwarf.Attr) bool {
	v, _ := e.Val(attr).(bool)
	return v
}

// attrOffset returns the raw DWARF offset attr refers to, treating every
// form debug/dwarf surfaces for reference-class attributes (dwarf.Offset
// itself, or a plain offset-sized integer for older producers) uniformly.
// It reports false if the DIE carries no such attribute.
func attrOffset(e *dwarf.Entry, attr dwarf.Attr) (dwarf.Offset, bool) {
	switch v := e.Val(attr).(type) {
	case dwarf.Offset:
		return v, true
	case uint64:
		return dwarf.Offset(v), true
	case int64:
		return dwarf.Offset(v), true
	}
	return 0, false
}

// attrConstOrBlockOffset decodes a DW_AT_data_member_location-shaped
// attribute, which DWARF v2 producers encode as a plain constant and
// later producers sometimes encode as a single-operand DW_OP_plus_uconst
// location expression block. Both forms reduce to a byte offset; any
// richer expression is left unrecognised and the caller falls back to
// offset zero, matching a union member's unlocated layout.
func attrConstOrBlockOffset(e *dwarf.Entry, attr dwarf.Attr) (int64, bool) {
	switch v := e.Val(attr).(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	case []byte:
		return decodeUconstBlock(v)
	}
	return 0, false
}

// attrMemberOffset decodes DW_AT_data_member_location for a member,
// warning through diag when the attribute is a block whose opcode this
// loader doesn't recognise. Per the specification's "unsupported DWARF
// opcode" policy the member's offset still defaults to 0 rather than
// aborting.
func attrMemberOffset(e *dwarf.Entry, diag *Diagnostics) int64 {
	block, isBlock := e.Val(dwarf.AttrDataMemberLoc).([]byte)
	if !isBlock {
		off, _ := attrConstOrBlockOffset(e, dwarf.AttrDataMemberLoc)
		return off
	}
	off, ok := decodeUconstBlock(block)
	if !ok {
		op := -1
		if len(block) > 0 {
			op = int(block[0])
		}
		diag.warnOnce(fmt.Sprintf("member-location-opcode-%#x", e.Offset), "dwarf", "member at offset %#x has unrecognised DW_AT_data_member_location opcode %#x, offset defaults to 0", e.Offset, op)
	}
	return off
}

// attrAddr returns the address value of attr (DW_AT_low_pc on a label),
// reporting false if the DIE carries no such attribute.
func attrAddr(e *dwarf.Entry, attr dwarf.Attr) (uint64, bool) {
	v, ok := e.Val(attr).(uint64)
	return v, ok
}

// attrLocationAddr decodes a DW_AT_location block consisting of exactly
// one DW_OP_addr operation, the form a producer emits for a variable with
// a fixed static address, such as a global. Any richer location
// expression (register location, stack-relative, DWARF procedure) is left
// unrecognised; the caller leaves the variable's address unset rather
// than misinterpreting it.
func attrLocationAddr(e *dwarf.Entry, attr dwarf.Attr, order binary.ByteOrder, pointerSize int) (uint64, bool) {
	block, ok := e.Val(attr).([]byte)
	if !ok {
		return 0, false
	}
	const opAddr = 0x03
	if len(block) != 1+pointerSize || block[0] != opAddr {
		return 0, false
	}
	switch pointerSize {
	case 4:
		return uint64(order.Uint32(block[1:])), true
	case 8:
		return order.Uint64(block[1:]), true
	default:
		return 0, false
	}
}

// attrLocation classifies a DW_AT_location attribute by its first
// opcode: DW_OP_addr is LocGlobal, DW_OP_reg0..31/DW_OP_breg0..31 is
// LocRegister, DW_OP_fbreg is LocLocal. A missing attribute is
// LocOptimized; a present attribute this loader doesn't recognise is
// LocUnknown.
func attrLocation(e *dwarf.Entry, attr dwarf.Attr) LocationCategory {
	block, ok := e.Val(attr).([]byte)
	if !ok {
		return LocOptimized
	}
	if len(block) == 0 {
		return LocUnknown
	}
	const (
		opAddr     = 0x03
		opReg0     = 0x50
		opReg31    = 0x6f
		opBreg0    = 0x70
		opBreg31   = 0x8f
		opFbreg    = 0x91
	)
	switch op := block[0]; {
	case op == opAddr:
		return LocGlobal
	case op >= opReg0 && op <= opReg31:
		return LocRegister
	case op >= opBreg0 && op <= opBreg31:
		return LocRegister
	case op == opFbreg:
		return LocLocal
	default:
		return LocUnknown
	}
}

// attrVtableEntry decodes DW_AT_vtable_elem_location. A producer
// conventionally encodes a virtual function's dispatch-table slot as a
// single DW_OP_constu operation rather than a real address computation;
// any richer expression is left unrecognised.
func attrVtableEntry(e *dwarf.Entry) (int64, bool) {
	switch v := e.Val(dwarf.AttrVtableElemLoc).(type) {
	case int64:
		return v, true
	case uint64:
		return int64(v), true
	case []byte:
		const opConstu = 0x10
		if len(v) >= 1 && v[0] == opConstu {
			val, n := leb128.DecodeULEB128(v[1:])
			if n > 0 {
				return int64(val), true
			}
		}
	}
	return 0, false
}

// decodeUconstBlock recognises a location expression block consisting of
// exactly one DW_OP_plus_uconst operation, which is the only block form
// for DW_AT_data_member_location this loader interprets.
func decodeUconstBlock(block []byte) (int64, bool) {
	const opPlusUconst = 0x23
	if len(block) < 1 || block[0] != opPlusUconst {
		return 0, false
	}
	v, n := leb128.DecodeULEB128(block[1:])
	if n == 0 {
		return 0, false
	}
	return int64(v), true
}
