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

// Package elfhost wraps debug/elf behind the narrow interface the dwarf
// package needs from a host binary: its DWARF data and the pointer size
// implied by its architecture class. Callers that already have their own
// way of obtaining an *elf.File (say, one extracted from a container
// format) can implement Host themselves instead of using Open.
package elfhost

import (
	"debug/dwarf"
	"debug/elf"
	"encoding/binary"
	"fmt"
)

// Host is what the dwarf package's Load requires of a binary. elf.File
// satisfies it once wrapped by Open.
type Host interface {
	// DWARF returns the binary's parsed debug_info, as debug/elf already
	// does. An error here most often means the binary carries no DWARF
	// data at all.
	DWARF() (*dwarf.Data, error)

	// PointerSize is the architecture's address width in bytes: 4 for a
	// 32-bit target, 8 for a 64-bit one. The dwarf package's size cache
	// sizes every pointer and reference type with it (via CU.PointerSize)
	// rather than reading DW_AT_byte_size from each pointer DIE.
	PointerSize() int

	// ByteOrder is the target's byte order, needed to decode the
	// DW_OP_addr location block form this loader reads when
	// LoadConfig.GetAddrInfo is set.
	ByteOrder() binary.ByteOrder
}

// file adapts a concrete *elf.File to Host.
type file struct {
	ef *elf.File
}

// Open opens path as an ELF file and wraps it as a Host. The returned
// Host's DWARF method surfaces whatever error debug/elf itself returns
// for a binary with no debug_info section; Open itself only fails if path
// isn't a valid ELF file at all.
func Open(path string) (Host, error) {
	ef, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("elfhost: %w", err)
	}
	return &file{ef: ef}, nil
}

func (f *file) DWARF() (*dwarf.Data, error) {
	return f.ef.DWARF()
}

func (f *file) PointerSize() int {
	if f.ef.Class == elf.ELFCLASS64 {
		return 8
	}
	return 4
}

func (f *file) ByteOrder() binary.ByteOrder {
	return f.ef.ByteOrder
}
