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
	"sync"

	"github.com/jetsetilly/dwarfloader/strtab"
)

var (
	baseTypeSizesOnce sync.Once
	baseTypeSizes     map[string]int64
)

// baseTypeNameToSize returns the canonical C base-type name to integral
// byte-size table used by cacheMemberSizes to derive a bitfield member's
// container size. It is built once, lazily, and shared across every File a
// process loads.
func baseTypeNameToSize() map[string]int64 {
	baseTypeSizesOnce.Do(func() {
		baseTypeSizes = map[string]int64{
			"_Bool":                  1,
			"bool":                   1,
			"char":                   1,
			"signed char":            1,
			"unsigned char":          1,
			"short":                  2,
			"short int":              2,
			"short unsigned int":     2,
			"unsigned short":         2,
			"int":                    4,
			"signed int":             4,
			"unsigned int":           4,
			"long":                   8,
			"long int":               8,
			"unsigned long":          8,
			"long unsigned int":      8,
			"long long":              8,
			"long long int":          8,
			"unsigned long long":     8,
			"long long unsigned int": 8,
		}
	})
	return baseTypeSizes
}

// cacheMemberSizes is the fourth construction pass, run once resolution and
// bitfield recoding have both settled. For every member it caches a
// byte_size/bit_size pair: the resolved type's size for an ordinary member,
// or the underlying base type's integral container size and the member's
// exact declared bit width for one still flagged as a bitfield.
func cacheMemberSizes(cu *CU, sizes *SizeCache, strings *strtab.Table) {
	walkAggregates(cu, func(agg *AggregateType) {
		for i := range agg.Members {
			m := &agg.Members[i]
			if !m.HasBitfield {
				m.CachedByteSize = sizes.ByteSize(m.Type)
				m.CachedBitSize = m.CachedByteSize * 8
				continue
			}

			underlying, ok := underlyingBaseType(cu, m.Type)
			if !ok {
				continue
			}
			m.CachedByteSize = baseTypeNameToSize()[strings.Lookup(underlying.Name)]
			m.CachedBitSize = m.BitSize
		}
	})
}
