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

// SizeCache answers ByteSize queries for any small_id in a CU's types
// table without re-walking qualifier chains each time. It is built once
// resolution and bitfield recoding have both settled, and is safe for
// concurrent read-only use by multiple goroutines.
type SizeCache struct {
	sizes []int64
}

// NewSizeCache derives byte sizes for every entry in cu.Types. A type
// whose size can't be determined, because it qualifies a type this loader
// failed to resolve, or the chain loops, is recorded as size zero.
func NewSizeCache(cu *CU) *SizeCache {
	c := &SizeCache{sizes: make([]int64, len(cu.Types))}
	for i := range cu.Types {
		c.sizes[i] = sizeOf(cu, i, map[int]bool{})
	}
	return c
}

// ByteSize returns the cached byte size for small_id, or 0 if it is out
// of range.
func (c *SizeCache) ByteSize(smallID int) int64 {
	if smallID < 0 || smallID >= len(c.sizes) {
		return 0
	}
	return c.sizes[smallID]
}

// sizeOf computes the byte size of cu.Types[id], following qualifier and
// pointer chains as needed. seen guards against a malformed CU whose
// chain of references loops back on itself.
func sizeOf(cu *CU, id int, seen map[int]bool) int64 {
	if id < 0 || id >= len(cu.Types) || seen[id] {
		return 0
	}
	seen[id] = true

	switch t := cu.Types[id].(type) {
	case *BaseType:
		return t.ByteSize
	case *EnumerationType:
		return t.ByteSize
	case *AggregateType:
		return t.ByteSize
	case *ArrayType:
		elem := sizeOf(cu, t.Type, seen)
		var count int64 = 1
		for _, d := range t.Dimensions {
			switch {
			case d.HasCount:
				count *= d.Count
			case d.HasUpper:
				count *= d.UpperBound + 1
			default:
				count = 0
			}
		}
		return elem * count
	case *QualifiedType:
		switch t.Kind {
		case KindVoid:
			return 0
		case KindPointerType, KindReferenceType:
			return int64(cu.PointerSize)
		default:
			return sizeOf(cu, t.Type, seen)
		}
	case *PtrToMemberType:
		return int64(cu.PointerSize)
	case *FunctionType:
		return 0
	}
	return 0
}
