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

package strtab_test

import (
	"sync"
	"testing"

	"github.com/jetsetilly/dwarfloader/strtab"
	"github.com/jetsetilly/dwarfloader/test"
)

func TestZeroHandleIsEmptyString(t *testing.T) {
	tb := strtab.New()
	test.ExpectEquality(t, tb.Lookup(0), "")
}

func TestInternReturnsStableHandle(t *testing.T) {
	tb := strtab.New()

	a := tb.Intern("int")
	b := tb.Intern("int")
	test.ExpectEquality(t, a, b)

	c := tb.Intern("long long")
	test.ExpectInequality(t, a, c)

	test.ExpectEquality(t, tb.Lookup(a), "int")
	test.ExpectEquality(t, tb.Lookup(c), "long long")
}

func TestInternConcurrentUse(t *testing.T) {
	tb := strtab.New()

	var wg sync.WaitGroup
	names := []string{"int", "char", "float", "double", "long"}
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(n string) {
			defer wg.Done()
			tb.Intern(n)
		}(names[i%len(names)])
	}
	wg.Wait()

	// the pre-interned empty string plus the five distinct names
	test.ExpectEquality(t, tb.Len(), 6)
}

func TestLookupUnknownHandleIsEmpty(t *testing.T) {
	tb := strtab.New()
	test.ExpectEquality(t, tb.Lookup(strtab.Handle(999)), "")
}
