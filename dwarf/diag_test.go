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
	"testing"

	"github.com/jetsetilly/dwarfloader/test"
)

// countingPermission counts how many times AllowLogging is consulted,
// which happens exactly once per call that actually reaches the logger.
type countingPermission struct {
	calls int
}

func (c *countingPermission) AllowLogging() bool {
	c.calls++
	return true
}

func TestWarnOnceDeduplicatesByKey(t *testing.T) {
	perm := &countingPermission{}
	d := newDiagnostics(perm)

	for i := 0; i < 5; i++ {
		d.warnOnce("dup", "dwarf", "repeated warning")
	}
	d.warnOnce("other", "dwarf", "a different warning")

	test.Equate(t, perm.calls, 2)
}
