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
	"fmt"
	"sync"

	"github.com/jetsetilly/dwarfloader/logger"
)

// Diagnostics collects the non-fatal warnings a load pass emits, writing
// each one through to the logger package exactly once per distinct key so
// a malformed CU with thousands of instances of the same problem doesn't
// flood the log.
//
// The zero value is not usable; use newDiagnostics.
type Diagnostics struct {
	mu   sync.Mutex
	seen map[string]bool
	perm logger.Permission
}

func newDiagnostics(perm logger.Permission) *Diagnostics {
	return &Diagnostics{
		seen: make(map[string]bool),
		perm: perm,
	}
}

// warnOnce logs detail under tag the first time it is called with a given
// key, and is silent on every subsequent call with that key.
func (d *Diagnostics) warnOnce(key string, tag string, format string, args ...interface{}) {
	d.mu.Lock()
	if d.seen[key] {
		d.mu.Unlock()
		return
	}
	d.seen[key] = true
	d.mu.Unlock()

	logger.Log(d.perm, tag, fmt.Sprintf(format, args...))
}
