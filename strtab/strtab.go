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

// Package strtab implements the process-wide interned string table
// collaborator described by the DWARF loader design: a single Intern/Lookup
// pair, synchronized internally, whose handles remain valid for the life of
// the process.
package strtab

import "sync"

// Handle is an interned string reference. The zero Handle always refers to
// the empty string.
type Handle uint32

// Table is a process-scoped string interning table. The zero value is not
// usable; construct one with New.
type Table struct {
	mu      sync.Mutex
	strings []string
	byValue map[string]Handle
}

// New returns an empty, ready to use Table. Handle 0 is pre-interned to the
// empty string so zero-value Handle fields in uninitialised structs are
// always safe to look up.
func New() *Table {
	t := &Table{
		strings: make([]string, 1, 64),
		byValue: make(map[string]Handle, 64),
	}
	t.strings[0] = ""
	t.byValue[""] = 0
	return t
}

// Intern returns the Handle for s, allocating a new entry if s has not been
// seen before. Safe for concurrent use.
func (t *Table) Intern(s string) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.byValue[s]; ok {
		return h
	}

	h := Handle(len(t.strings))
	t.strings = append(t.strings, s)
	t.byValue[s] = h
	return h
}

// Lookup returns the string for h. It returns the empty string if h was
// never issued by this Table.
func (t *Table) Lookup(h Handle) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if int(h) >= len(t.strings) {
		return ""
	}
	return t.strings[h]
}

// Len returns the number of distinct strings interned, including the
// pre-interned empty string.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.strings)
}
