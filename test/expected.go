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

// Package test collects small assertion helpers shared by the test suites
// in this module. It deliberately stays independent of any third party
// assertion library so that the packages it exercises can be tested without
// pulling in additional dependencies.
package test

import (
	"math"
	"reflect"
	"testing"
)

// Equate fails the test if a and b are not equal, as judged by
// reflect.DeepEqual. It returns whether the comparison succeeded.
func Equate(t *testing.T, a, b interface{}) bool {
	t.Helper()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("not equal: %#v != %#v", a, b)
		return false
	}
	return true
}

// ExpectEquality fails the test if a and b are not equal.
func ExpectEquality(t *testing.T, a, b interface{}) {
	t.Helper()
	Equate(t, a, b)
}

// ExpectInequality fails the test if a and b are equal.
func ExpectInequality(t *testing.T, a, b interface{}) {
	t.Helper()
	if reflect.DeepEqual(a, b) {
		t.Errorf("unexpectedly equal: %#v == %#v", a, b)
	}
}

// ExpectApproximate fails the test if a and b differ by more than
// tolerance.
func ExpectApproximate(t *testing.T, a, b, tolerance float64) {
	t.Helper()
	if math.Abs(a-b) > tolerance {
		t.Errorf("not approximately equal: %v !~ %v (tolerance %v)", a, b, tolerance)
	}
}

// ExpectSuccess fails the test unless v is true or a nil error.
func ExpectSuccess(t *testing.T, v interface{}) {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if !v {
			t.Errorf("expected success, got false")
		}
	case error:
		if v != nil {
			t.Errorf("expected success, got error: %v", v)
		}
	case nil:
		// a literal nil passed as an error-typed value
	default:
		t.Errorf("ExpectSuccess: unsupported type %T", v)
	}
}

// ExpectFailure fails the test unless v is false or a non-nil error.
func ExpectFailure(t *testing.T, v interface{}) {
	t.Helper()
	switch v := v.(type) {
	case bool:
		if v {
			t.Errorf("expected failure, got true")
		}
	case error:
		if v == nil {
			t.Errorf("expected failure, got nil error")
		}
	case nil:
		t.Errorf("expected failure, got nil")
	default:
		t.Errorf("ExpectFailure: unsupported type %T", v)
	}
}
