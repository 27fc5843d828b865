package assert

import (
	"errors"
	"testing"

	"github.com/damedic/datetime-toolbox-go/datetime"
	"github.com/google/go-cmp/cmp"
)

// ValueEqual reports a diff if actual is not the same value as expected.
//
// Temporal values are compared with datetime.Cmp, so aware values denoting
// the same instant in different zones are equal.
func ValueEqual(t *testing.T, expected, actual datetime.Value) {
	t.Helper()
	if !valueEqual(expected, actual) {
		t.Error(cmp.Diff(render(expected), render(actual)))
	}
}

func valueEqual(expected, actual datetime.Value) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	if expected.Kind() != actual.Kind() {
		return false
	}
	switch e := expected.(type) {
	case datetime.Boolean:
		return e == actual.(datetime.Boolean)
	case datetime.Number:
		return e.Value.Cmp(actual.(datetime.Number).Value) == 0
	}
	c, err := datetime.Cmp(expected, actual)
	return err == nil && c == 0
}

func render(v datetime.Value) string {
	if v == nil {
		return "<nil>"
	}
	return v.Kind().String() + " " + v.String()
}

// ErrorIs reports a failure if err does not match target. A nil target
// expects no error.
func ErrorIs(t *testing.T, err, target error) {
	t.Helper()
	switch {
	case target == nil && err != nil:
		t.Errorf("unexpected error: %v", err)
	case target != nil && !errors.Is(err, target):
		t.Errorf("expected error matching %v, got %v", target, err)
	}
}
