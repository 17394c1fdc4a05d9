package testutil

import (
	"math"
	"testing"
)

// DefaultDelta is the tolerance used by InDelta when the comparison has no
// natural precision of its own.
const DefaultDelta = 1e-9

// InDelta fails the test unless got is within delta of want.
func InDelta(t *testing.T, name string, want, got, delta float64) {
	t.Helper()
	if math.IsNaN(got) {
		t.Fatalf("%s: got NaN, want %v", name, want)
	}
	if math.Abs(got-want) > delta {
		t.Fatalf("%s: got %v, want %v (±%v)", name, got, want, delta)
	}
}

// Near is InDelta with the default tolerance.
func Near(t *testing.T, name string, want, got float64) {
	t.Helper()
	InDelta(t, name, want, got, DefaultDelta)
}

// InUnitInterval fails the test unless v lies in [0, 1].
func InUnitInterval(t *testing.T, name string, v float64) {
	t.Helper()
	if v < 0 || v > 1 || math.IsNaN(v) {
		t.Fatalf("%s: got %v, want a value in [0, 1]", name, v)
	}
}

// NoError fails the test immediately if err is non-nil.
func NoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
