package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/udisondev/stronghold/internal/model"
)

// Path returns a 1300-unit corridor with four turns, long enough for
// multi-second runs.
func Path(tb testing.TB) *model.MovementPath {
	tb.Helper()

	p, err := model.NewMovementPath([]model.Point{
		model.NewPoint(0, 0),
		model.NewPoint(300, 0),
		model.NewPoint(300, 200),
		model.NewPoint(100, 200),
		model.NewPoint(100, 400),
		model.NewPoint(500, 400),
	})
	if err != nil {
		tb.Fatalf("building test path: %v", err)
	}
	return p
}

// StraightPath returns a single-segment path of the given length.
func StraightPath(tb testing.TB, length float64) *model.MovementPath {
	tb.Helper()

	p, err := model.NewMovementPath([]model.Point{
		model.NewPoint(0, 0),
		model.NewPoint(length, 0),
	})
	if err != nil {
		tb.Fatalf("building straight path: %v", err)
	}
	return p
}

// Rand returns a deterministic generator for the given seed.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}
