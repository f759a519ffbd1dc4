package pixel

import (
	"errors"
	"testing"
)

func TestInferDimsGuesses(t *testing.T) {
	tests := []struct {
		length int64
		want   Dims
		code   AdvisoryCode
	}{
		{100, Dims{10, 10, 1, 1}, GuessedSquareGray},
		{300, Dims{10, 10, 1, 3}, GuessedSquareRGB},
		// 81 has a whole square root, so the square rule wins even though
		// later rules could be probed.
		{81, Dims{9, 9, 1, 1}, GuessedSquareGray},
		{125, Dims{5, 5, 5, 1}, GuessedCubeGray},
		{3 * 125, Dims{5, 5, 5, 3}, GuessedCubeRGB},
		{1, Dims{1, 1, 1, 1}, GuessedSquareGray},
	}
	for _, tc := range tests {
		dims, advisories, err := InferDims(tc.length, AxisSpec{})
		if err != nil {
			t.Errorf("InferDims(%d) returned error: %v", tc.length, err)
			continue
		}
		if dims != tc.want {
			t.Errorf("InferDims(%d) = %s, expected %s", tc.length, dims, tc.want)
		}
		if len(advisories) != 1 || advisories[0].Code != tc.code {
			t.Errorf("InferDims(%d) advisories = %v, expected one %s advisory", tc.length, advisories, tc.code)
		}
	}
}

func TestInferDimsNoGuess(t *testing.T) {
	_, _, err := InferDims(7, AxisSpec{})
	if !errors.Is(err, ErrDimensionsRequired) {
		t.Errorf("expected ErrDimensionsRequired for length 7, got %v", err)
	}
}

func TestInferDimsExplicit(t *testing.T) {
	spec := AxisSpec{X: SomeInt32(5), Y: SomeInt32(4)}
	dims, advisories, err := InferDims(20, spec)
	if err != nil {
		t.Fatalf("InferDims with explicit axes returned error: %v", err)
	}
	if dims != (Dims{5, 4, 1, 1}) {
		t.Errorf("got %s, expected (5,4,1,1)", dims)
	}
	if len(advisories) != 0 {
		t.Errorf("explicit axes should not produce advisories, got %v", advisories)
	}

	// A partial spec must still multiply out to the flat length.
	_, _, err = InferDims(21, spec)
	if !errors.Is(err, ErrIncompatibleDimensions) {
		t.Errorf("expected ErrIncompatibleDimensions for 5x4 vs 21 values, got %v", err)
	}

	// One explicit axis suppresses all guessing.
	_, _, err = InferDims(100, AxisSpec{X: SomeInt32(3)})
	if !errors.Is(err, ErrIncompatibleDimensions) {
		t.Errorf("expected ErrIncompatibleDimensions for x=3 vs 100 values, got %v", err)
	}
}

func TestInferDimsBadLength(t *testing.T) {
	if _, _, err := InferDims(0, AxisSpec{}); !errors.Is(err, ErrIncompatibleDimensions) {
		t.Errorf("expected ErrIncompatibleDimensions for zero length, got %v", err)
	}
}

func TestWholeRootLargeValues(t *testing.T) {
	// 94906265^2 sits at the edge of float64's exact integer range, so
	// the check must confirm roots with integer arithmetic.
	const d = 94906265
	if got, ok := wholeRoot(d*d, 2); !ok || got != d {
		t.Errorf("wholeRoot(%d^2, 2) = (%d, %v)", int64(d), got, ok)
	}
	if _, ok := wholeRoot(d*d+1, 2); ok {
		t.Errorf("wholeRoot(%d^2+1, 2) should not find a root", int64(d))
	}
}

func TestDimsValidate(t *testing.T) {
	if err := (Dims{1, 2, 3, 4}).Validate(); err != nil {
		t.Errorf("valid dims rejected: %v", err)
	}
	if err := (Dims{1, 0, 3, 4}).Validate(); !errors.Is(err, ErrIncompatibleDimensions) {
		t.Errorf("expected ErrIncompatibleDimensions for zero axis, got %v", err)
	}
}
