package pixel

import (
	"fmt"
	"math"
)

// Axis names in canonical order.
const (
	AxisX = iota
	AxisY
	AxisZ
	AxisC
)

var axisNames = [4]string{"x", "y", "z", "c"}

// Dims holds the canonical dimensions of a pixel array: width (x),
// height (y), depth (z), and channel (c), in that order.  Every axis
// size must be a positive integer.
type Dims [4]int32

// NumVoxels returns the total element count, the product of all four
// axis sizes.
func (d Dims) NumVoxels() int64 {
	return int64(d[0]) * int64(d[1]) * int64(d[2]) * int64(d[3])
}

// Validate returns an error unless every axis size is positive.
func (d Dims) Validate() error {
	for i, size := range d {
		if size < 1 {
			return fmt.Errorf("%w: %s axis size %d must be positive", ErrIncompatibleDimensions, axisNames[i], size)
		}
	}
	return nil
}

func (d Dims) String() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", d[0], d[1], d[2], d[3])
}

// OptInt32 is an optional 32-bit integer with an explicit unspecified
// state, used instead of magic sentinel values for axis sizes and
// coordinates.
type OptInt32 struct {
	Value int32
	Set   bool
}

// SomeInt32 returns a set OptInt32.
func SomeInt32(v int32) OptInt32 {
	return OptInt32{Value: v, Set: true}
}

// Or returns the held value if set, else the fallback.
func (o OptInt32) Or(fallback int32) int32 {
	if o.Set {
		return o.Value
	}
	return fallback
}

// AxisSpec is a partial axis-size specification for dimension
// inference.  Unset axes default to size 1.
type AxisSpec struct {
	X, Y, Z, C OptInt32
}

// Any reports whether at least one axis size was given.
func (s AxisSpec) Any() bool {
	return s.X.Set || s.Y.Set || s.Z.Set || s.C.Set
}

// Dims resolves the specification into concrete dimensions, defaulting
// unset axes to 1.
func (s AxisSpec) Dims() Dims {
	return Dims{s.X.Or(1), s.Y.Or(1), s.Z.Or(1), s.C.Or(1)}
}

// InferDims resolves a 4-axis shape for a flat sequence of the given
// length.  If any axis size is explicitly given, the remaining axes
// default to 1 and the product must equal length.  Otherwise, guesses
// are tried in fixed priority order, the first whole-number match
// winning, and the guess is surfaced as an advisory:
//
//	1. square grayscale  (d,d,1,1)
//	2. square 3-channel  (d,d,1,3)
//	3. cubic grayscale   (d,d,d,1)
//	4. cubic 3-channel   (d,d,d,3)
//
// If no guess fits, ErrDimensionsRequired is returned.
func InferDims(length int64, spec AxisSpec) (Dims, []Advisory, error) {
	if length < 1 {
		return Dims{}, nil, fmt.Errorf("%w: flat length %d must be positive", ErrIncompatibleDimensions, length)
	}
	if spec.Any() {
		dims := spec.Dims()
		if err := dims.Validate(); err != nil {
			return Dims{}, nil, err
		}
		if dims.NumVoxels() != length {
			return Dims{}, nil, fmt.Errorf("%w: %s holds %d voxels but data length is %d",
				ErrIncompatibleDimensions, dims, dims.NumVoxels(), length)
		}
		return dims, nil, nil
	}

	if d, ok := wholeRoot(length, 2); ok {
		a := Advise(GuessedSquareGray, "assuming %d values form a %dx%d grayscale image", length, d, d)
		return Dims{d, d, 1, 1}, []Advisory{a}, nil
	}
	if length%3 == 0 {
		if d, ok := wholeRoot(length/3, 2); ok {
			a := Advise(GuessedSquareRGB, "assuming %d values form a %dx%d 3-channel image", length, d, d)
			return Dims{d, d, 1, 3}, []Advisory{a}, nil
		}
	}
	if d, ok := wholeRoot(length, 3); ok {
		a := Advise(GuessedCubeGray, "assuming %d values form a %dx%dx%d grayscale volume", length, d, d, d)
		return Dims{d, d, d, 1}, []Advisory{a}, nil
	}
	if length%3 == 0 {
		if d, ok := wholeRoot(length/3, 3); ok {
			a := Advise(GuessedCubeRGB, "assuming %d values form a %dx%dx%d 3-channel volume", length, d, d, d)
			return Dims{d, d, d, 3}, []Advisory{a}, nil
		}
	}
	return Dims{}, nil, fmt.Errorf("%w: no square or cubic shape fits flat length %d", ErrDimensionsRequired, length)
}

// wholeRoot returns the exact k-th root of n if one exists.  The float
// root is only a starting point; neighbors are checked with integer
// arithmetic so large lengths don't fall prey to rounding.
func wholeRoot(n int64, k int) (int32, bool) {
	if n < 1 {
		return 0, false
	}
	var guess int64
	switch k {
	case 2:
		guess = int64(math.Round(math.Sqrt(float64(n))))
	case 3:
		guess = int64(math.Round(math.Cbrt(float64(n))))
	default:
		return 0, false
	}
	for _, d := range []int64{guess - 1, guess, guess + 1} {
		if d < 1 || d > math.MaxInt32 {
			continue
		}
		p := d
		for i := 1; i < k; i++ {
			p *= d
		}
		if p == n {
			return int32(d), true
		}
	}
	return 0, false
}
