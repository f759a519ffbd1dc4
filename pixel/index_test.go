package pixel

import (
	"errors"
	"testing"
)

func TestLinearOffset(t *testing.T) {
	dims := Dims{4, 3, 2, 2}
	tests := []struct {
		coord Coord
		want  int64
	}{
		{Coord{}, 0},
		{Coord{X: SomeInt32(2)}, 1},
		{Coord{X: SomeInt32(1), Y: SomeInt32(2)}, 4},
		{Coord{Z: SomeInt32(2)}, 12},
		{Coord{C: SomeInt32(2)}, 24},
		{Coord{X: SomeInt32(4), Y: SomeInt32(3), Z: SomeInt32(2), C: SomeInt32(2)}, 47},
	}
	for _, tc := range tests {
		got, err := LinearOffset(dims, tc.coord)
		if err != nil {
			t.Errorf("LinearOffset(%s, %s) error: %v", dims, tc.coord, err)
			continue
		}
		if got != tc.want {
			t.Errorf("LinearOffset(%s, %s) = %d, expected %d", dims, tc.coord, got, tc.want)
		}
	}
}

func TestLinearOffsetBounds(t *testing.T) {
	dims := Dims{4, 3, 2, 2}
	bad := []Coord{
		{X: SomeInt32(5)}, // axis size + 1
		{Y: SomeInt32(4)},
		{Z: SomeInt32(3)},
		{C: SomeInt32(3)},
		{X: SomeInt32(0)},
		{Y: SomeInt32(-1)},
	}
	for _, coord := range bad {
		if _, err := LinearOffset(dims, coord); !errors.Is(err, ErrCoordinateOutOfRange) {
			t.Errorf("LinearOffset(%s, %s): expected ErrCoordinateOutOfRange, got %v", dims, coord, err)
		}
	}
}

func TestLinearOffsetMatchesFlattenOrder(t *testing.T) {
	// Full-array traversal in canonical flatten order must visit offsets
	// 0..n-1 consecutively.
	dims := Dims{3, 2, 2, 2}
	var next int64
	for c := int32(1); c <= dims[3]; c++ {
		for z := int32(1); z <= dims[2]; z++ {
			for y := int32(1); y <= dims[1]; y++ {
				for x := int32(1); x <= dims[0]; x++ {
					coord := Coord{SomeInt32(x), SomeInt32(y), SomeInt32(z), SomeInt32(c)}
					got, err := LinearOffset(dims, coord)
					if err != nil {
						t.Fatalf("LinearOffset(%s, %s) error: %v", dims, coord, err)
					}
					if got != next {
						t.Fatalf("LinearOffset(%s, %s) = %d, expected %d", dims, coord, got, next)
					}
					next++
				}
			}
		}
	}
}
