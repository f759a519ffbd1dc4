package pixel

import "fmt"

// Coord supplies 1-based coordinates for a subset of the four axes.
// Unset axes default to 1.
type Coord struct {
	X, Y, Z, C OptInt32
}

func (c Coord) String() string {
	return fmt.Sprintf("(x=%d,y=%d,z=%d,c=%d)", c.X.Or(1), c.Y.Or(1), c.Z.Or(1), c.C.Or(1))
}

// LinearOffset maps 1-based coordinates to a 0-based offset into the
// flat storage of an array with the given dimensions:
//
//	offset = (x-1) + (y-1)*X + (z-1)*X*Y + (c-1)*X*Y*Z
//
// Each supplied coordinate must be a positive integer no larger than
// its axis size, else ErrCoordinateOutOfRange is returned.
func LinearOffset(dims Dims, coord Coord) (int64, error) {
	vals := [4]OptInt32{coord.X, coord.Y, coord.Z, coord.C}
	var idx [4]int64
	for axis, opt := range vals {
		v := opt.Or(1)
		if v < 1 || v > dims[axis] {
			return 0, fmt.Errorf("%w: %s=%d exceeds axis size %d", ErrCoordinateOutOfRange,
				axisNames[axis], v, dims[axis])
		}
		idx[axis] = int64(v - 1)
	}
	nx, ny, nz := int64(dims[0]), int64(dims[1]), int64(dims[2])
	return idx[0] + idx[1]*nx + idx[2]*nx*ny + idx[3]*nx*ny*nz, nil
}
