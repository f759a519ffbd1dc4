package pixel

import "fmt"

// PixelArray is the canonical dense representation all conversions
// normalize to and from.  Values are stored in a flat float64 slice in
// row-major order with x varying fastest, then y, z, and c.  The
// invariant len(data) == x*y*z*c holds for every constructed array.
type PixelArray struct {
	dims Dims
	data []float64
}

// NewPixelArray allocates a zero-filled array with the given dimensions.
func NewPixelArray(dims Dims) (*PixelArray, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	return &PixelArray{dims: dims, data: make([]float64, dims.NumVoxels())}, nil
}

// FromFlat builds an array from a flat value sequence and explicit
// dimensions.  The data is copied so the caller's slice is never
// aliased or mutated.
func FromFlat(data []float64, dims Dims) (*PixelArray, error) {
	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if int64(len(data)) != dims.NumVoxels() {
		return nil, fmt.Errorf("%w: %s holds %d voxels but got %d values",
			ErrIncompatibleDimensions, dims, dims.NumVoxels(), len(data))
	}
	dup := make([]float64, len(data))
	copy(dup, data)
	return &PixelArray{dims: dims, data: dup}, nil
}

// Dims returns the canonical dimensions.
func (p *PixelArray) Dims() Dims {
	return p.dims
}

// Data returns the underlying flat storage.  Callers must treat the
// slice as read-only.
func (p *PixelArray) Data() []float64 {
	return p.data
}

func (p *PixelArray) offset(x, y, z, c int32) int64 {
	nx, ny, nz := int64(p.dims[0]), int64(p.dims[1]), int64(p.dims[2])
	return int64(x) + int64(y)*nx + int64(z)*nx*ny + int64(c)*nx*ny*nz
}

// At returns the value at 0-based coordinates.
func (p *PixelArray) At(x, y, z, c int32) float64 {
	return p.data[p.offset(x, y, z, c)]
}

// Set stores a value at 0-based coordinates.
func (p *PixelArray) Set(x, y, z, c int32, v float64) {
	p.data[p.offset(x, y, z, c)] = v
}

// SetOffset stores a value at a linear offset, e.g. one computed by
// LinearOffset during a scatter write.
func (p *PixelArray) SetOffset(offset int64, v float64) {
	p.data[offset] = v
}

// MinMax returns the smallest and largest values over the entire array.
func (p *PixelArray) MinMax() (min, max float64) {
	min, max = p.data[0], p.data[0]
	for _, v := range p.data[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}

// Equal reports whether two arrays have identical dimensions and
// element-wise identical values.
func (p *PixelArray) Equal(q *PixelArray) bool {
	if p.dims != q.dims {
		return false
	}
	for i, v := range p.data {
		if q.data[i] != v {
			return false
		}
	}
	return true
}

// DepthSlice returns the depth==1 sub-array at the given 0-based depth
// frame, preserving all channels.
func (p *PixelArray) DepthSlice(z int32) (*PixelArray, error) {
	if z < 0 || z >= p.dims[2] {
		return nil, fmt.Errorf("%w: depth frame %d of %s", ErrCoordinateOutOfRange, z+1, p.dims)
	}
	dims := Dims{p.dims[0], p.dims[1], 1, p.dims[3]}
	out := make([]float64, dims.NumVoxels())
	planeLen := int64(p.dims[0]) * int64(p.dims[1])
	dst := int64(0)
	for c := int32(0); c < p.dims[3]; c++ {
		src := p.offset(0, 0, z, c)
		copy(out[dst:dst+planeLen], p.data[src:src+planeLen])
		dst += planeLen
	}
	return &PixelArray{dims: dims, data: out}, nil
}

// PlaneAt extracts the single (x,y) plane at 0-based depth z and
// channel c as an x-major matrix: plane[x][y].
func (p *PixelArray) PlaneAt(z, c int32) ([][]float64, error) {
	if z < 0 || z >= p.dims[2] {
		return nil, fmt.Errorf("%w: depth frame %d of %s", ErrCoordinateOutOfRange, z+1, p.dims)
	}
	if c < 0 || c >= p.dims[3] {
		return nil, fmt.Errorf("%w: channel %d of %s", ErrCoordinateOutOfRange, c+1, p.dims)
	}
	plane := make([][]float64, p.dims[0])
	for x := int32(0); x < p.dims[0]; x++ {
		col := make([]float64, p.dims[1])
		for y := int32(0); y < p.dims[1]; y++ {
			col[y] = p.At(x, y, z, c)
		}
		plane[x] = col
	}
	return plane, nil
}

// Source is the closed set of raw input kinds accepted by Normalize.
// Conversion paths dispatch on the concrete type, never on runtime
// shape inspection.
type Source interface {
	pixelSource()
}

// Flat is a 1-axis value sequence; its shape is resolved by InferDims.
type Flat []float64

// Plane is a 2-axis array indexed plane[x][y].
type Plane [][]float64

// Volume is a 3-axis array indexed volume[x][y][k], where the meaning
// of the third axis (depth or channel) is inferred by Normalize.
type Volume [][][]float64

// Hyper is a full 4-axis array indexed hyper[x][y][z][c].
type Hyper [][][][]float64

func (Flat) pixelSource()   {}
func (Plane) pixelSource()  {}
func (Volume) pixelSource() {}
func (Hyper) pixelSource()  {}

// FlatFromInts coerces integer elements to floating point.
func FlatFromInts(values []int) Flat {
	out := make(Flat, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// FlatFromBools coerces boolean elements to 0 or 1.
func FlatFromBools(values []bool) Flat {
	out := make(Flat, len(values))
	for i, v := range values {
		if v {
			out[i] = 1
		}
	}
	return out
}

// PlaneFromInts coerces a 2-axis integer array to floating point.
func PlaneFromInts(values [][]int) Plane {
	out := make(Plane, len(values))
	for i, col := range values {
		out[i] = make([]float64, len(col))
		for j, v := range col {
			out[i][j] = float64(v)
		}
	}
	return out
}

// Normalize canonicalizes a raw array into the 4-axis pixel form:
//
//	flat     -> shape from InferDims (advisory on any guess)
//	2 axes   -> (x,y,1,1)
//	3 axes   -> third size == 3 is the channel axis (x,y,1,3), any
//	            other size is the depth axis (x,y,z,1); either way an
//	            advisory records the inference
//	4 axes   -> passed through unchanged
//
// Ragged nested slices fail with ErrIncompatibleDimensions; empty
// inputs fail with ErrUnsupportedRank.
func Normalize(src Source) (*PixelArray, []Advisory, error) {
	switch s := src.(type) {
	case Flat:
		if len(s) == 0 {
			return nil, nil, fmt.Errorf("%w: empty flat sequence", ErrUnsupportedRank)
		}
		dims, advisories, err := InferDims(int64(len(s)), AxisSpec{})
		if err != nil {
			return nil, nil, err
		}
		img, err := FromFlat(s, dims)
		return img, advisories, err

	case Plane:
		dims, err := nestedDims(len(s), func(x int) int { return len(s[x]) })
		if err != nil {
			return nil, nil, err
		}
		img, err := NewPixelArray(Dims{dims[0], dims[1], 1, 1})
		if err != nil {
			return nil, nil, err
		}
		for x := range s {
			for y, v := range s[x] {
				img.Set(int32(x), int32(y), 0, 0, v)
			}
		}
		return img, nil, nil

	case Volume:
		dims, err := nestedDims(len(s), func(x int) int { return len(s[x]) })
		if err != nil {
			return nil, nil, err
		}
		third, err := thirdAxisSize(s)
		if err != nil {
			return nil, nil, err
		}
		var advisory Advisory
		var target Dims
		if third == 3 {
			advisory = Advise(InferredChannelAxis, "third axis of size 3 interpreted as channel")
			target = Dims{dims[0], dims[1], 1, 3}
		} else {
			advisory = Advise(InferredDepthAxis, "third axis of size %d interpreted as depth", third)
			target = Dims{dims[0], dims[1], third, 1}
		}
		img, err := NewPixelArray(target)
		if err != nil {
			return nil, nil, err
		}
		for x := range s {
			for y := range s[x] {
				for k, v := range s[x][y] {
					if third == 3 {
						img.Set(int32(x), int32(y), 0, int32(k), v)
					} else {
						img.Set(int32(x), int32(y), int32(k), 0, v)
					}
				}
			}
		}
		return img, []Advisory{advisory}, nil

	case Hyper:
		dims, err := hyperDims(s)
		if err != nil {
			return nil, nil, err
		}
		img, err := NewPixelArray(dims)
		if err != nil {
			return nil, nil, err
		}
		for x := range s {
			for y := range s[x] {
				for z := range s[x][y] {
					for c, v := range s[x][y][z] {
						img.Set(int32(x), int32(y), int32(z), int32(c), v)
					}
				}
			}
		}
		return img, nil, nil

	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedRank, src)
	}
}

// nestedDims validates the first two axes of a nested slice: non-empty
// outer axis and equal inner lengths.
func nestedDims(nx int, rowLen func(x int) int) (Dims, error) {
	if nx == 0 {
		return Dims{}, fmt.Errorf("%w: empty array", ErrUnsupportedRank)
	}
	ny := rowLen(0)
	if ny == 0 {
		return Dims{}, fmt.Errorf("%w: empty array", ErrUnsupportedRank)
	}
	for x := 1; x < nx; x++ {
		if rowLen(x) != ny {
			return Dims{}, fmt.Errorf("%w: ragged y axis (row %d has %d values, expected %d)",
				ErrIncompatibleDimensions, x, rowLen(x), ny)
		}
	}
	return Dims{int32(nx), int32(ny), 1, 1}, nil
}

func thirdAxisSize(s Volume) (int32, error) {
	third := len(s[0][0])
	if third == 0 {
		return 0, fmt.Errorf("%w: empty array", ErrUnsupportedRank)
	}
	for x := range s {
		for y := range s[x] {
			if len(s[x][y]) != third {
				return 0, fmt.Errorf("%w: ragged third axis at (%d,%d)", ErrIncompatibleDimensions, x+1, y+1)
			}
		}
	}
	return int32(third), nil
}

func hyperDims(s Hyper) (Dims, error) {
	dims, err := nestedDims(len(s), func(x int) int { return len(s[x]) })
	if err != nil {
		return Dims{}, err
	}
	nz := len(s[0][0])
	if nz == 0 {
		return Dims{}, fmt.Errorf("%w: empty array", ErrUnsupportedRank)
	}
	nc := len(s[0][0][0])
	if nc == 0 {
		return Dims{}, fmt.Errorf("%w: empty array", ErrUnsupportedRank)
	}
	for x := range s {
		for y := range s[x] {
			if len(s[x][y]) != nz {
				return Dims{}, fmt.Errorf("%w: ragged z axis at (%d,%d)", ErrIncompatibleDimensions, x+1, y+1)
			}
			for z := range s[x][y] {
				if len(s[x][y][z]) != nc {
					return Dims{}, fmt.Errorf("%w: ragged c axis at (%d,%d,%d)", ErrIncompatibleDimensions, x+1, y+1, z+1)
				}
			}
		}
	}
	dims[2], dims[3] = int32(nz), int32(nc)
	return dims, nil
}
