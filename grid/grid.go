/*
Package grid adapts pixel arrays to an external spatial-grid
collaborator.  The collaborator's grid type is a black box constructed
from a 2D numeric matrix plus an optional spatial window; this package
only decomposes pixel arrays into single-plane matrices (rotating them
into the external orientation) and rebuilds arrays from grids, never
reimplementing the collaborator itself.
*/
package grid

import (
	"fmt"

	"github.com/pjpan/imager/pixel"
)

// Grid is the narrow view of the external collaborator's 2D grid type.
type Grid interface {
	// Rows and Cols give the matrix extent.
	Rows() int
	Cols() int

	// Value returns the numeric value at a 0-based matrix position.
	Value(row, col int) float64
}

// Window is an optional spatial extent attached to constructed grids.
type Window struct {
	X0, X1 float64
	Y0, Y1 float64
}

// Builder constructs external grids from row-major 2D matrices.  A nil
// window means the collaborator's default extent.
type Builder interface {
	FromMatrix(values [][]float64, win *Window) (Grid, error)
}

// rotatePlane turns an x-major (x,y) plane 90 degrees into the external
// matrix orientation: the result has Y rows and X columns, with
// out[i][j] = plane[j][Y-1-i].
func rotatePlane(plane [][]float64) [][]float64 {
	nx := len(plane)
	ny := len(plane[0])
	out := make([][]float64, ny)
	for i := 0; i < ny; i++ {
		row := make([]float64, nx)
		for j := 0; j < nx; j++ {
			row[j] = plane[j][ny-1-i]
		}
		out[i] = row
	}
	return out
}

// ToExternal decomposes a pixel array into external grids, one per
// (depth, channel) plane in depth-major, channel-minor order.  A
// single-frame single-channel image yields a 1x1 result.  Each plane is
// rotated 90 degrees to match the external grid convention before being
// handed to the builder.
func ToExternal(img *pixel.PixelArray, b Builder, win *Window) ([][]Grid, error) {
	if b == nil {
		return nil, fmt.Errorf("nil grid builder")
	}
	dims := img.Dims()
	out := make([][]Grid, dims[2])
	for z := int32(0); z < dims[2]; z++ {
		out[z] = make([]Grid, dims[3])
		for c := int32(0); c < dims[3]; c++ {
			plane, err := img.PlaneAt(z, c)
			if err != nil {
				return nil, err
			}
			g, err := b.FromMatrix(rotatePlane(plane), win)
			if err != nil {
				return nil, fmt.Errorf("building grid for frame %d channel %d: %v", z+1, c+1, err)
			}
			out[z][c] = g
		}
	}
	return out, nil
}

// FromExternal rebuilds a single-frame, single-channel pixel array from
// an external grid, applying the inverse rotation so that
// FromExternal(ToExternal(img)) reproduces img exactly.
func FromExternal(g Grid) (*pixel.PixelArray, error) {
	ny, nx := g.Rows(), g.Cols()
	if ny == 0 || nx == 0 {
		return nil, fmt.Errorf("%w: empty grid", pixel.ErrUnsupportedRank)
	}
	img, err := pixel.NewPixelArray(pixel.Dims{int32(nx), int32(ny), 1, 1})
	if err != nil {
		return nil, err
	}
	for x := 0; x < nx; x++ {
		for y := 0; y < ny; y++ {
			img.Set(int32(x), int32(y), 0, 0, g.Value(ny-1-y, x))
		}
	}
	return img, nil
}
