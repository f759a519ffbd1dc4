package grid

import (
	"math/rand"
	"testing"

	"github.com/pjpan/imager/pixel"
)

func randomArray(t *testing.T, dims pixel.Dims, seed int64) *pixel.PixelArray {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, dims.NumVoxels())
	for i := range data {
		data[i] = rng.Float64()
	}
	img, err := pixel.FromFlat(data, dims)
	if err != nil {
		t.Fatalf("building %s test array: %v", dims, err)
	}
	return img
}

func TestExternalRoundTrip(t *testing.T) {
	for _, dims := range []pixel.Dims{
		{1, 1, 1, 1},
		{4, 3, 1, 1},
		{7, 7, 1, 1},
	} {
		img := randomArray(t, dims, int64(dims[0]))
		grids, err := ToExternal(img, MatrixBuilder{}, nil)
		if err != nil {
			t.Fatalf("ToExternal(%s) error: %v", dims, err)
		}
		if len(grids) != 1 || len(grids[0]) != 1 {
			t.Fatalf("single-plane image should yield one grid, got %dx%d", len(grids), len(grids[0]))
		}
		got, err := FromExternal(grids[0][0])
		if err != nil {
			t.Fatalf("FromExternal(%s) error: %v", dims, err)
		}
		if !img.Equal(got) {
			t.Errorf("external grid round trip for %s altered the array", dims)
		}
	}
}

func TestToExternalRotation(t *testing.T) {
	// 2x3 plane with distinct values: plane[x][y] = 10*x + y.
	img, err := pixel.NewPixelArray(pixel.Dims{2, 3, 1, 1})
	if err != nil {
		t.Fatal(err)
	}
	for x := int32(0); x < 2; x++ {
		for y := int32(0); y < 3; y++ {
			img.Set(x, y, 0, 0, float64(10*x+y))
		}
	}
	grids, err := ToExternal(img, MatrixBuilder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	g := grids[0][0]
	if g.Rows() != 3 || g.Cols() != 2 {
		t.Fatalf("rotated grid is %dx%d, expected 3 rows x 2 cols", g.Rows(), g.Cols())
	}
	// G[i][j] = plane[j][Y-1-i]: the top row holds y = Y-1.
	if g.Value(0, 0) != 2 || g.Value(0, 1) != 12 {
		t.Errorf("top row = (%v, %v), expected (2, 12)", g.Value(0, 0), g.Value(0, 1))
	}
	if g.Value(2, 0) != 0 || g.Value(2, 1) != 10 {
		t.Errorf("bottom row = (%v, %v), expected (0, 10)", g.Value(2, 0), g.Value(2, 1))
	}
}

func TestToExternalDecomposition(t *testing.T) {
	img := randomArray(t, pixel.Dims{3, 2, 4, 2}, 99)
	grids, err := ToExternal(img, MatrixBuilder{}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(grids) != 4 {
		t.Fatalf("expected one outer entry per depth frame, got %d", len(grids))
	}
	for z, frame := range grids {
		if len(frame) != 2 {
			t.Fatalf("frame %d: expected one grid per channel, got %d", z, len(frame))
		}
		for c, g := range frame {
			back, err := FromExternal(g)
			if err != nil {
				t.Fatal(err)
			}
			for x := int32(0); x < 3; x++ {
				for y := int32(0); y < 2; y++ {
					if back.At(x, y, 0, 0) != img.At(x, y, int32(z), int32(c)) {
						t.Errorf("plane (z=%d,c=%d) mismatch at (%d,%d)", z, c, x, y)
					}
				}
			}
		}
	}
}

func TestWindowPropagation(t *testing.T) {
	img := randomArray(t, pixel.Dims{2, 2, 1, 1}, 3)
	win := &Window{X0: 0, X1: 2, Y0: 0, Y1: 2}
	grids, err := ToExternal(img, MatrixBuilder{}, win)
	if err != nil {
		t.Fatal(err)
	}
	mg := grids[0][0].(*MatrixGrid)
	if mg.Window() == nil || *mg.Window() != *win {
		t.Errorf("window not propagated to built grid")
	}
	// The builder must not alias the caller's window.
	win.X1 = 99
	if mg.Window().X1 == 99 {
		t.Errorf("built grid aliases the caller's window")
	}
}

func TestToExternalNilBuilder(t *testing.T) {
	img := randomArray(t, pixel.Dims{2, 2, 1, 1}, 4)
	if _, err := ToExternal(img, nil, nil); err == nil {
		t.Errorf("expected error for nil builder")
	}
}
