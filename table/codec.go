package table

import (
	"fmt"
	"math"
	"strings"

	"github.com/pjpan/imager/pixel"
)

// Mode selects the tabular layout produced by Encode.
type Mode uint8

const (
	// Long emits one row per pixel with coordinate columns and a single
	// value column.
	Long Mode = iota

	// WideByChannel emits one row per (x,y,z) location with one value
	// column per channel index.
	WideByChannel

	// WideByDepth emits one row per (x,y,c) location with one value
	// column per depth index.
	WideByDepth
)

func (m Mode) String() string {
	switch m {
	case Long:
		return "long"
	case WideByChannel:
		return "wide by channel"
	case WideByDepth:
		return "wide by depth"
	default:
		return "unknown mode"
	}
}

// Encode converts a pixel array to tabular form.  Coordinate columns
// are 1-based; x and y always appear while z and c appear only when the
// corresponding axis size exceeds 1.  Long rows follow the canonical
// flatten order (x fastest, then y, z, c).
func Encode(img *pixel.PixelArray, mode Mode) (*Table, error) {
	switch mode {
	case Long:
		return encodeLong(img), nil
	case WideByChannel:
		return encodeWide(img, true), nil
	case WideByDepth:
		return encodeWide(img, false), nil
	default:
		return nil, fmt.Errorf("unknown tabular mode (%d)", mode)
	}
}

func encodeLong(img *pixel.PixelArray) *Table {
	dims := img.Dims()
	n := dims.NumVoxels()
	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	var zs, cs []float64
	if dims[2] > 1 {
		zs = make([]float64, 0, n)
	}
	if dims[3] > 1 {
		cs = make([]float64, 0, n)
	}
	vals := make([]float64, 0, n)

	for c := int32(0); c < dims[3]; c++ {
		for z := int32(0); z < dims[2]; z++ {
			for y := int32(0); y < dims[1]; y++ {
				for x := int32(0); x < dims[0]; x++ {
					xs = append(xs, float64(x+1))
					ys = append(ys, float64(y+1))
					if zs != nil {
						zs = append(zs, float64(z+1))
					}
					if cs != nil {
						cs = append(cs, float64(c+1))
					}
					vals = append(vals, img.At(x, y, z, c))
				}
			}
		}
	}

	tbl := &Table{Columns: []Column{{Name: "x", Values: xs}, {Name: "y", Values: ys}}}
	if zs != nil {
		tbl.Columns = append(tbl.Columns, Column{Name: "z", Values: zs})
	}
	if cs != nil {
		tbl.Columns = append(tbl.Columns, Column{Name: "c", Values: cs})
	}
	tbl.Columns = append(tbl.Columns, Column{Name: DefaultValueColumn, Values: vals})
	return tbl
}

// encodeWide projects the full coordinate grid excluding either the
// channel axis (byChannel) or the depth axis, then concatenates one
// value column per index along the excluded axis.
func encodeWide(img *pixel.PixelArray, byChannel bool) *Table {
	dims := img.Dims()
	outer, prefix := dims[3], "c"
	kept := dims[2]
	keptName := "z"
	if !byChannel {
		outer, prefix = dims[2], "z"
		kept = dims[3]
		keptName = "c"
	}
	rows := int64(dims[0]) * int64(dims[1]) * int64(kept)

	xs := make([]float64, 0, rows)
	ys := make([]float64, 0, rows)
	var ks []float64
	if kept > 1 {
		ks = make([]float64, 0, rows)
	}
	for k := int32(0); k < kept; k++ {
		for y := int32(0); y < dims[1]; y++ {
			for x := int32(0); x < dims[0]; x++ {
				xs = append(xs, float64(x+1))
				ys = append(ys, float64(y+1))
				if ks != nil {
					ks = append(ks, float64(k+1))
				}
			}
		}
	}

	tbl := &Table{Columns: []Column{{Name: "x", Values: xs}, {Name: "y", Values: ys}}}
	if ks != nil {
		tbl.Columns = append(tbl.Columns, Column{Name: keptName, Values: ks})
	}
	for o := int32(0); o < outer; o++ {
		vals := make([]float64, 0, rows)
		for k := int32(0); k < kept; k++ {
			for y := int32(0); y < dims[1]; y++ {
				for x := int32(0); x < dims[0]; x++ {
					if byChannel {
						vals = append(vals, img.At(x, y, k, o))
					} else {
						vals = append(vals, img.At(x, y, o, k))
					}
				}
			}
		}
		tbl.Columns = append(tbl.Columns, Column{Name: fmt.Sprintf("%s%d", prefix, o+1), Values: vals})
	}
	return tbl
}

// coordAxis returns which axis a column name addresses, if any.  The
// channel axis accepts the aliases "c" and "cc".
func coordAxis(name string) (axis int, ok bool) {
	switch strings.ToLower(name) {
	case "x":
		return pixel.AxisX, true
	case "y":
		return pixel.AxisY, true
	case "z":
		return pixel.AxisZ, true
	case "c", "cc":
		return pixel.AxisC, true
	default:
		return 0, false
	}
}

// Decode rebuilds a pixel array from tabular form.  Coordinate columns
// are matched by name (x, y, z, and the channel aliases c/cc); all
// other columns are ignored except the one named valueCol, which
// supplies the values.  With nil dims, each axis size is inferred as
// the maximum observed coordinate (1 when the column is absent) and an
// advisory is emitted.  The array starts zero-filled and each row is
// scatter-written through its linear offset; duplicate coordinates
// resolve last-write-wins.
func Decode(tbl *Table, valueCol string, dims *pixel.Dims) (*pixel.PixelArray, []pixel.Advisory, error) {
	if err := tbl.Validate(); err != nil {
		return nil, nil, err
	}
	value := tbl.Column(valueCol)
	if value == nil {
		return nil, nil, fmt.Errorf("%w: no column named %q", pixel.ErrMissingValueColumn, valueCol)
	}

	// Gather coordinate columns, first alias wins per axis.
	var coords [4]*Column
	for i := range tbl.Columns {
		col := &tbl.Columns[i]
		if col.Name == valueCol {
			continue
		}
		if axis, ok := coordAxis(col.Name); ok && coords[axis] == nil {
			coords[axis] = col
		}
	}

	for _, col := range coords {
		if col == nil {
			continue
		}
		for row, v := range col.Values {
			if v <= 0 {
				return nil, nil, fmt.Errorf("%w: %s=%v at row %d", pixel.ErrNonPositiveCoordinate,
					col.Name, v, row+1)
			}
			if v != math.Trunc(v) || v > math.MaxInt32 {
				return nil, nil, fmt.Errorf("%w: %s=%v at row %d is not a valid coordinate",
					pixel.ErrCoordinateOutOfRange, col.Name, v, row+1)
			}
		}
	}

	var advisories []pixel.Advisory
	var target pixel.Dims
	if dims != nil {
		target = *dims
		if err := target.Validate(); err != nil {
			return nil, nil, err
		}
	} else {
		target = pixel.Dims{1, 1, 1, 1}
		for axis, col := range coords {
			if col == nil {
				continue
			}
			for _, v := range col.Values {
				if int32(v) > target[axis] {
					target[axis] = int32(v)
				}
			}
		}
		advisories = append(advisories,
			pixel.Advise(pixel.InferredDecodeDims, "dimensions %s inferred from maximum coordinates", target))
	}

	img, err := pixel.NewPixelArray(target)
	if err != nil {
		return nil, nil, err
	}
	for row, v := range value.Values {
		var coord pixel.Coord
		if coords[pixel.AxisX] != nil {
			coord.X = pixel.SomeInt32(int32(coords[pixel.AxisX].Values[row]))
		}
		if coords[pixel.AxisY] != nil {
			coord.Y = pixel.SomeInt32(int32(coords[pixel.AxisY].Values[row]))
		}
		if coords[pixel.AxisZ] != nil {
			coord.Z = pixel.SomeInt32(int32(coords[pixel.AxisZ].Values[row]))
		}
		if coords[pixel.AxisC] != nil {
			coord.C = pixel.SomeInt32(int32(coords[pixel.AxisC].Values[row]))
		}
		offset, err := pixel.LinearOffset(target, coord)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", row+1, err)
		}
		img.SetOffset(offset, v)
	}
	return img, advisories, nil
}
