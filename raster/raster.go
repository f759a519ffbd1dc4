/*
Package raster maps pixel arrays through colour-scale functions into
bitmaps of fixed-format colour codes, one bitmap per depth frame.
Bitmap rows follow the image's y axis and columns its x axis, the
orientation expected by display surfaces, which transposes the
canonical (x,y) storage order.
*/
package raster

import (
	"fmt"
	"math"

	"github.com/pjpan/imager/pixel"
)

// ColorScale maps one (grayscale) or three (RGB) channel values to a
// 6-hex-digit colour code of the form "#RRGGBB".  The slice is reused
// between pixels and is only valid for the duration of the call.
type ColorScale func(vals []float64) string

// Bitmap is a 2D grid of colour codes indexed bitmap[row][col], where
// row corresponds to y and col to x.
type Bitmap [][]string

// Options configures raster encoding.  The zero value uses the default
// colour scale for the image's channel count and applies the global
// rescale transform.
type Options struct {
	// Scale overrides the default colour scale.  It receives one value
	// for single-channel images and the first three channel values
	// otherwise.
	Scale ColorScale

	// NoRescale passes raw values to the colour scale instead of
	// applying the global min-max transform first.  Out-of-domain values
	// then produce whatever the scale function does.
	NoRescale bool
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func hexLevel(v float64) uint8 {
	return uint8(math.Round(clampUnit(v) * 255))
}

// GrayScale is the default colour scale for single-channel images,
// mapping a value in [0,1] to a gray level.  Values outside [0,1] are
// clamped.
func GrayScale(vals []float64) string {
	g := hexLevel(vals[0])
	return fmt.Sprintf("#%02X%02X%02X", g, g, g)
}

// RGBScale is the default colour scale for multi-channel images,
// consuming the first three values positionally as red, green, and
// blue.  Values outside [0,1] are clamped.
func RGBScale(vals []float64) string {
	return fmt.Sprintf("#%02X%02X%02X", hexLevel(vals[0]), hexLevel(vals[1]), hexLevel(vals[2]))
}

// Encode maps a pixel array into one bitmap per depth frame, in depth
// order.  By default every value first goes through a single global
// affine transform (value-min)/(max-min) with min and max taken over
// the entire image, so the colour scale sees the full [0,1] domain.
// When max == min the transform is degenerate and every value maps to
// 0.5.  Multi-channel images always present three values to the scale,
// with channels beyond the third ignored and absent channels zero.
func Encode(img *pixel.PixelArray, opts Options) ([]Bitmap, []pixel.Advisory, error) {
	dims := img.Dims()

	var advisories []pixel.Advisory
	scale := opts.Scale
	if scale == nil {
		// Resolved once per call from the channel count.
		if dims[3] == 1 {
			scale = GrayScale
		} else {
			scale = RGBScale
		}
	} else if !opts.NoRescale {
		advisories = append(advisories, pixel.Advise(pixel.ScaleWithRescale,
			"custom colour scale combined with global rescale is likely unintended"))
	}

	transform := func(v float64) float64 { return v }
	if !opts.NoRescale {
		min, max := img.MinMax()
		if max == min {
			// Degenerate range: map everything to the midpoint.
			transform = func(float64) float64 { return 0.5 }
		} else {
			span := max - min
			transform = func(v float64) float64 { return (v - min) / span }
		}
	}

	nchan := dims[3]
	if nchan > 3 {
		nchan = 3
	}
	// Multi-channel scales see exactly three values; a 2-channel image
	// leaves blue at zero.
	nvals := nchan
	if dims[3] > 1 && nvals < 3 {
		nvals = 3
	}
	frames := make([]Bitmap, dims[2])
	vals := make([]float64, nvals)
	for z := int32(0); z < dims[2]; z++ {
		frame, err := img.DepthSlice(z)
		if err != nil {
			return nil, nil, err
		}
		bm := make(Bitmap, dims[1])
		for y := int32(0); y < dims[1]; y++ {
			row := make([]string, dims[0])
			for x := int32(0); x < dims[0]; x++ {
				for c := int32(0); c < nchan; c++ {
					vals[c] = transform(frame.At(x, y, 0, c))
				}
				row[x] = scale(vals)
			}
			bm[y] = row
		}
		frames[z] = bm
	}
	return frames, advisories, nil
}
