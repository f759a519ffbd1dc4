package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"

	"github.com/pjpan/imager/pixel"
)

// parseColorCode parses a "#RRGGBB" or "#RRGGBBAA" colour code.
func parseColorCode(code string) (color.NRGBA, error) {
	if (len(code) != 7 && len(code) != 9) || code[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("bad colour code %q: expected #RRGGBB or #RRGGBBAA", code)
	}
	var parts [4]uint8
	parts[3] = 0xff
	for i := 0; i*2+1 < len(code)-1; i++ {
		v, err := strconv.ParseUint(code[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("bad colour code %q: %v", code, err)
		}
		parts[i] = uint8(v)
	}
	return color.NRGBA{parts[0], parts[1], parts[2], parts[3]}, nil
}

// FrameImage converts a bitmap frame into a standard Go image.
func FrameImage(bm Bitmap) (*image.NRGBA, error) {
	if len(bm) == 0 || len(bm[0]) == 0 {
		return nil, fmt.Errorf("empty bitmap frame")
	}
	h, w := len(bm), len(bm[0])
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range bm {
		if len(row) != w {
			return nil, fmt.Errorf("ragged bitmap: row %d has %d columns, expected %d", y, len(row), w)
		}
		for x, code := range row {
			c, err := parseColorCode(code)
			if err != nil {
				return nil, err
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img, nil
}

// EncodePNG raster-encodes the first depth frame of a pixel array and
// writes it as PNG.
func EncodePNG(w io.Writer, img *pixel.PixelArray, opts Options) error {
	frames, _, err := Encode(img, opts)
	if err != nil {
		return err
	}
	goImg, err := FrameImage(frames[0])
	if err != nil {
		return err
	}
	return png.Encode(w, goImg)
}
