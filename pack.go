package monobitmap

import (
	"fmt"
	"image"

	"github.com/flavioheleno/monobitmap/image1bit"
)

// BytesPerRow returns the number of packed bytes needed for one row of width pixels.
func BytesPerRow(width int) int {
	return (width + 7) / 8
}

// PackedSize returns the packed size in bytes of a width x height bitmap.
func PackedSize(width, height int) int {
	return height * BytesPerRow(width)
}

// Pack thresholds every sample of grid into one bit and packs the result
// row-major, 8 pixels per byte, MSB first.
//
// With invert set, samples above 128 become 1; otherwise samples at or
// below 128 become 1. Bits past the right edge of each row stay 0.
func Pack(grid *image.Gray, invert bool) (*image1bit.HorizontalMSB, error) {
	if grid == nil {
		return nil, fmt.Errorf("%w: nil intensity grid", ErrUsage)
	}
	b := grid.Bounds()
	width, height := b.Dx(), b.Dy()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: bitmap dimensions must be positive, got %dx%d", ErrUsage, width, height)
	}

	dst := image1bit.NewHorizontalMSB(image.Rect(0, 0, width, height), invert)
	for y := 0; y < height; y++ {
		i := grid.PixOffset(b.Min.X, b.Min.Y+y)
		row := grid.Pix[i : i+width]
		out := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
		for x := 0; x < width; x += 8 {
			var v byte
			for bit := 0; bit < 8 && x+bit < width; bit++ {
				if image1bit.IsSet(row[x+bit], invert) {
					v |= 1 << uint(7-bit)
				}
			}
			out[x/8] = v
		}
	}
	return dst, nil
}
