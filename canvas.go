package monobitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/flavioheleno/monobitmap/image1bit"
	"periph.io/x/conn/v3/display"
)

// Opts is the configuration for a Canvas.
type Opts struct {
	// Canvas dimensions in pixels
	W int // Width (default: 128)
	H int // Height (default: 64)

	// Invert selects the polarity: when true white pixels are on.
	Invert bool
}

// Canvas is an in-memory 1-bit display. It implements display.Drawer so code
// written against periph.io displays can render straight into a header.
type Canvas struct {
	rect   image.Rectangle
	buffer *image1bit.HorizontalMSB

	halted bool
}

var _ display.Drawer = (*Canvas)(nil)

// New creates a new Canvas.
//
// opts can be nil to use defaults (128x64, white pixels on).
func New(opts *Opts) (*Canvas, error) {
	if opts == nil {
		opts = &Opts{W: 128, H: 64, Invert: true}
	}
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("%w: canvas dimensions must be positive, got %dx%d", ErrUsage, opts.W, opts.H)
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	return &Canvas{
		rect:   rect,
		buffer: image1bit.NewHorizontalMSB(rect, opts.Invert),
	}, nil
}

// ColorModel returns the color model of the canvas.
func (c *Canvas) ColorModel() color.Model {
	return c.buffer.ColorModel()
}

// Bounds returns the image bounds of the canvas.
func (c *Canvas) Bounds() image.Rectangle {
	return c.rect
}

// Write replaces the whole frame with packed pixel data.
// The data must be exactly PackedSize(W, H) bytes.
func (c *Canvas) Write(pixels []byte) (int, error) {
	if c.halted {
		return 0, errors.New("monobitmap: canvas halted")
	}
	if len(pixels) != len(c.buffer.Pix) {
		return 0, fmt.Errorf("%w: invalid buffer size %d, want %d", ErrUsage, len(pixels), len(c.buffer.Pix))
	}
	copy(c.buffer.Pix, pixels)
	// Keep the padding bits clear whatever the caller sent.
	if pad := c.rect.Dx() % 8; pad != 0 {
		mask := byte(0xFF) << uint(8-pad)
		for i := c.buffer.Stride - 1; i < len(c.buffer.Pix); i += c.buffer.Stride {
			c.buffer.Pix[i] &= mask
		}
	}
	return len(pixels), nil
}

// Draw thresholds src into the canvas.
// The dst rectangle specifies the destination region on the canvas.
// The src image is positioned at src point sp within the destination.
func (c *Canvas) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if c.halted {
		return errors.New("monobitmap: canvas halted")
	}

	dst = dst.Intersect(c.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full frame already packed with the same polarity
	if srcImg, ok := src.(*image1bit.HorizontalMSB); ok {
		if dst == c.rect && sp == (image.Point{}) && srcImg.Rect == c.rect && srcImg.Invert == c.buffer.Invert {
			copy(c.buffer.Pix, srcImg.Pix)
			return nil
		}
		// Bits are only meaningful with their polarity, re-threshold the preview.
		src = srcImg.Gray()
	}

	// Grayscale sources go through Pack so both paths threshold alike.
	if g, ok := src.(*image.Gray); ok {
		r := image.Rectangle{Min: sp, Max: sp.Add(dst.Size())}.Intersect(g.Rect)
		if r.Empty() {
			return nil
		}
		packed, err := Pack(g.SubImage(r).(*image.Gray), c.buffer.Invert)
		if err != nil {
			return err
		}
		// Copy bits directly; draw.Draw would hand Set an RGBA64 and lose them
		// when the canvas is not inverted.
		at := r.Sub(sp).Add(dst.Min).Min
		for y := 0; y < r.Dy(); y++ {
			for x := 0; x < r.Dx(); x++ {
				c.buffer.SetBit(at.X+x, at.Y+y, packed.BitAt(x, y))
			}
		}
		return nil
	}

	draw.Draw(c.buffer, dst, src, sp, draw.Src)
	return nil
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	for i := range c.buffer.Pix {
		c.buffer.Pix[i] = 0
	}
}

// Bitmap returns the packed bitmap backing the canvas.
func (c *Canvas) Bitmap() *image1bit.HorizontalMSB {
	return c.buffer
}

// Header returns a Header emitting the current canvas contents under name.
func (c *Canvas) Header(name, source string) *Header {
	return &Header{
		Name:       name,
		Source:     source,
		SourceSize: c.rect.Size(),
		Bitmap:     c.buffer,
	}
}

// Halt stops the canvas from accepting further drawing.
func (c *Canvas) Halt() error {
	c.halted = true
	return nil
}

// String returns a string representation of the canvas.
func (c *Canvas) String() string {
	return fmt.Sprintf("monobitmap.Canvas{%dx%d}", c.rect.Dx(), c.rect.Dy())
}
