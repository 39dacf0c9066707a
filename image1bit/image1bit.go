// Package image1bit provides a 1-bit monochrome image format packed MSB first.
//
// Each byte holds 8 horizontal pixels. The most significant bit represents the
// leftmost pixel. This package provides the Bit color type and the HorizontalMSB
// image implementation.
package image1bit

import (
	"image"
	"image/color"
)

// Threshold is the luminance cutoff separating set and unset bits.
const Threshold = 128

// IsSet reports whether a pixel of luminance y maps to a set bit.
func IsSet(y uint8, invert bool) bool {
	if invert {
		return y > Threshold
	}
	return y <= Threshold
}

// Bit represents a 1-bit color.
// On always renders white regardless of the polarity it was thresholded
// with; use HorizontalMSB.Gray for a rendering that follows the source.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to standard RGBA. On is rendered white.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// ThresholdModel converts colors to Bit by thresholding their luminance.
type ThresholdModel struct {
	Invert bool
}

// Convert implements color.Model.
func (m ThresholdModel) Convert(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	y := color.GrayModel.Convert(c).(color.Gray).Y
	return Bit(IsSet(y, m.Invert))
}

// HorizontalMSB is a 1-bit image where 8 horizontal pixels are packed per byte.
// The most significant bit is the leftmost pixel.
type HorizontalMSB struct {
	Pix    []byte          // Pixel data (8 pixels per byte, rows padded to a byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
	Invert bool            // Polarity used when converting colors
}

// NewHorizontalMSB creates a new HorizontalMSB image with the specified bounds.
func NewHorizontalMSB(r image.Rectangle, invert bool) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalMSB{Rect: r, Invert: invert}
	}

	stride := (w + 7) / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
		Invert: invert,
	}
}

// ColorModel returns the color model of the image.
func (p *HorizontalMSB) ColorModel() color.Model {
	return ThresholdModel{Invert: p.Invert}
}

// Bounds returns the image bounds.
func (p *HorizontalMSB) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *HorizontalMSB) At(x, y int) color.Color {
	return p.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y).
func (p *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Off
	}
	offset, mask := p.pixOffset(x, y)
	return p.Pix[offset]&mask != 0
}

// Set sets the color of the pixel at (x, y).
func (p *HorizontalMSB) Set(x, y int, c color.Color) {
	p.SetBit(x, y, p.ColorModel().Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y).
// This is faster than Set() as it doesn't require color conversion.
func (p *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	offset, mask := p.pixOffset(x, y)
	if b {
		p.Pix[offset] |= mask
	} else {
		p.Pix[offset] &^= mask
	}
}

// Gray renders the bitmap with the source polarity: On pixels are white when
// Invert is set and black otherwise.
func (p *HorizontalMSB) Gray() *image.Gray {
	on, off := uint8(0xFF), uint8(0)
	if !p.Invert {
		on, off = off, on
	}
	g := image.NewGray(p.Rect)
	for y := p.Rect.Min.Y; y < p.Rect.Max.Y; y++ {
		for x := p.Rect.Min.X; x < p.Rect.Max.X; x++ {
			v := off
			if p.BitAt(x, y) {
				v = on
			}
			g.Pix[g.PixOffset(x, y)] = v
		}
	}
	return g
}

// pixOffset returns the byte offset and bit mask for the pixel at (x, y).
// Column 0 of each byte group maps to bit 7.
func (p *HorizontalMSB) pixOffset(x, y int) (offset int, mask byte) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/8
	mask = 0x80 >> uint(dx%8)
	return
}
