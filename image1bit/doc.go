// Package image1bit provides a 1-bit monochrome image format for embedded display bitmaps.
//
// Pixels are stored row-major with 8 horizontal pixels per byte. The most
// significant bit holds the leftmost pixel of each group. Rows are padded to a
// whole byte and padding bits are always 0.
//
// Memory layout example for a 12-pixel row:
//
//	Pixels: 0 1 2 3 4 5 6 7 | 8 9 10 11
//	Bits:   1 0 1 1 0 0 0 1 | 1 1 0  1  (0 0 0 0 padding)
//	Bytes:  0xB1            | 0xD0
//
// Pixels are converted to bits by thresholding their 8-bit luminance at 128.
// The polarity is chosen by the invert flag:
//
//	invert=true:  luminance > 128 sets the bit (white pixels are on)
//	invert=false: luminance <= 128 sets the bit (black pixels are on)
//
// This package provides:
//
// - Bit: A color type representing one bit (On or Off)
// - ThresholdModel: A color model converting standard Go colors to Bit
// - HorizontalMSB: An image.Image implementation holding the packed bytes
//
// Example usage:
//
//	// Create a 220x160 image where white pixels are on
//	img := image1bit.NewHorizontalMSB(image.Rect(0, 0, 220, 160), true)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), src, image.Point{}, draw.Src)
//
//	// Packed bytes, ready to be emitted
//	_ = img.Pix
package image1bit
