// Package monobitmap converts raster images into packed 1-bit monochrome
// bitmaps emitted as C headers for embedded displays.
//
// A conversion loads an image, resizes it to fixed dimensions, thresholds each
// pixel to a bit, packs 8 pixels per byte (MSB first) and writes a header with
// an include guard, two size macros and a byte array stored in PROGMEM.
//
// # Bitmap Characteristics
//
// - 1 bit per pixel, 8 horizontal pixels per byte
// - Most significant bit is the leftmost pixel of each group
// - Rows are padded to a whole byte, padding bits are always 0
// - Fixed threshold at luminance 128, no dithering
// - Size in bytes is height * ceil(width/8)
//
// # Polarity
//
// The invert flag selects which pixels are on:
//
//	invert=true:  luminance > 128  → 1 (white pixels visible)
//	invert=false: luminance <= 128 → 1 (black pixels visible)
//
// # Basic Usage
//
// Convert an image file into a header:
//
//	package main
//
//	import (
//		"log"
//		"os"
//
//		"github.com/flavioheleno/monobitmap"
//	)
//
//	func main() {
//		_, err := monobitmap.Run(monobitmap.Job{
//			Input:  "mountain-logo.png",
//			Output: "mountain_logo_bitmap.h",
//			Name:   "MOUNTAIN_LOGO",
//			Width:  220,
//			Height: 160,
//			Invert: true,
//		}, log.New(os.Stdout, "", 0))
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Step by Step
//
// The pieces used by Run are exported:
//
//	grid, size, err := monobitmap.Load("logo.png", 128, 64)
//	bm, err := monobitmap.Pack(grid, true)
//	err = monobitmap.WriteHeader("logo.h", &monobitmap.Header{
//		Name:       "LOGO",
//		Source:     "logo.png",
//		SourceSize: size,
//		Bitmap:     bm,
//	})
//
// Load accepts PNG, JPEG, GIF, BMP, TIFF and WebP input and resizes with a
// Lanczos filter.
//
// # Drawing
//
// Canvas implements the display.Drawer interface from periph.io. Anything that
// draws to a periph display can draw to a Canvas instead, and the result is
// emitted as a header:
//
//	c, _ := monobitmap.New(&monobitmap.Opts{W: 128, H: 64, Invert: true})
//	c.Draw(c.Bounds(), img, image.Point{})
//	monobitmap.WriteHeader("frame.h", c.Header("FRAME", "frame"))
//
// # Output Format
//
// For Name "LOGO" the header looks like:
//
//	#ifndef LOGO_BITMAP_H
//	#define LOGO_BITMAP_H
//
//	#include <pgmspace.h>
//
//	#define LOGO_WIDTH  128
//	#define LOGO_HEIGHT 64
//
//	const uint8_t logoBitmap[] PROGMEM = {
//	  0x00, 0xFF, ...
//	};
//
//	#endif // LOGO_BITMAP_H
//
// Values are written 16 per line with no trailing comma after the last one.
//
// # Errors
//
// Every error wraps one of ErrUsage, ErrImageNotFound, ErrImageLoad or
// ErrOutputWrite and can be matched with errors.Is.
package monobitmap
