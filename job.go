package monobitmap

import (
	"fmt"
	"image"
	"io"
	"log"
	"path/filepath"

	"github.com/flavioheleno/monobitmap/image1bit"
)

// Job describes one image to header conversion.
type Job struct {
	Input  string // Source image path
	Output string // Header path, overwritten on success
	Name   string // Macro prefix, e.g. MOUNTAIN_LOGO
	Width  int    // Target width in pixels
	Height int    // Target height in pixels
	Invert bool   // White pixels become 1 when set
}

// Result summarizes a finished conversion.
type Result struct {
	SourceSize image.Point
	Bitmap     *image1bit.HorizontalMSB
}

// Validate checks the job parameters before any file is touched.
func (j Job) Validate() error {
	if j.Input == "" {
		return fmt.Errorf("%w: input path is required", ErrUsage)
	}
	if j.Output == "" {
		return fmt.Errorf("%w: output path is required", ErrUsage)
	}
	if err := ValidateName(j.Name); err != nil {
		return err
	}
	if j.Width <= 0 || j.Height <= 0 {
		return fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrUsage, j.Width, j.Height)
	}
	return nil
}

// Run loads, packs and emits the bitmap described by j. Progress is written
// to logger; a nil logger discards it.
func Run(j Job, logger *log.Logger) (*Result, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}

	logger.Printf("Converting %s to 1-bit bitmap...", j.Input)
	logger.Printf("Target size: %dx%d pixels", j.Width, j.Height)
	logger.Printf("Invert colors: %t", j.Invert)

	grid, size, err := Load(j.Input, j.Width, j.Height)
	if err != nil {
		return nil, err
	}
	logger.Printf("Original size: %dx%d", size.X, size.Y)
	logger.Printf("Resized to: %dx%d", j.Width, j.Height)

	bm, err := Pack(grid, j.Invert)
	if err != nil {
		return nil, err
	}
	logger.Printf("Generated %d bytes of bitmap data", len(bm.Pix))

	h := &Header{
		Name:       j.Name,
		Source:     j.Input,
		SourceSize: size,
		Bitmap:     bm,
	}
	if err := WriteHeader(j.Output, h); err != nil {
		return nil, err
	}

	logger.Printf("Success! Generated %s", j.Output)
	logger.Printf("Include in your code with: #include %q", filepath.Base(j.Output))
	return &Result{SourceSize: size, Bitmap: bm}, nil
}
