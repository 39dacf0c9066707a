package monobitmap

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"

	// Decoders for the formats accepted by Load.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/gift"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes the image at path, converts it to grayscale and resizes it to
// width x height with Lanczos resampling. It returns the resulting intensity
// grid together with the size of the image as stored on disk.
func Load(path string, width, height int) (*image.Gray, image.Point, error) {
	if width <= 0 || height <= 0 {
		return nil, image.Point{}, fmt.Errorf("%w: width and height must be positive, got %dx%d", ErrUsage, width, height)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, image.Point{}, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, image.Point{}, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, image.Point{}, fmt.Errorf("%w: %s: %v", ErrImageLoad, path, err)
	}

	return Resize(src, width, height), src.Bounds().Size(), nil
}

// Resize converts src to grayscale and scales it to width x height using
// Lanczos resampling. Alpha is discarded before the conversion, so a
// transparent white pixel reads as white.
func Resize(src image.Image, width, height int) *image.Gray {
	g := gift.New(
		gift.ColorFunc(dropAlpha),
		gift.Grayscale(),
		gift.Resize(width, height, gift.LanczosResampling),
	)
	dst := image.NewGray(g.Bounds(src.Bounds()))
	g.Draw(dst, src)
	return dst
}

func dropAlpha(r, g, b, a float32) (float32, float32, float32, float32) {
	return r, g, b, 1
}
