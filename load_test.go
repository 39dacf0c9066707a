package monobitmap

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func writeImage(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	switch filepath.Ext(path) {
	case ".bmp":
		require.NoError(t, bmp.Encode(f, img))
	default:
		require.NoError(t, png.Encode(f, img))
	}
}

func uniformRGBA(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoadResizes(t *testing.T) {
	for _, ext := range []string{".png", ".bmp"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "white"+ext)
			writeImage(t, path, uniformRGBA(40, 20, color.White))

			grid, size, err := Load(path, 12, 5)
			require.NoError(t, err)
			assert.Equal(t, image.Point{X: 40, Y: 20}, size)
			assert.Equal(t, image.Rect(0, 0, 12, 5), grid.Bounds())
			for i, y := range grid.Pix {
				assert.GreaterOrEqual(t, y, uint8(250), "Pix[%d]", i)
			}
		})
	}
}

func TestLoadGrayscale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "red.png")
	writeImage(t, path, uniformRGBA(8, 8, color.RGBA{R: 255, A: 255}))

	grid, _, err := Load(path, 8, 8)
	require.NoError(t, err)

	// Luma of pure red is about 0.299 * 255
	for i, y := range grid.Pix {
		assert.InDelta(t, 76, int(y), 2, "Pix[%d]", i)
	}
}

func TestLoadDropsAlpha(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 1))
	for x, a := range []uint8{0, 0, 100, 100} {
		img.SetNRGBA(x, 0, color.NRGBA{R: 255, G: 255, B: 255, A: a})
	}
	writeImage(t, path, img)

	grid, _, err := Load(path, 4, 1)
	require.NoError(t, err)
	for i, y := range grid.Pix {
		assert.GreaterOrEqual(t, y, uint8(250), "Pix[%d]", i)
	}

	bm, err := Pack(grid, true)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xF0}, bm.Pix)
}

func TestLoadNotFound(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.png"), 8, 8)
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestLoadUndecodable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0644))

	_, _, err := Load(path, 8, 8)
	assert.ErrorIs(t, err, ErrImageLoad)
}

func TestLoadDirectory(t *testing.T) {
	_, _, err := Load(t.TempDir(), 8, 8)
	assert.ErrorIs(t, err, ErrImageLoad)
}

func TestLoadInvalidSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "white.png")
	writeImage(t, path, uniformRGBA(4, 4, color.White))

	_, _, err := Load(path, 0, 4)
	assert.ErrorIs(t, err, ErrUsage)

	_, _, err = Load(path, 4, -1)
	assert.ErrorIs(t, err, ErrUsage)
}

func TestResizeKeepsSize(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{255, 0, 0, 255}

	dst := Resize(src, 2, 2)
	assert.Equal(t, src.Pix, dst.Pix)
}
