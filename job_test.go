package monobitmap

import (
	"bytes"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobValidate(t *testing.T) {
	valid := Job{Input: "in.png", Output: "out.h", Name: "LOGO", Width: 8, Height: 8, Invert: true}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Job)
	}{
		{"no input", func(j *Job) { j.Input = "" }},
		{"no output", func(j *Job) { j.Output = "" }},
		{"bad name", func(j *Job) { j.Name = "my logo" }},
		{"zero width", func(j *Job) { j.Width = 0 }},
		{"negative height", func(j *Job) { j.Height = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := valid
			tt.mutate(&j)
			assert.ErrorIs(t, j.Validate(), ErrUsage)
		})
	}
}

func TestRunDiagonal(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "test.png")
	output := filepath.Join(dir, "test_bitmap.h")

	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.Pix = []uint8{255, 0, 0, 255}
	writeImage(t, input, src)

	var logs bytes.Buffer
	res, err := Run(Job{Input: input, Output: output, Name: "TEST", Width: 2, Height: 2, Invert: true}, log.New(&logs, "", 0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x80, 0x40}, res.Bitmap.Pix)
	assert.Equal(t, image.Point{X: 2, Y: 2}, res.SourceSize)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(diagonalHeader, "Original size: 4x4", "Original size: 2x2", 1), string(data))

	for _, line := range []string{
		"Target size: 2x2 pixels",
		"Invert colors: true",
		"Original size: 2x2",
		"Generated 2 bytes of bitmap data",
		`Include in your code with: #include "test_bitmap.h"`,
	} {
		assert.Contains(t, logs.String(), line)
	}
}

func TestRunRepeatable(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "gradient.png")

	src := image.NewGray(image.Rect(0, 0, 64, 32))
	for i := range src.Pix {
		src.Pix[i] = uint8(i % 64 * 4)
	}
	writeImage(t, input, src)

	job := Job{Input: input, Output: filepath.Join(dir, "a.h"), Name: "GRADIENT", Width: 20, Height: 10, Invert: true}
	_, err := Run(job, nil)
	require.NoError(t, err)

	job.Output = filepath.Join(dir, "b.h")
	_, err = Run(job, nil)
	require.NoError(t, err)

	a, err := os.ReadFile(filepath.Join(dir, "a.h"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "b.h"))
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Contains(t, string(a), " * Memory: 30 bytes in PROGMEM\n")
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.png")
	writeImage(t, input, image.NewGray(image.Rect(0, 0, 4, 4)))

	tests := []struct {
		name string
		job  Job
		want error
	}{
		{"invalid job", Job{Input: input, Output: filepath.Join(dir, "x.h"), Name: "X", Width: 0, Height: 4}, ErrUsage},
		{"missing input", Job{Input: filepath.Join(dir, "nope.png"), Output: filepath.Join(dir, "x.h"), Name: "X", Width: 4, Height: 4}, ErrImageNotFound},
		{"unwritable output", Job{Input: input, Output: filepath.Join(dir, "no", "x.h"), Name: "X", Width: 4, Height: 4}, ErrOutputWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(tt.job, nil)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
