package monobitmap

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/flavioheleno/monobitmap/image1bit"
)

// valuesPerLine is the number of hex values written per line of the array.
const valuesPerLine = 16

var identRE = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Header describes a C header holding one packed bitmap.
type Header struct {
	// Name is the macro prefix, e.g. MOUNTAIN_LOGO. It yields the include
	// guard NAME_BITMAP_H, the NAME_WIDTH/NAME_HEIGHT macros and the array
	// nameBitmap.
	Name string

	// Source is the file the bitmap was generated from. Only its base name
	// is written.
	Source string

	// SourceSize is the size of the source image before resizing.
	SourceSize image.Point

	Bitmap *image1bit.HorizontalMSB
}

// ValidateName checks that name can be used as a C macro prefix.
func ValidateName(name string) error {
	if !identRE.MatchString(name) {
		return fmt.Errorf("%w: %q is not a valid C identifier", ErrUsage, name)
	}
	return nil
}

// ArrayName returns the name of the emitted byte array.
func (h *Header) ArrayName() string {
	return strings.ToLower(h.Name) + "Bitmap"
}

// WriteTo writes the header text to w. It implements io.WriterTo.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	if err := ValidateName(h.Name); err != nil {
		return 0, err
	}
	if h.Bitmap == nil || len(h.Bitmap.Pix) == 0 {
		return 0, fmt.Errorf("%w: empty bitmap", ErrUsage)
	}

	var buf bytes.Buffer
	h.render(&buf)
	return buf.WriteTo(w)
}

func (h *Header) render(buf *bytes.Buffer) {
	bm := h.Bitmap
	width, height := bm.Rect.Dx(), bm.Rect.Dy()
	total := len(bm.Pix)
	white, black, inverted := 0, 1, "False"
	if bm.Invert {
		white, black, inverted = 1, 0, "True"
	}

	fmt.Fprintf(buf, "/*\n")
	fmt.Fprintf(buf, " * Auto-generated bitmap from %s\n", filepath.Base(h.Source))
	fmt.Fprintf(buf, " * Original size: %dx%d pixels\n", h.SourceSize.X, h.SourceSize.Y)
	fmt.Fprintf(buf, " * Output size: %dx%d pixels\n", width, height)
	fmt.Fprintf(buf, " * Format: 1-bit monochrome (MSB first, packed bytes)\n")
	fmt.Fprintf(buf, " * Memory: %d bytes in PROGMEM\n", total)
	fmt.Fprintf(buf, " * Inverted: %s (white=%d, black=%d)\n", inverted, white, black)
	fmt.Fprintf(buf, " */\n\n")
	fmt.Fprintf(buf, "#ifndef %s_BITMAP_H\n", h.Name)
	fmt.Fprintf(buf, "#define %s_BITMAP_H\n\n", h.Name)
	fmt.Fprintf(buf, "#include <pgmspace.h>\n\n")
	fmt.Fprintf(buf, "#define %s_WIDTH  %d\n", h.Name, width)
	fmt.Fprintf(buf, "#define %s_HEIGHT %d\n\n", h.Name, height)
	fmt.Fprintf(buf, "// 1-bit monochrome bitmap data\n")
	fmt.Fprintf(buf, "// White pixels = logo visible, Black pixels = transparent background\n")
	fmt.Fprintf(buf, "const uint8_t %s[] PROGMEM = {\n", h.ArrayName())

	for i := 0; i < total; i += valuesPerLine {
		end := i + valuesPerLine
		if end > total {
			end = total
		}
		buf.WriteString("  ")
		for j, b := range bm.Pix[i:end] {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "0x%02X", b)
		}
		// No comma after the final value
		if end < total {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}

	fmt.Fprintf(buf, "};\n\n")
	fmt.Fprintf(buf, "#endif // %s_BITMAP_H\n", h.Name)
}

// WriteHeader writes h to path, replacing any existing file.
// A file left behind by a failed write is not removed.
func WriteHeader(path string, h *Header) error {
	var buf bytes.Buffer
	if _, err := h.WriteTo(&buf); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if _, err := buf.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	return nil
}
