package monobitmap

import "errors"

// Every failure returned by this package wraps one of these.
var (
	ErrUsage         = errors.New("monobitmap: usage error")
	ErrImageNotFound = errors.New("monobitmap: image not found")
	ErrImageLoad     = errors.New("monobitmap: error loading image")
	ErrOutputWrite   = errors.New("monobitmap: error writing output file")
)
