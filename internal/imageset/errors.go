package imageset

import (
	"fmt"
	"strings"
)

// DirectoryNotFoundError is returned when the image directory does not exist.
type DirectoryNotFoundError struct {
	Dir string
}

func (e *DirectoryNotFoundError) Error() string {
	return fmt.Sprintf("directory %s does not exist", e.Dir)
}

// NoImagesFoundError is returned when the directory exists but nothing in it has a
// supported extension.
type NoImagesFoundError struct {
	Dir        string
	Extensions []string
}

func (e *NoImagesFoundError) Error() string {
	return fmt.Sprintf("no supported images found in %s (supported formats: %s)",
		e.Dir, strings.Join(e.Extensions, ", "))
}

// DecodeError wraps a failure to read or decode a single image file.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("error loading image %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
