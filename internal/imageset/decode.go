package imageset

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrNoDecoder is returned for extensions that are collected into the sequence but
// have no decoder linked in (pcx, lbm, xpm). The engine skips them like any other
// undecodable file.
var ErrNoDecoder = errors.New("no decoder for this format")

type decodeFunc func(r io.Reader) (image.Image, error)

func decodeNetpbm(r io.Reader) (image.Image, error) {
	return netpbm.Decode(r, nil)
}

// decoders picks a decoder by extension. image.Decode is never used: the tga package
// registers an empty magic string, which would claim every file in the sniff.
var decoders = map[string]decodeFunc{
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".png":  png.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".tga":  tga.Decode,
	".pbm":  decodeNetpbm,
	".pgm":  decodeNetpbm,
	".ppm":  decodeNetpbm,
}

// Load reads and decodes a single image. Any failure comes back as a *DecodeError.
func Load(path string) (image.Image, error) {
	decode, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, &DecodeError{Path: path, Err: ErrNoDecoder}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, err := decode(bufio.NewReader(f))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if img.Bounds().Empty() {
		return nil, &DecodeError{Path: path, Err: fmt.Errorf("image has no pixels")}
	}
	return img, nil
}
