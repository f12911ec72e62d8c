package imageset

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// SupportedExtensions lists the file extensions picked up from the image directory, lower case.
var SupportedExtensions = []string{
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".pcx", ".tga",
	".tif", ".tiff", ".lbm", ".pbm", ".pgm", ".ppm", ".xpm",
}

// Sequence is the shuffled list of image paths shown by the slideshow. It is fixed for the
// lifetime of a run.
type Sequence []string

// IsSupported reports whether name carries one of the supported extensions, ignoring case.
func IsSupported(name string) bool {
	return slices.Contains(SupportedExtensions, strings.ToLower(filepath.Ext(name)))
}

// Resolve lists dir (not recursively), keeps the files with a supported extension and
// returns them in a random order. A nil rng uses the global source.
func Resolve(dir string, rng *rand.Rand) (Sequence, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &DirectoryNotFoundError{Dir: dir}
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, &DirectoryNotFoundError{Dir: dir}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	images := make(Sequence, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if IsSupported(entry.Name()) {
			images = append(images, filepath.Join(dir, entry.Name()))
		}
	}

	if len(images) == 0 {
		return nil, &NoImagesFoundError{Dir: dir, Extensions: SupportedExtensions}
	}

	images.Shuffle(rng)
	return images, nil
}

// Shuffle permutes the sequence in place with a Fisher-Yates shuffle.
func (s Sequence) Shuffle(rng *rand.Rand) {
	swap := func(i, j int) {
		s[i], s[j] = s[j], s[i]
	}
	if rng == nil {
		rand.Shuffle(len(s), swap)
		return
	}
	rng.Shuffle(len(s), swap)
}
