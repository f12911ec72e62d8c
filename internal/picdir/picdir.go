// Package picdir works out which directory the slideshow should read images from when the
// user has not named one.
package picdir

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// HintProvider asks one platform-specific source where the user keeps pictures. A provider
// that cannot answer returns ok == false; it never fails the lookup.
type HintProvider interface {
	Name() string
	PicturesDir() (dir string, ok bool)
}

// CommonNames are the localized folder names searched for under the home directory, in order.
var CommonNames = []string{
	"Pictures", "Bilder", "Images", "Imágenes", "Obrazy", "Изображения",
	"My Pictures", "Mina bilder", "Mes images", "Meine Bilder",
}

// Finder runs the fallback chain. The zero value is not usable, use New.
type Finder struct {
	Home      string
	Providers []HintProvider
}

// New returns a Finder for the current user with the providers for this platform.
func New() *Finder {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return &Finder{
		Home:      home,
		Providers: platformProviders(home),
	}
}

// Find returns the image directory. An explicit directory wins if it exists, then each
// platform provider in order, then the first existing common folder under the home directory.
// If nothing matches it returns home/Pictures without checking that it exists.
func (f *Finder) Find(explicit string) string {
	if explicit != "" {
		explicit = CanonicalPath(explicit, f.Home)
		if exists(explicit) {
			return explicit
		}
		log.Warnf("Configured directory %s does not exist, looking elsewhere", explicit)
	}

	for _, p := range f.Providers {
		if dir, ok := p.PicturesDir(); ok && exists(dir) {
			log.Debugf("Pictures directory from %s: %s", p.Name(), dir)
			return dir
		}
		log.Debugf("No pictures directory from %s", p.Name())
	}

	for _, name := range CommonNames {
		dir := filepath.Join(f.Home, name)
		if exists(dir) {
			return dir
		}
	}

	return filepath.Join(f.Home, "Pictures")
}

// CanonicalPath expands a leading ~ to home.
func CanonicalPath(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

func exists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// SubdirProvider answers with a fixed path below the home directory.
type SubdirProvider struct {
	Home   string
	Subdir string
}

func (p SubdirProvider) Name() string {
	return "home subdirectory"
}

func (p SubdirProvider) PicturesDir() (string, bool) {
	if p.Home == "" {
		return "", false
	}
	return filepath.Join(p.Home, p.Subdir), true
}
