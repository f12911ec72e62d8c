package ipc

import (
	"os"
	"path/filepath"
)

const socketName = "slideshow.sock"

// SocketPath is where the running slideshow listens, $XDG_RUNTIME_DIR or the temp dir.
func SocketPath() string {
	sockDir := os.Getenv("XDG_RUNTIME_DIR")
	if sockDir == "" {
		sockDir = os.TempDir()
	}
	return filepath.Join(sockDir, socketName)
}
