package picdir

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// XDGProvider asks the desktop environment through xdg-user-dir, which knows about
// localized folder names.
type XDGProvider struct {
	// Command defaults to xdg-user-dir.
	Command string
	Timeout time.Duration
}

func (p XDGProvider) Name() string {
	return "xdg-user-dir"
}

func (p XDGProvider) PicturesDir() (string, bool) {
	command := p.Command
	if command == "" {
		command = "xdg-user-dir"
	}
	timeout := p.Timeout
	if timeout == 0 {
		timeout = 2 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, command, "PICTURES").Output()
	if err != nil {
		return "", false
	}

	dir := strings.TrimSpace(string(out))
	if dir == "" {
		return "", false
	}
	return dir, true
}
