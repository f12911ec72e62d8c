package slideshow

import (
	"fmt"
	"sync"
	"time"

	"github.com/matjam/slideshow/internal/ipc"
	"github.com/matjam/slideshow/internal/types"
)

// Remote lets the control socket steer a running engine. Commands become events injected
// into the display's wait; the engine reports what it shows through Shown.
type Remote struct {
	mu     sync.Mutex
	status ipc.Status
	inject func(types.Event)
}

func NewRemote(dir string, count int, autoAdvance time.Duration, inject func(types.Event)) *Remote {
	return &Remote{
		status: ipc.Status{
			Directory:   dir,
			Count:       count,
			AutoAdvance: int(autoAdvance / time.Second),
		},
		inject: inject,
	}
}

func (r *Remote) Status() ipc.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

// Shown records the image on screen. It matches Options.OnShow.
func (r *Remote) Shown(index int, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status.Index = index
	r.status.CurrentImage = path
}

func (r *Remote) EnqueueCommand(cmd ipc.Command) error {
	var t types.EventType
	switch cmd.Type {
	case ipc.CommandNext:
		t = types.EventNext
	case ipc.CommandPrev:
		t = types.EventPrev
	case ipc.CommandStop:
		t = types.EventQuit
	default:
		return fmt.Errorf("unknown command %q", cmd.Type)
	}

	r.inject(types.Event{Type: t, Source: types.SourceRemote})
	return nil
}
