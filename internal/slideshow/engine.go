// Package slideshow runs the display and advance loop: show the current image, wait for a
// key, a remote command or the auto-advance deadline, move the index, repeat.
package slideshow

import (
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/slideshow/internal/imageset"
	"github.com/matjam/slideshow/internal/scaling"
	"github.com/matjam/slideshow/internal/types"
)

var (
	ErrEmptySequence = errors.New("no images to show")

	// ErrNoDisplayableImages is returned by Run when every image in the sequence failed to
	// decode one after another.
	ErrNoDisplayableImages = errors.New("none of the images could be decoded")
)

// Display is the fullscreen surface the engine draws on and receives input from.
type Display interface {
	Size() (width, height int)
	Show(frame image.Image) error
	// WaitEvent blocks until something happens or timeout passes. A negative timeout
	// blocks until an event arrives, a zero timeout only collects input already queued.
	WaitEvent(timeout time.Duration) types.Event
	Close()
}

// State is the mutable part of a run.
type State struct {
	Index       int
	LastAdvance time.Time
	Running     bool
}

type Options struct {
	// AutoAdvance is the time between automatic advances, zero disables them.
	AutoAdvance time.Duration
	Clock       clockwork.Clock
	// Load decodes one image, imageset.Load by default.
	Load func(path string) (image.Image, error)
	// OnShow is called after each image is put on screen.
	OnShow func(index int, path string)
}

type Engine struct {
	images  imageset.Sequence
	display Display
	opts    Options
	state   State
}

func New(images imageset.Sequence, display Display, opts Options) (*Engine, error) {
	if len(images) == 0 {
		return nil, ErrEmptySequence
	}
	if opts.AutoAdvance < 0 {
		opts.AutoAdvance = 0
	}
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Load == nil {
		opts.Load = imageset.Load
	}

	return &Engine{
		images:  images,
		display: display,
		opts:    opts,
	}, nil
}

// State returns a copy of the current run state.
func (e *Engine) State() State {
	return e.state
}

// Run shows images until a quit event arrives. The display is closed on return.
func (e *Engine) Run() error {
	defer e.display.Close()

	e.state = State{
		Index:       0,
		LastAdvance: e.opts.Clock.Now(),
		Running:     true,
	}

	log.Info("Starting slideshow...")

	for e.state.Running {
		if err := e.render(); err != nil {
			return err
		}
		e.wait()
	}

	log.Info("Slideshow stopped.")
	return nil
}

// render shows the image at the current index. Images that fail to decode are skipped by
// moving forward; after a full pass of failures it gives up.
func (e *Engine) render() error {
	width, height := e.display.Size()

	for failures := 0; failures < len(e.images); failures++ {
		path := e.images[e.state.Index]

		img, err := e.opts.Load(path)
		if err != nil {
			log.Warnf("%v", err)
			e.state.Index = e.step(1)
			continue
		}

		log.Debugf("showing %v (%vx%v)", path, img.Bounds().Dx(), img.Bounds().Dy())
		if err := e.display.Show(scaling.Fit(img, width, height)); err != nil {
			log.Errorf("Failed to show %s: %v", path, err)
		}
		if e.opts.OnShow != nil {
			e.opts.OnShow(e.state.Index, path)
		}
		return nil
	}

	return ErrNoDisplayableImages
}

// wait returns once the screen needs to be drawn again or the run is over. Queued input
// always wins over an expired deadline, so a render slower than the interval cannot
// starve the keyboard.
func (e *Engine) wait() {
	for {
		timeout := time.Duration(-1)
		expired := false
		if e.opts.AutoAdvance > 0 {
			timeout = e.opts.AutoAdvance - e.opts.Clock.Since(e.state.LastAdvance)
			if timeout <= 0 {
				timeout = 0
				expired = true
			}
		}

		ev := e.display.WaitEvent(timeout)
		switch ev.Type {
		case types.EventQuit:
			log.Infof("Quit requested (%s)", ev.Source)
			e.state.Running = false
			return
		case types.EventNext:
			e.advance(1)
			return
		case types.EventPrev:
			e.advance(-1)
			return
		case types.EventRedraw:
			return
		}

		if expired {
			e.advance(1)
			return
		}
		// timeouts go round the loop so the deadline is checked against the clock
	}
}

func (e *Engine) advance(delta int) {
	e.state.Index = e.step(delta)
	e.state.LastAdvance = e.opts.Clock.Now()
}

// step returns the index delta away from the current one, wrapping in both directions.
func (e *Engine) step(delta int) int {
	n := len(e.images)
	return ((e.state.Index+delta)%n + n) % n
}
