// Package display is the fullscreen glfw window the slideshow draws on.
package display

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/matjam/slideshow/internal/types"
)

func init() {
	// glfw and the GL context must stay on the main thread
	runtime.LockOSThread()
}

// Window is a fullscreen window on the primary monitor. Everything except Inject must be
// called from the main goroutine.
type Window struct {
	win *glfw.Window
	tex uint32
	w   int // texture size
	h   int

	mu     sync.Mutex
	queue  []types.Event
	closed bool
}

// New opens a fullscreen window at the primary monitor's current resolution.
func New(title string) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	monitor := glfw.GetPrimaryMonitor()
	if monitor == nil {
		glfw.Terminate()
		return nil, fmt.Errorf("no monitor found")
	}
	vidMode := monitor.GetVideoMode()

	// match the desktop mode so the monitor does not switch resolution
	glfw.WindowHint(glfw.RedBits, vidMode.RedBits)
	glfw.WindowHint(glfw.GreenBits, vidMode.GreenBits)
	glfw.WindowHint(glfw.BlueBits, vidMode.BlueBits)
	glfw.WindowHint(glfw.RefreshRate, vidMode.RefreshRate)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)

	win, err := glfw.CreateWindow(vidMode.Width, vidMode.Height, title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window failed: %w", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init failed: %w", err)
	}
	glfw.SwapInterval(1)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)

	w := &Window{win: win}
	win.SetKeyCallback(w.onKey)
	win.SetCloseCallback(w.onClose)
	win.SetRefreshCallback(w.onRefresh)
	win.SetFramebufferSizeCallback(w.onResize)

	log.Debugf("Opened %dx%d fullscreen window at %dHz", vidMode.Width, vidMode.Height, vidMode.RefreshRate)
	return w, nil
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// Show replaces the frame on screen.
func (w *Window) Show(frame image.Image) error {
	rgba, ok := frame.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) || rgba.Stride != 4*rgba.Rect.Dx() {
		rgba = image.NewRGBA(image.Rect(0, 0, frame.Bounds().Dx(), frame.Bounds().Dy()))
		draw.Draw(rgba, rgba.Bounds(), frame, frame.Bounds().Min, draw.Src)
	}

	if w.tex == 0 {
		gl.GenTextures(1, &w.tex)
	}
	gl.BindTexture(gl.TEXTURE_2D, w.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	w.w, w.h = rgba.Rect.Dx(), rgba.Rect.Dy()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		int32(w.w), int32(w.h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	if glErr := gl.GetError(); glErr != gl.NO_ERROR {
		return fmt.Errorf("texture upload failed: gl error 0x%x", glErr)
	}

	w.draw()
	return nil
}

func (w *Window) draw() {
	fw, fh := w.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if w.tex != 0 {
		gl.Enable(gl.TEXTURE_2D)
		gl.BindTexture(gl.TEXTURE_2D, w.tex)
		gl.Color4f(1, 1, 1, 1)
		drawQuad()
		gl.Disable(gl.TEXTURE_2D)
	}

	w.win.SwapBuffers()
}

// drawQuad covers the viewport with the bound texture, top row of the image at the top.
func drawQuad() {
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(-1, -1)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(1, -1)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(1, 1)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(-1, 1)
	gl.End()
}

// WaitEvent blocks in glfw until input arrives, Inject is called or timeout passes.
// A negative timeout waits without limit, a zero timeout only pumps what is pending.
func (w *Window) WaitEvent(timeout time.Duration) types.Event {
	if ev, ok := w.pop(); ok {
		return ev
	}

	switch {
	case timeout < 0:
		glfw.WaitEvents()
	case timeout == 0:
		glfw.PollEvents()
	default:
		glfw.WaitEventsTimeout(timeout.Seconds())
	}

	if ev, ok := w.pop(); ok {
		return ev
	}
	if timeout >= 0 {
		return types.Event{Type: types.EventTimeout}
	}
	return types.Event{Type: types.EventOther, Source: types.SourceWindow}
}

// Inject queues ev for the next WaitEvent and wakes it. Safe from any goroutine.
func (w *Window) Inject(ev types.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	w.queue = append(w.queue, ev)
	glfw.PostEmptyEvent()
}

func (w *Window) push(ev types.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.queue = append(w.queue, ev)
}

func (w *Window) pop() (types.Event, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.queue) == 0 {
		return types.Event{}, false
	}
	ev := w.queue[0]
	w.queue = w.queue[1:]
	return ev, true
}

func (w *Window) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	if ev, ok := keyEvent(key, action); ok {
		w.push(ev)
	}
}

// keyEvent maps a key press to an engine event. Holding an arrow key repeats it; quit keys
// only act on the first press.
func keyEvent(key glfw.Key, action glfw.Action) (types.Event, bool) {
	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		if action == glfw.Press {
			return types.Event{Type: types.EventQuit, Source: types.SourceKeyboard}, true
		}
	case glfw.KeyRight:
		return types.Event{Type: types.EventNext, Source: types.SourceKeyboard}, true
	case glfw.KeyLeft:
		return types.Event{Type: types.EventPrev, Source: types.SourceKeyboard}, true
	}
	return types.Event{}, false
}

func (w *Window) onClose(_ *glfw.Window) {
	w.push(types.Event{Type: types.EventQuit, Source: types.SourceWindow})
}

// onRefresh redraws the last frame when the compositor asks, no decode needed.
func (w *Window) onRefresh(_ *glfw.Window) {
	w.draw()
}

// onResize asks the engine to rebuild the frame for the new size.
func (w *Window) onResize(_ *glfw.Window, width, height int) {
	if width == w.w && height == w.h {
		return
	}
	w.push(types.Event{Type: types.EventRedraw, Source: types.SourceWindow})
}

// Close releases the texture, the window and glfw.
func (w *Window) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()

	if w.tex != 0 {
		gl.DeleteTextures(1, &w.tex)
		w.tex = 0
	}
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
