package display

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/matjam/slideshow/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestKeyEvent(t *testing.T) {
	tests := []struct {
		name   string
		key    glfw.Key
		action glfw.Action
		want   types.EventType
		ok     bool
	}{
		{"right", glfw.KeyRight, glfw.Press, types.EventNext, true},
		{"right held", glfw.KeyRight, glfw.Repeat, types.EventNext, true},
		{"left", glfw.KeyLeft, glfw.Press, types.EventPrev, true},
		{"escape", glfw.KeyEscape, glfw.Press, types.EventQuit, true},
		{"q", glfw.KeyQ, glfw.Press, types.EventQuit, true},
		{"escape held", glfw.KeyEscape, glfw.Repeat, types.EventOther, false},
		{"space", glfw.KeySpace, glfw.Press, types.EventOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := keyEvent(tt.key, tt.action)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, ev.Type)
				assert.Equal(t, types.SourceKeyboard, ev.Source)
			}
		})
	}
}

func TestQueueIsFIFO(t *testing.T) {
	w := &Window{}
	w.push(types.Event{Type: types.EventNext})
	w.push(types.Event{Type: types.EventQuit})

	ev, ok := w.pop()
	assert.True(t, ok)
	assert.Equal(t, types.EventNext, ev.Type)

	ev, ok = w.pop()
	assert.True(t, ok)
	assert.Equal(t, types.EventQuit, ev.Type)

	_, ok = w.pop()
	assert.False(t, ok)
}

func TestInjectAfterCloseIsDropped(t *testing.T) {
	w := &Window{closed: true}
	w.Inject(types.Event{Type: types.EventNext})

	_, ok := w.pop()
	assert.False(t, ok)
}
