package types

// EventType tags what woke the slideshow out of its wait.
type EventType int

const (
	EventOther   EventType = iota // anything the engine does not act on
	EventQuit                     // Escape, Q, window close or remote stop
	EventNext                     // Right arrow or remote next
	EventPrev                     // Left arrow or remote prev
	EventTimeout                  // the wait deadline passed with nothing queued
	EventRedraw                   // the frame has to be rebuilt, e.g. the screen size changed
)

func (t EventType) String() string {
	switch t {
	case EventQuit:
		return "quit"
	case EventNext:
		return "next"
	case EventPrev:
		return "prev"
	case EventTimeout:
		return "timeout"
	case EventRedraw:
		return "redraw"
	default:
		return "other"
	}
}

type EventSource string

const (
	SourceKeyboard EventSource = "keyboard"
	SourceWindow   EventSource = "window"
	SourceRemote   EventSource = "remote"
)

type Event struct {
	Type   EventType
	Source EventSource
}
