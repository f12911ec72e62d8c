package ipc

type CommandType string

const (
	CommandStop   CommandType = "stop"
	CommandNext   CommandType = "next"
	CommandPrev   CommandType = "prev"
	CommandStatus CommandType = "status"
)

type Command struct {
	Type CommandType `json:"type"`
}

// Status is the slideshow's view of itself as reported over the socket.
type Status struct {
	Directory    string `json:"directory"`
	CurrentImage string `json:"current_image"`
	Index        int    `json:"index"`
	Count        int    `json:"count"`
	AutoAdvance  int    `json:"auto_advance_seconds"`
}

// Controller is what the socket server drives. EnqueueCommand must be safe to call from
// the server goroutine.
type Controller interface {
	Status() Status
	EnqueueCommand(Command) error
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type StatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Version   string `json:"version"`
	PID       int    `json:"pid"`
	Socket    string `json:"socket"`
	Slideshow Status `json:"slideshow"`
}
