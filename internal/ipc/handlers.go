package ipc

import (
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/matjam/slideshow"
)

// GET /status
func statusHandler(c Controller, socket string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSONPretty(http.StatusOK, StatusResponse{
			Status:    "ok",
			Message:   "slideshow is running",
			Version:   strings.Trim(slideshow.Version, "\n\r "),
			PID:       os.Getpid(),
			Socket:    socket,
			Slideshow: c.Status(),
		}, "  ")
	}
}

// POST /command
func commandHandler(c Controller) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var cmd Command
		if err := ctx.Bind(&cmd); err != nil {
			return ctx.JSON(http.StatusBadRequest, Response{Status: "error", Message: "invalid command"})
		}
		return enqueue(ctx, c, cmd)
	}
}

// POST /next, /prev and /stop
func shortcutHandler(c Controller, t CommandType) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return enqueue(ctx, c, Command{Type: t})
	}
}

func enqueue(ctx echo.Context, c Controller, cmd Command) error {
	if cmd.Type == CommandStatus {
		return ctx.JSON(http.StatusOK, Response{Status: "ok", Data: c.Status()})
	}
	if err := c.EnqueueCommand(cmd); err != nil {
		return ctx.JSON(http.StatusBadRequest, Response{Status: "error", Message: err.Error()})
	}
	return ctx.JSON(http.StatusOK, Response{Status: "ok", Message: string(cmd.Type)})
}
