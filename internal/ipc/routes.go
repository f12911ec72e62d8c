package ipc

import (
	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, c Controller, socket string) {
	e.GET("/status", statusHandler(c, socket))
	e.POST("/command", commandHandler(c))
	e.POST("/next", shortcutHandler(c, CommandNext))
	e.POST("/prev", shortcutHandler(c, CommandPrev))
	e.POST("/stop", shortcutHandler(c, CommandStop))
}
