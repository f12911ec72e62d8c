package ipc

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/matjam/slideshow/internal/middleware"
)

// Server is the control socket of a running slideshow.
type Server struct {
	echo     *echo.Echo
	listener net.Listener
	path     string
}

// Listen removes a stale socket at path and starts listening on it.
func Listen(path string, c Controller) (*Server, error) {
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}

	listener, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Listener = listener

	e.Use(middleware.CharmLog())

	RegisterRoutes(e, c, path)

	return &Server{echo: e, listener: listener, path: path}, nil
}

// Serve blocks until the server is shut down. It runs echo's own http.Server, which is
// the one echo.Shutdown stops.
func (s *Server) Serve() error {
	err := s.echo.StartServer(s.echo.Server)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Close stops the server and removes the socket file.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	_ = os.Remove(s.path)
	return err
}
