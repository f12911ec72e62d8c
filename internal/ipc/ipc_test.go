package ipc

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	mu       sync.Mutex
	status   Status
	commands []Command
}

func (f *fakeController) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

func (f *fakeController) EnqueueCommand(cmd Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch cmd.Type {
	case CommandNext, CommandPrev, CommandStop:
		f.commands = append(f.commands, cmd)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd.Type)
}

func (f *fakeController) received() []Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Command(nil), f.commands...)
}

func newTestEcho(c Controller) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, c, "/run/test.sock")
	return e
}

func TestStatusHandler(t *testing.T) {
	c := &fakeController{status: Status{Directory: "/pics", CurrentImage: "/pics/a.jpg", Index: 2, Count: 7, AutoAdvance: 5}}
	e := newTestEcho(c)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, "/run/test.sock", res.Socket)
	assert.Equal(t, os.Getpid(), res.PID)
	assert.Equal(t, c.status, res.Slideshow)
}

func TestCommandHandler(t *testing.T) {
	c := &fakeController{}
	e := newTestEcho(c)

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader(`{"type":"prev"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []Command{{Type: CommandPrev}}, c.received())
}

func TestCommandHandlerRejectsUnknownCommand(t *testing.T) {
	c := &fakeController{}
	e := newTestEcho(c)

	req := httptest.NewRequest(http.MethodPost, "/command", strings.NewReader(`{"type":"load"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, c.received())
}

func TestShortcutRoutes(t *testing.T) {
	c := &fakeController{}
	e := newTestEcho(c)

	for _, route := range []string{"/next", "/prev", "/stop"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, route, nil))
		assert.Equal(t, http.StatusOK, rec.Code, route)
	}

	assert.Equal(t, []Command{{Type: CommandNext}, {Type: CommandPrev}, {Type: CommandStop}}, c.received())
}

func TestClientRoundTrip(t *testing.T) {
	// unix socket paths are limited in length, so keep it short
	dir, err := os.MkdirTemp("", "ss")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })
	path := filepath.Join(dir, "s.sock")

	c := &fakeController{status: Status{Directory: "/pics", Count: 3}}
	server, err := Listen(path, c)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- server.Serve() }()

	status, err := SendStatus(path)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Slideshow.Count)
	assert.Equal(t, path, status.Socket)

	require.NoError(t, SendNext(path))
	require.NoError(t, SendPrev(path))
	require.NoError(t, SendStop(path))
	assert.Equal(t, []Command{{Type: CommandNext}, {Type: CommandPrev}, {Type: CommandStop}}, c.received())

	require.NoError(t, server.Close())
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after Close")
	}
	assert.NoFileExists(t, path)
}

func TestSendStatusWithoutServer(t *testing.T) {
	_, err := SendStatus(filepath.Join(t.TempDir(), "nobody.sock"))
	assert.Error(t, err)
}

func TestSocketPath(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/1000")
	assert.Equal(t, filepath.Join("/run/user/1000", "slideshow.sock"), SocketPath())
}
