package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/matjam/slideshow/internal/cli/cmd/utils"
	"github.com/matjam/slideshow/internal/config"
	"github.com/matjam/slideshow/internal/display"
	"github.com/matjam/slideshow/internal/imageset"
	"github.com/matjam/slideshow/internal/ipc"
	"github.com/matjam/slideshow/internal/picdir"
	"github.com/matjam/slideshow/internal/slideshow"
	"github.com/sevlyar/go-daemon"
)

// StartSlideshow resolves the image directory and runs the slideshow until it is quit.
// Startup errors exit the process with status 1.
func StartSlideshow(cfg config.Config) {
	dir := picdir.New().Find(cfg.Directory)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}

	if cfg.Background {
		ctx, parent := daemonize()
		if parent {
			return
		}
		defer ctx.Release()
		setupRotatingLogger(cfg.Debug)
	}

	log.Infof("StartSlideshow() started in PID: %d", os.Getpid())

	socket := ipc.SocketPath()
	if _, err := ipc.SendStatus(socket); err == nil {
		log.Infof("slideshow is already running, exiting")
		os.Exit(0)
	}

	images, err := imageset.Resolve(dir, nil)
	if err != nil {
		var notFound *imageset.DirectoryNotFoundError
		var noImages *imageset.NoImagesFoundError
		switch {
		case errors.As(err, &notFound):
			log.Fatalf("Error: Directory %s does not exist!", notFound.Dir)
		case errors.As(err, &noImages):
			log.Errorf("No supported images found in %s", noImages.Dir)
			log.Fatalf("Supported formats: %s", strings.Join(noImages.Extensions, ", "))
		default:
			log.Fatalf("Error reading image directory: %v", err)
		}
	}

	utils.Banner(dir, len(images), cfg.AutoAdvance)

	win, err := display.New("Image Slideshow")
	if err != nil {
		log.Fatalf("Failed to open display: %v", err)
	}

	remote := slideshow.NewRemote(dir, len(images), cfg.Interval(), win.Inject)

	server, err := ipc.Listen(socket, remote)
	if err != nil {
		log.Warnf("Control socket unavailable: %v", err)
	} else {
		go func() {
			log.Debugf("Starting socket server on %s", socket)
			if err := server.Serve(); err != nil {
				log.Errorf("Socket server error: %v", err)
			}
		}()
	}

	engine, err := slideshow.New(images, win, slideshow.Options{
		AutoAdvance: cfg.Interval(),
		OnShow:      remote.Shown,
	})
	if err != nil {
		win.Close()
		log.Fatalf("Failed to start slideshow: %v", err)
	}

	runErr := engine.Run()

	if server != nil {
		if err := server.Close(); err != nil {
			log.Debugf("Socket server shutdown: %v", err)
		}
	}

	if runErr != nil {
		log.Fatalf("Slideshow failed: %v", runErr)
	}
	log.Infof("slideshow exited")
}

// daemonize forks the process into the background. It returns parent == true in the
// process that should exit.
func daemonize() (*daemon.Context, bool) {
	ctx := &daemon.Context{
		PidFileName: filepath.Join(filepath.Dir(ipc.SocketPath()), "slideshow.pid"),
		PidFilePerm: 0644,
		Umask:       027,
	}

	child, err := ctx.Reborn()
	if err != nil {
		log.Fatalf("Unable to run in background: %v", err)
	}
	if child != nil {
		log.Infof("slideshow started in background with PID %d", child.Pid)
		return ctx, true
	}
	return ctx, false
}

func setupRotatingLogger(debug bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	logDir := filepath.Join(home, ".local", "share", "slideshow")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Fatalf("failed to create log directory: %v", err)
	}
	logPath := filepath.Join(logDir, "slideshow.log")

	writer, err := rotatelogs.New(
		logPath+".%Y%m%d%H%M",
		rotatelogs.WithLinkName(logPath),
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationSize(10*1024*1024),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		log.Fatalf("failed to configure log rotation: %v", err)
	}

	log.SetOutput(writer)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
