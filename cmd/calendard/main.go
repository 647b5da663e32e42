// Command calendard serves the calendar task API.
//
//	calendard --local-port 8080 --gui-port 3000
//
//	@title			Calendar API
//	@version		1.0
//	@description	Date-keyed task tracking backend.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Innocent9712/much-to-do/calendar/internal/api"
	"github.com/Innocent9712/much-to-do/calendar/internal/calendar"
	"github.com/Innocent9712/much-to-do/calendar/internal/config"
	"github.com/Innocent9712/much-to-do/calendar/internal/logging"
	"github.com/Innocent9712/much-to-do/calendar/internal/server"
)

// Exit codes.
const (
	exitOK     = 0
	exitServer = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(args, stdout)
	if errors.Is(err, config.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log, err := logging.NewWithWriter(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	gin.SetMode(gin.ReleaseMode)
	router := api.NewRouter(calendar.NewStore(), api.Options{
		Logger:       log,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Docs:         cfg.Docs,
	})

	srv := server.New(cfg.Addr(), router, log, cfg.ShutdownTimeout)

	log.Infof("Server running on http://localhost:%d", cfg.LocalPort)
	log.Infof("GUI server expected on port %d", cfg.GUIPort)

	if err := srv.Run(ctx); err != nil {
		log.WithError(err).Error("server stopped")
		return exitServer
	}
	log.Info("server stopped")
	return exitOK
}
