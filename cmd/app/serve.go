package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"group-ledger/api"
	"group-ledger/internal/config"
	"group-ledger/internal/handler"

	"github.com/google/subcommands"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

type serveCmd struct {
	cfg    config.Config
	logger *logrus.Logger
	port   string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the ledger over a JSON HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-port <port>]

  Starts an HTTP server exposing the ledger operations. State lives in memory
  and is lost on shutdown. SIGINT or SIGTERM stops the server gracefully.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.port, "port", "", "Port to listen on (defaults to SERVER_PORT).")
}

// newServer собирает echo с middleware и маршрутами API
func newServer(a *app, logger *logrus.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(a.groupUC, a.userUC, a.txUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e
}

func (c *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := c.cfg
	if c.port != "" {
		cfg.ServerPort = c.port
		if err := cfg.Validate(); err != nil {
			c.logger.WithError(err).Error("Invalid port")
			return subcommands.ExitUsageError
		}
	}

	a := newApp()
	defer a.Close()

	e := newServer(a, c.logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Запуск сервера
	serverErr := make(chan error, 1)
	go func() {
		c.logger.WithField("address", cfg.Address()).Info("Server starting")
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			c.logger.WithError(err).Error("Server failed")
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	case <-ctx.Done():
	}

	// Graceful shutdown
	c.logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		c.logger.WithError(err).Error("Shutdown failed")
		return subcommands.ExitFailure
	}

	c.logger.Info("Server exited")
	return subcommands.ExitSuccess
}
