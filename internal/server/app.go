// Package server initializes and runs the task tracker server: it wires
// storage, the auth and task services, and the HTTP endpoint, and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"taskkeeper/internal/dbx"
	"taskkeeper/internal/logging"
	"taskkeeper/internal/server/auth"
	"taskkeeper/internal/server/config"
	"taskkeeper/internal/server/httpapi"
	"taskkeeper/internal/server/storage"
	"taskkeeper/internal/server/tasks"
	"taskkeeper/internal/server/users"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	store       *storage.Postgres
	userService *users.Service
	taskService *tasks.Service
	tokens      *auth.TokenService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	store, err := storage.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	tokens := auth.NewTokenService([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)

	us := users.NewService(store.Users(), hasher, tokens)
	ts := tasks.NewService(store.Conn(), func(db dbx.DBTX) tasks.Repository {
		return store.Tasks(db)
	})

	return &App{
		config:      cfg,
		logger:      logger,
		store:       store,
		userService: us,
		taskService: ts,
		tokens:      tokens,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.Addr, app.logger, app.userService, app.taskService, app.tokens)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "err", err.Error())
	}
}
