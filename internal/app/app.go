package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todo/internal/database"
	taskservice "github.com/thenoetrevino/todo/internal/services/task"
)

// App holds all application services and provides dependency injection.
// It owns the store handle for the lifetime of the process.
type App struct {
	db     *database.DB
	logger *slog.Logger

	// Service layer (business logic)
	TaskService taskservice.Service
}

// New creates a new App around an already open store.
func New(db *database.DB, opts ...Option) *App {
	cfg := appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	repo := database.NewRepository(db.DB)

	return &App{
		db:          db,
		logger:      cfg.logger,
		TaskService: taskservice.NewService(repo, cfg.logger),
	}
}

// Open opens the store at location and builds an App on top of it
func Open(ctx context.Context, location string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to open task store: %w", err)
	}
	return New(db, opts...), nil
}

// Location returns where the store lives
func (a *App) Location() string {
	return a.db.Location()
}

// Close releases the store connection and its lock.
func (a *App) Close() error {
	if err := a.db.Close(); err != nil {
		a.logger.Error("error closing task store", "error", err)
		return err
	}
	a.logger.Debug("task store closed", "location", a.db.Location())
	return nil
}
