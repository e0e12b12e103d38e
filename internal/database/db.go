// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

// MemoryLocation opens a private, empty store that disappears on Close
const MemoryLocation = ":memory:"

// ErrStorageUnavailable is returned when the backing store cannot be opened,
// read or written.
var ErrStorageUnavailable = errors.New("storage unavailable")

// DB is an open task store. It owns the single SQLite connection and, for
// file stores, the advisory lock that keeps a second process from writing
// to the same file.
type DB struct {
	*sql.DB
	location string
	lock     *flock.Flock
}

// Location returns the path (or memory location) the store was opened at
func (d *DB) Location() string {
	return d.location
}

// Close releases the connection and the single-writer lock
func (d *DB) Close() error {
	err := d.DB.Close()
	if d.lock != nil {
		if unlockErr := d.lock.Unlock(); unlockErr != nil {
			slog.Error("error releasing store lock", "path", d.lock.Path(), "error", unlockErr)
			err = errors.Join(err, unlockErr)
		}
	}
	return err
}

// IsMemoryLocation reports whether location names an ephemeral store
func IsMemoryLocation(location string) bool {
	return location == MemoryLocation ||
		strings.HasPrefix(location, "file::memory:") ||
		strings.Contains(location, "mode=memory")
}

// InitDB opens or creates the store at location and makes sure the tasks
// table exists. location is a file path or MemoryLocation.
//
// A file store is guarded by an advisory lock on location + ".lock". The lock
// file stays on disk after Close; only the lock on it is released, and the
// next InitDB reuses it.
func InitDB(ctx context.Context, location string) (*DB, error) {
	if location == "" {
		return nil, fmt.Errorf("%w: empty store location", ErrStorageUnavailable)
	}

	memory := IsMemoryLocation(location)

	var lock *flock.Flock
	if !memory {
		if err := os.MkdirAll(filepath.Dir(location), 0o755); err != nil {
			return nil, fmt.Errorf("%w: failed to create directory: %w", ErrStorageUnavailable, err)
		}

		lock = flock.New(location + ".lock")
		locked, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("%w: failed to lock store: %w", ErrStorageUnavailable, err)
		}
		if !locked {
			return nil, fmt.Errorf("%w: store %s is locked by another process", ErrStorageUnavailable, location)
		}
	}

	db, err := sql.Open("sqlite", location)
	if err != nil {
		releaseLock(lock)
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrStorageUnavailable, err)
	}

	// One connection: an in-memory store only exists on the connection that
	// created it, and a file store has a single writer anyway.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	store := &DB{DB: db, location: location, lock: lock}

	if err := configure(ctx, db, memory); err != nil {
		closeOnError(store)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeOnError(store)
		return nil, fmt.Errorf("%w: failed to run migrations: %w", ErrStorageUnavailable, err)
	}

	slog.Debug("task store opened", "location", location)
	return store, nil
}

func configure(ctx context.Context, db *sql.DB, memory bool) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	// Set busy timeout to 5 seconds (SQLite will retry for this duration)
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if memory {
		return nil
	}

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode = WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Every commit reaches the disk before the call returns
	if _, err := db.ExecContext(ctx, "PRAGMA synchronous = FULL"); err != nil {
		return fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	return nil
}

func closeOnError(store *DB) {
	if closeErr := store.Close(); closeErr != nil {
		slog.Error("error closing db", "error", closeErr)
	}
}

func releaseLock(lock *flock.Flock) {
	if lock == nil {
		return
	}
	if err := lock.Unlock(); err != nil {
		slog.Error("error releasing store lock", "path", lock.Path(), "error", err)
	}
}
