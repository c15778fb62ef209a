// Package database owns the lifecycle of the connection pool to the
// store. Every repository obtains its handle through Manager.DB, which
// fails fast when no live pool exists instead of reconnecting behind
// the caller's back, so "never connected" stays distinguishable from
// "query failed".
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"videostore-admin/internal/config"
	"videostore-admin/internal/logger"
)

// ErrNotConnected is returned by DB when no connection has been
// established or the pool has been torn down.
var ErrNotConnected = errors.New("not connected to database")

// ConnectionError is a transport-level failure during connect or
// teardown. It carries the underlying driver diagnostic.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Manager holds at most one live pool. Connect replaces a prior pool
// after closing it; Disconnect is an idempotent no-op when nothing is
// open.
type Manager struct {
	mu   sync.RWMutex
	db   *sql.DB
	dsn  string
	pool config.PoolConfig
}

// New constructs a disconnected manager for the given settings.
func New(cfg *config.Config) *Manager {
	return &Manager{
		dsn:  cfg.GetDatabaseConnectionString(),
		pool: cfg.Pool,
	}
}

// NewWithDB wraps an already-open handle. Used by tests and by callers
// that manage the pool themselves.
func NewWithDB(db *sql.DB) *Manager {
	return &Manager{db: db}
}

// Connect opens and pings a new pool. A previously open pool is closed
// first so no dangling sockets leak.
func (m *Manager) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db != nil {
		if err := m.db.Close(); err != nil {
			logger.Warn("Closing previous database pool failed", "error", err)
		}
		m.db = nil
	}

	db, err := sql.Open("postgres", m.dsn)
	if err != nil {
		return &ConnectionError{Op: "open", Err: err}
	}

	db.SetMaxOpenConns(m.pool.MaxOpenConns)
	db.SetMaxIdleConns(m.pool.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(m.pool.ConnMaxLifetimeMinutes) * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return &ConnectionError{Op: "connect", Err: err}
	}

	m.db = db
	logger.Info("Database connection established")
	return nil
}

// Disconnect closes the pool. Calling it with no active pool is a
// no-op, not an error.
func (m *Manager) Disconnect() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.db == nil {
		return nil
	}
	db := m.db
	m.db = nil
	if err := db.Close(); err != nil {
		return &ConnectionError{Op: "close", Err: err}
	}
	logger.Info("Database connection closed")
	return nil
}

// DB returns the live pool or ErrNotConnected. It never attempts an
// implicit reconnect.
func (m *Manager) DB() (*sql.DB, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.db == nil {
		return nil, ErrNotConnected
	}
	return m.db, nil
}

// Connected reports whether a pool is currently open.
func (m *Manager) Connected() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.db != nil
}
