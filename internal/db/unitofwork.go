package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx, so a repository runs the
// same statements inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// UnitOfWork runs a callback inside one transaction. Callers build
// tx-scoped repositories from the DBTX they are handed.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error
}

const (
	// DefaultBusyRetries bounds how often a transaction is restarted while
	// another gradplan process holds the database write lock.
	DefaultBusyRetries = 5
	defaultBusyBackoff = 25 * time.Millisecond
)

// SQLiteUnitOfWork implements UnitOfWork with database/sql transactions.
type SQLiteUnitOfWork struct {
	db        *sql.DB
	retries   int
	backoff   time.Duration
	retryable func(error) bool
}

// NewSQLiteUnitOfWork creates a UnitOfWork backed by the given *sql.DB.
func NewSQLiteUnitOfWork(db *sql.DB) *SQLiteUnitOfWork {
	return &SQLiteUnitOfWork{
		db:        db,
		retries:   DefaultBusyRetries,
		backoff:   defaultBusyBackoff,
		retryable: IsBusy,
	}
}

// WithinTx commits when fn returns nil and rolls back otherwise. A
// transaction that fails with SQLITE_BUSY or SQLITE_LOCKED is rolled back
// and fn runs again from the start, with a linearly growing pause, until
// the retry budget or ctx runs out.
func (u *SQLiteUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	for attempt := 0; ; attempt++ {
		err := u.runOnce(ctx, fn)
		if err == nil || attempt >= u.retries || !u.retryable(err) {
			return err
		}

		pause := time.NewTimer(u.backoff * time.Duration(attempt+1))
		select {
		case <-ctx.Done():
			pause.Stop()
			return errors.Join(err, ctx.Err())
		case <-pause.C:
		}
	}
}

func (u *SQLiteUnitOfWork) runOnce(ctx context.Context, fn func(ctx context.Context, tx DBTX) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// IsBusy reports whether err carries SQLite's "database is locked" family
// of result codes. Extended codes are reduced to their primary code.
func IsBusy(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code() & 0xff {
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return true
	}
	return false
}
