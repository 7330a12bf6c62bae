package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errLocked = errors.New("database is locked")

func newRetryUoW(t *testing.T, retries int) *SQLiteUnitOfWork {
	t.Helper()
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return &SQLiteUnitOfWork{
		db:        database,
		retries:   retries,
		backoff:   time.Millisecond,
		retryable: func(err error) bool { return errors.Is(err, errLocked) },
	}
}

func TestWithinTx_RetriesBusyTransaction(t *testing.T) {
	uow := newRetryUoW(t, 3)
	attempts := 0

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		attempts++
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kv_store (key, value, updated_at) VALUES ('plan', ?, '2026-01-01T00:00:00Z')`,
			fmt.Sprint(attempts)); err != nil {
			return err
		}
		if attempts < 3 {
			return errLocked
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)

	// Only the committed attempt is visible; earlier inserts were rolled back.
	var value string
	require.NoError(t, uow.db.QueryRow(`SELECT value FROM kv_store WHERE key = 'plan'`).Scan(&value))
	assert.Equal(t, "3", value)
}

func TestWithinTx_GivesUpAfterRetryBudget(t *testing.T) {
	uow := newRetryUoW(t, 2)
	attempts := 0

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		attempts++
		return errLocked
	})
	assert.ErrorIs(t, err, errLocked)
	assert.Equal(t, 3, attempts)
}

func TestWithinTx_DoesNotRetryOtherErrors(t *testing.T) {
	uow := newRetryUoW(t, 5)
	attempts := 0
	boom := errors.New("boom")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		attempts++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestWithinTx_StopsRetryingWhenContextEnds(t *testing.T) {
	uow := newRetryUoW(t, 5)
	uow.backoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())

	err := uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		cancel()
		return errLocked
	})
	assert.ErrorIs(t, err, errLocked)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsBusy(t *testing.T) {
	assert.False(t, IsBusy(nil))
	assert.False(t, IsBusy(errLocked))
	assert.False(t, IsBusy(fmt.Errorf("wrapped: %w", errors.New("constraint failed"))))
}
