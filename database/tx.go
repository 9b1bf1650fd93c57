package database

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"time"

	"commission-app/config"

	"gorm.io/gorm"
)

type TxOptions struct {
	IsolationLevel sql.IsolationLevel
	MaxRetries     int
}

func DefaultTxOptions() TxOptions {
	retries := config.TX_MAX_RETRIES
	if retries <= 0 {
		retries = 3
	}
	return TxOptions{
		IsolationLevel: sql.LevelReadCommitted,
		MaxRetries:     retries,
	}
}

// WithRetry runs fn in a transaction and reruns the whole transaction when
// Postgres aborts it with a serialization failure, deadlock or lock timeout.
func WithRetry(ctx context.Context, db *gorm.DB, opts TxOptions, fn func(tx *gorm.DB) error) error {
	backoff := 50 * time.Millisecond

	for attempt := 0; ; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := db.WithContext(ctx).Transaction(fn, &sql.TxOptions{Isolation: opts.IsolationLevel})
		if err == nil {
			return nil
		}
		if !IsRetryable(err) {
			return err
		}
		if attempt >= opts.MaxRetries {
			return fmt.Errorf("max retries (%d) exceeded: %w", opts.MaxRetries, err)
		}

		jitter := time.Duration(rand.Int63n(int64(backoff / 4)))
		select {
		case <-time.After(backoff + jitter):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}
}

// Tx runs fn with the default options against DB.
func Tx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return WithRetry(ctx, DB, DefaultTxOptions(), fn)
}
