package store

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/glebarez/go-sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var models = []any{
	&SignInEvent{},
}

// SQLite result codes worth retrying a transaction for.
const (
	CodeBusy   = 5
	CodeLocked = 6
)

const (
	defaultRetryBackoff = 100 * time.Millisecond
	defaultMaxRetries   = 5
)

type Store struct {
	getDatabase  func(ctx context.Context) (*gorm.DB, error)
	retryBackoff time.Duration
	maxRetries   int
}

func (s *Store) WithDatabase(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := fn(ctx, db.WithContext(ctx)); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// WithRetry runs fn in a transaction and runs it again, with an exponential
// backoff, while it fails with one of the given sqlite codes.
func (s *Store) WithRetry(ctx context.Context, fn func(ctx context.Context, db *gorm.DB) error, codes ...int) error {
	db, err := s.getDatabase(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := s.retryBackoff

	for retries := 0; ; retries++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, tx)
		})
		if err == nil {
			return nil
		}

		var sqliteErr *sqlite.Error
		if retries >= s.maxRetries || !errors.As(err, &sqliteErr) || !slices.Contains(codes, sqliteErr.Code()) {
			return errors.WithStack(err)
		}

		slog.DebugContext(ctx, "transaction failed, will retry", slog.Int("retries", retries), slog.Duration("backoff", backoff), slog.Any("error", errors.WithStack(err)))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.WithStack(ctx.Err())
		case <-timer.C:
		}

		backoff *= 2
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(sqlDB.PingContext(ctx))
	})
}

func New(db *gorm.DB) *Store {
	return &Store{
		getDatabase:  createGetDatabase(db),
		retryBackoff: defaultRetryBackoff,
		maxRetries:   defaultMaxRetries,
	}
}

// createGetDatabase migrates the schema on first access.
func createGetDatabase(db *gorm.DB) func(ctx context.Context) (*gorm.DB, error) {
	var (
		migrateOnce sync.Once
		migrateErr  error
	)

	return func(ctx context.Context) (*gorm.DB, error) {
		migrateOnce.Do(func() {
			if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
				migrateErr = errors.WithStack(err)
			}
		})
		if migrateErr != nil {
			return nil, errors.WithStack(migrateErr)
		}

		return db, nil
	}
}
