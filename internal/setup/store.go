package setup

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/store"
	"github.com/pkg/errors"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var getStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*store.Store, error) {
	if err := ensureBaseDirectory(conf.Storage.Database.DSN); err != nil {
		return nil, errors.WithStack(err)
	}

	dialector := sqlite.Open(conf.Storage.Database.DSN)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(conf.Logger.Level)),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Logger.Level == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// SQLite serializes writers anyway
	internalDB.SetMaxOpenConns(1)

	pragmas := fmt.Sprintf("PRAGMA journal_mode=wal; PRAGMA busy_timeout=%d", conf.Storage.Database.BusyTimeout.Milliseconds())
	if err := db.Exec(pragmas).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	slog.DebugContext(ctx, "store opened", slog.String("dsn", conf.Storage.Database.DSN))

	return store.New(db), nil
})

// StartJournalRetention periodically purges the sign-in events older than
// the configured retention until the context is canceled.
func StartJournalRetention(ctx context.Context, conf *config.Config) error {
	retention := conf.Storage.Database.Retention
	if retention <= 0 {
		return nil
	}

	journal, err := getJournalFromConfig(ctx, conf)
	if err != nil {
		return errors.WithStack(err)
	}

	purge := func() {
		purged, err := journal.Purge(ctx, time.Now().UTC().Add(-retention))
		if err != nil {
			slog.ErrorContext(ctx, "could not purge sign-in journal", slog.Any("error", errors.WithStack(err)))
			return
		}

		if purged > 0 {
			slog.InfoContext(ctx, "sign-in journal purged", slog.Int64("events", purged))
		}
	}

	go func() {
		purge()

		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				purge()
			}
		}
	}()

	return nil
}

func gormLogLevel(level slog.Level) logger.LogLevel {
	switch level {
	case slog.LevelWarn:
		return logger.Warn
	case slog.LevelInfo, slog.LevelDebug:
		return logger.Info
	default:
		return logger.Error
	}
}

func ensureBaseDirectory(filePath string) error {
	baseDir := filepath.Dir(filePath)
	if err := ensureDirectory(baseDir); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
