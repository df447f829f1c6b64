package event

import (
	"context"
	"time"

	"github.com/bornholm/signin/internal/store"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Record persists a sign-in event, retrying while the database is busy
func (r *Repository) Record(ctx context.Context, event *store.SignInEvent) error {
	return r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		if err := db.Create(event).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	}, store.CodeBusy, store.CodeLocked)
}

// ListByEmail retrieves the most recent events of an account
func (r *Repository) ListByEmail(ctx context.Context, email string, limit int) ([]*store.SignInEvent, error) {
	var events []*store.SignInEvent
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		query := db.Where("email = ?", email).Order("occurred_at DESC")
		if limit > 0 {
			query = query.Limit(limit)
		}
		if err := query.Find(&events).Error; err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// CountByOutcome returns the number of events per outcome since the given time
func (r *Repository) CountByOutcome(ctx context.Context, since time.Time) (map[store.SignInOutcome]int64, error) {
	type row struct {
		Outcome store.SignInOutcome
		Total   int64
	}

	var rows []row
	err := r.store.WithDatabase(ctx, func(ctx context.Context, db *gorm.DB) error {
		err := db.Model(&store.SignInEvent{}).
			Select("outcome, count(*) as total").
			Where("occurred_at >= ?", since).
			Group("outcome").
			Scan(&rows).Error
		if err != nil {
			return errors.WithStack(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	counts := make(map[store.SignInOutcome]int64, len(rows))
	for _, r := range rows {
		counts[r.Outcome] = r.Total
	}

	return counts, nil
}

// Purge deletes the events which occurred before the given time and returns
// how many were removed
func (r *Repository) Purge(ctx context.Context, before time.Time) (int64, error) {
	var purged int64
	err := r.store.WithRetry(ctx, func(ctx context.Context, db *gorm.DB) error {
		result := db.Unscoped().Where("occurred_at < ?", before).Delete(&store.SignInEvent{})
		if result.Error != nil {
			return errors.WithStack(result.Error)
		}
		purged = result.RowsAffected
		return nil
	}, store.CodeBusy, store.CodeLocked)
	if err != nil {
		return 0, err
	}
	return purged, nil
}
