package setup

import (
	"context"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/store/repository/event"
	"github.com/pkg/errors"
)

var getJournalFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*event.Repository, error) {
	store, err := getStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure store from config")
	}

	return event.NewRepository(store), nil
})
