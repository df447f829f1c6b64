package setup

import (
	"context"

	"github.com/bornholm/signin/internal/config"
	"github.com/bornholm/signin/internal/identity"
	"github.com/pkg/errors"
)

var getIdentityClientFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*identity.Client, error) {
	client, err := identity.NewClient(
		conf.Identity.Endpoint,
		identity.WithTimeout(conf.Identity.Timeout),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "could not create identity client for endpoint '%s'", conf.Identity.Endpoint)
	}

	return client, nil
})
