package crypto

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// RandomBytes returns n bytes read from the system random source, ie to
// generate ephemeral signing keys.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, errors.WithStack(err)
	}

	return b, nil
}
