package slogx

import (
	"log/slog"

	"github.com/pkg/errors"
)

func Error(err error) slog.Attr {
	return slog.Any("error", errors.WithStack(err))
}
