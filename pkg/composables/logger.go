package composables

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/assistravel/casetrack/pkg/configuration"
	"github.com/assistravel/casetrack/pkg/constants"
)

// WithLogger returns a new context carrying the given log entry.
func WithLogger(ctx context.Context, logger *logrus.Entry) context.Context {
	return context.WithValue(ctx, constants.LoggerKey, logger)
}

// UseLogger returns the logger from the context, falling back to the
// configured application logger when none was provided.
func UseLogger(ctx context.Context) *logrus.Entry {
	logger := ctx.Value(constants.LoggerKey)
	if logger == nil {
		return logrus.NewEntry(configuration.Use().Logger())
	}
	return logger.(*logrus.Entry)
}
