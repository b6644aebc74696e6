// SPDX-License-Identifier: MIT

// Package log configures zerolog for the generator and carries per-run
// correlation fields through a context.
package log

import (
	"context"

	"github.com/rs/zerolog"
)

// runIDKey is the context key of the generator run id.
type runIDKey struct{}

// ContextWithRunID tags ctx with the id of one generator run. A nil ctx
// is treated as context.Background.
func ContextWithRunID(ctx context.Context, id string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the run id set by ContextWithRunID, or "".
func RunIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithContext adds the run id of ctx to logger.
func WithContext(ctx context.Context, logger zerolog.Logger) zerolog.Logger {
	if id := RunIDFromContext(ctx); id != "" {
		return logger.With().Str(FieldRunID, id).Logger()
	}
	return logger
}

// FromContext returns the logger attached with zerolog's WithContext, or
// Base when ctx carries none.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return *l
		}
	}
	return Base()
}

// WithComponentFromContext is FromContext plus a component field and the
// run id.
func WithComponentFromContext(ctx context.Context, component string) zerolog.Logger {
	return Derive(ctx, func(c *zerolog.Context) {
		*c = c.Str(FieldComponent, component)
	})
}
