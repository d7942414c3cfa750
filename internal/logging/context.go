package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ComponentKey is the field naming the subsystem that emitted a log line.
const ComponentKey = "component"

var nop = zerolog.Nop()

// FromContext returns the logger carried by ctx. A nil ctx or one without a logger
// yields a disabled logger, never nil.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &nop
	}
	return zerolog.Ctx(ctx)
}

// WithContext returns a copy of ctx carrying logger.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent tags the context logger with a component name.
func WithComponent(ctx context.Context, component string) context.Context {
	child := FromContext(ctx).With().Str(ComponentKey, component).Logger()
	return WithContext(ctx, child)
}
