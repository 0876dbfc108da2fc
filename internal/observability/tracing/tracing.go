package tracing

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type traceID struct{}

// InjectTraceID attaches a fresh trace id to ctx and to the logger carried by
// it, the global logger is used when ctx carries none
func InjectTraceID(ctx context.Context) context.Context {
	id := uuid.New().String()

	base := zerolog.Ctx(ctx)
	if base.GetLevel() == zerolog.Disabled {
		base = &log.Logger
	}
	logger := base.With().Str("traceId", id).Logger()

	ctx = context.WithValue(ctx, traceID{}, id)
	return logger.WithContext(ctx)
}

// TraceID returns the id injected by InjectTraceID or an empty string
func TraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceID{}).(string)
	return id
}
