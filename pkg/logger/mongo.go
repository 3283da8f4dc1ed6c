package logger

import (
	"context"

	"go.mongodb.org/mongo-driver/event"
	"go.uber.org/zap"
)

// NewMongoCommandMonitor logs driver command outcomes: successes at debug,
// failures at warn. The accessor logs the error it returns separately.
func NewMongoCommandMonitor(l *zap.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, e *event.CommandSucceededEvent) {
			WithContext(ctx, l).Debug("mongo command succeeded",
				zap.String("command", e.CommandName),
				zap.Int64("request_id", e.RequestID),
				zap.String("connection_id", e.ConnectionID),
			)
		},
		Failed: func(ctx context.Context, e *event.CommandFailedEvent) {
			WithContext(ctx, l).Warn("mongo command failed",
				zap.String("command", e.CommandName),
				zap.Int64("request_id", e.RequestID),
				zap.String("connection_id", e.ConnectionID),
				zap.String("failure", e.Failure),
			)
		},
	}
}
