package events

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
	"github.com/jsamuelsen/quotations-service/internal/ports"
)

// LogPublisher writes events to the request logger. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, event ports.Event) error {
	logging.FromContext(ctx).Info("domain event",
		slog.String("event_type", event.EventType()),
		slog.Any("payload", event.Payload()),
	)

	return nil
}
