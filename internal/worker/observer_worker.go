package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-thread-bot/internal/events"
	"github.com/spec-kit/support-thread-bot/internal/observability"
)

// StartObserver subscribes logging and metrics handlers for ticket lifecycle
// events. Purely observational; the ticket flow does not depend on it.
func StartObserver(dispatcher events.Dispatcher, logger *zap.Logger, metrics *observability.Metrics) {
	if dispatcher == nil {
		return
	}

	dispatcher.Subscribe(events.EventTicketOpened, func(_ context.Context, event events.Event) error {
		metrics.RecordTicket("opened")
		logger.Info("ticket opened",
			zap.String("event_id", event.ID),
			zap.String("thread_id", event.ThreadID),
			zap.String("actor_id", event.ActorID),
			zap.Any("payload", event.Payload),
		)
		return nil
	})

	dispatcher.Subscribe(events.EventTicketClosed, func(_ context.Context, event events.Event) error {
		metrics.RecordTicket("closed")
		logger.Info("ticket closed",
			zap.String("event_id", event.ID),
			zap.String("thread_id", event.ThreadID),
			zap.String("actor_id", event.ActorID),
		)
		return nil
	})

	dispatcher.Subscribe(events.EventTicketRejected, func(_ context.Context, event events.Event) error {
		metrics.RecordTicket("rejected")
		logger.Info("ticket rejected",
			zap.String("event_id", event.ID),
			zap.String("actor_id", event.ActorID),
			zap.Any("payload", event.Payload),
		)
		return nil
	})
}
