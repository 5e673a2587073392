package events

import (
	"time"

	"github.com/spec-kit/support-thread-bot/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketOpened   EventType = "ticket_opened"
	EventTicketClosed   EventType = "ticket_closed"
	EventTicketRejected EventType = "ticket_rejected"
)

// Event represents a lifecycle event emitted by the ticket service.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ThreadID  string      `json:"thread_id,omitempty"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketOpenedPayload payload.
type TicketOpenedPayload struct {
	Category    domain.CategoryValue `json:"category"`
	RequesterID string               `json:"requester_id"`
	PrunedCount int                  `json:"pruned_count"`
}

// TicketClosedPayload payload.
type TicketClosedPayload struct {
	ClosedByID string `json:"closed_by_id"`
}

// TicketRejectedPayload payload.
type TicketRejectedPayload struct {
	Reason      string `json:"reason"`
	RequesterID string `json:"requester_id"`
}
