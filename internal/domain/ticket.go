package domain

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "OPEN"
	TicketStatusClosed TicketStatus = "CLOSED"
)

// User identifies the platform user an interaction came from. The platform
// owns the account; this is just the slice the bot needs.
type User struct {
	ID   string
	Name string
}

// Ticket is one open support conversation. It is represented entirely by a
// platform thread; the bot keeps no record of its own, so a Ticket value is a
// snapshot taken from the platform, not a stored row.
type Ticket struct {
	ThreadID        string
	ParentChannelID string
	Requester       User
	Category        Category
	Status          TicketStatus
}
