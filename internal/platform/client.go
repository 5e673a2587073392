// Package platform defines the narrow slice of the chat platform the ticket
// services consume. The production implementation lives in platform/discord;
// tests run against in-memory fakes.
package platform

import (
	"context"
	"errors"
)

// ErrNotFound is returned when the platform reports the target channel,
// thread, or message does not exist.
var ErrNotFound = errors.New("platform: not found")

// Channel is a resolved channel or thread.
type Channel struct {
	ID       string
	GuildID  string
	ParentID string
	Name     string
	Text     bool
	Thread   bool
	Locked   bool
	Archived bool
}

// Message is a channel message reduced to what the cleanup policy inspects.
type Message struct {
	ID         string
	ChannelID  string
	EmbedCount int
}

// ThreadCreate carries the parameters for opening a ticket thread.
type ThreadCreate struct {
	Name               string
	AutoArchiveMinutes int
	Reason             string
}

// Client is the platform surface the ticket flow needs. Every call crosses
// the network and may block on external latency.
type Client interface {
	// Channel resolves a channel or thread by ID. ErrNotFound when missing.
	Channel(ctx context.Context, channelID string) (*Channel, error)

	// ActiveThreads lists the non-archived threads under the parent channel.
	ActiveThreads(ctx context.Context, parent *Channel) ([]Channel, error)

	// ThreadMembers lists the user IDs that are members of a thread.
	ThreadMembers(ctx context.Context, threadID string) ([]string, error)

	// CreateThread opens a new thread under the channel.
	CreateThread(ctx context.Context, channelID string, create ThreadCreate) (*Channel, error)

	// AddThreadMember adds a user to a thread's member set.
	AddThreadMember(ctx context.Context, threadID, userID string) error

	// SendMessage posts a plain message.
	SendMessage(ctx context.Context, channelID, content string) error

	// SendCloseControl posts the persistent close-ticket button into a thread.
	SendCloseControl(ctx context.Context, threadID string) error

	// SendPrompt posts the support embed plus category select menu.
	SendPrompt(ctx context.Context, channelID string) error

	// RecentMessages fetches up to limit of the newest messages in a channel.
	RecentMessages(ctx context.Context, channelID string, limit int) ([]Message, error)

	// DeleteMessage removes a single message.
	DeleteMessage(ctx context.Context, channelID, messageID string) error

	// LockThread sets the thread locked with an audit reason.
	LockThread(ctx context.Context, threadID, reason string) error

	// ArchiveThread sets the thread archived with an audit reason.
	ArchiveThread(ctx context.Context, threadID, reason string) error
}
