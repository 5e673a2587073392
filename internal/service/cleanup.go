package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-thread-bot/internal/platform"
)

// ChannelPruner removes transient noise from the parent channel after a
// ticket opens, keeping only summary messages (those carrying an embed) so
// the category prompt stays visible.
type ChannelPruner struct {
	client     platform.Client
	logger     *zap.Logger
	fetchLimit int
}

// NewChannelPruner constructs the pruner. fetchLimit bounds how many recent
// messages one pass inspects.
func NewChannelPruner(client platform.Client, logger *zap.Logger, fetchLimit int) *ChannelPruner {
	if fetchLimit <= 0 {
		fetchLimit = 100
	}
	return &ChannelPruner{client: client, logger: logger, fetchLimit: fetchLimit}
}

// Prune deletes every embed-less message in the most recent window and
// returns how many were removed. Individual delete failures are logged and
// skipped; the pass is cosmetic and best-effort.
func (p *ChannelPruner) Prune(ctx context.Context, channelID string) (int, error) {
	messages, err := p.client.RecentMessages(ctx, channelID, p.fetchLimit)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, msg := range messages {
		if msg.EmbedCount > 0 {
			continue
		}
		if err := p.client.DeleteMessage(ctx, channelID, msg.ID); err != nil {
			p.logger.Warn("failed to delete message during cleanup",
				zap.String("channel_id", channelID),
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
			continue
		}
		removed++
	}
	return removed, nil
}
