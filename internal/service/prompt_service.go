package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/support-thread-bot/internal/platform"
	apperrors "github.com/spec-kit/support-thread-bot/pkg/util"
)

// PromptService posts the category-selection prompt into the support
// channel. The summon command is administrator-gated; that check happens in
// the dispatcher before this service is reached.
type PromptService struct {
	client  platform.Client
	logger  *zap.Logger
	channel string
}

// NewPromptService constructs the service.
func NewPromptService(client platform.Client, logger *zap.Logger, supportChannelID string) *PromptService {
	return &PromptService{client: client, logger: logger, channel: supportChannelID}
}

// PublishPrompt resolves the support channel and posts the embed plus
// category menu into it.
func (s *PromptService) PublishPrompt(ctx context.Context) error {
	channel, err := s.client.Channel(ctx, s.channel)
	if err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return apperrors.NewChannelUnavailable()
		}
		return apperrors.NewPlatformCallFailed(err)
	}
	if !channel.Text || channel.Thread {
		return apperrors.NewChannelUnavailable()
	}

	if err := s.client.SendPrompt(ctx, channel.ID); err != nil {
		return apperrors.NewPlatformCallFailed(err)
	}
	s.logger.Info("support prompt posted", zap.String("channel_id", channel.ID))
	return nil
}
