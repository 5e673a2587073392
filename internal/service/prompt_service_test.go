package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/support-thread-bot/pkg/util"
)

func TestPublishPrompt(t *testing.T) {
	client := newFakeClient()
	client.addTextChannel(supportChannelID, guildID)
	svc := NewPromptService(client, zap.NewNop(), supportChannelID)

	require.NoError(t, svc.PublishPrompt(context.Background()))
	require.Equal(t, []string{supportChannelID}, client.prompts)
}

func TestPublishPromptChannelMissing(t *testing.T) {
	client := newFakeClient()
	svc := NewPromptService(client, zap.NewNop(), supportChannelID)

	err := svc.PublishPrompt(context.Background())
	requireCode(t, err, apperrors.CodeChannelUnavailable)
	require.Empty(t, client.prompts)
}

func TestPublishPromptRejectsThreadTarget(t *testing.T) {
	client := newFakeClient()
	client.addTextChannel(supportChannelID, guildID)
	client.addThread("thread-1", supportChannelID)
	svc := NewPromptService(client, zap.NewNop(), "thread-1")

	err := svc.PublishPrompt(context.Background())
	requireCode(t, err, apperrors.CodeChannelUnavailable)
}
