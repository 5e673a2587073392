package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/support-thread-bot/internal/platform"
	apperrors "github.com/spec-kit/support-thread-bot/pkg/util"
)

// DuplicateGuard answers whether a user already owns an open ticket thread
// under a parent channel. The platform's active-thread list is the only
// record; there is no local index to consult.
type DuplicateGuard struct {
	client platform.Client
	logger *zap.Logger
}

// NewDuplicateGuard constructs the guard.
func NewDuplicateGuard(client platform.Client, logger *zap.Logger) *DuplicateGuard {
	return &DuplicateGuard{client: client, logger: logger}
}

// HasOpenTicket reports whether userID is a member of any active thread under
// parent. Cost is one remote call per active thread; the guard itself keeps
// that count small. A nil or non-text parent is a ChannelUnavailable error,
// never "no open ticket" — callers must not create on an unresolved channel.
func (g *DuplicateGuard) HasOpenTicket(ctx context.Context, parent *platform.Channel, userID string) (bool, error) {
	if parent == nil || !parent.Text {
		return false, apperrors.NewChannelUnavailable()
	}

	threads, err := g.client.ActiveThreads(ctx, parent)
	if err != nil {
		return false, apperrors.NewPlatformCallFailed(err)
	}

	for _, thread := range threads {
		members, err := g.client.ThreadMembers(ctx, thread.ID)
		if err != nil {
			return false, apperrors.NewPlatformCallFailed(err)
		}
		for _, memberID := range members {
			if memberID == userID {
				g.logger.Debug("duplicate ticket found",
					zap.String("user_id", userID),
					zap.String("thread_id", thread.ID),
				)
				return true, nil
			}
		}
	}
	return false, nil
}
