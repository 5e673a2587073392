package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/support-thread-bot/internal/config"
	"github.com/spec-kit/support-thread-bot/internal/domain"
	"github.com/spec-kit/support-thread-bot/internal/events"
	"github.com/spec-kit/support-thread-bot/internal/persistence"
	"github.com/spec-kit/support-thread-bot/internal/platform"
	apperrors "github.com/spec-kit/support-thread-bot/pkg/util"
)

// TicketService coordinates the ticket lifecycle: guarded creation of ticket
// threads and their explicit closure. The platform is the system of record;
// the service holds no ticket state between calls.
type TicketService struct {
	client  platform.Client
	guard   *DuplicateGuard
	pruner  *ChannelPruner
	locker  persistence.TicketLocker
	bus     events.Dispatcher
	logger  *zap.Logger
	channel string
	roleID  string
	archive int
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	Client     platform.Client
	Guard      *DuplicateGuard
	Pruner     *ChannelPruner
	Locker     persistence.TicketLocker
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewTicketService constructs the service.
func NewTicketService(cfg config.TicketConfig, deps TicketDependencies) *TicketService {
	return &TicketService{
		client:  deps.Client,
		guard:   deps.Guard,
		pruner:  deps.Pruner,
		locker:  deps.Locker,
		bus:     deps.Dispatcher,
		logger:  deps.Logger,
		channel: cfg.SupportChannelID,
		roleID:  cfg.SupportRoleID,
		archive: cfg.AutoArchiveMinutes,
	}
}

// OpenTicket runs the creation path: resolve channel, duplicate guard, thread
// creation, membership, staff notification, close control, channel cleanup.
// The steps are sequential and not rolled back on failure; a failure after
// thread creation leaves the thread in place and is logged with its ID.
func (s *TicketService) OpenTicket(ctx context.Context, requester domain.User, categoryValue string) (*domain.Ticket, error) {
	category, ok := domain.CategoryByValue(categoryValue)
	if !ok {
		s.publishRejection(ctx, requester, apperrors.CodeUnrecognizedCategory)
		return nil, apperrors.NewUnrecognizedCategory(categoryValue)
	}

	locked, err := s.locker.Acquire(ctx, s.channel, requester.ID)
	if err != nil {
		// Degrades to the unguarded (racy) behavior rather than blocking
		// ticket intake on the lock backend.
		s.logger.Warn("ticket lock unavailable, proceeding without it",
			zap.String("user_id", requester.ID), zap.Error(err))
	} else if !locked {
		s.publishRejection(ctx, requester, apperrors.CodeGuardRejected)
		return nil, apperrors.NewGuardRejected()
	} else {
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), s.channel, requester.ID); err != nil {
				s.logger.Warn("failed to release ticket lock",
					zap.String("user_id", requester.ID), zap.Error(err))
			}
		}()
	}

	parent, err := s.client.Channel(ctx, s.channel)
	if err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return nil, apperrors.NewChannelUnavailable()
		}
		return nil, apperrors.NewPlatformCallFailed(err)
	}
	if !parent.Text || parent.Thread {
		return nil, apperrors.NewChannelUnavailable()
	}

	hasTicket, err := s.guard.HasOpenTicket(ctx, parent, requester.ID)
	if err != nil {
		return nil, err
	}
	if hasTicket {
		s.publishRejection(ctx, requester, apperrors.CodeGuardRejected)
		return nil, apperrors.NewGuardRejected()
	}

	thread, err := s.client.CreateThread(ctx, parent.ID, platform.ThreadCreate{
		Name:               category.ThreadName(requester.Name),
		AutoArchiveMinutes: s.archive,
		Reason:             fmt.Sprintf("Support thread created by %s", requester.Name),
	})
	if err != nil {
		return nil, apperrors.NewPlatformCallFailed(err)
	}

	if err := s.client.AddThreadMember(ctx, thread.ID, requester.ID); err != nil {
		s.logOrphan(thread.ID, "add member", err)
		return nil, apperrors.NewPlatformCallFailed(err)
	}

	notification := fmt.Sprintf("<@&%s> New ticket created by <@%s>!", s.roleID, requester.ID)
	if err := s.client.SendMessage(ctx, thread.ID, notification); err != nil {
		s.logOrphan(thread.ID, "staff notification", err)
		return nil, apperrors.NewPlatformCallFailed(err)
	}

	if err := s.client.SendCloseControl(ctx, thread.ID); err != nil {
		s.logOrphan(thread.ID, "close control", err)
		return nil, apperrors.NewPlatformCallFailed(err)
	}

	pruned, err := s.pruner.Prune(ctx, parent.ID)
	if err != nil {
		// Cleanup is cosmetic; a failed pass never fails the ticket.
		s.logger.Warn("channel cleanup failed",
			zap.String("channel_id", parent.ID), zap.Error(err))
	}

	ticket := &domain.Ticket{
		ThreadID:        thread.ID,
		ParentChannelID: parent.ID,
		Requester:       requester,
		Category:        category,
		Status:          domain.TicketStatusOpen,
	}

	_ = s.bus.Publish(ctx, events.Event{
		Type:     events.EventTicketOpened,
		ThreadID: thread.ID,
		ActorID:  requester.ID,
		Payload: events.TicketOpenedPayload{
			Category:    category.Value,
			RequesterID: requester.ID,
			PrunedCount: pruned,
		},
	})

	return ticket, nil
}

// CloseTicket runs the closure path. The invoking context must be a thread;
// a thread that is already locked or archived reports AlreadyClosed without
// issuing further platform mutations, so calling twice is safe. Lock is
// applied before archive: archiving alone still lets the thread be reopened,
// locking is what revokes writes.
func (s *TicketService) CloseTicket(ctx context.Context, channelID string, actor domain.User) (*domain.Ticket, error) {
	thread, err := s.client.Channel(ctx, channelID)
	if err != nil {
		if errors.Is(err, platform.ErrNotFound) {
			return nil, apperrors.NewNotAThread()
		}
		return nil, apperrors.NewPlatformCallFailed(err)
	}
	if !thread.Thread {
		return nil, apperrors.NewNotAThread()
	}
	if thread.Locked || thread.Archived {
		return nil, apperrors.NewAlreadyClosed()
	}

	acknowledgment := fmt.Sprintf("Ticket closed by <@%s>.", actor.ID)
	if err := s.client.SendMessage(ctx, thread.ID, acknowledgment); err != nil {
		return nil, apperrors.NewPlatformCallFailed(err)
	}

	reason := fmt.Sprintf("Ticket closed by %s", actor.Name)
	if err := s.client.LockThread(ctx, thread.ID, reason); err != nil {
		return nil, apperrors.NewPlatformCallFailed(err)
	}
	if err := s.client.ArchiveThread(ctx, thread.ID, reason); err != nil {
		return nil, apperrors.NewPlatformCallFailed(err)
	}

	_ = s.bus.Publish(ctx, events.Event{
		Type:     events.EventTicketClosed,
		ThreadID: thread.ID,
		ActorID:  actor.ID,
		Payload:  events.TicketClosedPayload{ClosedByID: actor.ID},
	})

	return &domain.Ticket{
		ThreadID:        thread.ID,
		ParentChannelID: thread.ParentID,
		Requester:       domain.User{},
		Status:          domain.TicketStatusClosed,
	}, nil
}

func (s *TicketService) publishRejection(ctx context.Context, requester domain.User, reason string) {
	_ = s.bus.Publish(ctx, events.Event{
		Type:    events.EventTicketRejected,
		ActorID: requester.ID,
		Payload: events.TicketRejectedPayload{
			Reason:      reason,
			RequesterID: requester.ID,
		},
	})
}

// logOrphan records a thread left without its follow-up steps. The thread is
// not deleted; it exists on the platform but is silent until staff notice.
func (s *TicketService) logOrphan(threadID, step string, err error) {
	s.logger.Error("ticket thread left incomplete",
		zap.String("thread_id", threadID),
		zap.String("failed_step", step),
		zap.Error(err),
	)
}
