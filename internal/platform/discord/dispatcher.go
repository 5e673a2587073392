package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/support-thread-bot/internal/observability"
	"github.com/spec-kit/support-thread-bot/internal/service"
	apperrors "github.com/spec-kit/support-thread-bot/pkg/util"
)

// handleTimeout bounds one interaction's platform work. The initial
// acknowledgment is sent before any of it, so this only limits how long the
// follow-up can lag.
const handleTimeout = time.Minute

// Dispatcher routes gateway interactions to the ticket services and owns the
// exactly-one-visible-response guarantee: each handled interaction gets a
// deferred acknowledgment up front and exactly one follow-up with the
// success, rejection, or generic failure text.
type Dispatcher struct {
	tickets *service.TicketService
	prompt  *service.PromptService
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewDispatcher constructs the dispatcher.
func NewDispatcher(tickets *service.TicketService, prompt *service.PromptService, logger *zap.Logger, metrics *observability.Metrics) *Dispatcher {
	return &Dispatcher{tickets: tickets, prompt: prompt, logger: logger, metrics: metrics}
}

// Register attaches the dispatcher to a session. discordgo invokes the
// handler on its own goroutine per event, so interactions interleave freely.
func (d *Dispatcher) Register(session *discordgo.Session) {
	session.AddHandler(d.HandleInteraction)
}

// HandleInteraction is the gateway entry point.
func (d *Dispatcher) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	event := ParseInteraction(i)
	if skip, ok := event.(Unhandled); ok {
		d.logger.Debug("ignoring interaction",
			zap.String("kind", skip.Kind),
			zap.String("custom_id", skip.CustomID),
		)
		return
	}

	logger := d.logger.With(
		zap.String("interaction_id", i.ID),
		zap.String("correlation_id", uuid.NewString()),
	)

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	r := newResponder(s, i.Interaction)
	if err := r.ack(ctx); err != nil {
		logger.Warn("failed to acknowledge interaction", zap.Error(err))
	}

	var (
		kind    string
		content string
		err     error
	)
	switch ev := event.(type) {
	case CategorySelected:
		kind = "category_select"
		content, err = d.handleCategorySelected(ctx, ev)
	case CloseRequested:
		kind = "close_button"
		content, err = d.handleCloseRequested(ctx, ev)
	case SummonRequested:
		kind = "summon_command"
		content, err = d.handleSummonRequested(ctx, ev)
	case Unhandled:
		return
	}

	outcome := "ok"
	if err != nil {
		domainErr := apperrors.ToDomainError(err)
		outcome = domainErr.Code
		content = domainErr.Message
		if domainErr.Internal() {
			logger.Error("interaction failed", zap.String("kind", kind), zap.Error(domainErr))
		} else {
			logger.Info("interaction rejected",
				zap.String("kind", kind),
				zap.String("code", domainErr.Code),
			)
		}
	}
	d.metrics.RecordInteraction(kind, outcome)

	if err := r.respond(ctx, content); err != nil {
		logger.Error("failed to respond to interaction", zap.String("kind", kind), zap.Error(err))
	}
}

func (d *Dispatcher) handleCategorySelected(ctx context.Context, ev CategorySelected) (string, error) {
	ticket, err := d.tickets.OpenTicket(ctx, ev.User, ev.Value)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s\n<#%s>", ticket.Category.Confirmation, ticket.ThreadID), nil
}

func (d *Dispatcher) handleCloseRequested(ctx context.Context, ev CloseRequested) (string, error) {
	if _, err := d.tickets.CloseTicket(ctx, ev.ChannelID, ev.User); err != nil {
		return "", err
	}
	return "Ticket closed.", nil
}

func (d *Dispatcher) handleSummonRequested(ctx context.Context, ev SummonRequested) (string, error) {
	if !ev.Admin {
		return "", apperrors.NewPermissionDenied("You need to be an administrator to use this command.")
	}
	if err := d.prompt.PublishPrompt(ctx); err != nil {
		return "", err
	}
	return "Support message sent on the support channel!", nil
}
