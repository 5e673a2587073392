package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// responder tracks whether an interaction has been acknowledged so the final
// text lands as the deferred follow-up when the ack succeeded, or as a direct
// reply when it did not. Either way the interaction gets one visible answer.
type responder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
	acked       bool
}

func newResponder(session *discordgo.Session, interaction *discordgo.Interaction) *responder {
	return &responder{session: session, interaction: interaction}
}

// ack sends the deferred ephemeral acknowledgment. Must happen within the
// platform's initial-response window; the real work runs after it.
func (r *responder) ack(ctx context.Context) error {
	err := r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
	if err == nil {
		r.acked = true
	}
	return err
}

// respond delivers the single user-visible result.
func (r *responder) respond(ctx context.Context, content string) error {
	if r.acked {
		_, err := r.session.FollowupMessageCreate(r.interaction, true, &discordgo.WebhookParams{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		}, discordgo.WithContext(ctx))
		return err
	}
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}, discordgo.WithContext(ctx))
}
