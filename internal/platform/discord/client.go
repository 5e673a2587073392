// Package discord implements the platform client over the Discord API and
// routes gateway interactions into the ticket services.
package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/support-thread-bot/internal/domain"
	"github.com/spec-kit/support-thread-bot/internal/platform"
)

// Component custom IDs. The close control and the category menu are matched
// on these by the dispatcher.
const (
	CustomIDSupportCategory = "support-category"
	CustomIDCloseTicket     = "close-ticket"
)

// SummonCommandName is the admin command that posts the category prompt.
const SummonCommandName = "summon"

const promptEmbedColor = 0xB56FCA

// Client adapts a discordgo session to the platform.Client interface.
type Client struct {
	session *discordgo.Session
}

// NewClient wraps an open (or about to be opened) session.
func NewClient(session *discordgo.Session) *Client {
	return &Client{session: session}
}

var _ platform.Client = (*Client)(nil)

func (c *Client) Channel(ctx context.Context, channelID string) (*platform.Channel, error) {
	ch, err := c.session.Channel(channelID, discordgo.WithContext(ctx))
	if err != nil {
		if isNotFound(err) {
			return nil, platform.ErrNotFound
		}
		return nil, fmt.Errorf("fetch channel %s: %w", channelID, err)
	}
	return convertChannel(ch), nil
}

func (c *Client) ActiveThreads(ctx context.Context, parent *platform.Channel) ([]platform.Channel, error) {
	// Discord only exposes active threads per guild; filter down to the
	// parent channel here.
	list, err := c.session.GuildThreadsActive(parent.GuildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch active threads: %w", err)
	}
	threads := make([]platform.Channel, 0, len(list.Threads))
	for _, th := range list.Threads {
		if th.ParentID != parent.ID {
			continue
		}
		threads = append(threads, *convertChannel(th))
	}
	return threads, nil
}

func (c *Client) ThreadMembers(ctx context.Context, threadID string) ([]string, error) {
	members, err := c.session.ThreadMembers(threadID, 100, false, "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch thread members %s: %w", threadID, err)
	}
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}
	return ids, nil
}

func (c *Client) CreateThread(ctx context.Context, channelID string, create platform.ThreadCreate) (*platform.Channel, error) {
	th, err := c.session.ThreadStartComplex(channelID, &discordgo.ThreadStart{
		Name:                create.Name,
		AutoArchiveDuration: create.AutoArchiveMinutes,
		Type:                discordgo.ChannelTypeGuildPublicThread,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(create.Reason))
	if err != nil {
		return nil, fmt.Errorf("create thread in %s: %w", channelID, err)
	}
	return convertChannel(th), nil
}

func (c *Client) AddThreadMember(ctx context.Context, threadID, userID string) error {
	if err := c.session.ThreadMemberAdd(threadID, userID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("add member %s to thread %s: %w", userID, threadID, err)
	}
	return nil
}

func (c *Client) SendMessage(ctx context.Context, channelID, content string) error {
	if _, err := c.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send message to %s: %w", channelID, err)
	}
	return nil
}

func (c *Client) SendCloseControl(ctx context.Context, threadID string) error {
	_, err := c.session.ChannelMessageSendComplex(threadID, &discordgo.MessageSend{
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.Button{
						Label:    "❌ Close Ticket",
						Style:    discordgo.DangerButton,
						CustomID: CustomIDCloseTicket,
					},
				},
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send close control to %s: %w", threadID, err)
	}
	return nil
}

func (c *Client) SendPrompt(ctx context.Context, channelID string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "📩 Support",
		Description: "Click the button below and select the service category.\n \nOur team is willing to help you.",
		Color:       promptEmbedColor,
	}

	options := make([]discordgo.SelectMenuOption, 0, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		options = append(options, discordgo.SelectMenuOption{
			Label:       cat.Label,
			Value:       string(cat.Value),
			Description: cat.Description,
			Emoji:       &discordgo.ComponentEmoji{Name: cat.Emoji},
		})
	}

	_, err := c.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{
				Components: []discordgo.MessageComponent{
					discordgo.SelectMenu{
						MenuType:    discordgo.StringSelectMenu,
						CustomID:    CustomIDSupportCategory,
						Placeholder: "Select a category",
						Options:     options,
					},
				},
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send prompt to %s: %w", channelID, err)
	}
	return nil
}

func (c *Client) RecentMessages(ctx context.Context, channelID string, limit int) ([]platform.Message, error) {
	msgs, err := c.session.ChannelMessages(channelID, limit, "", "", "", discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("fetch messages in %s: %w", channelID, err)
	}
	out := make([]platform.Message, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, platform.Message{
			ID:         msg.ID,
			ChannelID:  channelID,
			EmbedCount: len(msg.Embeds),
		})
	}
	return out, nil
}

func (c *Client) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	if err := c.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx)); err != nil {
		if isNotFound(err) {
			return platform.ErrNotFound
		}
		return fmt.Errorf("delete message %s: %w", messageID, err)
	}
	return nil
}

func (c *Client) LockThread(ctx context.Context, threadID, reason string) error {
	locked := true
	_, err := c.session.ChannelEditComplex(threadID, &discordgo.ChannelEdit{
		Locked: &locked,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return fmt.Errorf("lock thread %s: %w", threadID, err)
	}
	return nil
}

func (c *Client) ArchiveThread(ctx context.Context, threadID, reason string) error {
	archived := true
	_, err := c.session.ChannelEditComplex(threadID, &discordgo.ChannelEdit{
		Archived: &archived,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
	if err != nil {
		return fmt.Errorf("archive thread %s: %w", threadID, err)
	}
	return nil
}

// Ping reports gateway health for the readiness probe.
func (c *Client) Ping(_ context.Context) error {
	if c.session == nil || c.session.State == nil || c.session.State.User == nil {
		return fmt.Errorf("gateway session not ready")
	}
	return nil
}

func convertChannel(ch *discordgo.Channel) *platform.Channel {
	out := &platform.Channel{
		ID:       ch.ID,
		GuildID:  ch.GuildID,
		ParentID: ch.ParentID,
		Name:     ch.Name,
		Thread:   ch.IsThread(),
	}
	switch ch.Type {
	case discordgo.ChannelTypeGuildText, discordgo.ChannelTypeGuildNews:
		out.Text = true
	}
	if ch.ThreadMetadata != nil {
		out.Locked = ch.ThreadMetadata.Locked
		out.Archived = ch.ThreadMetadata.Archived
	}
	return out
}

func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Response != nil {
		return restErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}
