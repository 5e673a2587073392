package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/spec-kit/support-thread-bot/internal/domain"
)

// InteractionEvent is the tagged variant an incoming interaction is reduced
// to before dispatch. Discrimination is by (interaction kind, custom ID);
// anything the bot does not own becomes Unhandled.
type InteractionEvent interface {
	isInteractionEvent()
}

// CategorySelected is a choice on the support-category menu.
type CategorySelected struct {
	User  domain.User
	Value string
}

// CloseRequested is a press of the close-ticket button.
type CloseRequested struct {
	User      domain.User
	ChannelID string
}

// SummonRequested is the admin summon command.
type SummonRequested struct {
	User  domain.User
	Admin bool
}

// Unhandled is any interaction the bot does not own.
type Unhandled struct {
	Kind     string
	CustomID string
}

func (CategorySelected) isInteractionEvent() {}
func (CloseRequested) isInteractionEvent()   {}
func (SummonRequested) isInteractionEvent()  {}
func (Unhandled) isInteractionEvent()        {}

// ParseInteraction reduces a gateway interaction to its event variant.
func ParseInteraction(i *discordgo.InteractionCreate) InteractionEvent {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		data := i.MessageComponentData()
		switch data.CustomID {
		case CustomIDSupportCategory:
			if len(data.Values) == 0 {
				return Unhandled{Kind: "component", CustomID: data.CustomID}
			}
			return CategorySelected{User: interactionUser(i), Value: data.Values[0]}
		case CustomIDCloseTicket:
			return CloseRequested{User: interactionUser(i), ChannelID: i.ChannelID}
		default:
			return Unhandled{Kind: "component", CustomID: data.CustomID}
		}
	case discordgo.InteractionApplicationCommand:
		data := i.ApplicationCommandData()
		if data.Name == SummonCommandName {
			return SummonRequested{User: interactionUser(i), Admin: isAdmin(i)}
		}
		return Unhandled{Kind: "command", CustomID: data.Name}
	default:
		return Unhandled{Kind: i.Type.String()}
	}
}

func interactionUser(i *discordgo.InteractionCreate) domain.User {
	if i.Member != nil && i.Member.User != nil {
		return domain.User{ID: i.Member.User.ID, Name: i.Member.User.Username}
	}
	if i.User != nil {
		return domain.User{ID: i.User.ID, Name: i.User.Username}
	}
	return domain.User{}
}

func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0
}
