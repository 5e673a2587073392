package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/require"
)

func componentInteraction(customID string, values ...string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			ChannelID: "chan-1",
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-a", Username: "alice"},
			},
			Data: discordgo.MessageComponentInteractionData{
				CustomID: customID,
				Values:   values,
			},
		},
	}
}

func TestParseCategorySelection(t *testing.T) {
	ev := ParseInteraction(componentInteraction(CustomIDSupportCategory, "technical"))

	selected, ok := ev.(CategorySelected)
	require.True(t, ok)
	require.Equal(t, "technical", selected.Value)
	require.Equal(t, "user-a", selected.User.ID)
	require.Equal(t, "alice", selected.User.Name)
}

func TestParseCloseButton(t *testing.T) {
	ev := ParseInteraction(componentInteraction(CustomIDCloseTicket))

	closeReq, ok := ev.(CloseRequested)
	require.True(t, ok)
	require.Equal(t, "chan-1", closeReq.ChannelID)
	require.Equal(t, "user-a", closeReq.User.ID)
}

func TestParseSummonCommand(t *testing.T) {
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{
				User:        &discordgo.User{ID: "admin-1", Username: "root"},
				Permissions: discordgo.PermissionAdministrator,
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: SummonCommandName},
		},
	}

	ev := ParseInteraction(interaction)
	summon, ok := ev.(SummonRequested)
	require.True(t, ok)
	require.True(t, summon.Admin)
	require.Equal(t, "admin-1", summon.User.ID)
}

func TestParseSummonWithoutAdmin(t *testing.T) {
	interaction := &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "user-a", Username: "alice"},
			},
			Data: discordgo.ApplicationCommandInteractionData{Name: SummonCommandName},
		},
	}

	summon, ok := ParseInteraction(interaction).(SummonRequested)
	require.True(t, ok)
	require.False(t, summon.Admin)
}

func TestParseForeignComponentIgnored(t *testing.T) {
	ev := ParseInteraction(componentInteraction("some-other-button"))

	unhandled, ok := ev.(Unhandled)
	require.True(t, ok)
	require.Equal(t, "some-other-button", unhandled.CustomID)
}

func TestParseEmptySelectionIgnored(t *testing.T) {
	_, ok := ParseInteraction(componentInteraction(CustomIDSupportCategory)).(Unhandled)
	require.True(t, ok)
}
