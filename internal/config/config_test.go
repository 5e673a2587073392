package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("SUPPORT_CHANNEL_ID", "chan-1")
	t.Setenv("SUPPORT_ROLE_ID", "role-1")
	t.Setenv("REDIS_ADDR", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 4320, cfg.Ticket.AutoArchiveMinutes)
	require.Equal(t, 100, cfg.Ticket.CleanupFetchLimit)
	require.Equal(t, "info", cfg.Logger.Level)
	require.Empty(t, cfg.Redis.Addr)
}

func TestLoadMissingRequired(t *testing.T) {
	setRequired(t)
	t.Setenv("SUPPORT_ROLE_ID", "")

	_, err := Load()
	require.ErrorContains(t, err, "SUPPORT_ROLE_ID")
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("THREAD_AUTO_ARCHIVE_MINUTES", "60")
	t.Setenv("CLEANUP_FETCH_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 60, cfg.Ticket.AutoArchiveMinutes)
	require.Equal(t, 25, cfg.Ticket.CleanupFetchLimit)
}
