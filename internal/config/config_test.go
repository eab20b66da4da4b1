package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lecrapal/Cairn-FoundryVTT/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CAIRN_CONTENT_DIR", "CAIRN_SEED", "REDIS_URL", "DISCORD_TOKEN",
		"DISCORD_CHANNEL_ID", "CAIRN_OWNER_FORMAT", "CAIRN_LOG_LEVEL",
	} {
		// Setenv restores the original value on cleanup
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Content.Dir)
	assert.Empty(t, cfg.Redis.URL)
	assert.False(t, cfg.Discord.Enabled())
	assert.Equal(t, int64(0), cfg.Generation.Seed)
	assert.Equal(t, "{owner}'s {actor}", cfg.Generation.OwnerFormat)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CAIRN_CONTENT_DIR", "/srv/decks")
	t.Setenv("CAIRN_SEED", "1234")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "42")
	t.Setenv("CAIRN_OWNER_FORMAT", "{actor} of {owner}")
	t.Setenv("CAIRN_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/decks", cfg.Content.Dir)
	assert.Equal(t, int64(1234), cfg.Generation.Seed)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.True(t, cfg.Discord.Enabled())
	assert.Equal(t, "42", cfg.Discord.ChannelID)
	assert.Equal(t, "{actor} of {owner}", cfg.Generation.OwnerFormat)

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "discord without channel", env: map[string]string{"DISCORD_TOKEN": "token"}},
		{name: "owner format without actor", env: map[string]string{"CAIRN_OWNER_FORMAT": "{owner}"}},
		{name: "bad log level", env: map[string]string{"CAIRN_LOG_LEVEL": "loud"}},
		{name: "bad seed", env: map[string]string{"CAIRN_SEED": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
