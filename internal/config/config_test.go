package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Game.MaxPlayers)
	assert.Equal(t, 10, cfg.Game.DefaultBet)
	assert.Equal(t, StoreBackendMemory, cfg.Store.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Sweep.Interval)
	assert.Equal(t, 10*time.Minute, cfg.Sweep.MaxIdle)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DISCORD_TOKEN", "secret")
	t.Setenv("GAME_MAX_PLAYERS", "4")
	t.Setenv("SWEEP_MAX_IDLE", "30m")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Discord.Token)
	assert.Equal(t, 4, cfg.Game.MaxPlayers)
	assert.Equal(t, 30*time.Minute, cfg.Sweep.MaxIdle)
	assert.Equal(t, StoreBackendRedis, cfg.Store.Backend)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("game:\n  max_players: 3\n  default_bet: 50\nsweep:\n  interval: 1m\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Game.MaxPlayers)
	assert.Equal(t, 50, cfg.Game.DefaultBet)
	assert.Equal(t, time.Minute, cfg.Sweep.Interval)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store: StoreConfig{Backend: StoreBackendMemory},
			Game:  GameConfig{MaxPlayers: 6, DefaultBet: 10, MinBet: 10, MaxBet: 100, BetStep: 10},
			Sweep: SweepConfig{Interval: time.Minute, MaxIdle: time.Minute},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Game.MaxPlayers = 1
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Game.DefaultBet = 1000
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Store.Backend = StoreBackendRedis
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Store.Backend = "postgres"
	assert.Error(t, cfg.Validate())
}
