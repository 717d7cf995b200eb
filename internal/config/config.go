package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreBackendMemory = "memory"
	StoreBackendRedis  = "redis"
)

// Config is the process configuration
type Config struct {
	Discord DiscordConfig `mapstructure:"discord"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Store   StoreConfig   `mapstructure:"store"`
	Game    GameConfig    `mapstructure:"game"`
	Sweep   SweepConfig   `mapstructure:"sweep"`
	Log     LogConfig     `mapstructure:"log"`
}

type DiscordConfig struct {
	Token         string `mapstructure:"token"`
	ApplicationID string `mapstructure:"application_id"`
	// Optional guild ID for development (server-specific commands)
	GuildID string `mapstructure:"guild_id"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type StoreConfig struct {
	// Backend is "memory" or "redis"
	Backend string `mapstructure:"backend"`
}

type GameConfig struct {
	MaxPlayers int `mapstructure:"max_players"`
	DefaultBet int `mapstructure:"default_bet"`
	MinBet     int `mapstructure:"min_bet"`
	MaxBet     int `mapstructure:"max_bet"`
	BetStep    int `mapstructure:"bet_step"`
}

type SweepConfig struct {
	Interval time.Duration `mapstructure:"interval"`
	MaxIdle  time.Duration `mapstructure:"max_idle"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode"` // development, release
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("discord.token", "")
	v.SetDefault("discord.application_id", "")
	v.SetDefault("discord.guild_id", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("store.backend", StoreBackendMemory)

	v.SetDefault("game.max_players", 6)
	v.SetDefault("game.default_bet", 10)
	v.SetDefault("game.min_bet", 10)
	v.SetDefault("game.max_bet", 1000)
	v.SetDefault("game.bet_step", 10)

	v.SetDefault("sweep.interval", 5*time.Minute)
	v.SetDefault("sweep.max_idle", 10*time.Minute)

	v.SetDefault("log.mode", "development")
}

// Load reads configuration from defaults, an optional YAML file named by
// CONFIG_FILE, a .env file and the environment, later sources winning.
// Keys map to environment variables with dots replaced by underscores,
// e.g. discord.token is DISCORD_TOKEN.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values that would break the game rules
func (c *Config) Validate() error {
	if c.Game.MaxPlayers < 2 {
		return errors.New("game.max_players must be at least 2")
	}
	if c.Game.MinBet <= 0 || c.Game.MaxBet < c.Game.MinBet {
		return errors.New("game.min_bet must be positive and not above game.max_bet")
	}
	if c.Game.DefaultBet < c.Game.MinBet || c.Game.DefaultBet > c.Game.MaxBet {
		return errors.New("game.default_bet must be between game.min_bet and game.max_bet")
	}
	if c.Sweep.Interval <= 0 || c.Sweep.MaxIdle <= 0 {
		return errors.New("sweep.interval and sweep.max_idle must be positive")
	}
	switch c.Store.Backend {
	case StoreBackendMemory:
	case StoreBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis store backend")
		}
	default:
		return fmt.Errorf("unknown store.backend %q", c.Store.Backend)
	}
	return nil
}
