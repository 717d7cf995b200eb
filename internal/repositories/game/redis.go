package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix = "blackjack:game:"
	liveGamesKey  = "blackjack:games"
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL expires games Redis-side in case the sweeper never runs. Zero keeps them.
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errNilConfig
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    cfg.TTL,
	}, nil
}

func gameKey(chatID string) string {
	return fmt.Sprintf("%s%s", gameKeyPrefix, chatID)
}

// SaveGame persists a game to Redis
func (r *redisRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errNilGame
	}
	if input.Game.ChatID == "" {
		return errNoChatID
	}

	gameJSON, err := json.Marshal(input.Game)
	if err != nil {
		return fmt.Errorf("failed to marshal game: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, gameKey(input.Game.ChatID), gameJSON, r.ttl)
	pipe.SAdd(ctx, liveGamesKey, input.Game.ChatID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save game: %w", err)
	}

	return nil
}

// GetGameByChat retrieves a chat's game from Redis
func (r *redisRepository) GetGameByChat(ctx context.Context, input *GetGameByChatInput) (*models.Game, error) {
	if input == nil || input.ChatID == "" {
		return nil, errNoChatID
	}

	gameJSON, err := r.client.Get(ctx, gameKey(input.ChatID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	var game models.Game
	if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, nil
}

// DeleteGame removes a chat's game from Redis
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.ChatID == "" {
		return errNoChatID
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameKey(input.ChatID))
	pipe.SRem(ctx, liveGamesKey, input.ChatID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	return nil
}

// ListGames retrieves every live game from Redis
func (r *redisRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	chatIDs, err := r.client.SMembers(ctx, liveGamesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get live chat IDs: %w", err)
	}

	if len(chatIDs) == 0 {
		return &ListGamesOutput{
			Games: []*models.Game{},
		}, nil
	}

	// Get all games in one round trip
	pipe := r.client.Pipeline()
	gameCommands := make(map[string]*redis.StringCmd, len(chatIDs))
	for _, chatID := range chatIDs {
		gameCommands[chatID] = pipe.Get(ctx, gameKey(chatID))
	}

	// redis.Nil for expired entries is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get live games: %w", err)
	}

	games := make([]*models.Game, 0, len(chatIDs))
	var expired []any
	for chatID, cmd := range gameCommands {
		gameJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Expired by TTL, drop it from the index
				expired = append(expired, chatID)
				continue
			}
			return nil, fmt.Errorf("failed to get game for chat %s: %w", chatID, err)
		}

		var game models.Game
		if err := json.Unmarshal([]byte(gameJSON), &game); err != nil {
			return nil, fmt.Errorf("failed to unmarshal game for chat %s: %w", chatID, err)
		}

		games = append(games, &game)
	}

	if len(expired) > 0 {
		if err := r.client.SRem(ctx, liveGamesKey, expired...).Err(); err != nil {
			return nil, fmt.Errorf("failed to prune expired games: %w", err)
		}
	}

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &ListGamesOutput{
		Games: games,
	}, nil
}
