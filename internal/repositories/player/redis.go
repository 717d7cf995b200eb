package player

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	playerKeyPrefix = "blackjack:player:"

	fieldName        = "name"
	fieldGamesPlayed = "games_played"
	fieldGamesWon    = "games_won"
	fieldGamesTied   = "games_tied"
	fieldGamesLost   = "games_lost"
	fieldBlackjacks  = "blackjacks"
	fieldFirstSeen   = "first_seen"
	fieldLastPlayed  = "last_played"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

var outcomeFields = map[models.Outcome]string{
	models.OutcomeWon:  fieldGamesWon,
	models.OutcomeTied: fieldGamesTied,
	models.OutcomeLost: fieldGamesLost,
}

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis hashes, so
// counters are incremented server-side
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
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
	}, nil
}

func playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}

// UpsertPlayer records the user's name and first-seen time
func (r *redisRepository) UpsertPlayer(ctx context.Context, input *UpsertPlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	key := playerKey(input.PlayerID)
	pipe := r.client.TxPipeline()
	if input.Name != "" {
		pipe.HSet(ctx, key, fieldName, input.Name)
	}
	pipe.HSetNX(ctx, key, fieldFirstSeen, input.SeenAt.UTC().Format(time.RFC3339))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.UserRecord, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	fields, err := r.client.HGetAll(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}
	if len(fields) == 0 {
		return nil, ErrPlayerNotFound
	}

	record := &models.UserRecord{
		ID:   input.PlayerID,
		Name: fields[fieldName],
	}

	counters := map[string]*int{
		fieldGamesPlayed: &record.GamesPlayed,
		fieldGamesWon:    &record.GamesWon,
		fieldGamesTied:   &record.GamesTied,
		fieldGamesLost:   &record.GamesLost,
		fieldBlackjacks:  &record.Blackjacks,
	}
	for field, dst := range counters {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for player %s: %w", field, input.PlayerID, err)
		}
		*dst = n
	}

	timestamps := map[string]*time.Time{
		fieldFirstSeen:  &record.FirstSeen,
		fieldLastPlayed: &record.LastPlayed,
	}
	for field, dst := range timestamps {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s for player %s: %w", field, input.PlayerID, err)
		}
		*dst = t
	}

	return record, nil
}

// RecordResult increments the user's counters for one finished round
func (r *redisRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	outcomeField, ok := outcomeFields[input.Outcome]
	if !ok {
		return fmt.Errorf("unknown outcome %q", input.Outcome)
	}

	key := playerKey(input.PlayerID)
	playedAt := input.PlayedAt.UTC().Format(time.RFC3339)

	pipe := r.client.TxPipeline()
	if input.Name != "" {
		pipe.HSet(ctx, key, fieldName, input.Name)
	}
	pipe.HSetNX(ctx, key, fieldFirstSeen, playedAt)
	pipe.HSet(ctx, key, fieldLastPlayed, playedAt)
	pipe.HIncrBy(ctx, key, fieldGamesPlayed, 1)
	pipe.HIncrBy(ctx, key, outcomeField, 1)
	if input.Blackjack {
		pipe.HIncrBy(ctx, key, fieldBlackjacks, 1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record result: %w", err)
	}

	return nil
}

// ResetStats zeroes every counter of a known user
func (r *redisRepository) ResetStats(ctx context.Context, input *ResetStatsInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	key := playerKey(input.PlayerID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to check player: %w", err)
	}
	if exists == 0 {
		return ErrPlayerNotFound
	}

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		fieldGamesPlayed, 0,
		fieldGamesWon, 0,
		fieldGamesTied, 0,
		fieldGamesLost, 0,
		fieldBlackjacks, 0,
	)
	pipe.HDel(ctx, key, fieldLastPlayed)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}

	return nil
}
