package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/common/logger"
	gameRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/game"
	"go.uber.org/zap"
)

// CleanupStaleGames removes games with no activity for longer than MaxIdle.
// Each candidate is re-read under its chat lock so an action that landed after
// the listing keeps its game alive.
func (s *service) CleanupStaleGames(ctx context.Context, input *CleanupStaleGamesInput) (*CleanupStaleGamesOutput, error) {
	if input == nil || input.MaxIdle <= 0 {
		return nil, errors.New("max idle must be positive")
	}

	listed, err := s.gameRepo.ListGames(ctx, &gameRepo.ListGamesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	output := &CleanupStaleGamesOutput{RemovedChatIDs: []string{}}
	for _, candidate := range listed.Games {
		if ctx.Err() != nil {
			return output, ctx.Err()
		}

		removed, err := s.removeIfStale(ctx, candidate.ChatID, input.MaxIdle)
		if err != nil {
			s.logger.Error("failed to sweep game",
				zap.String("chat_id", candidate.ChatID),
				zap.Error(err))
			continue
		}
		if removed {
			output.RemovedChatIDs = append(output.RemovedChatIDs, candidate.ChatID)
		}
	}

	return output, nil
}

func (s *service) removeIfStale(ctx context.Context, chatID string, maxIdle time.Duration) (bool, error) {
	unlock := s.locks.Lock(chatID)
	defer unlock()

	game, err := s.loadGame(ctx, chatID)
	if err != nil {
		if errors.Is(err, ErrNoActiveGame) {
			return false, nil
		}
		return false, err
	}

	if s.clock.Now().Sub(game.UpdatedAt) <= maxIdle {
		return false, nil
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{ChatID: chatID}); err != nil {
		return false, fmt.Errorf("failed to remove game: %w", err)
	}

	s.logger.Info("removed stale game",
		zap.String("chat_id", chatID),
		zap.String("game_id", game.ID),
		zap.Time("updated_at", game.UpdatedAt))

	return true, nil
}

// SweeperConfig holds configuration for the stale game sweeper
type SweeperConfig struct {
	Service  Service
	Interval time.Duration
	MaxIdle  time.Duration
	Logger   *zap.Logger
}

// Sweeper calls CleanupStaleGames on a fixed interval
type Sweeper struct {
	service  Service
	interval time.Duration
	maxIdle  time.Duration
	logger   *zap.Logger
}

// NewSweeper creates a new sweeper
func NewSweeper(cfg *SweeperConfig) (*Sweeper, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Service == nil {
		return nil, ErrNilService
	}

	if cfg.Interval <= 0 || cfg.MaxIdle <= 0 {
		return nil, errors.New("sweep interval and max idle must be positive")
	}

	return &Sweeper{
		service:  cfg.Service,
		interval: cfg.Interval,
		maxIdle:  cfg.MaxIdle,
		logger:   logger.OrNop(cfg.Logger),
	}, nil
}

// Run sweeps until ctx is cancelled
func (w *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs a single cleanup pass
func (w *Sweeper) Sweep(ctx context.Context) {
	output, err := w.service.CleanupStaleGames(ctx, &CleanupStaleGamesInput{MaxIdle: w.maxIdle})
	if err != nil {
		w.logger.Error("stale game sweep failed", zap.Error(err))
		return
	}

	if len(output.RemovedChatIDs) > 0 {
		w.logger.Info("stale game sweep",
			zap.Strings("removed_chat_ids", output.RemovedChatIDs))
	}
}
