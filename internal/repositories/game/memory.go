package game

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/blackjackbot/internal/models"
)

// memoryRepository keeps games in process memory. Sessions are lost on restart.
type memoryRepository struct {
	mu    sync.RWMutex
	games map[string]*models.Game
}

// NewMemory creates an in-memory game repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		games: make(map[string]*models.Game),
	}
}

// SaveGame stores a copy of the game under its chat ID
func (r *memoryRepository) SaveGame(ctx context.Context, input *SaveGameInput) error {
	if input == nil || input.Game == nil {
		return errNilGame
	}
	if input.Game.ChatID == "" {
		return errNoChatID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.games[input.Game.ChatID] = input.Game.Clone()
	return nil
}

// GetGameByChat returns a copy of the chat's game
func (r *memoryRepository) GetGameByChat(ctx context.Context, input *GetGameByChatInput) (*models.Game, error) {
	if input == nil || input.ChatID == "" {
		return nil, errNoChatID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, ok := r.games[input.ChatID]
	if !ok {
		return nil, ErrGameNotFound
	}
	return game.Clone(), nil
}

// DeleteGame removes the chat's game if present
func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.ChatID == "" {
		return errNoChatID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, input.ChatID)
	return nil
}

// ListGames returns copies of every game ordered by creation time
func (r *memoryRepository) ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error) {
	r.mu.RLock()
	games := make([]*models.Game, 0, len(r.games))
	for _, game := range r.games {
		games = append(games, game.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		return games[i].CreatedAt.Before(games[j].CreatedAt)
	})

	return &ListGamesOutput{
		Games: games,
	}, nil
}
