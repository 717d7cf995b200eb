package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/blackjackbot/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/blackjackbot/internal/models"
)

// Repository is the session store: at most one live game per chat.
// Games returned by the repository are private copies; changes are only
// visible to other callers after SaveGame.
type Repository interface {
	// SaveGame creates or replaces the game for its chat
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGameByChat retrieves the live game of a chat
	GetGameByChat(ctx context.Context, input *GetGameByChatInput) (*models.Game, error)

	// DeleteGame removes the game of a chat. Deleting a missing game is not an error.
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// ListGames retrieves every live game
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)
}
