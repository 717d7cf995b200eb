package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/blackjackbot/internal/services/game Service

// Service defines the interface for blackjack game operations. Every call that
// names a chat is serialized with other calls for the same chat.
type Service interface {
	// CreateGame opens a new game in a chat with the creator seated
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns the live game of a chat
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// JoinGame seats a player at a game in the lobby
	JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error)

	// StartGame leaves the lobby, either dealing or opening the betting round
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// AdjustBet changes a player's pending bet
	AdjustBet(ctx context.Context, input *AdjustBetInput) (*AdjustBetOutput, error)

	// PlaceBet confirms a player's bet, dealing once every bet is in
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// StopGame ends and removes a game
	StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error)

	// Hit draws a card for the player holding the turn
	Hit(ctx context.Context, input *HitInput) (*HitOutput, error)

	// Stand ends the turn of the player holding it
	Stand(ctx context.Context, input *StandInput) (*StandOutput, error)

	// Evaluate partitions a resolved game's players into won, tied and lost
	Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error)

	// RemoveGame discards a chat's game, if any
	RemoveGame(ctx context.Context, input *RemoveGameInput) (*RemoveGameOutput, error)

	// CleanupStaleGames removes games idle for longer than the given duration
	CleanupStaleGames(ctx context.Context, input *CleanupStaleGamesInput) (*CleanupStaleGamesOutput, error)
}
