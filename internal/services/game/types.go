package game

import (
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/common/clock"
	"github.com/KirkDiggler/blackjackbot/internal/common/uuid"
	"github.com/KirkDiggler/blackjackbot/internal/models"
	gameRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/player"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle"
	"go.uber.org/zap"
)

const (
	defaultMaxPlayers = 6
	defaultBet        = 10
	defaultMinBet     = 10
	defaultMaxBet     = 1000

	// minMultiplayerPlayers is the smallest table a multiplayer game may start with
	minMultiplayerPlayers = 2
)

// DrawOutcome tells the caller how a hit ended
type DrawOutcome string

const (
	// DrawOutcomeContinuing means the player may hit again
	DrawOutcomeContinuing DrawOutcome = "continuing"

	// DrawOutcomeBusted means the player went over 21 and the turn moved on
	DrawOutcomeBusted DrawOutcome = "busted"

	// DrawOutcomeGot21 means the player reached 21 and the turn moved on
	DrawOutcomeGot21 DrawOutcome = "got21"
)

// Config holds configuration for the game service
type Config struct {
	// Maximum number of players at a multiplayer table
	MaxPlayers int

	// Bet a player starts with, and the table limits
	DefaultBet int
	MinBet     int
	MaxBet     int

	// Repository dependencies
	GameRepo gameRepo.Repository

	// PlayerRepo records statistics when a round finishes. Optional.
	PlayerRepo playerRepo.Repository

	// Service dependencies
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *zap.Logger
}

// RoundResult is attached to outputs of the call that finished a round
type RoundResult struct {
	// Evaluation partitions the players against the dealer
	Evaluation *models.Evaluation
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	// ChatID is the chat where the game is being played
	ChatID string

	// CreatorID is the user creating the game
	CreatorID string

	// CreatorName is the display name of the creator
	CreatorName string

	// Type is singleplayer or multiplayer
	Type models.GameType
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game *models.Game
}

// GetGameInput contains parameters for looking up a chat's game
type GetGameInput struct {
	ChatID string
}

// GetGameOutput contains the live game
type GetGameOutput struct {
	Game *models.Game
}

// JoinGameInput contains parameters for joining a game
type JoinGameInput struct {
	ChatID string

	// GameID binds the action to a game; empty skips the check
	GameID string

	PlayerID   string
	PlayerName string
}

// JoinGameOutput contains the result of joining a game
type JoinGameOutput struct {
	Game *models.Game

	// CapacityReached is set when this join took the last seat
	CapacityReached bool
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	ChatID      string
	GameID      string
	RequesterID string
}

// StartGameOutput contains the result of starting a game
type StartGameOutput struct {
	Game *models.Game

	// Dealt is set when cards were dealt, unset when betting opened instead
	Dealt bool

	// Result is set when nobody could act after the deal and the round resolved
	Result *RoundResult
}

// AdjustBetInput contains parameters for changing a pending bet
type AdjustBetInput struct {
	ChatID   string
	GameID   string
	PlayerID string
	Delta    int
}

// AdjustBetOutput contains the adjusted bet
type AdjustBetOutput struct {
	Game *models.Game
	Bet  int
}

// PlaceBetInput contains parameters for confirming a bet
type PlaceBetInput struct {
	ChatID   string
	GameID   string
	PlayerID string

	// Amount replaces the pending bet when positive
	Amount int
}

// PlaceBetOutput contains the result of confirming a bet
type PlaceBetOutput struct {
	Game *models.Game
	Bet  int

	// Dealt is set when this was the last outstanding bet
	Dealt bool

	Result *RoundResult
}

// StopGameInput contains parameters for stopping a game
type StopGameInput struct {
	ChatID      string
	GameID      string
	RequesterID string
	Role        models.CallerRole
}

// StopGameOutput contains the stopped game
type StopGameOutput struct {
	Game *models.Game
}

// HitInput contains parameters for drawing a card
type HitInput struct {
	ChatID   string
	GameID   string
	PlayerID string
}

// HitOutput contains the result of drawing a card
type HitOutput struct {
	Game *models.Game

	// Player is the player who drew, after the draw
	Player *models.Player
	Card   models.Card

	Outcome DrawOutcome

	// Blackjack distinguishes a natural from a plain 21 when Outcome is got21
	Blackjack bool

	Result *RoundResult
}

// StandInput contains parameters for standing
type StandInput struct {
	ChatID   string
	GameID   string
	PlayerID string
}

// StandOutput contains the result of standing
type StandOutput struct {
	Game   *models.Game
	Player *models.Player
	Result *RoundResult
}

// EvaluateInput contains the game to evaluate
type EvaluateInput struct {
	// Game is a snapshot returned by a previous call
	Game *models.Game
}

// EvaluateOutput contains the evaluation
type EvaluateOutput struct {
	Evaluation *models.Evaluation
}

// RemoveGameInput contains parameters for discarding a game
type RemoveGameInput struct {
	ChatID string
}

// RemoveGameOutput contains the result of discarding a game
type RemoveGameOutput struct {
	// Removed is unset when there was no game
	Removed bool
}

// CleanupStaleGamesInput contains the idle threshold
type CleanupStaleGamesInput struct {
	MaxIdle time.Duration
}

// CleanupStaleGamesOutput lists the chats whose games were removed
type CleanupStaleGamesOutput struct {
	RemovedChatIDs []string
}
