package game

import "github.com/KirkDiggler/blackjackbot/internal/models"

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoActiveGame            GameError = "no active game in this chat"
	ErrGameAlreadyExists       GameError = "game already exists for this chat"
	ErrGameAlreadyRunning      GameError = "game has already started"
	ErrNotEnoughPlayers        GameError = "not enough players to start"
	ErrInsufficientPermissions GameError = "insufficient permissions"
	ErrMaxPlayersReached       GameError = "game is at maximum capacity"
	ErrPlayerAlreadyExisting   GameError = "player already in game"
	ErrPlayerNotInGame         GameError = "player not in game"
	ErrNotYourTurn             GameError = "it is not this player's turn"
	ErrStaleGame               GameError = "action belongs to a game that is no longer running"
	ErrInvalidGameState        GameError = "invalid game state"
	ErrBetAlreadyPlaced        GameError = "bet already placed"
	ErrInvalidBet              GameError = "bet is outside the table limits"
	ErrNilConfig               GameError = "config cannot be nil"
	ErrNilGameRepo             GameError = "game repository cannot be nil"
	ErrNilShuffler             GameError = "shuffler cannot be nil"
	ErrNilClock                GameError = "clock cannot be nil"
	ErrNilUUIDGenerator        GameError = "UUID generator cannot be nil"
	ErrNilService              GameError = "game service cannot be nil"
)

// ErrDeckExhausted is returned when a draw finds the deck empty. With the
// configured table sizes this means a seat limit was bypassed.
var ErrDeckExhausted = models.ErrDeckExhausted
