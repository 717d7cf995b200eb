package messaging

import (
	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
)

// GetJoinGameMessageInput contains parameters for getting a join game message
type GetJoinGameMessageInput struct {
	// PlayerName is the name of the player joining
	PlayerName string

	// PlayerCount is the number of seated players after the join
	PlayerCount int

	// MaxPlayers is the seat capacity
	MaxPlayers int
}

// GetJoinGameMessageOutput contains the result of getting a join game message
type GetJoinGameMessageOutput struct {
	Message string
}

// GetGameStatusMessageInput is the input for GetGameStatusMessage
type GetGameStatusMessageInput struct {
	View *models.TableView
}

// GetGameStatusMessageOutput is the output for GetGameStatusMessage
type GetGameStatusMessageOutput struct {
	Title   string
	Message string
}

// GetDrawResultMessageInput contains the input for GetDrawResultMessage
type GetDrawResultMessageInput struct {
	PlayerName string
	Hand       models.Hand
	Outcome    game.DrawOutcome
	Blackjack  bool
}

// GetDrawResultMessageOutput contains the output for GetDrawResultMessage
type GetDrawResultMessageOutput struct {
	Title   string
	Message string
}

// GetEvaluationMessageInput contains the finished game and its evaluation
type GetEvaluationMessageInput struct {
	Game       *models.Game
	Evaluation *models.Evaluation
}

// GetEvaluationMessageOutput contains the round summary
type GetEvaluationMessageOutput struct {
	Title   string
	Message string
}

// GetStatsMessageInput contains the user record to describe
type GetStatsMessageInput struct {
	Record *models.UserRecord
}

// GetStatsMessageOutput contains the statistics text
type GetStatsMessageOutput struct {
	Title   string
	Message string
}

// GetRulesMessageInput is the input for GetRulesMessage
type GetRulesMessageInput struct{}

// GetRulesMessageOutput is the output for GetRulesMessage
type GetRulesMessageOutput struct {
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error returned by the game service
	Err error

	// PlayerName personalizes the message (optional)
	PlayerName string
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	Title   string
	Message string
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Seed fixes the choice of flavor lines. Zero seeds from the clock.
	Seed int64
}
