package player

import (
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
)

// UpsertPlayerInput contains parameters for recording a user
type UpsertPlayerInput struct {
	PlayerID string
	Name     string
	SeenAt   time.Time
}

// GetPlayerInput contains parameters for retrieving a user
type GetPlayerInput struct {
	PlayerID string
}

// RecordResultInput contains one round's result for a user
type RecordResultInput struct {
	PlayerID  string
	Name      string
	Outcome   models.Outcome
	Blackjack bool
	PlayedAt  time.Time
}

// ResetStatsInput contains parameters for resetting a user's statistics
type ResetStatsInput struct {
	PlayerID string
}
