package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/blackjackbot/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/blackjackbot/internal/models"
)

// Repository defines the interface for user records and statistics
type Repository interface {
	// UpsertPlayer records a user, keeping existing statistics
	UpsertPlayer(ctx context.Context, input *UpsertPlayerInput) error

	// GetPlayer retrieves a user by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.UserRecord, error)

	// RecordResult adds one finished round to a user's statistics
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// ResetStats zeroes a user's statistics
	ResetStats(ctx context.Context, input *ResetStatsInput) error
}
