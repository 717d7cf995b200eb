package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetJoinGameMessage returns a message for when a player joins a game
	GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error)

	// GetGameStatusMessage renders the table: seats, hands and whose turn it is
	GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error)

	// GetDrawResultMessage returns a message for a hit
	GetDrawResultMessage(ctx context.Context, input *GetDrawResultMessageInput) (*GetDrawResultMessageOutput, error)

	// GetEvaluationMessage returns the end of round summary
	GetEvaluationMessage(ctx context.Context, input *GetEvaluationMessageInput) (*GetEvaluationMessageOutput, error)

	// GetStatsMessage returns a user's statistics
	GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error)

	// GetRulesMessage returns the table rules
	GetRulesMessage(ctx context.Context, input *GetRulesMessageInput) (*GetRulesMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
