package game

import "github.com/KirkDiggler/blackjackbot/internal/models"

type SaveGameInput struct {
	Game *models.Game
}

type GetGameByChatInput struct {
	ChatID string
}

type DeleteGameInput struct {
	ChatID string
}

type ListGamesInput struct {
}

type ListGamesOutput struct {
	Games []*models.Game
}
