package discord

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
	"github.com/KirkDiggler/blackjackbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
)

const (
	colorTable  = 0x0b6623 // Felt green
	colorResult = 0xd4af37 // Gold
	colorError  = 0xff0000 // Red
)

// tableComponents returns the buttons available in the game's current state
func tableComponents(g *models.Game, betStep int) []discordgo.MessageComponent {
	var buttons []discordgo.MessageComponent

	switch g.Status {
	case models.GameStatusLobby:
		if g.Type == models.GameTypeMultiplayer {
			buttons = append(buttons, discordgo.Button{
				Label:    "Join",
				Style:    discordgo.PrimaryButton,
				CustomID: encodeCustomID(ActionJoin, g.ID),
				Disabled: g.IsFull(),
				Emoji:    &discordgo.ComponentEmoji{Name: "🪑"},
			})
		} else {
			buttons = append(buttons, betButtons(g.ID, betStep)...)
		}
		buttons = append(buttons, discordgo.Button{
			Label:    "Start",
			Style:    discordgo.SuccessButton,
			CustomID: encodeCustomID(ActionStart, g.ID),
			Emoji:    &discordgo.ComponentEmoji{Name: "🃏"},
		})
	case models.GameStatusBetting:
		buttons = append(buttons, betButtons(g.ID, betStep)...)
		buttons = append(buttons, discordgo.Button{
			Label:    "Place bet",
			Style:    discordgo.SuccessButton,
			CustomID: encodeCustomID(ActionPlaceBet, g.ID),
			Emoji:    &discordgo.ComponentEmoji{Name: "💰"},
		})
	case models.GameStatusActive:
		buttons = append(buttons,
			discordgo.Button{
				Label:    "Hit",
				Style:    discordgo.PrimaryButton,
				CustomID: encodeCustomID(ActionHit, g.ID),
			},
			discordgo.Button{
				Label:    "Stand",
				Style:    discordgo.SecondaryButton,
				CustomID: encodeCustomID(ActionStand, g.ID),
			},
		)
	default:
		buttons = append(buttons, discordgo.Button{
			Label:    "New game",
			Style:    discordgo.SuccessButton,
			CustomID: encodeCustomID(ActionNewGame, g.ID),
			Emoji:    &discordgo.ComponentEmoji{Name: "🔁"},
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	}
}

func betButtons(gameID string, betStep int) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.Button{
			Label:    fmt.Sprintf("-%d", betStep),
			Style:    discordgo.SecondaryButton,
			CustomID: encodeCustomID(ActionBetDown, gameID),
		},
		discordgo.Button{
			Label:    fmt.Sprintf("+%d", betStep),
			Style:    discordgo.SecondaryButton,
			CustomID: encodeCustomID(ActionBetUp, gameID),
		},
	}
}

// tableResponse renders a game snapshot, plus the round summary when result is set
func tableResponse(ctx context.Context, msg messaging.Service, g *models.Game, result *game.RoundResult, betStep int) (*discordgo.InteractionResponseData, error) {
	status, err := msg.GetGameStatusMessage(ctx, &messaging.GetGameStatusMessageInput{View: g.View()})
	if err != nil {
		return nil, err
	}

	embeds := []*discordgo.MessageEmbed{
		{
			Title:       status.Title,
			Description: status.Message,
			Color:       colorTable,
		},
	}

	if result != nil {
		summary, err := msg.GetEvaluationMessage(ctx, &messaging.GetEvaluationMessageInput{
			Game:       g,
			Evaluation: result.Evaluation,
		})
		if err != nil {
			return nil, err
		}
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       summary.Title,
			Description: summary.Message,
			Color:       colorResult,
		})
	}

	components := tableComponents(g, betStep)
	if g.Status == models.GameStatusEnded {
		components = []discordgo.MessageComponent{}
	}

	return &discordgo.InteractionResponseData{
		Embeds:     embeds,
		Components: components,
	}, nil
}
