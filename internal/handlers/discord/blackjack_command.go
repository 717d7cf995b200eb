package discord

import (
	"context"
	"errors"

	"github.com/KirkDiggler/blackjackbot/internal/common/clock"
	"github.com/KirkDiggler/blackjackbot/internal/common/logger"
	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/repositories/player"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
	"github.com/KirkDiggler/blackjackbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Subcommand names
const (
	SubcommandStart      = "start"
	SubcommandStop       = "stop"
	SubcommandTable      = "table"
	SubcommandStats      = "stats"
	SubcommandResetStats = "resetstats"
	SubcommandRules      = "rules"
)

// BlackjackCommandConfig holds the dependencies of the /blackjack command
type BlackjackCommandConfig struct {
	GameService      game.Service
	PlayerRepo       player.Repository
	MessagingService messaging.Service
	BetStep          int

	// Clock stamps first sightings of users. Defaults to the system clock.
	Clock clock.Clock

	Logger *zap.Logger
}

// BlackjackCommand handles the /blackjack command
type BlackjackCommand struct {
	BaseCommand
	gameService game.Service
	playerRepo  player.Repository
	messaging   messaging.Service
	betStep     int
	clock       clock.Clock
	logger      *zap.Logger
}

// subcommandAction builds the reply for one subcommand
type subcommandAction func(ctx context.Context, c caller) (*discordgo.InteractionResponse, error)

// NewBlackjackCommand creates a new blackjack command handler
func NewBlackjackCommand(cfg *BlackjackCommandConfig) *BlackjackCommand {
	betStep := cfg.BetStep
	if betStep <= 0 {
		betStep = defaultBetStep
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &BlackjackCommand{
		BaseCommand: BaseCommand{
			Name:        "blackjack",
			Description: "Play blackjack against the dealer",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStart,
					Description: "Open a table in this channel, or a private game in DMs",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStop,
					Description: "Stop the game in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandTable,
					Description: "Show the current table again",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandStats,
					Description: "Show your blackjack statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandResetStats,
					Description: "Reset your blackjack statistics",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        SubcommandRules,
					Description: "Show the table rules",
				},
			},
		},
		gameService: cfg.GameService,
		playerRepo:  cfg.PlayerRepo,
		messaging:   cfg.MessagingService,
		betStep:     betStep,
		clock:       clk,
		logger:      logger.OrNop(cfg.Logger),
	}
}

// Handle processes a Discord interaction
func (c *BlackjackCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	options := i.ApplicationCommandData().Options
	if len(options) == 0 {
		return RespondWithEphemeralMessage(s, i, "Please specify a subcommand.")
	}

	ctx := context.Background()
	who := callerFromInteraction(i)

	response, err := c.response(ctx, options[0].Name, who)
	if err != nil {
		response = errorResponse(ctx, c.messaging, c.logger, who, err)
	}

	return s.InteractionRespond(i.Interaction, response)
}

// response records the caller and runs the named subcommand
func (c *BlackjackCommand) response(ctx context.Context, subcommand string, who caller) (*discordgo.InteractionResponse, error) {
	actions := map[string]subcommandAction{
		SubcommandStart:      c.handleStart,
		SubcommandStop:       c.handleStop,
		SubcommandTable:      c.handleTable,
		SubcommandStats:      c.handleStats,
		SubcommandResetStats: c.handleResetStats,
		SubcommandRules:      c.handleRules,
	}

	action, ok := actions[subcommand]
	if !ok {
		return ephemeralResponse("Unknown subcommand: " + subcommand), nil
	}

	c.upsertCaller(ctx, who)
	return action(ctx, who)
}

// upsertCaller keeps the user's stored name current. Failures only cost the
// name on the stats card, so they are logged and ignored.
func (c *BlackjackCommand) upsertCaller(ctx context.Context, who caller) {
	if c.playerRepo == nil || who.UserID == "" {
		return
	}

	err := c.playerRepo.UpsertPlayer(ctx, &player.UpsertPlayerInput{
		PlayerID: who.UserID,
		Name:     who.Name,
		SeenAt:   c.clock.Now(),
	})
	if err != nil {
		c.logger.Warn("failed to record user",
			zap.String("user_id", who.UserID),
			zap.Error(err))
	}
}

func (c *BlackjackCommand) handleStart(ctx context.Context, who caller) (*discordgo.InteractionResponse, error) {
	output, err := c.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChatID:      who.ChatID,
		CreatorID:   who.UserID,
		CreatorName: who.Name,
		Type:        who.gameType(),
	})
	if err != nil {
		return nil, err
	}

	return c.tableMessage(ctx, output.Game)
}

func (c *BlackjackCommand) handleStop(ctx context.Context, who caller) (*discordgo.InteractionResponse, error) {
	current, err := c.gameService.GetGame(ctx, &game.GetGameInput{ChatID: who.ChatID})
	if err != nil {
		return nil, err
	}

	_, err = c.gameService.StopGame(ctx, &game.StopGameInput{
		ChatID:      who.ChatID,
		GameID:      current.Game.ID,
		RequesterID: who.UserID,
		Role:        who.Role,
	})
	if err != nil {
		return nil, err
	}

	return messageResponse("Game stopped", who.Name+" stopped the game."), nil
}

func (c *BlackjackCommand) handleTable(ctx context.Context, who caller) (*discordgo.InteractionResponse, error) {
	output, err := c.gameService.GetGame(ctx, &game.GetGameInput{ChatID: who.ChatID})
	if err != nil {
		return nil, err
	}

	return c.tableMessage(ctx, output.Game)
}

func (c *BlackjackCommand) handleStats(ctx context.Context, who caller) (*discordgo.InteractionResponse, error) {
	if c.playerRepo == nil {
		return ephemeralResponse("Statistics are not enabled on this bot."), nil
	}

	record, err := c.playerRepo.GetPlayer(ctx, &player.GetPlayerInput{PlayerID: who.UserID})
	if err != nil {
		if !errors.Is(err, player.ErrPlayerNotFound) {
			return nil, err
		}
		record = &models.UserRecord{ID: who.UserID, Name: who.Name}
	}

	stats, err := c.messaging.GetStatsMessage(ctx, &messaging.GetStatsMessageInput{Record: record})
	if err != nil {
		return nil, err
	}

	response := messageResponse(stats.Title, stats.Message)
	response.Data.Flags = discordgo.MessageFlagsEphemeral
	return response, nil
}

func (c *BlackjackCommand) handleResetStats(ctx context.Context, who caller) (*discordgo.InteractionResponse, error) {
	if c.playerRepo == nil {
		return ephemeralResponse("Statistics are not enabled on this bot."), nil
	}

	if err := c.playerRepo.ResetStats(ctx, &player.ResetStatsInput{PlayerID: who.UserID}); err != nil {
		return nil, err
	}

	return ephemeralResponse("Your statistics have been reset."), nil
}

func (c *BlackjackCommand) handleRules(ctx context.Context, _ caller) (*discordgo.InteractionResponse, error) {
	rules, err := c.messaging.GetRulesMessage(ctx, &messaging.GetRulesMessageInput{})
	if err != nil {
		return nil, err
	}

	response := messageResponse("Blackjack rules", rules.Message)
	response.Data.Flags = discordgo.MessageFlagsEphemeral
	return response, nil
}

func (c *BlackjackCommand) tableMessage(ctx context.Context, g *models.Game) (*discordgo.InteractionResponse, error) {
	data, err := tableResponse(ctx, c.messaging, g, nil, c.betStep)
	if err != nil {
		return nil, err
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, nil
}

func messageResponse(title, description string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       title,
					Description: description,
					Color:       colorTable,
				},
			},
		},
	}
}

func ephemeralResponse(message string) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}
}
