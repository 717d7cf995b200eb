package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/blackjackbot/internal/common/clock"
	"github.com/KirkDiggler/blackjackbot/internal/common/logger"
	"github.com/KirkDiggler/blackjackbot/internal/repositories/player"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
	"github.com/KirkDiggler/blackjackbot/internal/services/messaging"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

const defaultBetStep = 10

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	gameService game.Service
	playerRepo  player.Repository
	messaging   messaging.Service
	betStep     int
	logger      *zap.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Discord bot token
	Token string

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Game service
	GameService game.Service

	// PlayerRepo backs /blackjack stats (optional)
	PlayerRepo player.Repository

	// MessagingService renders tables and error texts
	MessagingService messaging.Service

	// BetStep is how much the bet buttons move a bet
	BetStep int

	// Clock is optional, defaulting to the system clock
	Clock clock.Clock

	Logger *zap.Logger
}

// componentAction handles one button action for the game named in the custom ID
type componentAction func(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error)

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Token == "" {
		return nil, errors.New("token cannot be empty")
	}

	if cfg.GameService == nil {
		return nil, errors.New("game service cannot be nil")
	}

	if cfg.MessagingService == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	// Create a new Discord session
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	betStep := cfg.BetStep
	if betStep <= 0 {
		betStep = defaultBetStep
	}

	bot := &Bot{
		session:     session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		gameService: cfg.GameService,
		playerRepo:  cfg.PlayerRepo,
		messaging:   cfg.MessagingService,
		betStep:     betStep,
		logger:      logger.OrNop(cfg.Logger),
		config:      cfg,
	}

	// Register the interaction handler
	session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	blackjackCmd := NewBlackjackCommand(&BlackjackCommandConfig{
		GameService:      b.gameService,
		PlayerRepo:       b.playerRepo,
		MessagingService: b.messaging,
		BetStep:          b.betStep,
		Clock:            b.config.Clock,
		Logger:           b.logger,
	})
	if err := b.RegisterCommand(blackjackCmd); err != nil {
		return fmt.Errorf("failed to register blackjack command: %w", err)
	}

	b.logger.Info("bot is running")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("failed to delete command",
				zap.String("command", cmdName),
				zap.String("command_id", cmdID),
				zap.Error(err))
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord. Without a guild ID the
// command is registered globally.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("registered command",
		zap.String("command", cmd.GetName()),
		zap.String("command_id", createdCmd.ID),
		zap.String("guild_id", b.config.GuildID))

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

// handleInteraction handles Discord interactions
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		name := i.ApplicationCommandData().Name
		if h, ok := b.commands[name]; ok {
			if err := h.Handle(s, i); err != nil {
				b.logger.Error("failed to handle command",
					zap.String("command", name),
					zap.Error(err))
			}
		}
	case discordgo.InteractionMessageComponent:
		if err := b.handleComponentInteraction(s, i); err != nil {
			b.logger.Error("failed to handle component interaction",
				zap.String("custom_id", i.MessageComponentData().CustomID),
				zap.Error(err))
		}
	}
}

// handleComponentInteraction handles button clicks
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	c := callerFromInteraction(i)

	response, err := b.componentResponse(ctx, i.MessageComponentData().CustomID, c)
	if err != nil {
		response = errorResponse(ctx, b.messaging, b.logger, c, err)
	}

	return s.InteractionRespond(i.Interaction, response)
}

// componentResponse runs the button's action and builds the reply
func (b *Bot) componentResponse(ctx context.Context, customID string, c caller) (*discordgo.InteractionResponse, error) {
	action, gameID, err := parseCustomID(customID)
	if err != nil {
		return nil, err
	}

	handlers := map[string]componentAction{
		ActionJoin:     b.handleJoin,
		ActionStart:    b.handleStart,
		ActionBetDown:  b.handleBetDown,
		ActionBetUp:    b.handleBetUp,
		ActionPlaceBet: b.handlePlaceBet,
		ActionHit:      b.handleHit,
		ActionStand:    b.handleStand,
		ActionNewGame:  b.handleNewGame,
	}

	b.logger.Debug("button pressed",
		zap.String("action", action),
		zap.String("game_id", gameID),
		zap.String("chat_id", c.ChatID),
		zap.String("user_id", c.UserID))

	return handlers[action](ctx, gameID, c)
}

func (b *Bot) handleJoin(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.JoinGame(ctx, &game.JoinGameInput{
		ChatID:     c.ChatID,
		GameID:     gameID,
		PlayerID:   c.UserID,
		PlayerName: c.Name,
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, nil, b.betStep)
	if err != nil {
		return nil, err
	}

	joined, err := b.messaging.GetJoinGameMessage(ctx, &messaging.GetJoinGameMessageInput{
		PlayerName:  c.Name,
		PlayerCount: len(output.Game.Players),
		MaxPlayers:  output.Game.MaxPlayers,
	})
	if err != nil {
		return nil, err
	}
	data.Content = joined.Message

	return updateResponse(data), nil
}

func (b *Bot) handleStart(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.StartGame(ctx, &game.StartGameInput{
		ChatID:      c.ChatID,
		GameID:      gameID,
		RequesterID: c.UserID,
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, output.Result, b.betStep)
	if err != nil {
		return nil, err
	}
	return updateResponse(data), nil
}

func (b *Bot) handleBetDown(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	return b.adjustBet(ctx, gameID, c, -b.betStep)
}

func (b *Bot) handleBetUp(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	return b.adjustBet(ctx, gameID, c, b.betStep)
}

func (b *Bot) adjustBet(ctx context.Context, gameID string, c caller, delta int) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.AdjustBet(ctx, &game.AdjustBetInput{
		ChatID:   c.ChatID,
		GameID:   gameID,
		PlayerID: c.UserID,
		Delta:    delta,
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, nil, b.betStep)
	if err != nil {
		return nil, err
	}
	return updateResponse(data), nil
}

func (b *Bot) handlePlaceBet(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.PlaceBet(ctx, &game.PlaceBetInput{
		ChatID:   c.ChatID,
		GameID:   gameID,
		PlayerID: c.UserID,
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, output.Result, b.betStep)
	if err != nil {
		return nil, err
	}
	return updateResponse(data), nil
}

func (b *Bot) handleHit(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.Hit(ctx, &game.HitInput{
		ChatID:   c.ChatID,
		GameID:   gameID,
		PlayerID: c.UserID,
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, output.Result, b.betStep)
	if err != nil {
		return nil, err
	}

	drawn, err := b.messaging.GetDrawResultMessage(ctx, &messaging.GetDrawResultMessageInput{
		PlayerName: output.Player.Name,
		Hand:       output.Player.Hand,
		Outcome:    output.Outcome,
		Blackjack:  output.Blackjack,
	})
	if err != nil {
		return nil, err
	}
	data.Content = fmt.Sprintf("**%s**\n%s", drawn.Title, drawn.Message)

	return updateResponse(data), nil
}

func (b *Bot) handleStand(ctx context.Context, gameID string, c caller) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.Stand(ctx, &game.StandInput{
		ChatID:   c.ChatID,
		GameID:   gameID,
		PlayerID: c.UserID,
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, output.Result, b.betStep)
	if err != nil {
		return nil, err
	}
	data.Content = fmt.Sprintf("%s stands.", output.Player.Name)

	return updateResponse(data), nil
}

// handleNewGame opens a fresh table as a new message. The finished game's ID
// is ignored since that game is already gone.
func (b *Bot) handleNewGame(ctx context.Context, _ string, c caller) (*discordgo.InteractionResponse, error) {
	output, err := b.gameService.CreateGame(ctx, &game.CreateGameInput{
		ChatID:      c.ChatID,
		CreatorID:   c.UserID,
		CreatorName: c.Name,
		Type:        c.gameType(),
	})
	if err != nil {
		return nil, err
	}

	data, err := tableResponse(ctx, b.messaging, output.Game, nil, b.betStep)
	if err != nil {
		return nil, err
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}, nil
}

func updateResponse(data *discordgo.InteractionResponseData) *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: data,
	}
}

// errorResponse turns a failed action into an ephemeral reply. Game errors are
// expected user mistakes; anything else is logged as a failure.
func errorResponse(ctx context.Context, msg messaging.Service, log *zap.Logger, c caller, err error) *discordgo.InteractionResponse {
	var gameErr game.GameError
	if errors.As(err, &gameErr) {
		log.Debug("action rejected",
			zap.String("chat_id", c.ChatID),
			zap.String("user_id", c.UserID),
			zap.Error(err))
	} else {
		log.Error("action failed",
			zap.String("chat_id", c.ChatID),
			zap.String("user_id", c.UserID),
			zap.Error(err))
	}

	title, message := "Error", "Something went wrong. Please try again."
	if out, msgErr := msg.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
		Err:        err,
		PlayerName: c.Name,
	}); msgErr == nil {
		title, message = out.Title, out.Message
	}

	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{
				{
					Title:       title,
					Description: message,
					Color:       colorError,
				},
			},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}
}
