package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/blackjackbot/internal/common/clock"
	"github.com/KirkDiggler/blackjackbot/internal/common/logger"
	"github.com/KirkDiggler/blackjackbot/internal/common/uuid"
	"github.com/KirkDiggler/blackjackbot/internal/models"
	gameRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/player"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	maxPlayers int
	defaultBet int
	minBet     int
	maxBet     int

	gameRepo      gameRepo.Repository
	playerRepo    playerRepo.Repository
	shuffler      shuffle.Shuffler
	clock         clock.Clock
	uuidGenerator uuid.UUID
	logger        *zap.Logger

	locks *chatLocks
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	svc := &service{
		maxPlayers:    cfg.MaxPlayers,
		defaultBet:    cfg.DefaultBet,
		minBet:        cfg.MinBet,
		maxBet:        cfg.MaxBet,
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger.OrNop(cfg.Logger),
		locks:         newChatLocks(),
	}

	// Set defaults
	if svc.maxPlayers <= 0 {
		svc.maxPlayers = defaultMaxPlayers
	}
	if svc.minBet <= 0 {
		svc.minBet = defaultMinBet
	}
	if svc.maxBet <= 0 {
		svc.maxBet = defaultMaxBet
	}
	if svc.defaultBet <= 0 {
		svc.defaultBet = defaultBet
	}
	if svc.minBet > svc.maxBet {
		return nil, fmt.Errorf("min bet %d exceeds max bet %d", svc.minBet, svc.maxBet)
	}
	svc.defaultBet = svc.clampBet(svc.defaultBet)

	return svc, nil
}

// transition mutates a private copy of a game. Returning an error discards the copy.
type transition func(game *models.Game) error

// mutate applies fn to the chat's game while holding the chat lock, then persists
// the result. Terminal games are removed from the store instead of saved.
func (s *service) mutate(ctx context.Context, chatID, gameID string, fn transition) (*models.Game, error) {
	unlock := s.locks.Lock(chatID)
	defer unlock()

	game, err := s.loadGame(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if gameID != "" && game.ID != gameID {
		return nil, ErrStaleGame
	}

	if err := fn(game); err != nil {
		if errors.Is(err, ErrDeckExhausted) {
			s.logger.Error("deck exhausted",
				zap.String("chat_id", chatID),
				zap.String("game_id", game.ID),
				zap.Int("players", len(game.Players)))
		}
		return nil, err
	}

	game.UpdatedAt = s.clock.Now()

	if game.Status.IsTerminal() {
		if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{ChatID: chatID}); err != nil {
			return nil, fmt.Errorf("failed to remove game: %w", err)
		}
		return game, nil
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	return game, nil
}

// loadGame reads the chat's game. Callers must hold the chat lock.
func (s *service) loadGame(ctx context.Context, chatID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGameByChat(ctx, &gameRepo.GetGameByChatInput{ChatID: chatID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrNoActiveGame
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return game, nil
}

// CreateGame opens a new game in a chat with the creator seated
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.ChatID == "" || input.CreatorID == "" {
		return nil, errors.New("chat ID and creator ID are required")
	}

	gameType := input.Type
	if gameType == "" {
		gameType = models.GameTypeMultiplayer
	}

	unlock := s.locks.Lock(input.ChatID)
	defer unlock()

	_, err := s.gameRepo.GetGameByChat(ctx, &gameRepo.GetGameByChatInput{ChatID: input.ChatID})
	if err == nil {
		return nil, ErrGameAlreadyExists
	}
	if !errors.Is(err, gameRepo.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to check existing game: %w", err)
	}

	maxPlayers := s.maxPlayers
	if gameType == models.GameTypeSingleplayer {
		maxPlayers = 1
	}

	now := s.clock.Now()
	game := &models.Game{
		ID:          s.uuidGenerator.NewUUID(),
		ChatID:      input.ChatID,
		CreatorID:   input.CreatorID,
		Type:        gameType,
		Status:      models.GameStatusLobby,
		Players:     []*models.Player{s.newPlayer(input.CreatorID, input.CreatorName)},
		Dealer:      models.NewDealer(),
		CurrentTurn: models.NoTurn,
		MaxPlayers:  maxPlayers,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	s.logger.Info("game created",
		zap.String("chat_id", game.ChatID),
		zap.String("game_id", game.ID),
		zap.String("type", string(game.Type)),
		zap.String("creator_id", game.CreatorID))

	return &CreateGameOutput{Game: game}, nil
}

// GetGame returns the live game of a chat
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("chat ID is required")
	}

	unlock := s.locks.Lock(input.ChatID)
	defer unlock()

	game, err := s.loadGame(ctx, input.ChatID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game}, nil
}

// JoinGame seats a player at a game in the lobby
func (s *service) JoinGame(ctx context.Context, input *JoinGameInput) (*JoinGameOutput, error) {
	if input == nil || input.ChatID == "" || input.PlayerID == "" {
		return nil, errors.New("chat ID and player ID are required")
	}

	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		if game.Status.IsStarted() {
			return ErrGameAlreadyRunning
		}
		if game.IsFull() {
			return ErrMaxPlayersReached
		}
		if _, ok := game.FindPlayer(input.PlayerID); ok {
			return ErrPlayerAlreadyExisting
		}

		game.Players = append(game.Players, s.newPlayer(input.PlayerID, input.PlayerName))
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &JoinGameOutput{
		Game:            game,
		CapacityReached: game.IsFull(),
	}, nil
}

// StartGame leaves the lobby. Singleplayer games deal at once, multiplayer games
// open the betting round.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("chat ID is required")
	}

	var dealt bool
	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		if game.Status.IsStarted() {
			return ErrGameAlreadyRunning
		}

		if game.Type == models.GameTypeSingleplayer {
			dealt = true
			return s.deal(game)
		}

		if len(game.Players) < minMultiplayerPlayers {
			return ErrNotEnoughPlayers
		}
		if !game.IsCreator(input.RequesterID) {
			return ErrInsufficientPermissions
		}

		game.Status = models.GameStatusBetting
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game started",
		zap.String("chat_id", game.ChatID),
		zap.String("game_id", game.ID),
		zap.Int("players", len(game.Players)),
		zap.Bool("dealt", dealt))

	return &StartGameOutput{
		Game:   game,
		Dealt:  dealt,
		Result: s.finishRound(ctx, game),
	}, nil
}

// AdjustBet changes a pending bet by a delta, clamped to the table limits
func (s *service) AdjustBet(ctx context.Context, input *AdjustBetInput) (*AdjustBetOutput, error) {
	if input == nil || input.ChatID == "" || input.PlayerID == "" {
		return nil, errors.New("chat ID and player ID are required")
	}

	var bet int
	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		if game.Status != models.GameStatusLobby && game.Status != models.GameStatusBetting {
			return ErrGameAlreadyRunning
		}

		player, ok := game.FindPlayer(input.PlayerID)
		if !ok {
			return ErrPlayerNotInGame
		}
		if player.BetPlaced {
			return ErrBetAlreadyPlaced
		}

		player.Bet = s.clampBet(player.Bet + input.Delta)
		bet = player.Bet
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &AdjustBetOutput{Game: game, Bet: bet}, nil
}

// PlaceBet confirms a player's bet. The last confirmation deals the round.
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	if input == nil || input.ChatID == "" || input.PlayerID == "" {
		return nil, errors.New("chat ID and player ID are required")
	}

	var (
		bet   int
		dealt bool
	)
	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		if game.Status != models.GameStatusBetting {
			return ErrInvalidGameState
		}

		player, ok := game.FindPlayer(input.PlayerID)
		if !ok {
			return ErrPlayerNotInGame
		}
		if player.BetPlaced {
			return ErrBetAlreadyPlaced
		}

		if input.Amount > 0 {
			if input.Amount < s.minBet || input.Amount > s.maxBet {
				return ErrInvalidBet
			}
			player.Bet = input.Amount
		}
		player.BetPlaced = true
		bet = player.Bet

		if game.AllBetsPlaced() {
			dealt = true
			return s.deal(game)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &PlaceBetOutput{
		Game:   game,
		Bet:    bet,
		Dealt:  dealt,
		Result: s.finishRound(ctx, game),
	}, nil
}

// StopGame ends a game. Administrators may always stop; other callers must be
// the creator.
func (s *service) StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("chat ID is required")
	}

	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		if input.Role != models.CallerRoleAdministrator && !game.IsCreator(input.RequesterID) {
			return ErrInsufficientPermissions
		}

		game.Status = models.GameStatusEnded
		game.CurrentTurn = models.NoTurn
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("game stopped",
		zap.String("chat_id", game.ChatID),
		zap.String("game_id", game.ID),
		zap.String("requester_id", input.RequesterID),
		zap.String("role", string(input.Role)))

	return &StopGameOutput{Game: game}, nil
}

// Hit draws a card for the player holding the turn
func (s *service) Hit(ctx context.Context, input *HitInput) (*HitOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("chat ID is required")
	}

	var (
		card    models.Card
		outcome DrawOutcome
		seat    int
	)
	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		player, err := s.turnHolder(game, input.PlayerID)
		if err != nil {
			return err
		}
		seat = game.CurrentTurn

		card, outcome, err = s.hit(game, player)
		return err
	})
	if err != nil {
		return nil, err
	}

	player := game.Players[seat]

	return &HitOutput{
		Game:      game,
		Player:    player,
		Card:      card,
		Outcome:   outcome,
		Blackjack: outcome == DrawOutcomeGot21 && player.HasBlackjack(),
		Result:    s.finishRound(ctx, game),
	}, nil
}

// Stand ends the turn of the player holding it
func (s *service) Stand(ctx context.Context, input *StandInput) (*StandOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("chat ID is required")
	}

	var seat int
	game, err := s.mutate(ctx, input.ChatID, input.GameID, func(game *models.Game) error {
		player, err := s.turnHolder(game, input.PlayerID)
		if err != nil {
			return err
		}
		seat = game.CurrentTurn

		player.Status = models.PlayerStatusStood
		return s.advanceTurn(game, seat+1)
	})
	if err != nil {
		return nil, err
	}

	return &StandOutput{
		Game:   game,
		Player: game.Players[seat],
		Result: s.finishRound(ctx, game),
	}, nil
}

// Evaluate partitions a resolved game's players. The game is usually the snapshot
// returned by the call that finished the round, since finished games leave the store.
func (s *service) Evaluate(ctx context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil || input.Game == nil {
		return nil, errors.New("game is required")
	}

	if !input.Game.DealerResolved() {
		return nil, ErrInvalidGameState
	}

	return &EvaluateOutput{Evaluation: input.Game.Evaluate()}, nil
}

// RemoveGame discards a chat's game, if any
func (s *service) RemoveGame(ctx context.Context, input *RemoveGameInput) (*RemoveGameOutput, error) {
	if input == nil || input.ChatID == "" {
		return nil, errors.New("chat ID is required")
	}

	unlock := s.locks.Lock(input.ChatID)
	defer unlock()

	if _, err := s.loadGame(ctx, input.ChatID); err != nil {
		if errors.Is(err, ErrNoActiveGame) {
			return &RemoveGameOutput{}, nil
		}
		return nil, err
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{ChatID: input.ChatID}); err != nil {
		return nil, fmt.Errorf("failed to remove game: %w", err)
	}

	return &RemoveGameOutput{Removed: true}, nil
}

// finishRound evaluates a game that just resolved and records statistics.
// It returns nil while the round is still being played.
func (s *service) finishRound(ctx context.Context, game *models.Game) *RoundResult {
	if !game.DealerResolved() {
		return nil
	}

	eval := game.Evaluate()

	s.logger.Info("round evaluated",
		zap.String("chat_id", game.ChatID),
		zap.String("game_id", game.ID),
		zap.Int("won", len(eval.Won)),
		zap.Int("tied", len(eval.Tied)),
		zap.Int("lost", len(eval.Lost)),
		zap.Int("dealer_value", eval.DealerValue))

	s.recordResults(ctx, game, eval)

	return &RoundResult{Evaluation: eval}
}

// recordResults writes each player's outcome to the player store. Failures are
// logged and do not affect the round.
func (s *service) recordResults(ctx context.Context, game *models.Game, eval *models.Evaluation) {
	if s.playerRepo == nil {
		return
	}

	for _, p := range game.Players {
		outcome, ok := eval.OutcomeFor(p.UserID)
		if !ok {
			continue
		}

		err := s.playerRepo.RecordResult(ctx, &playerRepo.RecordResultInput{
			PlayerID:  p.UserID,
			Name:      p.Name,
			Outcome:   outcome,
			Blackjack: p.HasBlackjack(),
			PlayedAt:  game.UpdatedAt,
		})
		if err != nil {
			s.logger.Error("failed to record result",
				zap.String("player_id", p.UserID),
				zap.String("game_id", game.ID),
				zap.Error(err))
		}
	}
}

func (s *service) newPlayer(userID, name string) *models.Player {
	return &models.Player{
		UserID: userID,
		Name:   name,
		Bet:    s.defaultBet,
		Status: models.PlayerStatusWaiting,
	}
}

func (s *service) clampBet(bet int) int {
	if bet < s.minBet {
		return s.minBet
	}
	if bet > s.maxBet {
		return s.maxBet
	}
	return bet
}
