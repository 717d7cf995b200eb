package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/blackjackbot/internal/common/clock"
	"github.com/KirkDiggler/blackjackbot/internal/common/logger"
	"github.com/KirkDiggler/blackjackbot/internal/common/uuid"
	"github.com/KirkDiggler/blackjackbot/internal/config"
	"github.com/KirkDiggler/blackjackbot/internal/handlers/discord"
	gameRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/game"
	playerRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/player"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
	"github.com/KirkDiggler/blackjackbot/internal/services/messaging"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "blackjackbot: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// Keep the bot running until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
	}

	games, err := newGameRepository(cfg, redisClient)
	if err != nil {
		return err
	}

	// Statistics need redis. Without it the bot plays but keeps no records.
	var players playerRepo.Repository
	if redisClient != nil {
		players, err = playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
		if err != nil {
			return fmt.Errorf("failed to create player repository: %w", err)
		}
	} else {
		log.Warn("redis not configured, player statistics are disabled")
	}

	clk := clock.New()
	gameService, err := game.New(&game.Config{
		MaxPlayers:    cfg.Game.MaxPlayers,
		DefaultBet:    cfg.Game.DefaultBet,
		MinBet:        cfg.Game.MinBet,
		MaxBet:        cfg.Game.MaxBet,
		GameRepo:      games,
		PlayerRepo:    players,
		Shuffler:      shuffle.New(nil),
		Clock:         clk,
		UUIDGenerator: uuid.New(),
		Logger:        log.Named("game"),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	messagingService, err := messaging.NewService(nil)
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	sweeper, err := game.NewSweeper(&game.SweeperConfig{
		Service:  gameService,
		Interval: cfg.Sweep.Interval,
		MaxIdle:  cfg.Sweep.MaxIdle,
		Logger:   log.Named("sweeper"),
	})
	if err != nil {
		return fmt.Errorf("failed to create sweeper: %w", err)
	}
	go sweeper.Run(ctx)

	bot, err := discord.New(&discord.Config{
		Token:            cfg.Discord.Token,
		ApplicationID:    cfg.Discord.ApplicationID,
		GuildID:          cfg.Discord.GuildID,
		GameService:      gameService,
		PlayerRepo:       players,
		MessagingService: messagingService,
		BetStep:          cfg.Game.BetStep,
		Clock:            clk,
		Logger:           log.Named("discord"),
	})
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	if err := bot.Start(); err != nil {
		return err
	}
	log.Info("blackjack bot started",
		zap.String("store", cfg.Store.Backend),
		zap.Bool("statistics", players != nil))

	<-ctx.Done()

	log.Info("shutting down")
	return bot.Stop()
}

func newGameRepository(cfg *config.Config, client *redis.Client) (gameRepo.Repository, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		// Redis-side expiry backs up the sweeper
		repo, err := gameRepo.NewRedis(&gameRepo.Config{
			RedisClient: client,
			TTL:         2 * cfg.Sweep.MaxIdle,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create game repository: %w", err)
		}
		return repo, nil
	default:
		return gameRepo.NewMemory(), nil
	}
}
