package game

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

// repositoryContract holds the tests every Repository implementation must pass
type repositoryContract struct {
	suite.Suite
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *repositoryContract) newGame(chatID string, created time.Time) *models.Game {
	return &models.Game{
		ID:        "game-" + chatID,
		ChatID:    chatID,
		CreatorID: "creator-" + chatID,
		Type:      models.GameTypeMultiplayer,
		Status:    models.GameStatusLobby,
		Players: []*models.Player{
			{UserID: "creator-" + chatID, Name: "Creator", Bet: 10, Status: models.PlayerStatusWaiting},
		},
		Dealer:      models.NewDealer(),
		CurrentTurn: models.NoTurn,
		MaxPlayers:  6,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func (s *repositoryContract) TestSaveAndGetGame() {
	game := s.newGame("chat-1", s.testNow)
	game.Deck = &models.Deck{Cards: []models.Card{{Rank: models.RankAce, Suit: models.SuitClubs}}}

	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))

	got, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{ChatID: "chat-1"})
	s.Require().NoError(err)
	s.Equal("game-chat-1", got.ID)
	s.Equal(models.GameStatusLobby, got.Status)
	s.Require().Len(got.Players, 1)
	s.Equal("creator-chat-1", got.Players[0].UserID)
	s.True(got.Dealer.IsDealer)
	s.Equal(1, got.Deck.Remaining())
	s.Equal(models.NoTurn, got.CurrentTurn)
	s.Equal(s.testNow.Unix(), got.UpdatedAt.Unix())
}

func (s *repositoryContract) TestGetMissingGame() {
	_, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{ChatID: "nope"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *repositoryContract) TestReturnedGameIsACopy() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("chat-1", s.testNow)}))

	got, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{ChatID: "chat-1"})
	s.Require().NoError(err)
	got.Status = models.GameStatusActive
	got.Players = append(got.Players, &models.Player{UserID: "intruder"})

	again, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{ChatID: "chat-1"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusLobby, again.Status)
	s.Len(again.Players, 1)
}

func (s *repositoryContract) TestSaveReplacesGame() {
	game := s.newGame("chat-1", s.testNow)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))

	game.Status = models.GameStatusActive
	game.UpdatedAt = s.testNow.Add(time.Minute)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: game}))

	got, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{ChatID: "chat-1"})
	s.Require().NoError(err)
	s.Equal(models.GameStatusActive, got.Status)

	out, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Len(out.Games, 1)
}

func (s *repositoryContract) TestDeleteGameIsIdempotent() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("chat-1", s.testNow)}))

	s.Require().NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{ChatID: "chat-1"}))
	s.Require().NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{ChatID: "chat-1"}))

	_, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{ChatID: "chat-1"})
	s.ErrorIs(err, ErrGameNotFound)

	out, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Empty(out.Games)
}

func (s *repositoryContract) TestListGamesOrderedByCreation() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("late", s.testNow.Add(time.Hour))}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("early", s.testNow)}))

	out, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 2)
	s.Equal("early", out.Games[0].ChatID)
	s.Equal("late", out.Games[1].ChatID)
}

func (s *repositoryContract) TestInvalidInput() {
	s.Error(s.repo.SaveGame(s.ctx, nil))
	s.Error(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: &models.Game{}}))
	_, err := s.repo.GetGameByChat(s.ctx, &GetGameByChatInput{})
	s.Error(err)
	s.Error(s.repo.DeleteGame(s.ctx, nil))
}

type MemoryRepositoryTestSuite struct {
	repositoryContract
}

func (s *MemoryRepositoryTestSuite) SetupTest() {
	s.repo = NewMemory()
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func TestMemoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryRepositoryTestSuite))
}

type RedisRepositoryTestSuite struct {
	repositoryContract
	mr     *miniredis.Miniredis
	client *redis.Client
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
		TTL:         time.Hour,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestExpiredGamesArePrunedFromList() {
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("chat-1", s.testNow)}))
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("chat-2", s.testNow)}))

	s.mr.FastForward(2 * time.Hour)
	s.Require().NoError(s.repo.SaveGame(s.ctx, &SaveGameInput{Game: s.newGame("chat-3", s.testNow)}))

	out, err := s.repo.ListGames(s.ctx, &ListGamesInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Games, 1)
	s.Equal("chat-3", out.Games[0].ChatID)

	members, err := s.client.SMembers(s.ctx, liveGamesKey).Result()
	s.Require().NoError(err)
	s.Equal([]string{"chat-3"}, members)
}

func (s *RedisRepositoryTestSuite) TestNewRedisValidatesConfig() {
	_, err := NewRedis(nil)
	s.Error(err)

	_, err = NewRedis(&Config{})
	s.Error(err)
}
