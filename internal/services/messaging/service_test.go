package messaging

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	service Service
	ctx     context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	svc, err := NewService(&ServiceConfig{Seed: 42})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func card(rank models.Rank) models.Card {
	return models.Card{Rank: rank, Suit: models.SuitSpades}
}

func (s *MessagingServiceTestSuite) TestGetJoinGameMessage() {
	output, err := s.service.GetJoinGameMessage(s.ctx, &GetJoinGameMessageInput{
		PlayerName:  "Alice",
		PlayerCount: 6,
		MaxPlayers:  6,
	})

	s.Require().NoError(err)
	s.Contains(output.Message, "Alice")
	s.Contains(output.Message, "(6/6 seats taken)")
	s.Contains(output.Message, "The table is full")
}

func (s *MessagingServiceTestSuite) TestGetGameStatusMessage_HidesHoleCard() {
	g := &models.Game{
		ID:     "game",
		Type:   models.GameTypeMultiplayer,
		Status: models.GameStatusActive,
		Players: []*models.Player{
			{UserID: "a", Name: "Alice", Hand: models.Hand{card(models.RankTen), card(models.RankSeven)}, Status: models.PlayerStatusActing},
			{UserID: "b", Name: "Bob", Hand: models.Hand{card(models.RankAce), card(models.RankKing)}, Status: models.PlayerStatusBlackjack},
		},
		Dealer:      &models.Player{UserID: "dealer", IsDealer: true, Hand: models.Hand{card(models.RankNine), card(models.RankQueen)}},
		CurrentTurn: 0,
	}

	output, err := s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{View: g.View()})

	s.Require().NoError(err)
	s.Contains(output.Message, "🎩 Dealer: ♠9 🂠 (9)")
	s.NotContains(output.Message, "♠Q")
	s.Contains(output.Message, "▶ 👤 Alice: ♠10 ♠7 (17)")
	s.Contains(output.Message, "Bob: ♠A ♠K (21) ⭐ blackjack")
	s.Contains(output.Message, "It's Alice's turn.")
}

func (s *MessagingServiceTestSuite) TestGetGameStatusMessage_Betting() {
	g := &models.Game{
		Type:   models.GameTypeMultiplayer,
		Status: models.GameStatusBetting,
		Players: []*models.Player{
			{UserID: "a", Name: "Alice", Bet: 30, BetPlaced: true},
			{UserID: "b", Name: "Bob", Bet: 10},
		},
		Dealer:      models.NewDealer(),
		CurrentTurn: models.NoTurn,
	}

	output, err := s.service.GetGameStatusMessage(s.ctx, &GetGameStatusMessageInput{View: g.View()})

	s.Require().NoError(err)
	s.Contains(output.Message, "✅ Alice: 30")
	s.Contains(output.Message, "⏳ Bob: 10")
}

func (s *MessagingServiceTestSuite) TestGetDrawResultMessage() {
	hand := models.Hand{card(models.RankTen), card(models.RankSix), card(models.RankKing)}

	output, err := s.service.GetDrawResultMessage(s.ctx, &GetDrawResultMessageInput{
		PlayerName: "Alice",
		Hand:       hand,
		Outcome:    game.DrawOutcomeBusted,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Value: 26")
	s.Contains(output.Message, "You busted.")

	output, err = s.service.GetDrawResultMessage(s.ctx, &GetDrawResultMessageInput{
		PlayerName: "Alice",
		Hand:       models.Hand{card(models.RankTen), card(models.RankSix), card(models.RankFive)},
		Outcome:    game.DrawOutcomeGot21,
	})
	s.Require().NoError(err)
	s.Equal("21!", output.Title)
}

func (s *MessagingServiceTestSuite) TestGetEvaluationMessage_Multiplayer() {
	alice := &models.Player{UserID: "a", Name: "Alice", Hand: models.Hand{card(models.RankTen), card(models.RankNine)}}
	bob := &models.Player{UserID: "b", Name: "Bob", Hand: models.Hand{card(models.RankTen), card(models.RankEight)}}
	g := &models.Game{
		Type:    models.GameTypeMultiplayer,
		Status:  models.GameStatusEvaluated,
		Players: []*models.Player{alice, bob},
		Dealer:  &models.Player{IsDealer: true, Hand: models.Hand{card(models.RankTen), card(models.RankEight)}},
	}

	output, err := s.service.GetEvaluationMessage(s.ctx, &GetEvaluationMessageInput{Game: g, Evaluation: g.Evaluate()})

	s.Require().NoError(err)
	s.Equal("🏆 Winners:\nAlice - 19\n\n🔃 Ties:\nBob - 18\n\nDealer - 18", output.Message)
}

func (s *MessagingServiceTestSuite) TestGetEvaluationMessage_Singleplayer() {
	testCases := []struct {
		name   string
		player models.Hand
		dealer models.Hand
		title  string
		reason string
	}{
		{
			name:   "dealer busts",
			player: models.Hand{card(models.RankTen), card(models.RankEight)},
			dealer: models.Hand{card(models.RankTen), card(models.RankSix), card(models.RankNine)},
			title:  "You win!",
			reason: "The dealer busted. You win!",
		},
		{
			name:   "player busts",
			player: models.Hand{card(models.RankTen), card(models.RankSix), card(models.RankNine)},
			dealer: models.Hand{card(models.RankTen), card(models.RankSeven)},
			title:  "You lose",
			reason: "You busted.",
		},
		{
			name:   "dealer blackjack",
			player: models.Hand{card(models.RankTen), card(models.RankNine)},
			dealer: models.Hand{card(models.RankAce), card(models.RankKing)},
			title:  "You lose",
			reason: "The dealer got a blackjack.",
		},
		{
			name:   "push",
			player: models.Hand{card(models.RankTen), card(models.RankNine)},
			dealer: models.Hand{card(models.RankKing), card(models.RankNine)},
			title:  "Push",
			reason: "You have the same value as the dealer.",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			g := &models.Game{
				Type:    models.GameTypeSingleplayer,
				Status:  models.GameStatusEvaluated,
				Players: []*models.Player{{UserID: "a", Name: "Alice", Hand: tc.player}},
				Dealer:  &models.Player{IsDealer: true, Hand: tc.dealer},
			}

			output, err := s.service.GetEvaluationMessage(s.ctx, &GetEvaluationMessageInput{Game: g, Evaluation: g.Evaluate()})

			s.Require().NoError(err)
			s.Equal(tc.title, output.Title)
			s.Contains(output.Message, tc.reason)
			s.Contains(output.Message, fmt.Sprintf("Alice - %d", tc.player.Value()))
		})
	}
}

func (s *MessagingServiceTestSuite) TestGetStatsMessage() {
	output, err := s.service.GetStatsMessage(s.ctx, &GetStatsMessageInput{Record: &models.UserRecord{
		Name:        "Alice",
		GamesPlayed: 4,
		GamesWon:    1,
		GamesTied:   1,
		GamesLost:   2,
		LastPlayed:  time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC),
	}})

	s.Require().NoError(err)
	s.Equal("Statistics for Alice", output.Title)
	s.Contains(output.Message, "Rounds played: 4")
	s.Contains(output.Message, "Win rate: 25.0%")
	s.Contains(output.Message, "Last played: 2025-04-19 12:00 UTC")

	output, err = s.service.GetStatsMessage(s.ctx, &GetStatsMessageInput{Record: &models.UserRecord{Name: "Bob"}})
	s.Require().NoError(err)
	s.Contains(output.Message, "haven't finished a round")
}

func (s *MessagingServiceTestSuite) TestGetErrorMessage() {
	testCases := []struct {
		err   error
		title string
	}{
		{game.ErrNoActiveGame, "No game"},
		{fmt.Errorf("wrapped: %w", game.ErrNotYourTurn), "Not your turn"},
		{game.ErrStaleGame, "Old game"},
		{game.ErrMaxPlayersReached, "Table full"},
		{game.ErrInsufficientPermissions, "Not allowed"},
		{errors.New("redis down"), "Error"},
	}

	for _, tc := range testCases {
		output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{Err: tc.err, PlayerName: "Alice"})
		s.Require().NoError(err)
		s.Equal(tc.title, output.Title, tc.err.Error())
		s.NotEmpty(output.Message)
	}

	_, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{})
	s.Error(err)
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
