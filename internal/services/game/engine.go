package game

import (
	"github.com/KirkDiggler/blackjackbot/internal/deck"
	"github.com/KirkDiggler/blackjackbot/internal/models"
)

// deal shuffles a fresh deck and gives two cards to every player and the dealer,
// one pass at a time in join order with the dealer last.
func (s *service) deal(game *models.Game) error {
	game.Deck = deck.NewShuffled(s.shuffler)
	game.Dealer.Hand = nil
	game.Dealer.Status = models.PlayerStatusWaiting
	for _, p := range game.Players {
		p.Hand = nil
		p.Status = models.PlayerStatusWaiting
	}

	for pass := 0; pass < 2; pass++ {
		for _, p := range game.Players {
			if err := drawInto(game, p); err != nil {
				return err
			}
		}
		if err := drawInto(game, game.Dealer); err != nil {
			return err
		}
	}

	for _, p := range game.Players {
		if p.HasBlackjack() {
			p.Status = models.PlayerStatusBlackjack
		}
	}

	game.Status = models.GameStatusActive
	return s.advanceTurn(game, 0)
}

// hit draws for the turn holder and finishes the turn on bust or 21
func (s *service) hit(game *models.Game, player *models.Player) (models.Card, DrawOutcome, error) {
	card, err := game.Deck.Draw()
	if err != nil {
		return models.Card{}, "", err
	}
	player.Hand = append(player.Hand, card)

	switch {
	case player.Busted():
		player.Status = models.PlayerStatusBusted
		return card, DrawOutcomeBusted, s.advanceTurn(game, game.CurrentTurn+1)
	case player.Value() == models.BlackjackValue:
		player.Status = models.PlayerStatusStood
		return card, DrawOutcomeGot21, s.advanceTurn(game, game.CurrentTurn+1)
	default:
		return card, DrawOutcomeContinuing, nil
	}
}

// advanceTurn hands the turn to the first player from index from who can still
// act. When nobody can, the dealer plays.
func (s *service) advanceTurn(game *models.Game, from int) error {
	for i := from; i < len(game.Players); i++ {
		if game.Players[i].Status.CanAct() {
			game.CurrentTurn = i
			game.Players[i].Status = models.PlayerStatusActing
			return nil
		}
	}

	game.CurrentTurn = models.NoTurn
	return s.dealerPlay(game)
}

// dealerPlay draws for the dealer until it reaches 17, soft 17 included
func (s *service) dealerPlay(game *models.Game) error {
	game.Status = models.GameStatusDealerPlay

	dealer := game.Dealer
	for dealer.Value() < models.DealerStandValue {
		if err := drawInto(game, dealer); err != nil {
			return err
		}
	}

	switch {
	case dealer.Busted():
		dealer.Status = models.PlayerStatusBusted
	case dealer.HasBlackjack():
		dealer.Status = models.PlayerStatusBlackjack
	default:
		dealer.Status = models.PlayerStatusStood
	}

	game.Status = models.GameStatusEvaluated
	return nil
}

// turnHolder validates that the game is being played and returns the player
// holding the turn. An empty userID accepts whoever holds it.
func (s *service) turnHolder(game *models.Game, userID string) (*models.Player, error) {
	if game.Status != models.GameStatusActive {
		return nil, ErrInvalidGameState
	}

	player, ok := game.CurrentPlayer()
	if !ok {
		return nil, ErrInvalidGameState
	}

	if userID != "" && player.UserID != userID {
		if _, seated := game.FindPlayer(userID); !seated {
			return nil, ErrPlayerNotInGame
		}
		return nil, ErrNotYourTurn
	}

	return player, nil
}

func drawInto(game *models.Game, p *models.Player) error {
	card, err := game.Deck.Draw()
	if err != nil {
		return err
	}
	p.Hand = append(p.Hand, card)
	return nil
}
