package models

// Outcome is a player's result against the dealer
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeTied Outcome = "tied"
	OutcomeLost Outcome = "lost"
)

// Evaluation partitions the seated players by their result against the dealer.
// Every player appears in exactly one of Won, Tied or Lost.
type Evaluation struct {
	Won  []*Player
	Tied []*Player
	Lost []*Player

	DealerValue     int
	DealerBusted    bool
	DealerBlackjack bool
}

// OutcomeFor returns the result recorded for userID
func (e *Evaluation) OutcomeFor(userID string) (Outcome, bool) {
	groups := []struct {
		outcome Outcome
		players []*Player
	}{
		{OutcomeWon, e.Won},
		{OutcomeTied, e.Tied},
		{OutcomeLost, e.Lost},
	}
	for _, group := range groups {
		for _, p := range group.players {
			if p.UserID == userID {
				return group.outcome, true
			}
		}
	}
	return "", false
}

// CompareToDealer decides a single player's result.
// A natural blackjack ranks above any other 21.
func CompareToDealer(player, dealer *Player) Outcome {
	switch {
	case player.Busted():
		return OutcomeLost
	case dealer.Busted():
		return OutcomeWon
	case player.HasBlackjack() && !dealer.HasBlackjack():
		return OutcomeWon
	case dealer.HasBlackjack() && !player.HasBlackjack():
		return OutcomeLost
	}

	switch pv, dv := player.Value(), dealer.Value(); {
	case pv > dv:
		return OutcomeWon
	case pv < dv:
		return OutcomeLost
	default:
		return OutcomeTied
	}
}

// Evaluate compares every seated player to the dealer. It does not modify the game.
func (g *Game) Evaluate() *Evaluation {
	eval := &Evaluation{
		Won:             []*Player{},
		Tied:            []*Player{},
		Lost:            []*Player{},
		DealerValue:     g.Dealer.Value(),
		DealerBusted:    g.Dealer.Busted(),
		DealerBlackjack: g.Dealer.HasBlackjack(),
	}

	for _, p := range g.Players {
		switch CompareToDealer(p, g.Dealer) {
		case OutcomeWon:
			eval.Won = append(eval.Won, p)
		case OutcomeTied:
			eval.Tied = append(eval.Tied, p)
		default:
			eval.Lost = append(eval.Lost, p)
		}
	}

	return eval
}
