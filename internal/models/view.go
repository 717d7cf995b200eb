package models

// SeatView is what a renderer needs to show one seat
type SeatView struct {
	UserID    string
	Name      string
	IsDealer  bool
	Cards     Hand
	Value     int
	Soft      bool
	Status    PlayerStatus
	Bet       int
	BetPlaced bool
	HasTurn   bool
}

// TableView is a read-only snapshot of a game for rendering
type TableView struct {
	GameID string
	Type   GameType
	Status GameStatus

	Seats  []SeatView
	Dealer SeatView

	// DealerHidden is set while the dealer's hole card must not be shown
	DealerHidden bool

	// TurnHolder is the seat currently acting, nil when nobody may act
	TurnHolder *SeatView
}

// View builds the render snapshot. The dealer's hole card stays hidden until the
// dealer plays.
func (g *Game) View() *TableView {
	view := &TableView{
		GameID: g.ID,
		Type:   g.Type,
		Status: g.Status,
		Seats:  make([]SeatView, 0, len(g.Players)),
	}

	for i, p := range g.Players {
		seat := seatView(p)
		seat.HasTurn = i == g.CurrentTurn
		view.Seats = append(view.Seats, seat)
	}
	if current, ok := g.CurrentPlayer(); ok {
		for i := range view.Seats {
			if view.Seats[i].UserID == current.UserID {
				view.TurnHolder = &view.Seats[i]
				break
			}
		}
	}

	view.Dealer = seatView(g.Dealer)
	switch g.Status {
	case GameStatusDealerPlay, GameStatusEvaluated:
	default:
		view.DealerHidden = len(g.Dealer.Hand) > 1
		if view.DealerHidden {
			up := g.Dealer.Hand[:1]
			view.Dealer.Cards = up
			view.Dealer.Value = up.Value()
			view.Dealer.Soft = up.IsSoft()
		}
	}

	return view
}

func seatView(p *Player) SeatView {
	return SeatView{
		UserID:    p.UserID,
		Name:      p.Name,
		IsDealer:  p.IsDealer,
		Cards:     append(Hand(nil), p.Hand...),
		Value:     p.Hand.Value(),
		Soft:      p.Hand.IsSoft(),
		Status:    p.Status,
		Bet:       p.Bet,
		BetPlaced: p.BetPlaced,
	}
}
