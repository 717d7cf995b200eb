package models

import (
	"time"
)

// PlayerStatus represents where a player is within the current round
type PlayerStatus string

const (
	// PlayerStatusWaiting indicates a player has not acted yet
	PlayerStatusWaiting PlayerStatus = "waiting"

	// PlayerStatusActing indicates a player holds the turn
	PlayerStatusActing PlayerStatus = "acting"

	// PlayerStatusBusted indicates a player went over 21
	PlayerStatusBusted PlayerStatus = "busted"

	// PlayerStatusStood indicates a player finished their turn at 21 or below
	PlayerStatusStood PlayerStatus = "stood"

	// PlayerStatusBlackjack indicates a player was dealt a natural blackjack
	PlayerStatusBlackjack PlayerStatus = "blackjack"
)

// CanAct reports whether a player with this status may still take a turn
func (s PlayerStatus) CanAct() bool {
	return s == PlayerStatusWaiting || s == PlayerStatusActing
}

// Player is a participant seated at a game. The dealer is a Player with IsDealer set.
type Player struct {
	// UserID is the stable external identity of the user (Discord user ID)
	UserID string `json:"user_id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Hand holds the cards received so far
	Hand Hand `json:"hand"`

	// Bet is the amount wagered for the round
	Bet int `json:"bet"`

	// BetPlaced is set once the player confirmed their bet
	BetPlaced bool `json:"bet_placed"`

	// IsDealer marks the house hand
	IsDealer bool `json:"is_dealer"`

	// Status is the player's state within the round
	Status PlayerStatus `json:"status"`
}

// NewDealer returns an empty dealer seat
func NewDealer() *Player {
	return &Player{
		UserID:   "dealer",
		Name:     "Dealer",
		IsDealer: true,
		Status:   PlayerStatusWaiting,
	}
}

// Busted reports whether the player's hand is over 21
func (p *Player) Busted() bool {
	return p.Hand.IsBust()
}

// HasBlackjack reports whether the player holds a natural blackjack
func (p *Player) HasBlackjack() bool {
	return p.Hand.IsBlackjack()
}

// Value returns the player's hand total
func (p *Player) Value() int {
	return p.Hand.Value()
}

// Clone returns a deep copy of the player
func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	cp := *p
	cp.Hand = append(Hand(nil), p.Hand...)
	return &cp
}

// UserRecord is the persisted account of a user who has played
type UserRecord struct {
	// ID is the Discord user ID
	ID string `json:"id"`

	// Name is the last known display name
	Name string `json:"name"`

	// GamesPlayed counts finished rounds
	GamesPlayed int `json:"games_played"`

	// GamesWon counts rounds beaten against the dealer
	GamesWon int `json:"games_won"`

	// GamesTied counts pushes
	GamesTied int `json:"games_tied"`

	// GamesLost counts lost rounds
	GamesLost int `json:"games_lost"`

	// Blackjacks counts natural blackjacks dealt to the user
	Blackjacks int `json:"blackjacks"`

	// FirstSeen is when the user was first recorded
	FirstSeen time.Time `json:"first_seen"`

	// LastPlayed is when the user last finished a round
	LastPlayed time.Time `json:"last_played"`
}

// WinRate returns the share of played rounds that were won
func (u *UserRecord) WinRate() float64 {
	if u.GamesPlayed == 0 {
		return 0
	}
	return float64(u.GamesWon) / float64(u.GamesPlayed)
}
