package models

import (
	"time"
)

// GameType distinguishes a private table from a shared one
type GameType string

const (
	// GameTypeSingleplayer is a one-player game, e.g. in a direct message
	GameTypeSingleplayer GameType = "singleplayer"

	// GameTypeMultiplayer is a shared table in a channel
	GameTypeMultiplayer GameType = "multiplayer"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusLobby indicates a game is waiting for players to join
	GameStatusLobby GameStatus = "lobby"

	// GameStatusBetting indicates players are placing bets before the deal
	GameStatusBetting GameStatus = "betting"

	// GameStatusActive indicates cards are dealt and players act in turn
	GameStatusActive GameStatus = "active"

	// GameStatusDealerPlay indicates the dealer is resolving its hand
	GameStatusDealerPlay GameStatus = "dealerplay"

	// GameStatusEvaluated indicates results have been computed
	GameStatusEvaluated GameStatus = "evaluated"

	// GameStatusEnded indicates the game was stopped and removed
	GameStatusEnded GameStatus = "ended"
)

// IsTerminal reports whether no further transitions are possible
func (s GameStatus) IsTerminal() bool {
	return s == GameStatusEvaluated || s == GameStatusEnded
}

// IsStarted reports whether the game has left the lobby
func (s GameStatus) IsStarted() bool {
	return s != GameStatusLobby
}

// CallerRole is the privilege level of whoever requested a transition
type CallerRole string

const (
	// CallerRolePlayer is a regular user
	CallerRolePlayer CallerRole = "player"

	// CallerRoleAdministrator is a chat administrator who may always stop a game
	CallerRoleAdministrator CallerRole = "administrator"
)

// NoTurn is the value of Game.CurrentTurn when nobody may act
const NoTurn = -1

// Game represents one blackjack session in a chat
type Game struct {
	// ID is the unique identifier for the game, bound into button payloads
	ID string `json:"id"`

	// ChatID is the chat (Discord channel) the game is played in
	ChatID string `json:"chat_id"`

	// CreatorID is the user who created the game
	CreatorID string `json:"creator_id"`

	// Type is singleplayer or multiplayer
	Type GameType `json:"type"`

	// Status is the current state of the game
	Status GameStatus `json:"status"`

	// Players are the seated players in join order, which is also turn order
	Players []*Player `json:"players"`

	// Dealer is the house hand
	Dealer *Player `json:"dealer"`

	// Deck is the draw pile, nil until the deal
	Deck *Deck `json:"deck,omitempty"`

	// CurrentTurn indexes Players, NoTurn when nobody may act
	CurrentTurn int `json:"current_turn"`

	// MaxPlayers is the seat capacity
	MaxPlayers int `json:"max_players"`

	// CreatedAt is when the game was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the last activity on the game
	UpdatedAt time.Time `json:"updated_at"`
}

// IsCreator reports whether userID created the game
func (g *Game) IsCreator(userID string) bool {
	return g.CreatorID == userID
}

// IsFull reports whether every seat is taken
func (g *Game) IsFull() bool {
	return len(g.Players) >= g.MaxPlayers
}

// FindPlayer returns the seated player with the given user ID
func (g *Game) FindPlayer(userID string) (*Player, bool) {
	for _, p := range g.Players {
		if p.UserID == userID {
			return p, true
		}
	}
	return nil, false
}

// CurrentPlayer returns the player holding the turn
func (g *Game) CurrentPlayer() (*Player, bool) {
	if g.CurrentTurn < 0 || g.CurrentTurn >= len(g.Players) {
		return nil, false
	}
	return g.Players[g.CurrentTurn], true
}

// AllBetsPlaced reports whether every seated player confirmed a bet
func (g *Game) AllBetsPlaced() bool {
	for _, p := range g.Players {
		if !p.BetPlaced {
			return false
		}
	}
	return len(g.Players) > 0
}

// DealerResolved reports whether the dealer has finished drawing
func (g *Game) DealerResolved() bool {
	return g.Status == GameStatusEvaluated
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	if g == nil {
		return nil
	}
	cp := *g
	cp.Players = make([]*Player, 0, len(g.Players))
	for _, p := range g.Players {
		cp.Players = append(cp.Players, p.Clone())
	}
	cp.Dealer = g.Dealer.Clone()
	cp.Deck = g.Deck.Clone()
	return &cp
}
