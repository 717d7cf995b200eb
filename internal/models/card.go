package models

import "fmt"

// Suit is the suit of a playing card. It has no effect on the rules.
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Rank is the face of a playing card
type Rank string

const (
	RankAce   Rank = "A"
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "J"
	RankQueen Rank = "Q"
	RankKing  Rank = "K"
)

var (
	// Suits lists every suit in deck order
	Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

	// Ranks lists every rank in deck order
	Ranks = []Rank{
		RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
		RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
	}
)

var rankValues = map[Rank]int{
	RankAce:   11,
	RankTwo:   2,
	RankThree: 3,
	RankFour:  4,
	RankFive:  5,
	RankSix:   6,
	RankSeven: 7,
	RankEight: 8,
	RankNine:  9,
	RankTen:   10,
	RankJack:  10,
	RankQueen: 10,
	RankKing:  10,
}

// Card is a single playing card
type Card struct {
	Rank Rank `json:"rank"`
	Suit Suit `json:"suit"`
}

// Value returns the blackjack value of the card, counting an ace as 11
func (c Card) Value() int {
	return rankValues[c.Rank]
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == RankAce
}

// String renders the card with its suit symbol, e.g. "♠A"
func (c Card) String() string {
	var symbol string
	switch c.Suit {
	case SuitHearts:
		symbol = "♥"
	case SuitDiamonds:
		symbol = "♦"
	case SuitClubs:
		symbol = "♣"
	case SuitSpades:
		symbol = "♠"
	default:
		symbol = "?"
	}
	return fmt.Sprintf("%s%s", symbol, c.Rank)
}
