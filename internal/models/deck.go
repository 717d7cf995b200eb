package models

import "errors"

// ErrDeckExhausted is returned when drawing from an empty deck
var ErrDeckExhausted = errors.New("deck is exhausted")

// Deck is the ordered draw pile of a game. The first card is the top.
type Deck struct {
	Cards []Card `json:"cards"`
}

// Draw removes and returns the top card
func (d *Deck) Draw() (Card, error) {
	if d == nil || len(d.Cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	c := d.Cards[0]
	d.Cards = d.Cards[1:]
	return c, nil
}

// Remaining returns how many cards are left
func (d *Deck) Remaining() int {
	if d == nil {
		return 0
	}
	return len(d.Cards)
}

// Clone returns a deep copy of the deck
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	return &Deck{Cards: append([]Card(nil), d.Cards...)}
}
