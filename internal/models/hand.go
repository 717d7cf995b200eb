package models

import "strings"

const (
	// BlackjackValue is the best possible hand total
	BlackjackValue = 21

	// DealerStandValue is the total at which the dealer stops drawing
	DealerStandValue = 17
)

// Hand is the ordered list of cards held by a player or the dealer
type Hand []Card

// Value returns the hand total. Every ace starts at 11 and is dropped to 1, one
// at a time, while the total is over 21.
func (h Hand) Value() int {
	total, _ := h.score()
	return total
}

// IsSoft reports whether an ace is still being counted as 11
func (h Hand) IsSoft() bool {
	_, softAces := h.score()
	return softAces > 0
}

// IsBust reports whether the hand is over 21
func (h Hand) IsBust() bool {
	return h.Value() > BlackjackValue
}

// IsBlackjack reports whether the hand is a natural: exactly two cards totalling 21
func (h Hand) IsBlackjack() bool {
	return len(h) == 2 && h.Value() == BlackjackValue
}

// String renders the cards separated by spaces
func (h Hand) String() string {
	parts := make([]string, 0, len(h))
	for _, c := range h {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}

func (h Hand) score() (int, int) {
	total := 0
	aces := 0
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}

	for aces > 0 && total > BlackjackValue {
		total -= 10
		aces--
	}

	return total, aces
}
