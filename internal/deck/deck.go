package deck

import (
	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle"
)

// Size is the number of cards in a standard deck
const Size = 52

// New returns an unshuffled standard deck, suit by suit and ace to king
func New() *models.Deck {
	cards := make([]models.Card, 0, Size)
	for _, suit := range models.Suits {
		for _, rank := range models.Ranks {
			cards = append(cards, models.Card{Rank: rank, Suit: suit})
		}
	}
	return &models.Deck{Cards: cards}
}

// NewShuffled returns a standard deck permuted by s
func NewShuffled(s shuffle.Shuffler) *models.Deck {
	d := New()
	s.Shuffle(d.Cards)
	return d
}
