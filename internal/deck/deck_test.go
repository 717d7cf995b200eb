package deck

import (
	"testing"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewHasFiftyTwoDistinctCards(t *testing.T) {
	d := New()
	require.Equal(t, Size, d.Remaining())

	seen := make(map[models.Card]bool)
	for _, c := range d.Cards {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, Size)
}

func TestNewShuffledUsesShuffler(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockShuffler(ctrl)
	s.EXPECT().Shuffle(gomock.Len(Size)).Do(func(cards []models.Card) {
		cards[0], cards[51] = cards[51], cards[0]
	})

	d := NewShuffled(s)

	top, err := d.Draw()
	require.NoError(t, err)
	assert.Equal(t, models.Card{Rank: models.RankKing, Suit: models.SuitSpades}, top)
}

func TestDrawNeverRepeatsAndExhausts(t *testing.T) {
	d := NewShuffled(shuffle.New(&shuffle.Config{Seed: 3}))

	seen := make(map[models.Card]bool)
	for i := 0; i < Size; i++ {
		c, err := d.Draw()
		require.NoError(t, err)
		assert.False(t, seen[c])
		seen[c] = true
	}

	assert.Equal(t, 0, d.Remaining())
	_, err := d.Draw()
	assert.ErrorIs(t, err, models.ErrDeckExhausted)
}
