package shuffle

import (
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/blackjackbot/internal/shuffle Shuffler

// Shuffler permutes a slice of cards in place
type Shuffler interface {
	Shuffle(cards []models.Card)
}

// FisherYates shuffles with a uniform Fisher-Yates pass
type FisherYates struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *FisherYates {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &FisherYates{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle permutes cards in place. Safe for concurrent use.
func (f *FisherYates) Shuffle(cards []models.Card) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := len(cards) - 1; i > 0; i-- {
		j := f.random.Intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}
