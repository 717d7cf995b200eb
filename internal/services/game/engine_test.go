package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/KirkDiggler/blackjackbot/internal/common/clock"
	"github.com/KirkDiggler/blackjackbot/internal/common/uuid"
	"github.com/KirkDiggler/blackjackbot/internal/models"
	gameRepo "github.com/KirkDiggler/blackjackbot/internal/repositories/game"
	"github.com/KirkDiggler/blackjackbot/internal/shuffle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Plays seeded six-seat rounds where everyone hits to 17 and checks the table
// invariants after every action.
func TestSeededRoundsKeepInvariants(t *testing.T) {
	ctx := context.Background()

	for seed := int64(1); seed <= 100; seed++ {
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			svc, err := New(&Config{
				GameRepo:      gameRepo.NewMemory(),
				Shuffler:      shuffle.New(&shuffle.Config{Seed: seed}),
				Clock:         clock.New(),
				UUIDGenerator: uuid.New(),
			})
			require.NoError(t, err)

			_, err = svc.CreateGame(ctx, &CreateGameInput{ChatID: "chat", CreatorID: "p0"})
			require.NoError(t, err)
			for i := 1; i < defaultMaxPlayers; i++ {
				_, err := svc.JoinGame(ctx, &JoinGameInput{ChatID: "chat", PlayerID: fmt.Sprintf("p%d", i)})
				require.NoError(t, err)
			}
			_, err = svc.StartGame(ctx, &StartGameInput{ChatID: "chat", RequesterID: "p0"})
			require.NoError(t, err)

			var game *models.Game
			for i := 0; i < defaultMaxPlayers; i++ {
				out, err := svc.PlaceBet(ctx, &PlaceBetInput{ChatID: "chat", PlayerID: fmt.Sprintf("p%d", i)})
				require.NoError(t, err)
				game = out.Game
			}

			for steps := 0; game.Status == models.GameStatusActive; steps++ {
				require.Less(t, steps, 100)

				current, ok := game.CurrentPlayer()
				require.True(t, ok, "active game must have a turn holder")
				require.Equal(t, models.PlayerStatusActing, current.Status)

				if current.Value() < models.DealerStandValue {
					out, err := svc.Hit(ctx, &HitInput{ChatID: "chat", PlayerID: current.UserID})
					require.NoError(t, err)
					after := out.Player.Value()
					switch out.Outcome {
					case DrawOutcomeBusted:
						assert.Greater(t, after, models.BlackjackValue)
					case DrawOutcomeGot21:
						assert.Equal(t, models.BlackjackValue, after)
					default:
						assert.Less(t, after, models.BlackjackValue)
						assert.Equal(t, game.CurrentTurn, out.Game.CurrentTurn)
					}
					game = out.Game
					continue
				}

				out, err := svc.Stand(ctx, &StandInput{ChatID: "chat", PlayerID: current.UserID})
				require.NoError(t, err)
				game = out.Game
			}

			require.Equal(t, models.GameStatusEvaluated, game.Status)
			assert.Equal(t, models.NoTurn, game.CurrentTurn)
			assert.True(t, game.Dealer.Busted() || game.Dealer.Value() >= models.DealerStandValue)

			seen := make(map[models.Card]bool)
			hands := []models.Hand{game.Dealer.Hand}
			for _, p := range game.Players {
				hands = append(hands, p.Hand)
			}
			for _, hand := range hands {
				for _, c := range hand {
					assert.False(t, seen[c], "card %s dealt twice", c)
					seen[c] = true
				}
			}

			eval, err := svc.Evaluate(ctx, &EvaluateInput{Game: game})
			require.NoError(t, err)
			assert.Equal(t, len(game.Players), len(eval.Evaluation.Won)+len(eval.Evaluation.Tied)+len(eval.Evaluation.Lost))

			_, err = svc.GetGame(ctx, &GetGameInput{ChatID: "chat"})
			assert.ErrorIs(t, err, ErrNoActiveGame)
		})
	}
}
