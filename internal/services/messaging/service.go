package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/KirkDiggler/blackjackbot/internal/models"
	"github.com/KirkDiggler/blackjackbot/internal/services/game"
)

const dealerName = "Dealer"

// service implements the Service interface
type service struct {
	// Random number generator for selecting flavor lines
	mu   sync.Mutex
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

// pick returns a random line. rand.Rand is not safe for concurrent use.
func (s *service) pick(lines []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return lines[s.rand.Intn(len(lines))]
}

// GetJoinGameMessage returns a message for when a player joins a game
func (s *service) GetJoinGameMessage(ctx context.Context, input *GetJoinGameMessageInput) (*GetJoinGameMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	messages := []string{
		fmt.Sprintf("%s pulls up a chair.", input.PlayerName),
		fmt.Sprintf("%s joins the table. Good luck!", input.PlayerName),
		fmt.Sprintf("Welcome, %s! Grab a seat, the dealer is shuffling.", input.PlayerName),
		fmt.Sprintf("%s is in. The house always wins... or does it?", input.PlayerName),
	}

	message := s.pick(messages)
	if input.MaxPlayers > 0 {
		message += fmt.Sprintf(" (%d/%d seats taken)", input.PlayerCount, input.MaxPlayers)
		if input.PlayerCount >= input.MaxPlayers {
			message += "\nThe table is full. Time to start!"
		}
	}

	return &GetJoinGameMessageOutput{
		Message: message,
	}, nil
}

// GetGameStatusMessage renders the table for the current state
func (s *service) GetGameStatusMessage(ctx context.Context, input *GetGameStatusMessageInput) (*GetGameStatusMessageOutput, error) {
	if input == nil || input.View == nil {
		return nil, errors.New("view cannot be nil")
	}
	view := input.View

	var b strings.Builder
	var title string

	switch view.Status {
	case models.GameStatusLobby:
		title = "Blackjack: waiting for players"
		if view.Type == models.GameTypeSingleplayer {
			title = "Blackjack"
			b.WriteString("Set your bet and press Start when you are ready.\n\n")
		} else {
			b.WriteString("Press Join to take a seat. The creator starts the game.\n\n")
		}
		b.WriteString("Players:\n")
		for _, seat := range view.Seats {
			fmt.Fprintf(&b, "👤 %s (bet %d)\n", seat.Name, seat.Bet)
		}
	case models.GameStatusBetting:
		title = "Blackjack: place your bets"
		b.WriteString("Adjust your bet and press Place bet. Cards are dealt once everyone is in.\n\n")
		for _, seat := range view.Seats {
			mark := "⏳"
			if seat.BetPlaced {
				mark = "✅"
			}
			fmt.Fprintf(&b, "%s %s: %d\n", mark, seat.Name, seat.Bet)
		}
	default:
		title = "Blackjack"
		b.WriteString(dealerLine(view))
		b.WriteString("\n\n")
		for _, seat := range view.Seats {
			b.WriteString(seatLine(seat))
			b.WriteString("\n")
		}
		if view.TurnHolder != nil {
			fmt.Fprintf(&b, "\nIt's %s's turn.", view.TurnHolder.Name)
		}
	}

	return &GetGameStatusMessageOutput{
		Title:   title,
		Message: strings.TrimRight(b.String(), "\n"),
	}, nil
}

// GetDrawResultMessage returns a message for a hit
func (s *service) GetDrawResultMessage(ctx context.Context, input *GetDrawResultMessageInput) (*GetDrawResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := fmt.Sprintf("%s, your cards are:\n%s\nValue: %d",
		input.PlayerName, input.Hand.String(), input.Hand.Value())

	var title string
	switch input.Outcome {
	case game.DrawOutcomeBusted:
		title = s.pick([]string{"Busted!", "Too many!", "Over 21!"})
		message += "\n\nYou busted."
	case game.DrawOutcomeGot21:
		if input.Blackjack {
			title = "Blackjack!"
			message += "\n\nYou got a blackjack!"
		} else {
			title = "21!"
			message += "\n\nYou got 21!"
		}
	default:
		title = "Your cards"
	}

	return &GetDrawResultMessageOutput{
		Title:   title,
		Message: message,
	}, nil
}

// GetEvaluationMessage summarizes a finished round. Singleplayer rounds explain
// why the player won or lost; multiplayer rounds list the three groups.
func (s *service) GetEvaluationMessage(ctx context.Context, input *GetEvaluationMessageInput) (*GetEvaluationMessageOutput, error) {
	if input == nil || input.Game == nil || input.Evaluation == nil {
		return nil, errors.New("game and evaluation cannot be nil")
	}

	if input.Game.Type == models.GameTypeSingleplayer && len(input.Game.Players) == 1 {
		return s.singleplayerEvaluation(input.Game, input.Evaluation), nil
	}

	eval := input.Evaluation
	var sections []string
	if len(eval.Won) > 0 {
		sections = append(sections, "🏆 Winners:\n"+playerList(eval.Won))
	}
	if len(eval.Tied) > 0 {
		sections = append(sections, "🔃 Ties:\n"+playerList(eval.Tied))
	}
	if len(eval.Lost) > 0 {
		sections = append(sections, "👎 Losses:\n"+playerList(eval.Lost))
	}
	sections = append(sections, fmt.Sprintf("%s - %d", dealerName, eval.DealerValue))

	return &GetEvaluationMessageOutput{
		Title:   "Round over",
		Message: strings.Join(sections, "\n\n"),
	}, nil
}

func (s *service) singleplayerEvaluation(g *models.Game, eval *models.Evaluation) *GetEvaluationMessageOutput {
	player := g.Players[0]
	playerLine := fmt.Sprintf("%s - %d", player.Name, player.Value())
	dealer := fmt.Sprintf("%s - %d", dealerName, eval.DealerValue)

	outcome, _ := eval.OutcomeFor(player.UserID)
	switch outcome {
	case models.OutcomeWon:
		reason := "You are closer to 21 than the dealer!"
		switch {
		case eval.DealerBusted:
			reason = "The dealer busted. You win!"
		case player.HasBlackjack():
			reason = "Blackjack! You win!"
		}
		return &GetEvaluationMessageOutput{
			Title:   "You win!",
			Message: strings.Join([]string{reason, "", playerLine, dealer}, "\n"),
		}
	case models.OutcomeTied:
		return &GetEvaluationMessageOutput{
			Title:   "Push",
			Message: strings.Join([]string{"You have the same value as the dealer.", "", playerLine, dealer}, "\n"),
		}
	default:
		reason := "The dealer is closer to 21."
		switch {
		case player.Busted():
			reason = "You busted."
		case eval.DealerBlackjack:
			reason = "The dealer got a blackjack."
		case eval.DealerValue == models.BlackjackValue:
			reason = "The dealer got 21."
		}
		return &GetEvaluationMessageOutput{
			Title:   "You lose",
			Message: strings.Join([]string{reason, "", dealer, playerLine}, "\n"),
		}
	}
}

// GetStatsMessage returns a user's statistics
func (s *service) GetStatsMessage(ctx context.Context, input *GetStatsMessageInput) (*GetStatsMessageOutput, error) {
	if input == nil || input.Record == nil {
		return nil, errors.New("record cannot be nil")
	}
	r := input.Record

	if r.GamesPlayed == 0 {
		return &GetStatsMessageOutput{
			Title:   fmt.Sprintf("Statistics for %s", r.Name),
			Message: "You haven't finished a round yet. Play one with /blackjack start!",
		}, nil
	}

	lines := []string{
		fmt.Sprintf("Rounds played: %d", r.GamesPlayed),
		fmt.Sprintf("Won: %d", r.GamesWon),
		fmt.Sprintf("Tied: %d", r.GamesTied),
		fmt.Sprintf("Lost: %d", r.GamesLost),
		fmt.Sprintf("Blackjacks: %d", r.Blackjacks),
		fmt.Sprintf("Win rate: %.1f%%", r.WinRate()*100),
	}
	if !r.LastPlayed.IsZero() {
		lines = append(lines, fmt.Sprintf("Last played: %s", r.LastPlayed.UTC().Format("2006-01-02 15:04 MST")))
	}

	return &GetStatsMessageOutput{
		Title:   fmt.Sprintf("Statistics for %s", r.Name),
		Message: strings.Join(lines, "\n"),
	}, nil
}

// GetRulesMessage returns the table rules
func (s *service) GetRulesMessage(ctx context.Context, input *GetRulesMessageInput) (*GetRulesMessageOutput, error) {
	return &GetRulesMessageOutput{
		Message: strings.Join([]string{
			"Rules:",
			"",
			"- Blackjack pays 3 to 2",
			"- Dealer must stand on 17 and must draw to 16",
			"- A blackjack beats any other 21",
			"- Equal totals are a push",
		}, "\n"),
	}, nil
}

// GetErrorMessage maps a game service error to a user-friendly message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("error cannot be nil")
	}

	name := input.PlayerName
	if name == "" {
		name = "friend"
	}

	var title string
	var messages []string

	switch {
	case errors.Is(input.Err, game.ErrNoActiveGame):
		title = "No game"
		messages = []string{
			"There is no game running in this chat. Start one with /blackjack start.",
		}
	case errors.Is(input.Err, game.ErrGameAlreadyExists):
		title = "Game already running"
		messages = []string{
			"A game is already running in this chat. Finish it or /blackjack stop it first.",
		}
	case errors.Is(input.Err, game.ErrGameAlreadyRunning):
		title = "Too late"
		messages = []string{
			fmt.Sprintf("Sorry %s, the cards are already out. Catch the next round!", name),
			fmt.Sprintf("Whoa there, %s! This game has already started.", name),
		}
	case errors.Is(input.Err, game.ErrNotEnoughPlayers):
		title = "Not enough players"
		messages = []string{
			"At least two players are needed to start a multiplayer game.",
		}
	case errors.Is(input.Err, game.ErrInsufficientPermissions):
		title = "Not allowed"
		messages = []string{
			fmt.Sprintf("Sorry %s, only the creator of the game or an administrator can do that.", name),
		}
	case errors.Is(input.Err, game.ErrMaxPlayersReached):
		title = "Table full"
		messages = []string{
			"No room at the table! Wait for the next game.",
			"This table is full. Try again next round.",
		}
	case errors.Is(input.Err, game.ErrPlayerAlreadyExisting):
		title = "Already seated"
		messages = []string{
			fmt.Sprintf("%s, you're already at this table!", name),
			fmt.Sprintf("Easy there, %s! No need to join twice.", name),
		}
	case errors.Is(input.Err, game.ErrPlayerNotInGame):
		title = "Not seated"
		messages = []string{
			fmt.Sprintf("%s, you're not playing in this game.", name),
		}
	case errors.Is(input.Err, game.ErrNotYourTurn):
		title = "Not your turn"
		messages = []string{
			fmt.Sprintf("Hold your horses, %s! It's not your turn.", name),
			fmt.Sprintf("Patience, %s. Your turn will come.", name),
		}
	case errors.Is(input.Err, game.ErrStaleGame):
		title = "Old game"
		messages = []string{
			"That button belongs to a game that is no longer running.",
		}
	case errors.Is(input.Err, game.ErrBetAlreadyPlaced):
		title = "Bet placed"
		messages = []string{
			fmt.Sprintf("%s, your bet is already in. No take-backs!", name),
		}
	case errors.Is(input.Err, game.ErrInvalidBet):
		title = "Invalid bet"
		messages = []string{
			"That bet is outside the table limits.",
		}
	case errors.Is(input.Err, game.ErrInvalidGameState):
		title = "Not now"
		messages = []string{
			"That action isn't possible at this point of the game.",
		}
	default:
		title = "Error"
		messages = []string{
			"Something went wrong! Try again later.",
			"Oops! The dealer dropped the deck. Try again.",
		}
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: s.pick(messages),
	}, nil
}

func dealerLine(view *models.TableView) string {
	if view.DealerHidden {
		return fmt.Sprintf("🎩 %s: %s 🂠 (%d)", dealerName, view.Dealer.Cards.String(), view.Dealer.Value)
	}
	return fmt.Sprintf("🎩 %s: %s (%d)", dealerName, view.Dealer.Cards.String(), view.Dealer.Value)
}

func seatLine(seat models.SeatView) string {
	line := fmt.Sprintf("👤 %s: %s (%d)", seat.Name, seat.Cards.String(), seat.Value)
	switch seat.Status {
	case models.PlayerStatusBusted:
		line += " 💥 busted"
	case models.PlayerStatusBlackjack:
		line += " ⭐ blackjack"
	case models.PlayerStatusStood:
		line += " ✋ stands"
	}
	if seat.HasTurn {
		line = "▶ " + line
	}
	return line
}

func playerList(players []*models.Player) string {
	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, fmt.Sprintf("%s - %d", p.Name, p.Value()))
	}
	return strings.Join(lines, "\n")
}
