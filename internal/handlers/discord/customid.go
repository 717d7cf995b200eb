package discord

import (
	"fmt"
	"strings"
)

// Button actions. A button's custom ID is "<action>:<gameID>" so presses on a
// message from a finished game can be told apart from the live one.
const (
	ActionJoin     = "join"
	ActionStart    = "start"
	ActionBetDown  = "betdown"
	ActionBetUp    = "betup"
	ActionPlaceBet = "placebet"
	ActionHit      = "hit"
	ActionStand    = "stand"
	ActionNewGame  = "newgame"
)

const customIDSeparator = ":"

var knownActions = map[string]bool{
	ActionJoin:     true,
	ActionStart:    true,
	ActionBetDown:  true,
	ActionBetUp:    true,
	ActionPlaceBet: true,
	ActionHit:      true,
	ActionStand:    true,
	ActionNewGame:  true,
}

func encodeCustomID(action, gameID string) string {
	return action + customIDSeparator + gameID
}

// parseCustomID splits a button custom ID into its action and game ID
func parseCustomID(customID string) (string, string, error) {
	action, gameID, ok := strings.Cut(customID, customIDSeparator)
	if !ok || gameID == "" {
		return "", "", fmt.Errorf("malformed custom ID %q", customID)
	}
	if !knownActions[action] {
		return "", "", fmt.Errorf("unknown action %q", action)
	}
	return action, gameID, nil
}
