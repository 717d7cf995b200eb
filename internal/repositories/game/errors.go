package game

import "errors"

// ErrGameNotFound is returned when a chat has no live game
var ErrGameNotFound = errors.New("game not found")

var (
	errNilGame   = errors.New("input and game cannot be nil")
	errNoChatID  = errors.New("chat ID cannot be empty")
	errNilConfig = errors.New("config cannot be nil")
)
