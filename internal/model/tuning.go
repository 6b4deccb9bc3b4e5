package model

import "time"

// Gameplay tuning values
const (
	MaxErrors       = 6   // wrong guesses before the game is lost
	DefaultGridSize = 5   // cover grid dimension (must stay odd)
	BaseReveal      = 2   // tiles shown at session start
	PerTurnReveal   = 2   // extra tiles per accepted guess
	JitterMagnitude = 1.5 // noise added to the distance score during ordering

	// How long the win/lose reaction plays before the status flips
	DefaultReactionDelay = 1500 * time.Millisecond
)
