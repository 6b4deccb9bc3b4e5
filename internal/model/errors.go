package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound   = errors.New("session not found")
	ErrSessionNotPlaying = errors.New("session is not accepting guesses")
	ErrSessionNotStarted = errors.New("session has not been started")

	// Grid errors
	ErrGridNotFound = errors.New("tile grid not found")
	ErrEvenGridSize = errors.New("grid size must be odd")

	// Guess errors
	ErrInvalidLetter = errors.New("letter is not in the game alphabet")

	// Content errors
	ErrContentFailed = errors.New("content generation failed")
	ErrEmptyWord     = errors.New("provider returned an empty word")
)
