package model

import (
	"strings"
	"time"
)

// SessionID uniquely identifies a game session
type SessionID string

// SessionStatus represents the current phase of a session
type SessionStatus string

const (
	StatusIdle    SessionStatus = "idle"    // No session started yet
	StatusLoading SessionStatus = "loading" // Waiting on content generation
	StatusPlaying SessionStatus = "playing" // Accepting guesses
	StatusWon     SessionStatus = "won"     // All letters found
	StatusLost    SessionStatus = "lost"    // Error limit reached
	StatusError   SessionStatus = "error"   // Content acquisition failed
)

// Alphabet is the set of guessable letters: A-Z plus the Catalan Ç.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZÇ"

// GameSession represents a single play-through of the game
type GameSession struct {
	ID     SessionID
	Status SessionStatus

	// Generation increments on every start/restart. Deferred outcome
	// resolutions capture it so a stale timer cannot touch a newer session.
	Generation int

	// Word and hint are set once on Loading -> Playing and immutable after
	Word     string
	Hint     string
	ImageRef string

	GuessedLetters map[rune]bool
	ErrorCount     int
	TurnCount      int

	// Most recent accepted guess, for presentation reactions
	LastGuess        rune
	LastGuessCorrect bool

	// PendingOutcome holds a decided but not yet applied terminal status
	// (won/lost) while the reaction delay runs. Empty otherwise.
	PendingOutcome SessionStatus

	// ErrorMessage is the classified message shown when Status is error
	ErrorMessage string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates an idle session with the given ID
func NewSession(id SessionID, now time.Time) *GameSession {
	return &GameSession{
		ID:             id,
		Status:         StatusIdle,
		GuessedLetters: make(map[rune]bool),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// IsTerminal returns true if the session no longer accepts guesses
func (s *GameSession) IsTerminal() bool {
	return s.Status == StatusWon || s.Status == StatusLost || s.Status == StatusError
}

// HasGuessed returns true if the letter has already been guessed
func (s *GameSession) HasGuessed(letter rune) bool {
	return s.GuessedLetters[letter]
}

// AllLettersGuessed returns true if every letter of the word has been guessed
func (s *GameSession) AllLettersGuessed() bool {
	if s.Word == "" {
		return false
	}
	for _, r := range s.Word {
		if !s.GuessedLetters[r] {
			return false
		}
	}
	return true
}

// MaskedWord returns the word with unguessed letters replaced by underscores
func (s *GameSession) MaskedWord() string {
	var b strings.Builder
	for _, r := range s.Word {
		if s.GuessedLetters[r] || s.IsTerminal() {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}

// IsAlphabetLetter reports whether r is part of the guessable alphabet
func IsAlphabetLetter(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}
