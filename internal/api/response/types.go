package response

import (
	"sort"
	"time"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/session"
)

// Session represents a game session in API responses. The word itself is
// only exposed once the session is over.
type Session struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	MaskedWord     string    `json:"masked_word,omitempty"`
	Word           string    `json:"word,omitempty"`
	Hint           string    `json:"hint,omitempty"`
	ImageRef       string    `json:"image_ref,omitempty"`
	GuessedLetters []string  `json:"guessed_letters"`
	ErrorCount     int       `json:"error_count"`
	MaxErrors      int       `json:"max_errors"`
	TurnCount      int       `json:"turn_count"`
	LastGuess      string    `json:"last_guess,omitempty"`
	LastCorrect    bool      `json:"last_correct"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SessionFromModel converts a model.GameSession to a response Session
func SessionFromModel(s *model.GameSession) Session {
	guessed := make([]string, 0, len(s.GuessedLetters))
	for r := range s.GuessedLetters {
		guessed = append(guessed, string(r))
	}
	sort.Strings(guessed)

	resp := Session{
		ID:             string(s.ID),
		Status:         string(s.Status),
		Hint:           s.Hint,
		ImageRef:       s.ImageRef,
		GuessedLetters: guessed,
		ErrorCount:     s.ErrorCount,
		MaxErrors:      model.MaxErrors,
		TurnCount:      s.TurnCount,
		LastCorrect:    s.LastGuessCorrect,
		ErrorMessage:   s.ErrorMessage,
		UpdatedAt:      s.UpdatedAt,
	}
	if s.Word != "" {
		resp.MaskedWord = s.MaskedWord()
	}
	if s.IsTerminal() {
		resp.Word = s.Word
	}
	if s.LastGuess != 0 {
		resp.LastGuess = string(s.LastGuess)
	}
	return resp
}

// SessionView is the full client snapshot: session plus revealed tiles
type SessionView struct {
	Session       Session `json:"session"`
	GridSize      int     `json:"grid_size"`
	RevealedCount int     `json:"revealed_count"`
	RevealedTiles []int   `json:"revealed_tiles"`
	Postcard      string  `json:"postcard,omitempty"`
}

// SessionViewFromModel converts a session.View to a response SessionView
func SessionViewFromModel(v *session.View) SessionView {
	tiles := make([]int, len(v.RevealedTiles))
	for i, id := range v.RevealedTiles {
		tiles[i] = int(id)
	}
	return SessionView{
		Session:       SessionFromModel(v.Session),
		GridSize:      v.GridSize,
		RevealedCount: v.RevealedCount,
		RevealedTiles: tiles,
		Postcard:      v.Postcard,
	}
}
