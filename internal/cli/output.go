package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case SessionView:
		o.printSessionView(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Session response type (matches API)
type Session struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"`
	MaskedWord     string    `json:"masked_word,omitempty"`
	Word           string    `json:"word,omitempty"`
	Hint           string    `json:"hint,omitempty"`
	GuessedLetters []string  `json:"guessed_letters"`
	ErrorCount     int       `json:"error_count"`
	MaxErrors      int       `json:"max_errors"`
	TurnCount      int       `json:"turn_count"`
	LastGuess      string    `json:"last_guess,omitempty"`
	LastCorrect    bool      `json:"last_correct"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// SessionView response type
type SessionView struct {
	Session       Session `json:"session"`
	GridSize      int     `json:"grid_size"`
	RevealedCount int     `json:"revealed_count"`
	RevealedTiles []int   `json:"revealed_tiles"`
	Postcard      string  `json:"postcard,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printSessionView(v SessionView) {
	s := v.Session
	fmt.Printf("Session: %s\n", s.ID)
	fmt.Printf("Status: %s\n", s.Status)

	if s.ErrorMessage != "" {
		fmt.Printf("Error: %s\n", s.ErrorMessage)
		return
	}

	if s.MaskedWord != "" {
		fmt.Printf("Word: %s\n", spaced(s.MaskedWord))
	}
	if s.Word != "" {
		fmt.Printf("Answer: %s\n", s.Word)
	}
	if s.Hint != "" {
		fmt.Printf("Hint: %s\n", s.Hint)
	}
	fmt.Printf("Errors: %d/%d\n", s.ErrorCount, s.MaxErrors)
	if len(s.GuessedLetters) > 0 {
		fmt.Printf("Guessed: %s\n", strings.Join(s.GuessedLetters, " "))
	}
	if s.LastGuess != "" {
		result := "wrong"
		if s.LastCorrect {
			result = "correct"
		}
		fmt.Printf("Last Guess: %s (%s)\n", s.LastGuess, result)
	}
	fmt.Printf("Revealed Tiles: %d/%d\n", v.RevealedCount, v.GridSize*v.GridSize)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}

// spaced separates the masked word's runes so the underscores read apart
func spaced(word string) string {
	runes := []rune(word)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
