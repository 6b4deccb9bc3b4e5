package model

// WordContent is what the content-generation provider supplies for a session
type WordContent struct {
	Word             string // normalized: uppercase, accent-free, no spaces
	Hint             string
	ImageDescription string
}

// Outcome is the terminal result of a session, used for the result postcard
type Outcome string

const (
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)
