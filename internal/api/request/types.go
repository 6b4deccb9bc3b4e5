package request

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	Letter string `json:"letter"`
}

// MuteRequest is the request body for setting the mute flag
type MuteRequest struct {
	Muted bool `json:"muted"`
}
