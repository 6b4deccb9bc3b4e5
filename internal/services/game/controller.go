package game

import (
	"context"
	"log/slog"
	"time"
	"unicode"

	"github.com/mribera/penjat3d/internal/dependencies/clock"
	"github.com/mribera/penjat3d/internal/dependencies/random"
	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/storage"
)

// Controller manages the guess state machine: one session at a time moves
// through loading, playing and a terminal outcome. Guess evaluation is
// deterministic; only the terminal status flip may be deferred so the client
// reaction can play out first.
type Controller struct {
	storage       storage.Storage
	clock         clock.Clock
	random        random.Random
	logger        *slog.Logger
	reactionDelay time.Duration

	// resolved runs after a deferred outcome lands. Set once during wiring,
	// before the controller handles traffic.
	resolved func(context.Context, *model.GameSession)
}

// NewController creates a new game Controller. A zero reactionDelay applies
// terminal outcomes synchronously.
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
	reactionDelay time.Duration,
) *Controller {
	return &Controller{
		storage:       storage,
		clock:         clock,
		random:        random,
		logger:        logger,
		reactionDelay: reactionDelay,
	}
}

// SetResolutionHook registers fn to run after a deferred terminal flip has
// been applied and saved. The flip happens on a timer, outside any request,
// so this is the only way the transports learn about it.
func (c *Controller) SetResolutionHook(fn func(context.Context, *model.GameSession)) {
	c.resolved = fn
}

// CreateSession initializes a new idle session
func (c *Controller) CreateSession(ctx context.Context) (*model.GameSession, error) {
	id := model.SessionID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))
	session := model.NewSession(id, c.clock.Now())

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session created", slog.String("session_id", string(id)))
	return session, nil
}

// GetSession retrieves a session by ID
func (c *Controller) GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	return c.storage.GetSession(ctx, id)
}

// BeginLoading moves a session into the loading phase. The generation bump
// invalidates any deferred outcome still pending from the previous round.
func (c *Controller) BeginLoading(ctx context.Context, id model.SessionID) (*model.GameSession, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Status = model.StatusLoading
	session.Generation++
	session.PendingOutcome = ""
	session.ErrorMessage = ""
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// StartSession resets all play state and begins a round with the given
// content. The word and hint are immutable for the rest of the round.
func (c *Controller) StartSession(ctx context.Context, id model.SessionID, content *model.WordContent, imageRef string) (*model.GameSession, error) {
	if content == nil || content.Word == "" {
		return nil, model.ErrEmptyWord
	}

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Status = model.StatusPlaying
	session.Word = content.Word
	session.Hint = content.Hint
	session.ImageRef = imageRef
	session.GuessedLetters = make(map[rune]bool)
	session.ErrorCount = 0
	session.TurnCount = 0
	session.LastGuess = 0
	session.LastGuessCorrect = false
	session.PendingOutcome = ""
	session.ErrorMessage = ""
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session started",
		slog.String("session_id", string(id)),
		slog.Int("generation", session.Generation),
		slog.Int("word_length", len([]rune(session.Word))),
	)

	return session, nil
}

// FailSession moves a loading session to the error status with a classified
// message. Recovery is user-initiated via a fresh start.
func (c *Controller) FailSession(ctx context.Context, id model.SessionID, message string) (*model.GameSession, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Status = model.StatusError
	session.ErrorMessage = message
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Warn("session failed",
		slog.String("session_id", string(id)),
		slog.String("message", message),
	)

	return session, nil
}

// SubmitGuess evaluates one letter against the session. Guesses that fail a
// precondition (not playing, outcome already decided, repeat letter, or a
// character outside the alphabet) leave the session untouched and return it
// unchanged: duplicate key events are expected input, not errors.
func (c *Controller) SubmitGuess(ctx context.Context, id model.SessionID, letter rune) (*model.GameSession, error) {
	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	letter = unicode.ToUpper(letter)

	if session.Status != model.StatusPlaying ||
		session.PendingOutcome != "" ||
		!model.IsAlphabetLetter(letter) ||
		session.HasGuessed(letter) {
		return session, nil
	}

	session.GuessedLetters[letter] = true
	session.TurnCount++
	session.LastGuess = letter

	correct := false
	for _, r := range session.Word {
		if r == letter {
			correct = true
			break
		}
	}
	session.LastGuessCorrect = correct

	if correct {
		if session.AllLettersGuessed() {
			c.scheduleOutcome(session, model.StatusWon)
		}
	} else {
		session.ErrorCount++
		if session.ErrorCount >= model.MaxErrors {
			session.ErrorCount = model.MaxErrors
			c.scheduleOutcome(session, model.StatusLost)
		}
	}

	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("guess accepted",
		slog.String("session_id", string(id)),
		slog.String("letter", string(letter)),
		slog.Bool("correct", correct),
		slog.Int("error_count", session.ErrorCount),
		slog.Int("turn_count", session.TurnCount),
	)

	return session, nil
}

// scheduleOutcome records the decided outcome and arranges for the status
// flip, either inline or after the reaction delay. The captured generation
// keeps a timer from a superseded round from mutating a newer one.
func (c *Controller) scheduleOutcome(session *model.GameSession, outcome model.SessionStatus) {
	session.PendingOutcome = outcome

	if c.reactionDelay <= 0 {
		session.Status = outcome
		session.PendingOutcome = ""
		return
	}

	id := session.ID
	generation := session.Generation
	c.clock.AfterFunc(c.reactionDelay, func() {
		c.resolveOutcome(id, generation)
	})
}

// resolveOutcome applies a pending terminal status if the session round that
// scheduled it is still live.
func (c *Controller) resolveOutcome(id model.SessionID, generation int) {
	ctx := context.Background()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		c.logger.Warn("deferred outcome dropped",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return
	}

	if session.Generation != generation || session.PendingOutcome == "" {
		// A newer round superseded this timer
		return
	}

	session.Status = session.PendingOutcome
	session.PendingOutcome = ""
	session.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save resolved session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return
	}

	c.logger.Info("session resolved",
		slog.String("session_id", string(id)),
		slog.String("status", string(session.Status)),
	)

	if c.resolved != nil {
		c.resolved(ctx, session)
	}
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateSession(ctx context.Context) (*model.GameSession, error)
	GetSession(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	BeginLoading(ctx context.Context, id model.SessionID) (*model.GameSession, error)
	StartSession(ctx context.Context, id model.SessionID, content *model.WordContent, imageRef string) (*model.GameSession, error)
	FailSession(ctx context.Context, id model.SessionID, message string) (*model.GameSession, error)
	SubmitGuess(ctx context.Context, id model.SessionID, letter rune) (*model.GameSession, error)
}

var _ ControllerInterface = (*Controller)(nil)
