package session

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/content"
	"github.com/mribera/penjat3d/internal/services/game"
	"github.com/mribera/penjat3d/internal/services/reveal"
	"github.com/mribera/penjat3d/internal/storage"
)

// recentWordLimit caps the exclusion list fed back to the provider
const recentWordLimit = 20

// View is the client-facing snapshot of a session: game state plus the
// revealed portion of the cover grid and, on a terminal outcome, the result
// postcard.
type View struct {
	Session       *model.GameSession
	GridSize      int
	RevealedCount int
	RevealedTiles []model.TileID
	Postcard      string
}

// Controller sequences a session end to end: content acquisition, state
// machine start, reveal-count mapping, terminal artifacts.
type Controller struct {
	storage        storage.Storage
	gameController *game.Controller
	revealService  *reveal.Service
	provider       content.Provider
	gridSize       int
	logger         *slog.Logger

	// listener receives the refreshed view when a deferred outcome lands
	// outside a request cycle. Set once during wiring.
	listener func(context.Context, *View)
}

// NewController creates a new session Controller
func NewController(
	storage storage.Storage,
	gameController *game.Controller,
	revealService *reveal.Service,
	provider content.Provider,
	gridSize int,
	logger *slog.Logger,
) *Controller {
	c := &Controller{
		storage:        storage,
		gameController: gameController,
		revealService:  revealService,
		provider:       provider,
		gridSize:       gridSize,
		logger:         logger,
	}
	gameController.SetResolutionHook(c.handleResolved)
	return c
}

// SetUpdateListener registers fn to receive views for state changes that
// happen outside a request, such as the deferred win/loss flip.
func (c *Controller) SetUpdateListener(fn func(context.Context, *View)) {
	c.listener = fn
}

// handleResolved turns a deferred terminal flip into a full view and hands
// it to the registered listener.
func (c *Controller) handleResolved(ctx context.Context, session *model.GameSession) {
	if c.listener == nil {
		return
	}

	view, err := c.buildView(ctx, session)
	if err != nil {
		c.logger.Error("could not build view for resolved session",
			slog.String("session_id", string(session.ID)),
			slog.String("error", err.Error()),
		)
		return
	}
	c.listener(ctx, view)
}

// Start creates a session and runs the start protocol on it
func (c *Controller) Start(ctx context.Context) (*View, error) {
	session, err := c.gameController.CreateSession(ctx)
	if err != nil {
		return nil, err
	}
	return c.runStart(ctx, session.ID)
}

// Restart re-runs the start protocol on an existing session. This is also
// the user-initiated retry after a content failure.
func (c *Controller) Restart(ctx context.Context, id model.SessionID) (*View, error) {
	return c.runStart(ctx, id)
}

// runStart is the start-session protocol: loading status, word content
// (fatal on failure), hidden image (placeholder on failure), state machine
// start, fresh grid for the new image.
func (c *Controller) runStart(ctx context.Context, id model.SessionID) (*View, error) {
	session, err := c.gameController.BeginLoading(ctx, id)
	if err != nil {
		return nil, err
	}

	exclude, err := c.storage.GetRecentWords(ctx)
	if err != nil {
		c.logger.Warn("could not load recent words",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
	}

	wordContent, err := c.provider.GenerateWord(ctx, exclude)
	if err != nil {
		message := content.ClassifyError(err)
		session, failErr := c.gameController.FailSession(ctx, id, message)
		if failErr != nil {
			return nil, failErr
		}
		return c.buildView(ctx, session)
	}

	if err := c.storage.PushRecentWord(ctx, wordContent.Word, recentWordLimit); err != nil {
		c.logger.Warn("could not record recent word",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
	}

	imageRef, err := c.provider.GenerateHiddenImage(ctx, wordContent.Word, wordContent.ImageDescription)
	if err != nil {
		c.logger.Warn("hidden image generation failed, using placeholder",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		imageRef = content.PlaceholderImage()
	}

	session, err = c.gameController.StartSession(ctx, id, wordContent, imageRef)
	if err != nil {
		return nil, err
	}

	if _, err := c.revealService.GenerateGrid(ctx, id, c.gridSize, session.Generation); err != nil {
		return nil, err
	}

	return c.buildView(ctx, session)
}

// Guess forwards a letter to the state machine and returns the fresh view
func (c *Controller) Guess(ctx context.Context, id model.SessionID, letter rune) (*View, error) {
	session, err := c.gameController.SubmitGuess(ctx, id, letter)
	if err != nil {
		return nil, err
	}
	return c.buildView(ctx, session)
}

// Get returns the current view of a session
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*View, error) {
	session, err := c.gameController.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.buildView(ctx, session)
}

// buildView assembles the snapshot: revealed tiles per the count mapping,
// postcard when the outcome is in.
func (c *Controller) buildView(ctx context.Context, session *model.GameSession) (*View, error) {
	view := &View{
		Session:  session,
		GridSize: c.gridSize,
	}

	view.RevealedCount = reveal.RevealedCount(session, c.gridSize)
	if view.RevealedCount > 0 {
		tiles, err := c.revealService.RevealedSet(ctx, session.ID, view.RevealedCount)
		if err != nil && !errors.Is(err, model.ErrGridNotFound) {
			return nil, err
		}
		view.RevealedTiles = tiles
	}

	switch session.Status {
	case model.StatusWon:
		view.Postcard = content.ResultPostcard(model.OutcomeWon, session.Word)
	case model.StatusLost:
		view.Postcard = content.ResultPostcard(model.OutcomeLost, session.Word)
	}

	return view, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Start(ctx context.Context) (*View, error)
	Restart(ctx context.Context, id model.SessionID) (*View, error)
	Guess(ctx context.Context, id model.SessionID, letter rune) (*View, error)
	Get(ctx context.Context, id model.SessionID) (*View, error)
}

var _ ControllerInterface = (*Controller)(nil)
