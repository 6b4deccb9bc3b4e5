package sse

import (
	"context"
	"log/slog"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/session"
)

// Broadcaster pushes session updates to SSE clients as OOB fragment swaps
type Broadcaster struct {
	hubManager *HubManager
	renderer   *Renderer
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		renderer:   NewRenderer(),
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// BroadcastSessionUpdate broadcasts the refreshed game fragments after a
// guess or a status change. Connected clients swap them in place; the event
// name also cues the client's character animation and audio reaction.
func (b *Broadcaster) BroadcastSessionUpdate(ctx context.Context, view *session.View) {
	hub := b.hubManager.GetHub(view.Session.ID)
	if hub == nil {
		return
	}

	fragments := []struct {
		id     string
		render func(context.Context, *session.View) (string, error)
	}{
		{"status-panel", b.renderer.RenderStatusPanel},
		{"tile-board", b.renderer.RenderTileBoard},
		{"letter-board", b.renderer.RenderLetterBoard},
		{"postcard", b.renderer.RenderPostcard},
	}

	var payload string
	for _, f := range fragments {
		html, err := f.render(ctx, view)
		if err != nil {
			b.logger.Error("sse failed to render fragment",
				slog.String("session", string(view.Session.ID)),
				slog.String("fragment", f.id),
				slog.Any("error", err))
			return
		}
		payload += MarkForOOBSwap(html)
	}

	hub.BroadcastEvent(eventName(view.Session), payload)
}

// eventName maps session state to the SSE event the client listens for
func eventName(s *model.GameSession) string {
	switch {
	case s.Status == model.StatusWon:
		return "session-won"
	case s.Status == model.StatusLost:
		return "session-lost"
	case s.Status == model.StatusError:
		return "session-failed"
	case s.LastGuess != 0 && s.LastGuessCorrect:
		return "guess-correct"
	case s.LastGuess != 0:
		return "guess-wrong"
	default:
		return "session-update"
	}
}
