package sse

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/testutil"
)

type BroadcasterSuite struct {
	suite.Suite
	manager     *HubManager
	broadcaster *Broadcaster
	ctx         context.Context
}

func TestBroadcasterSuite(t *testing.T) {
	suite.Run(t, new(BroadcasterSuite))
}

func (s *BroadcasterSuite) SetupTest() {
	s.manager = NewHubManager(testutil.NopLogger())
	s.broadcaster = NewBroadcaster(s.manager, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *BroadcasterSuite) playingView() *session.View {
	gameSession := model.NewSession("SESH12345678", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	gameSession.Status = model.StatusPlaying
	gameSession.Word = "GAT"
	return &session.View{
		Session:       gameSession,
		GridSize:      3,
		RevealedCount: 2,
		RevealedTiles: []model.TileID{8, 0},
	}
}

func (s *BroadcasterSuite) TestBroadcastsOOBFragments() {
	hub := s.manager.GetOrCreateHub("SESH12345678")
	client := NewClient(hub)
	hub.Register(client)

	s.broadcaster.BroadcastSessionUpdate(s.ctx, s.playingView())

	select {
	case msg := <-client.send:
		payload := string(msg)
		s.Contains(payload, "event: session-update\n")
		for _, id := range []string{"status-panel", "tile-board", "letter-board", "postcard"} {
			s.Contains(payload, `id="`+id+`"`)
		}
		s.Equal(4, strings.Count(payload, `hx-swap-oob="true"`))
		// The swap attribute rides on each fragment's own root; a wrapper
		// element would leave a duplicate id behind after the swap
		s.NotContains(payload, "<div id=")
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for broadcast")
	}
}

func (s *BroadcasterSuite) TestOOBTagKeepsSingleRoot() {
	html := MarkForOOBSwap(`<section id="postcard" class="postcard"></section>`)
	s.Equal(`<section id="postcard" class="postcard" hx-swap-oob="true"></section>`, html)
}

func (s *BroadcasterSuite) TestNoHubIsNoop() {
	// Must not panic or create a hub as a side effect
	s.broadcaster.BroadcastSessionUpdate(s.ctx, s.playingView())
	s.Nil(s.manager.GetHub("SESH12345678"))
}

func (s *BroadcasterSuite) TestEventNames() {
	gameSession := model.NewSession("SESH12345678", time.Now())

	gameSession.Status = model.StatusPlaying
	s.Equal("session-update", eventName(gameSession))

	gameSession.LastGuess = 'A'
	gameSession.LastGuessCorrect = true
	s.Equal("guess-correct", eventName(gameSession))

	gameSession.LastGuessCorrect = false
	s.Equal("guess-wrong", eventName(gameSession))

	gameSession.Status = model.StatusWon
	s.Equal("session-won", eventName(gameSession))

	gameSession.Status = model.StatusLost
	s.Equal("session-lost", eventName(gameSession))

	gameSession.Status = model.StatusError
	s.Equal("session-failed", eventName(gameSession))
}

func (s *BroadcasterSuite) TestFragmentsStaySingleLine() {
	// SSE frames carry one data line; a newline inside a fragment would
	// truncate the payload on the client
	renderer := NewRenderer()
	view := s.playingView()

	for name, render := range map[string]func(context.Context, *session.View) (string, error){
		"status-panel": renderer.RenderStatusPanel,
		"tile-board":   renderer.RenderTileBoard,
		"letter-board": renderer.RenderLetterBoard,
		"postcard":     renderer.RenderPostcard,
	} {
		html, err := render(s.ctx, view)
		s.Require().NoError(err, name)
		s.NotContains(html, "\n", name)
	}
}
