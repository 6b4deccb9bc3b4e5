package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/web/templates/components"
	"github.com/mribera/penjat3d/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
}

// Home renders the landing page with the start control
func Home(data HomeData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<section class="home"><h1>El Penjat 3D</h1>`+
				`<p>Endevina la paraula abans que el penjat caigui i descobreix el dibuix amagat.</p>`+
				`<form method="post" action="/session"><button type="submit" class="start">Comença</button></form>`+
				`</section>`)
		return err
	})
	return layout.Base(data.PageData, body)
}

// GameData holds data for the game page
type GameData struct {
	layout.PageData
	View *session.View
}

// Game renders the full game page. The session view fragments inside it are
// the same ones the SSE broadcaster swaps in as the game progresses.
func Game(data GameData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := templ.EscapeString(string(data.View.Session.ID))

		if _, err := fmt.Fprintf(w,
			`<div class="game" hx-ext="sse" sse-connect="/session/%s/events">`+
				`<div id="character-stage" class="character-stage" data-errors="%d"></div>`,
			id, data.View.Session.ErrorCount); err != nil {
			return err
		}

		for _, c := range []templ.Component{
			components.StatusPanel(data.View),
			components.TileBoard(data.View),
			components.LetterBoard(data.View),
			components.Postcard(data.View),
			components.MuteToggle(data.Muted),
		} {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</div>`)
		return err
	})
	return layout.Base(data.PageData, body)
}
