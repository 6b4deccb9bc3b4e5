package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/mribera/penjat3d/internal/model"
	"github.com/mribera/penjat3d/internal/services/session"
)

// StatusPanel renders the word progress, hint and error state. The
// data-errors attribute drives the 3D character's pose on the client.
func StatusPanel(view *session.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := view.Session

		masked := strings.Join(strings.Split(s.MaskedWord(), ""), " ")
		if _, err := fmt.Fprintf(w,
			`<section id="status-panel" class="status status-%s" data-errors="%d" data-status="%s">`,
			s.Status, s.ErrorCount, s.Status); err != nil {
			return err
		}

		switch s.Status {
		case model.StatusLoading:
			if _, err := io.WriteString(w, `<p class="loading">Preparant una paraula nova...</p>`); err != nil {
				return err
			}
		case model.StatusError:
			if _, err := fmt.Fprintf(w, `<p class="error">%s</p>`,
				templ.EscapeString(s.ErrorMessage)); err != nil {
				return err
			}
		default:
			if _, err := fmt.Fprintf(w,
				`<p class="word">%s</p><p class="hint">%s</p><p class="errors">Errors: %d / %d</p>`,
				templ.EscapeString(masked), templ.EscapeString(s.Hint),
				s.ErrorCount, model.MaxErrors); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// TileBoard renders the hidden image behind its cover grid. Revealed tiles
// carry the "revealed" class; the rest stay opaque.
func TileBoard(view *session.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		size := view.GridSize
		revealed := make(map[model.TileID]bool, len(view.RevealedTiles))
		for _, id := range view.RevealedTiles {
			revealed[id] = true
		}

		if _, err := fmt.Fprintf(w,
			`<section id="tile-board" class="tile-board" style="--grid-size:%d">`, size); err != nil {
			return err
		}
		if view.Session.ImageRef != "" {
			if _, err := fmt.Fprintf(w, `<img class="hidden-image" src="%s" alt="">`,
				templ.EscapeString(view.Session.ImageRef)); err != nil {
				return err
			}
		}
		for i := 0; i < size*size; i++ {
			class := "tile"
			if revealed[model.TileID(i)] {
				class = "tile revealed"
			}
			if _, err := fmt.Fprintf(w, `<div class="%s" data-tile="%d"></div>`, class, i); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// LetterBoard renders one button per alphabet letter. Guessed letters are
// disabled and marked correct or wrong; the board locks once the session
// leaves the playing state.
func LetterBoard(view *session.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		s := view.Session
		locked := s.Status != model.StatusPlaying

		if _, err := io.WriteString(w, `<section id="letter-board" class="letter-board">`); err != nil {
			return err
		}
		for _, r := range model.Alphabet {
			letter := string(r)
			class := "letter"
			disabled := ""
			if s.HasGuessed(r) {
				if strings.ContainsRune(s.Word, r) {
					class = "letter correct"
				} else {
					class = "letter wrong"
				}
				disabled = " disabled"
			} else if locked {
				disabled = " disabled"
			}
			if _, err := fmt.Fprintf(w,
				`<button class="%s" hx-post="/session/%s/guess" hx-vals='{"letter":"%s"}' hx-swap="none"%s>%s</button>`,
				class, templ.EscapeString(string(s.ID)), letter, disabled, letter); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// Postcard renders the terminal result card with a restart control
func Postcard(view *session.View) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="postcard" class="postcard">`); err != nil {
			return err
		}
		if view.Postcard != "" {
			if _, err := fmt.Fprintf(w,
				`<img src="%s" alt="Resultat de la partida">`+
					`<form method="post" action="/session/%s/restart">`+
					`<button type="submit">Torna-hi</button></form>`,
				templ.EscapeString(view.Postcard),
				templ.EscapeString(string(view.Session.ID))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}

// MuteToggle renders the audio mute control reflecting the shared device
func MuteToggle(muted bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		label := "So: activat"
		if muted {
			label = "So: silenciat"
		}
		_, err := fmt.Fprintf(w,
			`<button id="mute-toggle" class="mute" data-muted="%t" hx-post="/media/mute" hx-swap="outerHTML">%s</button>`,
			muted, label)
		return err
	})
}
