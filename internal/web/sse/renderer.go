package sse

import (
	"bytes"
	"context"
	"strings"

	"github.com/a-h/templ"

	"github.com/mribera/penjat3d/internal/services/session"
	"github.com/mribera/penjat3d/internal/web/templates/components"
)

// Renderer converts session views to HTML fragments for SSE
type Renderer struct{}

// NewRenderer creates a new Renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

func render(ctx context.Context, c templ.Component) (string, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderStatusPanel renders the status panel fragment as HTML
func (r *Renderer) RenderStatusPanel(ctx context.Context, view *session.View) (string, error) {
	return render(ctx, components.StatusPanel(view))
}

// RenderTileBoard renders the tile board fragment as HTML
func (r *Renderer) RenderTileBoard(ctx context.Context, view *session.View) (string, error) {
	return render(ctx, components.TileBoard(view))
}

// RenderLetterBoard renders the letter board fragment as HTML
func (r *Renderer) RenderLetterBoard(ctx context.Context, view *session.View) (string, error) {
	return render(ctx, components.LetterBoard(view))
}

// RenderPostcard renders the postcard fragment as HTML
func (r *Renderer) RenderPostcard(ctx context.Context, view *session.View) (string, error) {
	return render(ctx, components.Postcard(view))
}

// MarkForOOBSwap tags a fragment's root element with hx-swap-oob so htmx
// replaces the element with the same id in place. The attribute goes on the
// root itself; a wrapper element would leave a duplicate id in the DOM after
// the swap.
func MarkForOOBSwap(html string) string {
	i := strings.Index(html, ">")
	if i < 0 {
		return html
	}
	return html[:i] + ` hx-swap-oob="true"` + html[i:]
}
