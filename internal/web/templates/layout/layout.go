package layout

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// PageData holds data common to all pages
type PageData struct {
	Title string
	Muted bool
}

// Base wraps a page body in the HTML shell: htmx plus its SSE extension for
// live updates, and the client bundle that drives the 3D character and audio.
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="ca"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1">`+
				`<title>%s - El Penjat 3D</title>`+
				`<script src="https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"></script>`+
				`<script src="https://unpkg.com/htmx-ext-sse@2.2.2/sse.js"></script>`+
				`<link rel="stylesheet" href="/static/style.css">`+
				`</head><body data-muted="%t"><main class="app">`,
			templ.EscapeString(data.Title), data.Muted); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main><script src="/static/penjat.js" type="module"></script></body></html>`)
		return err
	})
}
