package content

import (
	"encoding/base64"
	"fmt"

	"github.com/mribera/penjat3d/internal/model"
)

// ResultPostcard builds the end-of-session result card as an SVG data URI.
// It is pure and local: no external call, no failure mode.
func ResultPostcard(outcome model.Outcome, word string) string {
	title := "Has perdut..."
	accent := "#c0392b"
	if outcome == model.OutcomeWon {
		title = "Has guanyat!"
		accent = "#27ae60"
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 400 240">`+
			`<rect width="400" height="240" rx="12" fill="#1d1d2e"/>`+
			`<rect x="12" y="12" width="376" height="216" rx="8" fill="none" stroke="%s" stroke-width="3"/>`+
			`<text x="200" y="95" text-anchor="middle" font-family="sans-serif" font-size="28" fill="%s">%s</text>`+
			`<text x="200" y="150" text-anchor="middle" font-family="monospace" font-size="34" letter-spacing="6" fill="#f0f0f5">%s</text>`+
			`<text x="200" y="205" text-anchor="middle" font-family="sans-serif" font-size="13" fill="#9a9ab8">El Penjat 3D</text>`+
			`</svg>`,
		accent, accent, title, word,
	)
	return svgDataURI(svg)
}

// svgDataURI encodes svg markup as a base64 data URI
func svgDataURI(svg string) string {
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
