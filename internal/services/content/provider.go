package content

import (
	"context"

	"github.com/mribera/penjat3d/internal/model"
)

// Provider supplies generated game content: a word with a hint and image
// description, and a hidden illustration for it. Implementations may call an
// external generation service and are allowed to fail; callers decide which
// failures are fatal.
type Provider interface {
	// GenerateWord returns normalized word content, avoiding words in exclude
	GenerateWord(ctx context.Context, exclude []string) (*model.WordContent, error)

	// GenerateHiddenImage returns an image reference (typically a data URI)
	// for the given word and description
	GenerateHiddenImage(ctx context.Context, word, description string) (string, error)
}

// PlaceholderImage returns the fixed fallback illustration used when image
// generation fails. Image failure is non-fatal to a session.
func PlaceholderImage() string {
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">` +
		`<rect width="200" height="200" fill="#2b2b40"/>` +
		`<circle cx="100" cy="85" r="40" fill="#44445e"/>` +
		`<rect x="55" y="130" width="90" height="14" rx="7" fill="#44445e"/>` +
		`<text x="100" y="178" text-anchor="middle" font-family="sans-serif" font-size="14" fill="#9a9ab8">?</text>` +
		`</svg>`
	return svgDataURI(svg)
}
