package content

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mribera/penjat3d/internal/model"
)

// Normalize uppercases a candidate word, strips diacritics and spaces, and
// verifies the result fits the game alphabet. Ç is part of the alphabet and
// survives normalization; every other accented letter folds to its base form.
func Normalize(word string) (string, error) {
	upper := strings.ToUpper(strings.TrimSpace(word))

	// Protect Ç from the mark-stripping pass
	const cedillaSentinel = "\x00"
	protected := strings.ReplaceAll(upper, "Ç", cedillaSentinel)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, protected)
	if err != nil {
		return "", err
	}

	stripped = strings.ReplaceAll(stripped, cedillaSentinel, "Ç")

	var b strings.Builder
	for _, r := range stripped {
		if r == ' ' {
			continue
		}
		if !model.IsAlphabetLetter(r) {
			return "", model.ErrInvalidLetter
		}
		b.WriteRune(r)
	}

	if b.Len() == 0 {
		return "", model.ErrEmptyWord
	}
	return b.String(), nil
}
