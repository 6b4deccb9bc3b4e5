package content

import (
	"context"
	"fmt"

	"github.com/mribera/penjat3d/internal/dependencies/random"
	"github.com/mribera/penjat3d/internal/model"
)

// catalogEntry is one built-in word with its hint and image description
type catalogEntry struct {
	word        string // as written, may carry accents; normalized on pick
	hint        string
	description string
}

// Built-in Catalan catalogue used when no external provider is configured,
// and as the offline fallback.
var catalog = []catalogEntry{
	{"gat", "Animal domèstic que ronca i caça ratolins", "un gat taronja dormint sobre un sofà"},
	{"drac", "Criatura llegendària que Sant Jordi va vèncer", "un drac verd traient foc"},
	{"muntanya", "Relleu natural molt alt, sovint amb neu al cim", "una muntanya nevada a l'alba"},
	{"castell", "Construcció medieval amb torres i muralles", "un castell de pedra sobre un turó"},
	{"barça", "Club de futbol blaugrana", "un estadi de futbol ple de gom a gom"},
	{"panellets", "Dolços típics de la Castanyada", "una safata de dolços de massapà amb pinyons"},
	{"caganer", "Figura irreverent del pessebre", "una figureta de fang ajupida amb barretina"},
	{"sardana", "Dansa tradicional en cercle", "gent ballant en cercle agafada de les mans"},
	{"calçot", "Ceba tendra que es menja a la brasa", "cebes tendres rostint-se sobre flames"},
	{"estel", "Cos celeste que brilla de nit", "un cel nocturn ple de punts brillants"},
	{"formatge", "Aliment fet amb llet quallada", "una peça rodona de formatge curat"},
	{"guitarra", "Instrument de sis cordes", "una guitarra espanyola recolzada en una cadira"},
	{"petó", "Mostra d'afecte amb els llavis", "dues figures fent-se un petó"},
	{"força", "El que et donen els ànims", "un braç flexionant el múscul"},
	{"vaixell", "Transport que navega pel mar", "un veler solcant onades blaves"},
	{"tramuntana", "Vent fred del nord", "arbres inclinats per un vent fort"},
	{"llibre", "Objecte ple de pàgines per llegir", "un llibre obert sobre una taula de fusta"},
	{"cargol", "Mol·lusc que porta la casa a sobre", "un cargol sobre una fulla verda"},
	{"xocolata", "Dolç fet amb cacau", "una tauleta de xocolata partida"},
	{"pa", "Aliment bàsic fet amb farina i forn", "una barra de pa acabada de fer"},
	{"lluna", "Satèl·lit que il·lumina la nit", "una lluna plena sobre el mar"},
	{"penya-segat", "Paret de roca que cau al mar", "un espadat rocós sobre aigua turquesa"},
	{"gegant", "Figura enorme que balla per festa major", "una figura gegant de festa amb vestit de colors"},
	{"escudella", "Sopa tradicional de Nadal", "un plat fondo de sopa amb galets"},
	{"ratolí", "Rosegador petit que tem els gats", "un ratolí gris menjant un tros de formatge"},
}

// CatalogProvider serves words from the built-in catalogue. It is the
// offline/default implementation of Provider; hidden images are drawn
// locally as SVG.
type CatalogProvider struct {
	random random.Random
}

// NewCatalogProvider creates a CatalogProvider
func NewCatalogProvider(random random.Random) *CatalogProvider {
	return &CatalogProvider{random: random}
}

var _ Provider = (*CatalogProvider)(nil)

// GenerateWord picks a catalogue entry whose normalized word is not in
// exclude. If every word is excluded the exclusion is ignored.
func (p *CatalogProvider) GenerateWord(ctx context.Context, exclude []string) (*model.WordContent, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, w := range exclude {
		excluded[w] = true
	}

	candidates := make([]catalogEntry, 0, len(catalog))
	for _, e := range catalog {
		normalized, err := Normalize(e.word)
		if err != nil {
			continue
		}
		if !excluded[normalized] {
			candidates = append(candidates, e)
		}
	}
	if len(candidates) == 0 {
		candidates = catalog
	}

	entry := candidates[p.random.Intn(len(candidates))]
	word, err := Normalize(entry.word)
	if err != nil {
		return nil, err
	}

	return &model.WordContent{
		Word:             word,
		Hint:             entry.hint,
		ImageDescription: entry.description,
	}, nil
}

// GenerateHiddenImage draws a simple local illustration card for the word.
// It cannot fail, so catalogue sessions never fall back to the placeholder.
func (p *CatalogProvider) GenerateHiddenImage(ctx context.Context, word, description string) (string, error) {
	initial := "?"
	for _, r := range word {
		initial = string(r)
		break
	}

	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">`+
			`<rect width="200" height="200" fill="#30304a"/>`+
			`<circle cx="100" cy="90" r="55" fill="#50507a"/>`+
			`<text x="100" y="110" text-anchor="middle" font-family="sans-serif" font-size="56" fill="#e8e8f5">%s</text>`+
			`<text x="100" y="180" text-anchor="middle" font-family="sans-serif" font-size="11" fill="#9a9ab8">%s</text>`+
			`</svg>`,
		initial, description,
	)
	return svgDataURI(svg), nil
}
