package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomePageShowsStartControl(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	assertContainsElement(t, doc, `form[action="/session"]`)
	assert.Contains(t, doc.Find("h1").Text(), "El Penjat 3D")

	// The shell must carry its own runtime: htmx plus the SSE extension
	assert.Equal(t, 2, doc.Find("script[src*=htmx]").Length())
}

func TestStartSessionRedirectsToGamePage(t *testing.T) {
	ts := newWebTestServer(t)

	id := ts.startSession()
	assert.Equal(t, "SESH12345678", id)
}

func TestGamePageShowsBoardAndLetters(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startSession()

	rr := ts.get("/session/" + id)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	assertContainsElement(t, doc, "#status-panel")
	assertContainsElement(t, doc, "#tile-board")
	assertContainsElement(t, doc, "#letter-board")
	assertContainsElement(t, doc, "#character-stage")

	// The catalogue round starts with the base reveal amount uncovered
	assert.Equal(t, 2, doc.Find("#tile-board .tile.revealed").Length())

	// One button per alphabet letter, including the cedilla
	assert.Equal(t, 27, doc.Find("#letter-board button").Length())
}

func TestUnknownSessionIs404(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/session/MISSING")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHTMXGuessReturnsNoContent(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startSession()

	rr := ts.guess(id, "A")
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestNonHTMXGuessRedirectsBack(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startSession()

	rr := ts.post("/session/"+id+"/guess", url.Values{"letter": {"A"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/session/"+id, rr.Header().Get("Location"))
}

func TestGuessUncoversMoreTiles(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startSession()

	rr := ts.guess(id, "A")
	require.Equal(t, http.StatusNoContent, rr.Code)

	page := ts.get("/session/" + id)
	require.Equal(t, http.StatusOK, page.Code)

	doc := parseHTML(t, page.Body)
	assert.Equal(t, 4, doc.Find("#tile-board .tile.revealed").Length())
	assertContainsElement(t, doc, "#letter-board button.correct")
}

func TestWinningShowsPostcardAndFullImage(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startSession()

	// The mock catalogue pick is GAT
	for _, letter := range []string{"G", "A", "T"} {
		rr := ts.guess(id, letter)
		require.Equal(t, http.StatusNoContent, rr.Code)
	}

	page := ts.get("/session/" + id)
	require.Equal(t, http.StatusOK, page.Code)

	doc := parseHTML(t, page.Body)
	assert.Equal(t, 25, doc.Find("#tile-board .tile.revealed").Length())
	assertContainsElement(t, doc, "#postcard img")
	assertContainsElement(t, doc, `#postcard form[action="/session/`+id+`/restart"]`)

	// Guess buttons lock once the round is over
	assert.Equal(t, 27, doc.Find("#letter-board button[disabled]").Length())
}

func TestRestartStartsFreshRound(t *testing.T) {
	ts := newWebTestServer(t)
	id := ts.startSession()

	for _, letter := range []string{"G", "A", "T"} {
		require.Equal(t, http.StatusNoContent, ts.guess(id, letter).Code)
	}

	// Restart picks the next non-excluded catalogue word
	rr := ts.post("/session/"+id+"/restart", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)

	page := ts.get("/session/" + id)
	doc := parseHTML(t, page.Body)
	assert.Equal(t, 2, doc.Find("#tile-board .tile.revealed").Length())
	assert.Zero(t, doc.Find("#letter-board button.correct").Length())
}

func TestMuteToggle(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postHTMX("/media/mute", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(t, rr.Body)
	assert.Contains(t, doc.Find("#mute-toggle").Text(), "silenciat")
	assert.True(t, ts.app.MediaDevice.Started())
	assert.True(t, ts.app.MediaDevice.Muted())

	rr = ts.postHTMX("/media/mute", nil)
	doc = parseHTML(t, rr.Body)
	assert.Contains(t, doc.Find("#mute-toggle").Text(), "activat")
	assert.False(t, ts.app.MediaDevice.Muted())
}
