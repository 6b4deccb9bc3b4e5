package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/mribera/penjat3d/internal/factory"
	"github.com/mribera/penjat3d/internal/testutil"
	"github.com/mribera/penjat3d/internal/web"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

// newWebTestServer creates a test server wired against the in-memory app with
// mocked clock and random
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()

	router := web.NewRouter(web.RouterConfig{
		Logger:            testutil.NopLogger(),
		SessionController: app.SessionController,
		HubManager:        app.HubManager,
		MediaDevice:       app.MediaDevice,
		StaticDir:         "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, false)
}

// post makes a POST request with form data (non-HTMX)
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, false)
}

// postHTMX makes a POST request with form data as an HTMX request
func (ts *webTestServer) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form, true)
}

// startSession creates a session via the web flow and returns its id
func (ts *webTestServer) startSession() string {
	ts.t.Helper()

	ts.app.MockRandom.QueueString("SESH12345678")
	rr := ts.post("/session", nil)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after session creation")

	location := rr.Header().Get("Location")
	require.True(ts.t, strings.HasPrefix(location, "/session/"), "Expected redirect to session page")
	return strings.TrimPrefix(location, "/session/")
}

// guess submits a letter via the HTMX flow
func (ts *webTestServer) guess(id, letter string) *httptest.ResponseRecorder {
	ts.t.Helper()
	return ts.postHTMX("/session/"+id+"/guess", url.Values{"letter": {letter}})
}

// parseHTML parses the response body as HTML
func parseHTML(t *testing.T, r io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(r)
	require.NoError(t, err)
	return doc
}

// assertContainsElement asserts the document has at least one match for sel
func assertContainsElement(t *testing.T, doc *goquery.Document, sel string) {
	t.Helper()
	require.Positive(t, doc.Find(sel).Length(), "expected element %q", sel)
}
