package web_test

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/wheelgame-go/internal/factory"
	"github.com/mcoot/wheelgame-go/internal/services/game"
	"github.com/mcoot/wheelgame-go/internal/testutil"
	"github.com/mcoot/wheelgame-go/internal/web"
	"github.com/mcoot/wheelgame-go/internal/web/sse"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	app := factory.NewTestApp()
	t.Cleanup(func() { _ = app.Close() })

	router := web.NewRouter(web.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		Hub:            app.Hub,
		StaticDir:      "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	req.Header.Set("HX-Request", "true")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// post submits a form and parses the fragment response
func (ts *webTestServer) post(path string, form url.Values) *goquery.Document {
	ts.t.Helper()
	rr := ts.request(http.MethodPost, path, form)
	require.Equal(ts.t, http.StatusOK, rr.Code, rr.Body.String())
	return parseHTML(ts.t, rr.Body.String())
}

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func (ts *webTestServer) startPuzzle(player string, spin string) {
	ts.post("/game/next", nil)
	ts.post("/game/select", url.Values{"player": {player}})
	ts.post("/game/spin", url.Values{"amount": {spin}})
}

func TestViewRendersBoardPage(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.request(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	doc := parseHTML(t, rr.Body.String())
	assert.Equal(t, "3 puzzles loaded", doc.Find("#status").Text())
	assert.Equal(t, 3, doc.Find("#scoreboard li.player").Length())
	assert.Equal(t, 26, doc.Find("#alphabet button.letter").Length())
	sseURL, _ := doc.Find("body").Attr("sse-connect")
	assert.Equal(t, "/game/events", sseURL)
	swap, _ := doc.Find("[sse-swap]").Attr("sse-swap")
	assert.Contains(t, strings.Split(swap, ","), sse.EventLetterUpdate)
}

func TestViewNeverShowsHiddenLetters(t *testing.T) {
	ts := newWebTestServer(t)
	ts.post("/game/next", nil)

	doc := parseHTML(t, ts.request(http.MethodGet, "/", nil).Body.String())
	assert.Equal(t, "Puzzle 1 of 3", doc.Find("#status").Text())
	assert.Equal(t, 14, doc.Find("#board .tile-hidden").Length())
	assert.Empty(t, strings.TrimSpace(doc.Find("#board").Text()))
}

func TestRequestIDHeaderSet(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.request(http.MethodGet, "/", nil)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestNextReturnsOutOfBandStatus(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.post("/game/next", nil)

	oob, _ := doc.Find("div[hx-swap-oob]").First().Attr("hx-swap-oob")
	assert.Equal(t, "outerHTML:#status", oob)
	assert.Equal(t, "Puzzle 1 of 3", doc.Find("#status").Text())
	assert.Equal(t, 0, doc.Find("#message").Length())
}

func TestSelectMarksPlayer(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.post("/game/select", url.Values{"player": {"Bob"}})

	assert.True(t, doc.Find(`li[data-player="Bob"]`).HasClass("selected"))
	assert.False(t, doc.Find(`li[data-player="Alice"]`).HasClass("selected"))
}

func TestSelectUnknownPlayerShowsMessage(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.post("/game/select", url.Values{"player": {"Mallory"}})

	assert.Contains(t, doc.Find("#message").Text(), "unknown player")
}

func TestSpinShowsPendingAmount(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.post("/game/spin", url.Values{"amount": {"650"}})

	assert.Equal(t, "Spin: $650", doc.Find("#pending-spin").Text())
}

func TestSpinRejectsNonNumericAmount(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.post("/game/spin", url.Values{"amount": {"lots"}})

	assert.Equal(t, "Please enter the spin amount as a whole number", doc.Find("#message").Text())
	assert.Empty(t, doc.Find("#pending-spin").Text())
}

func TestSpinRejectsNegativeAmount(t *testing.T) {
	ts := newWebTestServer(t)

	doc := ts.post("/game/spin", url.Values{"amount": {"-5"}})

	assert.Equal(t, "Spin amount must not be negative", doc.Find("#message").Text())
}

func TestLetterWithoutSpinShowsPrompt(t *testing.T) {
	ts := newWebTestServer(t)
	ts.post("/game/next", nil)
	ts.post("/game/select", url.Values{"player": {"Alice"}})

	doc := ts.post("/game/letter", url.Values{"letter": {"W"}})

	assert.Equal(t, game.MessageNoSpinAmount, doc.Find("#message").Text())
}

func TestLetterAwardsPayoutAndDisablesButton(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startPuzzle("Alice", "500")

	doc := ts.post("/game/letter", url.Values{"letter": {"f"}})

	assert.Equal(t, "$1000", doc.Find(`li[data-player="Alice"] .score`).Text())
	_, disabled := doc.Find("#letter-F").Attr("disabled")
	assert.True(t, disabled)
	assert.Empty(t, doc.Find("#pending-spin").Text())
	assert.Equal(t, 0, doc.Find("#message").Length())
}

func TestLetterRejectsMultipleCharacters(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startPuzzle("Alice", "500")

	doc := ts.post("/game/letter", url.Values{"letter": {"AB"}})

	assert.Equal(t, "Invalid letter", doc.Find("#message").Text())
}

func TestVowelWithoutFundsShowsMessage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startPuzzle("Alice", "500")

	doc := ts.post("/game/letter", url.Values{"letter": {"E"}})

	assert.Equal(t, "Alice needs at least $1000 to purchase a vowel!", doc.Find("#message").Text())
}

func TestSolveIncorrectShowsMessage(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startPuzzle("Alice", "500")

	doc := ts.post("/game/solve", url.Values{"guess": {"WHEEL OF MISFORTUNE"}})

	assert.Equal(t, game.MessageIncorrectGuess, doc.Find("#message").Text())
}

func TestSolveCorrectAwardsBonus(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startPuzzle("Carol", "500")

	doc := ts.post("/game/solve", url.Values{"guess": {"wheel of fortune"}})

	assert.Equal(t, "$5000", doc.Find(`li[data-player="Carol"] .score`).Text())

	ts.app.FinishReveals()
	page := parseHTML(t, ts.request(http.MethodGet, "/", nil).Body.String())
	assert.Equal(t, game.MessageWin, page.Find("#message").Text())
	assert.Equal(t, 14, page.Find("#board .tile-revealed").Length())
}

func TestWheelSetsPendingSpin(t *testing.T) {
	ts := newWebTestServer(t)
	ts.post("/game/next", nil)
	ts.post("/game/select", url.Values{"player": {"Alice"}})
	ts.app.MockRandom.QueueIntn(14)

	doc := ts.post("/game/wheel", nil)

	assert.Equal(t, "Spin: $1000", doc.Find("#pending-spin").Text())
}

func TestBankruptResetsScore(t *testing.T) {
	ts := newWebTestServer(t)
	ts.startPuzzle("Bob", "900")
	ts.post("/game/letter", url.Values{"letter": {"W"}})

	doc := ts.post("/game/bankrupt", nil)

	assert.Equal(t, "$0", doc.Find(`li[data-player="Bob"] .score`).Text())
}

func TestNextAfterLastPuzzleShowsNoMorePuzzles(t *testing.T) {
	ts := newWebTestServer(t)
	for i := 0; i < 3; i++ {
		ts.post("/game/next", nil)
	}

	doc := ts.post("/game/next", nil)

	assert.Equal(t, game.MessageNoPuzzles, doc.Find("#message").Text())
	assert.Equal(t, "All puzzles have been shown", doc.Find("#status").Text())
}

func TestActionsRequirePost(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.request(http.MethodGet, "/game/next", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

// TestSSE_EndpointHeaders verifies the SSE endpoint returns correct headers
func TestSSE_EndpointHeaders(t *testing.T) {
	ts := newWebTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/game/events", nil)

	// Use a context with timeout since SSE is a long-running connection
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, "text/event-stream", rr.Header().Get("Content-Type"))
	assert.Equal(t, "no-cache", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "keep-alive", rr.Header().Get("Connection"))
	assert.Equal(t, "no", rr.Header().Get("X-Accel-Buffering"))
	assert.Contains(t, rr.Body.String(), "event: connected")
}

// TestSSE_BroadcastReceived verifies that board updates reach connected clients
func TestSSE_BroadcastReceived(t *testing.T) {
	ts := newWebTestServer(t)
	server := httptest.NewServer(ts.handler)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/game/events", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	readUntil := func(prefix string) string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, prefix) {
				return line
			}
		}
	}
	readUntil("event: connected")

	postResp, err := http.PostForm(server.URL+"/game/next", url.Values{})
	require.NoError(t, err)
	_ = postResp.Body.Close()

	line := readUntil("event: board-update")
	assert.Equal(t, "event: board-update\n", line)
	data := readUntil("data: ")
	assert.Contains(t, data, `hx-swap-oob="outerHTML:#board"`)
	assert.NotContains(t, data, "WHEEL")
}

// TestSSE_LetterUpdateSwapsButton verifies that a requested letter disables its button on every page
func TestSSE_LetterUpdateSwapsButton(t *testing.T) {
	ts := newWebTestServer(t)
	server := httptest.NewServer(ts.handler)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/game/events", nil)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	reader := bufio.NewReader(resp.Body)
	nextEvent := func() (string, string) {
		var event, data string
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			switch {
			case strings.HasPrefix(line, "event: "):
				event = strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			case strings.HasPrefix(line, "data: "):
				data = strings.TrimPrefix(line, "data: ")
			case line == "\n" && event != "":
				return event, data
			}
		}
	}

	event, _ := nextEvent()
	require.Equal(t, "connected", event)

	ts.startPuzzle("Alice", "500")
	ts.post("/game/letter", url.Values{"letter": {"f"}})

	for {
		event, data := nextEvent()
		if event != sse.EventLetterUpdate || !strings.Contains(data, "#letter-F") {
			continue
		}
		if !strings.Contains(data, " disabled") {
			continue
		}
		doc := parseHTML(t, data)
		oob, _ := doc.Find("div").Attr("hx-swap-oob")
		assert.Equal(t, "outerHTML:#letter-F", oob)
		_, disabled := doc.Find("button#letter-F").Attr("disabled")
		assert.True(t, disabled)
		return
	}
}
