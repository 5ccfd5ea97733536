package rankingapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/analyzer/ranking"
	"github.com/jmatamoros/cvmatch/analyzer/ranking/rankingsrv"
	"github.com/jmatamoros/cvmatch/pkg/errx"
	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

type stubRepo struct {
	candidate.Repository

	corpus []candidate.CorpusEntry
}

func (s *stubRepo) FetchCorpus(context.Context, int) ([]candidate.CorpusEntry, error) {
	return s.corpus, nil
}

func newTestApp(corpus []candidate.CorpusEntry) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		},
	})

	svc := rankingsrv.NewService(&stubRepo{corpus: corpus}, nil, 0, 0)
	RegisterRoutes(app, NewHandlers(svc))
	return app
}

func postAnalyze(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAnalyzeEndpoint_RanksCandidates(t *testing.T) {
	app := newTestApp([]candidate.CorpusEntry{
		{CandidateID: kernel.CandidateID("1"), FullName: "Ada", Text: "Go and Rust engineer"},
		{CandidateID: kernel.CandidateID("2"), FullName: "Ben", Text: "Rust and Go and Go"},
	})

	resp := postAnalyze(t, app, `{"keywords": ["go", "rust"]}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload ranking.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Results, 2)
	assert.Equal(t, "2", payload.Results[0].ID.String())
	assert.Equal(t, 3, payload.Results[0].Score)
	assert.Equal(t, "1", payload.Results[1].ID.String())
	assert.Equal(t, 2, payload.Total)
}

func TestAnalyzeEndpoint_EmptyKeywords(t *testing.T) {
	app := newTestApp([]candidate.CorpusEntry{
		{CandidateID: kernel.CandidateID("1"), FullName: "Ada", Text: "anything"},
	})

	resp := postAnalyze(t, app, `{"keywords": []}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload ranking.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Len(t, payload.Results, 1)
	assert.Zero(t, payload.Results[0].Score)
}

func TestAnalyzeEndpoint_MalformedJSON(t *testing.T) {
	app := newTestApp(nil)

	resp := postAnalyze(t, app, `{"keywords": [`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "RANKING_INVALID_REQUEST")
}

func TestAnalyzeEndpoint_NegativeTopN(t *testing.T) {
	app := newTestApp(nil)

	resp := postAnalyze(t, app, `{"keywords": ["go"], "top_n": -1}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
