package rankingsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/analyzer/ranking"
	"github.com/jmatamoros/cvmatch/pkg/errx"
	"github.com/jmatamoros/cvmatch/pkg/kernel"
)

type fakeRepo struct {
	candidate.Repository

	corpus     []candidate.CorpusEntry
	corpusErr  error
	fetchCalls int
}

func (f *fakeRepo) FetchCorpus(_ context.Context, _ int) ([]candidate.CorpusEntry, error) {
	f.fetchCalls++
	if f.corpusErr != nil {
		return nil, f.corpusErr
	}
	return f.corpus, nil
}

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	return m.data[key], nil
}

func (m *memCache) Set(_ context.Context, key string, data []byte, _ time.Duration) error {
	m.data[key] = data
	return nil
}

type failingCache struct{}

func (failingCache) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("redis down")
}

func (failingCache) Set(context.Context, string, []byte, time.Duration) error {
	return errors.New("redis down")
}

func testCorpus() []candidate.CorpusEntry {
	return []candidate.CorpusEntry{
		{CandidateID: kernel.CandidateID("1"), FullName: "Ada", Text: "Go and Rust engineer"},
		{CandidateID: kernel.CandidateID("2"), FullName: "Ben", Text: "Rust and Go and Go"},
		{CandidateID: kernel.CandidateID("3"), FullName: "Cal", Text: "frontend only"},
	}
}

func TestAnalyze_RanksDescending(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	svc := NewService(repo, nil, 0, 0)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{
		Keywords: []string{"Go", "rust"},
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 3)
	assert.Equal(t, "2", resp.Results[0].ID.String())
	assert.Equal(t, 3, resp.Results[0].Score)
	assert.Equal(t, "1", resp.Results[1].ID.String())
	assert.Equal(t, 2, resp.Results[1].Score)
	assert.Equal(t, "3", resp.Results[2].ID.String())
	assert.Zero(t, resp.Results[2].Score)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, []string{"go", "rust"}, resp.Keywords)
	assert.False(t, resp.Cached)
}

func TestAnalyze_TopN(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	svc := NewService(repo, nil, 0, 0)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{
		Keywords: []string{"go"},
		TopN:     1,
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "2", resp.Results[0].ID.String())
	assert.Equal(t, 3, resp.Total, "total counts the scored corpus, not the truncated page")
}

func TestAnalyze_MinScore(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	svc := NewService(repo, nil, 0, 0)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{
		Keywords: []string{"go"},
		MinScore: 1,
	})

	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	for _, item := range resp.Results {
		assert.GreaterOrEqual(t, item.Score, 1)
	}
	assert.Equal(t, 3, resp.Total)
}

func TestAnalyze_ZeroMinScoreKeepsEveryone(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	svc := NewService(repo, nil, 0, 0)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{
		Keywords: []string{"cobol"},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Results, 3, "zero-score candidates stay in the response by default")
}

func TestAnalyze_RejectsNegativeParams(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, 0, 0)

	for _, req := range []ranking.AnalyzeRequest{
		{Keywords: []string{"go"}, TopN: -1},
		{Keywords: []string{"go"}, MinScore: -5},
	} {
		_, err := svc.Analyze(context.Background(), req)
		require.Error(t, err)
		var e *errx.Error
		require.ErrorAs(t, err, &e)
		assert.Equal(t, 400, e.HTTPStatus)
	}
}

func TestAnalyze_CorpusFailure(t *testing.T) {
	repo := &fakeRepo{corpusErr: errors.New("connection refused")}
	svc := NewService(repo, nil, 0, 0)

	_, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{Keywords: []string{"go"}})

	require.Error(t, err)
	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errx.TypeInternal, e.Type)
}

func TestAnalyze_CacheHitSkipsRepo(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	cache := newMemCache()
	svc := NewService(repo, cache, 0, time.Minute)

	req := ranking.AnalyzeRequest{Keywords: []string{"go", "rust"}}

	first, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.Equal(t, 1, repo.fetchCalls)

	second, err := svc.Analyze(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, 1, repo.fetchCalls, "cache hit must not hit the repository")
	assert.Equal(t, first.Results, second.Results)
}

func TestAnalyze_CacheKeyIgnoresKeywordCasing(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	cache := newMemCache()
	svc := NewService(repo, cache, 0, time.Minute)

	_, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{Keywords: []string{"Go", "RUST"}})
	require.NoError(t, err)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{Keywords: []string{" go ", "rust", "go"}})
	require.NoError(t, err)
	assert.True(t, resp.Cached, "requests equal after normalization share a cache entry")
	assert.Equal(t, 1, repo.fetchCalls)
}

func TestAnalyze_CacheKeyVariesWithParams(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	cache := newMemCache()
	svc := NewService(repo, cache, 0, time.Minute)

	_, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{Keywords: []string{"go"}})
	require.NoError(t, err)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{Keywords: []string{"go"}, TopN: 1})
	require.NoError(t, err)
	assert.False(t, resp.Cached)
	assert.Equal(t, 2, repo.fetchCalls)
}

func TestAnalyze_CacheFailureDegradesToCompute(t *testing.T) {
	repo := &fakeRepo{corpus: testCorpus()}
	svc := NewService(repo, failingCache{}, 0, time.Minute)

	resp, err := svc.Analyze(context.Background(), ranking.AnalyzeRequest{Keywords: []string{"go"}})

	require.NoError(t, err)
	assert.Len(t, resp.Results, 3)
	assert.Equal(t, 1, repo.fetchCalls)
}
