package rankingsrv

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
	"github.com/jmatamoros/cvmatch/analyzer/ranking"
	"github.com/jmatamoros/cvmatch/pkg/logx"
)

const DefaultCorpusLimit = 3000

// Service orchestrates the analyze flow: fetch the corpus, rank it with the
// pure engine, then apply the boundary-owned shaping (min-score filter and
// top-N truncation) the engine deliberately knows nothing about.
type Service struct {
	repo        candidate.Repository
	cache       ranking.ResultCache
	corpusLimit int
	cacheTTL    time.Duration
}

// NewService creates a new ranking service. cache may be nil, in which case
// every request is computed directly.
func NewService(
	repo candidate.Repository,
	cache ranking.ResultCache,
	corpusLimit int,
	cacheTTL time.Duration,
) *Service {
	if corpusLimit <= 0 {
		corpusLimit = DefaultCorpusLimit
	}
	return &Service{
		repo:        repo,
		cache:       cache,
		corpusLimit: corpusLimit,
		cacheTTL:    cacheTTL,
	}
}

// Analyze scores and ranks the candidate corpus against the request keywords.
func (s *Service) Analyze(ctx context.Context, req ranking.AnalyzeRequest) (*ranking.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	normalized := ranking.NormalizeKeywords(req.Keywords)
	key := cacheKey(normalized, req.TopN, req.MinScore)

	if resp := s.fromCache(ctx, key); resp != nil {
		return resp, nil
	}

	corpus, err := s.repo.FetchCorpus(ctx, s.corpusLimit)
	if err != nil {
		return nil, ranking.ErrCorpusFetchFailed().WithCause(err)
	}

	ranked := ranking.Rank(corpus, normalized)
	logx.Debugf("Ranked %d candidates against %d keywords", len(ranked), len(normalized))

	resp := shapeResponse(ranked, normalized, req.TopN, req.MinScore)
	s.toCache(ctx, key, resp)

	return resp, nil
}

// shapeResponse applies min-score filtering and top-N truncation. The
// untruncated total is preserved so callers can tell how many candidates
// were scored.
func shapeResponse(ranked ranking.RankedResult, keywords []string, topN, minScore int) *ranking.AnalyzeResponse {
	results := make([]ranking.ResultItem, 0, len(ranked))
	for _, sc := range ranked {
		if sc.Score < minScore {
			// ranked is sorted descending; everything after this is below too.
			break
		}
		results = append(results, ranking.ToResultItem(sc))
	}

	if topN > 0 && len(results) > topN {
		results = results[:topN]
	}

	return &ranking.AnalyzeResponse{
		Results:  results,
		Total:    len(ranked),
		Keywords: keywords,
	}
}

// cacheKey digests the normalized request. Keywords are already deduplicated
// and ordered, so equal requests always hash the same.
func cacheKey(keywords []string, topN, minScore int) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(keywords, "\x00")))
	fmt.Fprintf(h, "\x00%d\x00%d", topN, minScore)
	return hex.EncodeToString(h.Sum(nil))
}

// fromCache returns a cached response, or nil on miss or any cache failure.
// Cache trouble is logged and absorbed; it never fails a request.
func (s *Service) fromCache(ctx context.Context, key string) *ranking.AnalyzeResponse {
	if s.cache == nil {
		return nil
	}

	data, err := s.cache.Get(ctx, key)
	if err != nil {
		logx.Warnf("Result cache read failed: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}

	var resp ranking.AnalyzeResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logx.Warnf("Result cache payload corrupt, recomputing: %v", err)
		return nil
	}

	resp.Cached = true
	return &resp
}

func (s *Service) toCache(ctx context.Context, key string, resp *ranking.AnalyzeResponse) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logx.Warnf("Result cache marshal failed: %v", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		logx.Warnf("Result cache write failed: %v", err)
	}
}
