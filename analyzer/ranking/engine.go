// Package ranking implements keyword-based scoring and ranking of resume
// text. The engine is a pure function of its inputs: no I/O, no logging, no
// mutation, so identical inputs always produce identical output.
package ranking

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jmatamoros/cvmatch/analyzer/candidate"
)

// ScoredCandidate pairs a corpus entry with its relevance score and the
// per-keyword occurrence breakdown behind it.
type ScoredCandidate struct {
	Entry   candidate.CorpusEntry `json:"entry"`
	Score   int                   `json:"score"`
	Matches map[string]int        `json:"matches"`
}

// RankedResult is an ordered sequence of scored candidates, descending by
// score. Equal scores preserve input order.
type RankedResult []ScoredCandidate

// Rank scores every entry against the keyword set and returns all of them
// ordered by descending score with a stable tie-break. The result always has
// the same length as entries: a zero score is a valid (low) rank, not a
// reason to drop a candidate. An empty keyword set yields all zeros in input
// order. Entries with empty resume text score zero and are retained.
func Rank(entries []candidate.CorpusEntry, keywords []string) RankedResult {
	normalized := NormalizeKeywords(keywords)

	result := make(RankedResult, 0, len(entries))
	for _, entry := range entries {
		text := strings.ToLower(entry.Text)

		score := 0
		matches := make(map[string]int, len(normalized))
		for _, kw := range normalized {
			n := countOccurrences(text, kw)
			matches[kw] = n
			score += n
		}

		result = append(result, ScoredCandidate{
			Entry:   entry,
			Score:   score,
			Matches: matches,
		})
	}

	// Stable sort: equal scores keep their corpus order, so repeated calls
	// with the same inputs produce identical output.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	return result
}

// NormalizeKeywords lowercases and trims each keyword, drops empties, and
// removes duplicates while preserving first-seen order. Duplicate entries in
// the caller's list therefore count once: "go, go" scores the same as "go".
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	normalized := make([]string, 0, len(keywords))

	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if _, dup := seen[kw]; dup {
			continue
		}
		seen[kw] = struct{}{}
		normalized = append(normalized, kw)
	}

	return normalized
}

// countOccurrences counts non-overlapping occurrences of keyword in text on
// word boundaries: a match must not be flanked by a letter or digit, so
// "java" does not match inside "javascript". Both arguments must already be
// lowercase. Keywords containing spaces match as phrases under the same rule.
func countOccurrences(text, keyword string) int {
	if keyword == "" || text == "" {
		return 0
	}

	count := 0
	pos := 0
	for {
		idx := strings.Index(text[pos:], keyword)
		if idx < 0 {
			return count
		}
		start := pos + idx
		end := start + len(keyword)

		if boundaryBefore(text, start) && boundaryAfter(text, end) {
			count++
			pos = end
		} else {
			pos = start + 1
		}
	}
}

func boundaryBefore(text string, start int) bool {
	if start == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:start])
	return !isWordRune(r)
}

func boundaryAfter(text string, end int) bool {
	if end >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[end:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
