// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/bioatlas/pkg/types"
)

const (
	// defaultMaxResults caps discovery results when the caller passes a
	// non-positive limit.
	defaultMaxResults = 10

	// summaryLimit caps the themes and organisms listed in a Summary.
	summaryLimit = 5
)

// Summary aggregates what the selected discovery results cover.
type Summary struct {
	Topic      string   `json:"topic"`
	TotalFound int      `json:"total_found"`
	Selected   int      `json:"papers_selected"`
	KeyThemes  []string `json:"key_themes"`
	Organisms  []string `json:"organisms_studied"`
}

// Discover ranks papers for topic exploration. A verbatim
// case-insensitive match of topic in the title is worth 50 points; each
// topic word longer than three characters found in the title is worth 10;
// and every paper topic label containing one of the words adds 15. The
// label bonus repeats per matching label, unlike the flat filter bonus in
// Search, so papers rich in related topics rank higher.
//
// Results are ordered by descending score with corpus order among ties
// and truncated to maxResults (default 10 when maxResults <= 0). The
// summary lists up to five themes and five organisms collected from the
// selected results in ranked first-seen order, so its contents are
// deterministic.
//
// A blank topic or an empty corpus yields no results and a zero-valued
// summary, never an error.
func Discover(papers []types.PaperRecord, topic string, maxResults int) ([]Result, Summary) {
	q := strings.ToLower(strings.TrimSpace(topic))
	if q == "" {
		return nil, Summary{Topic: topic}
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	words := strings.Fields(q)

	var results []Result
	for _, p := range papers {
		title := strings.ToLower(p.Title)

		score := 0
		if strings.Contains(title, q) {
			score += 50
		}
		for _, w := range words {
			if utf8.RuneCountInString(w) > 3 && strings.Contains(title, w) {
				score += 10
			}
		}
		for _, label := range p.Topics {
			ll := strings.ToLower(label)
			for _, w := range words {
				if strings.Contains(ll, w) {
					score += 15
					break
				}
			}
		}

		if score > 0 {
			results = append(results, Result{PaperRecord: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	total := len(results)
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	summary := Summary{
		Topic:      topic,
		TotalFound: total,
		Selected:   len(results),
		KeyThemes:  firstSeen(results, func(p types.PaperRecord) []string { return p.Topics }),
		Organisms:  firstSeen(results, func(p types.PaperRecord) []string { return p.Organisms }),
	}
	return results, summary
}

// firstSeen walks the ranked results collecting labels in first-seen
// order, deduplicates preserving that order, and truncates to the
// summary limit.
func firstSeen(results []Result, labels func(types.PaperRecord) []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, r := range results {
		for _, l := range labels(r.PaperRecord) {
			if seen[l] {
				continue
			}
			seen[l] = true
			out = append(out, l)
			if len(out) == summaryLimit {
				return out
			}
		}
	}
	return out
}
