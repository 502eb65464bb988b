// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rank scores papers against free-text queries. Search mode uses
// literal substring scoring with optional label filters; discovery mode
// uses a looser weighting tuned for topic exploration.
package rank

import (
	"sort"
	"strings"

	"github.com/pdiddy/bioatlas/pkg/types"
)

// defaultTopN is the result cap used when the caller passes a
// non-positive limit.
const defaultTopN = 10

// Result pairs a paper with its computed relevance score.
type Result struct {
	types.PaperRecord
	Score int `json:"relevance_score"`
}

// Search scores every paper against query and returns the topN best.
// Matching is case-insensitive throughout. The whole query occurring
// verbatim in the title is worth 10 points; each word of the
// whitespace-split query found in the title is worth 1 (a word repeated in
// the query counts each time it appears); matching at least one entry of
// the topic filter adds a flat 5, and likewise for the organism filter.
//
// Papers scoring zero are dropped, not ranked last. Results are ordered
// by descending score, with corpus order preserved among equal scores,
// and truncated to topN (default 10 when topN <= 0).
//
// A blank query or an empty corpus yields no results and no error: zero
// matches is a valid outcome, not a failure.
func Search(papers []types.PaperRecord, query string, topics, organisms []string, topN int) []Result {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	if topN <= 0 {
		topN = defaultTopN
	}
	words := strings.Fields(q)

	var results []Result
	for _, p := range papers {
		title := strings.ToLower(p.Title)

		score := 0
		if strings.Contains(title, q) {
			score += 10
		}
		for _, w := range words {
			if strings.Contains(title, w) {
				score++
			}
		}
		if anyLabelMatch(p.Topics, topics) {
			score += 5
		}
		if anyLabelMatch(p.Organisms, organisms) {
			score += 5
		}

		if score > 0 {
			results = append(results, Result{PaperRecord: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results
}

// anyLabelMatch reports whether any wanted label appears in labels,
// compared case-insensitively.
func anyLabelMatch(labels, want []string) bool {
	for _, w := range want {
		for _, l := range labels {
			if strings.EqualFold(l, w) {
				return true
			}
		}
	}
	return false
}
