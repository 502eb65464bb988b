// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import "github.com/pdiddy/bioatlas/pkg/types"

// Stats summarizes label distributions across the corpus.
type Stats struct {
	TotalPapers int            `json:"total_papers" yaml:"total_papers"`
	Topics      map[string]int `json:"topics_distribution" yaml:"topics_distribution"`
	Organisms   map[string]int `json:"organisms_distribution" yaml:"organisms_distribution"`
}

// CollectStats tallies topic and organism label counts over the papers.
func CollectStats(papers []types.PaperRecord) Stats {
	stats := Stats{
		TotalPapers: len(papers),
		Topics:      make(map[string]int),
		Organisms:   make(map[string]int),
	}
	for _, p := range papers {
		for _, t := range p.Topics {
			stats.Topics[t]++
		}
		for _, o := range p.Organisms {
			stats.Organisms[o]++
		}
	}
	return stats
}
