// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph builds the weighted paper similarity graph, partitions it
// into communities, and answers structural queries over the built
// artifact.
package graph

import (
	"math"

	"github.com/viterin/vek"

	"github.com/pdiddy/bioatlas/pkg/types"
)

// Build vectorizes every paper title with TF-IDF, links each unordered
// pair whose cosine similarity strictly exceeds threshold, and returns
// the resulting undirected graph. All input papers become nodes; papers
// with no sufficiently similar partner remain as degree-zero nodes.
//
// The pairwise pass is O(n²) in paper count. That is acceptable up to low
// tens of thousands of papers; beyond that the build needs sharding or an
// approximate nearest-neighbor index, neither of which is attempted here.
//
// Build is a pure function of its inputs. It returns ErrEmptyCorpus for an
// empty input and a DuplicateIDError when two papers share an id.
func Build(papers []types.PaperRecord, threshold float64, maxFeatures int) (*types.Graph, error) {
	if len(papers) == 0 {
		return nil, ErrEmptyCorpus
	}
	seen := make(map[int]bool, len(papers))
	for _, p := range papers {
		if seen[p.ID] {
			return nil, &DuplicateIDError{ID: p.ID}
		}
		seen[p.ID] = true
	}

	g := &types.Graph{Nodes: make([]types.PaperNode, len(papers))}
	docs := make([][]string, len(papers))
	for i, p := range papers {
		g.Nodes[i] = types.PaperNode{
			ID:        p.ID,
			Title:     p.Title,
			Topics:    p.Topics,
			Organisms: p.Organisms,
			Citations: p.Citations,
			Link:      p.Link,
		}
		docs[i] = tokenize(p.Title)
	}

	v := fitVectorizer(docs, maxFeatures)
	if len(v.idf) == 0 {
		// No title produced a vocabulary term, so there is nothing to
		// compare: every paper stays a degree-zero node.
		return g, nil
	}
	vectors := make([][]float64, len(docs))
	for i, doc := range docs {
		vectors[i] = v.transform(doc)
	}

	for i := range papers {
		for j := i + 1; j < len(papers); j++ {
			// Vectors are unit length, so the dot product is the cosine
			// similarity, clamped at 1 against float rounding. Zero
			// vectors never clear the threshold.
			sim := math.Min(vek.Dot(vectors[i], vectors[j]), 1)
			if sim > threshold {
				src, dst := papers[i].ID, papers[j].ID
				if src > dst {
					src, dst = dst, src
				}
				g.Links = append(g.Links, types.SimilarityEdge{
					Source: src,
					Target: dst,
					Weight: sim,
				})
			}
		}
	}

	return g, nil
}
