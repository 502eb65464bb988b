// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperNode is a paper as a node of the similarity graph. It carries the
// corpus attributes plus the community assigned by detection (zero until
// assigned).
type PaperNode struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Topics    []string `json:"topics"`
	Organisms []string `json:"organisms"`
	Citations int      `json:"citations"`
	Link      string   `json:"link"`
	Community int      `json:"community"`
}

// SimilarityEdge is an undirected weighted edge between two papers.
// Source is always the smaller id, so each unordered pair appears at most
// once. Weight is the cosine similarity of the two title vectors, always
// strictly above the build threshold and never above 1.
type SimilarityEdge struct {
	Source int     `json:"source"`
	Target int     `json:"target"`
	Weight float64 `json:"weight"`
}

// Graph is the knowledge-graph artifact: all corpus papers as nodes
// (including degree-zero ones) and the similarity edges between them.
// The JSON shape is a compatibility surface consumed by visualization
// front-ends; field names must not change. The artifact is rebuilt
// wholesale by a batch pass and treated as immutable while serving.
type Graph struct {
	Nodes []PaperNode      `json:"nodes"`
	Links []SimilarityEdge `json:"links"`
}

// Node returns the node with the given id, if present.
func (g *Graph) Node(id int) (PaperNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return PaperNode{}, false
}
