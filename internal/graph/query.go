// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/bioatlas/pkg/types"
)

// SubgraphForTopic returns the induced subgraph over nodes labeled with
// topic (case-insensitive label match). An edge survives only when both
// of its endpoints do. The input graph is not modified.
func SubgraphForTopic(g *types.Graph, topic string) *types.Graph {
	sub := &types.Graph{}
	keep := make(map[int]bool)
	for _, n := range g.Nodes {
		if hasLabel(n.Topics, topic) {
			sub.Nodes = append(sub.Nodes, n)
			keep[n.ID] = true
		}
	}
	for _, e := range g.Links {
		if keep[e.Source] && keep[e.Target] {
			sub.Links = append(sub.Links, e)
		}
	}
	return sub
}

// Neighbors returns the papers sharing an edge with id, in ascending id
// order, truncated to limit. limit <= 0 returns all neighbors. Returns
// ErrNotFound when id is not in the graph.
func Neighbors(g *types.Graph, id, limit int) ([]types.PaperNode, error) {
	byID := make(map[int]types.PaperNode, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	if _, ok := byID[id]; !ok {
		return nil, fmt.Errorf("paper %d: %w", id, ErrNotFound)
	}

	var ids []int
	for _, e := range g.Links {
		switch id {
		case e.Source:
			ids = append(ids, e.Target)
		case e.Target:
			ids = append(ids, e.Source)
		}
	}
	sort.Ints(ids)
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}

	nodes := make([]types.PaperNode, len(ids))
	for i, nid := range ids {
		nodes[i] = byID[nid]
	}
	return nodes, nil
}

// hasLabel reports whether want appears in labels, compared
// case-insensitively.
func hasLabel(labels []string, want string) bool {
	for _, l := range labels {
		if strings.EqualFold(l, want) {
			return true
		}
	}
	return false
}
