// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"sort"

	"github.com/pdiddy/bioatlas/pkg/types"
)

// commPair identifies an unordered pair of communities by their
// representatives, a < b. A community's representative is its smallest
// member id.
type commPair struct {
	a, b int
}

// DetectCommunities partitions the graph by greedy agglomerative
// modularity maximization: every node starts in its own community and the
// connected pair whose merge yields the largest modularity gain is merged
// until no merge has positive gain. Equal gains are broken by the lowest
// (smallest member id, other smallest member id) pair, so repeated runs on
// the same graph produce the same partition. Isolated nodes stay as
// singleton communities.
//
// Community ids are numbered from 0 in ascending order of each final
// community's smallest member id. Every node's Community field is
// overwritten from the returned assignment; edges are untouched.
//
// Returns ErrEmptyGraph when the graph has no nodes.
func DetectCommunities(g *types.Graph) (map[int]int, error) {
	if g == nil || len(g.Nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	rep := make(map[int]int, len(g.Nodes))
	members := make(map[int][]int, len(g.Nodes))
	strength := make(map[int]float64, len(g.Nodes))
	for _, n := range g.Nodes {
		rep[n.ID] = n.ID
		members[n.ID] = []int{n.ID}
	}

	var m float64
	between := make(map[commPair]float64, len(g.Links))
	for _, e := range g.Links {
		m += e.Weight
		strength[e.Source] += e.Weight
		strength[e.Target] += e.Weight
		a, b := e.Source, e.Target
		if a > b {
			a, b = b, a
		}
		between[commPair{a, b}] += e.Weight
	}

	for m > 0 {
		pairs := make([]commPair, 0, len(between))
		for pr := range between {
			pairs = append(pairs, pr)
		}
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].a != pairs[j].a {
				return pairs[i].a < pairs[j].a
			}
			return pairs[i].b < pairs[j].b
		})

		// ΔQ for merging communities a and b: w_ab/m - s_a*s_b/(2m²).
		// Strict > keeps the lowest pair on equal gains.
		var (
			best     commPair
			bestGain float64
			found    bool
		)
		for _, pr := range pairs {
			gain := between[pr]/m - strength[pr.a]*strength[pr.b]/(2*m*m)
			if gain > bestGain {
				best, bestGain, found = pr, gain, true
			}
		}
		if !found {
			break
		}

		a, b := best.a, best.b
		for _, id := range members[b] {
			rep[id] = a
		}
		members[a] = append(members[a], members[b]...)
		delete(members, b)
		strength[a] += strength[b]
		delete(strength, b)

		merged := make(map[commPair]float64, len(between))
		for pr, w := range between {
			x, y := pr.a, pr.b
			if x == b {
				x = a
			}
			if y == b {
				y = a
			}
			if x == y {
				continue
			}
			if x > y {
				x, y = y, x
			}
			merged[commPair{x, y}] += w
		}
		between = merged
	}

	reps := make([]int, 0, len(members))
	for r := range members {
		reps = append(reps, r)
	}
	sort.Ints(reps)

	commOf := make(map[int]int, len(reps))
	for i, r := range reps {
		commOf[r] = i
	}

	assignment := make(map[int]int, len(rep))
	for id, r := range rep {
		assignment[id] = commOf[r]
	}
	for i := range g.Nodes {
		g.Nodes[i].Community = assignment[g.Nodes[i].ID]
	}

	return assignment, nil
}
