package graph

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/pdiddy/bioatlas/pkg/types"
)

func paper(id int, title string, topics ...string) types.PaperRecord {
	return types.PaperRecord{ID: id, Title: title, Topics: topics}
}

func testCorpus() []types.PaperRecord {
	return []types.PaperRecord{
		paper(1, "Bone loss in microgravity", "bone"),
		paper(2, "Bone density loss during spaceflight", "bone"),
		paper(3, "Plant growth in microgravity", "plant"),
		paper(4, "Immune response of mice to radiation", "immune"),
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	_, err := Build(nil, 0.3, 0)
	if !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("err = %v, want ErrEmptyCorpus", err)
	}
}

func TestBuildDuplicateID(t *testing.T) {
	papers := []types.PaperRecord{
		paper(1, "Bone loss in microgravity"),
		paper(1, "Plant growth in space"),
	}
	_, err := Build(papers, 0.3, 0)
	var dup *DuplicateIDError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateIDError", err)
	}
	if dup.ID != 1 {
		t.Errorf("dup.ID = %d, want 1", dup.ID)
	}
}

func TestBuildIdenticalTitlesShareEdge(t *testing.T) {
	papers := []types.PaperRecord{
		paper(1, "Bone loss in microgravity"),
		paper(2, "Bone loss in microgravity"),
	}
	g, err := Build(papers, 0.3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Links) != 1 {
		t.Fatalf("edges = %d, want 1", len(g.Links))
	}
	e := g.Links[0]
	if e.Source != 1 || e.Target != 2 {
		t.Errorf("edge = (%d,%d), want (1,2)", e.Source, e.Target)
	}
	if math.Abs(e.Weight-1.0) > 1e-9 {
		t.Errorf("weight = %v, want 1.0", e.Weight)
	}
}

func TestBuildEmptyVocabularyYieldsIsolatedNodes(t *testing.T) {
	// Every token is shorter than two runes, so the learned vocabulary is
	// empty. The corpus is still valid: all papers come back as
	// degree-zero nodes.
	papers := []types.PaperRecord{
		paper(1, "a b c"),
		paper(2, "x y"),
		paper(3, ""),
	}
	g, err := Build(papers, 0.3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(g.Nodes))
	}
	if len(g.Links) != 0 {
		t.Fatalf("edges = %d, want 0", len(g.Links))
	}
}

func TestBuildWeightNeverExceedsOne(t *testing.T) {
	papers := []types.PaperRecord{
		paper(1, "bone loss microgravity"),
		paper(2, "bone loss microgravity"),
	}

	// Identical titles dot to 1 only up to float rounding; the stored
	// weight must still be capped at 1.
	g, err := Build(papers, 0.3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Links) != 1 {
		t.Fatalf("edges = %d, want 1", len(g.Links))
	}
	if g.Links[0].Weight > 1.0 {
		t.Errorf("weight = %v, want <= 1.0", g.Links[0].Weight)
	}

	// Threshold 1.0 is valid and edges are strictly above it, so even an
	// identical pair must not link.
	g, err = Build(papers, 1.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Links) != 0 {
		t.Fatalf("edges at threshold 1.0 = %d, want 0", len(g.Links))
	}
}

func TestBuildDisjointTitlesStayIsolated(t *testing.T) {
	papers := []types.PaperRecord{
		paper(1, "Bone loss in microgravity"),
		paper(2, "Rodent immune suppression experiments"),
	}
	g, err := Build(papers, 0.0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Links) != 0 {
		t.Fatalf("edges = %d, want 0", len(g.Links))
	}
	// Isolated papers remain valid degree-zero nodes.
	if len(g.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(g.Nodes))
	}
}

func TestBuildEdgeInvariants(t *testing.T) {
	const threshold = 0.1
	g, err := Build(testCorpus(), threshold, 0)
	if err != nil {
		t.Fatal(err)
	}

	ids := make(map[int]bool)
	for _, n := range g.Nodes {
		ids[n.ID] = true
	}

	seen := make(map[[2]int]bool)
	for _, e := range g.Links {
		if e.Source >= e.Target {
			t.Errorf("edge (%d,%d): source must be the smaller id", e.Source, e.Target)
		}
		if e.Weight <= threshold {
			t.Errorf("edge (%d,%d) weight %v at or below threshold", e.Source, e.Target, e.Weight)
		}
		if !ids[e.Source] || !ids[e.Target] {
			t.Errorf("edge (%d,%d) references a missing node", e.Source, e.Target)
		}
		key := [2]int{e.Source, e.Target}
		if seen[key] {
			t.Errorf("duplicate edge (%d,%d)", e.Source, e.Target)
		}
		seen[key] = true
	}
}

func TestBuildThresholdMonotonicity(t *testing.T) {
	papers := testCorpus()

	low, err := Build(papers, 0.05, 0)
	if err != nil {
		t.Fatal(err)
	}
	high, err := Build(papers, 0.5, 0)
	if err != nil {
		t.Fatal(err)
	}

	lowSet := make(map[[2]int]bool, len(low.Links))
	for _, e := range low.Links {
		lowSet[[2]int{e.Source, e.Target}] = true
	}
	for _, e := range high.Links {
		if !lowSet[[2]int{e.Source, e.Target}] {
			t.Errorf("edge (%d,%d) present at threshold 0.5 but not 0.05", e.Source, e.Target)
		}
	}
	if len(high.Links) > len(low.Links) {
		t.Errorf("edge count grew with threshold: %d > %d", len(high.Links), len(low.Links))
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(testCorpus(), 0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build(testCorpus(), 0.1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("two builds over the same corpus differ")
	}
}

func TestBuildKeepsAllPapersAsNodes(t *testing.T) {
	g, err := Build(testCorpus(), 0.99, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4", len(g.Nodes))
	}
	for i, p := range testCorpus() {
		n := g.Nodes[i]
		if n.ID != p.ID || n.Title != p.Title {
			t.Errorf("node %d = {%d %q}, want {%d %q}", i, n.ID, n.Title, p.ID, p.Title)
		}
		if n.Community != 0 {
			t.Errorf("node %d community = %d before detection, want 0", n.ID, n.Community)
		}
	}
}
