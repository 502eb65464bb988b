// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/bioatlas/pkg/types"
)

// Save writes the graph artifact as JSON. The data goes to a temporary
// file in the destination directory and is renamed into place, so a
// consumer serving the previous artifact never observes a partial write
// and a failed rebuild leaves the old artifact intact.
func Save(g *types.Graph, path string) error {
	// The artifact schema promises arrays, never null: consumers index
	// into nodes, links, and the label fields without nil checks.
	if g.Nodes == nil {
		g.Nodes = []types.PaperNode{}
	}
	if g.Links == nil {
		g.Links = []types.SimilarityEdge{}
	}
	for i := range g.Nodes {
		if g.Nodes[i].Topics == nil {
			g.Nodes[i].Topics = []string{}
		}
		if g.Nodes[i].Organisms == nil {
			g.Nodes[i].Organisms = []string{}
		}
	}

	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling graph: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing graph artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing graph artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing graph artifact: %w", err)
	}
	return nil
}

// LoadGraph reads a previously saved graph artifact.
func LoadGraph(path string) (*types.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading graph artifact: %w", err)
	}
	var g types.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("parsing graph artifact %s: %w", path, err)
	}
	return &g, nil
}
