// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes the corpus to dataDir/index/export.yaml.
func (s *Store) ExportYAML(ctx context.Context) error {
	papers, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := yaml.Marshal(papers)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	path := filepath.Join(s.dataDir, indexDir, "export.yaml")
	return os.WriteFile(path, data, 0o644)
}

// ExportJSON writes the corpus to dataDir/index/export.json in the same
// shape as the classified-papers input file.
func (s *Store) ExportJSON(ctx context.Context) error {
	papers, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("querying for export: %w", err)
	}

	data, err := json.MarshalIndent(papers, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	path := filepath.Join(s.dataDir, indexDir, "export.json")
	return os.WriteFile(path, data, 0o644)
}
