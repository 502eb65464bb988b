// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CorpusConfig holds settings for the corpus store.
type CorpusConfig struct {
	// DataDir is the base directory for corpus data (contains index/).
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// GraphConfig holds settings for the batch graph build.
type GraphConfig struct {
	// Threshold is the cosine similarity an edge must strictly exceed
	// (default 0.3).
	Threshold float64 `json:"threshold" yaml:"threshold"`

	// MaxFeatures caps the TF-IDF vocabulary size (default 100).
	MaxFeatures int `json:"max_features" yaml:"max_features"`

	// ArtifactPath is where the built graph is written
	// (default "graph_data.json").
	ArtifactPath string `json:"artifact_path" yaml:"artifact_path"`
}

// SearchConfig holds settings for relevance search.
type SearchConfig struct {
	// TopN is the maximum number of search results (default 10).
	TopN int `json:"top_n" yaml:"top_n"`
}

// DiscoveryConfig holds settings for topic discovery.
type DiscoveryConfig struct {
	// MaxResults is the maximum number of discovery results (default 10).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Corpus    CorpusConfig    `json:"corpus" yaml:"corpus"`
	Graph     GraphConfig     `json:"graph" yaml:"graph"`
	Search    SearchConfig    `json:"search" yaml:"search"`
	Discovery DiscoveryConfig `json:"discovery" yaml:"discovery"`
}
