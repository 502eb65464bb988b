// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperRecord is one classified paper as it appears in the corpus file.
// The JSON field names are a compatibility surface with the classification
// pipeline that produces the file; Title and Link keep their historical
// capitalization.
type PaperRecord struct {
	// ID is a unique integer identifier, stable across rebuilds as long
	// as the source file order is unchanged.
	ID int `json:"id" yaml:"id"`

	// Title is the paper title. Feature vectors are derived from it.
	Title string `json:"Title" yaml:"title"`

	// Topics lists the classifier-assigned topic labels.
	Topics []string `json:"topics" yaml:"topics"`

	// Organisms lists the organisms studied by the paper.
	Organisms []string `json:"organisms" yaml:"organisms"`

	// Citations is the citation count (non-negative).
	Citations int `json:"citations" yaml:"citations"`

	// Link is the external URL for the paper.
	Link string `json:"Link" yaml:"link"`
}
