// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCorpus is returned by Build when no papers are supplied.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrEmptyGraph is returned by DetectCommunities when the graph has
	// no nodes. A graph with nodes but no edges is valid.
	ErrEmptyGraph = errors.New("graph has no nodes")

	// ErrNotFound is returned by queries that reference a paper id absent
	// from the graph. Callers map it to a not-found response.
	ErrNotFound = errors.New("paper not found")
)

// DuplicateIDError reports two input papers sharing an id. Duplicate ids
// mean the input is corrupt; they are never silently deduplicated.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate paper id %d", e.ID)
}
