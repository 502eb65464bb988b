// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package corpus persists the classified-paper corpus in SQLite and
// serves it, in stable order, to the graph builder and scoring engine.
package corpus

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bioatlas/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "corpus.db"
)

// Store manages the corpus SQLite database.
type Store struct {
	db      *sql.DB
	dataDir string
}

// NewStore opens or creates the corpus database at
// dataDir/index/corpus.db, creating the schema if it does not exist.
func NewStore(cfg types.CorpusConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, dataDir: cfg.DataDir}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			topics TEXT,
			organisms TEXT,
			citations INTEGER NOT NULL DEFAULT 0,
			link TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_citations ON papers(citations)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from a corpus ingestion run.
type IngestSummary struct {
	Inserted int
	Updated  int
}

// Total returns the number of papers processed.
func (s IngestSummary) Total() int {
	return s.Inserted + s.Updated
}

// Ingest reads a classified-papers JSON file and upserts every record
// inside one transaction. A paper id appearing twice in the same file
// aborts the run before any write: the input is corrupt and must not be
// silently deduplicated.
func (s *Store) Ingest(ctx context.Context, jsonPath string, w io.Writer) (IngestSummary, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading corpus file: %w", err)
	}

	var papers []types.PaperRecord
	if err := json.Unmarshal(data, &papers); err != nil {
		return IngestSummary{}, fmt.Errorf("parsing corpus file %s: %w", jsonPath, err)
	}

	seen := make(map[int]bool, len(papers))
	for _, p := range papers {
		if seen[p.ID] {
			return IngestSummary{}, fmt.Errorf("corpus file %s: duplicate paper id %d", jsonPath, p.ID)
		}
		seen[p.ID] = true
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (id, title, topics, organisms, citations, link)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, topics=excluded.topics,
			organisms=excluded.organisms, citations=excluded.citations,
			link=excluded.link`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	var summary IngestSummary
	for _, p := range papers {
		var existing int
		if err := tx.QueryRowContext(ctx,
			`SELECT count(*) FROM papers WHERE id = ?`, p.ID,
		).Scan(&existing); err != nil {
			return summary, fmt.Errorf("checking paper %d: %w", p.ID, err)
		}

		topicsJSON, _ := json.Marshal(p.Topics)
		organismsJSON, _ := json.Marshal(p.Organisms)
		if _, err := stmt.ExecContext(ctx,
			p.ID, p.Title, string(topicsJSON), string(organismsJSON), p.Citations, p.Link,
		); err != nil {
			return summary, fmt.Errorf("upserting paper %d: %w", p.ID, err)
		}

		if existing > 0 {
			summary.Updated++
		} else {
			summary.Inserted++
		}
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing ingest: %w", err)
	}

	fmt.Fprintf(w, "inserted: %d, updated: %d\n", summary.Inserted, summary.Updated)
	return summary, nil
}

// Load returns all papers in ascending id order. Ids follow source-file
// order, so this is the corpus order that tie-breaking in ranking
// depends on.
func (s *Store) Load(ctx context.Context) ([]types.PaperRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, topics, organisms, citations, link FROM papers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var papers []types.PaperRecord
	for rows.Next() {
		var (
			p             types.PaperRecord
			topicsJSON    sql.NullString
			organismsJSON sql.NullString
			link          sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &topicsJSON, &organismsJSON, &p.Citations, &link); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		if topicsJSON.Valid {
			if err := json.Unmarshal([]byte(topicsJSON.String), &p.Topics); err != nil {
				return nil, fmt.Errorf("parsing topics for paper %d: %w", p.ID, err)
			}
		}
		if organismsJSON.Valid {
			if err := json.Unmarshal([]byte(organismsJSON.String), &p.Organisms); err != nil {
				return nil, fmt.Errorf("parsing organisms for paper %d: %w", p.ID, err)
			}
		}
		if link.Valid {
			p.Link = link.String
		}
		papers = append(papers, p)
	}
	return papers, rows.Err()
}
