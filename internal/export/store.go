// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/paperdeck/internal/query"
	"github.com/pdiddy/paperdeck/pkg/types"
)

// Store writes a paper collection into a SQLite snapshot with an FTS5
// index over the searchable text, so an exported result set can be
// queried with ad-hoc SQL after the fact. The snapshot is write-once:
// Snapshot replaces any previous contents at the same path.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the snapshot database at path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening snapshot database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshot schema: %w", err)
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
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			rank INTEGER,
			title TEXT,
			authors TEXT,
			year INTEGER,
			date TEXT,
			journal TEXT,
			source TEXT,
			publication_type TEXT,
			citations INTEGER,
			doi TEXT,
			url TEXT,
			topic_tags TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_citations ON papers(citations)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='papers_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}
	if ftsExists == 0 {
		if _, err := s.db.Exec(
			`CREATE VIRTUAL TABLE papers_fts USING fts5(searchable)`,
		); err != nil {
			return fmt.Errorf("creating FTS table: %w", err)
		}
	}
	return nil
}

// Snapshot replaces the snapshot contents with the given collection.
// Rows are written in collection order, so the snapshot preserves the
// pipeline's sort.
func (s *Store) Snapshot(ctx context.Context, papers []types.Paper) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{`DELETE FROM papers`, `DELETE FROM papers_fts`} {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("clearing snapshot: %w", err)
		}
	}

	insert, err := tx.PrepareContext(ctx,
		`INSERT INTO papers (rank, title, authors, year, date, journal, source,
			publication_type, citations, doi, url, topic_tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer insert.Close()

	ftsInsert, err := tx.PrepareContext(ctx,
		`INSERT INTO papers_fts (rowid, searchable) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing FTS insert: %w", err)
	}
	defer ftsInsert.Close()

	for _, p := range papers {
		var year any
		if y, ok := p.Year(); ok {
			year = y
		}
		var rank any
		if p.Rank != types.RankUnknown {
			rank = p.Rank
		}
		tags := strings.Join(
			p.TopicTags(types.PerfectlyRelevant, types.HighlyRelevant, types.SomewhatRelevant), "; ")

		res, err := insert.ExecContext(ctx,
			rank, p.Title, p.FormatAuthors(), year, p.FormatDate(), p.Journal,
			p.Source, p.PublicationType, p.Citations, p.DOI, p.BestURL(), tags,
		)
		if err != nil {
			return fmt.Errorf("inserting paper %q: %w", p.Title, err)
		}
		rowid, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading rowid: %w", err)
		}
		if _, err := ftsInsert.ExecContext(ctx, rowid, query.SearchableText(p)); err != nil {
			return fmt.Errorf("indexing paper %q: %w", p.Title, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of snapshot rows, for post-write verification.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM papers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting snapshot rows: %w", err)
	}
	return n, nil
}

// WriteSQLite snapshots the collection into a new database at path.
func WriteSQLite(ctx context.Context, papers []types.Paper, path string) error {
	store, err := NewStore(path)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Snapshot(ctx, papers)
}
