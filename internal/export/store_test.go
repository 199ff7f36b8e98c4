// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Snapshot(ctx, samplePapers()))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// The FTS index covers the searchable text, so abstract words are
	// findable.
	var title string
	err = store.db.QueryRow(
		`SELECT p.title FROM papers_fts f JOIN papers p ON p.rowid = f.rowid
		 WHERE papers_fts MATCH 'engineering'`,
	).Scan(&title)
	require.NoError(t, err)
	assert.Equal(t, "Antibody design with GNNs", title)
}

func TestSnapshotReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "papers.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	ctx := context.Background()
	require.NoError(t, store.Snapshot(ctx, samplePapers()))
	require.NoError(t, store.Snapshot(ctx, samplePapers()[:1]))

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "second snapshot replaces the first")
}

func TestWriteSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.db")
	require.NoError(t, WriteSQLite(context.Background(), samplePapers(), path))

	store, err := NewStore(path)
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
