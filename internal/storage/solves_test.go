package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "solves.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var version int
	err := db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solves.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	var version int
	err = db.QueryRow("SELECT MAX(version) FROM schema_version").Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
}

func TestSolveCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Create("R U R' U'", "U R U' R'", 4, 4)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "R U R' U'", s.Scramble)
	assert.Equal(t, "U R U' R'", s.Solution)
	assert.Equal(t, 4, s.ScrambleCount)
	assert.Equal(t, 4, s.SolutionCount)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestSolveGetMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	s, err := repo.Get("no-such-solve")
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestSolveList(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 5; i++ {
		_, err := repo.Create("R U", "U' R'", 2, 2)
		require.NoError(t, err)
	}

	solves, err := repo.List(3)
	require.NoError(t, err)
	assert.Len(t, solves, 3)

	all, err := repo.List(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
