package index

import (
	"path/filepath"
	"testing"

	"folio/internal/readtime"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	s, err := Open(OpenOptions{Path: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(OpenOptions{})
	assert.Error(t, err)
}

func TestPutGet(t *testing.T) {
	s, _ := openTestStore(t)

	k := Key("hello world", 200)
	_, err := s.Get(k)
	assert.ErrorIs(t, err, ErrNotFound)

	want := readtime.Stats{Words: 2, Minutes: 1}
	require.NoError(t, s.Put(k, want))

	got, err := s.Get(k)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKeyDependsOnPace(t *testing.T) {
	assert.Equal(t, Key("a b", 200), Key("a b", 200))
	assert.NotEqual(t, Key("a b", 200), Key("a b", 100))
	assert.NotEqual(t, Key("a b", 200), Key("a c", 200))
}

func TestPrune(t *testing.T) {
	s, _ := openTestStore(t)

	keep := Key("keep", 200)
	drop := Key("drop", 200)
	require.NoError(t, s.Put(keep, readtime.Stats{Words: 1, Minutes: 1}))
	require.NoError(t, s.Put(drop, readtime.Stats{Words: 1, Minutes: 1}))

	removed, err := s.Prune([][]byte{keep})
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	n, err := s.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(drop)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCorruptRecord(t *testing.T) {
	s, _ := openTestStore(t)
	k := Key("x", 200)
	require.NoError(t, s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bStats).Put(k, []byte{1, 2, 3})
	}))

	_, err := s.Get(k)
	assert.ErrorIs(t, err, errCorrupt)
}

func TestReopenKeepsStatsOfSameVersion(t *testing.T) {
	s, path := openTestStore(t)
	k := Key("persist", 200)
	require.NoError(t, s.Put(k, readtime.Stats{Words: 1, Minutes: 1}))
	require.NoError(t, s.Close())

	s2, err := Open(OpenOptions{Path: path})
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(k)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Minutes)
}
