// Package index caches derived text metrics on disk so unchanged posts are not
// re-tokenised on every build. The file is disposable.
package index

import (
	"errors"
	"folio/internal/readtime"
	bolt "go.etcd.io/bbolt"
	"os"
	"path/filepath"
	"time"
)

var ErrNotFound = errors.New("not found")

type Store struct {
	db *bolt.DB
}

type OpenOptions struct {
	Path string // e.g. ".folio/cache.db"
}

func Open(opt OpenOptions) (*Store, error) {
	if opt.Path == "" {
		return nil, errors.New("index: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(opt.Path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(opt.Path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// ensureSchema drops every record written under another schema version.
func (s *Store) ensureSchema() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(bMeta)
		if err != nil {
			return err
		}
		if string(meta.Get([]byte("version"))) == schemaVersion {
			_, err := tx.CreateBucketIfNotExists(bStats)
			return err
		}
		if tx.Bucket(bStats) != nil {
			if err := tx.DeleteBucket(bStats); err != nil {
				return err
			}
		}
		if _, err := tx.CreateBucket(bStats); err != nil {
			return err
		}
		return meta.Put([]byte("version"), []byte(schemaVersion))
	})
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Get(key []byte) (readtime.Stats, error) {
	var st readtime.Stats
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bStats)
		if b == nil {
			return ErrNotFound
		}
		v := b.Get(key)
		if v == nil {
			return ErrNotFound
		}
		var err error
		st, err = decodeStats(v)
		return err
	})
	return st, err
}

func (s *Store) Put(key []byte, st readtime.Stats) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bStats)
		if err != nil {
			return err
		}
		return b.Put(key, encodeStats(st))
	})
}

// Prune keeps only the given keys; used after a full load to drop stats of
// deleted or edited posts.
func (s *Store) Prune(keep [][]byte) (int, error) {
	live := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		live[string(k)] = struct{}{}
	}
	removed := 0
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bStats)
		if b == nil {
			return nil
		}
		var stale [][]byte
		if err := b.ForEach(func(k, _ []byte) error {
			if _, ok := live[string(k)]; !ok {
				stale = append(stale, append([]byte(nil), k...))
			}
			return nil
		}); err != nil {
			return err
		}
		for _, k := range stale {
			if err := b.Delete(k); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	return removed, err
}

func (s *Store) Len() (int, error) {
	n := 0
	err := s.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket(bStats); b != nil {
			n = b.Stats().KeyN
		}
		return nil
	})
	return n, err
}
