// Package localstate is a small key-value store for session state that
// must survive restarts: the navigation history and similar per-user
// scraps. It is a single bbolt file with one bucket.
package localstate

import (
	"path"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("state")

type Store struct {
	db *bolt.DB
}

func Open(filePath string) (*Store, error) {
	db, err := bolt.Open(path.Clean(filePath), 0600, nil)

	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})

	if err != nil {
		closeErr := db.Close()

		if closeErr != nil {
			return nil, closeErr
		}

		return nil, err
	}

	return &Store{db: db}, nil
}

// Get returns nil for a missing key.
func (s *Store) Get(key string) ([]byte, error) {
	var value []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		stored := tx.Bucket(bucketName).Get([]byte(key))

		if stored != nil {
			value = make([]byte, len(stored))
			copy(value, stored)
		}

		return nil
	})

	return value, err
}

func (s *Store) Put(key string, value []byte) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), value)
	})
}

func (s *Store) Delete(key string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}
