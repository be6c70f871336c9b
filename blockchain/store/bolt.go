package store

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"

	"aurum/blockchain"
)

var (
	chainBucket = []byte("Chain")
	snapshotKey = []byte("snapshot")
)

// BoltChainStore persists the chain snapshot in a BoltDB file so a node can
// resume its chain across restarts. The whole chain is written on every
// update; chains here are short-lived demo ledgers, not archival storage.
type BoltChainStore struct {
	db *bolt.DB
}

// NewBoltChainStore opens (or creates) the database file at path.
func NewBoltChainStore(path string) (*BoltChainStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open chain database %s: %w", path, err)
	}
	return &BoltChainStore{db: db}, nil
}

func (s *BoltChainStore) SaveChain(chain []blockchain.Block) error {
	encoded, err := json.Marshal(chain)
	if err != nil {
		return fmt.Errorf("failed to encode chain: %w", err)
	}

	return s.db.Update(func(btx *bolt.Tx) error {
		bucket, err := btx.CreateBucketIfNotExists(chainBucket)
		if err != nil {
			return fmt.Errorf("failed to create chain bucket: %w", err)
		}
		return bucket.Put(snapshotKey, encoded)
	})
}

// LoadChain returns the persisted chain, or (nil, nil) when no snapshot has
// been written yet.
func (s *BoltChainStore) LoadChain() ([]blockchain.Block, error) {
	var chain []blockchain.Block

	err := s.db.View(func(btx *bolt.Tx) error {
		bucket := btx.Bucket(chainBucket)
		if bucket == nil {
			return nil
		}
		encoded := bucket.Get(snapshotKey)
		if encoded == nil {
			return nil
		}
		return json.Unmarshal(encoded, &chain)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load chain snapshot: %w", err)
	}

	return chain, nil
}

func (s *BoltChainStore) Close() error {
	return s.db.Close()
}
