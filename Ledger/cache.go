package Ledger

import (
	"encoding/json"
	"errors"
	"log"

	"go.etcd.io/bbolt"

	"MissionControl/Models"
)

// ErrNotConfigured marks a remote operation against an unconfigured store.
var ErrNotConfigured = errors.New("remote store not configured")

// LedgerKey is the single cache key holding the whole serialized record list.
const LedgerKey = "MISSION_LEDGER_V2"

var cacheBucket = []byte("Ledger")

// LocalCache is the durable key-value mirror of the ledger: read entirely on
// load, written entirely on every mutation.
type LocalCache interface {
	Get(key string) []byte
	Set(key string, value []byte) error
	Remove(key string) error
}

// BoltCache is the bbolt-backed LocalCache used in production.
type BoltCache struct {
	db *bbolt.DB
}

func OpenCache(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cacheBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &BoltCache{db: db}, nil
}

func (c *BoltCache) Get(key string) []byte {
	var value []byte
	c.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(cacheBucket).Get([]byte(key)); v != nil {
			value = make([]byte, len(v))
			copy(value, v)
		}
		return nil
	})
	return value
}

func (c *BoltCache) Set(key string, value []byte) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(cacheBucket).Put([]byte(key), value)
	})
}

func (c *BoltCache) Remove(key string) error {
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(cacheBucket).Delete([]byte(key))
	})
}

func (c *BoltCache) Close() error {
	return c.db.Close()
}

// encodeRecords serializes the full record list for the cache.
func encodeRecords(records []Models.Assignment) []byte {
	blob, err := json.Marshal(records)
	if err != nil {
		log.Printf("ledger cache: encode failed: %v", err)
		return nil
	}
	return blob
}

// decodeRecords parses a cached snapshot. Malformed or non-list content is
// discarded and treated as an empty ledger.
func decodeRecords(blob []byte) []Models.Assignment {
	if len(blob) == 0 {
		return nil
	}
	var records []Models.Assignment
	if err := json.Unmarshal(blob, &records); err != nil {
		log.Printf("ledger cache: discarding malformed snapshot: %v", err)
		return nil
	}
	return records
}
