package memtable

import (
	"time"

	"github.com/coocood/freecache"
)

// MemTable is an in process byte cache with eviction
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get may not return an entry that was just set
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set with ttl rounded down to seconds, zero means no expiration
func (m *MemTable) Set(key string, data []byte, ttl time.Duration) {
	_ = m.cache.Set([]byte(key), data, int(ttl/time.Second))
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
