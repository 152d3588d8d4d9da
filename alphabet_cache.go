package voidtype

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"sync/atomic"
)

// AlphabetCache keeps parsed alphabets for long-running hosts that load
// the same files repeatedly. It evicts the least recently used entry once
// full and is safe for concurrent use.
//
// File loads are keyed by path; parses of raw data are keyed by the
// SHA-256 of the content, prefixed "sha256:" so the two never collide.
type AlphabetCache struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front is most recent
	maxSize int

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

type alphabetEntry struct {
	key      string
	alphabet *Alphabet
}

var defaultAlphabetCache = NewAlphabetCache(32)

// NewAlphabetCache returns a cache holding at most maxSize alphabets.
// maxSize <= 0 means unbounded.
func NewAlphabetCache(maxSize int) *AlphabetCache {
	return &AlphabetCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
	}
}

// LoadAlphabetCached loads an alphabet file through the default cache.
func LoadAlphabetCached(filename string) (*Alphabet, error) {
	return defaultAlphabetCache.Load(filename)
}

// ParseAlphabetCached parses alphabet data through the default cache.
func ParseAlphabetCached(data []byte) (*Alphabet, error) {
	return defaultAlphabetCache.Parse(data)
}

// Load returns the cached alphabet for filename, reading it on a miss.
func (c *AlphabetCache) Load(filename string) (*Alphabet, error) {
	if a := c.get(filename); a != nil {
		return a, nil
	}
	a, err := LoadAlphabet(filename)
	if err != nil {
		return nil, err
	}
	c.put(filename, a)
	return a, nil
}

// Parse returns the cached alphabet for data, parsing it on a miss.
func (c *AlphabetCache) Parse(data []byte) (*Alphabet, error) {
	sum := sha256.Sum256(data)
	key := "sha256:" + hex.EncodeToString(sum[:])
	if a := c.get(key); a != nil {
		return a, nil
	}
	a, err := ParseAlphabetBytes(data)
	if err != nil {
		return nil, err
	}
	c.put(key, a)
	return a, nil
}

func (c *AlphabetCache) get(key string) *Alphabet {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses.Add(1)
		return nil
	}
	c.order.MoveToFront(el)
	c.hits.Add(1)
	return el.Value.(*alphabetEntry).alphabet
}

func (c *AlphabetCache) put(key string, a *Alphabet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		c.order.MoveToFront(el)
		return
	}
	if c.maxSize > 0 && c.order.Len() >= c.maxSize {
		if oldest := c.order.Back(); oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*alphabetEntry).key)
			c.evictions.Add(1)
		}
	}
	c.entries[key] = c.order.PushFront(&alphabetEntry{key: key, alphabet: a})
}

// Clear drops every entry. Counters are kept.
func (c *AlphabetCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}

// Stats returns a snapshot of the cache counters.
func (c *AlphabetCache) Stats() CacheStats {
	c.mu.Lock()
	size := c.order.Len()
	c.mu.Unlock()

	return CacheStats{
		Size:      size,
		MaxSize:   c.maxSize,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}

// CacheStats contains cache performance statistics
type CacheStats struct {
	Size      int    // Current number of cached alphabets
	MaxSize   int    // Maximum cache size, 0 for unbounded
	Hits      uint64 // Number of cache hits
	Misses    uint64 // Number of cache misses
	Evictions uint64 // Number of evictions
}

// HitRate returns the hit rate as a percentage (0-100).
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) * 100 / float64(total)
}

// SetDefaultCacheSize replaces the default cache with an empty one of the
// given size. Call it once at startup.
func SetDefaultCacheSize(maxSize int) {
	defaultAlphabetCache = NewAlphabetCache(maxSize)
}

// ClearDefaultCache empties the default cache.
func ClearDefaultCache() {
	defaultAlphabetCache.Clear()
}

// DefaultCacheStats returns statistics for the default cache.
func DefaultCacheStats() CacheStats {
	return defaultAlphabetCache.Stats()
}
