package fsa

import (
	"sync"

	"github.com/bits-and-blooms/bitset"
)

// hashable is a key of a moveCache.
type hashable interface {
	Hash() uint64
	Equals(other hashable) bool
}

// moveKey identifies one move: a symbol id and the state set it starts from.
type moveKey struct {
	symbol int
	set    *bitset.BitSet
	hash   uint64
}

func newMoveKey(symbol int, set *bitset.BitSet) moveKey {
	return moveKey{
		symbol: symbol,
		set:    set,
		hash:   hashMove(symbol, set),
	}
}

func (k moveKey) Hash() uint64 {
	return k.hash
}

func (k moveKey) Equals(other hashable) bool {
	o, ok := other.(moveKey)
	return ok && k.symbol == o.symbol && k.set.Equal(o.set)
}

// moveCache memoizes moves in a chained hash table of at most limit
// entries. A nil *moveCache is a valid, always-empty cache.
//
// Values are pure functions of their keys, so two goroutines storing the
// same key race harmlessly.
type moveCache[T any] struct {
	mutex   sync.RWMutex
	buckets []*cacheEntry[T]
	size    int
	limit   int
}

type cacheEntry[T any] struct {
	key   hashable
	value T
	next  *cacheEntry[T]
}

const (
	initialBuckets = 16

	// maxLoad is the number of entries per bucket that triggers growth.
	maxLoad = 0.75
)

// newMoveCache returns nil when limit is not positive.
func newMoveCache[T any](limit int) *moveCache[T] {
	if limit <= 0 {
		return nil
	}
	return &moveCache[T]{
		buckets: make([]*cacheEntry[T], initialBuckets),
		limit:   limit,
	}
}

// bucket returns the slot of hash in a table of n buckets; n is a power of
// two.
func bucket(hash uint64, n int) uint64 {
	return hash & uint64(n-1)
}

func (c *moveCache[T]) find(key hashable) *cacheEntry[T] {
	for e := c.buckets[bucket(key.Hash(), len(c.buckets))]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

func (c *moveCache[T]) Get(key hashable) (T, bool) {
	var empty T
	if c == nil {
		return empty, false
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if e := c.find(key); e != nil {
		return e.value, true
	}
	return empty, false
}

// Set stores value under key. Overwriting a key never evicts. Adding a key
// to a cache that already holds limit entries first empties it, so a cache
// never holds more than limit entries whatever the input.
func (c *moveCache[T]) Set(key hashable, value T) {
	if c == nil {
		return
	}
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if e := c.find(key); e != nil {
		e.value = value
		return
	}

	if c.size >= c.limit {
		c.reset()
	}
	link(c.buckets, &cacheEntry[T]{key: key, value: value})
	c.size++

	if float64(c.size) > maxLoad*float64(len(c.buckets)) {
		c.grow()
	}
}

// Len returns the number of entries.
func (c *moveCache[T]) Len() int {
	if c == nil {
		return 0
	}
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return c.size
}

// reset drops every entry and shrinks the table back to its initial size.
// The write lock must be held.
func (c *moveCache[T]) reset() {
	c.buckets = make([]*cacheEntry[T], initialBuckets)
	c.size = 0
}

// grow doubles the table and relinks every entry. The write lock must be
// held.
func (c *moveCache[T]) grow() {
	buckets := make([]*cacheEntry[T], 2*len(c.buckets))
	for _, head := range c.buckets {
		for e := head; e != nil; {
			next := e.next
			link(buckets, e)
			e = next
		}
	}
	c.buckets = buckets
}

// link pushes e onto the front of its chain in buckets.
func link[T any](buckets []*cacheEntry[T], e *cacheEntry[T]) {
	i := bucket(e.key.Hash(), len(buckets))
	e.next = buckets[i]
	buckets[i] = e
}
