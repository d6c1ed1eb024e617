// Package bmap provides a fixed-capacity hashmap keyed by arbitrary byte
// sequences, using separate chaining for collision resolution and a
// caller-supplied hash function for bucket placement.
//
// The bucket count is fixed at construction (rounded to the nearest power
// of two) and never changes: there is no rehashing and no automatic growth.
// Worst-case lookup degrades to O(n) under pathological collisions, which
// is an accepted trade-off of this design.
//
// Value ownership is configurable through two optional capabilities:
//   - WithValueClone: values are deep-copied into map ownership at insert.
//   - WithValueFree: values are released by the map at remove/destroy.
//
// Without them the map stores plain references and never touches the
// values' lifecycle.
package bmap

import (
	"bytes"
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidArgument is returned for an uninitialized map, an empty
	// key, a capacity below 1 or a missing hash function.
	ErrInvalidArgument = errors.New("bmap: invalid argument")

	// ErrDuplicateKey is returned by Add when the key is already present.
	// Inserting over an existing key is not an update; callers must
	// Remove before re-adding.
	ErrDuplicateKey = errors.New("bmap: duplicate key")
)

// Map is a single-threaded hashmap over byte-sequence keys.
//
// Core properties:
//   - Fixed bucket count, chosen at construction; no resize, no rehash.
//   - Separate chaining; insertion order is kept within a chain.
//   - Keys are copied into owned storage and never aliased.
//   - Duplicate keys are rejected, never overwritten.
//
// Notes:
//   - Map must not be copied after first use.
//   - Map is not safe for concurrent use. Callers that share a Map across
//     goroutines must guard every operation with a single external lock.
type Map[V any] struct {
	_       noCopy
	buckets []*entry[V]
	mask    uint32
	size    int
	hash    HashFunc
	clone   CloneFunc[V]
	free    FreeFunc[V]
}

// New constructs a Map with at least one bucket.
//
// The bucket count becomes the power of two nearest to capacity, rounding
// up on ties: 1->1, 3->4, 5->4, 6->8. hash is required and must be
// deterministic. Clone/free capabilities are supplied via options; their
// absence switches the map to reference semantics for values.
func New[V any](capacity int, hash HashFunc, opts ...Option[V]) (*Map[V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d, want >= 1", ErrInvalidArgument, capacity)
	}
	if hash == nil {
		return nil, fmt.Errorf("%w: nil hash function", ErrInvalidArgument)
	}

	var cfg MapConfig[V]
	for _, opt := range opts {
		opt(&cfg)
	}

	n := nearestPowOf2(capacity)
	return &Map[V]{
		buckets: make([]*entry[V], n),
		mask:    uint32(n - 1),
		hash:    hash,
		clone:   cfg.clone,
		free:    cfg.free,
	}, nil
}

// Add inserts value under key.
//
// The key bytes are copied; the value is cloned iff a clone capability is
// configured. If the key is already present the insert is rejected with
// ErrDuplicateKey and the map is unchanged; the entry built for the
// rejected insert (including its clone) is released through the free
// capability. New entries are appended at the tail of their chain.
func (m *Map[V]) Add(key []byte, value V) error {
	if !m.valid() {
		return fmt.Errorf("%w: map not initialized", ErrInvalidArgument)
	}
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidArgument)
	}

	e := newEntry(key, value, m.clone)
	idx := m.hash(key) & m.mask

	var prev *entry[V]
	for it := m.buckets[idx]; it != nil; it = it.next {
		if bytes.Equal(it.key, key) {
			e.release(m.free)
			return ErrDuplicateKey
		}
		prev = it
	}

	if prev == nil {
		m.buckets[idx] = e
	} else {
		prev.next = e
	}
	m.size++
	return nil
}

// Get returns the value stored under key.
//
// The second result is false if the key is absent, empty, or the map is
// uninitialized or destroyed. Get never mutates the map and never clones
// the returned value. Cost is O(chain length) at the computed bucket.
func (m *Map[V]) Get(key []byte) (V, bool) {
	var zero V
	if !m.valid() || len(key) == 0 {
		return zero, false
	}

	for it := m.buckets[m.hash(key)&m.mask]; it != nil; it = it.next {
		if bytes.Equal(it.key, key) {
			return it.value, true
		}
	}
	return zero, false
}

// Remove deletes the entry stored under key and reports whether one was
// found. The entry's value is released through the free capability iff one
// is configured; otherwise the value is left untouched and remains
// caller-owned. Only the single matching entry is affected.
func (m *Map[V]) Remove(key []byte) bool {
	if !m.valid() || len(key) == 0 {
		return false
	}

	idx := m.hash(key) & m.mask

	var prev *entry[V]
	it := m.buckets[idx]
	for it != nil && !bytes.Equal(it.key, key) {
		prev = it
		it = it.next
	}
	if it == nil {
		return false
	}

	if prev == nil {
		m.buckets[idx] = it.next
	} else {
		prev.next = it.next
	}
	m.size--
	it.release(m.free)
	return true
}

// Apply invokes fn once per stored value, in bucket-index order and then
// insertion order within each chain. The visit order carries no semantic
// meaning. fn may mutate a value's internal state but must not add or
// remove entries during traversal. A nil fn or an uninitialized map is a
// silent no-op.
func (m *Map[V]) Apply(fn func(value V)) {
	if !m.valid() || fn == nil {
		return
	}
	for _, head := range m.buckets {
		applyChain(head, fn)
	}
}

// Destroy releases every remaining entry, running the free capability per
// value iff one is configured, and drops the bucket array. The map must
// not be used afterwards; every later operation fails like one on an
// uninitialized map. Destroying an already-destroyed map is a no-op.
func (m *Map[V]) Destroy() {
	if !m.valid() {
		return
	}
	for i, head := range m.buckets {
		releaseChain(head, m.free)
		m.buckets[i] = nil
	}
	m.buckets = nil
	m.size = 0
}

// Len returns the number of entries currently stored.
func (m *Map[V]) Len() int {
	if !m.valid() {
		return 0
	}
	return m.size
}

// Cap returns the bucket count chosen at construction, or 0 after Destroy.
func (m *Map[V]) Cap() int {
	if !m.valid() {
		return 0
	}
	return len(m.buckets)
}

// valid reports whether the map was constructed and not yet destroyed.
// A zero-value or destroyed Map has no bucket array.
func (m *Map[V]) valid() bool {
	return m != nil && m.buckets != nil
}

// nearestPowOf2 returns the power of two nearest to n, rounding up when n
// is equidistant from its neighbors. n must be >= 1.
func nearestPowOf2(n int) int {
	shifts := bits.Len(uint(n)) - 1
	if (1<<(shifts+1))-n <= n-(1<<shifts) {
		shifts++
	}
	return 1 << shifts
}

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by vet.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
