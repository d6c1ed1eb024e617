package bmap

import "bytes"

// entry is one owned key/value pair in a bucket chain. The key is a
// private copy made at insertion; next links to the following entry in
// the same chain. Within one chain no two entries carry equal key bytes.
type entry[V any] struct {
	key   []byte
	value V
	next  *entry[V]
}

// newEntry builds a chain node with an owned copy of key. The value is
// deep-copied iff a clone capability is configured, otherwise stored as
// given.
func newEntry[V any](key []byte, value V, clone CloneFunc[V]) *entry[V] {
	e := &entry[V]{key: bytes.Clone(key)}
	if clone != nil {
		e.value = clone(value)
	} else {
		e.value = value
	}
	return e
}

// release drops the entry's resources. The value is passed to the free
// capability iff one is configured; without it the value stays
// caller-owned and is merely forgotten.
func (e *entry[V]) release(free FreeFunc[V]) {
	if free != nil {
		free(e.value)
	}
	var zero V
	e.key = nil
	e.value = zero
	e.next = nil
}

// applyChain invokes fn on every value from head to the end of the chain.
func applyChain[V any](head *entry[V], fn func(V)) {
	for it := head; it != nil; it = it.next {
		fn(it.value)
	}
}

// releaseChain releases every entry from head to the end of the chain.
func releaseChain[V any](head *entry[V], free FreeFunc[V]) {
	next := head
	for next != nil {
		current := next
		next = next.next
		current.release(free)
	}
}
