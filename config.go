package bmap

// ============================================================================
// Configuration
// ============================================================================

// CloneFunc deep-copies a value into map ownership at insert time.
type CloneFunc[V any] func(value V) V

// FreeFunc releases a map-owned value at remove/destroy time.
type FreeFunc[V any] func(value V)

// MapConfig holds the optional value-ownership capabilities of a Map.
// Both are fixed for the map's lifetime at construction. Their absence is
// meaningful, not a default: without a clone capability inserted values
// are stored by reference, and without a free capability Remove/Destroy
// never touch stored values.
type MapConfig[V any] struct {
	// clone, when set, produces the deep copy stored at insert time.
	// The map then owns the stored value.
	clone CloneFunc[V]

	// free, when set, releases a stored value when its entry is removed,
	// when a duplicate insert is rejected, and at Destroy.
	free FreeFunc[V]
}

// Option configures a Map at construction.
type Option[V any] func(*MapConfig[V])

// WithValueClone makes the map deep-copy values into its own ownership
// at insert time.
//
// Usage:
//
//	m, err := New[*Record](64, XXHash,
//		WithValueClone(func(r *Record) *Record {
//			c := *r
//			return &c
//		}))
//
// Pass nil to keep the default reference semantics.
func WithValueClone[V any](clone func(value V) V) Option[V] {
	return func(c *MapConfig[V]) {
		c.clone = clone
	}
}

// WithValueFree makes the map release stored values when they leave it:
// on Remove, on a rejected duplicate insert (the rejected clone), and for
// every remaining entry at Destroy. Each stored value is released at most
// once.
//
// Usage:
//
//	m, err := New[*os.File](16, XXHash,
//		WithValueFree(func(f *os.File) { f.Close() }))
//
// Pass nil to leave value lifecycle entirely to the caller.
func WithValueFree[V any](free func(value V)) Option[V] {
	return func(c *MapConfig[V]) {
		c.free = free
	}
}
