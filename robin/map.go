// Package robin implements a Robin Hood hash map keyed by letter masks.
package robin

import "github.com/EinfachAndy/fivewords/shared"

const (
	emptyBucket = -1
)

type bucket[K shared.Key, V any] struct {
	key K
	// psl is the sequence length (PSL) of the linear search, the distance from
	// the optimum insertion. -1 or `emptyBucket` signals a free slot.
	// inspired from:
	//  - https://programming.guide/robin-hood-hashing.html
	//  - https://cs.uwaterloo.ca/research/tr/1986/CS-86-14.pdf
	psl   int8
	value V
}

// RobinHood is a hash map that uses linear probing in combination with
// robin hood hashing as collision strategy. The map tracks the distance
// from the optimum bucket and minimizes the variance over all buckets.
// Keys are 32 bit masks; the zero mask is a regular key.
//
// Each visits the bucket array front to back, so two maps filled with
// the same key sequence iterate in the same order.
type RobinHood[K shared.Key, V any] struct {
	buckets []bucket[K, V]
	hasher  shared.HashFn[K]
	// length stores the current inserted elements
	length uintptr
	// capMinus1 is used for a bitwise AND on the hash value,
	// because the size of the underlying array is a power of two value
	capMinus1  uintptr
	nextResize uintptr

	maxLoad float32
}

//go:inline
func newBucketArray[K shared.Key, V any](capacity uintptr) []bucket[K, V] {
	buckets := make([]bucket[K, V], capacity)

	for i := range buckets {
		buckets[i].psl = emptyBucket
	}

	return buckets
}

// New creates a ready to use `RobinHood` hash map with default settings.
func New[K shared.Key, V any]() *RobinHood[K, V] {
	return NewWithHasher[K, V](shared.HashMask[K])
}

// NewWithHasher same as `New` but with a given hash function.
func NewWithHasher[K shared.Key, V any](hasher shared.HashFn[K]) *RobinHood[K, V] {
	m := &RobinHood[K, V]{
		hasher:  hasher,
		maxLoad: shared.DefaultMaxLoad,
	}
	m.Reserve(shared.DefaultSize)

	return m
}

// Get returns the value stored for this key, or false if there is no such value.
func (m *RobinHood[K, V]) Get(key K) (V, bool) {
	var (
		idx = m.hasher(key) & m.capMinus1
		v   V
	)

	for psl := int8(0); psl <= m.buckets[idx].psl; psl++ {
		if m.buckets[idx].key == key {
			return m.buckets[idx].value, true
		}
		idx = (idx + 1) & m.capMinus1
	}

	return v, false
}

// Reserve sets the number of buckets to the most appropriate to contain at least n elements.
// If n is lower than that, the function may have no effect.
func (m *RobinHood[K, V]) Reserve(n uintptr) {
	var (
		needed = uintptr(float32(n) / m.maxLoad)
		newCap = uintptr(shared.NextPowerOf2(uint64(needed)))
	)

	if uintptr(cap(m.buckets)) < newCap {
		m.resize(newCap)
	}
}

func (m *RobinHood[K, V]) resize(n uintptr) {
	newm := RobinHood[K, V]{
		capMinus1:  n - 1,
		length:     m.length,
		buckets:    newBucketArray[K, V](n),
		hasher:     m.hasher,
		maxLoad:    m.maxLoad,
		nextResize: uintptr(float32(n) * m.maxLoad),
	}

	for i := range m.buckets {
		if m.buckets[i].psl != emptyBucket {
			idx := newm.hasher(m.buckets[i].key) & newm.capMinus1
			m.buckets[i].psl = 0
			newm.emplace(&m.buckets[i], idx)
		}
	}

	m.nextResize = newm.nextResize
	m.capMinus1 = newm.capMinus1
	m.buckets = newm.buckets
}

// Put maps the given key to the given value. If the key already exists its
// value will be overwritten with the new value.
// Returns true, if the element is a new item in the hash map.
func (m *RobinHood[K, V]) Put(key K, val V) bool {
	if m.length >= m.nextResize {
		m.resize(uintptr(cap(m.buckets)) * 2)
	}

	var (
		idx = m.hasher(key) & m.capMinus1
		psl = int8(0)
	)

	for ; psl <= m.buckets[idx].psl; psl++ {
		if m.buckets[idx].key == key {
			m.buckets[idx].value = val
			return false
		}
		idx = (idx + 1) & m.capMinus1
	}

	m.length++

	newBucket := bucket[K, V]{key: key, value: val, psl: psl}
	m.emplace(&newBucket, idx)

	return true
}

// emplace applies the Robin Hood creed to all following buckets until a empty is found.
// Robin Hood creed: "takes from the rich and gives to the poor".
// rich means, low psl
// poor means, higher psl
//
//go:inline
func (m *RobinHood[K, V]) emplace(current *bucket[K, V], idx uintptr) {
	for ; ; current.psl++ {
		if m.buckets[idx].psl == emptyBucket {
			m.buckets[idx] = *current
			return
		}

		if current.psl > m.buckets[idx].psl {
			*current, m.buckets[idx] = m.buckets[idx], *current
		}

		idx = (idx + 1) & m.capMinus1
	}
}

// Remove removes the specified key-value pair from the map.
// Returns true, if the element was in the hash map.
func (m *RobinHood[K, V]) Remove(key K) bool {
	var (
		idx     = m.hasher(key) & m.capMinus1
		current *bucket[K, V]
	)

	for psl := int8(0); psl <= m.buckets[idx].psl; psl++ {
		if m.buckets[idx].key == key {
			current = &m.buckets[idx]
			break
		}
		idx = (idx + 1) & m.capMinus1
	}

	if current == nil {
		return false
	}

	m.length--
	current.psl = emptyBucket

	idx = (idx + 1) & m.capMinus1
	next := &m.buckets[idx]
	// back shift until an optimum or empty bucket
	for next.psl > 0 {
		next.psl--
		*current, *next = *next, *current
		current = next
		idx = (idx + 1) & m.capMinus1
		next = &m.buckets[idx]
	}

	return true
}

// Load return the current load of the hash map.
func (m *RobinHood[K, V]) Load() float32 {
	return float32(m.length) / float32(cap(m.buckets))
}

// Size returns the number of items in the map.
func (m *RobinHood[K, V]) Size() int {
	return int(m.length)
}

// Each calls 'fn' on every key-value pair in bucket order.
// If 'fn' returns true, the iteration stops.
func (m *RobinHood[K, V]) Each(fn func(key K, val V) bool) {
	for i := range m.buckets {
		if m.buckets[i].psl != emptyBucket {
			if stop := fn(m.buckets[i].key, m.buckets[i].value); stop {
				return
			}
		}
	}
}
