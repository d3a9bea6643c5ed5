// Package unordered implements a chained hash map keyed by letter masks.
// It backs the level maps, whose values are decomposition lists that
// grow in place through the pointer returned by Insert.
package unordered

import "github.com/EinfachAndy/fivewords/shared"

// maxLoad is the average chain length at which the map grows.
const maxLoad = 1.0

type linkedList[K shared.Key, V any] struct {
	head *node[K, V]
}

type node[K shared.Key, V any] struct {
	next  *node[K, V]
	key   K
	value V
}

// Unordered is a hash map implementation, where the elements are organized into buckets
// depending on their hash values. Collisions are chained in a single linked list.
// An inserted value keeps its memory address, means a element in a bucket will not copied
// or swapped. That supports holding pointers instead of copy by value. see: `Insert`.
type Unordered[K shared.Key, V any] struct {
	buckets []linkedList[K, V]
	hasher  shared.HashFn[K]
	// length stores the current inserted elements
	length uintptr
	// capMinus1 is used for a bitwise AND on the hash value,
	// because the size of the underlying array is a power of two value
	capMinus1 uintptr

	nextResize uintptr
	maxLoad    float32
}

// New creates a ready to use `Unordered` hash map with default settings.
func New[K shared.Key, V any]() *Unordered[K, V] {
	return NewWithHasher[K, V](shared.HashMask[K])
}

// NewWithHasher same as `New` but with a given hash function.
func NewWithHasher[K shared.Key, V any](hasher shared.HashFn[K]) *Unordered[K, V] {
	m := &Unordered[K, V]{
		hasher:  hasher,
		maxLoad: maxLoad,
	}
	m.Reserve(shared.DefaultSize)

	return m
}

//go:inline
func (m *Unordered[K, V]) search(key K, idx uintptr) *V {
	for current := m.buckets[idx].head; current != nil; current = current.next {
		if current.key == key {
			return &(current.value)
		}
	}

	return nil
}

// Get returns the value stored for this key, or false if not found.
func (m *Unordered[K, V]) Get(key K) (V, bool) {
	var (
		idx = m.hasher(key) & m.capMinus1
		v   V
	)

	if ptr := m.search(key, idx); ptr != nil {
		return *ptr, true
	}

	return v, false
}

// Insert returns a pointer to the value of key, allocating a zero value
// if the key is new. The boolean reports whether the key was new.
func (m *Unordered[K, V]) Insert(key K) (*V, bool) {
	if m.length >= m.nextResize {
		m.resize(uintptr(cap(m.buckets)) * 2)
	}

	idx := m.hasher(key) & m.capMinus1

	if ptr := m.search(key, idx); ptr != nil {
		return ptr, false
	}

	m.length++
	newNode := &node[K, V]{key: key}
	newNode.next = m.buckets[idx].head
	m.buckets[idx].head = newNode

	return &newNode.value, true
}

// resize relinks the existing nodes; values keep their addresses.
func (m *Unordered[K, V]) resize(n uintptr) {
	oldBuckets := m.buckets
	m.capMinus1 = n - 1
	m.buckets = make([]linkedList[K, V], n)
	m.nextResize = uintptr(float32(n) * m.maxLoad)

	for i := range oldBuckets {
		for current := oldBuckets[i].head; current != nil; {
			moved := current
			current = current.next

			newIdx := m.hasher(moved.key) & m.capMinus1
			moved.next = m.buckets[newIdx].head
			m.buckets[newIdx].head = moved
		}
	}
}

// Reserve sets the number of buckets to the most appropriate to contain at least n elements.
// If n is lower than that, the function may have no effect.
func (m *Unordered[K, V]) Reserve(n uintptr) {
	var (
		needed = uintptr(float32(n) / m.maxLoad)
		newCap = uintptr(shared.NextPowerOf2(uint64(needed)))
	)

	if uintptr(cap(m.buckets)) < newCap {
		m.resize(newCap)
	}
}

// Size returns the number of items in the map.
func (m *Unordered[K, V]) Size() int {
	return int(m.length)
}

// Load return the current load of the hash map.
func (m *Unordered[K, V]) Load() float32 {
	return float32(m.length) / float32(cap(m.buckets))
}

// Each calls 'fn' on every key-value pair, bucket by bucket.
// If 'fn' returns true, the iteration stops.
func (m *Unordered[K, V]) Each(fn func(key K, val V) bool) {
	for i := range m.buckets {
		for current := m.buckets[i].head; current != nil; current = current.next {
			if stop := fn(current.key, current.value); stop {
				return
			}
		}
	}
}
