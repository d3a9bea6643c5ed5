package shared

// Key is the constraint satisfied by letter masks and plain uint32 keys.
type Key interface {
	~uint32
}

// HashFn is a function that returns the hash of 'k'.
type HashFn[K Key] func(k K) uintptr

// HashMask applies the murmur3 fmix32 finalizer. Letter masks cluster in
// the low 26 bits and share many of them, so a plain identity hash would
// pile words with common letters into neighbouring buckets.
func HashMask[K Key](k K) uintptr {
	h := uint32(k)
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return uintptr(h)
}
