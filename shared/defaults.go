// Package shared holds the pieces common to the mask keyed hash maps.
package shared

const (
	// DefaultMaxLoad is the load factor at which the Robin Hood map used
	// for the word index grows.
	DefaultMaxLoad = 0.7

	// DefaultSize is the number of buckets a fresh map starts with.
	DefaultSize = 4
)
