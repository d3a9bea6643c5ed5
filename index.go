package fivewords

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/EinfachAndy/fivewords/robin"
)

// Index groups words by their letter mask. Words sharing a mask, such as
// anagrams, keep the order in which they were added.
type Index struct {
	buckets *robin.RobinHood[Mask, []string]
	words   int
}

// BuildIndex computes the mask of every word and files the word under it.
// Malformed words end up in the bucket of mask 0; see RemoveInvalid.
func BuildIndex(words []string) *Index {
	ix := &Index{
		buckets: robin.New[Mask, []string](),
	}
	ix.buckets.Reserve(uintptr(len(words)))

	for _, w := range words {
		ix.Add(w)
	}

	return ix
}

// Add files a single word.
func (ix *Index) Add(word string) {
	m := WordToMask(word)
	list, _ := ix.buckets.Get(m)
	ix.buckets.Put(m, append(list, word))
	ix.words++
}

// RemoveInvalid drops the bucket of mask 0 and returns its words.
func (ix *Index) RemoveInvalid() []string {
	invalid, ok := ix.buckets.Get(0)
	if !ok {
		return nil
	}
	ix.buckets.Remove(0)

	return invalid
}

// Words returns the words whose mask is m.
func (ix *Index) Words(m Mask) ([]string, bool) {
	return ix.buckets.Get(m)
}

// Len returns the number of distinct masks in the index.
func (ix *Index) Len() int {
	return ix.buckets.Size()
}

// Load returns the fill ratio of the underlying hash map.
func (ix *Index) Load() float32 {
	return ix.buckets.Load()
}

// Total returns the number of words added, valid or not.
func (ix *Index) Total() int {
	return ix.words
}

// Masks returns the distinct non-zero masks of the index.
func (ix *Index) Masks() *roaring.Bitmap {
	masks := roaring.New()
	ix.buckets.Each(func(m Mask, _ []string) bool {
		if m != 0 {
			masks.Add(uint32(m))
		}
		return false
	})

	return masks
}
