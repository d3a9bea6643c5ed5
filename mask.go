package fivewords

import (
	"math/bits"
	"strings"
)

// Mask is the set of letters of a word or word group, bit i standing for
// the letter 'a'+i. The zero mask marks a word that cannot take part in
// any group. Anagrams share a mask.
type Mask uint32

// WordToMask returns the letter mask of word, or 0 if the word is not
// WordLength lowercase ASCII letters or uses a letter twice.
func WordToMask(word string) Mask {
	if len(word) != WordLength {
		return 0
	}

	var m Mask
	for i := 0; i < len(word); i++ {
		letter := int(word[i]) - 'a'
		if letter < 0 || letter >= AlphabetSize {
			return 0
		}

		bit := Mask(1) << letter
		if m&bit != 0 {
			return 0
		}
		m |= bit
	}

	return m
}

// Disjoint reports whether m and other share no letter.
func (m Mask) Disjoint(other Mask) bool {
	return m&other == 0
}

// Union returns the letters of both masks.
func (m Mask) Union(other Mask) Mask {
	return m | other
}

// Len returns the number of letters in m.
func (m Mask) Len() int {
	return bits.OnesCount32(uint32(m))
}

// String returns the letters of m in alphabetical order.
func (m Mask) String() string {
	var b strings.Builder
	for i := 0; i < AlphabetSize; i++ {
		if m&(1<<i) != 0 {
			b.WriteByte(byte('a' + i))
		}
	}

	return b.String()
}
