// Package fivewords finds groups of five-letter words that together use
// 25 distinct letters.
//
// Every word is reduced to a letter mask. Level k of the search maps the
// combined mask of k disjoint words to all the ways it splits into one
// word mask and the mask of the remaining k-1 words. The levels are built
// bottom up by Combine and walked top down by Enumerate.
package fivewords

const (
	// WordLength is the number of letters in every word.
	WordLength = 5
	// AlphabetSize is the number of letters a mask can hold.
	AlphabetSize = 26
	// GroupSize is the number of words in a solution.
	GroupSize = 5
)
