package fivewords_test

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/EinfachAndy/fivewords"
)

var perfect = []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"}

// randomCorpus returns sorted distinct words with distinct letters. The
// first 5*groups words partition shuffled alphabets, which guarantees at
// least `groups` solutions.
func randomCorpus(rnd *rand.Rand, groups, extra int) []string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz"

	seen := make(map[string]struct{})
	add := func(w string) {
		seen[w] = struct{}{}
	}

	for g := 0; g < groups; g++ {
		letters := []byte(alphabet)
		rnd.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
		for i := 0; i < fivewords.GroupSize; i++ {
			add(string(letters[i*fivewords.WordLength : (i+1)*fivewords.WordLength]))
		}
	}

	for len(seen) < groups*fivewords.GroupSize+extra {
		letters := []byte(alphabet)
		rnd.Shuffle(len(letters), func(i, j int) { letters[i], letters[j] = letters[j], letters[i] })
		add(string(letters[:fivewords.WordLength]))
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}
	sort.Strings(words)

	return words
}

// bruteForce checks every combination of five words.
func bruteForce(words []string) []string {
	var (
		lines []string
		pick  []string
	)

	var rec func(start int, used fivewords.Mask)
	rec = func(start int, used fivewords.Mask) {
		if len(pick) == fivewords.GroupSize {
			lines = append(lines, strings.Join(pick, " "))
			return
		}
		for i := start; i < len(words); i++ {
			m := fivewords.WordToMask(words[i])
			if m == 0 || !m.Disjoint(used) {
				continue
			}
			pick = append(pick, words[i])
			rec(i+1, used|m)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0, 0)

	sort.Strings(lines)

	return lines
}
