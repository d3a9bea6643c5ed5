package fivewords_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EinfachAndy/fivewords"
)

func masksOf(words ...string) *roaring.Bitmap {
	return fivewords.BuildIndex(words).Masks()
}

func TestSeed(t *testing.T) {
	seed := fivewords.Seed()

	require.Equal(t, 1, seed.Size())
	pairs, ok := seed.Pairs(0)
	require.True(t, ok)
	assert.Equal(t, []fivewords.Pair{{}}, pairs)
}

func TestCombineFirstLevel(t *testing.T) {
	masks := masksOf("abcde", "fghij", "bcdea")
	one := fivewords.Combine(fivewords.Seed(), masks)

	require.Equal(t, 2, one.Size())
	for _, w := range []string{"abcde", "fghij"} {
		m := fivewords.WordToMask(w)
		pairs, ok := one.Pairs(m)
		require.True(t, ok)
		assert.Equal(t, []fivewords.Pair{{Head: m, Tail: 0}}, pairs)
	}
}

func TestCombineRejectsOverlap(t *testing.T) {
	masks := masksOf("abcde", "efghi", "jklmn")
	levels, err := fivewords.BuildLevels(context.Background(), masks, 2, 1)
	require.NoError(t, err)

	two := levels[2]
	// abcde+jklmn and efghi+jklmn, abcde+efghi share 'e'
	assert.Equal(t, 2, two.Size())

	pairs, ok := two.Pairs(fivewords.WordToMask("abcde") | fivewords.WordToMask("jklmn"))
	require.True(t, ok)
	assert.Len(t, pairs, 2)

	_, ok = two.Pairs(fivewords.WordToMask("abcde") | fivewords.WordToMask("efghi"))
	assert.False(t, ok)
}

func TestLevelInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	masks := fivewords.BuildIndex(randomCorpus(rnd, 2, 40)).Masks()

	levels, err := fivewords.BuildLevels(context.Background(), masks, fivewords.GroupSize, 1)
	require.NoError(t, err)
	require.Len(t, levels, fivewords.GroupSize+1)
	assert.Equal(t, fivewords.GroupSize, levels.GroupSize())

	for k := 1; k < len(levels); k++ {
		levels[k].Each(func(m fivewords.Mask, pairs []fivewords.Pair) bool {
			assert.Equal(t, k*fivewords.WordLength, m.Len())
			for _, p := range pairs {
				assert.Zero(t, p.Head&p.Tail)
				assert.Equal(t, m, p.Head|p.Tail)
				assert.True(t, masks.Contains(uint32(p.Head)))
				_, ok := levels[k-1].Pairs(p.Tail)
				assert.True(t, ok, "tail %s missing at level %d", p.Tail, k-1)
			}
			return false
		})
	}
	assert.NotZero(t, levels.Top().Size())
}

func TestBuildLevelsEmpty(t *testing.T) {
	levels, err := fivewords.BuildLevels(context.Background(), roaring.New(), fivewords.GroupSize, 4)
	require.NoError(t, err)
	require.Len(t, levels, fivewords.GroupSize+1)

	assert.Equal(t, 1, levels[0].Size())
	for k := 1; k < len(levels); k++ {
		assert.Zero(t, levels[k].Size())
	}
}

func TestCombineParallelMatchesCombine(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	masks := fivewords.BuildIndex(randomCorpus(rnd, 3, 60)).Masks()

	prev := fivewords.Seed()
	for k := 1; k <= 3; k++ {
		want := fivewords.Combine(prev, masks)
		for _, workers := range []int{0, 1, 3, 8} {
			got, err := fivewords.CombineParallel(context.Background(), prev, masks, workers)
			require.NoError(t, err)
			require.Equal(t, want.Size(), got.Size(), "level %d workers %d", k, workers)

			want.Each(func(m fivewords.Mask, pairs []fivewords.Pair) bool {
				other, ok := got.Pairs(m)
				require.True(t, ok)
				assert.Equal(t, pairs, other)
				return false
			})
		}
		prev = want
	}
}

func TestBuildLevelsCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := fivewords.BuildLevels(ctx, masksOf(perfect...), fivewords.GroupSize, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = fivewords.BuildLevels(ctx, masksOf(perfect...), fivewords.GroupSize, 4)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildLevelsSameGroupsForAnyWorkers(t *testing.T) {
	words := randomCorpus(rand.New(rand.NewSource(9)), 3, 60)
	index := fivewords.BuildIndex(words)
	index.RemoveInvalid()

	solve := func(workers int) []string {
		levels, err := fivewords.BuildLevels(context.Background(), index.Masks(), fivewords.GroupSize, workers)
		require.NoError(t, err)

		var lines []string
		err = fivewords.Enumerate(context.Background(), levels, index, func(group []string) error {
			lines = append(lines, strings.Join(group, " "))
			return nil
		})
		require.NoError(t, err)
		return lines
	}

	want := solve(1)
	require.GreaterOrEqual(t, len(want), 3)
	for _, workers := range []int{2, 3, 8} {
		assert.ElementsMatch(t, want, solve(workers), "workers %d", workers)
	}
}
