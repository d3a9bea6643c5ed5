package fivewords

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/EinfachAndy/fivewords/unordered"
)

// ctxCheckInterval is the number of tail masks processed between two
// checks of the context.
const ctxCheckInterval = 256

// Pair splits a combined mask into the mask of its first word and the
// mask of the remaining words. Head&Tail is always 0.
type Pair struct {
	Head Mask
	Tail Mask
}

// LevelMap maps the combined mask of a group of k words to every Pair
// it decomposes into. It is immutable once built.
type LevelMap struct {
	groups *unordered.Unordered[Mask, []Pair]
}

func newLevelMap(hint int) *LevelMap {
	l := &LevelMap{groups: unordered.New[Mask, []Pair]()}
	if hint > 0 {
		l.groups.Reserve(uintptr(hint))
	}

	return l
}

// Seed returns the level 0 map: the empty group, mask 0, split into the
// empty head and the empty tail.
func Seed() *LevelMap {
	l := newLevelMap(1)
	l.add(Pair{})

	return l
}

func (l *LevelMap) add(p Pair) {
	pairs, _ := l.groups.Insert(p.Head | p.Tail)
	*pairs = append(*pairs, p)
}

// Pairs returns the decompositions of the combined mask m.
func (l *LevelMap) Pairs(m Mask) ([]Pair, bool) {
	return l.groups.Get(m)
}

// Size returns the number of distinct combined masks.
func (l *LevelMap) Size() int {
	return l.groups.Size()
}

// Load returns the average chain length of the underlying hash map.
func (l *LevelMap) Load() float32 {
	return l.groups.Load()
}

// Each calls fn for every combined mask until fn returns true.
// The order depends only on the order the map was filled in.
func (l *LevelMap) Each(fn func(m Mask, pairs []Pair) bool) {
	l.groups.Each(fn)
}

func (l *LevelMap) keys() []Mask {
	keys := make([]Mask, 0, l.Size())
	l.Each(func(m Mask, _ []Pair) bool {
		keys = append(keys, m)
		return false
	})

	return keys
}

// combineInto prepends every head disjoint from a tail and files the pair
// under the union.
func combineInto(ctx context.Context, out *LevelMap, tails []Mask, heads []uint32) error {
	for i, tail := range tails {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}

		for _, h := range heads {
			head := Mask(h)
			if !head.Disjoint(tail) {
				continue
			}
			out.add(Pair{Head: head, Tail: tail})
		}
	}

	return nil
}

// Combine builds level k from level k-1 and the set of word masks.
// An empty mask set yields an empty map.
func Combine(prev *LevelMap, masks *roaring.Bitmap) *LevelMap {
	out := newLevelMap(prev.Size())
	// a background context never cancels
	_ = combineInto(context.Background(), out, prev.keys(), masks.ToArray())

	return out
}

// CombineParallel produces the same decompositions as Combine. The tails
// of prev are split into contiguous shards, each shard is combined into a
// private map, and the shards are merged in order, so for the same prev
// the pairs under a mask keep the order Combine would give them. The key
// order of the result differs from Combine's, so levels built on top of
// it, and the lines Enumerate emits, come out in a different order for
// different worker counts. The set of groups is the same.
func CombineParallel(ctx context.Context, prev *LevelMap, masks *roaring.Bitmap, workers int) (*LevelMap, error) {
	tails := prev.keys()
	if workers < 1 {
		workers = 1
	}
	if workers > len(tails) {
		workers = len(tails)
	}
	if workers <= 1 {
		out := newLevelMap(len(tails))
		if err := combineInto(ctx, out, tails, masks.ToArray()); err != nil {
			return nil, err
		}
		return out, nil
	}

	var (
		heads  = masks.ToArray()
		shards = make([]*LevelMap, workers)
		size   = (len(tails) + workers - 1) / workers
	)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * size
		hi := lo + size
		if hi > len(tails) {
			hi = len(tails)
		}
		if lo >= hi {
			continue
		}

		w, shard := w, tails[lo:hi]
		g.Go(func() error {
			local := newLevelMap(len(shard))
			if err := combineInto(gctx, local, shard, heads); err != nil {
				return err
			}
			shards[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := newLevelMap(len(tails))
	for _, shard := range shards {
		if shard == nil {
			continue
		}
		shard.Each(func(m Mask, pairs []Pair) bool {
			merged, _ := out.groups.Insert(m)
			*merged = append(*merged, pairs...)
			return false
		})
	}

	return out, nil
}

// Levels holds the level maps 0 through n, index k being the map of
// groups of k words.
type Levels []*LevelMap

// BuildLevels builds the seed and n further levels from the word masks.
// With workers > 1 every level is built with CombineParallel, see there
// for the resulting order.
func BuildLevels(ctx context.Context, masks *roaring.Bitmap, n, workers int) (Levels, error) {
	levels := make(Levels, 1, n+1)
	levels[0] = Seed()

	for k := 1; k <= n; k++ {
		next, err := CombineParallel(ctx, levels[k-1], masks, workers)
		if err != nil {
			return nil, err
		}
		levels = append(levels, next)
	}

	return levels, nil
}

// GroupSize returns the number of words in a complete group, which is
// the index of the top level.
func (ls Levels) GroupSize() int {
	return len(ls) - 1
}

// Top returns the map of complete groups, or nil for an empty Levels.
func (ls Levels) Top() *LevelMap {
	if len(ls) == 0 {
		return nil
	}

	return ls[len(ls)-1]
}
