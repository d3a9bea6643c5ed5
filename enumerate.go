package fivewords

import (
	"context"
	"errors"
	"fmt"
)

// ErrInconsistent signals a mask reached during enumeration that is
// missing from the level below or from the word index. It means the
// levels were not built from the index they are enumerated against.
var ErrInconsistent = errors.New("inconsistent level maps")

// EmitFn receives one solution. The slice is reused after the call
// returns; copy it to keep it. A non-nil error stops the enumeration.
type EmitFn func(words []string) error

type enumerator struct {
	levels Levels
	index  *Index
	prefix []string
	emit   EmitFn
}

// Enumerate expands every mask of the top level back into words and calls
// emit once per group. Within a group words are in strictly increasing
// byte order, so every set of words is reported exactly once.
//
// Groups are reported in the iteration order of the top level.
func Enumerate(ctx context.Context, levels Levels, index *Index, emit EmitFn) error {
	top := levels.Top()
	if top == nil {
		return nil
	}

	e := enumerator{
		levels: levels,
		index:  index,
		prefix: make([]string, 0, levels.GroupSize()),
		emit:   emit,
	}

	var err error
	top.Each(func(m Mask, _ []Pair) bool {
		if err = ctx.Err(); err != nil {
			return true
		}
		err = e.expand(m)
		return err != nil
	})

	return err
}

// expand resolves the suffix mask m at the level given by the prefix
// length.
func (e *enumerator) expand(m Mask) error {
	level := e.levels.GroupSize() - len(e.prefix)
	if level == 0 {
		return e.emit(e.prefix)
	}

	pairs, ok := e.levels[level].Pairs(m)
	if !ok {
		return fmt.Errorf("mask %s missing at level %d: %w", m, level, ErrInconsistent)
	}

	last := ""
	if len(e.prefix) > 0 {
		last = e.prefix[len(e.prefix)-1]
	}

	for _, p := range pairs {
		words, ok := e.index.Words(p.Head)
		if !ok {
			return fmt.Errorf("word mask %s missing from index: %w", p.Head, ErrInconsistent)
		}

		for _, w := range words {
			if len(e.prefix) > 0 && w <= last {
				continue
			}

			e.prefix = append(e.prefix, w)
			err := e.expand(p.Tail)
			e.prefix = e.prefix[:len(e.prefix)-1]
			if err != nil {
				return err
			}
		}
	}

	return nil
}
