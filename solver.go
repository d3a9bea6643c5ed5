package fivewords

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

// ErrGroupSize signals a group size that cannot fit into the alphabet.
var ErrGroupSize = errors.New("group size out of range")

// MaxGroupSize is the largest group whose letters fit into the alphabet.
const MaxGroupSize = AlphabetSize / WordLength

// Stats collects the diagnostics of one Solve call.
type Stats struct {
	// Words is the number of words handed to Solve.
	Words int
	// Invalid lists the words that mapped to mask 0.
	Invalid []string
	// UniqueMasks is the number of distinct valid masks.
	UniqueMasks int
	// Groups holds the size of every level map, index k for groups of
	// k words. Index 0 is the seed.
	Groups []int
	// Solutions is the number of lines written.
	Solutions int
}

// Solver runs the whole search: index, levels and enumeration.
type Solver struct {
	log       *zap.Logger
	workers   int
	sorted    bool
	groupSize int
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the logger receiving the diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(s *Solver) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWorkers sets the number of goroutines building each level.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		s.workers = n
	}
}

// WithSorted makes Solve sort the solution lines before writing them.
// Without it, lines come out in the iteration order of the top level,
// which is stable for a given input but has no meaningful order.
func WithSorted(sorted bool) Option {
	return func(s *Solver) {
		s.sorted = sorted
	}
}

// WithGroupSize sets the number of words per group, 1 to MaxGroupSize.
func WithGroupSize(n int) Option {
	return func(s *Solver) {
		s.groupSize = n
	}
}

// New returns a Solver for groups of GroupSize words on one worker.
func New(opts ...Option) *Solver {
	s := &Solver{
		log:       zap.NewNop(),
		workers:   1,
		groupSize: GroupSize,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Solve searches words for groups with pairwise distinct letters and
// writes one line per group to w, words separated by single spaces.
func (s *Solver) Solve(ctx context.Context, words []string, w io.Writer) (Stats, error) {
	var stats Stats

	if s.groupSize < 1 || s.groupSize > MaxGroupSize {
		return stats, fmt.Errorf("%d: %w", s.groupSize, ErrGroupSize)
	}

	stats.Words = len(words)
	s.log.Info("words read", zap.Int("count", stats.Words))

	index := BuildIndex(words)
	stats.Invalid = index.RemoveInvalid()
	if len(stats.Invalid) > 0 {
		s.log.Warn("invalid words", zap.Int("count", len(stats.Invalid)), zap.Strings("words", stats.Invalid))
	}

	masks := index.Masks()
	stats.UniqueMasks = int(masks.GetCardinality())
	s.log.Info("unique keys", zap.Int("count", stats.UniqueMasks))
	s.log.Debug("index load", zap.Float32("load", index.Load()))

	levels, err := BuildLevels(ctx, masks, s.groupSize, s.workers)
	if err != nil {
		return stats, fmt.Errorf("build levels: %w", err)
	}
	stats.Groups = make([]int, len(levels))
	for k, l := range levels {
		stats.Groups[k] = l.Size()
		if k > 0 {
			s.log.Info("groups", zap.Int("size", k), zap.Int("count", l.Size()))
			s.log.Debug("level load", zap.Int("size", k), zap.Float32("load", l.Load()))
		}
	}

	out := bufio.NewWriter(w)

	var lines []string
	emit := func(group []string) error {
		stats.Solutions++
		line := strings.Join(group, " ")
		if s.sorted {
			lines = append(lines, line)
			return nil
		}
		_, err := fmt.Fprintln(out, line)
		return err
	}

	if err := Enumerate(ctx, levels, index, emit); err != nil {
		return stats, fmt.Errorf("enumerate: %w", err)
	}

	if s.sorted {
		slices.Sort(lines)
		for _, line := range lines {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return stats, fmt.Errorf("write: %w", err)
			}
		}
	}

	if err := out.Flush(); err != nil {
		return stats, fmt.Errorf("write: %w", err)
	}
	s.log.Info("solutions", zap.Int("count", stats.Solutions))

	return stats, nil
}
