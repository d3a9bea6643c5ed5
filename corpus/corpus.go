// Package corpus reads word lists, one word per line.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/EinfachAndy/fivewords"
)

// Stdin is the path naming standard input in ReadFiles.
const Stdin = "-"

// IsCandidate reports whether word has WordLength lowercase ASCII
// letters. Repeated letters are allowed.
func IsCandidate(word string) bool {
	if len(word) != fivewords.WordLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
	}

	return true
}

// HasUniqueLetters reports whether word is a candidate without repeated
// letters.
func HasUniqueLetters(word string) bool {
	return fivewords.WordToMask(word) != 0
}

// Read returns the candidate words of r in input order. Surrounding
// whitespace of every line is dropped.
func Read(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if IsCandidate(word) {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}

	return words, nil
}

// ReadFiles reads the candidate words of every path in turn. Stdin, or
// an empty path list, reads from stdin.
func ReadFiles(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		return Read(stdin)
	}

	var words []string
	for _, path := range paths {
		batch, err := readPath(path, stdin)
		if err != nil {
			return nil, err
		}
		words = append(words, batch...)
	}

	return words, nil
}

func readPath(path string, stdin io.Reader) ([]string, error) {
	if path == Stdin {
		return Read(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return words, nil
}

// Filter copies the words of r with WordLength distinct letters to w, one
// per line, and returns how many it wrote. Words of the right length with
// characters outside 'a'..'z' are logged.
func Filter(r io.Reader, w io.Writer, log *zap.Logger) (int, error) {
	var (
		scanner = bufio.NewScanner(r)
		out     = bufio.NewWriter(w)
		n       int
	)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if len(word) == fivewords.WordLength && !IsCandidate(word) {
			log.Warn("invalid chars", zap.String("word", word))
			continue
		}
		if !HasUniqueLetters(word) {
			continue
		}

		if _, err := fmt.Fprintln(out, word); err != nil {
			return n, fmt.Errorf("write: %w", err)
		}
		n++
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read words: %w", err)
	}

	if err := out.Flush(); err != nil {
		return n, fmt.Errorf("write: %w", err)
	}

	return n, nil
}
