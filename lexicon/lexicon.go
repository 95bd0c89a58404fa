// Package lexicon handles the external sources the word finder consumes:
// word lists (flat files or sqlite lexicon databases) and board files.
// It strips line noise before anything reaches the core packages.
package lexicon

import (
	"bufio"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// Source is a stream of candidate dictionary words. No assumption is
// made about sorting or deduplication.
type Source interface {
	// Each calls fn once per candidate word, in source order. A non-nil
	// error from fn stops the iteration and is returned.
	Each(fn func(word string) error) error
}

// Chop removes trailing non-letter characters (line terminators and the
// like) from a line.
func Chop(line string) string {
	end := len(line)
	for end > 0 {
		c := line[end-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			break
		}
		end--
	}
	return line[:end]
}

// FileSource reads one candidate word per line from a text file.
type FileSource struct {
	Path string
}

func (f FileSource) Each(fn func(word string) error) error {
	file, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("lexicon: opening word file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	count := 0
	for scanner.Scan() {
		word := Chop(scanner.Text())
		if word == "" {
			continue
		}
		count++
		if err := fn(word); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("lexicon: reading word file: %w", err)
	}
	log.Debug().Str("path", f.Path).Int("words", count).Msg("scanned word file")
	return nil
}
