package noise

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// LoadStopwords reads a hand-curated stopword list, one word per line.
// Blank lines and lines starting with "//" are skipped; words are
// lowercased. A missing file yields an empty Set.
func LoadStopwords(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Set{}, nil
		}
		return Set{}, err
	}
	defer f.Close()
	return ReadStopwords(f)
}

// ReadStopwords parses a stopword list from r.
func ReadStopwords(r io.Reader) (Set, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "//") {
			continue
		}
		words = append(words, strings.ToLower(word))
	}
	if err := scanner.Err(); err != nil {
		return Set{}, err
	}
	return NewSet(words...), nil
}
