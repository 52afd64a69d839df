// Package notes loads note texts from plain-text files.
package notes

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"notekw/internal/domain"
)

var paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)

// Split cuts content into notes at blank lines. Empty notes are dropped.
func Split(source, content string) []domain.Note {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	parts := paragraphBreak.Split(content, -1)
	prefix := hashString(source)
	var out []domain.Note
	for _, p := range parts {
		text := strings.TrimSpace(p)
		if text == "" {
			continue
		}
		out = append(out, domain.Note{
			ID:     prefix + ":" + strconv.Itoa(len(out)),
			Source: source,
			Text:   text,
		})
	}
	return out
}

// Load reads every .txt file matched by paths (globs allowed) and splits
// each into notes.
func Load(paths []string) ([]domain.Note, error) {
	var out []domain.Note
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", p, err)
		}
		if matches == nil {
			matches = []string{p}
		}
		for _, m := range matches {
			if !strings.HasSuffix(strings.ToLower(m), ".txt") {
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			out = append(out, Split(m, string(data))...)
		}
	}
	return out, nil
}

// Texts returns the text of each note.
func Texts(notes []domain.Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.Text
	}
	return out
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
