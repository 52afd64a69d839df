// Package segment splits cleaned text into tokens.
package segment

import (
	"strings"
	"unicode"

	"github.com/go-ego/gse"
)

// Segmenter splits a cleaned string into tokens.
type Segmenter interface {
	Name() string
	Segment(text string) []string
}

// Fields segments on Unicode whitespace. Suitable for pre-tokenized input
// and for languages that delimit words with spaces.
type Fields struct{}

// NewFields creates a whitespace segmenter.
func NewFields() *Fields { return &Fields{} }

// Name returns the identifier of this segmenter implementation.
func (f *Fields) Name() string { return "fields" }

// Segment returns the whitespace-separated fields of text.
func (f *Fields) Segment(text string) []string {
	return strings.Fields(text)
}

// Dictionary is a Chinese word segmenter backed by gse's prefix dictionary
// with HMM for out-of-vocabulary words.
type Dictionary struct {
	seg gse.Segmenter
}

// NewDictionary loads the given dictionary files, or gse's embedded
// dictionary when none are given.
func NewDictionary(dictPaths ...string) (*Dictionary, error) {
	d := &Dictionary{}
	if err := d.seg.LoadDict(dictPaths...); err != nil {
		return nil, err
	}
	return d, nil
}

// Name returns the identifier of this segmenter implementation.
func (d *Dictionary) Name() string { return "gse" }

// Segment cuts text into words, dropping whitespace-only pieces.
func (d *Dictionary) Segment(text string) []string {
	if text == "" {
		return nil
	}
	raw := d.seg.Cut(text, true)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if strings.TrimFunc(tok, unicode.IsSpace) == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}
