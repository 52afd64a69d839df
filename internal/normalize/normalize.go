// Package normalize cleans raw note text and turns it into tokens.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"

	"notekw/internal/segment"
)

var (
	keepWithDigits = regexp.MustCompile(`[^\p{L}\p{M}\p{N}\s]+`)
	keepLetters    = regexp.MustCompile(`[^\p{L}\p{M}\s]+`)
	spaceRun       = regexp.MustCompile(`\s+`)
)

// Options controls cleaning.
type Options struct {
	RemoveDigits bool
	Lowercase    bool
}

// Clean folds full-width forms, optionally lowercases, strips everything
// except letters, marks, digits (unless removeDigits) and whitespace, then
// collapses whitespace runs to one space and trims.
func Clean(text string, opts Options) string {
	if text == "" {
		return ""
	}
	text = width.Fold.String(text)
	if opts.Lowercase {
		text = strings.ToLower(text)
	}
	if opts.RemoveDigits {
		text = keepLetters.ReplaceAllString(text, "")
	} else {
		text = keepWithDigits.ReplaceAllString(text, "")
	}
	text = spaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Normalizer is the clean-then-segment step in front of every scoring call.
type Normalizer struct {
	seg  segment.Segmenter
	opts Options
}

// New creates a Normalizer. A nil segmenter falls back to whitespace splitting.
func New(seg segment.Segmenter, opts Options) *Normalizer {
	if seg == nil {
		seg = segment.NewFields()
	}
	return &Normalizer{seg: seg, opts: opts}
}

// Tokens cleans and segments text. Empty input yields an empty slice.
func (n *Normalizer) Tokens(text string) []string {
	cleaned := Clean(text, n.opts)
	if cleaned == "" {
		return []string{}
	}
	return n.seg.Segment(cleaned)
}
