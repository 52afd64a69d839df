// Package keywords ranks the salient terms of each note in a batch.
//
// Each text is cleaned and segmented, noise words are removed, and a fresh
// TF-IDF model is fit over the whole batch. A document's keywords are its
// own terms ranked by TF-IDF weight, ties broken by the model's sorted
// vocabulary. The model lives only for the duration of one call; the noise
// set is supplied by the caller.
package keywords

import (
	"errors"
	"strings"

	"notekw/internal/noise"
	"notekw/internal/tfidf"
)

// DefaultTopN is the number of keywords kept per note when unset.
const DefaultTopN = 4

// Keyword is one ranked term of a document.
type Keyword struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// Tokenizer turns raw text into tokens. normalize.Normalizer satisfies it.
type Tokenizer interface {
	Tokens(text string) []string
}

// Learner is the adaptive noise-word source consulted by Pipeline.
type Learner interface {
	Empty() bool
	Fit(corpus []string) error
	Noise() noise.Set
}

// Extractor combines tokenization, noise filtering and TF-IDF ranking.
type Extractor struct {
	tokenizer Tokenizer
	stopwords noise.Set
}

// NewExtractor creates an Extractor. stopwords is a fixed list applied on
// top of whatever adaptive set is passed to Extract.
func NewExtractor(tokenizer Tokenizer, stopwords noise.Set) (*Extractor, error) {
	if tokenizer == nil {
		return nil, errors.New("keyword extractor: nil tokenizer")
	}
	return &Extractor{tokenizer: tokenizer, stopwords: stopwords}, nil
}

// Filtered returns the noise-free tokens of one text.
func (e *Extractor) Filtered(text string, set noise.Set) []string {
	return noise.Remove(e.tokenizer.Tokens(text), set, e.stopwords)
}

// Extract returns at most topN keywords per text, aligned with texts. A
// text without surviving tokens, or topN <= 0, yields an empty list.
func (e *Extractor) Extract(texts []string, set noise.Set, topN int) [][]Keyword {
	out := make([][]Keyword, len(texts))
	if topN <= 0 || len(texts) == 0 {
		for i := range out {
			out[i] = []Keyword{}
		}
		return out
	}

	docs := make([]string, len(texts))
	for i, text := range texts {
		docs[i] = strings.Join(e.Filtered(text, set), " ")
	}
	model := tfidf.New(tfidf.Options{SmoothIDF: true})
	model.Fit(docs)

	for i := range docs {
		row := model.Row(i)
		if len(row) > topN {
			row = row[:topN]
		}
		kws := make([]Keyword, len(row))
		for j, s := range row {
			kws[j] = Keyword{Term: s.Term, Score: s.Weight}
		}
		out[i] = kws
	}
	return out
}

// Pipeline extracts keywords with the learner's current noise set. A
// learner that knows no noise words yet is first fit on texts itself.
func (e *Extractor) Pipeline(texts []string, learner Learner, topN int) ([][]Keyword, error) {
	if learner == nil {
		return nil, errors.New("keyword pipeline: nil learner")
	}
	if learner.Empty() {
		if err := learner.Fit(texts); err != nil {
			return nil, err
		}
	}
	return e.Extract(texts, learner.Noise(), topN), nil
}

// Terms strips scores from a keyword list.
func Terms(kws []Keyword) []string {
	out := make([]string, len(kws))
	for i, kw := range kws {
		out[i] = kw.Term
	}
	return out
}

// TermLists applies Terms to every list.
func TermLists(lists [][]Keyword) [][]string {
	out := make([][]string, len(lists))
	for i, kws := range lists {
		out[i] = Terms(kws)
	}
	return out
}
