package tfidf

import (
	"errors"

	"notekw/internal/embedding"
	model "notekw/internal/tfidf"
)

// Embedder embeds keyword lists as L2-normalized TF-IDF vectors over the
// vocabulary of the prepared corpus.
type Embedder struct {
	model    *model.Model
	prepared bool
}

// NewEmbedder creates an unprepared TF-IDF embedder.
func NewEmbedder() *Embedder {
	return &Embedder{model: model.New(model.Options{SmoothIDF: true})}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "tfidf" }

// Prepare builds the vocabulary and IDF values from every keyword list.
func (e *Embedder) Prepare(corpus [][]string) error {
	if len(corpus) == 0 {
		return errors.New("empty corpus for TF-IDF prepare")
	}
	docs := make([]string, len(corpus))
	for i, kws := range corpus {
		docs[i] = embedding.Sentence(kws)
	}
	m := model.New(model.Options{SmoothIDF: true})
	m.Fit(docs)
	if m.Len() == 0 {
		return errors.New("no keywords found in corpus; nothing to embed")
	}
	e.model = m
	e.prepared = true
	return nil
}

// Dimension returns the vocabulary size of the prepared corpus.
func (e *Embedder) Dimension() int { return e.model.Len() }

// Embed computes the TF-IDF vector of keywords. Keywords outside the
// prepared vocabulary are ignored; an empty list gives the zero vector.
func (e *Embedder) Embed(keywords []string) ([]float64, error) {
	if !e.prepared {
		return nil, errors.New("tfidf embedder not prepared")
	}
	vec := embedding.Zero(e.Dimension())
	if len(keywords) == 0 {
		return vec, nil
	}
	for _, s := range e.model.Transform(embedding.Sentence(keywords)) {
		vec[s.Index] = s.Weight
	}
	return vec, nil
}
