// Package tfidf fits term-importance statistics over a batch of
// whitespace-tokenized documents.
package tfidf

import (
	"math"
	"sort"
	"strings"
)

// Options selects the IDF formula.
type Options struct {
	// SmoothIDF uses ln((1+N)/(1+df))+1. Otherwise ln(N/df)+1.
	SmoothIDF bool
}

// Model holds a sorted vocabulary, IDF weights and, after Fit, the
// term counts of each fitted document.
type Model struct {
	opts       Options
	vocabulary map[string]int
	terms      []string
	idf        []float64
	counts     []map[int]int
}

// Score pairs a vocabulary term with its weight in one document.
type Score struct {
	Term   string
	Index  int
	Weight float64
}

// New creates an unfitted model.
func New(opts Options) *Model {
	return &Model{opts: opts, vocabulary: make(map[string]int)}
}

// Fit builds the vocabulary and IDF values from docs. Each document is a
// string of whitespace-separated terms. Previous state is discarded.
func (m *Model) Fit(docs []string) {
	df := make(map[string]int)
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		toks := strings.Fields(doc)
		tokenized[i] = toks
		seen := make(map[string]struct{}, len(toks))
		for _, tok := range toks {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	m.terms = terms
	m.vocabulary = make(map[string]int, len(terms))
	m.idf = make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		m.vocabulary[term] = i
		d := float64(df[term])
		if m.opts.SmoothIDF {
			m.idf[i] = math.Log((1+n)/(1+d)) + 1.0
		} else {
			m.idf[i] = math.Log(n/d) + 1.0
		}
	}

	m.counts = make([]map[int]int, len(tokenized))
	for i, toks := range tokenized {
		tf := make(map[int]int, len(toks))
		for _, tok := range toks {
			tf[m.vocabulary[tok]]++
		}
		m.counts[i] = tf
	}
}

// Terms returns the vocabulary in canonical (sorted) order.
func (m *Model) Terms() []string { return m.terms }

// Len returns the vocabulary size.
func (m *Model) Len() int { return len(m.terms) }

// Index returns the vocabulary position of term.
func (m *Model) Index(term string) (int, bool) {
	i, ok := m.vocabulary[term]
	return i, ok
}

// IDF returns the inverse document frequency of term.
func (m *Model) IDF(term string) (float64, bool) {
	i, ok := m.vocabulary[term]
	if !ok {
		return 0, false
	}
	return m.idf[i], true
}

// IDFs returns term -> IDF for the whole vocabulary.
func (m *Model) IDFs() map[string]float64 {
	out := make(map[string]float64, len(m.terms))
	for i, term := range m.terms {
		out[term] = m.idf[i]
	}
	return out
}

// Documents returns how many documents were fitted.
func (m *Model) Documents() int { return len(m.counts) }

// Row returns the L2-normalized TF-IDF weights of fitted document doc,
// ranked by weight descending with ties broken by vocabulary index.
func (m *Model) Row(doc int) []Score {
	if doc < 0 || doc >= len(m.counts) {
		return nil
	}
	return m.weigh(m.counts[doc])
}

// Transform scores an arbitrary whitespace-tokenized document against the
// fitted vocabulary. Unknown terms are ignored.
func (m *Model) Transform(doc string) []Score {
	tf := make(map[int]int)
	for _, tok := range strings.Fields(doc) {
		if idx, ok := m.vocabulary[tok]; ok {
			tf[idx]++
		}
	}
	return m.weigh(tf)
}

func (m *Model) weigh(tf map[int]int) []Score {
	indices := make([]int, 0, len(tf))
	for idx := range tf {
		indices = append(indices, idx)
	}
	// Summing in index order keeps the norm bit-identical across calls.
	sort.Ints(indices)
	scores := make([]Score, 0, len(tf))
	norm := 0.0
	for _, idx := range indices {
		w := float64(tf[idx]) * m.idf[idx]
		norm += w * w
		scores = append(scores, Score{Term: m.terms[idx], Index: idx, Weight: w})
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range scores {
			scores[i].Weight /= norm
		}
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Weight != scores[j].Weight {
			return scores[i].Weight > scores[j].Weight
		}
		return scores[i].Index < scores[j].Index
	})
	return scores
}
