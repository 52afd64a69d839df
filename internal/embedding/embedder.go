package embedding

import (
	"strings"

	"notekw/internal/domain"
)

// Embedder converts a keyword list into a numeric vector representation.
// Implementations may require a preparation phase over the corpus.
type Embedder = domain.Embedder

// Sentence joins keywords into the single sentence that is embedded.
func Sentence(keywords []string) string {
	return strings.Join(keywords, " ")
}

// Zero returns the zero vector of the given dimension.
func Zero(dimension int) []float64 {
	if dimension < 0 {
		dimension = 0
	}
	return make([]float64, dimension)
}
