package memory

import (
	"errors"
	"math"
	"sort"
	"sync"

	"notekw/internal/domain"
)

// Storage is a simple in-memory vector store using brute-force cosine similarity.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	vectors   [][]float64
	notes     []domain.Note
}

func NewStorage() *Storage { return &Storage{} }

func (s *Storage) Init(dimension int) error {
	if dimension <= 0 {
		return errors.New("invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dimension = dimension
	s.vectors = nil
	s.notes = nil
	return nil
}

func (s *Storage) Upsert(notes []domain.Note, vectors [][]float64) error {
	if len(notes) != len(vectors) {
		return errors.New("notes and vectors length mismatch")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range vectors {
		if len(v) != s.dimension {
			return errors.New("vector dimension mismatch")
		}
	}
	for i, n := range notes {
		if j := s.indexOf(n.ID); j >= 0 {
			s.notes[j] = n
			s.vectors[j] = vectors[i]
			continue
		}
		s.notes = append(s.notes, n)
		s.vectors = append(s.vectors, vectors[i])
	}
	return nil
}

func (s *Storage) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// Search returns the topK most similar notes. Notes with a zero vector
// never match.
func (s *Storage) Search(vector []float64, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(vector) != s.dimension {
		return nil, errors.New("vector dimension mismatch")
	}
	if topK <= 0 {
		topK = 5
	}
	results := make([]domain.SearchResult, 0, len(s.vectors))
	for i := range s.vectors {
		score := cosine(s.vectors[i], vector)
		if score <= 0 {
			continue
		}
		results = append(results, domain.SearchResult{Note: s.notes[i], Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

func (s *Storage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vectors = nil
	s.notes = nil
	return nil
}

// Len returns the number of stored notes.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
