package domain

// Note is a single short text loaded into the system.
type Note struct {
	ID       string
	Source   string
	Text     string
	Keywords []string
	Cluster  int
}

// Group is a cluster of notes sharing a topic.
type Group struct {
	ID    int
	Label []string
	Notes []Note
}

// SearchResult represents a matching note with a similarity score.
type SearchResult struct {
	Note  Note
	Score float64
}

// Analysis is the outcome of looking up one new note.
type Analysis struct {
	Text     string
	Keywords []string
	Similar  []SearchResult
}

// Embedder converts a keyword list into a fixed-length vector. An empty
// list maps to the zero vector. Implementations may require a preparation
// phase over every keyword list of the corpus.
type Embedder interface {
	Name() string
	Prepare(corpus [][]string) error
	Dimension() int
	Embed(keywords []string) ([]float64, error)
}

// Clusterer assigns each vector a cluster id in [0, k).
type Clusterer interface {
	Cluster(vectors [][]float64, k int) ([]int, error)
}

// VectorStore persists note vectors and supports similarity search.
type VectorStore interface {
	Init(dimension int) error
	Upsert(notes []Note, vectors [][]float64) error
	Search(vector []float64, topK int) ([]SearchResult, error)
	Clear() error
}

// Labeler names a group from the keyword lists of its members.
type Labeler interface {
	Label(keywordLists [][]string, maxTerms int) []string
}

// NoteService defines the operations exposed by the application core.
type NoteService interface {
	Fit(texts []string) error
	Ingest(notes []Note) ([]Group, error)
	Query(text string, topK int) (Analysis, error)
}
