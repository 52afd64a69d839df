package service

import (
	"errors"
	"fmt"

	"notekw/internal/domain"
	"notekw/internal/keywords"
	"notekw/internal/logger"
	"notekw/internal/noise"
	"notekw/internal/notes"
)

// Options tunes a NoteService. TopN <= 0 yields empty keyword lists;
// the other fields fall back to defaults when unset.
type Options struct {
	TopN        int
	Clusters    int
	LabelTerms  int
	SimilarTopK int
}

// NoteServiceImpl composes keyword extraction, embedding and clustering
// around one shared noise-word learner.
type NoteServiceImpl struct {
	learner   *noise.Learner
	extractor *keywords.Extractor
	embedder  domain.Embedder
	clusterer domain.Clusterer
	store     domain.VectorStore
	labeler   domain.Labeler
	opts      Options
	notes     []domain.Note
}

func NewNoteService(learner *noise.Learner, extractor *keywords.Extractor, embedder domain.Embedder, clusterer domain.Clusterer, store domain.VectorStore, labeler domain.Labeler, opts Options) *NoteServiceImpl {
	if opts.Clusters <= 0 {
		opts.Clusters = 3
	}
	if opts.LabelTerms <= 0 {
		opts.LabelTerms = 3
	}
	if opts.SimilarTopK <= 0 {
		opts.SimilarTopK = 5
	}
	return &NoteServiceImpl{
		learner:   learner,
		extractor: extractor,
		embedder:  embedder,
		clusterer: clusterer,
		store:     store,
		labeler:   labeler,
		opts:      opts,
	}
}

// Learner exposes the shared noise-word learner.
func (s *NoteServiceImpl) Learner() *noise.Learner { return s.learner }

// Fit seeds the noise-word set from a historical corpus.
func (s *NoteServiceImpl) Fit(texts []string) error {
	return s.learner.Fit(texts)
}

// Keywords runs the bootstrap-capable pipeline over texts.
func (s *NoteServiceImpl) Keywords(texts []string) ([][]keywords.Keyword, error) {
	return s.extractor.Pipeline(texts, s.learner, s.opts.TopN)
}

// Ingest extracts keywords for every note, embeds and clusters them, and
// indexes the vectors for similarity lookups.
func (s *NoteServiceImpl) Ingest(batch []domain.Note) ([]domain.Group, error) {
	if len(batch) == 0 {
		return nil, errors.New("no notes to ingest")
	}
	lists, err := s.Keywords(notes.Texts(batch))
	if err != nil {
		return nil, err
	}
	terms := keywords.TermLists(lists)

	ingested := make([]domain.Note, len(batch))
	for i, n := range batch {
		n.Keywords = terms[i]
		ingested[i] = n
	}

	if err := s.embedder.Prepare(terms); err != nil {
		return nil, fmt.Errorf("prepare %s embedder: %w", s.embedder.Name(), err)
	}
	vectors := make([][]float64, len(ingested))
	var embedErr error
	for i := range ingested {
		vec, err := s.embedder.Embed(ingested[i].Keywords)
		if err != nil {
			embedErr = errors.Join(embedErr, fmt.Errorf("note %s: %w", ingested[i].ID, err))
			continue
		}
		vectors[i] = vec
	}
	if embedErr != nil {
		return nil, embedErr
	}

	ids, err := s.clusterer.Cluster(vectors, s.opts.Clusters)
	if err != nil {
		return nil, err
	}
	for i := range ingested {
		ingested[i].Cluster = ids[i]
	}

	if err := s.store.Init(s.embedder.Dimension()); err != nil {
		return nil, err
	}
	if err := s.store.Clear(); err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ingested, vectors); err != nil {
		return nil, err
	}
	s.notes = ingested

	groups := s.group(ingested)
	logger.Info("ingested %d notes into %d groups", len(ingested), len(groups))
	return groups, nil
}

func (s *NoteServiceImpl) group(ingested []domain.Note) []domain.Group {
	byID := map[int]*domain.Group{}
	var order []int
	for _, n := range ingested {
		g, ok := byID[n.Cluster]
		if !ok {
			g = &domain.Group{ID: n.Cluster}
			byID[n.Cluster] = g
			order = append(order, n.Cluster)
		}
		g.Notes = append(g.Notes, n)
	}
	groups := make([]domain.Group, 0, len(order))
	for _, id := range order {
		g := byID[id]
		lists := make([][]string, len(g.Notes))
		for i, n := range g.Notes {
			lists[i] = n.Keywords
		}
		g.Label = s.labeler.Label(lists, s.opts.LabelTerms)
		groups = append(groups, *g)
	}
	return groups
}

// Query extracts keywords from one new note against the current noise set,
// without bootstrapping, and looks up the most similar ingested notes.
func (s *NoteServiceImpl) Query(text string, topK int) (domain.Analysis, error) {
	if topK <= 0 {
		topK = s.opts.SimilarTopK
	}
	lists := s.extractor.Extract([]string{text}, s.learner.Noise(), s.opts.TopN)
	out := domain.Analysis{Text: text, Keywords: keywords.Terms(lists[0])}
	if len(s.notes) == 0 {
		return out, nil
	}
	vec, err := s.embedder.Embed(out.Keywords)
	if err != nil {
		return out, err
	}
	similar, err := s.store.Search(vec, topK)
	if err != nil {
		return out, err
	}
	out.Similar = similar
	return out, nil
}

// Notes returns the notes of the last ingest.
func (s *NoteServiceImpl) Notes() []domain.Note { return s.notes }
