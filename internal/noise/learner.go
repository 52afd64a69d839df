package noise

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"notekw/internal/logger"
	"notekw/internal/tfidf"
)

// DefaultThreshold is the IDF cutoff on the ln(N/df)+1 scale. A term seen
// in every document scores 1.0.
const DefaultThreshold = 1.5

// Policy selects how a fit combines with the current members.
type Policy string

const (
	// Replace discards prior members on every fit.
	Replace Policy = "replace"
	// Merge keeps prior members and adds the fresh ones.
	Merge Policy = "merge"
)

// ParsePolicy maps a config string to a Policy. Empty means Replace.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(s))) {
	case "", Replace:
		return Replace, nil
	case Merge:
		return Merge, nil
	default:
		return "", fmt.Errorf("unknown noise policy: %s", s)
	}
}

// Tokenizer turns raw text into tokens. normalize.Normalizer satisfies it.
type Tokenizer interface {
	Tokens(text string) []string
}

// Cache is durable storage for a single Set.
type Cache interface {
	Read() (set Set, found bool, err error)
	Write(set Set) error
}

// Config configures a Learner.
type Config struct {
	// Threshold is the IDF cutoff; nil means DefaultThreshold. A zero
	// threshold selects no members.
	Threshold *float64
	Policy    Policy
}

// Learner maintains the adaptive noise-word set. Fit is serialized
// internally; readers get immutable snapshots.
type Learner struct {
	mu        sync.RWMutex
	threshold float64
	policy    Policy
	tokenizer Tokenizer
	cache     Cache
	members   Set
}

// NewLearner creates a learner and loads any previously persisted set.
// A missing or unreadable cache starts empty; corrupt content is an error.
func NewLearner(cfg Config, tokenizer Tokenizer, cache Cache) (*Learner, error) {
	if tokenizer == nil {
		return nil, errors.New("noise learner: nil tokenizer")
	}
	if cache == nil {
		return nil, errors.New("noise learner: nil cache")
	}
	threshold := DefaultThreshold
	if cfg.Threshold != nil {
		threshold = *cfg.Threshold
	}
	if cfg.Policy == "" {
		cfg.Policy = Replace
	}
	l := &Learner{
		threshold: threshold,
		policy:    cfg.Policy,
		tokenizer: tokenizer,
		cache:     cache,
	}
	if err := l.Load(); err != nil {
		return nil, err
	}
	return l, nil
}

// Load replaces members with the persisted set.
func (l *Learner) Load() error {
	set, found, err := l.cache.Read()
	if err != nil {
		if errors.Is(err, ErrCorruptCache) {
			return err
		}
		logger.Warn("noise cache unreadable, starting empty: %v", err)
		set = Set{}
	} else if !found {
		logger.Debug("no noise cache yet, starting empty")
	}
	l.mu.Lock()
	l.members = set
	l.mu.Unlock()
	return nil
}

// Threshold returns the IDF cutoff.
func (l *Learner) Threshold() float64 { return l.threshold }

// Policy returns the fit policy.
func (l *Learner) Policy() Policy { return l.policy }

// Fit learns noise words from corpus: every distinct term whose IDF is
// strictly below the threshold. The new set is persisted before it becomes
// visible; on a persist error members are left unchanged. An empty corpus is
// a no-op.
func (l *Learner) Fit(corpus []string) error {
	if len(corpus) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	fresh := l.score(corpus)
	next := fresh
	if l.policy == Merge {
		next = l.members.Union(fresh)
	}
	if err := l.cache.Write(next); err != nil {
		return fmt.Errorf("persist noise words: %w", err)
	}
	l.members = next
	logger.Info("learned %d noise words from %d documents (threshold %.3f)", next.Len(), len(corpus), l.threshold)
	return nil
}

// Scores returns the IDF of every distinct term in corpus, using the same
// fit-only scoring as Fit. It does not touch members.
func (l *Learner) Scores(corpus []string) map[string]float64 {
	return l.model(corpus).IDFs()
}

func (l *Learner) score(corpus []string) Set {
	m := l.model(corpus)
	var words []string
	for _, term := range m.Terms() {
		idf, _ := m.IDF(term)
		if idf < l.threshold {
			words = append(words, term)
		}
	}
	return NewSet(words...)
}

func (l *Learner) model(corpus []string) *tfidf.Model {
	docs := make([]string, len(corpus))
	for i, text := range corpus {
		docs[i] = strings.Join(l.tokenizer.Tokens(text), " ")
	}
	m := tfidf.New(tfidf.Options{})
	m.Fit(docs)
	return m
}

// IsNoise reports whether word is a current member.
func (l *Learner) IsNoise(word string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.members.Contains(word)
}

// Noise returns a snapshot of the current members.
func (l *Learner) Noise() Set {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.members
}

// Empty reports whether no noise words are known yet.
func (l *Learner) Empty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.members.Empty()
}
