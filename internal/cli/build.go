package cli

import (
	"fmt"
	"time"

	"notekw/internal/cluster"
	"notekw/internal/config"
	"notekw/internal/domain"
	"notekw/internal/embedding"
	"notekw/internal/embedding/openai"
	"notekw/internal/embedding/tfidf"
	"notekw/internal/keywords"
	"notekw/internal/noise"
	"notekw/internal/normalize"
	"notekw/internal/segment"
	"notekw/internal/service"
	"notekw/internal/summarizer"
	"notekw/internal/vectorstore"
	"notekw/internal/vectorstore/memory"
)

func buildSegmenter(cfg *config.AppConfig) (segment.Segmenter, error) {
	switch cfg.Segmenter.Type {
	case "gse", "":
		return segment.NewDictionary(cfg.Segmenter.DictPaths...)
	case "fields":
		return segment.NewFields(), nil
	default:
		return nil, fmt.Errorf("unknown segmenter: %s", cfg.Segmenter.Type)
	}
}

func buildLearner(cfg *config.AppConfig, tok noise.Tokenizer) (*noise.Learner, error) {
	policy, err := noise.ParsePolicy(cfg.Noise.Policy)
	if err != nil {
		return nil, err
	}
	return noise.NewLearner(noise.Config{
		Threshold: cfg.Noise.Threshold,
		Policy:    policy,
	}, tok, noise.NewFileCache(cfg.Noise.CachePath))
}

func buildEmbedder(cfg *config.AppConfig) (embedding.Embedder, error) {
	switch cfg.Embedder.Type {
	case "tfidf", "":
		return tfidf.NewEmbedder(), nil
	case "openai":
		oc := cfg.Embedder.OpenAI
		if oc == nil {
			return nil, fmt.Errorf("openai embedder config missing")
		}
		client, err := openai.NewClient(openai.Config{
			BaseURL:        oc.BaseURL,
			APIKeyEnv:      oc.APIKeyEnv,
			Model:          oc.Model,
			Timeout:        time.Duration(oc.TimeoutSecs) * time.Second,
			Dimension:      oc.Dimension,
			SendDimensions: oc.SendDimensions,
			MaxRetries:     oc.MaxRetries,
		})
		if err != nil {
			return nil, fmt.Errorf("openai embedder init failed: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown embedder: %s", cfg.Embedder.Type)
	}
}

func buildService(cfg *config.AppConfig) (*service.NoteServiceImpl, error) {
	seg, err := buildSegmenter(cfg)
	if err != nil {
		return nil, err
	}
	norm := normalize.New(seg, normalize.Options{
		RemoveDigits: cfg.Normalizer.RemoveDigits,
		Lowercase:    cfg.Normalizer.LowercaseEnabled(),
	})

	learner, err := buildLearner(cfg, norm)
	if err != nil {
		return nil, err
	}
	stopwords, err := noise.LoadStopwords(cfg.Noise.StopwordsPath)
	if err != nil {
		return nil, err
	}
	extractor, err := keywords.NewExtractor(norm, stopwords)
	if err != nil {
		return nil, err
	}

	emb, err := buildEmbedder(cfg)
	if err != nil {
		return nil, err
	}
	km, err := cluster.NewKMeans(cfg.Cluster.DeltaThreshold)
	if err != nil {
		return nil, err
	}

	var st vectorstore.Storage = memory.NewStorage()

	var lab domain.Labeler
	switch cfg.Summarizer.Type {
	case "frequency", "":
		lab = summarizer.NewFrequencySummarizer()
	default:
		return nil, fmt.Errorf("unknown summarizer: %s", cfg.Summarizer.Type)
	}

	return service.NewNoteService(learner, extractor, emb, km, st, lab, service.Options{
		TopN:       cfg.Keywords.Count(),
		Clusters:   cfg.Cluster.K,
		LabelTerms: cfg.Summarizer.MaxTerms,
	}), nil
}
