package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// NormalizerConfig controls text cleaning ahead of segmentation.
type NormalizerConfig struct {
	RemoveDigits bool  `yaml:"remove_digits"`
	Lowercase    *bool `yaml:"lowercase,omitempty"`
}

// SegmenterConfig selects the word segmenter.
type SegmenterConfig struct {
	Type      string   `yaml:"type"`
	DictPaths []string `yaml:"dict_paths,omitempty"`
}

// NoiseConfig configures the adaptive noise-word learner.
type NoiseConfig struct {
	Threshold     *float64 `yaml:"threshold,omitempty"`
	CachePath     string   `yaml:"cache_path"`
	Policy        string   `yaml:"policy"`
	StopwordsPath string   `yaml:"stopwords_path,omitempty"`
}

// KeywordsConfig configures keyword ranking.
type KeywordsConfig struct {
	TopN *int `yaml:"top_n,omitempty"`
}

// OpenAIEmbedderConfig holds configuration for the OpenAI-compatible embedder.
type OpenAIEmbedderConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKeyEnv      string `yaml:"api_key_env"`
	Model          string `yaml:"model"`
	TimeoutSecs    int    `yaml:"timeout_secs"`
	Dimension      int    `yaml:"dimension"`
	SendDimensions bool   `yaml:"send_dimensions"`
	MaxRetries     int    `yaml:"max_retries"`
}

// EmbedderConfig selects and configures the keyword embedder implementation.
type EmbedderConfig struct {
	Type   string                `yaml:"type"`
	OpenAI *OpenAIEmbedderConfig `yaml:"openai,omitempty"`
}

// ClusterConfig configures k-means grouping.
type ClusterConfig struct {
	K              int     `yaml:"k"`
	DeltaThreshold float64 `yaml:"delta_threshold"`
}

// SummarizerConfig configures group labels.
type SummarizerConfig struct {
	Type     string `yaml:"type"`
	MaxTerms int    `yaml:"max_terms"`
}

// LogConfig configures the process logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Segmenter  SegmenterConfig  `yaml:"segmenter"`
	Noise      NoiseConfig      `yaml:"noise"`
	Keywords   KeywordsConfig   `yaml:"keywords"`
	Embedder   EmbedderConfig   `yaml:"embedder"`
	Cluster    ClusterConfig    `yaml:"cluster"`
	Summarizer SummarizerConfig `yaml:"summarizer"`
	Log        LogConfig        `yaml:"log"`
}

// LowercaseEnabled reports whether text is lowercased; unset means true.
func (c NormalizerConfig) LowercaseEnabled() bool {
	return c.Lowercase == nil || *c.Lowercase
}

// ThresholdValue returns the IDF cutoff; unset means 1.5. Zero is a valid
// setting and disables adaptive noise words.
func (c NoiseConfig) ThresholdValue() float64 {
	if c.Threshold == nil {
		return defaultThreshold
	}
	return *c.Threshold
}

// Count returns the number of keywords per note; unset means 4. Values
// <= 0 produce empty keyword lists.
func (c KeywordsConfig) Count() int {
	if c.TopN == nil {
		return defaultTopN
	}
	return *c.TopN
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/notekw/config.yaml.
// If neither exists, it writes defaults to ~/.config/notekw/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "notekw", "config.yaml"), nil
}

// DefaultCachePath is where the noise-word set is persisted when unset.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "notekw", "noise_words.json")
}

const (
	defaultThreshold = 1.5
	defaultTopN      = 4
)

func defaultConfig() *AppConfig {
	threshold, topN := defaultThreshold, defaultTopN
	cfg := &AppConfig{
		Segmenter:  SegmenterConfig{Type: "gse"},
		Noise:      NoiseConfig{Threshold: &threshold, CachePath: DefaultCachePath(), Policy: "replace"},
		Keywords:   KeywordsConfig{TopN: &topN},
		Embedder:   EmbedderConfig{Type: "tfidf"},
		Cluster:    ClusterConfig{K: 3},
		Summarizer: SummarizerConfig{Type: "frequency", MaxTerms: 3},
		Log:        LogConfig{Level: "info"},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	if cfg.Segmenter.Type == "" {
		cfg.Segmenter.Type = "gse"
	}
	if cfg.Noise.Threshold == nil {
		threshold := defaultThreshold
		cfg.Noise.Threshold = &threshold
	}
	if cfg.Noise.CachePath == "" {
		cfg.Noise.CachePath = DefaultCachePath()
	}
	if cfg.Noise.Policy == "" {
		cfg.Noise.Policy = "replace"
	}
	if cfg.Keywords.TopN == nil {
		topN := defaultTopN
		cfg.Keywords.TopN = &topN
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "tfidf"
	}
	if cfg.Cluster.K == 0 {
		cfg.Cluster.K = 3
	}
	if cfg.Summarizer.Type == "" {
		cfg.Summarizer.Type = "frequency"
	}
	if cfg.Summarizer.MaxTerms == 0 {
		cfg.Summarizer.MaxTerms = 3
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Embedder.Type == "openai" && cfg.Embedder.OpenAI != nil {
		if cfg.Embedder.OpenAI.BaseURL == "" {
			cfg.Embedder.OpenAI.BaseURL = "https://api.openai.com/v1"
		}
		if cfg.Embedder.OpenAI.APIKeyEnv == "" {
			cfg.Embedder.OpenAI.APIKeyEnv = "OPENAI_API_KEY"
		}
		if cfg.Embedder.OpenAI.Model == "" {
			cfg.Embedder.OpenAI.Model = "text-embedding-3-small"
		}
		if cfg.Embedder.OpenAI.TimeoutSecs == 0 {
			cfg.Embedder.OpenAI.TimeoutSecs = 30
		}
		if cfg.Embedder.OpenAI.Dimension == 0 {
			cfg.Embedder.OpenAI.Dimension = 1536
		}
	}
}
