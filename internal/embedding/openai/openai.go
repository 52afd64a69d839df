package openai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"notekw/internal/embedding"
	"notekw/internal/logger"
)

// DefaultDimension matches text-embedding-3-small.
const DefaultDimension = 1536

// Client is an OpenAI-compatible embeddings client implementing the Embedder interface.
// It also understands the Ollama-native response shape.
type Client struct {
	baseURL        string
	apiKey         string
	model          string
	timeout        time.Duration
	dimension      int
	sendDimensions bool
	client         *http.Client
	maxRetries     int
}

// Config configures the OpenAI-compatible embeddings client.
type Config struct {
	BaseURL   string
	APIKeyEnv string
	Model     string
	Timeout   time.Duration
	// Dimension is the expected vector length. Empty keyword lists embed
	// to a zero vector of this length without a request.
	Dimension int
	// SendDimensions asks the server to truncate to Dimension.
	SendDimensions bool
	MaxRetries     int
}

// NewClient creates a new embeddings client using the provided configuration.
// An empty APIKeyEnv disables authentication (local Ollama).
func NewClient(cfg Config) (*Client, error) {
	var key string
	if cfg.APIKeyEnv != "" {
		key = os.Getenv(cfg.APIKeyEnv)
		if key == "" {
			return nil, fmt.Errorf("missing API key in env %s", cfg.APIKeyEnv)
		}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.openai.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "text-embedding-3-small"
	}
	if cfg.Dimension <= 0 {
		cfg.Dimension = DefaultDimension
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	t := cfg.Timeout
	if t == 0 {
		t = 30 * time.Second
	}
	return &Client{
		baseURL:        cfg.BaseURL,
		apiKey:         key,
		model:          cfg.Model,
		timeout:        t,
		dimension:      cfg.Dimension,
		sendDimensions: cfg.SendDimensions,
		client:         &http.Client{Timeout: t},
		maxRetries:     cfg.MaxRetries,
	}, nil
}

// Name returns the identifier of this embedder implementation.
func (c *Client) Name() string { return "openai" }

// Prepare is not required for remote embedding.
func (c *Client) Prepare(corpus [][]string) error { return nil }

// Dimension returns the dimensionality of the produced embedding vectors.
func (c *Client) Dimension() int { return c.dimension }

// Embed returns an embedding vector for the keywords joined as one sentence.
func (c *Client) Embed(keywords []string) ([]float64, error) {
	if len(keywords) == 0 {
		return embedding.Zero(c.dimension), nil
	}
	v, err := c.embedText(embedding.Sentence(keywords))
	if err != nil {
		return nil, err
	}
	if len(v) != c.dimension {
		return nil, fmt.Errorf("embedding dimension %d, expected %d", len(v), c.dimension)
	}
	return v, nil
}

type reqBody struct {
	Input      string `json:"input,omitempty"`
	Prompt     string `json:"prompt,omitempty"`
	Model      string `json:"model"`
	Dimensions int    `json:"dimensions,omitempty"`
}

func (c *Client) embedText(text string) ([]float64, error) {
	url := fmt.Sprintf("%s/embeddings", c.baseURL)
	body := reqBody{Input: text, Prompt: text, Model: c.model}
	if c.sendDimensions {
		body.Dimensions = c.dimension
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			if attempt < c.maxRetries {
				logger.Debug("embeddings request failed (attempt %d): %v", attempt+1, err)
				time.Sleep(retryDelay(attempt))
				continue
			}
			return nil, err
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			wait := retryDelay(attempt)
			// Respect Retry-After if provided
			if ra := resp.Header.Get("Retry-After"); ra != "" {
				if secs, err := strconv.Atoi(ra); err == nil {
					wait = time.Duration(secs) * time.Second
				}
			}
			_ = resp.Body.Close()
			if attempt < c.maxRetries {
				logger.Debug("embeddings server returned %s, retrying in %s", resp.Status, wait)
				time.Sleep(wait)
				continue
			}
			return nil, fmt.Errorf("openai embeddings failed: %s", resp.Status)
		}

		if resp.StatusCode >= 300 {
			_ = resp.Body.Close()
			return nil, fmt.Errorf("openai embeddings failed: %s", resp.Status)
		}

		payload, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			if attempt < c.maxRetries {
				time.Sleep(retryDelay(attempt))
				continue
			}
			return nil, err
		}
		if v := decodeEmbedding(payload); v != nil {
			return v, nil
		}
		if attempt < c.maxRetries {
			time.Sleep(retryDelay(attempt))
			continue
		}
	}
	return nil, errors.New("no embedding returned")
}

// decodeEmbedding accepts the OpenAI shape {"data":[{"embedding":[...]}]}
// and the Ollama-native shape {"embedding":[...]}.
func decodeEmbedding(payload []byte) []float64 {
	var openaiOut struct {
		Data []struct {
			Embedding []float64 `json:"embedding"`
		} `json:"data"`
	}
	if err := json.Unmarshal(payload, &openaiOut); err == nil {
		if len(openaiOut.Data) > 0 && len(openaiOut.Data[0].Embedding) > 0 {
			return openaiOut.Data[0].Embedding
		}
	}
	var ollamaOut struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(payload, &ollamaOut); err == nil {
		if len(ollamaOut.Embedding) > 0 {
			return ollamaOut.Embedding
		}
	}
	return nil
}

func retryDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 5 {
		attempt = 5
	}
	base := 200 * time.Millisecond
	// exponential backoff capped at 5s
	d := base << attempt
	if d > 5*time.Second {
		d = 5 * time.Second
	}
	return d
}
