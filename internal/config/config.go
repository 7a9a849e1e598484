package config

import (
	"errors"
	"os"
	"runtime"
)

const (
	DefaultBaseURL     = "https://api.openai.com/v1"
	DefaultModel       = "gpt-3.5-turbo"
	DefaultMaxTokens   = 1750
	DefaultTemperature = 0.5
	DefaultChunkWords  = 1500
)

// ErrMissingAPIKey — OPENAI_API_KEY пуст или не задан
var ErrMissingAPIKey = errors.New("the OPENAI_API_KEY environment variable is not set")

type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
	ChunkWords  int
	Concurrency int
}

// Load собирает конфигурацию один раз при старте; компоненты получают её параметром
func Load() (*Config, error) {
	key := os.Getenv("OPENAI_API_KEY")
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return &Config{
		APIKey:      key,
		BaseURL:     getenv("OPENAI_BASE_URL", DefaultBaseURL),
		Model:       DefaultModel,
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		ChunkWords:  DefaultChunkWords,
		Concurrency: runtime.NumCPU(),
	}, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
