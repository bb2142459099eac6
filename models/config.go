// Package models defines data structures shared across the pipeline.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingSourcesPath  = errors.New("sources_path must not be empty")
	ErrMissingArticlesPath = errors.New("articles_path must not be empty")
	ErrMissingKBPath       = errors.New("kb_path must not be empty")
	ErrBadTemperature      = errors.New("llm temperature must be between 0 and 2")
	ErrBadCacheTTL         = errors.New("cache_ttl must be a valid duration")
)

// Config holds application-level settings loaded from config.yaml.
// Feed sources live in a separate JSON file (see SourceList); only its
// path is part of this config.
type Config struct {
	SourcesPath   string `yaml:"sources_path"`
	ArticlesPath  string `yaml:"articles_path"`
	KBPath        string `yaml:"kb_path"`
	KBDataPath    string `yaml:"kb_data_path"`
	ReviewLogPath string `yaml:"review_log_path"`
	DBPath        string `yaml:"db_path"`
	CacheDir      string `yaml:"cache_dir"`
	CacheTTL      string `yaml:"cache_ttl"`
	Version       string `yaml:"version"`

	// EnrichSummaries controls whether entries without a feed summary get
	// one extracted from the article page.
	EnrichSummaries bool `yaml:"enrich_summaries"`

	LLM LLMConfig `yaml:"llm"`
}

// LLMConfig configures the external analysis backend.
type LLMConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	Temperature    float32 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	APIKeyEnv      string  `yaml:"api_key_env"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		SourcesPath:   "data/sources.json",
		ArticlesPath:  "data/articles.json",
		KBPath:        "knowledge-base.js",
		KBDataPath:    "knowledge-base.json",
		ReviewLogPath: "data/review_log.json",
		DBPath:        "rtlib.db",
		CacheDir:      ".cache/feeds",
		CacheTTL:      "30m",
		Version:       "4.1-enhanced",
		LLM: LLMConfig{
			BaseURL:        "https://api.moonshot.cn/v1",
			Model:          "kimi-k2.5",
			Temperature:    0.7,
			TimeoutSeconds: 60,
			APIKeyEnv:      "KIMI_API_KEY",
		},
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.SourcesPath == "" {
		return ErrMissingSourcesPath
	}
	if c.ArticlesPath == "" {
		return ErrMissingArticlesPath
	}
	if c.KBPath == "" {
		return ErrMissingKBPath
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return ErrBadTemperature
	}
	if c.CacheTTL != "" {
		if _, err := time.ParseDuration(c.CacheTTL); err != nil {
			return fmt.Errorf("%w: %q", ErrBadCacheTTL, c.CacheTTL)
		}
	}
	return nil
}

// CacheTTLDuration returns the parsed cache TTL, or zero if unset.
func (c *Config) CacheTTLDuration() time.Duration {
	if c.CacheTTL == "" {
		return 0
	}
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return 0
	}
	return d
}
