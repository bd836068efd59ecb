// Package config loads YAML configuration with environment variable expansion.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/lookbook-io/lookbook/internal/domain/rank"
)

// Config holds the lookbook API configuration.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Database  DatabaseConfig  `yaml:"database"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Auth      AuthConfig      `yaml:"auth"`
	Ranking   RankingConfig   `yaml:"ranking"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// AuthConfig holds API authentication settings.
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Port            int `yaml:"port"`
	ReadTimeoutSec  int `yaml:"read_timeout_sec"`
	WriteTimeoutSec int `yaml:"write_timeout_sec"`
	ShutdownSec     int `yaml:"shutdown_timeout_sec"`
}

// DatabaseConfig holds Redis connection settings.
type DatabaseConfig struct {
	Addrs            []string `yaml:"addrs"`
	Username         string   `yaml:"username"`
	Password         string   `yaml:"password"`
	DB               int      `yaml:"db"`
	ReadinessTimeout int      `yaml:"readiness_timeout_sec"`
}

// EmbeddingConfig holds embedding provider and model settings. Text and image
// vectorizers must share an embedding space; they usually point at the two
// towers of one CLIP-style model.
type EmbeddingConfig struct {
	Provider ProviderConfig   `yaml:"provider"`
	Text     VectorizerConfig `yaml:"text"`
	Image    VectorizerConfig `yaml:"image"`

	// CacheTTLSec expires cached query embeddings. Zero takes the default;
	// negative keeps entries forever.
	CacheTTLSec int `yaml:"cache_ttl_sec"`
}

// ProviderConfig holds embedding provider settings.
type ProviderConfig struct {
	Name    string `yaml:"name"`
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// VectorizerConfig holds vectorizer settings.
type VectorizerConfig struct {
	Model      string `yaml:"model"`
	Dimensions int    `yaml:"dimensions"`
}

// RankingConfig overrides scoring weights and retention thresholds.
// A nil field keeps the built-in default; zero is a valid override, so a
// penalty can be switched off from config.
type RankingConfig struct {
	TextWeight           *float64 `yaml:"text_weight"`
	ImageWeight          *float64 `yaml:"image_weight"`
	ColorBonus           *float64 `yaml:"color_bonus"`
	NameKeywordBonus     *float64 `yaml:"name_keyword_bonus"`
	DescKeywordBonus     *float64 `yaml:"desc_keyword_bonus"`
	KeywordBonusCap      *float64 `yaml:"keyword_bonus_cap"`
	HomePenalty          *float64 `yaml:"home_penalty"`
	SleepBanPenalty      *float64 `yaml:"sleep_ban_penalty"`
	SleepSoftPenalty     *float64 `yaml:"sleep_soft_penalty"`
	CategoryThreshold    *float64 `yaml:"category_threshold"`
	CompositeThreshold   *float64 `yaml:"composite_threshold"`
	VectorOnlyThreshold  *float64 `yaml:"vector_only_threshold"`
	ImageSearchThreshold *float64 `yaml:"image_search_threshold"`
}

// Weights materializes the ranking overrides on top of the defaults.
func (r RankingConfig) Weights() rank.Weights {
	w := rank.DefaultWeights()
	override(&w.TextWeight, r.TextWeight)
	override(&w.ImageWeight, r.ImageWeight)
	override(&w.ColorBonus, r.ColorBonus)
	override(&w.NameKeywordBonus, r.NameKeywordBonus)
	override(&w.DescKeywordBonus, r.DescKeywordBonus)
	override(&w.KeywordBonusCap, r.KeywordBonusCap)
	override(&w.HomePenalty, r.HomePenalty)
	override(&w.SleepBanPenalty, r.SleepBanPenalty)
	override(&w.SleepSoftPenalty, r.SleepSoftPenalty)
	override(&w.CategoryThreshold, r.CategoryThreshold)
	override(&w.CompositeThreshold, r.CompositeThreshold)
	override(&w.VectorOnlyThreshold, r.VectorOnlyThreshold)
	override(&w.ImageSearchThreshold, r.ImageSearchThreshold)
	return w
}

func override(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

// Load reads configuration from a YAML file by environment name (local, dev, prod).
func Load(env string) (Config, error) {
	// Optional .env file; missing is fine.
	_ = godotenv.Load()

	configPath := findConfigPath(env)

	data, err := os.ReadFile(filepath.Clean(configPath))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	// Substitute env variables of the form ${VAR}
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics.
func MustLoad(env string) Config {
	cfg, err := Load(env)
	if err != nil {
		panic(err)
	}
	return cfg
}

// GetEnv returns the current environment from the ENV variable, defaulting to "local".
func GetEnv() string {
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "local"
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.ReadTimeoutSec <= 0 {
		c.HTTP.ReadTimeoutSec = 10
	}
	if c.HTTP.WriteTimeoutSec <= 0 {
		c.HTTP.WriteTimeoutSec = 30
	}
	if c.HTTP.ShutdownSec <= 0 {
		c.HTTP.ShutdownSec = 10
	}
	if c.Database.ReadinessTimeout <= 0 {
		c.Database.ReadinessTimeout = 10
	}
	if c.Embedding.Provider.Name == "" {
		c.Embedding.Provider.Name = "openai"
	}
	if c.Embedding.Text.Dimensions <= 0 {
		c.Embedding.Text.Dimensions = 512
	}
	if c.Embedding.Image.Dimensions <= 0 {
		c.Embedding.Image.Dimensions = c.Embedding.Text.Dimensions
	}
	if c.Embedding.CacheTTLSec == 0 {
		c.Embedding.CacheTTLSec = 86400
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("http.port must be between 1 and 65535, got %d", c.HTTP.Port)
	}
	if len(c.Database.Addrs) == 0 {
		return fmt.Errorf("database.addrs is required")
	}
	if c.Embedding.Text.Model == "" {
		return fmt.Errorf("embedding.text.model is required")
	}
	if c.Embedding.Image.Dimensions != c.Embedding.Text.Dimensions {
		return fmt.Errorf(
			"embedding.image.dimensions (%d) must match embedding.text.dimensions (%d)",
			c.Embedding.Image.Dimensions, c.Embedding.Text.Dimensions,
		)
	}
	for _, f := range []struct {
		name  string
		value *float64
	}{
		{"ranking.category_threshold", c.Ranking.CategoryThreshold},
		{"ranking.composite_threshold", c.Ranking.CompositeThreshold},
		{"ranking.vector_only_threshold", c.Ranking.VectorOnlyThreshold},
		{"ranking.image_search_threshold", c.Ranking.ImageSearchThreshold},
	} {
		if f.value != nil && (*f.value < 0 || *f.value > 1) {
			return fmt.Errorf("%s must be between 0 and 1, got %g", f.name, *f.value)
		}
	}
	return nil
}

// findConfigPath locates the config file.
func findConfigPath(env string) string {
	filename := fmt.Sprintf("%s.yaml", env)

	// 1. Check ./config/
	if path := filepath.Join("config", filename); fileExists(path) {
		return path
	}

	// 2. Check relative to the source file
	_, b, _, _ := runtime.Caller(0)
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(b))) // internal/config -> project root
	if path := filepath.Join(projectRoot, "config", filename); fileExists(path) {
		return path
	}

	// 3. Fallback to ./config/
	return filepath.Join("config", filename)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
