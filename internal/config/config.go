package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App       App       `mapstructure:"app"`
	Provider  Provider  `mapstructure:"provider"`
	Corpus    Corpus    `mapstructure:"corpus"`
	Retrieval Retrieval `mapstructure:"retrieval"`
}

// App holds general application configuration.
type App struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
}

// Provider holds generative text provider configuration. The values are
// read once at startup and are read-only afterwards.
type Provider struct {
	Name        string  `mapstructure:"name"`         // "chat" or "gemini"
	APIKey      string  `mapstructure:"api_key"`
	BaseURL     string  `mapstructure:"base_url"`     // chat provider endpoint
	Model       string  `mapstructure:"model"`
	Timeout     string  `mapstructure:"timeout"`      // per-request timeout, e.g. "30s"
	MaxAttempts int     `mapstructure:"max_attempts"` // retry budget for the gateway
	Temperature float32 `mapstructure:"temperature"`
}

// Corpus holds content-store configuration.
type Corpus struct {
	DBPath  string `mapstructure:"db_path"`  // sqlite database path, relative paths resolve under app.data_dir
	SiteURL string `mapstructure:"site_url"` // base URL for permalinks
}

// ResolvedDBPath returns the corpus database path, resolving relative paths
// under the application data directory.
func (c *Config) ResolvedDBPath() string {
	if filepath.IsAbs(c.Corpus.DBPath) {
		return c.Corpus.DBPath
	}
	return filepath.Join(c.App.DataDir, c.Corpus.DBPath)
}

// Retrieval holds retrieval assembly engine configuration.
type Retrieval struct {
	MaxDocuments int `mapstructure:"max_documents"` // corpus cap, most recent first
	MaxResults   int `mapstructure:"max_results"`   // ranked document cap
	MaxSnippets  int `mapstructure:"max_snippets"`  // snippet cap across documents
}

// RequestTimeout parses the provider timeout, defaulting to 30 seconds.
func (p Provider) RequestTimeout() time.Duration {
	if d, err := time.ParseDuration(p.Timeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

// Load reads configuration from .env, a config file and environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	// .env is optional; environment variables win when both are present.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("pagecraft")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/.pagecraft")
	}

	setDefaults(v)

	v.SetEnvPrefix("PAGECRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Provider API keys commonly live in plain environment variables.
	if cfg.Provider.APIKey == "" {
		cfg.Provider.APIKey = firstEnv("PAGECRAFT_PROVIDER_API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.debug", false)
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.data_dir", ".pagecraft")

	v.SetDefault("provider.name", "chat")
	v.SetDefault("provider.model", "gemini-flash-lite-latest")
	v.SetDefault("provider.timeout", "30s")
	v.SetDefault("provider.max_attempts", 3)
	v.SetDefault("provider.temperature", 0.7)

	v.SetDefault("corpus.db_path", "corpus.db")
	v.SetDefault("corpus.site_url", "")

	v.SetDefault("retrieval.max_documents", 50)
	v.SetDefault("retrieval.max_results", 10)
	v.SetDefault("retrieval.max_snippets", 20)
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if val := os.Getenv(name); val != "" {
			return val
		}
	}
	return ""
}
