package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	App       AppConfig
	News      NewsConfig
	LLM       LLMConfig
	Placement PlacementConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// AppConfig holds the defaults the globe is driven with
type AppConfig struct {
	DefaultCountry  string
	DefaultCategory string
	NewsAmount      int           // markers per batch
	RefreshInterval time.Duration // auto refresh period
	AutoRefresh     bool
}

// NewsConfig holds news provider configuration
type NewsConfig struct {
	GNewsAPIKey       string
	NewsAPIKey        string
	CacheTTL          time.Duration
	RequestsPerSecond float64
	Burst             int
	Timeout           time.Duration
}

// LLMConfig holds text model configuration
type LLMConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// PlacementConfig selects how markers are positioned
type PlacementConfig struct {
	Strategy string // spiral, llm
}

// Load reads configuration from .env, the config file and environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	return load("")
}

// LoadFile is like Load but reads the config file at path, which must exist.
func LoadFile(path string) (*Config, error) {
	return load(path)
}

func load(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	// Set config file name and paths
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.globex")
	}

	setDefaults(v)

	// Read from environment variables
	v.SetEnvPrefix("GLOBEX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("app.defaultCountry", "us")
	v.SetDefault("app.defaultCategory", "general")
	v.SetDefault("app.newsAmount", 10)
	v.SetDefault("app.refreshInterval", "5m")
	v.SetDefault("app.autoRefresh", false)

	v.SetDefault("news.gnewsAPIKey", "")
	v.SetDefault("news.newsAPIKey", "")
	v.SetDefault("news.cacheTTL", "5m")
	v.SetDefault("news.requestsPerSecond", 1)
	v.SetDefault("news.burst", 3)
	v.SetDefault("news.timeout", "15s")

	v.SetDefault("llm.apiKey", "")
	v.SetDefault("llm.baseURL", "https://openrouter.ai/api/v1")
	v.SetDefault("llm.model", "google/gemini-flash-1.5")
	v.SetDefault("llm.maxTokens", 250)
	v.SetDefault("llm.timeout", "30s")

	v.SetDefault("placement.strategy", "spiral")
}

// bindLegacyEnv keeps the unprefixed variable names used in existing .env
// files working. Prefixed names still win when both are set.
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"server.port":      {"GLOBEX_SERVER_PORT", "PORT"},
		"news.gnewsAPIKey": {"GLOBEX_NEWS_GNEWSAPIKEY", "GNEWS_API_KEY"},
		"news.newsAPIKey":  {"GLOBEX_NEWS_NEWSAPIKEY", "NEWSAPI_API_KEY"},
		"llm.apiKey":       {"GLOBEX_LLM_APIKEY", "OPENROUTER_API_KEY"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

func loadDotEnv(path string) error {
	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.App.NewsAmount <= 0 {
		return fmt.Errorf("app.newsAmount must be positive, got %d", c.App.NewsAmount)
	}
	switch strings.ToLower(c.Placement.Strategy) {
	case "spiral", "llm":
	default:
		return fmt.Errorf("unknown placement strategy %q", c.Placement.Strategy)
	}
	return nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
