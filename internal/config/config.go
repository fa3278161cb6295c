package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Transport modes.
const (
	ModeStdio = "stdio"
	ModeHTTP  = "http"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
	Feed      FeedConfig      `yaml:"feed"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	// Seed fixes the random generators. Zero picks a fresh seed per run.
	Seed uint64 `yaml:"seed"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

type FeedConfig struct {
	Size         int    `yaml:"size"`
	RecentLimit  int    `yaml:"recent_limit"`
	UnreadPolicy string `yaml:"unread_policy"`
}

type PipelineConfig struct {
	Size int `yaml:"size"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: ModeStdio,
		},
		Log: LogConfig{
			Level: "info",
		},
		Feed: FeedConfig{
			Size:         20,
			RecentLimit:  5,
			UnreadPolicy: "unread",
		},
		Pipeline: PipelineConfig{
			Size: 20,
		},
	}
}

// Load reads an optional .env file, an optional YAML file and environment variables,
// in that order of increasing precedence.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	cfg := Default()

	if path := os.Getenv("HIREBOARD_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("HIREBOARD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if err := intFromEnv("HIREBOARD_SERVER_PORT", &cfg.Server.Port); err != nil {
		return Config{}, err
	}
	if mode := os.Getenv("HIREBOARD_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("HIREBOARD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if path := os.Getenv("HIREBOARD_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}
	if err := intFromEnv("HIREBOARD_FEED_SIZE", &cfg.Feed.Size); err != nil {
		return Config{}, err
	}
	if err := intFromEnv("HIREBOARD_FEED_RECENT_LIMIT", &cfg.Feed.RecentLimit); err != nil {
		return Config{}, err
	}
	if policy := os.Getenv("HIREBOARD_FEED_UNREAD_POLICY"); policy != "" {
		cfg.Feed.UnreadPolicy = policy
	}
	if err := intFromEnv("HIREBOARD_PIPELINE_SIZE", &cfg.Pipeline.Size); err != nil {
		return Config{}, err
	}
	if seedStr := os.Getenv("HIREBOARD_SEED"); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid HIREBOARD_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}
	switch c.Transport.Mode {
	case ModeStdio, ModeHTTP:
	default:
		errs = append(errs, fmt.Errorf("transport.mode must be %q or %q, got %q", ModeStdio, ModeHTTP, c.Transport.Mode))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log.level %q", c.Log.Level))
	}
	if c.Feed.Size < 0 {
		errs = append(errs, fmt.Errorf("feed.size must not be negative: %d", c.Feed.Size))
	}
	if c.Feed.RecentLimit < 0 {
		errs = append(errs, fmt.Errorf("feed.recent_limit must not be negative: %d", c.Feed.RecentLimit))
	}
	switch c.Feed.UnreadPolicy {
	case "", "unread", "random":
	default:
		errs = append(errs, fmt.Errorf("unknown feed.unread_policy %q", c.Feed.UnreadPolicy))
	}
	if c.Pipeline.Size < 0 {
		errs = append(errs, fmt.Errorf("pipeline.size must not be negative: %d", c.Pipeline.Size))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func intFromEnv(key string, dst *int) error {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
