package core

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration options for the DesignandCart stores.
// It supports four-layer configuration priority:
//  1. Default values (lowest priority)
//  2. YAML config file
//  3. Environment variables
//  4. Functional options (highest priority)
//
// Example usage:
//
//	cfg, err := NewConfig(
//	    WithStorageProvider("redis"),
//	    WithRedisURL("redis://localhost:6379"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
type Config struct {
	// Name identifies the service in logs and telemetry
	Name string `yaml:"name"`

	// Storage configuration
	Storage StorageConfig `yaml:"storage"`

	// Demo configuration
	Demo DemoConfig `yaml:"demo"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`

	// Telemetry configuration (optional)
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// loadErr records a config-file failure raised inside an option so
	// NewConfig can surface it
	loadErr error
}

// StorageConfig selects and configures the persistence backend.
// Provider is one of "inmemory", "file", "redis".
type StorageConfig struct {
	Provider  string `yaml:"provider"`
	RedisURL  string `yaml:"redis_url"`
	Namespace string `yaml:"namespace"`
	Dir       string `yaml:"dir"`
}

// DemoConfig controls demo-data seeding. When Seed is true each store
// populates its key with the demo collection on first load.
type DemoConfig struct {
	Seed bool `yaml:"seed"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TelemetryConfig contains observability configuration for tracing.
// This is an optional module - telemetry is only initialized when
// Enabled=true. Endpoint is an OTLP receiver address; when empty, spans
// are written to stdout.
type TelemetryConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Endpoint    string `yaml:"endpoint"`
	ServiceName string `yaml:"service_name"`
}

// Option is a functional option for configuring the stores
type Option func(*Config)

// NewConfig creates a configuration with the standard priority layers
func NewConfig(opts ...Option) (*Config, error) {
	config := defaultConfig()

	// Layer 2: optional config file pointed at by env
	if path := os.Getenv("DC_CONFIG_FILE"); path != "" {
		if err := config.loadFile(path); err != nil {
			return nil, err
		}
	}

	// Layer 3: environment variables
	config.applyEnvironment()

	// Layer 4: explicit options win
	for _, opt := range opts {
		opt(config)
	}
	if config.loadErr != nil {
		return nil, config.loadErr
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Name: "designandcart",
		Storage: StorageConfig{
			Provider: "inmemory",
			Dir:      ".designandcart",
		},
		Demo: DemoConfig{
			Seed: true,
		},
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "designandcart",
		},
	}
}

// loadFile overlays YAML config file values onto the current config
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %q: %w", path, ErrMissingConfiguration)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %q: %w", path, ErrInvalidConfiguration)
	}
	return nil
}

// applyEnvironment overlays environment variables onto the current config
func (c *Config) applyEnvironment() {
	if v := os.Getenv("DC_SERVICE_NAME"); v != "" {
		c.Name = v
	}
	if v := os.Getenv("DC_STORAGE_PROVIDER"); v != "" {
		c.Storage.Provider = v
	}
	if v := firstEnv("DC_REDIS_URL", "REDIS_URL"); v != "" {
		c.Storage.RedisURL = v
		// A Redis URL with no explicit provider implies the Redis backend
		if os.Getenv("DC_STORAGE_PROVIDER") == "" {
			c.Storage.Provider = "redis"
		}
	}
	if v := os.Getenv("DC_STORAGE_NAMESPACE"); v != "" {
		c.Storage.Namespace = v
	}
	if v := os.Getenv("DC_STORAGE_DIR"); v != "" {
		c.Storage.Dir = v
	}
	if v := os.Getenv("DC_DEMO_SEED"); v != "" {
		c.Demo.Seed = v == "true" || v == "1"
	}
	if v := os.Getenv("DC_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("DC_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("DC_TELEMETRY_ENABLED"); v != "" {
		c.Telemetry.Enabled = v == "true" || v == "1"
	}
	if v := firstEnv("DC_TELEMETRY_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		c.Telemetry.Endpoint = v
	}
	if v := firstEnv("DC_TELEMETRY_SERVICE_NAME", "OTEL_SERVICE_NAME"); v != "" {
		c.Telemetry.ServiceName = v
	}
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Validate checks the configuration for inconsistencies
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage.Provider) {
	case "inmemory", "file", "redis":
	default:
		return fmt.Errorf("unknown storage provider %q: %w", c.Storage.Provider, ErrInvalidConfiguration)
	}
	if strings.ToLower(c.Storage.Provider) == "redis" && c.Storage.RedisURL == "" {
		return fmt.Errorf("redis provider requires a redis URL: %w", ErrMissingConfiguration)
	}
	if strings.ToLower(c.Storage.Provider) == "file" && strings.TrimSpace(c.Storage.Dir) == "" {
		return fmt.Errorf("file provider requires a storage dir: %w", ErrMissingConfiguration)
	}
	return nil
}

// BuildStorage constructs the configured Storage backend
func (c *Config) BuildStorage(logger Logger) (Storage, error) {
	switch strings.ToLower(c.Storage.Provider) {
	case "redis":
		return NewRedisStorage(RedisStorageOptions{
			RedisURL:  c.Storage.RedisURL,
			Namespace: c.Storage.Namespace,
			Logger:    logger,
		})
	case "file":
		fs, err := NewFileStorage(c.Storage.Dir)
		if err != nil {
			return nil, err
		}
		fs.SetLogger(logger)
		return fs, nil
	default:
		ms := NewMemoryStorage()
		ms.SetLogger(logger)
		return ms, nil
	}
}

// Functional options

// WithName sets the service name
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithStorageProvider selects the persistence backend
func WithStorageProvider(provider string) Option {
	return func(c *Config) {
		c.Storage.Provider = provider
	}
}

// WithRedisURL sets the Redis connection URL and selects the Redis backend
func WithRedisURL(url string) Option {
	return func(c *Config) {
		c.Storage.RedisURL = url
		c.Storage.Provider = "redis"
	}
}

// WithNamespace sets the storage key namespace
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Storage.Namespace = namespace
	}
}

// WithStorageDir selects the file backend rooted at dir
func WithStorageDir(dir string) Option {
	return func(c *Config) {
		c.Storage.Dir = dir
		c.Storage.Provider = "file"
	}
}

// WithDemoSeed toggles demo-data seeding on first load
func WithDemoSeed(seed bool) Option {
	return func(c *Config) {
		c.Demo.Seed = seed
	}
}

// WithLogLevel sets the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.Logging.Level = level
	}
}

// WithTelemetry enables tracing against the given OTLP endpoint.
// An empty endpoint selects the stdout exporter.
func WithTelemetry(endpoint string) Option {
	return func(c *Config) {
		c.Telemetry.Enabled = true
		c.Telemetry.Endpoint = endpoint
	}
}

// WithConfigFile overlays a YAML config file at option-apply time.
// Options listed after it still win.
func WithConfigFile(path string) Option {
	return func(c *Config) {
		if err := c.loadFile(path); err != nil && c.loadErr == nil {
			c.loadErr = err
		}
	}
}
