// Package config loads the service configuration with koanf.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults that other packages reference directly.
const (
	DefaultServerPort         = 8080
	DefaultMaxRequestSize     = 1 << 20
	DefaultRequestTimeout     = 30 * time.Second
	DefaultCacheTTL           = 5 * time.Minute
	DefaultSearchIndex        = "quotations"
	DefaultEventTopicPrefix   = "quotations"
	DefaultLevenshteinMinimum = 0.9
)

// EnvPrefix marks environment variables read by Load.
const EnvPrefix = "APP_"

// Config is the root configuration.
type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Auth      AuthConfig      `koanf:"auth"`
	Database  DatabaseConfig  `koanf:"database"  validate:"required"`
	Search    SearchConfig    `koanf:"search"`
	Cache     CacheConfig     `koanf:"cache"`
	Events    EventsConfig    `koanf:"events"`
	Directory DirectoryConfig `koanf:"directory"`
	Review    ReviewConfig    `koanf:"review"`
	Seed      SeedConfig      `koanf:"seed"`
}

type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

type ServerConfig struct {
	Port            int           `koanf:"port"             validate:"required,min=1,max=65535"`
	Host            string        `koanf:"host"             validate:"required"`
	ReadTimeout     time.Duration `koanf:"read_timeout"     validate:"required,min=1s"`
	WriteTimeout    time.Duration `koanf:"write_timeout"    validate:"required,min=1s"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"     validate:"required,min=1s"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"required,min=1s"`
	RequestTimeout  time.Duration `koanf:"request_timeout"  validate:"required,min=100ms"`
	MaxRequestSize  int64         `koanf:"max_request_size" validate:"required,min=1"`
}

type LogConfig struct {
	Level  string        `koanf:"level"  validate:"required,oneof=trace debug info warn error"`
	Format string        `koanf:"format" validate:"required,oneof=json text pretty"`
	File   LogFileConfig `koanf:"file"`
}

// LogFileConfig configures the rolling JSON log file.
type LogFileConfig struct {
	Enabled    bool   `koanf:"enabled"`
	Path       string `koanf:"path"        validate:"required_if=Enabled true"`
	MaxSizeMB  int    `koanf:"max_size"    validate:"omitempty,min=1,max=1024"`
	MaxBackups int    `koanf:"max_backups" validate:"omitempty,min=0,max=100"`
	MaxAgeDays int    `koanf:"max_age"     validate:"omitempty,min=0,max=365"`
	Compress   bool   `koanf:"compress"`
}

type TelemetryConfig struct {
	Enabled      bool    `koanf:"enabled"`
	Endpoint     string  `koanf:"endpoint"      validate:"required_if=Enabled true"`
	ServiceName  string  `koanf:"service_name"  validate:"required_if=Enabled true"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// AuthConfig controls how callers are identified. Bearer tokens are accepted when JWTSecret
// is set; gateway identity headers only when TrustGatewayHeaders is on.
type AuthConfig struct {
	JWTSecret           string `koanf:"jwt_secret"            validate:"omitempty,min=16"`
	Issuer              string `koanf:"issuer"`
	TrustGatewayHeaders bool   `koanf:"trust_gateway_headers"`
	SubjectHeader       string `koanf:"subject_header"        validate:"required"`
	NameHeader          string `koanf:"name_header"           validate:"required"`
	RolesHeader         string `koanf:"roles_header"          validate:"required"`
	ScopesHeader        string `koanf:"scopes_header"         validate:"required"`
}

type DatabaseConfig struct {
	Driver          string        `koanf:"driver"            validate:"required,oneof=postgres memory"`
	URL             string        `koanf:"url"               validate:"required_if=Driver postgres"`
	MaxOpenConns    int           `koanf:"max_open_conns"    validate:"min=1"`
	MaxIdleConns    int           `koanf:"max_idle_conns"    validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"min=0"`
	MigrateOnStart  bool          `koanf:"migrate_on_start"`
}

// SearchConfig configures the Meilisearch index. When disabled or unhealthy, searches run
// against the database.
type SearchConfig struct {
	Enabled        bool          `koanf:"enabled"`
	URL            string        `koanf:"url"             validate:"required_if=Enabled true"`
	APIKey         string        `koanf:"api_key"`
	Index          string        `koanf:"index"           validate:"required"`
	HealthInterval time.Duration `koanf:"health_interval" validate:"min=1s"`
}

type CacheConfig struct {
	Driver string        `koanf:"driver" validate:"required,oneof=none local redis"`
	URL    string        `koanf:"url"    validate:"required_if=Driver redis"`
	TTL    time.Duration `koanf:"ttl"    validate:"min=1s"`
}

// EventsConfig selects where review events are published.
type EventsConfig struct {
	Driver         string        `koanf:"driver"          validate:"required,oneof=none log mqtt"`
	Broker         string        `koanf:"broker"          validate:"required_if=Driver mqtt"`
	ClientID       string        `koanf:"client_id"`
	Username       string        `koanf:"username"`
	Password       string        `koanf:"password"`
	TopicPrefix    string        `koanf:"topic_prefix"    validate:"required"`
	QoS            byte          `koanf:"qos"             validate:"max=2"`
	PublishTimeout time.Duration `koanf:"publish_timeout" validate:"min=100ms"`
}

// DirectoryConfig configures the external author directory used to enrich author pages.
type DirectoryConfig struct {
	Enabled        bool                 `koanf:"enabled"`
	Name           string               `koanf:"name"            validate:"required"`
	BaseURL        string               `koanf:"base_url"        validate:"required_if=Enabled true,omitempty,url"`
	Timeout        time.Duration        `koanf:"timeout"         validate:"min=100ms"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// RetryConfig controls the outbound HTTP client's exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"     validate:"required,min=1,max=10"`
	InitialInterval time.Duration `koanf:"initial_interval" validate:"required,min=10ms"`
	MaxInterval     time.Duration `koanf:"max_interval"     validate:"required,min=100ms"`
	Multiplier      float64       `koanf:"multiplier"       validate:"required,min=1.1,max=10"`
	JitterFactor    float64       `koanf:"jitter_factor"    validate:"min=0,max=1"`
}

// CircuitBreakerConfig controls when the outbound client stops calling a failing service.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"    validate:"required,min=1"`
	Timeout       time.Duration `koanf:"timeout"         validate:"required,min=1s"`
	HalfOpenLimit int           `koanf:"half_open_limit" validate:"required,min=1"`
}

type ReviewConfig struct {
	DuplicateStrategy    string  `koanf:"duplicate_strategy"    validate:"required,oneof=positional levenshtein"`
	LevenshteinThreshold float64 `koanf:"levenshtein_threshold" validate:"gt=0,max=1"`
}

type SeedConfig struct {
	OnStart bool `koanf:"on_start"`
}

func defaults() map[string]any {
	return map[string]any{
		"app.name":        "quotations-service",
		"app.version":     "dev",
		"app.environment": "local",

		"server.port":             DefaultServerPort,
		"server.host":             "0.0.0.0",
		"server.read_timeout":     "30s",
		"server.write_timeout":    "30s",
		"server.idle_timeout":     "120s",
		"server.shutdown_timeout": "10s",
		"server.request_timeout":  DefaultRequestTimeout.String(),
		"server.max_request_size": DefaultMaxRequestSize,

		"log.level":            "info",
		"log.format":           "json",
		"log.file.enabled":     false,
		"log.file.path":        "./logs/quotations.log",
		"log.file.max_size":    100,
		"log.file.max_backups": 3,
		"log.file.max_age":     28,
		"log.file.compress":    true,

		"telemetry.enabled":       false,
		"telemetry.endpoint":      "",
		"telemetry.service_name":  "quotations-service",
		"telemetry.sampling_rate": 1.0,

		"auth.jwt_secret":            "",
		"auth.issuer":                "",
		"auth.trust_gateway_headers": false,
		"auth.subject_header":        "X-User-ID",
		"auth.name_header":           "X-User-Name",
		"auth.roles_header":          "X-User-Roles",
		"auth.scopes_header":         "X-User-Scopes",

		"database.driver":            "memory",
		"database.url":               "",
		"database.max_open_conns":    25,
		"database.max_idle_conns":    5,
		"database.conn_max_lifetime": "5m",
		"database.migrate_on_start":  false,

		"search.enabled":         false,
		"search.url":             "",
		"search.api_key":         "",
		"search.index":           DefaultSearchIndex,
		"search.health_interval": "15s",

		"cache.driver": "local",
		"cache.url":    "",
		"cache.ttl":    DefaultCacheTTL.String(),

		"events.driver":          "log",
		"events.broker":          "",
		"events.client_id":       "quotations-service",
		"events.topic_prefix":    DefaultEventTopicPrefix,
		"events.qos":             1,
		"events.publish_timeout": "5s",

		"directory.enabled":                         false,
		"directory.name":                            "author-directory",
		"directory.base_url":                        "https://api.quotable.io",
		"directory.timeout":                         "5s",
		"directory.retry.max_attempts":              3,
		"directory.retry.initial_interval":          "100ms",
		"directory.retry.max_interval":              "2s",
		"directory.retry.multiplier":                2.0,
		"directory.retry.jitter_factor":             0.25,
		"directory.circuit_breaker.max_failures":    5,
		"directory.circuit_breaker.timeout":         "30s",
		"directory.circuit_breaker.half_open_limit": 2,

		"review.duplicate_strategy":    "positional",
		"review.levenshtein_threshold": DefaultLevenshteinMinimum,

		"seed.on_start": false,
	}
}

// Load reads configuration, later sources overriding earlier ones:
// defaults, configs/base.yaml, configs/<profile>.yaml, then APP_* environment variables.
func Load(profile string) (*Config, error) {
	return LoadFrom("configs", profile)
}

// LoadFrom is Load with an explicit configuration directory.
func LoadFrom(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if err := loadFileIfExists(k, dir+"/base.yaml"); err != nil {
		return nil, fmt.Errorf("loading base config: %w", err)
	}

	if profile != "" {
		if err := loadFileIfExists(k, fmt.Sprintf("%s/%s.yaml", dir, profile)); err != nil {
			return nil, fmt.Errorf("loading profile config %q: %w", profile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKeyMapper(k.Keys())), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// envKeyMapper maps APP_SERVER_READ_TIMEOUT onto the known key server.read_timeout.
// Variables that match no known key fall back to replacing every underscore with a dot.
func envKeyMapper(known []string) func(string) string {
	lookup := make(map[string]string, len(known))
	for _, key := range known {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}

	return func(s string) string {
		name := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		if key, ok := lookup[name]; ok {
			return key
		}

		return strings.ReplaceAll(name, "_", ".")
	}
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
