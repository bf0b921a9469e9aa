// Package config handles application configuration using Viper.
// Viper supports YAML files, environment variables, and defaults — merged in priority order.
// Go convention: configuration is loaded into structs, not accessed as raw key-value pairs.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration struct. Nested structs organize related settings.
// `mapstructure` tags tell Viper how to map YAML/env keys to struct fields.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Profile   ProfileConfig   `mapstructure:"profile"`
	Facts     FactsConfig     `mapstructure:"facts"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// ProfileConfig holds the static profile fields served by the profile
// endpoint. They are constant for the lifetime of the process — only the
// "fact" field of the response is dynamic.
type ProfileConfig struct {
	Name     string   `mapstructure:"name"`
	Title    string   `mapstructure:"title"`
	Bio      string   `mapstructure:"bio"`
	Location string   `mapstructure:"location"`
	Skills   []string `mapstructure:"skills"`
	Hobbies  []string `mapstructure:"hobbies"`
}

// FactsConfig controls the outbound fact fetch.
// ProviderOrder decides which fact APIs are tried and in what order.
// First provider is primary, rest are fallbacks. Example: ["catfact", "uselessfacts"]
type FactsConfig struct {
	ProviderOrder   []string `mapstructure:"provider_order"`
	CatFactURL      string   `mapstructure:"catfact_url"`
	UselessFactsURL string   `mapstructure:"uselessfacts_url"`
	TimeoutSeconds  int      `mapstructure:"timeout_seconds"`
	// Fallback is returned whenever every provider fails. The profile
	// endpoint never surfaces an outbound failure to its caller.
	Fallback string `mapstructure:"fallback"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from a YAML file and environment variables.
// In Go, functions return errors as the last return value — callers must check them.
// This pattern replaces try/catch: if err != nil { handle it }.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults — these apply when neither file nor env provides a value
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("profile.name", "Felipe Leveque")
	v.SetDefault("profile.title", "Backend Engineering Intern")
	v.SetDefault("profile.bio", "Learning Go by building small services, one endpoint at a time.")
	v.SetDefault("profile.location", "Valencia, Spain")
	v.SetDefault("profile.skills", []string{"go", "ruby", "sql"})
	v.SetDefault("profile.hobbies", []string{"cycling", "chess"})
	v.SetDefault("facts.provider_order", []string{"catfact", "uselessfacts"})
	v.SetDefault("facts.catfact_url", "https://catfact.ninja/fact")
	v.SetDefault("facts.uselessfacts_url", "https://uselessfacts.jsph.pl/api/v2/facts/random")
	v.SetDefault("facts.timeout_seconds", 5)
	v.SetDefault("facts.fallback", "Cats sleep for around 13 to 16 hours a day.")
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:3000", "http://localhost:3036"})
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("log.level", "info")

	// Read from YAML config file if provided
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Read config file (ignore "not found" — defaults + env are enough)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath != "" {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// Environment variables override everything.
	// PROFILE_ prefix + nested keys: PROFILE_SERVER_PORT=9090 → server.port=9090
	v.SetEnvPrefix("PROFILE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal into our Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Address returns the listen address string like "0.0.0.0:8080".
// This is a method on ServerConfig — Go attaches methods to types via receiver syntax.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Timeout returns the outbound fact fetch timeout as a time.Duration.
// The config file stores plain seconds to keep the YAML readable.
func (f FactsConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}
