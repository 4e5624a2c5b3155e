// Package config loads the journal's settings with koanf from built-in
// defaults, YAML profiles under configs/ and APP_ environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// DefaultConfigDir holds base.yaml and the profile files.
	DefaultConfigDir = "configs"

	// DefaultMaxRequestSize bounds request bodies. Notes are short; 64KB is
	// generous.
	DefaultMaxRequestSize = 64 << 10

	envPrefix = "APP_"
)

type Config struct {
	App       AppConfig       `koanf:"app"       validate:"required"`
	Server    ServerConfig    `koanf:"server"    validate:"required"`
	Log       LogConfig       `koanf:"log"       validate:"required"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	Storage   StorageConfig   `koanf:"storage"   validate:"required"`
	UI        UIConfig        `koanf:"ui"        validate:"required"`
}

type AppConfig struct {
	Name        string `koanf:"name"        validate:"required"`
	Version     string `koanf:"version"     validate:"required"`
	Environment string `koanf:"environment" validate:"required,oneof=local dev qa prod test"`
}

// ServerConfig is read by cmd/service only.
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

// LogFileConfig configures the lumberjack-rotated JSON log file. Sizes are
// in megabytes, ages in days.
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
	Insecure     bool    `koanf:"insecure"`
	SamplingRate float64 `koanf:"sampling_rate" validate:"min=0,max=1"`
}

// StorageConfig locates the two journal documents. Relative paths resolve
// against the working directory.
type StorageConfig struct {
	NotesPath  string `koanf:"notes_path"  validate:"required"`
	QuotesPath string `koanf:"quotes_path" validate:"required"`
}

// UIConfig sizes the note cards of the terminal interface.
type UIConfig struct {
	CardWidth   int `koanf:"card_width"   validate:"required,min=20,max=200"`
	CardHeight  int `koanf:"card_height"  validate:"required,min=3,max=40"`
	CardSpacing int `koanf:"card_spacing" validate:"min=0,max=10"`
}

type section = map[string]any

func defaults() section {
	return section{
		"app": section{
			"name":        "mindnotes",
			"version":     "dev",
			"environment": "local",
		},
		"server": section{
			"port":             8080,
			"host":             "127.0.0.1",
			"read_timeout":     "15s",
			"write_timeout":    "15s",
			"idle_timeout":     "60s",
			"shutdown_timeout": "10s",
			"request_timeout":  "5s",
			"max_request_size": DefaultMaxRequestSize,
		},
		"log": section{
			"level":  "info",
			"format": "json",
			"file": section{
				"enabled":     false,
				"path":        "./logs/mindnotes.log",
				"max_size":    10,
				"max_backups": 3,
				"max_age":     28,
				"compress":    true,
			},
		},
		"telemetry": section{
			"enabled":       false,
			"endpoint":      "",
			"service_name":  "mindnotes",
			"insecure":      false,
			"sampling_rate": 1.0,
		},
		"storage": section{
			"notes_path":  "notes.json",
			"quotes_path": "quotes.json",
		},
		"ui": section{
			"card_width":   60,
			"card_height":  6,
			"card_spacing": 1,
		},
	}
}

// Load reads the configuration for profile from DefaultConfigDir.
func Load(profile string) (*Config, error) {
	return LoadDir(dir(), profile)
}

// LoadProfile loads and validates the profile named by APP_ENVIRONMENT,
// "local" when unset. Both binaries start from it.
func LoadProfile() (*Config, error) {
	profile := os.Getenv(envPrefix + "ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	cfg, err := Load(profile)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func dir() string {
	if d := os.Getenv(envPrefix + "CONFIG_DIR"); d != "" {
		return d
	}

	return DefaultConfigDir
}

// LoadDir merges, later layers winning:
//
//	defaults
//	{dir}/base.yaml
//	{dir}/{profile}.yaml
//	APP_* environment variables
//
// Missing files are skipped. An environment name maps to a key by dropping
// the prefix, lowercasing, and turning "_" into "."; when the name contains
// "__", only "__" separates sections (APP_STORAGE__NOTES_PATH is
// storage.notes_path).
func LoadDir(dir, profile string) (*Config, error) {
	k := koanf.New(".")

	layers := []struct {
		name string
		load func() error
	}{
		{"defaults", func() error { return k.Load(confmap.Provider(defaults(), ""), nil) }},
		{"base config", func() error { return loadYAML(k, filepath.Join(dir, "base.yaml")) }},
		{fmt.Sprintf("profile config %q", profile), func() error {
			if profile == "" {
				return nil
			}

			return loadYAML(k, filepath.Join(dir, profile+".yaml"))
		}},
		{"env vars", func() error { return k.Load(env.Provider(envPrefix, ".", envKey), nil) }},
	}

	for _, l := range layers {
		if err := l.load(); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, envPrefix))

	sep := "_"
	if strings.Contains(key, "__") {
		sep = "__"
	}

	return strings.ReplaceAll(key, sep, ".")
}

func loadYAML(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return k.Load(file.Provider(path), yaml.Parser())
}
