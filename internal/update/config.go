package update

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
)

// RuntimeConfig is layered defaults, then the YAML file, then env, then flags.
// InputCharLimit of zero leaves the add input unbounded.
type RuntimeConfig struct {
	Backend        storage.Backend  `yaml:"backend"`
	InitialFilter  model.FilterMode `yaml:"filter"`
	InputCharLimit int              `yaml:"input_char_limit"`
	LogLevel       string           `yaml:"log_level"`
	LogOutput      string           `yaml:"log_output"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:       storage.BackendMemory,
		InitialFilter: model.FilterAll,
		LogLevel:      "info",
	}
}

// LoadRuntimeConfigFile overlays the YAML file at path onto base. A missing
// file leaves base untouched.
func LoadRuntimeConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return base, nil
	}
	raw, err := os.ReadFile(trimmed)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return base, fmt.Errorf("read config %s: %w", trimmed, err)
	}
	cfg := base
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("parse config %s: %w", trimmed, err)
	}
	// Names in the file accept the same spellings as env and flags.
	backend, err := storage.ParseBackend(string(cfg.Backend))
	if err != nil {
		return base, fmt.Errorf("config %s: %w", trimmed, err)
	}
	cfg.Backend = backend
	mode, err := model.ParseFilterMode(string(cfg.InitialFilter))
	if err != nil {
		return base, fmt.Errorf("config %s: %w", trimmed, err)
	}
	cfg.InitialFilter = mode
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("TODO_BACKEND")); v != "" {
		if backend, err := storage.ParseBackend(v); err == nil {
			cfg.Backend = backend
		} else {
			// Left unnormalized so Validate reports it.
			cfg.Backend = storage.Backend(v)
		}
	}
	if v := strings.TrimSpace(os.Getenv("TODO_FILTER")); v != "" {
		if mode, err := model.ParseFilterMode(v); err == nil {
			cfg.InitialFilter = mode
		}
	}
	if v, ok := getEnvInt("TODO_INPUT_CHAR_LIMIT"); ok && v >= 0 {
		cfg.InputCharLimit = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_LOG_OUTPUT")); v != "" {
		cfg.LogOutput = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	switch c.Backend {
	case storage.BackendMemory, storage.BackendSQLite:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if !c.InitialFilter.IsValid() {
		return fmt.Errorf("config: %w: %q", model.ErrInvalidFilter, c.InitialFilter)
	}
	if c.InputCharLimit < 0 {
		return fmt.Errorf("config: input_char_limit must not be negative, got %d", c.InputCharLimit)
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func ParseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: invalid log level %q", raw)
	}
	return level, nil
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
