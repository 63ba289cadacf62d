// todo is a terminal task list editor. Tasks live only for the session:
// add them, mark them complete, filter the list, and delete finished ones.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/sandeepkv93/todo/internal/export"
	"github.com/sandeepkv93/todo/internal/model"
	"github.com/sandeepkv93/todo/internal/storage"
	"github.com/sandeepkv93/todo/internal/store"
	"github.com/sandeepkv93/todo/internal/update"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "todo failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var (
		configPath string
		backend    string
		filter     string
		logOutput  string
		logLevel   string
	)
	flagSet := pflag.NewFlagSet("todo", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "YAML config file")
	flagSet.StringVar(&backend, "backend", "", "task backend: memory or sqlite (in-memory)")
	flagSet.StringVar(&filter, "filter", "", "initial filter: all, completed or uncompleted")
	flagSet.StringVar(&logOutput, "log-output", "", "write JSON log records to this file")
	flagSet.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := update.LoadRuntimeConfigFile(configPath, update.DefaultRuntimeConfig())
	if err != nil {
		return err
	}
	cfg = update.RuntimeConfigFromEnv(cfg)
	if backend != "" {
		b, err := storage.ParseBackend(backend)
		if err != nil {
			return err
		}
		cfg.Backend = b
	}
	if filter != "" {
		mode, err := model.ParseFilterMode(filter)
		if err != nil {
			return err
		}
		cfg.InitialFilter = mode
	}
	if logOutput != "" {
		cfg.LogOutput = logOutput
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	repo, err := storage.Open(cfg.Backend)
	if err != nil {
		return err
	}
	tasks := store.New(repo, logger)
	defer tasks.Close()

	logger.Info("starting", "backend", cfg.Backend, "filter", cfg.InitialFilter)
	program := tea.NewProgram(
		update.NewModelWithConfig(tasks, cfg, logger, export.SystemClipboard{}),
		tea.WithAltScreen(),
	)
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

// newLogger writes JSON records to the configured file. The terminal belongs
// to the TUI, so without a file logs are discarded.
func newLogger(cfg update.RuntimeConfig) (*slog.Logger, func(), error) {
	level, err := update.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogOutput == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	file, err := os.OpenFile(cfg.LogOutput, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }, nil
}
