// Package bootstrap wires configuration into a corpus module for the CLIs.
package bootstrap

import (
	"fmt"
	"strings"

	corpus "github.com/goliatone/go-corpus"
	"github.com/goliatone/go-corpus/internal/commands"
	"github.com/goliatone/go-corpus/internal/logging/gologger"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Options captures configuration for corpus CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	IndexPath      string
	WordsPerMinute int
	LogLevel       string
	LogFormat      string
}

// Module wraps the corpus module and the services the CLIs use.
type Module struct {
	Module *corpus.Module
	Lint   interfaces.LintService
	Corpus interfaces.CorpusService
	Logger interfaces.Logger
}

// BuildModule constructs a corpus module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := corpus.DefaultConfig()

	if trimmed := strings.TrimSpace(opts.ContentDir); trimmed != "" {
		cfg.ContentDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Markdown.Pattern = trimmed
	}
	cfg.Markdown.Recursive = opts.Recursive
	cfg.Index.Path = strings.TrimSpace(opts.IndexPath)
	if opts.WordsPerMinute > 0 {
		cfg.Stats.WordsPerMinute = opts.WordsPerMinute
	}
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}
	if trimmed := strings.TrimSpace(opts.LogFormat); trimmed != "" {
		cfg.Logging.Format = trimmed
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap logger: %w", err)
	}

	module, err := corpus.New(cfg, corpus.WithLoggerProvider(provider))
	if err != nil {
		return nil, err
	}

	return &Module{
		Module: module,
		Lint:   module.Lint(),
		Corpus: module.Articles(),
		Logger: commands.CommandLogger(provider, "cli"),
	}, nil
}
