// Package corpus assembles the markdown toolkit: document loading, lint
// rules, content stats, and the SQLite article index.
package corpus

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goliatone/go-corpus/internal/articles"
	"github.com/goliatone/go-corpus/internal/lint"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/internal/markdown"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Exported contracts for consumers of the corpus package.
type (
	Document      = interfaces.Document
	FrontMatter   = interfaces.FrontMatter
	ArticleRecord = interfaces.ArticleRecord
	LintReport    = interfaces.LintReport
	LintFinding   = interfaces.LintFinding
	SyncResult    = interfaces.SyncResult
	CorpusSummary = interfaces.CorpusSummary
)

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider injects a logger provider; the default is no-op logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.loggerProvider = provider
	}
}

// WithDB supplies an existing bun DB for the article index, overriding the
// configured index path. The caller keeps ownership of the handle.
func WithDB(db *bun.DB) Option {
	return func(m *Module) {
		m.db = db
		m.ownsDB = false
	}
}

// Module is the top level corpus runtime façade.
type Module struct {
	cfg            Config
	loggerProvider interfaces.LoggerProvider

	db     *bun.DB
	ownsDB bool

	markdown *markdown.Service
	lint     *lint.Service
	articles *articles.Service
}

// New constructs a corpus module using the provided configuration.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("corpus config: %w", err)
	}

	m := &Module{cfg: cfg}
	for _, opt := range opts {
		opt(m)
	}

	markdownSvc, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.ContentDir,
		Pattern:   cfg.Markdown.Pattern,
		Recursive: cfg.Markdown.Recursive,
		Parser:    cfg.Markdown.Parser.ParseOptions(),
	}, nil)
	if err != nil {
		return nil, err
	}
	m.markdown = markdownSvc

	lintSvc, err := lint.NewService(lint.Config{
		BasePath:  cfg.ContentDir,
		Pattern:   cfg.Markdown.Pattern,
		Recursive: cfg.Markdown.Recursive,
	}, logging.LintLogger(m.loggerProvider))
	if err != nil {
		return nil, err
	}
	m.lint = lintSvc

	var repo articles.ArticleRepository
	if m.db == nil && cfg.Index.Path != "" {
		sqlDB, err := sql.Open("sqlite3", cfg.Index.Path)
		if err != nil {
			return nil, fmt.Errorf("corpus index: open %s: %w", cfg.Index.Path, err)
		}
		m.db = bun.NewDB(sqlDB, sqlitedialect.New())
		m.ownsDB = true
	}
	if m.db != nil {
		if err := EnsureSchema(context.Background(), m.db); err != nil {
			return nil, err
		}
		repo = articles.NewBunArticleRepository(m.db)
	}

	articleSvc, err := articles.NewService(articles.ServiceConfig{
		Markdown:       markdownSvc,
		Articles:       repo,
		Logger:         logging.IndexLogger(m.loggerProvider),
		WordsPerMinute: cfg.Stats.WordsPerMinute,
	})
	if err != nil {
		return nil, err
	}
	m.articles = articleSvc

	return m, nil
}

// Config returns the effective module configuration. Hosts use it to pick up
// defaults such as Lint.DraftsAsWarnings when building lint options.
func (m *Module) Config() Config {
	return m.cfg
}

// Markdown returns the configured markdown service.
func (m *Module) Markdown() interfaces.MarkdownService {
	return m.markdown
}

// Lint returns the configured lint service.
func (m *Module) Lint() interfaces.LintService {
	return m.lint
}

// Articles returns the configured corpus service.
func (m *Module) Articles() interfaces.CorpusService {
	return m.articles
}

// Logger returns a module-scoped logger from the configured provider.
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.loggerProvider, name)
}

// DB exposes the index database handle, nil when the index is disabled.
func (m *Module) DB() *bun.DB {
	return m.db
}

// Close releases the index database when the module owns it.
func (m *Module) Close() error {
	if m.db == nil || !m.ownsDB {
		return nil
	}
	return m.db.Close()
}

// EnsureSchema creates the article index tables when they do not exist yet.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*articles.Article)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("corpus index: create articles table: %w", err)
	}
	if _, err := db.ExecContext(ctx, "CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_slug_unique ON articles(slug)"); err != nil {
		return fmt.Errorf("corpus index: create slug index: %w", err)
	}
	return nil
}
