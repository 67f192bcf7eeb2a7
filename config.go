package corpus

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Config is the root configuration for the corpus toolkit.
type Config struct {
	// ContentDir is the directory holding the markdown collection.
	ContentDir string         `json:"content_dir" yaml:"content_dir"`
	Markdown   MarkdownConfig `json:"markdown" yaml:"markdown"`
	Lint       LintConfig     `json:"lint" yaml:"lint"`
	Index      IndexConfig    `json:"index" yaml:"index"`
	Stats      StatsConfig    `json:"stats" yaml:"stats"`
	Logging    LoggingConfig  `json:"logging" yaml:"logging"`
}

// MarkdownConfig controls document discovery and rendering.
type MarkdownConfig struct {
	Pattern   string               `json:"pattern" yaml:"pattern"`
	Recursive bool                 `json:"recursive" yaml:"recursive"`
	Parser    MarkdownParserConfig `json:"parser" yaml:"parser"`
}

// MarkdownParserConfig mirrors interfaces.ParseOptions for configuration files.
type MarkdownParserConfig struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
	Sanitize   bool     `json:"sanitize" yaml:"sanitize"`
	HardWraps  bool     `json:"hard_wraps" yaml:"hard_wraps"`
	SafeMode   bool     `json:"safe_mode" yaml:"safe_mode"`
}

// ParseOptions converts the config into the runtime options type.
func (c MarkdownParserConfig) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), c.Extensions...),
		Sanitize:   c.Sanitize,
		HardWraps:  c.HardWraps,
		SafeMode:   c.SafeMode,
	}
}

// LintConfig tunes the default lint behaviour.
type LintConfig struct {
	DraftsAsWarnings bool `json:"drafts_as_warnings" yaml:"drafts_as_warnings"`
}

// IndexConfig locates the SQLite article index. An empty path disables the
// index; lint and stats still work, sync requires it.
type IndexConfig struct {
	Path string `json:"path" yaml:"path"`
}

// StatsConfig tunes content measurement.
type StatsConfig struct {
	WordsPerMinute int `json:"words_per_minute" yaml:"words_per_minute"`
}

// LoggingConfig configures the go-logger provider.
type LoggingConfig struct {
	Level     string   `json:"level" yaml:"level"`
	Format    string   `json:"format" yaml:"format"`
	AddSource bool     `json:"add_source" yaml:"add_source"`
	Focus     []string `json:"focus" yaml:"focus"`
}

// DefaultConfig returns the configuration used when the host supplies nothing.
func DefaultConfig() Config {
	return Config{
		ContentDir: "content",
		Markdown: MarkdownConfig{
			Pattern:   "*.md",
			Recursive: true,
		},
		Index: IndexConfig{
			Path: "corpus.db",
		},
		Stats: StatsConfig{
			WordsPerMinute: 200,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate enforces the configuration invariants before services boot.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.Markdown),
		validation.Field(&c.Stats),
		validation.Field(&c.Logging),
	)
}

// Validate checks the markdown section.
func (c MarkdownConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Pattern, validation.Required),
	)
}

// Validate checks the stats section.
func (c StatsConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.WordsPerMinute, validation.Min(1)),
	)
}

// Validate checks the logging section.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty")),
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
	)
}
