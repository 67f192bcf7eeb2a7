package corpuscmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	lintDirectoryMessageType = "corpus.lint_directory"
	syncDirectoryMessageType = "corpus.sync_directory"
	summarizeMessageType     = "corpus.summarize"
)

// LintDirectoryCommand runs the corpus lint rules over every markdown file
// under Directory.
type LintDirectoryCommand struct {
	// Directory selects the filesystem path (relative to the corpus root) to lint.
	Directory string `json:"directory"`
	// Pattern overrides the discovery glob (defaults to the configured pattern).
	Pattern string `json:"pattern,omitempty"`
	// DraftsAsWarnings downgrades findings on draft articles to warnings.
	DraftsAsWarnings bool `json:"drafts_as_warnings,omitempty"`
}

// Type implements command.Message.
func (LintDirectoryCommand) Type() string { return lintDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd LintDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireNonBlank("corpus.lint_directory.directory_required", "directory is required"))),
	)
}

// SyncDirectoryCommand reconciles the markdown files under Directory with the
// article index.
type SyncDirectoryCommand struct {
	// Directory selects the filesystem path (relative to the corpus root) to sync.
	Directory string `json:"directory"`
	// Pattern overrides the discovery glob (defaults to the configured pattern).
	Pattern string `json:"pattern,omitempty"`
	// DeleteOrphaned removes indexed articles without matching markdown files.
	DeleteOrphaned bool `json:"delete_orphaned,omitempty"`
	// DryRun counts the work without writing to the index.
	DryRun bool `json:"dry_run,omitempty"`
	// IncludeDrafts indexes draft articles as well.
	IncludeDrafts bool `json:"include_drafts,omitempty"`
}

// Type implements command.Message.
func (SyncDirectoryCommand) Type() string { return syncDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SyncDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireNonBlank("corpus.sync_directory.directory_required", "directory is required"))),
	)
}

// SummarizeCommand aggregates corpus stats for the markdown files under
// Directory.
type SummarizeCommand struct {
	// Directory selects the filesystem path (relative to the corpus root) to measure.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (SummarizeCommand) Type() string { return summarizeMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd SummarizeCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(requireNonBlank("corpus.summarize.directory_required", "directory is required"))),
	)
}

func requireNonBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if text, ok := value.(string); ok && strings.TrimSpace(text) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
