package corpuscmd

import (
	"context"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-corpus/internal/commands"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

const (
	lintOperation      = "corpus.lint_directory"
	syncOperation      = "corpus.sync_directory"
	summarizeOperation = "corpus.summarize"
)

var (
	_ command.Commander[LintDirectoryCommand] = (*LintDirectoryHandler)(nil)
	_ command.Commander[SyncDirectoryCommand] = (*SyncDirectoryHandler)(nil)
	_ command.Commander[SummarizeCommand]     = (*SummarizeHandler)(nil)
)

// LintDirectoryHandler runs lint passes via the shared command handler
// foundation. The sink receives the report so callers can print findings or
// derive exit codes.
type LintDirectoryHandler struct {
	inner *commands.Handler[LintDirectoryCommand]
}

// NewLintDirectoryHandler creates a handler bound to the supplied lint service.
func NewLintDirectoryHandler(service interfaces.LintService, logger interfaces.Logger, sink func(*interfaces.LintReport), opts ...commands.HandlerOption[LintDirectoryCommand]) *LintDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg LintDirectoryCommand) error {
		report, err := service.LintDirectory(ctx, msg.Directory, interfaces.LintOptions{
			Pattern:          msg.Pattern,
			DraftsAsWarnings: msg.DraftsAsWarnings,
		})
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"scanned":  report.Scanned,
			"findings": len(report.Findings),
			"failed":   report.Failed(),
		}).Info("corpus.command.lint_directory.completed")
		if sink != nil {
			sink(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[LintDirectoryCommand]{
		commands.WithLogger[LintDirectoryCommand](baseLogger),
		commands.WithOperation[LintDirectoryCommand](lintOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &LintDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *LintDirectoryHandler) Execute(ctx context.Context, msg LintDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SyncDirectoryHandler reconciles the corpus with the article index via the
// shared command handler foundation.
type SyncDirectoryHandler struct {
	inner *commands.Handler[SyncDirectoryCommand]
}

// NewSyncDirectoryHandler creates a handler bound to the supplied corpus service.
func NewSyncDirectoryHandler(service interfaces.CorpusService, logger interfaces.Logger, sink func(*interfaces.SyncResult), opts ...commands.HandlerOption[SyncDirectoryCommand]) *SyncDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncDirectoryCommand) error {
		result, err := service.Sync(ctx, msg.Directory, interfaces.SyncOptions{
			Pattern:        msg.Pattern,
			DeleteOrphaned: msg.DeleteOrphaned,
			DryRun:         msg.DryRun,
			IncludeDrafts:  msg.IncludeDrafts,
		})
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"created": result.Created,
				"updated": result.Updated,
				"skipped": result.Skipped,
				"deleted": result.Deleted,
				"errors":  len(result.Errors),
				"dry_run": msg.DryRun,
			}).Info("corpus.command.sync_directory.completed")
			if sink != nil {
				sink(result)
			}
		}
		return err
	}

	handlerOpts := []commands.HandlerOption[SyncDirectoryCommand]{
		commands.WithLogger[SyncDirectoryCommand](baseLogger),
		commands.WithOperation[SyncDirectoryCommand](syncOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncDirectoryHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *SyncDirectoryHandler) Execute(ctx context.Context, msg SyncDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

// SummarizeHandler aggregates corpus stats via the shared command handler
// foundation.
type SummarizeHandler struct {
	inner *commands.Handler[SummarizeCommand]
}

// NewSummarizeHandler creates a handler bound to the supplied corpus service.
func NewSummarizeHandler(service interfaces.CorpusService, logger interfaces.Logger, sink func(*interfaces.CorpusSummary), opts ...commands.HandlerOption[SummarizeCommand]) *SummarizeHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SummarizeCommand) error {
		summary, err := service.Summarize(ctx, msg.Directory)
		if err != nil {
			return err
		}
		logging.WithFields(baseLogger, map[string]any{
			"articles":    summary.Articles,
			"drafts":      summary.Drafts,
			"total_words": summary.TotalWords,
		}).Info("corpus.command.summarize.completed")
		if sink != nil {
			sink(summary)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SummarizeCommand]{
		commands.WithLogger[SummarizeCommand](baseLogger),
		commands.WithOperation[SummarizeCommand](summarizeOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SummarizeHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *SummarizeHandler) Execute(ctx context.Context, msg SummarizeCommand) error {
	return h.inner.Execute(ctx, msg)
}
