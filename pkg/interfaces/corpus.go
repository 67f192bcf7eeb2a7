package interfaces

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CorpusService exposes the high-level corpus workflows: building article
// records from documents, synchronising them into the index, and summarising
// the collection.
type CorpusService interface {
	Sync(ctx context.Context, dir string, opts SyncOptions) (*SyncResult, error)
	GetBySlug(ctx context.Context, slug string) (*ArticleRecord, error)
	List(ctx context.Context, opts ListOptions) ([]*ArticleRecord, error)
	Summarize(ctx context.Context, dir string) (*CorpusSummary, error)
}

// ArticleRecord is the indexed view of a corpus article shared across
// package boundaries.
type ArticleRecord struct {
	ID          uuid.UUID
	Slug        string
	Title       string
	Summary     string
	Author      string
	Path        string
	Tags        []string
	Draft       bool
	Date        *time.Time
	Checksum    string
	WordCount   int
	ReadingMins int
}

// ListOptions filters index lookups.
type ListOptions struct {
	Tag           string
	IncludeDrafts bool
}

// SyncOptions controls how documents are reconciled against the index.
type SyncOptions struct {
	// Pattern limits discovery to files matching the glob (defaults to *.md).
	Pattern string
	// DeleteOrphaned removes indexed articles whose source files are gone.
	DeleteOrphaned bool
	// DryRun counts the work without writing to the index.
	DryRun bool
	// IncludeDrafts indexes draft articles as well.
	IncludeDrafts bool
}

// SyncResult summarises a sync run across the corpus.
type SyncResult struct {
	Created int
	Updated int
	Deleted int
	Skipped int
	Errors  []error
}

// CorpusSummary aggregates corpus-level stats for reporting.
type CorpusSummary struct {
	Articles   int
	Drafts     int
	TotalWords int
	// TagCounts maps each tag to the number of articles carrying it.
	TagCounts map[string]int
	// SnippetLanguages maps fenced code-block languages to occurrence counts.
	SnippetLanguages map[string]int
}

// LintService validates corpus conventions over a directory of documents.
type LintService interface {
	LintDirectory(ctx context.Context, dir string, opts LintOptions) (*LintReport, error)
	LintDocument(ctx context.Context, doc *Document) ([]LintFinding, error)
}

// LintSeverity grades a lint finding.
type LintSeverity string

const (
	SeverityError   LintSeverity = "error"
	SeverityWarning LintSeverity = "warning"
)

// LintFinding describes one violated rule in one document.
type LintFinding struct {
	Path     string
	Rule     string
	Message  string
	Severity LintSeverity
}

// LintOptions tunes a lint pass.
type LintOptions struct {
	Pattern string
	// DraftsAsWarnings downgrades findings on draft documents to warnings.
	DraftsAsWarnings bool
}

// LintReport collects findings across a lint run.
type LintReport struct {
	Findings []LintFinding
	Scanned  int
}

// Failed reports whether the run produced any error-severity finding.
func (r *LintReport) Failed() bool {
	if r == nil {
		return false
	}
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
