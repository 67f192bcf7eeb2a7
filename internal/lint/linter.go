package lint

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-corpus/internal/articles"
	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/internal/markdown"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Rule names reported in findings.
const (
	RuleParse        = "markdown/parse"
	RuleSchema       = "front-matter/schema"
	RuleSlug         = "front-matter/slug"
	RuleAnchor       = "links/anchor"
	RuleRelativeLink = "links/relative"
	RuleSlugUnique   = "corpus/slug-unique"
)

// Config controls discovery for lint runs.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
}

// Service implements interfaces.LintService over a corpus directory.
type Service struct {
	cfg    Config
	fs     fs.FS
	loader *markdown.Loader
	schema *jsonschema.Schema
	logger interfaces.Logger
}

var _ interfaces.LintService = (*Service)(nil)

// NewService compiles the front-matter schema and prepares the corpus
// filesystem for linting.
func NewService(cfg Config, logger interfaces.Logger) (*Service, error) {
	basePath := strings.TrimSpace(cfg.BasePath)
	if basePath == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("lint service: stat base path %s: %w", basePath, err)
	}
	cfg.BasePath = basePath

	if strings.TrimSpace(cfg.Pattern) == "" {
		cfg.Pattern = "*.md"
	}

	schema, err := compileFrontMatterSchema()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.NoOp()
	}

	filesystem := os.DirFS(basePath)
	loader := markdown.NewLoader(filesystem, markdown.LoaderConfig{
		BasePath:  basePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	})

	return &Service{
		cfg:    cfg,
		fs:     filesystem,
		loader: loader,
		schema: schema,
		logger: logger,
	}, nil
}

// LintDirectory walks the corpus and lints every matching document. Files
// that fail to parse produce findings rather than aborting the run.
func (s *Service) LintDirectory(ctx context.Context, dir string, opts interfaces.LintOptions) (*interfaces.LintReport, error) {
	root := filepath.ToSlash(filepath.Clean(dir))
	if root == "" || root == "/" {
		root = "."
	}

	report := &interfaces.LintReport{}
	slugPaths := map[string]string{}

	walkErr := fs.WalkDir(s.fs, root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if !s.cfg.Recursive && filepath.Clean(p) != filepath.Clean(root) {
				return fs.SkipDir
			}
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !s.matchesPattern(p, opts.Pattern) {
			return nil
		}

		report.Scanned++
		s.lintFile(ctx, p, opts, report, slugPaths)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	logging.WithFields(s.logger, map[string]any{
		"scanned":  report.Scanned,
		"findings": len(report.Findings),
		"failed":   report.Failed(),
	}).Info("lint.directory.completed")

	return report, nil
}

// LintDocument checks a single parsed document against the front-matter
// schema, the slug rules, and its own anchors. Corpus-wide checks (relative
// links, slug uniqueness) need directory context and run in LintDirectory.
func (s *Service) LintDocument(ctx context.Context, doc *interfaces.Document) ([]interfaces.LintFinding, error) {
	if doc == nil {
		return nil, articles.ErrDocumentRequired
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	findings := []interfaces.LintFinding{}
	findings = append(findings, s.schemaFindings(doc)...)
	findings = append(findings, s.slugFindings(doc)...)

	outline := outlineDocument(doc.Body)
	findings = append(findings, s.anchorFindings(doc, outline)...)

	return findings, nil
}

func (s *Service) lintFile(ctx context.Context, path string, opts interfaces.LintOptions, report *interfaces.LintReport, slugPaths map[string]string) {
	result, err := s.loader.LoadFile(ctx, path, markdown.LoadParams{})
	if err != nil {
		report.Findings = append(report.Findings, interfaces.LintFinding{
			Path:     path,
			Rule:     RuleParse,
			Message:  err.Error(),
			Severity: interfaces.SeverityError,
		})
		return
	}
	doc := result.Document

	findings := []interfaces.LintFinding{}
	findings = append(findings, s.schemaFindings(doc)...)
	findings = append(findings, s.slugFindings(doc)...)

	outline := outlineDocument(doc.Body)
	findings = append(findings, s.anchorFindings(doc, outline)...)
	findings = append(findings, s.relativeLinkFindings(doc, outline)...)

	if slug, err := articles.DeriveSlug(doc); err == nil {
		if previous, ok := slugPaths[slug]; ok {
			findings = append(findings, interfaces.LintFinding{
				Path:     doc.FilePath,
				Rule:     RuleSlugUnique,
				Message:  fmt.Sprintf("slug %q already used by %s", slug, previous),
				Severity: interfaces.SeverityError,
			})
		} else {
			slugPaths[slug] = doc.FilePath
		}
	}

	if doc.FrontMatter.Draft && opts.DraftsAsWarnings {
		for i := range findings {
			findings[i].Severity = interfaces.SeverityWarning
		}
	}

	report.Findings = append(report.Findings, findings...)
}

func (s *Service) schemaFindings(doc *interfaces.Document) []interfaces.LintFinding {
	issues, err := validateFrontMatter(s.schema, doc.FrontMatter.Raw)
	if err != nil {
		return []interfaces.LintFinding{{
			Path:     doc.FilePath,
			Rule:     RuleSchema,
			Message:  err.Error(),
			Severity: interfaces.SeverityError,
		}}
	}

	findings := make([]interfaces.LintFinding, 0, len(issues))
	for _, issue := range issues {
		findings = append(findings, interfaces.LintFinding{
			Path:     doc.FilePath,
			Rule:     RuleSchema,
			Message:  issue,
			Severity: interfaces.SeverityError,
		})
	}
	return findings
}

func (s *Service) slugFindings(doc *interfaces.Document) []interfaces.LintFinding {
	explicit := strings.TrimSpace(doc.FrontMatter.Slug)
	if explicit == "" || articles.IsValidSlug(explicit) {
		return nil
	}
	return []interfaces.LintFinding{{
		Path:     doc.FilePath,
		Rule:     RuleSlug,
		Message:  fmt.Sprintf("slug %q contains invalid characters", explicit),
		Severity: interfaces.SeverityError,
	}}
}

func (s *Service) anchorFindings(doc *interfaces.Document, outline *documentOutline) []interfaces.LintFinding {
	findings := []interfaces.LintFinding{}
	for _, anchor := range outline.anchors {
		if outline.hasHeading(anchor) {
			continue
		}
		findings = append(findings, interfaces.LintFinding{
			Path:     doc.FilePath,
			Rule:     RuleAnchor,
			Message:  fmt.Sprintf("anchor %s does not resolve to a heading", anchor),
			Severity: interfaces.SeverityError,
		})
	}
	return findings
}

func (s *Service) relativeLinkFindings(doc *interfaces.Document, outline *documentOutline) []interfaces.LintFinding {
	findings := []interfaces.LintFinding{}
	docDir := path.Dir(doc.FilePath)

	for _, dest := range outline.relative {
		target := path.Clean(path.Join(docDir, dest))
		if strings.HasPrefix(target, "..") {
			findings = append(findings, interfaces.LintFinding{
				Path:     doc.FilePath,
				Rule:     RuleRelativeLink,
				Message:  fmt.Sprintf("link %q escapes the corpus root", dest),
				Severity: interfaces.SeverityError,
			})
			continue
		}
		if _, err := fs.Stat(s.fs, target); err != nil {
			findings = append(findings, interfaces.LintFinding{
				Path:     doc.FilePath,
				Rule:     RuleRelativeLink,
				Message:  fmt.Sprintf("link %q does not resolve to a corpus file", dest),
				Severity: interfaces.SeverityError,
			})
		}
	}
	return findings
}

func (s *Service) matchesPattern(p string, override string) bool {
	pattern := strings.TrimSpace(override)
	if pattern == "" {
		pattern = s.cfg.Pattern
	}
	pattern = filepath.ToSlash(pattern)
	if strings.Contains(pattern, "**") {
		pattern = strings.ReplaceAll(pattern, "**/", "")
	}
	target := p
	if !strings.Contains(pattern, "/") {
		target = path.Base(p)
	}
	match, err := path.Match(pattern, target)
	if err != nil {
		return false
	}
	return match
}
