package articles

import (
	"context"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// ArticleRepository abstracts the index storage so the service can be tested
// against any backing implementation.
type ArticleRepository interface {
	Create(ctx context.Context, record *Article) (*Article, error)
	Update(ctx context.Context, record *Article) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)
	List(ctx context.Context) ([]*Article, error)
	ListPublished(ctx context.Context) ([]*Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ServiceConfig wires the corpus service dependencies.
type ServiceConfig struct {
	Markdown       interfaces.MarkdownService
	Articles       ArticleRepository
	Logger         interfaces.Logger
	WordsPerMinute int
}

// Service implements interfaces.CorpusService on top of the markdown loader
// and the article index.
type Service struct {
	markdown interfaces.MarkdownService
	articles ArticleRepository
	logger   interfaces.Logger
	wpm      int
}

var _ interfaces.CorpusService = (*Service)(nil)

// NewService builds a corpus service from the supplied configuration.
func NewService(cfg ServiceConfig) (*Service, error) {
	if cfg.Markdown == nil {
		return nil, ErrServiceRequired
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	wpm := cfg.WordsPerMinute
	if wpm <= 0 {
		wpm = DefaultWordsPerMinute
	}

	return &Service{
		markdown: cfg.Markdown,
		articles: cfg.Articles,
		logger:   logger,
		wpm:      wpm,
	}, nil
}

// BuildArticle converts a loaded document into an index record, enforcing the
// front-matter conventions (title and date required, valid slug).
func (s *Service) BuildArticle(doc *interfaces.Document) (*Article, error) {
	if doc == nil {
		return nil, ErrDocumentRequired
	}
	if strings.TrimSpace(doc.FrontMatter.Title) == "" {
		return nil, ErrTitleRequired
	}
	if doc.FrontMatter.Date.IsZero() {
		return nil, ErrDateRequired
	}

	slug, err := DeriveSlug(doc)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(doc.Body, s.wpm)
	date := doc.FrontMatter.Date

	article := &Article{
		Slug:        slug,
		Title:       strings.TrimSpace(doc.FrontMatter.Title),
		Summary:     optionalString(doc.FrontMatter.Summary),
		Author:      optionalString(doc.FrontMatter.Author),
		Path:        doc.FilePath,
		Tags:        append([]string(nil), doc.FrontMatter.Tags...),
		Draft:       doc.FrontMatter.Draft,
		Date:        &date,
		Checksum:    hex.EncodeToString(doc.Checksum),
		WordCount:   stats.WordCount,
		ReadingMins: stats.ReadingMins,
	}
	return article, nil
}

// GetBySlug fetches one indexed article.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*interfaces.ArticleRecord, error) {
	if s.articles == nil {
		return nil, ErrIndexRequired
	}
	article, err := s.articles.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return article.Record(), nil
}

// List returns indexed articles, optionally filtered by tag and draft status.
func (s *Service) List(ctx context.Context, opts interfaces.ListOptions) ([]*interfaces.ArticleRecord, error) {
	if s.articles == nil {
		return nil, ErrIndexRequired
	}

	var (
		articles []*Article
		err      error
	)
	if opts.IncludeDrafts {
		articles, err = s.articles.List(ctx)
	} else {
		articles, err = s.articles.ListPublished(ctx)
	}
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(opts.Tag)
	records := make([]*interfaces.ArticleRecord, 0, len(articles))
	for _, article := range articles {
		if tag != "" && !article.HasTag(tag) {
			continue
		}
		records = append(records, article.Record())
	}
	return records, nil
}

// Summarize loads the directory and aggregates corpus-level stats without
// touching the index.
func (s *Service) Summarize(ctx context.Context, dir string) (*interfaces.CorpusSummary, error) {
	docs, err := s.markdown.LoadDirectory(ctx, dir, interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}

	summary := &interfaces.CorpusSummary{
		TagCounts:        map[string]int{},
		SnippetLanguages: map[string]int{},
	}

	for _, doc := range docs {
		summary.Articles++
		if doc.FrontMatter.Draft {
			summary.Drafts++
		}
		stats := ComputeStats(doc.Body, s.wpm)
		summary.TotalWords += stats.WordCount
		for lang, count := range stats.Languages {
			summary.SnippetLanguages[lang] += count
		}
		for _, tag := range doc.FrontMatter.Tags {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				summary.TagCounts[trimmed]++
			}
		}
	}

	return summary, nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
