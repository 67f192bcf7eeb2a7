package articles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-corpus/internal/articles"
	"github.com/goliatone/go-corpus/internal/markdown"
	"github.com/goliatone/go-corpus/pkg/interfaces"
	"github.com/goliatone/go-corpus/pkg/testsupport"
)

func TestCorpusSyncWithBunIndex(t *testing.T) {
	ctx := context.Background()
	svc, repo := newIndexedService(t)

	result, err := svc.Sync(ctx, ".", interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("sync: %v", err)
	}
	if result.Created != 2 {
		t.Fatalf("expected 2 created, got %+v", result)
	}
	if result.Updated != 0 || result.Deleted != 0 || result.Skipped != 0 {
		t.Fatalf("unexpected counters on first sync: %+v", result)
	}

	record, err := svc.GetBySlug(ctx, "constant-product-amms")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if record.Title != "Constant Product AMMs" {
		t.Fatalf("unexpected title %q", record.Title)
	}
	if record.WordCount == 0 || record.ReadingMins < 1 {
		t.Fatalf("expected stats on record, got %+v", record)
	}

	// Drafts are skipped unless requested.
	if _, err := svc.GetBySlug(ctx, "draft-note"); err == nil {
		t.Fatal("expected draft to be absent from the index")
	}

	// A second pass sees identical checksums and skips everything.
	result, err = svc.Sync(ctx, ".", interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("second sync: %v", err)
	}
	if result.Skipped != 2 || result.Created != 0 {
		t.Fatalf("expected 2 skipped on unchanged corpus, got %+v", result)
	}

	// Stale checksums trigger updates.
	stale, err := repo.GetBySlug(ctx, "order-books")
	if err != nil {
		t.Fatalf("load stale record: %v", err)
	}
	stale.Checksum = "outdated"
	if _, err := repo.Update(ctx, stale); err != nil {
		t.Fatalf("force stale checksum: %v", err)
	}

	result, err = svc.Sync(ctx, ".", interfaces.SyncOptions{})
	if err != nil {
		t.Fatalf("third sync: %v", err)
	}
	if result.Updated != 1 || result.Skipped != 1 {
		t.Fatalf("expected 1 updated and 1 skipped, got %+v", result)
	}
}

func TestCorpusSyncIncludeDraftsAndList(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIndexedService(t)

	if _, err := svc.Sync(ctx, ".", interfaces.SyncOptions{IncludeDrafts: true}); err != nil {
		t.Fatalf("sync with drafts: %v", err)
	}

	published, err := svc.List(ctx, interfaces.ListOptions{})
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(published) != 2 {
		t.Fatalf("expected 2 published articles, got %d", len(published))
	}

	all, err := svc.List(ctx, interfaces.ListOptions{IncludeDrafts: true})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 articles including the draft, got %d", len(all))
	}

	tagged, err := svc.List(ctx, interfaces.ListOptions{Tag: "defi"})
	if err != nil {
		t.Fatalf("list by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].Slug != "constant-product-amms" {
		t.Fatalf("expected only the defi article, got %+v", tagged)
	}
}

func TestCorpusSyncDeleteOrphaned(t *testing.T) {
	ctx := context.Background()
	svc, repo := newIndexedService(t)

	date := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	orphan := &articles.Article{
		ID:       uuid.New(),
		Slug:     "retired-article",
		Title:    "Retired Article",
		Path:     "retired-article.md",
		Date:     &date,
		Checksum: "deadbeef",
	}
	if _, err := repo.Create(ctx, orphan); err != nil {
		t.Fatalf("seed orphan: %v", err)
	}

	result, err := svc.Sync(ctx, ".", interfaces.SyncOptions{DeleteOrphaned: true})
	if err != nil {
		t.Fatalf("sync with delete-orphaned: %v", err)
	}
	if result.Deleted != 1 {
		t.Fatalf("expected 1 deleted orphan, got %+v", result)
	}

	if _, err := repo.GetBySlug(ctx, "retired-article"); !errors.Is(err, articles.ErrArticleNotFound) {
		t.Fatalf("expected orphan to be gone, got %v", err)
	}
}

func TestCorpusSyncDryRun(t *testing.T) {
	ctx := context.Background()
	svc, repo := newIndexedService(t)

	result, err := svc.Sync(ctx, ".", interfaces.SyncOptions{DryRun: true})
	if err != nil {
		t.Fatalf("dry-run sync: %v", err)
	}
	if result.Created != 2 {
		t.Fatalf("expected dry-run to count 2 creates, got %+v", result)
	}

	indexed, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list index: %v", err)
	}
	if len(indexed) != 0 {
		t.Fatalf("dry-run must not write, found %d rows", len(indexed))
	}
}

func TestCorpusSummarize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIndexedService(t)

	summary, err := svc.Summarize(ctx, ".")
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Articles != 3 || summary.Drafts != 1 {
		t.Fatalf("unexpected corpus counts: %+v", summary)
	}
	if summary.TagCounts["defi"] != 1 || summary.TagCounts["trading"] != 1 {
		t.Fatalf("unexpected tag census: %+v", summary.TagCounts)
	}
	if summary.SnippetLanguages["python"] != 1 {
		t.Fatalf("expected 1 python snippet, got %+v", summary.SnippetLanguages)
	}
	if summary.TotalWords == 0 {
		t.Fatal("expected non-zero total words")
	}
}

func newIndexedService(t *testing.T) (*articles.Service, articles.ArticleRepository) {
	t.Helper()

	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)
	registerArticleModels(t, bunDB)

	markdownSvc, err := markdown.NewService(markdown.Config{
		BasePath:  "testdata/corpus",
		Pattern:   "*.md",
		Recursive: true,
	}, nil)
	if err != nil {
		t.Fatalf("markdown service: %v", err)
	}

	repo := articles.NewBunArticleRepository(bunDB)
	svc, err := articles.NewService(articles.ServiceConfig{
		Markdown: markdownSvc,
		Articles: repo,
	})
	if err != nil {
		t.Fatalf("articles service: %v", err)
	}
	return svc, repo
}

func registerArticleModels(t *testing.T, db *bun.DB) {
	t.Helper()

	ctx := context.Background()
	if _, err := db.NewCreateTable().
		Model((*articles.Article)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		t.Fatalf("create articles table: %v", err)
	}
	if _, err := db.ExecContext(ctx, "CREATE UNIQUE INDEX IF NOT EXISTS idx_articles_slug_unique ON articles(slug)"); err != nil {
		t.Fatalf("create slug index: %v", err)
	}
}
