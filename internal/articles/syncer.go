package articles

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/goliatone/go-corpus/internal/logging"
	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Sync reconciles the markdown directory against the article index. Unchanged
// files (by checksum) are skipped, new slugs are created, changed ones are
// updated, and optionally orphaned index rows are deleted.
func (s *Service) Sync(ctx context.Context, dir string, opts interfaces.SyncOptions) (*interfaces.SyncResult, error) {
	if s.articles == nil {
		return nil, ErrIndexRequired
	}

	docs, err := s.markdown.LoadDirectory(ctx, dir, interfaces.LoadOptions{
		Pattern: opts.Pattern,
	})
	if err != nil {
		return nil, err
	}

	acc := newSyncAccumulator()
	seen := map[string]string{}

	for _, doc := range docs {
		if doc.FrontMatter.Draft && !opts.IncludeDrafts {
			continue
		}

		article, buildErr := s.BuildArticle(doc)
		if buildErr != nil {
			acc.addError(fmt.Errorf("%s: %w", doc.FilePath, buildErr))
			continue
		}

		if previous, ok := seen[article.Slug]; ok {
			acc.addError(&DuplicateSlugError{
				Slug:  article.Slug,
				Paths: []string{previous, doc.FilePath},
			})
			continue
		}
		seen[article.Slug] = doc.FilePath

		action, applyErr := s.applyArticle(ctx, article, opts)
		if applyErr != nil {
			acc.addError(applyErr)
			continue
		}
		acc.count(action)
	}

	if opts.DeleteOrphaned {
		if err := s.deleteOrphaned(ctx, seen, opts, acc); err != nil {
			acc.addError(err)
		}
	}

	result := acc.result()
	logging.WithFields(s.logger, map[string]any{
		"created": result.Created,
		"updated": result.Updated,
		"skipped": result.Skipped,
		"deleted": result.Deleted,
		"errors":  len(result.Errors),
		"dry_run": opts.DryRun,
	}).Info("corpus.sync.completed")

	return result, firstError(result.Errors)
}

func (s *Service) applyArticle(ctx context.Context, article *Article, opts interfaces.SyncOptions) (syncAction, error) {
	existing, err := s.articles.GetBySlug(ctx, article.Slug)
	if err != nil && !errors.Is(err, ErrArticleNotFound) {
		return actionSkipped, fmt.Errorf("corpus sync: lookup %s: %w", article.Slug, err)
	}

	if existing == nil {
		if opts.DryRun {
			return actionCreated, nil
		}
		article.ID = uuid.New()
		if _, createErr := s.articles.Create(ctx, article); createErr != nil {
			return actionSkipped, fmt.Errorf("corpus sync: create %s: %w", article.Slug, createErr)
		}
		return actionCreated, nil
	}

	if existing.Checksum == article.Checksum {
		return actionSkipped, nil
	}

	if opts.DryRun {
		return actionUpdated, nil
	}
	article.ID = existing.ID
	article.CreatedAt = existing.CreatedAt
	if _, updateErr := s.articles.Update(ctx, article); updateErr != nil {
		return actionSkipped, fmt.Errorf("corpus sync: update %s: %w", article.Slug, updateErr)
	}
	return actionUpdated, nil
}

func (s *Service) deleteOrphaned(ctx context.Context, seen map[string]string, opts interfaces.SyncOptions, acc *syncAccumulator) error {
	indexed, err := s.articles.List(ctx)
	if err != nil {
		return fmt.Errorf("corpus sync: list index: %w", err)
	}

	for _, record := range indexed {
		if _, ok := seen[record.Slug]; ok {
			continue
		}
		if !opts.DryRun {
			if err := s.articles.Delete(ctx, record.ID); err != nil {
				return fmt.Errorf("corpus sync: delete %s: %w", record.Slug, err)
			}
		}
		acc.deleted++
	}

	return nil
}

type syncAction int

const (
	actionCreated syncAction = iota
	actionUpdated
	actionSkipped
)

type syncAccumulator struct {
	created int
	updated int
	deleted int
	skipped int
	errors  []error
}

func newSyncAccumulator() *syncAccumulator {
	return &syncAccumulator{
		errors: []error{},
	}
}

func (a *syncAccumulator) count(action syncAction) {
	switch action {
	case actionCreated:
		a.created++
	case actionUpdated:
		a.updated++
	case actionSkipped:
		a.skipped++
	}
}

func (a *syncAccumulator) addError(err error) {
	if err != nil {
		a.errors = append(a.errors, err)
	}
}

func (a *syncAccumulator) result() *interfaces.SyncResult {
	return &interfaces.SyncResult{
		Created: a.created,
		Updated: a.updated,
		Skipped: a.skipped,
		Deleted: a.deleted,
		Errors:  a.errors,
	}
}

func firstError(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}
