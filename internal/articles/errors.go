package articles

import (
	"errors"
	"fmt"
)

var (
	ErrSlugRequired     = errors.New("corpus: slug is required")
	ErrSlugInvalid      = errors.New("corpus: slug contains invalid characters")
	ErrDuplicateSlug    = errors.New("corpus: slug already used by another article")
	ErrTitleRequired    = errors.New("corpus: front-matter title is required")
	ErrDateRequired     = errors.New("corpus: front-matter date is required")
	ErrArticleNotFound  = errors.New("corpus: article not found")
	ErrServiceRequired  = errors.New("corpus: markdown service is required")
	ErrIndexRequired    = errors.New("corpus: article repository is required")
	ErrDocumentRequired = errors.New("corpus: nil document")
)

// NotFoundError captures missing article lookups with the identifying key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrArticleNotFound.Error()
	}
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrArticleNotFound
}

// DuplicateSlugError reports the two paths competing for one slug.
type DuplicateSlugError struct {
	Slug  string
	Paths []string
}

func (e *DuplicateSlugError) Error() string {
	if e == nil {
		return ErrDuplicateSlug.Error()
	}
	return fmt.Sprintf("%s: slug=%s paths=%v", ErrDuplicateSlug.Error(), e.Slug, e.Paths)
}

func (e *DuplicateSlugError) Unwrap() error {
	return ErrDuplicateSlug
}
