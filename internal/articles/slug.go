package articles

import (
	"path/filepath"
	"strings"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// SlugNormalizer exposes the slug normalizer interface.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeSlug applies the default slug normalization rules.
func NormalizeSlug(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidSlug reports whether the slug matches the default rules.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}

// DeriveSlug resolves the canonical slug for a document: the explicit
// front-matter slug when present, otherwise a normalized form of the file
// name without its extension.
func DeriveSlug(doc *interfaces.Document) (string, error) {
	if doc == nil {
		return "", ErrSlugRequired
	}

	if explicit := strings.TrimSpace(doc.FrontMatter.Slug); explicit != "" {
		if !IsValidSlug(explicit) {
			return "", ErrSlugInvalid
		}
		return explicit, nil
	}

	base := filepath.Base(doc.FilePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if strings.TrimSpace(base) == "" {
		return "", ErrSlugRequired
	}
	return NormalizeSlug(base)
}
