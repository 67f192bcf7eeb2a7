package articles

import (
	"errors"
	"testing"

	"github.com/goliatone/go-corpus/pkg/interfaces"
)

func TestDeriveSlugExplicit(t *testing.T) {
	doc := &interfaces.Document{
		FilePath: "guides/amm-basics.md",
		FrontMatter: interfaces.FrontMatter{
			Slug: "constant-product-amms",
		},
	}

	slug, err := DeriveSlug(doc)
	if err != nil {
		t.Fatalf("derive slug: %v", err)
	}
	if slug != "constant-product-amms" {
		t.Fatalf("expected explicit slug, got %q", slug)
	}
}

func TestDeriveSlugFromFileName(t *testing.T) {
	doc := &interfaces.Document{FilePath: "guides/Docker Internals.md"}

	slug, err := DeriveSlug(doc)
	if err != nil {
		t.Fatalf("derive slug: %v", err)
	}
	if slug != "docker-internals" {
		t.Fatalf("expected normalized file name slug, got %q", slug)
	}
}

func TestDeriveSlugRejectsInvalidExplicit(t *testing.T) {
	doc := &interfaces.Document{
		FilePath: "guides/amm-basics.md",
		FrontMatter: interfaces.FrontMatter{
			Slug: "Not A Slug!",
		},
	}

	if _, err := DeriveSlug(doc); !errors.Is(err, ErrSlugInvalid) {
		t.Fatalf("expected ErrSlugInvalid, got %v", err)
	}
}

func TestDeriveSlugNilDocument(t *testing.T) {
	if _, err := DeriveSlug(nil); !errors.Is(err, ErrSlugRequired) {
		t.Fatalf("expected ErrSlugRequired, got %v", err)
	}
}
