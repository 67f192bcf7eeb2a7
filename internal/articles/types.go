// Package articles owns the article model for the markdown collection: slug
// rules, content stats, and the SQLite index the sync workflow maintains.
package articles

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-corpus/pkg/interfaces"
)

// Article is the indexed representation of one corpus markdown file.
type Article struct {
	bun.BaseModel `bun:"table:articles,alias:a"`

	ID          uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	Slug        string     `bun:"slug,notnull,unique" json:"slug"`
	Title       string     `bun:"title,notnull" json:"title"`
	Summary     *string    `bun:"summary" json:"summary,omitempty"`
	Author      *string    `bun:"author" json:"author,omitempty"`
	Path        string     `bun:"path,notnull" json:"path"`
	Tags        []string   `bun:"tags,type:jsonb" json:"tags,omitempty"`
	Draft       bool       `bun:"draft,notnull,default:false" json:"draft"`
	Date        *time.Time `bun:"date,nullzero" json:"date,omitempty"`
	Checksum    string     `bun:"checksum,notnull" json:"checksum"`
	WordCount   int        `bun:"word_count,notnull,default:0" json:"word_count"`
	ReadingMins int        `bun:"reading_mins,notnull,default:0" json:"reading_mins"`
	CreatedAt   time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Record converts the stored article into the shared contract type.
func (a *Article) Record() *interfaces.ArticleRecord {
	if a == nil {
		return nil
	}
	record := &interfaces.ArticleRecord{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Path:        a.Path,
		Tags:        append([]string(nil), a.Tags...),
		Draft:       a.Draft,
		Date:        a.Date,
		Checksum:    a.Checksum,
		WordCount:   a.WordCount,
		ReadingMins: a.ReadingMins,
	}
	if a.Summary != nil {
		record.Summary = *a.Summary
	}
	if a.Author != nil {
		record.Author = *a.Author
	}
	return record
}

// HasTag reports whether the article carries the supplied tag.
func (a *Article) HasTag(tag string) bool {
	for _, candidate := range a.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}
