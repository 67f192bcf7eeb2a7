// Package lint checks the corpus conventions: well-formed front-matter with
// the required keys, anchor links that resolve to real headings, relative
// links that resolve to real files, and unique slugs across the collection.
package lint
