// Package markdown loads corpus articles from disk, extracts YAML
// front-matter, and renders Markdown bodies into HTML.
package markdown
