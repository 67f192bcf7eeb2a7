package articles

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// DefaultWordsPerMinute is the reading speed used when none is configured.
const DefaultWordsPerMinute = 200

// DocumentStats aggregates content measurements for a single article body.
type DocumentStats struct {
	WordCount   int
	ReadingMins int
	Headings    int
	// Languages counts fenced code blocks by their info-string language.
	// Blocks without a language are recorded under "plain".
	Languages map[string]int
}

// ComputeStats walks the Markdown AST of the supplied body and measures the
// prose. Code blocks and inline code are excluded from the word count; the
// corpus convention is that embedded snippets illustrate, they are not prose.
func ComputeStats(body []byte, wordsPerMinute int) DocumentStats {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}

	stats := DocumentStats{
		Languages: map[string]int{},
	}

	engine := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	root := engine.Parser().Parse(text.NewReader(body))

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch typed := node.(type) {
		case *ast.FencedCodeBlock:
			stats.Languages[snippetLanguage(typed, body)]++
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock:
			stats.Languages["plain"]++
			return ast.WalkSkipChildren, nil
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Heading:
			stats.Headings++
		case *ast.Text:
			stats.WordCount += len(strings.Fields(string(typed.Segment.Value(body))))
		}

		return ast.WalkContinue, nil
	})

	stats.ReadingMins = (stats.WordCount + wordsPerMinute - 1) / wordsPerMinute
	if stats.ReadingMins < 1 {
		stats.ReadingMins = 1
	}

	return stats
}

func snippetLanguage(block *ast.FencedCodeBlock, source []byte) string {
	lang := strings.ToLower(strings.TrimSpace(string(block.Language(source))))
	if lang == "" {
		return "plain"
	}
	return lang
}
