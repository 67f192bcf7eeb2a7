package lint

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// documentOutline captures the link targets a document exposes and the link
// destinations it references.
type documentOutline struct {
	headingIDs map[string]struct{}
	anchors    []string
	relative   []string
}

// outlineDocument parses the markdown body and collects heading IDs plus link
// destinations. Heading IDs use goldmark's auto-heading-id algorithm, the
// same one the renderer emits, so anchors are checked against what readers
// actually get.
func outlineDocument(body []byte) *documentOutline {
	outline := &documentOutline{
		headingIDs: map[string]struct{}{},
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
		case *ast.Heading:
			if id, ok := typed.AttributeString("id"); ok {
				if value, ok := id.([]byte); ok {
					outline.headingIDs[string(value)] = struct{}{}
				}
			}
		case *ast.Link:
			outline.addDestination(string(typed.Destination))
		case *ast.Image:
			outline.addDestination(string(typed.Destination))
		}

		return ast.WalkContinue, nil
	})

	return outline
}

func (o *documentOutline) addDestination(dest string) {
	dest = strings.TrimSpace(dest)
	if dest == "" || isExternal(dest) {
		return
	}

	if strings.HasPrefix(dest, "#") {
		o.anchors = append(o.anchors, dest)
		return
	}

	// Strip any fragment; only the file part is resolvable corpus-wide.
	if idx := strings.Index(dest, "#"); idx >= 0 {
		dest = dest[:idx]
	}
	if dest != "" {
		o.relative = append(o.relative, dest)
	}
}

func (o *documentOutline) hasHeading(fragment string) bool {
	_, ok := o.headingIDs[strings.TrimPrefix(fragment, "#")]
	return ok
}

func isExternal(dest string) bool {
	lower := strings.ToLower(dest)
	return strings.Contains(lower, "://") ||
		strings.HasPrefix(lower, "//") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "/")
}
