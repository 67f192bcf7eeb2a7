package lint

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// frontMatterSchema is the corpus front-matter contract: title and date are
// required, the optional keys must carry the conventional shapes. Unknown
// keys are allowed; articles are free to carry custom metadata.
const frontMatterSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["title", "date"],
	"properties": {
		"title": {"type": "string", "minLength": 1},
		"date": {"type": "string", "minLength": 1},
		"draft": {"type": "boolean"},
		"tags": {"type": "array", "items": {"type": "string", "minLength": 1}},
		"slug": {"type": "string", "minLength": 1},
		"summary": {"type": "string"},
		"author": {"type": "string"}
	}
}`

func compileFrontMatterSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("frontmatter.json", strings.NewReader(frontMatterSchema)); err != nil {
		return nil, fmt.Errorf("lint: add front-matter schema: %w", err)
	}
	return compiler.Compile("frontmatter.json")
}

// validateFrontMatter runs the raw front-matter map through the compiled
// schema and flattens the violations into messages. The map is round-tripped
// through JSON first so YAML-native values (timestamps in particular) take
// the shapes the schema speaks about.
func validateFrontMatter(schema *jsonschema.Schema, raw map[string]any) ([]string, error) {
	if raw == nil {
		raw = map[string]any{}
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("lint: encode front-matter: %w", err)
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return nil, fmt.Errorf("lint: decode front-matter: %w", err)
	}

	if err := schema.Validate(payload); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return collectSchemaIssues(validationErr), nil
		}
		return []string{err.Error()}, nil
	}
	return nil, nil
}

func collectSchemaIssues(err *jsonschema.ValidationError) []string {
	if err == nil {
		return nil
	}
	issues := []string{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			location := strings.TrimSpace(node.InstanceLocation)
			if location == "" {
				location = "#"
			} else if !strings.HasPrefix(location, "#") {
				location = "#" + location
			}
			issues = append(issues, fmt.Sprintf("%s: %s", location, strings.TrimSpace(node.Message)))
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
