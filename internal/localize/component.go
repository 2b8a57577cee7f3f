package localize

import (
	"fmt"

	"vue-i18n-extractor/internal/catalog"
	"vue-i18n-extractor/internal/markup"
	"vue-i18n-extractor/internal/sfc"
)

// Component rewrites one component file's text. The template segment is
// parsed, localized and re-serialized; script and style segments are
// reassembled verbatim. Discovered text accumulates into cat.
func Component(src string, cat *catalog.Catalog) (string, error) {
	desc, err := sfc.Parse(src)
	if err != nil {
		return "", fmt.Errorf("split segments: %w", err)
	}

	if desc.HasTemplate {
		nodes, err := markup.Parse(desc.Template)
		if err != nil {
			return "", fmt.Errorf("parse template: %w", err)
		}
		desc.Template = Render(nodes, cat)
	}

	return desc.Assemble(), nil
}
