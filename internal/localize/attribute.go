package localize

import (
	"fmt"
	"strings"

	"vue-i18n-extractor/internal/catalog"
	"vue-i18n-extractor/internal/markup"
	"vue-i18n-extractor/internal/textutil"
)

// bindMarker turns a literal attribute into a bound expression attribute.
const bindMarker = ":"

// localizableAttrs enumerates attribute names whose values are
// user-visible text.
var localizableAttrs = map[string]bool{
	"title":       true,
	"placeholder": true,
	"label":       true,
	"alt":         true,
}

// Attributes rewrites the localizable attributes of an element in place.
// A matching attribute with a Chinese value becomes a bound translation
// call, `:name="$t('<key>')"`; the binding marker is added only when the
// attribute was not already bound. Everything else is left untouched.
func Attributes(el *markup.Node, cat *catalog.Catalog) {
	for i, attr := range el.Attrs {
		if !attr.HasValue {
			continue
		}
		name := strings.TrimPrefix(attr.Name, bindMarker)
		if !localizableAttrs[name] {
			continue
		}
		if !textutil.IsLocalizable(attr.Value) {
			continue
		}

		key := cat.Record(attr.Value)
		el.Attrs[i].Name = bindMarker + name
		el.Attrs[i].Value = fmt.Sprintf("$t('%s')", key)
		el.Attrs[i].Quote = '"'
	}
}
