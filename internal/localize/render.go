package localize

import (
	"fmt"
	"regexp"
	"strings"

	"vue-i18n-extractor/internal/catalog"
	"vue-i18n-extractor/internal/markup"
	"vue-i18n-extractor/internal/textutil"
)

var interpolationRe = regexp.MustCompile(`(?s)\{\{(.*?)\}\}`)

// Render serializes a node tree back to markup, localizing attribute
// values, text nodes and interpolation literals along the way. The walk is
// pre-order and depth-first; sibling and child order is preserved exactly,
// and any text without Chinese content is emitted byte-identical.
func Render(nodes []*markup.Node, cat *catalog.Catalog) string {
	var b strings.Builder
	renderNodes(&b, nodes, cat)
	return b.String()
}

func renderNodes(b *strings.Builder, nodes []*markup.Node, cat *catalog.Catalog) {
	for _, n := range nodes {
		switch n.Type {
		case markup.ElementNode:
			renderElement(b, n, cat)
		case markup.TextNode:
			renderText(b, n.Content, cat)
		case markup.CommentNode:
			b.WriteString("<!--")
			b.WriteString(n.Content)
			b.WriteString("-->")
		}
	}
}

func renderElement(b *strings.Builder, n *markup.Node, cat *catalog.Catalog) {
	Attributes(n, cat)

	b.WriteByte('<')
	b.WriteString(n.Name)
	for _, a := range n.Attrs {
		b.WriteByte(' ')
		b.WriteString(a.Name)
		if a.HasValue {
			quote := a.Quote
			if quote == 0 {
				quote = '"'
			}
			b.WriteByte('=')
			b.WriteByte(quote)
			b.WriteString(a.Value)
			b.WriteByte(quote)
		}
	}
	if n.SelfClosing {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')
	if markup.IsVoid(n.Name) {
		return
	}

	renderNodes(b, n.Children, cat)

	b.WriteString("</")
	b.WriteString(n.Name)
	b.WriteByte('>')
}

// renderText handles one text node. Text holding interpolations keeps its
// shape with each `{{ … }}` normalized to single-space padding and its
// interior localized; plain Chinese text is wrapped in a translation-call
// interpolation; everything else passes through unchanged.
func renderText(b *strings.Builder, content string, cat *catalog.Catalog) {
	trimmed := strings.TrimSpace(content)
	switch {
	case strings.Contains(trimmed, "{{") && strings.Contains(trimmed, "}}"):
		b.WriteString(interpolationRe.ReplaceAllStringFunc(content, func(m string) string {
			inner := strings.TrimSpace(m[2 : len(m)-2])
			return "{{ " + Expression(inner, cat) + " }}"
		}))
	case textutil.IsLocalizable(trimmed):
		fmt.Fprintf(b, "{{ $t('%s') }}", cat.Record(trimmed))
	default:
		b.WriteString(content)
	}
}
