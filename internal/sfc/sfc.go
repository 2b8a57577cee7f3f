package sfc

import (
	"fmt"
	"regexp"
	"strings"
)

// Style is one <style> block of a component file.
type Style struct {
	// Content is the verbatim block body, never transformed.
	Content string
	// Scoped reflects the presence of the scoped attribute.
	Scoped bool
}

// Descriptor holds the segments of a single-file component. Template is
// the raw markup handed to the rewrite pipeline; Script and Styles pass
// through verbatim.
type Descriptor struct {
	Template    string
	HasTemplate bool
	Script      string
	HasScript   bool
	Styles      []Style
}

var (
	// Greedy body match: a component template may itself contain
	// <template> elements, so the segment runs to the last close tag.
	templateRe = regexp.MustCompile(`(?s)<template[^>]*>(.*)</template>`)
	scriptRe   = regexp.MustCompile(`(?s)<script[^>]*>(.*?)</script>`)
	styleRe    = regexp.MustCompile(`(?s)<style([^>]*)>(.*?)</style>`)
)

// Parse splits raw component file text into its segments.
func Parse(src string) (*Descriptor, error) {
	d := &Descriptor{}

	if m := templateRe.FindStringSubmatch(src); m != nil {
		d.Template = m[1]
		d.HasTemplate = true
	}
	if m := scriptRe.FindStringSubmatch(src); m != nil {
		d.Script = m[1]
		d.HasScript = true
	}
	for _, m := range styleRe.FindAllStringSubmatch(src, -1) {
		d.Styles = append(d.Styles, Style{
			Content: m[2],
			Scoped:  strings.Contains(m[1], "scoped"),
		})
	}

	if !d.HasTemplate && !d.HasScript && len(d.Styles) == 0 {
		return nil, fmt.Errorf("no template, script or style segment found")
	}
	return d, nil
}

// Assemble reconstructs component file text from the descriptor: template
// first, then script, then one block per style segment.
func (d *Descriptor) Assemble() string {
	var b strings.Builder

	if d.HasTemplate {
		b.WriteString("<template>")
		b.WriteString(d.Template)
		b.WriteString("</template>\n")
	}
	if d.HasScript {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("<script>")
		b.WriteString(d.Script)
		b.WriteString("</script>\n")
	}
	for _, s := range d.Styles {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		if s.Scoped {
			b.WriteString("<style scoped>")
		} else {
			b.WriteString("<style>")
		}
		b.WriteString(s.Content)
		b.WriteString("</style>\n")
	}

	return b.String()
}
