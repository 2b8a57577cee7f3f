package localize

import (
	"fmt"
	"strings"

	"vue-i18n-extractor/internal/catalog"
	"vue-i18n-extractor/internal/textutil"
)

// Expression rewrites the Chinese string literals inside an interpolation
// expression. Each single- or double-quoted literal containing Chinese
// text is replaced, quotes included, by a translation call; all other
// expression content passes through verbatim and in original order.
func Expression(expr string, cat *catalog.Catalog) string {
	var b strings.Builder

	i := 0
	for i < len(expr) {
		c := expr[i]
		if c != '\'' && c != '"' {
			b.WriteByte(c)
			i++
			continue
		}

		j := i + 1
		for j < len(expr) && expr[j] != c {
			if expr[j] == '\\' && j+1 < len(expr) {
				j++
			}
			j++
		}
		if j >= len(expr) {
			// Unterminated literal; keep the tail verbatim.
			b.WriteString(expr[i:])
			break
		}

		lit := expr[i+1 : j]
		if textutil.ContainsChinese(lit) {
			fmt.Fprintf(&b, "$t('%s')", cat.Record(lit))
		} else {
			b.WriteString(expr[i : j+1])
		}
		i = j + 1
	}

	return b.String()
}
