package localize

import (
	"fmt"
	"testing"

	"vue-i18n-extractor/internal/catalog"
)

func TestExpressionReplacesChineseLiteral(t *testing.T) {
	cat := catalog.New()
	got := Expression(`msg + '你好'`, cat)

	want := fmt.Sprintf(`msg + $t('%s')`, catalog.KeyFor("你好"))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExpressionMultipleLiterals(t *testing.T) {
	cat := catalog.New()
	got := Expression(`ok ? "通过" : "失败"`, cat)

	want := fmt.Sprintf(`ok ? $t('%s') : $t('%s')`, catalog.KeyFor("通过"), catalog.KeyFor("失败"))
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if cat.Len() != 2 {
		t.Errorf("catalog entries = %d, want 2", cat.Len())
	}
}

func TestExpressionLeavesNonChineseAlone(t *testing.T) {
	cat := catalog.New()
	exprs := []string{
		`count > 0 ? 'yes' : 'no'`,
		`items.length`,
		`a + "b" + c`,
	}
	for _, expr := range exprs {
		if got := Expression(expr, cat); got != expr {
			t.Errorf("Expression(%q) = %q, want unchanged", expr, got)
		}
	}
	if cat.Len() != 0 {
		t.Errorf("catalog entries = %d, want 0", cat.Len())
	}
}

func TestExpressionEscapedQuoteInsideLiteral(t *testing.T) {
	cat := catalog.New()
	expr := `'it\'s fine' + name`
	if got := Expression(expr, cat); got != expr {
		t.Errorf("got %q, want unchanged", got)
	}
}

func TestExpressionUnterminatedLiteralKeptVerbatim(t *testing.T) {
	cat := catalog.New()
	expr := `broken + '你好`
	if got := Expression(expr, cat); got != expr {
		t.Errorf("got %q, want unchanged", got)
	}
	if cat.Len() != 0 {
		t.Errorf("catalog entries = %d, want 0", cat.Len())
	}
}
