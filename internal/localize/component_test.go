package localize

import (
	"fmt"
	"testing"

	"vue-i18n-extractor/internal/catalog"
)

func TestComponentRewritesTemplateOnly(t *testing.T) {
	src := `<template>
  <div>
    <button title="提交">提交</button>
  </div>
</template>

<script>
export default { name: 'Demo' }
</script>

<style scoped>
.btn { color: red; }
</style>
`

	cat := catalog.New()
	got, err := Component(src, cat)
	if err != nil {
		t.Fatalf("Component: %v", err)
	}

	key := catalog.KeyFor("提交")
	want := fmt.Sprintf(`<template>
  <div>
    <button :title="$t('%[1]s')">{{ $t('%[1]s') }}</button>
  </div>
</template>

<script>
export default { name: 'Demo' }
</script>

<style scoped>
.btn { color: red; }
</style>
`, key)

	if got != want {
		t.Errorf("rewritten component mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if cat.Len() != 1 {
		t.Errorf("catalog entries = %d, want 1", cat.Len())
	}
}

func TestComponentScriptOnly(t *testing.T) {
	src := `<script>
export default {}
</script>
`
	cat := catalog.New()
	got, err := Component(src, cat)
	if err != nil {
		t.Fatalf("Component: %v", err)
	}
	if got != src {
		t.Errorf("script-only component changed:\ngot  %q\nwant %q", got, src)
	}
}

func TestComponentNoSegments(t *testing.T) {
	cat := catalog.New()
	if _, err := Component("just some text", cat); err == nil {
		t.Error("expected error for file without segments")
	}
}
