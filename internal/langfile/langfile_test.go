package langfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"vue-i18n-extractor/internal/catalog"
)

func TestWriteModules(t *testing.T) {
	cat := catalog.New()
	key := cat.Record("你好")

	dir := t.TempDir()
	if err := WriteModules(dir, cat); err != nil {
		t.Fatalf("WriteModules: %v", err)
	}

	want := fmt.Sprintf("export default {\n  %q: \"你好\"\n}\n", key)

	for _, name := range []string{"zh.js", "en.js"} {
		data, err := os.ReadFile(filepath.Join(dir, Dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s content:\ngot  %q\nwant %q", name, string(data), want)
		}
	}
}

func TestWriteModulesSortedKeys(t *testing.T) {
	cat := catalog.New()
	cat.Record("乙")
	cat.Record("甲")
	cat.Record("丙")

	dir := t.TempDir()
	if err := WriteModules(dir, cat); err != nil {
		t.Fatalf("WriteModules: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(dir, Dir, "zh.js"))
	if err != nil {
		t.Fatal(err)
	}

	// A second run over the same catalog must be byte-identical.
	dir2 := t.TempDir()
	if err := WriteModules(dir2, cat); err != nil {
		t.Fatalf("WriteModules: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(dir2, Dir, "zh.js"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("module output not deterministic across runs")
	}
}
