package catalog

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var keyRe = regexp.MustCompile(`^i18n_[0-9a-f]{8}$`)

func TestKeyForFormat(t *testing.T) {
	key := KeyFor("提交")
	if !keyRe.MatchString(key) {
		t.Fatalf("KeyFor(提交) = %q, want i18n_ + 8 hex chars", key)
	}
}

func TestKeyForPure(t *testing.T) {
	if KeyFor("你好") != KeyFor("你好") {
		t.Fatal("KeyFor not deterministic")
	}
	// Trimming happens before hashing, so padded text maps to the same key.
	if KeyFor("  你好  ") != KeyFor("你好") {
		t.Fatal("KeyFor should ignore surrounding whitespace")
	}
	if KeyFor("你好") == KeyFor("再见") {
		t.Fatal("distinct texts produced identical keys")
	}
}

func TestRecordInsertsBothTables(t *testing.T) {
	cat := New()
	key := cat.Record("提交")

	if got := cat.Source[key]; got != "提交" {
		t.Errorf("source table = %q, want 提交", got)
	}
	if got := cat.Target[key]; got != "提交" {
		t.Errorf("target table = %q, want 提交", got)
	}
}

func TestRecordDedup(t *testing.T) {
	cat := New()
	k1 := cat.Record("你好")
	k2 := cat.Record("  你好 ")
	k3 := cat.Record("你好")

	if k1 != k2 || k1 != k3 {
		t.Fatalf("repeated text yielded different keys: %s %s %s", k1, k2, k3)
	}
	if cat.Len() != 1 {
		t.Fatalf("Len = %d, want 1", cat.Len())
	}
}

func TestMerge(t *testing.T) {
	a := New()
	a.Record("你好")

	b := New()
	b.Record("你好")
	b.Record("提交")

	a.Merge(b)

	want := New()
	want.Record("你好")
	want.Record("提交")

	if diff := cmp.Diff(want.Source, a.Source); diff != "" {
		t.Errorf("source table mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want.Target, a.Target); diff != "" {
		t.Errorf("target table mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeKeepsFirstOnConflict(t *testing.T) {
	a := New()
	key := a.Record("你好")

	// Forge a colliding catalog entry under the same key.
	b := New()
	b.Source[key] = "别的"
	b.Target[key] = "别的"

	a.Merge(b)

	if got := a.Source[key]; got != "你好" {
		t.Errorf("conflicting merge overwrote first text: %q", got)
	}
}
