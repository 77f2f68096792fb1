package schemanode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reoring/schemanode"
)

func TestMap_InsertionOrder(t *testing.T) {
	m := schemanode.NewMap[int]()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)
	m.Set("b", 4)
	if diff := cmp.Diff([]string{"b", "a", "c"}, m.Keys()); diff != "" {
		t.Fatalf("keys (-want +got):\n%s", diff)
	}
	if v, _ := m.Get("b"); v != 4 {
		t.Fatalf("overwrite should update the value, got %d", v)
	}
	m.Delete("a")
	m.Delete("missing")
	var got []string
	for k := range m.All() {
		got = append(got, k)
	}
	if diff := cmp.Diff([]string{"b", "c"}, got); diff != "" {
		t.Fatalf("after delete (-want +got):\n%s", diff)
	}
	if m.Len() != 2 || m.Has("a") {
		t.Fatalf("len=%d has(a)=%v", m.Len(), m.Has("a"))
	}
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m *schemanode.Map[string]
	if m.Len() != 0 || m.Has("x") || m.Keys() != nil {
		t.Fatalf("nil map should read as empty")
	}
	for range m.All() {
		t.Fatalf("nil map should not yield")
	}
	m.Delete("x")
}

func TestMap_ZeroValueSet(t *testing.T) {
	var m schemanode.Map[bool]
	m.Set("k", true)
	if v, ok := m.Get("k"); !ok || !v {
		t.Fatalf("zero Map should accept Set")
	}
}
