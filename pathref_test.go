package schemanode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reoring/schemanode"
)

func TestPathRef_Pointer(t *testing.T) {
	p := schemanode.RootPath().Field("properties").Field("a/b~c").Index(2)
	if got := p.Pointer(); got != "/properties/a~1b~0c/2" {
		t.Fatalf("pointer = %q", got)
	}
	if schemanode.RootPath().Pointer() != "" {
		t.Fatalf("root pointer should be empty")
	}
}

func TestPathRef_Immutable(t *testing.T) {
	base := schemanode.RootPath().Field("a")
	x := base.Field("x")
	y := base.Field("y")
	if x.Pointer() != "/a/x" || y.Pointer() != "/a/y" || base.Pointer() != "/a" {
		t.Fatalf("extending a path must not alias: %s %s %s", x.Pointer(), y.Pointer(), base.Pointer())
	}
}

func TestParsePointer(t *testing.T) {
	p, err := schemanode.ParsePointer("#/definitions/a~1b/c~0d")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"definitions", "a/b", "c~d"}, p.Tokens()); diff != "" {
		t.Fatalf("tokens (-want +got):\n%s", diff)
	}
	if _, err := schemanode.ParsePointer("definitions"); err == nil {
		t.Fatalf("pointer without leading slash should fail")
	}
}

func TestPathRef_Issue(t *testing.T) {
	it := schemanode.RootPath().Issue(schemanode.CodeMalformedKeyword, "msg", "keyword", "enum")
	if it.Path != "/" || it.Offset != -1 || it.Params["keyword"] != "enum" {
		t.Fatalf("unexpected issue: %+v", it)
	}
}
