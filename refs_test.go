package schemanode_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reoring/schemanode"
)

const refsDoc = `{
  "$id": "https://example.com/tree.json",
  "definitions": {
    "node": {
      "type": "object",
      "properties": {
        "children": {"type": "array", "items": {"$ref": "#/definitions/node"}},
        "meta": {"$ref": "#/$defs/meta"}
      }
    }
  },
  "$defs": {"meta": {"id": "meta", "type": "object"}},
  "allOf": [{"$ref": "#/definitions/node"}, {"$ref": "#/definitions/missing"}, {"$ref": "other.json#/x"}]
}`

func siteStrings(sites []schemanode.RefSite) []string {
	var out []string
	for _, s := range sites {
		out = append(out, s.Pointer+" "+s.Keyword+" "+s.Value)
	}
	return out
}

func TestBuildIndex(t *testing.T) {
	ix := schemanode.BuildIndex(mustParse(t, refsDoc))
	wantRefs := []string{
		"/definitions/node/properties/children/items $ref #/definitions/node",
		"/definitions/node/properties/meta $ref #/$defs/meta",
		"/allOf/0 $ref #/definitions/node",
		"/allOf/1 $ref #/definitions/missing",
		"/allOf/2 $ref other.json#/x",
	}
	if diff := cmp.Diff(wantRefs, siteStrings(ix.Refs)); diff != "" {
		t.Fatalf("refs (-want +got):\n%s", diff)
	}
	wantIDs := []string{" $id https://example.com/tree.json", "/$defs/meta id meta"}
	if diff := cmp.Diff(wantIDs, siteStrings(ix.IDs)); diff != "" {
		t.Fatalf("ids (-want +got):\n%s", diff)
	}
	wantDefs := []string{"/definitions/node definitions node", "/$defs/meta $defs meta"}
	if diff := cmp.Diff(wantDefs, siteStrings(ix.Definitions)); diff != "" {
		t.Fatalf("definitions (-want +got):\n%s", diff)
	}
}

func TestIndex_Lookup(t *testing.T) {
	root := mustParse(t, refsDoc)
	ix := schemanode.BuildIndex(root)
	node, ok := ix.Lookup("#/definitions/node")
	if !ok || node.Schema() == nil || !node.Schema().Type.Has(schemanode.TypeObject) {
		t.Fatalf("lookup of #/definitions/node failed")
	}
	items, ok := ix.Lookup("/definitions/node/properties/children/items")
	if !ok || *items.Schema().Ref != "#/definitions/node" {
		t.Fatalf("lookup of items failed")
	}
	if second, ok := ix.Lookup("#/allOf/1"); !ok || *second.Schema().Ref != "#/definitions/missing" {
		t.Fatalf("lookup into a sequence failed")
	}
	if r, ok := ix.Lookup("#"); !ok || r != root {
		t.Fatalf("# should resolve to the root")
	}
	for _, miss := range []string{"#/definitions/missing", "#/allOf/9", "#/allOf", "#/type", "no-slash"} {
		if _, ok := ix.Lookup(miss); ok {
			t.Errorf("%s should not resolve", miss)
		}
	}
}

func TestIndex_Unresolved(t *testing.T) {
	ix := schemanode.BuildIndex(mustParse(t, refsDoc))
	got := siteStrings(ix.Unresolved())
	want := []string{"/allOf/1 $ref #/definitions/missing"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unresolved (-want +got):\n%s", diff)
	}
}

func TestIndex_EscapedPointer(t *testing.T) {
	root := mustParse(t, `{"definitions":{"a/b":{"title":"slash"},"c~d":{"title":"tilde"}}}`)
	ix := schemanode.BuildIndex(root)
	for ptr, title := range map[string]string{"#/definitions/a~1b": "slash", "#/definitions/c~0d": "tilde"} {
		n, ok := ix.Lookup(ptr)
		if !ok || *n.Schema().Title != title {
			t.Errorf("%s: lookup failed", ptr)
		}
	}
}

func TestIndex_LookupIntoExtension(t *testing.T) {
	doc := `{
  "components": {"schemas": {"A": {"type": "object"}, "list": [{"title": "first"}]}},
  "x-name": "not a schema",
  "$ref": "#/components/schemas/A"
}`
	ix := schemanode.BuildIndex(mustParse(t, doc))
	if got := ix.Unresolved(); len(got) != 0 {
		t.Fatalf("unexpected unresolved refs: %v", siteStrings(got))
	}
	a, ok := ix.Lookup("#/components/schemas/A")
	if !ok || !a.Schema().Type.Has(schemanode.TypeObject) {
		t.Fatalf("lookup into components failed")
	}
	if first, ok := ix.Lookup("#/components/schemas/list/0"); !ok || *first.Schema().Title != "first" {
		t.Fatalf("lookup into an extension array failed")
	}
	for _, miss := range []string{"#/components/schemas/B", "#/components/schemas/list/01", "#/x-name", "#/x-missing"} {
		if _, ok := ix.Lookup(miss); ok {
			t.Errorf("%s should not resolve", miss)
		}
	}
}

func TestIndex_LookupPointerTokens(t *testing.T) {
	root := mustParse(t, `{"allOf":[{"title":"zero"},{"title":"one"}],"definitions":{"a b":{"title":"space"},"50%":{"title":"pct"}}}`)
	ix := schemanode.BuildIndex(root)
	for _, miss := range []string{"#/allOf/01", "#/allOf/+1", "#/allOf/-1", "#/allOf/", "#/definitions/a%2", "/definitions/a%20b"} {
		if _, ok := ix.Lookup(miss); ok {
			t.Errorf("%s should not resolve", miss)
		}
	}
	for ptr, title := range map[string]string{
		"#/allOf/1":           "one",
		"#/definitions/a%20b": "space",
		"/definitions/a b":    "space",
		"#/definitions/50%25": "pct",
		"/definitions/50%":    "pct",
	} {
		n, ok := ix.Lookup(ptr)
		if !ok || *n.Schema().Title != title {
			t.Errorf("%s: lookup failed", ptr)
		}
	}
}
