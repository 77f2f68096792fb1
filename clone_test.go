package schemanode_test

import (
	"testing"

	"github.com/reoring/schemanode"
)

func TestClone_DeepAndIndependent(t *testing.T) {
	js := `{"title":"t","type":["string","null"],"required":["a"],"properties":{"a":{"enum":[1,{"k":"v"}]}},"items":[true],"dependencies":{"a":["b"]},"exclusiveMinimum":1,"defaultSnippets":[{"body":{"x":1}}],"x-ext":[1]}`
	orig := mustParse(t, js)
	c := orig.Clone()
	if got := marshal(t, c); got != js {
		t.Fatalf("clone should serialize identically:\n got: %s\nwant: %s", got, js)
	}

	cs := c.Schema()
	*cs.Title = "changed"
	cs.Required[0] = "z"
	a, _ := cs.Properties.Get("a")
	a.Schema().Enum[1].Object[0].Value = schemanode.StringValue("w")
	cs.Properties.Set("new", schemanode.True())
	dep, _ := cs.Dependencies.Get("a")
	dep.Properties[0] = "q"
	cs.DefaultSnippets[0].Body.Object[0].Value = schemanode.IntValue(2)
	cs.Extra.Set("x-ext", schemanode.Null())

	if got := marshal(t, orig); got != js {
		t.Fatalf("mutating the clone changed the original:\n got: %s\nwant: %s", got, js)
	}
}

func TestClone_Booleans(t *testing.T) {
	if schemanode.True().Clone().Variant() != schemanode.VariantTrue {
		t.Fatalf("true clone")
	}
	if schemanode.False().Clone().Variant() != schemanode.VariantFalse {
		t.Fatalf("false clone")
	}
	var n *schemanode.SchemaOrBool
	if n.Clone() != nil {
		t.Fatalf("nil clone")
	}
}
