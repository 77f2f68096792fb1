package schemanode_test

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reoring/schemanode"
)

func decode(t *testing.T, js string) schemanode.Value {
	t.Helper()
	v, err := schemanode.DecodeValue(context.Background(), schemanode.JSONBytes([]byte(js)))
	if err != nil {
		t.Fatalf("decode %s: %v", js, err)
	}
	return v
}

func TestValue_RoundTripLiteral(t *testing.T) {
	for _, js := range []string{
		`null`, `true`, `"aé\n"`, `1.10`, `-0`, `1E+400`, `[]`, `{}`,
		`{"z":[1,{"y":null}],"a":"<b>"}`,
	} {
		v := decode(t, js)
		b, err := v.MarshalJSON()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if string(b) != js {
			t.Errorf("got %s want %s", b, js)
		}
	}
}

func TestValue_Equal(t *testing.T) {
	cases := []struct {
		a, b string
		eq   bool
	}{
		{`1`, `1.0`, true},
		{`1e2`, `100`, true},
		{`0.1`, `0.10000000000000001`, false},
		{`{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{`[1,2]`, `[2,1]`, false},
		{`"1"`, `1`, false},
		{`null`, `null`, true},
		{`{"a":null}`, `{}`, false},
	}
	for _, c := range cases {
		if got := decode(t, c.a).Equal(decode(t, c.b)); got != c.eq {
			t.Errorf("%s == %s: got %v want %v", c.a, c.b, got, c.eq)
		}
	}
}

func TestValueOf(t *testing.T) {
	v, err := schemanode.ValueOf(map[string]any{
		"b": []any{true, nil, "x"},
		"a": json.Number("1.50"),
		"c": 2,
	})
	if err != nil {
		t.Fatalf("value of: %v", err)
	}
	b, _ := v.MarshalJSON()
	if string(b) != `{"a":1.50,"b":[true,null,"x"],"c":2}` {
		t.Fatalf("got %s", b)
	}
	if _, err := schemanode.ValueOf(math.NaN()); err == nil {
		t.Fatalf("NaN should be rejected")
	}
	if _, err := schemanode.ValueOf(struct{}{}); err == nil {
		t.Fatalf("structs are not supported")
	}
}

func TestValue_Interface(t *testing.T) {
	v := decode(t, `{"a":[1,"x",false,null]}`)
	want := map[string]any{"a": []any{json.Number("1"), "x", false, nil}}
	if diff := cmp.Diff(want, v.Interface()); diff != "" {
		t.Fatalf("interface (-want +got):\n%s", diff)
	}
}

func TestValue_CloneIndependent(t *testing.T) {
	v := decode(t, `{"a":[1,2]}`)
	c := v.Clone()
	c.Object[0].Value.Array[0] = schemanode.StringValue("changed")
	if v.Object[0].Value.Array[0].Kind != schemanode.KindNumber {
		t.Fatalf("clone shares storage with the original")
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var v schemanode.Value
	if err := json.Unmarshal([]byte(`{"k":[1,2.50]}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got, _ := v.Get("k"); got.Array[1].Number != "2.50" {
		t.Fatalf("number literal not kept: %+v", got)
	}
}
