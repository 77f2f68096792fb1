package schemanode

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
)

// ValueKind identifies which JSON kind a Value holds.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an arbitrary JSON value. It carries schema-external data
// (default, const, enum entries, examples, snippet bodies, unknown keywords)
// whose shape the model does not constrain. Numbers keep their literal text
// and object members keep their input order.
//
// Only the field matching Kind is meaningful. The zero Value is null.
type Value struct {
	Kind   ValueKind
	Bool   bool
	Number string
	String string
	Array  []Value
	Object []Member
}

// Member is one key/value pair of a JSON object.
type Member struct {
	Key   string
	Value Value
}

// Null returns the JSON null value.
func Null() Value { return Value{} }

// BoolValue returns a JSON boolean.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue returns a JSON number holding the given literal (e.g. "1.50").
func NumberValue(lit string) Value { return Value{Kind: KindNumber, Number: lit} }

// IntValue returns a JSON number for an integer.
func IntValue(i int64) Value { return NumberValue(strconv.FormatInt(i, 10)) }

// StringValue returns a JSON string.
func StringValue(s string) Value { return Value{Kind: KindString, String: s} }

// ArrayValue returns a JSON array. A nil argument list yields an empty array.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: KindArray, Array: items}
}

// ObjectValue returns a JSON object whose members keep the given order.
func ObjectValue(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{Kind: KindObject, Object: members}
}

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// Get returns the member value for key when v is an object.
func (v Value) Get(key string) (Value, bool) {
	if v.Kind != KindObject {
		return Value{}, false
	}
	for i := range v.Object {
		if v.Object[i].Key == key {
			return v.Object[i].Value, true
		}
	}
	return Value{}, false
}

// Keys lists object member keys in order. Non-objects return nil.
func (v Value) Keys() []string {
	if v.Kind != KindObject {
		return nil
	}
	out := make([]string, len(v.Object))
	for i, m := range v.Object {
		out[i] = m.Key
	}
	return out
}

// Rat parses a number value exactly.
func (v Value) Rat() (*big.Rat, bool) {
	if v.Kind != KindNumber {
		return nil, false
	}
	return new(big.Rat).SetString(v.Number)
}

// Equal reports JSON equality: numbers compare by value, object member order
// is ignored, array order is significant.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool == o.Bool
	case KindString:
		return v.String == o.String
	case KindNumber:
		if v.Number == o.Number {
			return true
		}
		a, ok1 := v.Rat()
		b, ok2 := o.Rat()
		return ok1 && ok2 && a.Cmp(b) == 0
	case KindArray:
		if len(v.Array) != len(o.Array) {
			return false
		}
		for i := range v.Array {
			if !v.Array[i].Equal(o.Array[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.Object) != len(o.Object) {
			return false
		}
		for _, m := range v.Object {
			ov, ok := o.Get(m.Key)
			if !ok || !m.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.Kind {
	case KindArray:
		out := make([]Value, len(v.Array))
		for i := range v.Array {
			out[i] = v.Array[i].Clone()
		}
		v.Array = out
	case KindObject:
		out := make([]Member, len(v.Object))
		for i, m := range v.Object {
			out[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}
		v.Object = out
	}
	return v
}

// Interface converts v into generic Go values: nil, bool, json.Number,
// string, []any and map[string]any. Object member order is lost.
func (v Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindNumber:
		return json.Number(v.Number)
	case KindString:
		return v.String
	case KindArray:
		out := make([]any, len(v.Array))
		for i := range v.Array {
			out[i] = v.Array[i].Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Object))
		for _, m := range v.Object {
			out[m.Key] = m.Value.Interface()
		}
		return out
	default:
		return nil
	}
}

// ValueOf converts a generically decoded Go value (the shapes produced by
// encoding/json or yaml.v3 decoding into any) into a Value. Map keys are
// sorted since Go maps carry no order.
func ValueOf(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return BoolValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Number:
		if !jsonNumberLiteral.MatchString(string(t)) {
			return Value{}, fmt.Errorf("invalid number literal %q", string(t))
		}
		return NumberValue(string(t)), nil
	case float64:
		return floatValue(t)
	case float32:
		return floatValue(float64(t))
	case int:
		return IntValue(int64(t)), nil
	case int64:
		return IntValue(t), nil
	case int32:
		return IntValue(int64(t)), nil
	case uint64:
		return NumberValue(strconv.FormatUint(t, 10)), nil
	case []any:
		out := make([]Value, len(t))
		for i := range t {
			e, err := ValueOf(t[i])
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = e
		}
		return ArrayValue(out...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := make([]Member, 0, len(t))
		for _, k := range keys {
			e, err := ValueOf(t[k])
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			out = append(out, Member{Key: k, Value: e})
		}
		return ObjectValue(out...), nil
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("non-string object key %v", k)
			}
			m[ks] = e
		}
		return ValueOf(m)
	}
	return Value{}, fmt.Errorf("unsupported value type %s", reflect.TypeOf(x))
}

func floatValue(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("number %v is not representable in JSON", f)
	}
	return NumberValue(strconv.FormatFloat(f, 'g', -1, 64)), nil
}
