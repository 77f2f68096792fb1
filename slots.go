package schemanode

import (
	"math/big"
	"strconv"
)

// SimpleType is one of the JSON value kinds usable in the type keyword.
type SimpleType string

const (
	TypeNull    SimpleType = "null"
	TypeBoolean SimpleType = "boolean"
	TypeObject  SimpleType = "object"
	TypeArray   SimpleType = "array"
	TypeNumber  SimpleType = "number"
	TypeString  SimpleType = "string"
	TypeInteger SimpleType = "integer"
)

// Valid reports whether t is a known type name.
func (t SimpleType) Valid() bool {
	switch t {
	case TypeNull, TypeBoolean, TypeObject, TypeArray, TypeNumber, TypeString, TypeInteger:
		return true
	}
	return false
}

// TypeSet holds the type keyword: either a single name or a list of names.
// The two spellings are kept apart so "string" and ["string"] round-trip.
type TypeSet struct {
	names []SimpleType
	list  bool
}

// SingleType returns the type keyword spelled as one name.
func SingleType(t SimpleType) *TypeSet { return &TypeSet{names: []SimpleType{t}} }

// TypeList returns the type keyword spelled as an array. A set without
// names is treated as absent, like a zero TypeSet.
func TypeList(ts ...SimpleType) *TypeSet {
	return &TypeSet{names: append([]SimpleType{}, ts...), list: true}
}

// Names returns the declared names in order.
func (t *TypeSet) Names() []SimpleType {
	if t == nil {
		return nil
	}
	return append([]SimpleType(nil), t.names...)
}

// IsList reports whether the keyword was spelled as an array.
func (t *TypeSet) IsList() bool { return t != nil && t.list }

// Has reports whether name is listed verbatim. Integer is not implied by number.
func (t *TypeSet) Has(name SimpleType) bool {
	if t == nil {
		return false
	}
	for _, n := range t.names {
		if n == name {
			return true
		}
	}
	return false
}

// Items holds the items keyword: one schema applied to every element, or a
// positional tuple of schemas.
type Items struct {
	single *SchemaOrBool
	tuple  []*SchemaOrBool
}

// ItemsSchema returns the single-schema form.
func ItemsSchema(r *SchemaOrBool) *Items { return &Items{single: r} }

// ItemsTuple returns the tuple form. An empty tuple is kept as an empty array.
func ItemsTuple(rs ...*SchemaOrBool) *Items {
	return &Items{tuple: append([]*SchemaOrBool{}, rs...)}
}

// IsTuple reports whether items is the positional (array) form.
func (it *Items) IsTuple() bool { return it != nil && it.single == nil }

// Schema returns the single-schema form, or nil for tuples.
func (it *Items) Schema() *SchemaOrBool {
	if it == nil {
		return nil
	}
	return it.single
}

// Tuple returns the positional schemas in declaration order, or nil for the
// single-schema form.
func (it *Items) Tuple() []*SchemaOrBool {
	if !it.IsTuple() {
		return nil
	}
	return it.tuple
}

// Dependency is one entry of the dependencies keyword. Exactly one field is
// set: a schema the whole instance must satisfy when the property is present,
// or the property names that must co-occur with it.
type Dependency struct {
	Schema     *SchemaOrBool
	Properties []string
}

// IsSchema reports whether the entry is the schema form.
func (d Dependency) IsSchema() bool { return d.Schema != nil }

// Number is a JSON number kept as its literal text.
type Number string

// Float64 converts n, losing precision for literals beyond float64.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Rat converts n exactly.
func (n Number) Rat() (*big.Rat, bool) { return new(big.Rat).SetString(string(n)) }

// ExclusiveBound holds exclusiveMinimum/exclusiveMaximum, which changed shape
// across drafts: a boolean modifier of minimum/maximum (draft-04 and older) or
// a standalone numeric bound (draft-06 and newer). Both shapes are kept
// verbatim; deciding which draft applies is left to validators.
type ExclusiveBound struct {
	limit  Number
	flag   bool
	isFlag bool
}

// ExclusiveFlag returns the boolean form.
func ExclusiveFlag(b bool) *ExclusiveBound { return &ExclusiveBound{flag: b, isFlag: true} }

// ExclusiveLimit returns the numeric form.
func ExclusiveLimit(n Number) *ExclusiveBound { return &ExclusiveBound{limit: n} }

// IsFlag reports whether the bound is the boolean form.
func (b *ExclusiveBound) IsFlag() bool { return b != nil && b.isFlag }

// Flag returns the boolean form.
func (b *ExclusiveBound) Flag() (bool, bool) {
	if !b.IsFlag() {
		return false, false
	}
	return b.flag, true
}

// Limit returns the numeric form.
func (b *ExclusiveBound) Limit() (Number, bool) {
	if b == nil || b.isFlag {
		return "", false
	}
	return b.limit, true
}

// Snippet is one defaultSnippets entry offered by editors for completion.
// Body is a value to serialize into the document; BodyText is literal text
// where \t and \n mark indentation and line breaks.
type Snippet struct {
	Label               *string
	Description         *string
	MarkdownDescription *string
	Body                *Value
	BodyText            *string
	Extra               *Map[Value]

	keys []string
}
