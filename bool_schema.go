package schemanode

// Variant names which alternative a boolean-or-schema slot holds.
type Variant int

const (
	VariantFalse  Variant = iota // literal false: rejects every value
	VariantTrue                  // literal true: accepts every value
	VariantSchema                // structured schema node
)

func (v Variant) String() string {
	switch v {
	case VariantTrue:
		return "true"
	case VariantFalse:
		return "false"
	default:
		return "schema"
	}
}

// SchemaOrBool is the recursive unit of the model: either a literal boolean
// schema or a structured Schema. Every sub-schema position uses it, including
// entries of properties and definitions, so callers handle the two shapes
// uniformly.
//
// The zero value is the boolean schema false. A nil *SchemaOrBool in a slot
// means the keyword is absent.
type SchemaOrBool struct {
	schema  *Schema
	boolean bool
}

// True returns the schema that accepts every value.
func True() *SchemaOrBool { return &SchemaOrBool{boolean: true} }

// False returns the schema that rejects every value.
func False() *SchemaOrBool { return &SchemaOrBool{} }

// BoolSchema returns the boolean schema b.
func BoolSchema(b bool) *SchemaOrBool { return &SchemaOrBool{boolean: b} }

// SchemaOf wraps a structured schema. A nil s is treated as the empty schema {}.
func SchemaOf(s *Schema) *SchemaOrBool {
	if s == nil {
		s = &Schema{}
	}
	return &SchemaOrBool{schema: s}
}

// Variant reports which alternative r holds.
func (r *SchemaOrBool) Variant() Variant {
	switch {
	case r == nil:
		return VariantTrue
	case r.schema != nil:
		return VariantSchema
	case r.boolean:
		return VariantTrue
	default:
		return VariantFalse
	}
}

// IsBool reports whether r is a literal boolean schema.
func (r *SchemaOrBool) IsBool() bool { return r != nil && r.schema == nil }

// Bool returns the literal boolean and true when r is a boolean schema.
func (r *SchemaOrBool) Bool() (bool, bool) {
	if !r.IsBool() {
		return false, false
	}
	return r.boolean, true
}

// Schema returns the structured node, or nil for boolean schemas.
func (r *SchemaOrBool) Schema() *Schema {
	if r == nil {
		return nil
	}
	return r.schema
}

// AcceptsAll reports whether r trivially accepts any value: the literal true,
// or a structured schema with no keywords at all ({}). Absent slots (nil) also
// impose nothing.
func (r *SchemaOrBool) AcceptsAll() bool {
	switch r.Variant() {
	case VariantTrue:
		return true
	case VariantSchema:
		return r.schema.IsEmpty()
	default:
		return false
	}
}

// RejectsAll reports whether r is the literal false.
func (r *SchemaOrBool) RejectsAll() bool { return r.Variant() == VariantFalse }

// Constrains reports whether r is a structured schema carrying at least one
// keyword, so a validator has to look inside it.
func (r *SchemaOrBool) Constrains() bool {
	return r.Variant() == VariantSchema && !r.schema.IsEmpty()
}
