package schemanode

import "context"

func (e *encoder) schemaOrBool(r *SchemaOrBool) {
	switch r.Variant() {
	case VariantSchema:
		e.schema(r.schema)
	case VariantTrue:
		e.buf.WriteString("true")
	default:
		e.buf.WriteString("false")
	}
}

func (e *encoder) schema(s *Schema) {
	e.buf.WriteByte('{')
	first := true
	for _, k := range s.Keywords() {
		e.key(&first, k)
		if kw, ok := vocabularyIndex[k]; ok {
			kw.encode(e, s)
			continue
		}
		v, _ := s.Extra.Get(k)
		e.value(v)
	}
	e.buf.WriteByte('}')
}

func (e *encoder) schemaList(rs []*SchemaOrBool) {
	e.buf.WriteByte('[')
	for i, r := range rs {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.schemaOrBool(r)
	}
	e.buf.WriteByte(']')
}

func (e *encoder) schemaMap(m *Map[*SchemaOrBool]) {
	e.buf.WriteByte('{')
	first := true
	for k, r := range m.All() {
		e.key(&first, k)
		e.schemaOrBool(r)
	}
	e.buf.WriteByte('}')
}

// MarshalJSON encodes r. Parsed nodes keep their keyword order; maps and
// sequences always keep theirs.
func (r *SchemaOrBool) MarshalJSON() ([]byte, error) {
	var e encoder
	e.schemaOrBool(r)
	return e.buf.Bytes(), nil
}

// UnmarshalJSON constructs r from JSON text with default options.
func (r *SchemaOrBool) UnmarshalJSON(b []byte) error {
	out, err := ParseBytes(context.Background(), b)
	if err != nil {
		return err
	}
	*r = *out
	return nil
}

// MarshalJSON encodes s as a schema object.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var e encoder
	e.schema(s)
	return e.buf.Bytes(), nil
}

// UnmarshalJSON constructs s from JSON text. Boolean schemas cannot be held by
// a Schema and are reported as malformed.
func (s *Schema) UnmarshalJSON(b []byte) error {
	out, err := ParseBytes(context.Background(), b)
	if err != nil {
		return err
	}
	if out.IsBool() {
		return Issues{RootPath().Issue(CodeMalformedKeyword, "boolean schema where an object schema is required", "expected", "object")}
	}
	*s = *out.schema
	return nil
}

// MarshalIndent encodes r with indentation, for display.
func MarshalIndent(r *SchemaOrBool, prefix, indent string) ([]byte, error) {
	b, err := r.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return Indent(b, prefix, indent)
}
