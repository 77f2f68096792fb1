package schemanode

// Clone returns a deep copy of r. Consumers that want to annotate a shared
// tree (for example to cache resolved $ref targets) work on a clone.
func (r *SchemaOrBool) Clone() *SchemaOrBool {
	if r == nil {
		return nil
	}
	if r.schema == nil {
		return BoolSchema(r.boolean)
	}
	return &SchemaOrBool{schema: r.schema.Clone()}
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := &Schema{
		Extra:    cloneValueMap(s.Extra),
		keywords: append([]string(nil), s.keywords...),
	}
	for i := range vocabulary {
		vocabulary[i].clone(out, s)
	}
	return out
}

func cloneList(rs []*SchemaOrBool) []*SchemaOrBool {
	if rs == nil {
		return nil
	}
	out := make([]*SchemaOrBool, len(rs))
	for i, r := range rs {
		out[i] = r.Clone()
	}
	return out
}

func cloneSchemaMap(m *Map[*SchemaOrBool]) *Map[*SchemaOrBool] {
	if m == nil {
		return nil
	}
	out := NewMap[*SchemaOrBool]()
	for k, r := range m.All() {
		out.Set(k, r.Clone())
	}
	return out
}

func cloneValueMap(m *Map[Value]) *Map[Value] {
	if m == nil {
		return nil
	}
	out := NewMap[Value]()
	for k, v := range m.All() {
		out.Set(k, v.Clone())
	}
	return out
}
