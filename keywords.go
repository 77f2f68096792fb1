package schemanode

import "strconv"

// vocabulary is filled in init because keyword codecs recurse back into the
// table through nested schemas.
var (
	vocabulary      []keyword
	vocabularyIndex map[string]*keyword
)

// keyword describes one recognized keyword: how to detect, decode, encode,
// copy and traverse it. The vocabulary slice order is the canonical
// serialization order for nodes that were not parsed from a document.
type keyword struct {
	name     string
	has      func(*Schema) bool
	decode   func(c *constructor, s *Schema, v Value, p PathRef)
	encode   func(e *encoder, s *Schema)
	clone    func(dst, src *Schema)
	children func(s *Schema, yield func(Child) bool) bool // nil for keywords without sub-schemas
}

func init() {
	vocabulary = []keyword{
		stringKeyword("$schema", func(s *Schema) **string { return &s.SchemaURI }),
		stringKeyword("$id", func(s *Schema) **string { return &s.DollarID }),
		stringKeyword("id", func(s *Schema) **string { return &s.ID }),
		stringKeyword("$ref", func(s *Schema) **string { return &s.Ref }),
		stringKeyword("$comment", func(s *Schema) **string { return &s.Comment }),
		stringKeyword("title", func(s *Schema) **string { return &s.Title }),
		stringKeyword("description", func(s *Schema) **string { return &s.Description }),
		stringKeyword("markdownDescription", func(s *Schema) **string { return &s.MarkdownDescription }),
		valueKeyword("default", func(s *Schema) **Value { return &s.Default }),
		valuesKeyword("examples", false, func(s *Schema) *[]Value { return &s.Examples }),
		typeKeyword(),

		// object
		stringsKeyword("required", true, true, func(s *Schema) *[]string { return &s.Required }),
		subMapKeyword("properties", func(s *Schema) **Map[*SchemaOrBool] { return &s.Properties }),
		subMapKeyword("patternProperties", func(s *Schema) **Map[*SchemaOrBool] { return &s.PatternProperties }),
		subKeyword("additionalProperties", func(s *Schema) **SchemaOrBool { return &s.AdditionalProperties }),
		countKeyword("minProperties", func(s *Schema) **int { return &s.MinProperties }),
		countKeyword("maxProperties", func(s *Schema) **int { return &s.MaxProperties }),
		dependenciesKeyword(),
		subKeyword("propertyNames", func(s *Schema) **SchemaOrBool { return &s.PropertyNames }),

		// array
		itemsKeyword(),
		subKeyword("additionalItems", func(s *Schema) **SchemaOrBool { return &s.AdditionalItems }),
		countKeyword("minItems", func(s *Schema) **int { return &s.MinItems }),
		countKeyword("maxItems", func(s *Schema) **int { return &s.MaxItems }),
		boolKeyword("uniqueItems", func(s *Schema) **bool { return &s.UniqueItems }),
		subKeyword("contains", func(s *Schema) **SchemaOrBool { return &s.Contains }),

		// string
		stringKeyword("pattern", func(s *Schema) **string { return &s.Pattern }),
		countKeyword("minLength", func(s *Schema) **int { return &s.MinLength }),
		countKeyword("maxLength", func(s *Schema) **int { return &s.MaxLength }),

		// numeric
		numberKeyword("minimum", false, func(s *Schema) **Number { return &s.Minimum }),
		numberKeyword("maximum", false, func(s *Schema) **Number { return &s.Maximum }),
		exclusiveKeyword("exclusiveMinimum", func(s *Schema) **ExclusiveBound { return &s.ExclusiveMinimum }),
		exclusiveKeyword("exclusiveMaximum", func(s *Schema) **ExclusiveBound { return &s.ExclusiveMaximum }),
		numberKeyword("multipleOf", true, func(s *Schema) **Number { return &s.MultipleOf }),

		// composition
		subListKeyword("allOf", func(s *Schema) *[]*SchemaOrBool { return &s.AllOf }),
		subListKeyword("anyOf", func(s *Schema) *[]*SchemaOrBool { return &s.AnyOf }),
		subListKeyword("oneOf", func(s *Schema) *[]*SchemaOrBool { return &s.OneOf }),
		subKeyword("not", func(s *Schema) **SchemaOrBool { return &s.Not }),
		subKeyword("if", func(s *Schema) **SchemaOrBool { return &s.If }),
		subKeyword("then", func(s *Schema) **SchemaOrBool { return &s.Then }),
		subKeyword("else", func(s *Schema) **SchemaOrBool { return &s.Else }),
		valuesKeyword("enum", true, func(s *Schema) *[]Value { return &s.Enum }),
		valueKeyword("const", func(s *Schema) **Value { return &s.Const }),
		stringKeyword("format", func(s *Schema) **string { return &s.Format }),

		subMapKeyword("definitions", func(s *Schema) **Map[*SchemaOrBool] { return &s.Definitions }),
		subMapKeyword("$defs", func(s *Schema) **Map[*SchemaOrBool] { return &s.Defs }),

		// editor extensions
		snippetsKeyword(),
		stringKeyword("errorMessage", func(s *Schema) **string { return &s.ErrorMessage }),
		stringKeyword("patternErrorMessage", func(s *Schema) **string { return &s.PatternErrorMessage }),
		stringKeyword("deprecationMessage", func(s *Schema) **string { return &s.DeprecationMessage }),
		stringsKeyword("enumDescriptions", false, false, func(s *Schema) *[]string { return &s.EnumDescriptions }),
		stringsKeyword("markdownEnumDescriptions", false, false, func(s *Schema) *[]string { return &s.MarkdownEnumDescriptions }),
		boolKeyword("doNotSuggest", func(s *Schema) **bool { return &s.DoNotSuggest }),
		stringKeyword("suggestSortText", func(s *Schema) **string { return &s.SuggestSortText }),
		boolKeyword("allowComments", func(s *Schema) **bool { return &s.AllowComments }),
		boolKeyword("allowTrailingCommas", func(s *Schema) **bool { return &s.AllowTrailingCommas }),
	}

	vocabularyIndex = make(map[string]*keyword, len(vocabulary))
	for i := range vocabulary {
		vocabularyIndex[vocabulary[i].name] = &vocabulary[i]
	}
}

// IsKeyword reports whether name belongs to the recognized vocabulary.
// Anything else is kept in Schema.Extra.
func IsKeyword(name string) bool {
	_, ok := vocabularyIndex[name]
	return ok
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func stringKeyword(name string, field func(*Schema) **string) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if x, ok := c.str(v, p, name); ok {
				*field(s) = x
			}
		},
		encode: func(e *encoder, s *Schema) { e.str(**field(s)) },
		clone:  func(dst, src *Schema) { *field(dst) = clonePtr(*field(src)) },
	}
}

func boolKeyword(name string, field func(*Schema) **bool) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if x, ok := c.boolean(v, p, name); ok {
				*field(s) = x
			}
		},
		encode: func(e *encoder, s *Schema) { e.buf.WriteString(strconv.FormatBool(**field(s))) },
		clone:  func(dst, src *Schema) { *field(dst) = clonePtr(*field(src)) },
	}
}

func countKeyword(name string, field func(*Schema) **int) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if x, ok := c.count(v, p, name); ok {
				*field(s) = x
			}
		},
		encode: func(e *encoder, s *Schema) { e.buf.WriteString(strconv.Itoa(**field(s))) },
		clone:  func(dst, src *Schema) { *field(dst) = clonePtr(*field(src)) },
	}
}

func numberKeyword(name string, positive bool, field func(*Schema) **Number) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if x, ok := c.number(v, p, name, positive); ok {
				*field(s) = x
			}
		},
		encode: func(e *encoder, s *Schema) { e.value(NumberValue(string(**field(s)))) },
		clone:  func(dst, src *Schema) { *field(dst) = clonePtr(*field(src)) },
	}
}

func valueKeyword(name string, field func(*Schema) **Value) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(_ *constructor, s *Schema, v Value, _ PathRef) {
			x := v
			*field(s) = &x
		},
		encode: func(e *encoder, s *Schema) { e.value(**field(s)) },
		clone: func(dst, src *Schema) {
			if v := *field(src); v != nil {
				x := v.Clone()
				*field(dst) = &x
			}
		},
	}
}

func valuesKeyword(name string, nonEmpty bool, field func(*Schema) *[]Value) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if xs, ok := c.values(v, p, name, nonEmpty); ok {
				*field(s) = xs
			}
		},
		encode: func(e *encoder, s *Schema) { e.value(ArrayValue(*field(s)...)) },
		clone: func(dst, src *Schema) {
			if xs := *field(src); xs != nil {
				*field(dst) = ArrayValue(xs...).Clone().Array
			}
		},
	}
}

func stringsKeyword(name string, nonEmpty, unique bool, field func(*Schema) *[]string) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if xs, ok := c.strings(v, p, name, nonEmpty, unique); ok {
				*field(s) = xs
			}
		},
		encode: func(e *encoder, s *Schema) { e.strings(*field(s)) },
		clone: func(dst, src *Schema) {
			if xs := *field(src); xs != nil {
				*field(dst) = append([]string{}, xs...)
			}
		},
	}
}

func subKeyword(name string, field func(*Schema) **SchemaOrBool) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if r := c.schemaOrBool(v, p, name); r != nil {
				*field(s) = r
			}
		},
		encode: func(e *encoder, s *Schema) { e.schemaOrBool(*field(s)) },
		clone:  func(dst, src *Schema) { *field(dst) = (*field(src)).Clone() },
		children: func(s *Schema, yield func(Child) bool) bool {
			if r := *field(s); r != nil {
				return yield(Child{Keyword: name, Slot: SlotSingle, Index: -1, Node: r})
			}
			return true
		},
	}
}

func subListKeyword(name string, field func(*Schema) *[]*SchemaOrBool) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if rs, ok := c.schemaList(v, p, name, true); ok {
				*field(s) = rs
			}
		},
		encode: func(e *encoder, s *Schema) { e.schemaList(*field(s)) },
		clone:  func(dst, src *Schema) { *field(dst) = cloneList(*field(src)) },
		children: func(s *Schema, yield func(Child) bool) bool {
			return yieldList(name, *field(s), yield)
		},
	}
}

func subMapKeyword(name string, field func(*Schema) **Map[*SchemaOrBool]) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if m, ok := c.schemaMap(v, p, name); ok {
				*field(s) = m
			}
		},
		encode: func(e *encoder, s *Schema) { e.schemaMap(*field(s)) },
		clone:  func(dst, src *Schema) { *field(dst) = cloneSchemaMap(*field(src)) },
		children: func(s *Schema, yield func(Child) bool) bool {
			for k, r := range (*field(s)).All() {
				if !yield(Child{Keyword: name, Slot: SlotMap, Key: k, Index: -1, Node: r}) {
					return false
				}
			}
			return true
		},
	}
}

func exclusiveKeyword(name string, field func(*Schema) **ExclusiveBound) keyword {
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return *field(s) != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			switch v.Kind {
			case KindBool:
				*field(s) = ExclusiveFlag(v.Bool)
			case KindNumber:
				if n, ok := c.number(v, p, name, false); ok {
					*field(s) = ExclusiveLimit(*n)
				}
			default:
				c.malformed(p, name, "boolean or number", v)
			}
		},
		encode: func(e *encoder, s *Schema) {
			b := *field(s)
			if f, ok := b.Flag(); ok {
				e.buf.WriteString(strconv.FormatBool(f))
				return
			}
			n, _ := b.Limit()
			e.value(NumberValue(string(n)))
		},
		clone: func(dst, src *Schema) { *field(dst) = clonePtr(*field(src)) },
	}
}

func typeKeyword() keyword {
	const name = "type"
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return s.Type != nil && len(s.Type.names) > 0 },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			const expected = "type name or non-empty array of unique type names"
			switch v.Kind {
			case KindString:
				if !SimpleType(v.String).Valid() {
					c.malformed(p, name, expected, v)
					return
				}
				s.Type = SingleType(SimpleType(v.String))
			case KindArray:
				names, ok := c.strings(v, p, name, true, true)
				if !ok {
					return
				}
				ts := make([]SimpleType, len(names))
				for i, n := range names {
					if !SimpleType(n).Valid() {
						c.malformed(p.Index(i), name, expected, v.Array[i])
						return
					}
					ts[i] = SimpleType(n)
				}
				s.Type = TypeList(ts...)
			default:
				c.malformed(p, name, expected, v)
			}
		},
		encode: func(e *encoder, s *Schema) {
			if !s.Type.IsList() {
				e.str(string(s.Type.names[0]))
				return
			}
			names := make([]string, len(s.Type.names))
			for i, n := range s.Type.names {
				names[i] = string(n)
			}
			e.strings(names)
		},
		clone: func(dst, src *Schema) {
			if src.Type != nil {
				dst.Type = &TypeSet{names: append([]SimpleType{}, src.Type.names...), list: src.Type.list}
			}
		},
	}
}

func itemsKeyword() keyword {
	const name = "items"
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return s.Items != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			switch v.Kind {
			case KindArray:
				if rs, ok := c.schemaList(v, p, name, false); ok {
					s.Items = ItemsTuple(rs...)
				}
			case KindBool, KindObject:
				if r := c.schemaOrBool(v, p, name); r != nil {
					s.Items = ItemsSchema(r)
				}
			default:
				c.malformed(p, name, "schema or array of schemas", v)
			}
		},
		encode: func(e *encoder, s *Schema) {
			if s.Items.IsTuple() {
				e.schemaList(s.Items.tuple)
				return
			}
			e.schemaOrBool(s.Items.single)
		},
		clone: func(dst, src *Schema) {
			switch {
			case src.Items == nil:
			case src.Items.IsTuple():
				dst.Items = ItemsTuple(cloneList(src.Items.tuple)...)
			default:
				dst.Items = ItemsSchema(src.Items.single.Clone())
			}
		},
		children: func(s *Schema, yield func(Child) bool) bool {
			if s.Items == nil {
				return true
			}
			if s.Items.IsTuple() {
				return yieldList(name, s.Items.tuple, yield)
			}
			return yield(Child{Keyword: name, Slot: SlotSingle, Index: -1, Node: s.Items.single})
		},
	}
}

func dependenciesKeyword() keyword {
	const name = "dependencies"
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return s.Dependencies != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if v.Kind != KindObject {
				c.malformed(p, name, "object", v)
				return
			}
			m := NewMap[Dependency]()
			for _, e := range v.Object {
				ep := p.Field(e.Key)
				switch e.Value.Kind {
				case KindArray:
					props, ok := c.strings(e.Value, ep, name, false, true)
					if !ok {
						return
					}
					m.Set(e.Key, Dependency{Properties: props})
				case KindBool, KindObject:
					r := c.schemaOrBool(e.Value, ep, name)
					if r == nil {
						return
					}
					m.Set(e.Key, Dependency{Schema: r})
				default:
					c.malformed(ep, name, "schema or array of property names", e.Value)
					return
				}
			}
			s.Dependencies = m
		},
		encode: func(e *encoder, s *Schema) {
			e.buf.WriteByte('{')
			first := true
			for k, d := range s.Dependencies.All() {
				e.key(&first, k)
				if d.IsSchema() {
					e.schemaOrBool(d.Schema)
				} else {
					e.strings(d.Properties)
				}
			}
			e.buf.WriteByte('}')
		},
		clone: func(dst, src *Schema) {
			if src.Dependencies == nil {
				return
			}
			m := NewMap[Dependency]()
			for k, d := range src.Dependencies.All() {
				if d.IsSchema() {
					m.Set(k, Dependency{Schema: d.Schema.Clone()})
				} else {
					m.Set(k, Dependency{Properties: append([]string{}, d.Properties...)})
				}
			}
			dst.Dependencies = m
		},
		children: func(s *Schema, yield func(Child) bool) bool {
			for k, d := range s.Dependencies.All() {
				if !d.IsSchema() {
					continue
				}
				if !yield(Child{Keyword: name, Slot: SlotMap, Key: k, Index: -1, Node: d.Schema}) {
					return false
				}
			}
			return true
		},
	}
}

func yieldList(name string, rs []*SchemaOrBool, yield func(Child) bool) bool {
	for i, r := range rs {
		if !yield(Child{Keyword: name, Slot: SlotSequence, Index: i, Node: r}) {
			return false
		}
	}
	return true
}
