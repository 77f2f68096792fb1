package schemanode

func snippetsKeyword() keyword {
	const name = "defaultSnippets"
	return keyword{
		name: name,
		has:  func(s *Schema) bool { return s.DefaultSnippets != nil },
		decode: func(c *constructor, s *Schema, v Value, p PathRef) {
			if v.Kind != KindArray {
				c.malformed(p, name, "array of snippet objects", v)
				return
			}
			out := make([]Snippet, 0, len(v.Array))
			for i, e := range v.Array {
				sn, ok := c.snippet(e, p.Index(i))
				if !ok {
					return
				}
				out = append(out, sn)
			}
			s.DefaultSnippets = out
		},
		encode: func(e *encoder, s *Schema) {
			e.buf.WriteByte('[')
			for i := range s.DefaultSnippets {
				if i > 0 {
					e.buf.WriteByte(',')
				}
				e.snippet(&s.DefaultSnippets[i])
			}
			e.buf.WriteByte(']')
		},
		clone: func(dst, src *Schema) {
			if src.DefaultSnippets == nil {
				return
			}
			dst.DefaultSnippets = make([]Snippet, len(src.DefaultSnippets))
			for i := range src.DefaultSnippets {
				dst.DefaultSnippets[i] = src.DefaultSnippets[i].Clone()
			}
		},
	}
}

func (c *constructor) snippet(v Value, p PathRef) (Snippet, bool) {
	const name = "defaultSnippets"
	var sn Snippet
	if v.Kind != KindObject {
		c.malformed(p, name, "snippet object", v)
		return sn, false
	}
	ok := true
	for _, m := range v.Object {
		mp := p.Field(m.Key)
		switch m.Key {
		case "label":
			sn.Label, ok = c.str(m.Value, mp, name)
		case "description":
			sn.Description, ok = c.str(m.Value, mp, name)
		case "markdownDescription":
			sn.MarkdownDescription, ok = c.str(m.Value, mp, name)
		case "bodyText":
			sn.BodyText, ok = c.str(m.Value, mp, name)
		case "body":
			body := m.Value
			sn.Body = &body
		default:
			if c.opt.Unknown == UnknownDrop {
				continue
			}
			if sn.Extra == nil {
				sn.Extra = NewMap[Value]()
			}
			sn.Extra.Set(m.Key, m.Value)
		}
		if !ok {
			return sn, false
		}
		sn.keys = append(sn.keys, m.Key)
	}
	return sn, true
}

// Clone returns a deep copy of sn.
func (sn Snippet) Clone() Snippet {
	out := Snippet{
		Label:               clonePtr(sn.Label),
		Description:         clonePtr(sn.Description),
		MarkdownDescription: clonePtr(sn.MarkdownDescription),
		BodyText:            clonePtr(sn.BodyText),
		Extra:               cloneValueMap(sn.Extra),
		keys:                append([]string(nil), sn.keys...),
	}
	if sn.Body != nil {
		b := sn.Body.Clone()
		out.Body = &b
	}
	return out
}

func (e *encoder) snippet(sn *Snippet) {
	fields := []struct {
		key string
		val *string
	}{
		{"label", sn.Label},
		{"description", sn.Description},
		{"markdownDescription", sn.MarkdownDescription},
		{"bodyText", sn.BodyText},
	}
	written := map[string]bool{}
	write := func(first *bool, k string) {
		if written[k] {
			return
		}
		if k == "body" {
			if sn.Body == nil {
				return
			}
			written[k] = true
			e.key(first, k)
			e.value(*sn.Body)
			return
		}
		for _, f := range fields {
			if f.key == k && f.val != nil {
				written[k] = true
				e.key(first, k)
				e.str(*f.val)
				return
			}
		}
		if v, ok := sn.Extra.Get(k); ok {
			written[k] = true
			e.key(first, k)
			e.value(v)
		}
	}

	e.buf.WriteByte('{')
	first := true
	for _, k := range sn.keys {
		write(&first, k)
	}
	for _, k := range []string{"label", "description", "markdownDescription", "body", "bodyText"} {
		write(&first, k)
	}
	for _, k := range sn.Extra.Keys() {
		write(&first, k)
	}
	e.buf.WriteByte('}')
}
