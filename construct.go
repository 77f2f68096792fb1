package schemanode

import (
	"strings"

	"github.com/reoring/schemanode/i18n"
)

// constructor turns raw Values into schema nodes and collects issues.
type constructor struct {
	opt    ParseOpt
	issues Issues
	// open counts issues not yet absorbed by a Placeholder substitution.
	open int
}

// stopped reports whether FailFast has already recorded an issue.
func (c *constructor) stopped() bool { return c.opt.FailFast && len(c.issues) > 0 }

func (c *constructor) add(it Issue) {
	if c.stopped() {
		return
	}
	c.issues = append(c.issues, it)
	c.open++
}

// malformed records a MalformedKeywordValue issue at p.
func (c *constructor) malformed(p PathRef, keyword, expected string, got Value) {
	if keyword == "" {
		keyword = "schema"
	}
	msg := i18n.T(CodeMalformedKeyword, map[string]string{"keyword": keyword, "expected": expected, "got": got.Kind.String()})
	it := p.Issue(CodeMalformedKeyword, msg, "keyword", keyword, "expected", expected, "got", got.Kind.String())
	it.Hint = "expected " + expected
	c.add(it)
}

func (c *constructor) schemaOrBool(v Value, p PathRef, keyword string) *SchemaOrBool {
	open := c.open
	switch v.Kind {
	case KindBool:
		return BoolSchema(v.Bool)
	case KindObject:
		return c.settle(&SchemaOrBool{schema: c.schema(v, p)}, open)
	}
	c.malformed(p, keyword, "boolean or object", v)
	return c.settle(nil, open)
}

// settle replaces a node that recorded its own issues with the permissive
// true schema when Placeholder is set. Issues of descendants were already
// absorbed by their own substitution.
func (c *constructor) settle(r *SchemaOrBool, open int) *SchemaOrBool {
	if !c.opt.Placeholder || c.open == open {
		return r
	}
	c.open = open
	return True()
}

func (c *constructor) schema(v Value, p PathRef) *Schema {
	s := &Schema{keywords: make([]string, 0, len(v.Object))}
	for _, m := range v.Object {
		if c.stopped() {
			return s
		}
		kw, known := vocabularyIndex[m.Key]
		if !known {
			if c.opt.Unknown == UnknownDrop {
				continue
			}
			if s.Extra == nil {
				s.Extra = NewMap[Value]()
			}
			s.Extra.Set(m.Key, m.Value)
			s.keywords = append(s.keywords, m.Key)
			continue
		}
		kw.decode(c, s, m.Value, p.Field(m.Key))
		s.keywords = append(s.keywords, m.Key)
	}
	if c.opt.StrictBounds {
		c.checkBounds(s, p)
	}
	return s
}

func (c *constructor) checkBounds(s *Schema, p PathRef) {
	ints := []struct {
		min, max       string
		minVal, maxVal *int
	}{
		{"minProperties", "maxProperties", s.MinProperties, s.MaxProperties},
		{"minItems", "maxItems", s.MinItems, s.MaxItems},
		{"minLength", "maxLength", s.MinLength, s.MaxLength},
	}
	for _, b := range ints {
		if b.minVal != nil && b.maxVal != nil && *b.minVal > *b.maxVal {
			c.inverted(p.Field(b.max), b.max, b.min)
		}
	}
	if s.Minimum != nil && s.Maximum != nil {
		lo, ok1 := s.Minimum.Rat()
		hi, ok2 := s.Maximum.Rat()
		if ok1 && ok2 && lo.Cmp(hi) > 0 {
			c.inverted(p.Field("maximum"), "maximum", "minimum")
		}
	}
}

func (c *constructor) inverted(p PathRef, keyword, other string) {
	msg := i18n.T(CodeInvertedBounds, map[string]string{"keyword": keyword, "other": other})
	c.add(p.Issue(CodeInvertedBounds, msg, "keyword", keyword, "other", other))
}

// ---- scalar readers shared by the vocabulary ----

func (c *constructor) str(v Value, p PathRef, keyword string) (*string, bool) {
	if v.Kind != KindString {
		c.malformed(p, keyword, "string", v)
		return nil, false
	}
	s := v.String
	return &s, true
}

func (c *constructor) boolean(v Value, p PathRef, keyword string) (*bool, bool) {
	if v.Kind != KindBool {
		c.malformed(p, keyword, "boolean", v)
		return nil, false
	}
	b := v.Bool
	return &b, true
}

// number keeps the literal as written. Exponents beyond what big.Rat
// accepts are still valid JSON numbers.
func (c *constructor) number(v Value, p PathRef, keyword string, positive bool) (*Number, bool) {
	if v.Kind != KindNumber {
		c.malformed(p, keyword, "number", v)
		return nil, false
	}
	if positive && !positiveLiteral(v.Number) {
		c.malformed(p, keyword, "number greater than 0", v)
		return nil, false
	}
	n := Number(v.Number)
	return &n, true
}

// positiveLiteral reports whether a JSON number literal is greater than zero:
// no leading minus and at least one non-zero mantissa digit.
func positiveLiteral(lit string) bool {
	if lit == "" || lit[0] == '-' {
		return false
	}
	if i := strings.IndexAny(lit, "eE"); i >= 0 {
		lit = lit[:i]
	}
	return strings.ContainsAny(lit, "123456789")
}

const maxInt = int64(^uint(0) >> 1)

// count reads a non-negative integer; integral literals such as 2.0 are accepted.
func (c *constructor) count(v Value, p PathRef, keyword string) (*int, bool) {
	r, ok := v.Rat()
	if !ok || !r.IsInt() || r.Sign() < 0 || !r.Num().IsInt64() || r.Num().Int64() > maxInt {
		c.malformed(p, keyword, "non-negative integer", v)
		return nil, false
	}
	n := int(r.Num().Int64())
	return &n, true
}

// strings reads an array of strings, optionally requiring at least one
// entry and no duplicates.
func (c *constructor) strings(v Value, p PathRef, keyword string, nonEmpty, unique bool) ([]string, bool) {
	expected := "array of strings"
	if nonEmpty {
		expected = "non-empty array of strings"
	}
	if v.Kind != KindArray || (nonEmpty && len(v.Array) == 0) {
		c.malformed(p, keyword, expected, v)
		return nil, false
	}
	out := make([]string, 0, len(v.Array))
	var seen map[string]bool
	if unique {
		seen = make(map[string]bool, len(v.Array))
	}
	for i, e := range v.Array {
		if e.Kind != KindString {
			c.malformed(p.Index(i), keyword, "string", e)
			return nil, false
		}
		if unique {
			if seen[e.String] {
				c.malformed(p.Index(i), keyword, "unique strings", e)
				return nil, false
			}
			seen[e.String] = true
		}
		out = append(out, e.String)
	}
	return out, true
}

// values reads an array of arbitrary JSON values.
func (c *constructor) values(v Value, p PathRef, keyword string, nonEmpty bool) ([]Value, bool) {
	if v.Kind != KindArray || (nonEmpty && len(v.Array) == 0) {
		expected := "array"
		if nonEmpty {
			expected = "non-empty array"
		}
		c.malformed(p, keyword, expected, v)
		return nil, false
	}
	return append([]Value{}, v.Array...), true
}

func (c *constructor) schemaList(v Value, p PathRef, keyword string, nonEmpty bool) ([]*SchemaOrBool, bool) {
	if v.Kind != KindArray || (nonEmpty && len(v.Array) == 0) {
		expected := "array of schemas"
		if nonEmpty {
			expected = "non-empty array of schemas"
		}
		c.malformed(p, keyword, expected, v)
		return nil, false
	}
	out := make([]*SchemaOrBool, 0, len(v.Array))
	for i, e := range v.Array {
		r := c.schemaOrBool(e, p.Index(i), keyword)
		if r == nil {
			return nil, false
		}
		out = append(out, r)
	}
	return out, true
}

func (c *constructor) schemaMap(v Value, p PathRef, keyword string) (*Map[*SchemaOrBool], bool) {
	if v.Kind != KindObject {
		c.malformed(p, keyword, "object of schemas", v)
		return nil, false
	}
	m := NewMap[*SchemaOrBool]()
	ok := true
	for _, e := range v.Object {
		r := c.schemaOrBool(e.Value, p.Field(e.Key), keyword)
		if r == nil {
			ok = false
			if c.stopped() {
				return nil, false
			}
			continue
		}
		m.Set(e.Key, r)
	}
	return m, ok
}
