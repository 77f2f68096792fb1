package schemanode

import (
	"bytes"
	"context"
	"strconv"

	"github.com/goccy/go-json"
)

// encoder writes compact JSON, preserving member order and number literals.
type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) str(s string) {
	b, err := json.MarshalNoEscape(s)
	if err != nil {
		// strings always marshal; keep output valid regardless
		b = []byte(strconv.Quote(s))
	}
	e.buf.Write(b)
}

func (e *encoder) key(first *bool, k string) {
	if !*first {
		e.buf.WriteByte(',')
	}
	*first = false
	e.str(k)
	e.buf.WriteByte(':')
}

func (e *encoder) value(v Value) {
	switch v.Kind {
	case KindNull:
		e.buf.WriteString("null")
	case KindBool:
		e.buf.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		if v.Number == "" {
			e.buf.WriteByte('0')
			return
		}
		e.buf.WriteString(v.Number)
	case KindString:
		e.str(v.String)
	case KindArray:
		e.buf.WriteByte('[')
		for i := range v.Array {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.value(v.Array[i])
		}
		e.buf.WriteByte(']')
	case KindObject:
		e.buf.WriteByte('{')
		first := true
		for _, m := range v.Object {
			e.key(&first, m.Key)
			e.value(m.Value)
		}
		e.buf.WriteByte('}')
	}
}

func (e *encoder) strings(ss []string) {
	e.buf.WriteByte('[')
	for i, s := range ss {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.str(s)
	}
	e.buf.WriteByte(']')
}

// MarshalJSON encodes v keeping member order and number literals.
func (v Value) MarshalJSON() ([]byte, error) {
	var e encoder
	e.value(v)
	return e.buf.Bytes(), nil
}

// UnmarshalJSON decodes JSON text into v with the current JSON driver.
func (v *Value) UnmarshalJSON(b []byte) error {
	out, err := DecodeValue(context.Background(), JSONBytes(b))
	if err != nil {
		return err
	}
	*v = out
	return nil
}

// Indent reformats compact JSON produced by this package.
func Indent(src []byte, prefix, indent string) ([]byte, error) {
	var out bytes.Buffer
	if err := json.Indent(&out, src, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
