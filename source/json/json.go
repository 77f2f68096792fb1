// Package json tokenizes JSON text with encoding/json for the default driver.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	eng "github.com/reoring/schemanode/internal/engine"
)

type jsonSource struct {
	dec        *json.Decoder
	objects    []bool // per open container: true for objects
	expectKey  []bool
	lastOffset int64
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON.
func NewReader(r io.Reader) eng.TokenSource {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec, lastOffset: -1}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *jsonSource) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	s.lastOffset = s.dec.InputOffset()

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			s.push(true)
			return s.token(eng.Token{Kind: eng.KindBeginObject}), nil
		case '}':
			s.pop()
			return s.token(eng.Token{Kind: eng.KindEndObject}), nil
		case '[':
			s.push(false)
			return s.token(eng.Token{Kind: eng.KindBeginArray}), nil
		case ']':
			s.pop()
			return s.token(eng.Token{Kind: eng.KindEndArray}), nil
		}
	case string:
		if n := len(s.objects); n > 0 && s.objects[n-1] && s.expectKey[n-1] {
			s.expectKey[n-1] = false
			return s.token(eng.Token{Kind: eng.KindKey, String: v}), nil
		}
		s.valueDone()
		return s.token(eng.Token{Kind: eng.KindString, String: v}), nil
	case bool:
		s.valueDone()
		return s.token(eng.Token{Kind: eng.KindBool, Bool: v}), nil
	case json.Number:
		s.valueDone()
		return s.token(eng.Token{Kind: eng.KindNumber, Number: string(v)}), nil
	case nil:
		s.valueDone()
		return s.token(eng.Token{Kind: eng.KindNull}), nil
	}
	s.valueDone()
	return s.token(eng.Token{Kind: eng.KindNull}), nil
}

func (s *jsonSource) token(t eng.Token) eng.Token {
	t.Offset = s.lastOffset
	return t
}

func (s *jsonSource) push(object bool) {
	s.objects = append(s.objects, object)
	s.expectKey = append(s.expectKey, object)
}

func (s *jsonSource) pop() {
	if n := len(s.objects); n > 0 {
		s.objects = s.objects[:n-1]
		s.expectKey = s.expectKey[:n-1]
	}
	s.valueDone()
}

func (s *jsonSource) valueDone() {
	if n := len(s.objects); n > 0 && s.objects[n-1] {
		s.expectKey[n-1] = true
	}
}

func (s *jsonSource) Location() int64 { return s.lastOffset }
