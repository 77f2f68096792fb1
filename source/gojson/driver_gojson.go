//go:build gojson

package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	schemanode "github.com/reoring/schemanode"
	eng "github.com/reoring/schemanode/internal/engine"
)

// Driver returns a schemanode.JSONDriver backed by goccy/go-json.
func Driver() schemanode.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) schemanode.Source {
	return schemanode.SourceFromEngine(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) schemanode.Source {
	return schemanode.SourceFromEngine(NewBytes(b))
}
func (driverGoJSON) Name() string { return "go-json" }

type source struct {
	dec       *j.Decoder
	objects   []bool
	expectKey []bool
}

// NewReader wraps an io.Reader into an engine.TokenSource for JSON using go-json.
func NewReader(r io.Reader) eng.TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &source{dec: dec}
}

// NewBytes wraps a byte slice into an engine.TokenSource for JSON using go-json.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return eng.Token{}, io.EOF
		}
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.push(true)
			return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
		case '}':
			s.pop()
			return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
		case '[':
			s.push(false)
			return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
		case ']':
			s.pop()
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
	case string:
		if n := len(s.objects); n > 0 && s.objects[n-1] && s.expectKey[n-1] {
			s.expectKey[n-1] = false
			return eng.Token{Kind: eng.KindKey, String: v, Offset: -1}, nil
		}
		s.valueDone()
		return eng.Token{Kind: eng.KindString, String: v, Offset: -1}, nil
	case bool:
		s.valueDone()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.valueDone()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	case nil:
		s.valueDone()
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	}
	s.valueDone()
	return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
}

func (s *source) push(object bool) {
	s.objects = append(s.objects, object)
	s.expectKey = append(s.expectKey, object)
}

func (s *source) pop() {
	if n := len(s.objects); n > 0 {
		s.objects = s.objects[:n-1]
		s.expectKey = s.expectKey[:n-1]
	}
	s.valueDone()
}

func (s *source) valueDone() {
	if n := len(s.objects); n > 0 && s.objects[n-1] {
		s.expectKey[n-1] = true
	}
}

func (s *source) Location() int64 { return -1 }
