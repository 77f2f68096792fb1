package schemanode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"
)

// YAMLBytes wraps YAML text as a Source. Only the first document of the
// stream is read. Mapping order is kept, so YAML schemas round-trip like JSON.
func YAMLBytes(b []byte) Source { return YAMLReader(bytes.NewReader(b)) }

// YAMLReader wraps a YAML stream as a Source (first document only).
func YAMLReader(r io.Reader) Source { return &yamlSource{dec: yaml.NewDecoder(r)} }

// YAMLNode wraps an already decoded YAML node as a Source.
func YAMLNode(n *yaml.Node) Source { return &yamlSource{root: n} }

type yamlSource struct {
	dec    *yaml.Decoder
	root   *yaml.Node
	loaded bool
	toks   []Token
	pos    int
	err    error // returned once toks are exhausted
}

const maxAliasDepth = 1000

func (s *yamlSource) NextToken() (Token, error) {
	if !s.loaded {
		s.load()
	}
	if s.pos < len(s.toks) {
		t := s.toks[s.pos]
		s.pos++
		return t, nil
	}
	if s.err != nil {
		return Token{}, s.err
	}
	return Token{}, io.EOF
}

func (s *yamlSource) Location() int64 { return -1 }

func (s *yamlSource) load() {
	s.loaded = true
	if s.root == nil {
		var doc yaml.Node
		if err := s.dec.Decode(&doc); err != nil {
			s.err = err
			return
		}
		s.root = &doc
	}
	s.err = s.flatten(s.root, 0)
}

func (s *yamlSource) emit(t Token) {
	t.Offset = -1
	s.toks = append(s.toks, t)
}

func (s *yamlSource) flatten(n *yaml.Node, aliasDepth int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			s.emit(Token{Kind: TokenNull})
			return nil
		}
		return s.flatten(n.Content[0], aliasDepth)
	case yaml.AliasNode:
		if aliasDepth >= maxAliasDepth || n.Alias == nil {
			return fmt.Errorf("yaml: alias nesting too deep at line %d", n.Line)
		}
		return s.flatten(n.Alias, aliasDepth+1)
	case yaml.MappingNode:
		s.emit(Token{Kind: TokenBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind != yaml.ScalarNode {
				return fmt.Errorf("yaml: non-scalar mapping key at line %d", k.Line)
			}
			s.emit(Token{Kind: TokenKey, String: k.Value})
			if err := s.flatten(n.Content[i+1], aliasDepth); err != nil {
				return err
			}
		}
		s.emit(Token{Kind: TokenEndObject})
		return nil
	case yaml.SequenceNode:
		s.emit(Token{Kind: TokenBeginArray})
		for _, c := range n.Content {
			if err := s.flatten(c, aliasDepth); err != nil {
				return err
			}
		}
		s.emit(Token{Kind: TokenEndArray})
		return nil
	case yaml.ScalarNode:
		t, err := yamlScalar(n)
		if err != nil {
			return err
		}
		s.emit(t)
		return nil
	}
	return errors.New("yaml: unsupported node kind")
}

var jsonNumberLiteral = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

func yamlScalar(n *yaml.Node) (Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return Token{Kind: TokenNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenBool, Bool: b}, nil
	case "!!int":
		if jsonNumberLiteral.MatchString(n.Value) {
			return Token{Kind: TokenNumber, Number: n.Value}, nil
		}
		var i int64
		if err := n.Decode(&i); err != nil {
			return Token{}, fmt.Errorf("yaml: integer %q at line %d: %w", n.Value, n.Line, err)
		}
		return Token{Kind: TokenNumber, Number: strconv.FormatInt(i, 10)}, nil
	case "!!float":
		if jsonNumberLiteral.MatchString(n.Value) {
			return Token{Kind: TokenNumber, Number: n.Value}, nil
		}
		var f float64
		if err := n.Decode(&f); err != nil {
			return Token{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Token{}, fmt.Errorf("yaml: %q at line %d has no JSON representation", n.Value, n.Line)
		}
		return Token{Kind: TokenNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	default:
		return Token{Kind: TokenString, String: n.Value}, nil
	}
}
