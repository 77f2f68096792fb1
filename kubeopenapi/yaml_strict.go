package kubeopenapi

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/reoring/schemanode"
	"gopkg.in/yaml.v3"
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// StrictYAMLReader decodes a multi-document YAML stream into ordered values,
// rejecting duplicate mapping keys with their positions.
type StrictYAMLReader struct {
	dec *yaml.Decoder
}

// NewStrictYAMLReader constructs a StrictYAMLReader.
func NewStrictYAMLReader(r io.Reader) *StrictYAMLReader {
	return &StrictYAMLReader{dec: yaml.NewDecoder(r)}
}

// Next returns the next document. Empty documents decode to null.
// It returns io.EOF when the stream is exhausted.
func (s *StrictYAMLReader) Next(ctx context.Context) (schemanode.Value, error) {
	var root yaml.Node
	if err := s.dec.Decode(&root); err != nil {
		return schemanode.Value{}, err
	}
	if len(root.Content) == 0 {
		return schemanode.Null(), nil
	}
	if err := checkDuplicates(root.Content[0]); err != nil {
		return schemanode.Value{}, err
	}
	return schemanode.DecodeValue(ctx, schemanode.YAMLNode(root.Content[0]))
}

// ReadAll reads all documents from the YAML stream.
func (s *StrictYAMLReader) ReadAll(ctx context.Context) ([]schemanode.Value, error) {
	var out []schemanode.Value
	for {
		v, err := s.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, err
		}
		out = append(out, v)
	}
}

func checkDuplicates(n *yaml.Node) error {
	switch n.Kind {
	case yaml.DocumentNode, yaml.SequenceNode:
		for _, c := range n.Content {
			if err := checkDuplicates(c); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		first := make(map[string][2]int, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if pos, dup := first[k.Value]; dup {
				return &DuplicateKeyError{Key: k.Value, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
			}
			first[k.Value] = [2]int{k.Line, k.Column}
			if err := checkDuplicates(n.Content[i+1]); err != nil {
				return err
			}
		}
	}
	return nil
}
