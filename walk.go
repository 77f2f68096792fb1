package schemanode

import "errors"

// SlotKind tells how a child hangs off its parent keyword.
type SlotKind int

const (
	SlotSingle   SlotKind = iota // not, items (single), additionalProperties, ...
	SlotSequence                 // allOf, anyOf, oneOf, items (tuple)
	SlotMap                      // properties, patternProperties, definitions, dependencies
)

// Child is one direct sub-schema of a node together with the path segments
// that reach it: Keyword, then Index for sequences or Key for maps.
type Child struct {
	Keyword string
	Slot    SlotKind
	Key     string
	Index   int // -1 unless Slot is SlotSequence
	Node    *SchemaOrBool
}

// Path extends base with the child's segments.
func (c Child) Path(base PathRef) PathRef {
	p := base.Field(c.Keyword)
	switch c.Slot {
	case SlotSequence:
		return p.Index(c.Index)
	case SlotMap:
		return p.Field(c.Key)
	}
	return p
}

// Children lists the direct sub-schemas of s. Keywords come in the order the
// node declares them; map entries in insertion order and sequence entries in
// declaration order. Values that are not schemas (default, enum, unknown
// keywords, snippet bodies) are never reported.
func (s *Schema) Children() []Child {
	if s == nil {
		return nil
	}
	var out []Child
	for _, k := range s.Keywords() {
		kw, ok := vocabularyIndex[k]
		if !ok || kw.children == nil {
			continue
		}
		kw.children(s, func(c Child) bool {
			out = append(out, c)
			return true
		})
	}
	return out
}

// Children lists the direct sub-schemas of r; boolean schemas have none.
func (r *SchemaOrBool) Children() []Child { return r.Schema().Children() }

// SkipChildren may be returned by a WalkFunc to skip the sub-schemas of the
// node just visited.
var SkipChildren = errors.New("skip children")

// WalkFunc visits one node. path is the node's location from the walk root.
type WalkFunc func(path PathRef, node *SchemaOrBool) error

// Walk visits root and every sub-schema depth-first in pre-order. $ref values
// are not followed, so Walk always terminates. The first error other than
// SkipChildren stops the walk and is returned.
func Walk(root *SchemaOrBool, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	return walk(RootPath(), root, fn)
}

func walk(path PathRef, node *SchemaOrBool, fn WalkFunc) error {
	if err := fn(path, node); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}
	for _, c := range node.Children() {
		if err := walk(c.Path(path), c.Node, fn); err != nil {
			return err
		}
	}
	return nil
}
