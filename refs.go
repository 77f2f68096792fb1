package schemanode

import (
	"net/url"
	"strconv"
	"strings"
)

// RefSite records one identifier-bearing node found by BuildIndex.
type RefSite struct {
	Pointer string // location of the node carrying the keyword; "" for the root
	Keyword string // $ref, id, $id, definitions or $defs
	Value   string // the keyword's value; the entry name for definitions
	Node    *SchemaOrBool
}

// Index lists the reference-related sites of a tree so a resolver can bind
// $ref values without walking the tree again. Nothing is resolved here.
type Index struct {
	root        *SchemaOrBool
	Refs        []RefSite
	IDs         []RefSite
	Definitions []RefSite
}

// BuildIndex walks root once and records every $ref, id/$id and
// definitions/$defs entry in pre-order.
func BuildIndex(root *SchemaOrBool) *Index {
	ix := &Index{root: root}
	_ = Walk(root, func(path PathRef, node *SchemaOrBool) error {
		s := node.Schema()
		if s == nil {
			return nil
		}
		ptr := path.Pointer()
		if s.Ref != nil {
			ix.Refs = append(ix.Refs, RefSite{Pointer: ptr, Keyword: "$ref", Value: *s.Ref, Node: node})
		}
		if s.ID != nil {
			ix.IDs = append(ix.IDs, RefSite{Pointer: ptr, Keyword: "id", Value: *s.ID, Node: node})
		}
		if s.DollarID != nil {
			ix.IDs = append(ix.IDs, RefSite{Pointer: ptr, Keyword: "$id", Value: *s.DollarID, Node: node})
		}
		ix.definitions(path, "definitions", s.Definitions)
		ix.definitions(path, "$defs", s.Defs)
		return nil
	})
	return ix
}

func (ix *Index) definitions(path PathRef, keyword string, m *Map[*SchemaOrBool]) {
	for name, def := range m.All() {
		ix.Definitions = append(ix.Definitions, RefSite{
			Pointer: path.Field(keyword).Field(name).Pointer(),
			Keyword: keyword,
			Value:   name,
			Node:    def,
		})
	}
}

// Lookup finds the node at a JSON pointer inside the indexed tree. Both the
// plain form ("/definitions/a") and the fragment form ("#/definitions/a") are
// accepted; the fragment form is percent-decoded first. A pointer that enters
// a retained unknown keyword (for example "#/components/schemas/A") yields a
// node built from that value on demand, which is not part of the tree.
// Lookup does not resolve URIs.
func (ix *Index) Lookup(pointer string) (*SchemaOrBool, bool) {
	if ix == nil || ix.root == nil {
		return nil, false
	}
	if strings.HasPrefix(pointer, "#") {
		frag, err := url.PathUnescape(pointer[1:])
		if err != nil {
			return nil, false
		}
		pointer = "#" + frag
	}
	p, err := ParsePointer(pointer)
	if err != nil {
		return nil, false
	}
	return lookup(ix.root, p.Tokens())
}

// Unresolved returns the $ref sites whose value is a local fragment pointer
// that Lookup cannot follow.
func (ix *Index) Unresolved() []RefSite {
	var out []RefSite
	for _, r := range ix.Refs {
		if len(r.Value) == 0 || r.Value[0] != '#' {
			continue
		}
		if _, ok := ix.Lookup(r.Value); !ok {
			out = append(out, r)
		}
	}
	return out
}

func lookup(node *SchemaOrBool, tokens []string) (*SchemaOrBool, bool) {
	for len(tokens) > 0 {
		next, used := step(node, tokens)
		if next == nil {
			return extension(node, tokens)
		}
		node, tokens = next, tokens[used:]
	}
	return node, true
}

// step descends one child, consuming the keyword token plus the key or index
// token for map and sequence slots.
func step(node *SchemaOrBool, tokens []string) (*SchemaOrBool, int) {
	for _, c := range node.Children() {
		if c.Keyword != tokens[0] {
			continue
		}
		switch c.Slot {
		case SlotSingle:
			return c.Node, 1
		case SlotSequence:
			if len(tokens) < 2 {
				return nil, 0
			}
			if i, ok := arrayIndex(tokens[1]); ok && i == c.Index {
				return c.Node, 2
			}
		case SlotMap:
			if len(tokens) >= 2 && tokens[1] == c.Key {
				return c.Node, 2
			}
		}
	}
	return nil, 0
}

// extension follows tokens through the raw value of an unknown keyword and
// constructs the schema found there.
func extension(node *SchemaOrBool, tokens []string) (*SchemaOrBool, bool) {
	s := node.Schema()
	if s == nil {
		return nil, false
	}
	v, ok := s.Extra.Get(tokens[0])
	if !ok {
		return nil, false
	}
	for _, t := range tokens[1:] {
		switch v.Kind {
		case KindObject:
			v, ok = v.Get(t)
		case KindArray:
			var i int
			if i, ok = arrayIndex(t); ok && i < len(v.Array) {
				v = v.Array[i]
			} else {
				ok = false
			}
		default:
			ok = false
		}
		if !ok {
			return nil, false
		}
	}
	r, err := FromValue(v)
	if err != nil {
		return nil, false
	}
	return r, true
}

// arrayIndex parses a pointer token as an array index. Leading zeros and
// signs are not allowed.
func arrayIndex(tok string) (int, bool) {
	if tok == "" || (len(tok) > 1 && tok[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(tok)
	return i, err == nil
}
