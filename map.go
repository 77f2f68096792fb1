package schemanode

import "iter"

// Map is a string-keyed map that remembers insertion order. It backs every
// name->value slot of a schema (properties, patternProperties, definitions,
// dependencies, unknown keywords) so traversal and serialization follow the
// document's declaration order.
//
// A nil *Map is a valid empty map for reading.
type Map[V any] struct {
	keys []string
	vals map[string]V
}

// NewMap returns an empty Map.
func NewMap[V any]() *Map[V] { return &Map[V]{vals: map[string]V{}} }

// Set stores v under k. A new key is appended; an existing key keeps its position.
func (m *Map[V]) Set(k string, v V) {
	if m.vals == nil {
		m.vals = map[string]V{}
	}
	if _, ok := m.vals[k]; !ok {
		m.keys = append(m.keys, k)
	}
	m.vals[k] = v
}

// Get returns the value stored under k.
func (m *Map[V]) Get(k string) (V, bool) {
	var zero V
	if m == nil || m.vals == nil {
		return zero, false
	}
	v, ok := m.vals[k]
	return v, ok
}

// Has reports whether k is present.
func (m *Map[V]) Has(k string) bool {
	_, ok := m.Get(k)
	return ok
}

// Delete removes k, keeping the order of the remaining keys.
func (m *Map[V]) Delete(k string) {
	if m == nil || m.vals == nil {
		return
	}
	if _, ok := m.vals[k]; !ok {
		return
	}
	delete(m.vals, k)
	for i, kk := range m.keys {
		if kk == k {
			m.keys = append(m.keys[:i:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}
