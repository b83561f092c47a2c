package parser

import "iter"

// Pair is one key/value entry of an OrderedMap.
type Pair[V any] struct {
	Key   string
	Value V
}

// OrderedMap is a string-keyed mapping that remembers the order in which keys
// appeared in the source document. Paths, operations, responses, media types
// and schemas all use it so rendered output follows the author's ordering.
//
// A nil *OrderedMap is a valid empty map for every read method.
type OrderedMap[V any] struct {
	pairs []Pair[V]
	index map[string]int
}

// NewOrderedMap creates an empty OrderedMap with room for n entries.
func NewOrderedMap[V any](n int) *OrderedMap[V] {
	return &OrderedMap[V]{
		pairs: make([]Pair[V], 0, n),
		index: make(map[string]int, n),
	}
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position and has its value replaced.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.pairs[i].Value = value
		return
	}
	m.index[key] = len(m.pairs)
	m.pairs = append(m.pairs, Pair[V]{Key: key, Value: value})
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	i, ok := m.index[key]
	if !ok {
		return zero, false
	}
	return m.pairs[i].Value, true
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.pairs)
}

// Keys returns the keys in source order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.pairs))
	for i, p := range m.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the entries in source order.
func (m *OrderedMap[V]) Pairs() []Pair[V] {
	if m == nil {
		return nil
	}
	out := make([]Pair[V], len(m.pairs))
	copy(out, m.pairs)
	return out
}

// All iterates over the entries in source order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, p := range m.pairs {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
