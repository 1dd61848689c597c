package ordmap

import (
	"errors"
	"iter"
)

// ErrKeyExists is returned when a key already exists in the map.
var ErrKeyExists = errors.New("key already exists")

// Map is a map that maintains insertion order of the keys.
type Map[K comparable, V any] struct {
	m    map[K]V
	keys []K
}

// New creates a new Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{m: make(map[K]V)}
}

// Add adds a key-value pair to the map. It returns an error if the key
// already exists.
func (m *Map[K, V]) Add(key K, value V) error {
	if _, ok := m.m[key]; ok {
		return ErrKeyExists
	}

	m.m[key] = value
	m.keys = append(m.keys, key)
	return nil
}

// Get returns the value of a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.m[key]
	return value, ok
}

// Keys returns the keys in insertion order. The returned slice is shared and
// must not be modified.
func (m *Map[K, V]) Keys() []K {
	return m.keys
}

// Iter returns an iterator over all key-value pairs in insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range m.keys {
			if !yield(key, m.m[key]) {
				return
			}
		}
	}
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return len(m.keys)
}
