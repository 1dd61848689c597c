package xmlmap

import (
	"errors"
	"fmt"
	"strings"
)

// ErrCyclicStructure is returned when a node is reachable from itself.
var ErrCyclicStructure = errors.New("cyclic node structure")

type options struct {
	prefix          string
	indexDuplicates bool
}

// Option configures Flatten, FlattenAll and FlattenMap.
type Option func(*options)

// WithPrefix strips the given prefix from child tag names when deriving keys.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// IndexDuplicates appends a zero-based counter, right-aligned to width four,
// to every derived key so that siblings repeating a tag stay distinct. The
// counter restarts whenever the tag differs from the previous sibling's tag.
func IndexDuplicates() Option {
	return func(o *options) {
		o.indexDuplicates = true
	}
}

// Flatten builds a mapping from the direct children of n, one entry per child
// in sibling order. A child without children maps to its text, or to its
// attribute list when it has no text; a child with children maps to the child
// node itself. Without IndexDuplicates, a repeated key overwrites the earlier
// entry.
func Flatten(n Node, opts ...Option) map[string]any {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return flatten(n, o)
}

func flatten(n Node, o options) map[string]any {
	m := map[string]any{}

	prev := ""
	i := 0
	for _, child := range n.Children() {
		tag := child.Tag()
		if o.prefix != "" {
			tag = strings.TrimPrefix(tag, o.prefix)
		}

		if tag == prev {
			i++
		} else {
			prev = tag
			i = 0
		}

		key := tag
		if o.indexDuplicates {
			key = fmt.Sprintf("%s%4d", tag, i)
		}

		if len(child.Children()) > 0 {
			m[key] = child
		} else if text := child.Text(); text != "" {
			m[key] = text
		} else {
			attrs := child.Attrs()
			if attrs == nil {
				attrs = []Attr{}
			}
			m[key] = attrs
		}
	}
	return m
}

// FlattenAll flattens n recursively: every composite node, directly or nested
// inside the produced values, is exhausted into nested mappings until no Node
// value remains. Unlike the one-level Flatten, it can fail, on a cyclic node
// graph.
func FlattenAll(n Node, opts ...Option) (map[string]any, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	return flattenAll(n, o, map[Node]struct{}{})
}

func flattenAll(n Node, o options, path map[Node]struct{}) (map[string]any, error) {
	if _, ok := path[n]; ok {
		return nil, ErrCyclicStructure
	}
	path[n] = struct{}{}
	defer delete(path, n)

	m := flatten(n, o)
	for key, value := range m {
		child, ok := value.(Node)
		if !ok {
			continue
		}
		sub, err := flattenAll(child, o, path)
		if err != nil {
			return nil, err
		}
		m[key] = sub
	}
	return m, nil
}

// FlattenMap returns a copy of m in which the Node values at the selected
// keys are replaced by their fully flattened form. A nil keys slice selects
// every key. Keys that are absent, hold no Node, or fail to flatten keep
// their previous value; processing continues with the remaining keys.
func FlattenMap(m map[string]any, keys []string, opts ...Option) map[string]any {
	if keys == nil {
		keys = make([]string, 0, len(m))
		for key := range m {
			keys = append(keys, key)
		}
	}

	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = value
	}

	for _, key := range keys {
		node, ok := out[key].(Node)
		if !ok {
			continue
		}
		flat, err := FlattenAll(node, opts...)
		if err != nil {
			continue
		}
		out[key] = flat
	}
	return out
}
