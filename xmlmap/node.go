// Package xmlmap converts markup-element trees into flat key-value mappings.
package xmlmap

// Attr is a single attribute key-value pair of a markup node.
type Attr struct {
	Key   string
	Value string
}

// Node is a minimal markup-tree abstraction. Any parser producing this shape
// suffices; Element is the bundled implementation over encoding/xml.
type Node interface {
	// Tag returns the node's tag name.
	Tag() string
	// Text returns the node's own text, empty if absent.
	Text() string
	// Attrs returns the node's attributes in document order.
	Attrs() []Attr
	// Children returns the node's direct children in document order.
	Children() []Node
}
