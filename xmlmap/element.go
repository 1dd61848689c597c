package xmlmap

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
)

// ErrNoRoot is returned when the parsed document contains no root element.
var ErrNoRoot = errors.New("document has no root element")

// Element is a concrete Node parsed from an XML document.
type Element struct {
	tag      string
	attrs    []Attr
	text     string
	children []*Element
}

// NewElement creates an element with the given tag, attributes and text.
// Children can be attached with Append.
func NewElement(tag string, attrs []Attr, text string) *Element {
	return &Element{tag: tag, attrs: attrs, text: text}
}

// Append adds children to the element and returns it.
func (e *Element) Append(children ...*Element) *Element {
	e.children = append(e.children, children...)
	return e
}

// Tag implements the Node interface.
func (e *Element) Tag() string { return e.tag }

// Text implements the Node interface. Surrounding whitespace is trimmed and
// only text preceding the first child is considered, so purely structural
// indentation does not count as text.
func (e *Element) Text() string { return e.text }

// Attrs implements the Node interface.
func (e *Element) Attrs() []Attr { return e.attrs }

// Children implements the Node interface.
func (e *Element) Children() []Node {
	children := make([]Node, len(e.children))
	for i, c := range e.children {
		children[i] = c
	}
	return children
}

// Parse reads an XML document and returns its root element.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make([]Attr, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attr{Key: a.Name.Local, Value: a.Value})
			}
			e := &Element{tag: t.Name.Local, attrs: attrs}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, errors.New("unbalanced end element")
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			e := stack[len(stack)-1]
			if len(e.children) == 0 {
				e.text += string(t)
			}
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}

	trimText(root)
	return root, nil
}

func trimText(e *Element) {
	e.text = strings.TrimSpace(e.text)
	for _, c := range e.children {
		trimText(c)
	}
}
