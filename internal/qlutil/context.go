package qlutil

import (
	"time"

	qlvalue "github.com/araddon/qlbridge/value"
)

// MapContext adapts a plain map to the qlbridge ContextReader interface.
type MapContext struct {
	values map[string]any
}

// NewMapContext creates a new MapContext.
func NewMapContext(values map[string]any) *MapContext {
	return &MapContext{values: values}
}

// Get implements the qlbridge.ContextReader interface.
func (c *MapContext) Get(key string) (qlvalue.Value, bool) {
	v, ok := c.values[key]
	if !ok {
		return qlvalue.NewNilValue(), false
	}
	return qlvalue.NewValue(v), true
}

// Row implements the qlbridge.ContextReader interface.
func (c *MapContext) Row() map[string]qlvalue.Value {
	row := make(map[string]qlvalue.Value, len(c.values))
	for k, v := range c.values {
		row[k] = qlvalue.NewValue(v)
	}
	return row
}

// Ts implements the qlbridge.ContextReader interface.
func (c *MapContext) Ts() time.Time { return time.Time{} }
