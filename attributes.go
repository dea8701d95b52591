package wording

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Attributes is the caller object a wording is resolved against. The
// pipeline reads values of tags from it and stores invented values into it.
type Attributes interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	Keys() []string // all keys currently set
}

// Attrs is the default Attributes store. Keys are kept in sorted order, which
// makes every pipeline run over an Attrs deterministic. Attrs is not safe for
// concurrent use.
type Attrs struct {
	m *treemap.Map
}

var _ Attributes = (*Attrs)(nil)

// NewAttrs creates an empty store.
func NewAttrs() *Attrs {
	return &Attrs{m: treemap.NewWithStringComparator()}
}

// AttrsFrom creates a store pre-populated with values.
func AttrsFrom(values map[string]interface{}) *Attrs {
	a := NewAttrs()
	for k, v := range values {
		a.m.Put(k, v)
	}
	return a
}

// Get returns the value for key.
func (a *Attrs) Get(key string) (interface{}, bool) {
	return a.m.Get(key)
}

// Set stores a value for key, replacing an existing one.
func (a *Attrs) Set(key string, value interface{}) {
	a.m.Put(key, value)
}

// Has is true if key is set.
func (a *Attrs) Has(key string) bool {
	_, ok := a.m.Get(key)
	return ok
}

// Keys returns the keys in ascending order.
func (a *Attrs) Keys() []string {
	keys := make([]string, 0, a.m.Size())
	for _, k := range a.m.Keys() {
		keys = append(keys, k.(string))
	}
	return keys
}

// Len returns the number of keys.
func (a *Attrs) Len() int {
	return a.m.Size()
}

// Clone returns a shallow copy.
func (a *Attrs) Clone() *Attrs {
	c := NewAttrs()
	it := a.m.Iterator()
	for it.Next() {
		c.m.Put(it.Key(), it.Value())
	}
	return c
}

// Map returns the contents as a Go map.
func (a *Attrs) Map() map[string]interface{} {
	m := make(map[string]interface{}, a.m.Size())
	it := a.m.Iterator()
	for it.Next() {
		m[it.Key().(string)] = it.Value()
	}
	return m
}

func has(obj Attributes, key string) bool {
	_, ok := obj.Get(key)
	return ok
}

// recorder passes writes through to an Attributes store and remembers the
// values written.
type recorder struct {
	Attributes
	assigned map[string]interface{}
}

func newRecorder(obj Attributes) *recorder {
	return &recorder{Attributes: obj, assigned: make(map[string]interface{})}
}

func (r *recorder) Set(key string, value interface{}) {
	r.assigned[key] = value
	r.Attributes.Set(key, value)
}
