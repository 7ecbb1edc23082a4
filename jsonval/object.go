package jsonval

import (
	"iter"
	"slices"
)

// Object is a JSON object that keeps its members in insertion order.
// The zero value is an empty object ready to use.
type Object struct {
	keys    []string
	members map[string]Value
}

// NewObject creates an empty object.
func NewObject() *Object {
	return &Object{members: make(map[string]Value)}
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) value()     {}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the member names in order.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	return slices.Clone(o.keys)
}

// All iterates over the members in order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if o == nil {
			return
		}
		for _, k := range o.keys {
			if !yield(k, o.members[k]) {
				return
			}
		}
	}
}

// Has reports whether the object has a member named key.
func (o *Object) Has(key string) bool {
	if o == nil {
		return false
	}
	_, ok := o.members[key]
	return ok
}

// Get returns the member named key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.members[key]
	return v, ok
}

// Set adds or replaces the member named key. A replaced member keeps its
// position. A nil v is stored as Null.
func (o *Object) Set(key string, v Value) {
	if v == nil {
		v = Null{}
	}
	if o.members == nil {
		o.members = make(map[string]Value)
	}
	if _, ok := o.members[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.members[key] = v
}

// Remove deletes the member named key and reports whether it was present.
func (o *Object) Remove(key string) bool {
	if o == nil {
		return false
	}
	if _, ok := o.members[key]; !ok {
		return false
	}
	delete(o.members, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

// Clone returns a deep copy of o.
func (o *Object) Clone() *Object {
	if o == nil {
		return nil
	}
	out := &Object{
		keys:    slices.Clone(o.keys),
		members: make(map[string]Value, len(o.members)),
	}
	for k, v := range o.members {
		out.members[k] = Clone(v)
	}
	return out
}
