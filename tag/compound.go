package tag

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrKeyNotFound is the panic value, wrapped, of MustGet on a missing key.
var ErrKeyNotFound = errors.New("tag: key not found")

// Compound maps string keys to tags and remembers insertion order.
// The zero value is an empty compound ready to use.
type Compound struct {
	keys []string
	tags map[string]Tag
}

// NewCompound creates an empty compound.
func NewCompound() *Compound {
	return &Compound{tags: make(map[string]Tag)}
}

func (*Compound) Kind() Kind { return KindCompound }
func (*Compound) isTag()     {}

// Len returns the number of entries.
func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.keys)
}

// Keys returns the keys in insertion order.
func (c *Compound) Keys() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.keys)
}

// All iterates over the entries in insertion order.
func (c *Compound) All() iter.Seq2[string, Tag] {
	return func(yield func(string, Tag) bool) {
		if c == nil {
			return
		}
		for _, k := range c.keys {
			if !yield(k, c.tags[k]) {
				return
			}
		}
	}
}

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.tags[key]
	return ok
}

// Get returns the tag stored under key.
func (c *Compound) Get(key string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	t, ok := c.tags[key]
	return t, ok
}

// MustGet returns the tag stored under key and panics if it is missing.
// Use it only where the key has already been checked.
func (c *Compound) MustGet(key string) Tag {
	t, ok := c.Get(key)
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrKeyNotFound, key))
	}
	return t
}

// Set stores t under key, replacing any previous tag in place. Storing a nil
// tag panics: absence is expressed by not having the key.
func (c *Compound) Set(key string, t Tag) {
	if t == nil {
		panic(fmt.Sprintf("tag: nil tag for key %q", key))
	}
	if c.tags == nil {
		c.tags = make(map[string]Tag)
	}
	if _, ok := c.tags[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.tags[key] = t
}

// Remove deletes key and reports whether it was present.
func (c *Compound) Remove(key string) bool {
	if c == nil {
		return false
	}
	if _, ok := c.tags[key]; !ok {
		return false
	}
	delete(c.tags, key)
	if i := slices.Index(c.keys, key); i >= 0 {
		c.keys = slices.Delete(c.keys, i, i+1)
	}
	return true
}

// IsBool reports whether the tag under key is a Bool.
func (c *Compound) IsBool(key string) bool {
	t, _ := c.Get(key)
	_, ok := t.(Bool)
	return ok
}

// Clone returns a deep copy of c.
func (c *Compound) Clone() *Compound {
	if c == nil {
		return nil
	}
	out := &Compound{
		keys: slices.Clone(c.keys),
		tags: make(map[string]Tag, len(c.tags)),
	}
	for k, t := range c.tags {
		out.tags[k] = Clone(t)
	}
	return out
}

func (c *Compound) SetByte(key string, v int8)      { c.Set(key, Byte(v)) }
func (c *Compound) SetShort(key string, v int16)    { c.Set(key, Short(v)) }
func (c *Compound) SetInt(key string, v int32)      { c.Set(key, Int(v)) }
func (c *Compound) SetLong(key string, v int64)     { c.Set(key, Long(v)) }
func (c *Compound) SetFloat(key string, v float32)  { c.Set(key, Float(v)) }
func (c *Compound) SetDouble(key string, v float64) { c.Set(key, Double(v)) }
func (c *Compound) SetBool(key string, v bool)      { c.Set(key, Bool(v)) }
func (c *Compound) SetString(key string, v string)  { c.Set(key, String(v)) }

func (c *Compound) SetByteArray(key string, v []int8) {
	c.Set(key, ByteArray(slices.Clone(v)))
}

func (c *Compound) SetIntArray(key string, v []int32) {
	c.Set(key, IntArray(slices.Clone(v)))
}

func (c *Compound) SetLongArray(key string, v []int64) {
	c.Set(key, LongArray(slices.Clone(v)))
}

// numeric returns the tag under key if it is Numeric.
func (c *Compound) numeric(key string) (Numeric, bool) {
	t, _ := c.Get(key)
	n, ok := t.(Numeric)
	return n, ok
}

// GetByte returns the tag under key viewed as a byte, or 0 when it is
// missing or not numeric. The other numeric getters behave the same way.
func (c *Compound) GetByte(key string) int8 {
	if n, ok := c.numeric(key); ok {
		return n.AsByte()
	}
	return 0
}

func (c *Compound) GetShort(key string) int16 {
	if n, ok := c.numeric(key); ok {
		return n.AsShort()
	}
	return 0
}

func (c *Compound) GetInt(key string) int32 {
	if n, ok := c.numeric(key); ok {
		return n.AsInt()
	}
	return 0
}

func (c *Compound) GetLong(key string) int64 {
	if n, ok := c.numeric(key); ok {
		return n.AsLong()
	}
	return 0
}

func (c *Compound) GetFloat(key string) float32 {
	if n, ok := c.numeric(key); ok {
		return n.AsFloat()
	}
	return 0
}

func (c *Compound) GetDouble(key string) float64 {
	if n, ok := c.numeric(key); ok {
		return n.AsDouble()
	}
	return 0
}

// GetBool returns the Bool under key. Numeric tags, as read from binary NBT,
// are true when non-zero.
func (c *Compound) GetBool(key string) bool {
	if n, ok := c.numeric(key); ok {
		return n.AsByte() != 0
	}
	return false
}

// GetString returns the String under key or "".
func (c *Compound) GetString(key string) string {
	t, _ := c.Get(key)
	s, _ := t.(String)
	return string(s)
}

// GetCompound returns the Compound under key or nil.
func (c *Compound) GetCompound(key string) *Compound {
	t, _ := c.Get(key)
	sub, _ := t.(*Compound)
	return sub
}

// GetList returns the List under key or nil.
func (c *Compound) GetList(key string) List {
	t, _ := c.Get(key)
	l, _ := t.(List)
	return l
}

func (c *Compound) GetByteArray(key string) []int8 {
	t, _ := c.Get(key)
	a, _ := t.(ByteArray)
	return a
}

func (c *Compound) GetIntArray(key string) []int32 {
	t, _ := c.Get(key)
	a, _ := t.(IntArray)
	return a
}

func (c *Compound) GetLongArray(key string) []int64 {
	t, _ := c.Get(key)
	a, _ := t.(LongArray)
	return a
}
