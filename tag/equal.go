package tag

import "slices"

// Clone returns a deep copy of t.
func Clone(t Tag) Tag {
	switch t := t.(type) {
	case *Compound:
		return t.Clone()
	case List:
		out := make(List, len(t))
		for i, e := range t {
			out[i] = Clone(e)
		}
		return out
	case ByteArray:
		return slices.Clone(t)
	case IntArray:
		return slices.Clone(t)
	case LongArray:
		return slices.Clone(t)
	}
	return t
}

// Equal reports whether a and b are structurally equal. Tags of different
// kinds are never equal, and compound key order is not significant.
func Equal(a, b Tag) bool {
	switch a := a.(type) {
	case *Compound:
		bc, ok := b.(*Compound)
		if !ok || a.Len() != bc.Len() {
			return false
		}
		for k, at := range a.All() {
			bt, ok := bc.Get(k)
			if !ok || !Equal(at, bt) {
				return false
			}
		}
		return true
	case List:
		bl, ok := b.(List)
		if !ok || len(a) != len(bl) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bl[i]) {
				return false
			}
		}
		return true
	case ByteArray:
		bb, ok := b.(ByteArray)
		return ok && slices.Equal(a, bb)
	case IntArray:
		bi, ok := b.(IntArray)
		return ok && slices.Equal(a, bi)
	case LongArray:
		bl, ok := b.(LongArray)
		return ok && slices.Equal(a, bl)
	case nil:
		return b == nil
	}
	return a == b
}
