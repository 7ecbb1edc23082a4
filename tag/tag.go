// Package tag implements a storage tag tree modelled on Minecraft NBT, its
// conversion to and from JSON, and its binary NBT form.
//
// # Tags
//
// A tree is built from a closed set of variants:
//
//	*Compound                    string keys to tags, in insertion order
//	List                         ordered tags
//	String                       text
//	Byte Short Int Long          integers (Numeric)
//	Float Double                 floating point (Numeric)
//	Bool                         boolean, also readable as Numeric 1/0
//	ByteArray IntArray LongArray fixed-width integer arrays
//
// # JSON
//
// EncodeJSON and DecodeJSON convert a Compound to and from a jsonval.Object.
// JSON has no notion of byte, int or long arrays, so array elements are
// written as strings carrying a type suffix:
//
//	ByteArray{1, 2}  -> ["1-B", "2-B"]
//	IntArray{7}      -> ["7-I"]
//	LongArray{7}     -> ["7-L"]
//
// Plain lists are written as arrays of suffix-less strings. The suffix text is
// part of the stored format and must not change.
//
// # NBT
//
// FromNBT, ToNBT, MarshalNBT and UnmarshalNBT bridge to the NBT model used by
// gophertunnel and Dragonfly.
package tag

// Kind identifies a tag variant. Values other than KindBool equal the NBT
// type id of the variant.
type Kind uint8

const (
	KindByte Kind = iota + 1
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
	KindIntArray
	KindLongArray
	KindBool
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindByte:
		return "Byte"
	case KindShort:
		return "Short"
	case KindInt:
		return "Int"
	case KindLong:
		return "Long"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindByteArray:
		return "ByteArray"
	case KindString:
		return "String"
	case KindList:
		return "List"
	case KindCompound:
		return "Compound"
	case KindIntArray:
		return "IntArray"
	case KindLongArray:
		return "LongArray"
	case KindBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// ID returns the NBT type id used to store a tag of this kind. Booleans are
// stored as bytes.
func (k Kind) ID() byte {
	if k == KindBool {
		return byte(KindByte)
	}
	return byte(k)
}

// Tag is a node of a tag tree. String returns the SNBT form of the tag.
type Tag interface {
	Kind() Kind
	String() string
	isTag()
}

// String is a text tag.
type String string

// List is an ordered sequence of tags. Lists are expected to hold a single
// kind of tag but this is not enforced.
type List []Tag

// ByteArray is a byte array tag, stored as one tag rather than a List.
type ByteArray []int8

// IntArray is an int array tag, stored as one tag rather than a List.
type IntArray []int32

// LongArray is a long array tag, stored as one tag rather than a List.
type LongArray []int64

func (String) Kind() Kind    { return KindString }
func (List) Kind() Kind      { return KindList }
func (ByteArray) Kind() Kind { return KindByteArray }
func (IntArray) Kind() Kind  { return KindIntArray }
func (LongArray) Kind() Kind { return KindLongArray }

func (String) isTag()    {}
func (List) isTag()      {}
func (ByteArray) isTag() {}
func (IntArray) isTag()  {}
func (LongArray) isTag() {}
