package tag

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/oriumgames/kit/jsonval"
)

// Element suffixes marking the array type of a JSON array entry.
const (
	SuffixByte = "-B"
	SuffixInt  = "-I"
	SuffixLong = "-L"
)

// ErrMalformedSuffix is matched by errors.Is for every *SuffixError.
var ErrMalformedSuffix = errors.New("tag: malformed suffixed array element")

// SuffixError reports an array element that ends in a type suffix but whose
// number in front of the suffix does not parse.
type SuffixError struct {
	// Path is the dotted key path of the array.
	Path  string
	Index int
	Value string
	Err   error
}

func (e *SuffixError) Error() string {
	return fmt.Sprintf("tag: %s[%d]: malformed suffixed element %q: %v", e.Path, e.Index, e.Value, e.Err)
}

func (e *SuffixError) Unwrap() []error {
	return []error{ErrMalformedSuffix, e.Err}
}

// EncodeJSON converts c to a JSON object, key by key in insertion order:
//
//	Bool                          -> boolean
//	other Numeric                 -> number (the AsInt view)
//	ByteArray/IntArray/LongArray  -> array of "<n>-B" / "<n>-I" / "<n>-L"
//	List                          -> array of strings, '"' removed
//	*Compound                     -> object
//	String                        -> string
//
// Note that Long, Float and Double values are narrowed to their int view.
func EncodeJSON(c *Compound) *jsonval.Object {
	obj := jsonval.NewObject()
	for key, t := range c.All() {
		obj.Set(key, encodeTag(t))
	}
	return obj
}

func encodeTag(t Tag) jsonval.Value {
	switch t := t.(type) {
	case Bool:
		return jsonval.Bool(t)
	case Numeric:
		return jsonval.Int(int64(t.AsInt()))
	case ByteArray:
		arr := make(jsonval.Array, len(t))
		for i, v := range t {
			arr[i] = jsonval.String(strconv.Itoa(int(v)) + SuffixByte)
		}
		return arr
	case IntArray:
		arr := make(jsonval.Array, len(t))
		for i, v := range t {
			arr[i] = jsonval.String(strconv.Itoa(int(v)) + SuffixInt)
		}
		return arr
	case LongArray:
		arr := make(jsonval.Array, len(t))
		for i, v := range t {
			arr[i] = jsonval.String(strconv.FormatInt(v, 10) + SuffixLong)
		}
		return arr
	case List:
		arr := make(jsonval.Array, len(t))
		for i, e := range t {
			arr[i] = jsonval.String(strings.ReplaceAll(listText(e), `"`, ""))
		}
		return arr
	case *Compound:
		return EncodeJSON(t)
	case String:
		return jsonval.String(t)
	}
	panic(fmt.Sprintf("tag: unknown tag %T", t))
}

// listText is the text a list element is written as.
func listText(t Tag) string {
	if s, ok := t.(String); ok {
		return string(s)
	}
	return t.String()
}

// DecodeJSON converts a JSON object to a Compound:
//
//	number  -> Int (integer part, saturated to the int32 range)
//	boolean -> Bool
//	string  -> String
//	object  -> *Compound
//	array   -> ByteArray, IntArray, LongArray or List (see below)
//	null    -> skipped
//
// Array entries are sorted by suffix: "-L" entries into a long bucket, "-B"
// into a byte bucket, "-I" and bare numbers into an int bucket, and other
// strings into a plain list. One bucket is kept, the first non-empty of
// byte, int, long, and the plain list otherwise. An array mixing suffixes
// therefore keeps only the winning bucket and drops the rest; data written
// by earlier versions relies on this order, so it is kept as is.
//
// An entry that carries a suffix but no valid number fails with a
// *SuffixError and no compound is returned.
func DecodeJSON(obj *jsonval.Object) (*Compound, error) {
	return decodeObject(obj, "")
}

func decodeObject(obj *jsonval.Object, path string) (*Compound, error) {
	c := NewCompound()
	for key, v := range obj.All() {
		t, err := decodeValue(v, joinPath(path, key))
		if err != nil {
			return nil, err
		}
		if t != nil {
			c.Set(key, t)
		}
	}
	return c, nil
}

func decodeValue(v jsonval.Value, path string) (Tag, error) {
	switch v := v.(type) {
	case jsonval.Number:
		n, err := numberInt(v)
		if err != nil {
			return nil, fmt.Errorf("tag: %s: %w", path, err)
		}
		return Int(n), nil
	case jsonval.Bool:
		return Bool(v), nil
	case jsonval.String:
		return String(v), nil
	case jsonval.Array:
		return decodeArray(v, path)
	case *jsonval.Object:
		sub, err := decodeObject(v, path)
		if err != nil {
			return nil, err
		}
		return sub, nil
	}
	return nil, nil
}

func decodeArray(arr jsonval.Array, path string) (Tag, error) {
	var (
		bytes []int8
		ints  []int32
		longs []int64
		list  = List{}
	)
	for i, e := range arr {
		switch e := e.(type) {
		case jsonval.String:
			s := string(e)
			switch {
			case strings.HasSuffix(s, SuffixLong):
				n, err := parseSuffixed(s, SuffixLong, 64)
				if err != nil {
					return nil, &SuffixError{Path: path, Index: i, Value: s, Err: err}
				}
				longs = append(longs, n)
			case strings.HasSuffix(s, SuffixByte):
				n, err := parseSuffixed(s, SuffixByte, 32)
				if err != nil {
					return nil, &SuffixError{Path: path, Index: i, Value: s, Err: err}
				}
				bytes = append(bytes, int8(n))
			case strings.HasSuffix(s, SuffixInt):
				n, err := parseSuffixed(s, SuffixInt, 32)
				if err != nil {
					return nil, &SuffixError{Path: path, Index: i, Value: s, Err: err}
				}
				ints = append(ints, int32(n))
			default:
				list = append(list, String(s))
			}
		case jsonval.Number:
			n, err := numberInt(e)
			if err != nil {
				return nil, fmt.Errorf("tag: %s[%d]: %w", path, i, err)
			}
			ints = append(ints, n)
		}
	}

	switch {
	case len(bytes) > 0:
		return ByteArray(bytes), nil
	case len(ints) > 0:
		return IntArray(ints), nil
	case len(longs) > 0:
		return LongArray(longs), nil
	}
	return list, nil
}

// parseSuffixed parses the number in front of suffix. Byte entries are parsed
// as ints and wrapped, so "200-B" reads as -56.
func parseSuffixed(s, suffix string, bitSize int) (int64, error) {
	return strconv.ParseInt(strings.TrimSuffix(s, suffix), 10, bitSize)
}

func numberInt(n jsonval.Number) (int32, error) {
	i, err := n.Int64()
	if err != nil {
		return 0, err
	}
	switch {
	case i > math.MaxInt32:
		return math.MaxInt32, nil
	case i < math.MinInt32:
		return math.MinInt32, nil
	}
	return int32(i), nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

// MarshalJSON encodes c with EncodeJSON and writes it as compact JSON, or
// indented JSON when indent is not empty.
func MarshalJSON(c *Compound, indent string) ([]byte, error) {
	if indent == "" {
		return jsonval.Marshal(EncodeJSON(c))
	}
	return jsonval.MarshalIndent(EncodeJSON(c), indent)
}

// UnmarshalJSON parses a JSON object and decodes it with DecodeJSON.
func UnmarshalJSON(data []byte) (*Compound, error) {
	obj, err := jsonval.ParseObject(data)
	if err != nil {
		return nil, err
	}
	return DecodeJSON(obj)
}
