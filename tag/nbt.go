package tag

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strconv"

	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"
)

// FromNBT converts a decoded NBT compound, as produced by gophertunnel's nbt
// package or Dragonfly, to a Compound. Keys are sorted since maps carry no
// order.
//
// Arrays ([N]byte, [N]int32, [N]int64 and the matching slices) become
// ByteArray, IntArray and LongArray; []any becomes a List.
func FromNBT(m map[string]any) (*Compound, error) {
	return fromMap(m, "")
}

func fromMap(m map[string]any, path string) (*Compound, error) {
	c := NewCompound()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		t, err := fromNative(m[k], joinPath(path, k))
		if err != nil {
			return nil, err
		}
		c.Set(k, t)
	}
	return c, nil
}

func fromNative(v any, path string) (Tag, error) {
	switch v := v.(type) {
	case Tag:
		return Clone(v), nil
	case uint8:
		return Byte(int8(v)), nil
	case int8:
		return Byte(v), nil
	case bool:
		return Bool(v), nil
	case int16:
		return Short(v), nil
	case uint16:
		return Short(int16(v)), nil
	case int32:
		return Int(v), nil
	case uint32:
		return Int(int32(v)), nil
	case int64:
		return Long(v), nil
	case uint64:
		return Long(int64(v)), nil
	case int:
		return Long(int64(v)), nil
	case float32:
		return Float(v), nil
	case float64:
		return Double(v), nil
	case string:
		return String(v), nil
	case map[string]any:
		return fromMap(v, path)
	case []any:
		l := make(List, 0, len(v))
		for i, e := range v {
			t, err := fromNative(e, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			l = append(l, t)
		}
		return l, nil
	case []string:
		l := make(List, len(v))
		for i, s := range v {
			l[i] = String(s)
		}
		return l, nil
	case []map[string]any:
		l := make(List, 0, len(v))
		for i, e := range v {
			sub, err := fromMap(e, path+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}
			l = append(l, sub)
		}
		return l, nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Array || rv.Kind() == reflect.Slice {
		switch rv.Type().Elem().Kind() {
		case reflect.Uint8:
			a := make(ByteArray, rv.Len())
			for i := range a {
				a[i] = int8(rv.Index(i).Uint())
			}
			return a, nil
		case reflect.Int8:
			a := make(ByteArray, rv.Len())
			for i := range a {
				a[i] = int8(rv.Index(i).Int())
			}
			return a, nil
		case reflect.Int32:
			a := make(IntArray, rv.Len())
			for i := range a {
				a[i] = int32(rv.Index(i).Int())
			}
			return a, nil
		case reflect.Int64:
			a := make(LongArray, rv.Len())
			for i := range a {
				a[i] = rv.Index(i).Int()
			}
			return a, nil
		}
		if rv.Kind() == reflect.Slice {
			l := make(List, 0, rv.Len())
			for i := range rv.Len() {
				t, err := fromNative(rv.Index(i).Interface(), path+"["+strconv.Itoa(i)+"]")
				if err != nil {
					return nil, err
				}
				l = append(l, t)
			}
			return l, nil
		}
	}
	return nil, fmt.Errorf("tag: %s: unsupported NBT value of type %T", path, v)
}

// ToNBT converts c to the map form gophertunnel's nbt package encodes. Bools
// become bytes and arrays become Go arrays, which nbt writes as array tags.
func ToNBT(c *Compound) map[string]any {
	m := make(map[string]any, c.Len())
	for k, t := range c.All() {
		m[k] = toNative(t)
	}
	return m
}

func toNative(t Tag) any {
	switch t := t.(type) {
	case Byte:
		return uint8(t)
	case Bool:
		return uint8(t.AsByte())
	case Short:
		return int16(t)
	case Int:
		return int32(t)
	case Long:
		return int64(t)
	case Float:
		return float32(t)
	case Double:
		return float64(t)
	case String:
		return string(t)
	case ByteArray:
		arr := reflect.New(reflect.ArrayOf(len(t), reflect.TypeFor[uint8]())).Elem()
		for i, v := range t {
			arr.Index(i).SetUint(uint64(uint8(v)))
		}
		return arr.Interface()
	case IntArray:
		arr := reflect.New(reflect.ArrayOf(len(t), reflect.TypeFor[int32]())).Elem()
		for i, v := range t {
			arr.Index(i).SetInt(int64(v))
		}
		return arr.Interface()
	case LongArray:
		arr := reflect.New(reflect.ArrayOf(len(t), reflect.TypeFor[int64]())).Elem()
		for i, v := range t {
			arr.Index(i).SetInt(v)
		}
		return arr.Interface()
	case List:
		l := make([]any, len(t))
		for i, e := range t {
			l[i] = toNative(e)
		}
		return l
	case *Compound:
		return ToNBT(t)
	}
	panic(fmt.Sprintf("tag: unknown tag %T", t))
}

// MarshalNBT writes c as a binary NBT compound using enc, for example
// nbt.NetworkLittleEndian for the Bedrock protocol or nbt.BigEndian for Java
// edition files.
func MarshalNBT(c *Compound, enc nbt.Encoding) ([]byte, error) {
	data, err := nbt.MarshalEncoding(ToNBT(c), enc)
	if err != nil {
		return nil, fmt.Errorf("tag: encode nbt: %w", err)
	}
	return data, nil
}

// MarshalNBTGzip is MarshalNBT followed by gzip compression.
func MarshalNBTGzip(c *Compound, enc nbt.Encoding) ([]byte, error) {
	data, err := MarshalNBT(c, enc)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("tag: gzip: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("tag: gzip: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalNBT reads a binary NBT compound encoded with enc. Gzip compressed
// input is detected and decompressed first.
func UnmarshalNBT(data []byte, enc nbt.Encoding) (*Compound, error) {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("tag: gunzip: %w", err)
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("tag: gunzip: %w", err)
		}
	}
	var m map[string]any
	if err := nbt.UnmarshalEncoding(data, &m, enc); err != nil {
		return nil, fmt.Errorf("tag: decode nbt: %w", err)
	}
	return FromNBT(m)
}

// FromValue converts any value nbt.Marshal accepts, such as a struct with
// `nbt:"name"` field tags, to a Compound.
func FromValue(v any) (*Compound, error) {
	if m, ok := v.(map[string]any); ok {
		return FromNBT(m)
	}
	data, err := nbt.MarshalEncoding(v, nbt.LittleEndian)
	if err != nil {
		return nil, fmt.Errorf("tag: encode nbt: %w", err)
	}
	return UnmarshalNBT(data, nbt.LittleEndian)
}
