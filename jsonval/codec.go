package jsonval

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
)

// ErrNotObject is returned by ParseObject when the document is valid JSON
// but its top-level value is not an object.
var ErrNotObject = errors.New("jsonval: top-level value is not an object")

// Parse parses a single JSON document. Duplicate object member names are
// accepted and the last one wins.
func Parse(data []byte) (Value, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a single JSON document from r.
func Decode(r io.Reader) (Value, error) {
	dec := jsontext.NewDecoder(r, jsontext.AllowDuplicateNames(true))
	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("jsonval: %w", err)
	}
	if _, err := dec.ReadToken(); err != io.EOF {
		if err == nil {
			return nil, errors.New("jsonval: unexpected data after top-level value")
		}
		return nil, fmt.Errorf("jsonval: %w", err)
	}
	return v, nil
}

// ParseObject parses a JSON document whose top-level value must be an object.
func ParseObject(data []byte) (*Object, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	obj, ok := v.(*Object)
	if !ok {
		return nil, ErrNotObject
	}
	return obj, nil
}

func decodeValue(dec *jsontext.Decoder) (Value, error) {
	tok, err := dec.ReadToken()
	if err != nil {
		return nil, err
	}
	switch tok.Kind() {
	case 'n':
		return Null{}, nil
	case 'f', 't':
		return Bool(tok.Bool()), nil
	case '"':
		return String(tok.String()), nil
	case '0':
		return Number(tok.String()), nil
	case '[':
		arr := Array{}
		for dec.PeekKind() != ']' {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return arr, nil
	case '{':
		obj := NewObject()
		for dec.PeekKind() != '}' {
			name, err := dec.ReadToken()
			if err != nil {
				return nil, err
			}
			// The token is only valid until the next decoder call.
			key := name.String()
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.Set(key, v)
		}
		if _, err := dec.ReadToken(); err != nil {
			return nil, err
		}
		return obj, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// Marshal returns the compact encoding of v.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, ""); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndent returns the multi-line encoding of v, one level of nesting
// per indent.
func MarshalIndent(v Value, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, v, indent); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Encode writes v to w. An empty indent produces compact output.
// Characters such as '&' and '<' are written as-is.
func Encode(w io.Writer, v Value, indent string) error {
	var opts []jsontext.Options
	if indent != "" {
		opts = append(opts, jsontext.Multiline(true), jsontext.WithIndent(indent))
	}
	enc := jsontext.NewEncoder(w, opts...)
	if err := encodeValue(enc, v); err != nil {
		return fmt.Errorf("jsonval: %w", err)
	}
	return nil
}

func encodeValue(enc *jsontext.Encoder, v Value) error {
	switch v := v.(type) {
	case nil, Null:
		return enc.WriteToken(jsontext.Null)
	case Bool:
		return enc.WriteToken(jsontext.Bool(bool(v)))
	case Number:
		return enc.WriteValue(jsontext.Value(v))
	case String:
		return enc.WriteToken(jsontext.String(string(v)))
	case Array:
		if err := enc.WriteToken(jsontext.BeginArray); err != nil {
			return err
		}
		for _, e := range v {
			if err := encodeValue(enc, e); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndArray)
	case *Object:
		if err := enc.WriteToken(jsontext.BeginObject); err != nil {
			return err
		}
		for k, mv := range v.All() {
			if err := enc.WriteToken(jsontext.String(k)); err != nil {
				return err
			}
			if err := encodeValue(enc, mv); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.EndObject)
	}
	return fmt.Errorf("unsupported value %T", v)
}
