package files

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/oriumgames/kit/jsonval"
)

// lookup returns the value of key converted by conv, or fallback when key has
// no value or its value cannot be converted. Conversion failures are logged.
func lookup[T any](f *File, key string, fallback T, conv func(jsonval.Value) (T, error)) T {
	v, ok := f.Value(key)
	if !ok {
		return fallback
	}
	out, err := conv(v)
	if err != nil {
		f.opts.logger.Warn("files: unusable value, using fallback",
			"file", f.Name(),
			"key", key,
			"error", err)
		return fallback
	}
	return out
}

// text returns the text of a string or number value. Getters accept numbers
// written as strings, such as "max-players": "20".
func text(v jsonval.Value) (string, error) {
	switch v := v.(type) {
	case jsonval.String:
		return string(v), nil
	case jsonval.Number:
		return string(v), nil
	}
	return "", fmt.Errorf("expected a string or number, got %s", v.Kind())
}

func integer(bits int) func(jsonval.Value) (int64, error) {
	return func(v jsonval.Value) (int64, error) {
		s, err := text(v)
		if err != nil {
			return 0, err
		}
		n, err := jsonval.Number(strings.TrimSpace(s)).Int64()
		if err != nil {
			return 0, err
		}
		if bits < 64 {
			limit := int64(1) << (bits - 1)
			if n < -limit || n >= limit {
				return 0, fmt.Errorf("%d overflows a %d-bit integer", n, bits)
			}
		}
		return n, nil
	}
}

func float(bits int) func(jsonval.Value) (float64, error) {
	return func(v jsonval.Value) (float64, error) {
		s, err := text(v)
		if err != nil {
			return 0, err
		}
		return strconv.ParseFloat(strings.TrimSpace(s), bits)
	}
}

// String returns the value of key as a string, or "".
func (f *File) String(key string) string {
	return f.StringOr(key, "")
}

// StringOr returns the value of key as a string, or fallback. Numbers and
// booleans are returned in their JSON form.
func (f *File) StringOr(key, fallback string) string {
	return lookup(f, key, fallback, func(v jsonval.Value) (string, error) {
		if b, ok := v.(jsonval.Bool); ok {
			return strconv.FormatBool(bool(b)), nil
		}
		return text(v)
	})
}

func (f *File) Int(key string) int { return f.IntOr(key, 0) }

// IntOr returns the value of key as an int, or fallback. Fractions are
// truncated; values outside the int32 range yield fallback.
func (f *File) IntOr(key string, fallback int) int {
	return int(lookup(f, key, int64(fallback), integer(32)))
}

func (f *File) Long(key string) int64 { return f.LongOr(key, 0) }

func (f *File) LongOr(key string, fallback int64) int64 {
	return lookup(f, key, fallback, integer(64))
}

func (f *File) Short(key string) int16 { return f.ShortOr(key, 0) }

func (f *File) ShortOr(key string, fallback int16) int16 {
	return int16(lookup(f, key, int64(fallback), integer(16)))
}

func (f *File) Byte(key string) int8 { return f.ByteOr(key, 0) }

func (f *File) ByteOr(key string, fallback int8) int8 {
	return int8(lookup(f, key, int64(fallback), integer(8)))
}

func (f *File) Float(key string) float32 { return f.FloatOr(key, 0) }

func (f *File) FloatOr(key string, fallback float32) float32 {
	v := lookup(f, key, float64(fallback), float(32))
	if math.IsInf(v, 0) {
		return fallback
	}
	return float32(v)
}

func (f *File) Double(key string) float64 { return f.DoubleOr(key, 0) }

func (f *File) DoubleOr(key string, fallback float64) float64 {
	return lookup(f, key, fallback, float(64))
}

func (f *File) Bool(key string) bool { return f.BoolOr(key, false) }

// BoolOr returns the value of key as a bool, or fallback. A string value is
// true only when it equals "true", ignoring case.
func (f *File) BoolOr(key string, fallback bool) bool {
	return lookup(f, key, fallback, func(v jsonval.Value) (bool, error) {
		switch v := v.(type) {
		case jsonval.Bool:
			return bool(v), nil
		case jsonval.String:
			return strings.EqualFold(strings.TrimSpace(string(v)), "true"), nil
		}
		return false, fmt.Errorf("expected a boolean, got %s", v.Kind())
	})
}

func (f *File) UUID(key string) uuid.UUID { return f.UUIDOr(key, uuid.Nil) }

// UUIDOr returns the string value of key parsed as a UUID, or fallback.
func (f *File) UUIDOr(key string, fallback uuid.UUID) uuid.UUID {
	return lookup(f, key, fallback, func(v jsonval.Value) (uuid.UUID, error) {
		s, ok := v.(jsonval.String)
		if !ok {
			return uuid.Nil, fmt.Errorf("expected a string, got %s", v.Kind())
		}
		return uuid.Parse(string(s))
	})
}
