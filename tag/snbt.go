package tag

import (
	"strconv"
	"strings"
)

func (b Byte) String() string   { return strconv.Itoa(int(b)) + "b" }
func (s Short) String() string  { return strconv.Itoa(int(s)) + "s" }
func (i Int) String() string    { return strconv.Itoa(int(i)) }
func (l Long) String() string   { return strconv.FormatInt(int64(l), 10) + "L" }
func (f Float) String() string  { return strconv.FormatFloat(float64(f), 'g', -1, 32) + "f" }
func (d Double) String() string { return strconv.FormatFloat(float64(d), 'g', -1, 64) + "d" }

func (b Bool) String() string {
	if b {
		return "1b"
	}
	return "0b"
}

func (s String) String() string { return quote(string(s)) }

func (l List) String() string      { return snbt(l) }
func (a ByteArray) String() string { return snbt(a) }
func (a IntArray) String() string  { return snbt(a) }
func (a LongArray) String() string { return snbt(a) }
func (c *Compound) String() string { return snbt(c) }

func snbt(t Tag) string {
	var sb strings.Builder
	writeSNBT(&sb, t)
	return sb.String()
}

func writeSNBT(sb *strings.Builder, t Tag) {
	switch t := t.(type) {
	case *Compound:
		sb.WriteByte('{')
		i := 0
		for k, v := range t.All() {
			if i > 0 {
				sb.WriteByte(',')
			}
			i++
			if bareKey(k) {
				sb.WriteString(k)
			} else {
				sb.WriteString(quote(k))
			}
			sb.WriteByte(':')
			writeSNBT(sb, v)
		}
		sb.WriteByte('}')
	case List:
		sb.WriteByte('[')
		for i, e := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeSNBT(sb, e)
		}
		sb.WriteByte(']')
	case ByteArray:
		sb.WriteString("[B;")
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(Byte(v).String())
		}
		sb.WriteByte(']')
	case IntArray:
		sb.WriteString("[I;")
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(Int(v).String())
		}
		sb.WriteByte(']')
	case LongArray:
		sb.WriteString("[L;")
		for i, v := range t {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(Long(v).String())
		}
		sb.WriteByte(']')
	default:
		sb.WriteString(t.String())
	}
}

// bareKey reports whether k can be written without quotes.
func bareKey(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.' || r == '+':
		default:
			return false
		}
	}
	return true
}

func quote(s string) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')
	for _, r := range s {
		if r == '"' || r == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('"')
	return sb.String()
}
