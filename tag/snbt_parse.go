package tag

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax is returned by ParseSNBT for text that is not SNBT.
var ErrSyntax = errors.New("tag: invalid snbt")

// ParseSNBT parses the SNBT text of a tag, as returned by Tag.String.
//
// Parsing is lenient in the way the list form of EncodeJSON requires: that
// form drops double quotes, so a value that is not a number, container or
// quoted string is read as a String running up to the next ',', '}' or ']'.
// true and false parse as Bool.
func ParseSNBT(s string) (Tag, error) {
	p := &snbtParser{src: s}
	t, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return nil, p.errorf("unexpected %q after value", p.src[p.pos:])
	}
	return t, nil
}

// ParseCompound parses s as SNBT and requires the result to be a compound.
func ParseCompound(s string) (*Compound, error) {
	t, err := ParseSNBT(s)
	if err != nil {
		return nil, err
	}
	c, ok := t.(*Compound)
	if !ok {
		return nil, fmt.Errorf("%w: expected a compound, got %s", ErrSyntax, t.Kind())
	}
	return c, nil
}

type snbtParser struct {
	src string
	pos int
}

func (p *snbtParser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: offset %d: %s", ErrSyntax, p.pos, fmt.Sprintf(format, args...))
}

func (p *snbtParser) skipSpace() {
	for p.pos < len(p.src) && strings.IndexByte(" \t\r\n", p.src[p.pos]) >= 0 {
		p.pos++
	}
}

func (p *snbtParser) peek() byte {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *snbtParser) value() (Tag, error) {
	p.skipSpace()
	switch c := p.peek(); c {
	case 0:
		return nil, p.errorf("unexpected end of input")
	case '{':
		return p.compound()
	case '[':
		return p.list()
	case '"', '\'':
		s, err := p.quoted(c)
		if err != nil {
			return nil, err
		}
		return String(s), nil
	}
	return scalar(p.bare(",}]")), nil
}

// bare reads an unquoted token up to the first byte in stop.
func (p *snbtParser) bare(stop string) string {
	start := p.pos
	for p.pos < len(p.src) && strings.IndexByte(stop, p.src[p.pos]) < 0 {
		p.pos++
	}
	return strings.TrimSpace(p.src[start:p.pos])
}

func (p *snbtParser) quoted(q byte) (string, error) {
	p.pos++
	var sb strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		p.pos++
		switch c {
		case '\\':
			if p.pos >= len(p.src) {
				return "", p.errorf("unterminated escape")
			}
			sb.WriteByte(p.src[p.pos])
			p.pos++
		case q:
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", p.errorf("unterminated string")
}

func (p *snbtParser) compound() (Tag, error) {
	p.pos++
	c := NewCompound()
	p.skipSpace()
	if p.peek() == '}' {
		p.pos++
		return c, nil
	}
	for {
		p.skipSpace()
		var key string
		if q := p.peek(); q == '"' || q == '\'' {
			k, err := p.quoted(q)
			if err != nil {
				return nil, err
			}
			key = k
			p.skipSpace()
		} else {
			key = p.bare(":,}")
		}
		if p.peek() != ':' {
			return nil, p.errorf("expected ':' after key %q", key)
		}
		p.pos++
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return c, nil
		default:
			return nil, p.errorf("expected ',' or '}' in compound")
		}
	}
}

func (p *snbtParser) list() (Tag, error) {
	p.pos++
	if len(p.src)-p.pos >= 2 && p.src[p.pos+1] == ';' {
		switch p.src[p.pos] {
		case 'B', 'I', 'L':
			kind := p.src[p.pos]
			p.pos += 2
			return p.array(kind)
		}
	}

	l := List{}
	p.skipSpace()
	if p.peek() == ']' {
		p.pos++
		return l, nil
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		l = append(l, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case ']':
			p.pos++
			return l, nil
		default:
			return nil, p.errorf("expected ',' or ']' in list")
		}
	}
}

func (p *snbtParser) array(kind byte) (Tag, error) {
	var (
		bytes ByteArray
		ints  IntArray
		longs LongArray
	)
	for {
		p.skipSpace()
		if p.peek() == ']' {
			p.pos++
			break
		}
		tok := p.bare(",]")
		switch kind {
		case 'B':
			n, err := strconv.ParseInt(strings.TrimRight(tok, "bB"), 10, 8)
			if err != nil {
				return nil, p.errorf("byte array element %q", tok)
			}
			bytes = append(bytes, int8(n))
		case 'I':
			n, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, p.errorf("int array element %q", tok)
			}
			ints = append(ints, int32(n))
		case 'L':
			n, err := strconv.ParseInt(strings.TrimRight(tok, "lL"), 10, 64)
			if err != nil {
				return nil, p.errorf("long array element %q", tok)
			}
			longs = append(longs, n)
		}
		if p.peek() == ',' {
			p.pos++
		}
	}
	switch kind {
	case 'B':
		return append(ByteArray{}, bytes...), nil
	case 'I':
		return append(IntArray{}, ints...), nil
	}
	return append(LongArray{}, longs...), nil
}

// scalar interprets an unquoted token as a number, boolean or string.
func scalar(tok string) Tag {
	switch tok {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if tok == "" {
		return String("")
	}
	body := tok[:len(tok)-1]
	switch tok[len(tok)-1] {
	case 'b', 'B':
		if n, err := strconv.ParseInt(body, 10, 8); err == nil {
			return Byte(n)
		}
	case 's', 'S':
		if n, err := strconv.ParseInt(body, 10, 16); err == nil {
			return Short(n)
		}
	case 'l', 'L':
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return Long(n)
		}
	case 'f', 'F':
		if f, err := strconv.ParseFloat(body, 32); err == nil {
			return Float(f)
		}
	case 'd', 'D':
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return Double(f)
		}
	}
	if n, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return Int(n)
	}
	if strings.ContainsAny(tok, ".eE") {
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return Double(f)
		}
	}
	return String(tok)
}
