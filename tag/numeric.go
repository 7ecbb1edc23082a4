package tag

// Numeric is implemented by the scalar tags. Every view is always defined;
// narrowing follows Go conversion rules, so AsByte on Int(300) yields 44.
type Numeric interface {
	Tag
	AsByte() int8
	AsShort() int16
	AsInt() int32
	AsLong() int64
	AsFloat() float32
	AsDouble() float64
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
)

// Bool is a boolean tag. NBT has no boolean type, so a Bool is written as a
// byte in binary form; in JSON it is a native boolean.
type Bool bool

func (Byte) Kind() Kind   { return KindByte }
func (Short) Kind() Kind  { return KindShort }
func (Int) Kind() Kind    { return KindInt }
func (Long) Kind() Kind   { return KindLong }
func (Float) Kind() Kind  { return KindFloat }
func (Double) Kind() Kind { return KindDouble }
func (Bool) Kind() Kind   { return KindBool }

func (Byte) isTag()   {}
func (Short) isTag()  {}
func (Int) isTag()    {}
func (Long) isTag()   {}
func (Float) isTag()  {}
func (Double) isTag() {}
func (Bool) isTag()   {}

func (b Byte) AsByte() int8      { return int8(b) }
func (b Byte) AsShort() int16    { return int16(b) }
func (b Byte) AsInt() int32      { return int32(b) }
func (b Byte) AsLong() int64     { return int64(b) }
func (b Byte) AsFloat() float32  { return float32(b) }
func (b Byte) AsDouble() float64 { return float64(b) }

func (s Short) AsByte() int8      { return int8(s) }
func (s Short) AsShort() int16    { return int16(s) }
func (s Short) AsInt() int32      { return int32(s) }
func (s Short) AsLong() int64     { return int64(s) }
func (s Short) AsFloat() float32  { return float32(s) }
func (s Short) AsDouble() float64 { return float64(s) }

func (i Int) AsByte() int8      { return int8(i) }
func (i Int) AsShort() int16    { return int16(i) }
func (i Int) AsInt() int32      { return int32(i) }
func (i Int) AsLong() int64     { return int64(i) }
func (i Int) AsFloat() float32  { return float32(i) }
func (i Int) AsDouble() float64 { return float64(i) }

func (l Long) AsByte() int8      { return int8(l) }
func (l Long) AsShort() int16    { return int16(l) }
func (l Long) AsInt() int32      { return int32(l) }
func (l Long) AsLong() int64     { return int64(l) }
func (l Long) AsFloat() float32  { return float32(l) }
func (l Long) AsDouble() float64 { return float64(l) }

// Floating point views truncate toward zero.
func (f Float) AsByte() int8      { return int8(int64(f)) }
func (f Float) AsShort() int16    { return int16(int64(f)) }
func (f Float) AsInt() int32      { return int32(int64(f)) }
func (f Float) AsLong() int64     { return int64(f) }
func (f Float) AsFloat() float32  { return float32(f) }
func (f Float) AsDouble() float64 { return float64(f) }

func (d Double) AsByte() int8      { return int8(int64(d)) }
func (d Double) AsShort() int16    { return int16(int64(d)) }
func (d Double) AsInt() int32      { return int32(int64(d)) }
func (d Double) AsLong() int64     { return int64(d) }
func (d Double) AsFloat() float32  { return float32(d) }
func (d Double) AsDouble() float64 { return float64(d) }

func (b Bool) AsByte() int8      { return int8(b.bit()) }
func (b Bool) AsShort() int16    { return int16(b.bit()) }
func (b Bool) AsInt() int32      { return int32(b.bit()) }
func (b Bool) AsLong() int64     { return int64(b.bit()) }
func (b Bool) AsFloat() float32  { return float32(b.bit()) }
func (b Bool) AsDouble() float64 { return float64(b.bit()) }

func (b Bool) bit() uint8 {
	if b {
		return 1
	}
	return 0
}
