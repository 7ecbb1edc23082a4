package tag

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oriumgames/kit/jsonval"
)

var compareCompounds = cmp.Comparer(func(a, b *Compound) bool { return Equal(a, b) })

func mustJSON(t *testing.T, c *Compound) string {
	t.Helper()
	data, err := MarshalJSON(c, "")
	require.NoError(t, err)
	return string(data)
}

func mustDecode(t *testing.T, s string) *Compound {
	t.Helper()
	c, err := UnmarshalJSON([]byte(s))
	require.NoError(t, err)
	return c
}

func TestRoundTripPlainTree(t *testing.T) {
	inner := NewCompound()
	inner.SetString("world", "lobby")
	inner.SetInt("x", -12)

	c := NewCompound()
	c.SetString("name", "Steve")
	c.SetInt("level", 30)
	c.Set("spawn", inner)
	c.Set("lore", List{String("first line"), String("second")})
	c.SetBool("flying", false)

	got, err := DecodeJSON(EncodeJSON(c))
	require.NoError(t, err)

	if diff := cmp.Diff(c, got, compareCompounds); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, c.Keys(), got.Keys())
	assert.Equal(t, inner.Keys(), got.GetCompound("spawn").Keys())
}

func TestSuffixEncoding(t *testing.T) {
	tests := []struct {
		tag  Tag
		want string
	}{
		{IntArray{7}, `{"v":["7-I"]}`},
		{LongArray{7}, `{"v":["7-L"]}`},
		{ByteArray{7}, `{"v":["7-B"]}`},
		{ByteArray{-1, 127}, `{"v":["-1-B","127-B"]}`},
		{LongArray{-9000000000}, `{"v":["-9000000000-L"]}`},
		{List{String("a"), String(`say "hi"`)}, `{"v":["a","say hi"]}`},
		{List{Int(3), Byte(1)}, `{"v":["3","1b"]}`},
	}
	for _, tt := range tests {
		c := NewCompound()
		c.Set("v", tt.tag)
		assert.Equal(t, tt.want, mustJSON(t, c), tt.tag.String())
	}
}

func TestArrayFidelity(t *testing.T) {
	for _, arr := range []Tag{ByteArray{1, 2, 3}, IntArray{1, 2, 3}, LongArray{1, 2, 3}} {
		c := NewCompound()
		c.Set("data", arr)

		got, err := DecodeJSON(EncodeJSON(c))
		require.NoError(t, err)

		back, ok := got.Get("data")
		require.True(t, ok)
		assert.Equal(t, arr.Kind(), back.Kind())
		assert.True(t, Equal(arr, back), "%s != %s", arr, back)
	}
}

func TestBooleanFidelity(t *testing.T) {
	c := NewCompound()
	c.SetBool("flag", true)
	assert.Equal(t, `{"flag":true}`, mustJSON(t, c))

	got := mustDecode(t, `{"flag": true}`)
	assert.True(t, got.IsBool("flag"))
	assert.True(t, got.GetBool("flag"))
	assert.Equal(t, int32(1), got.GetInt("flag"))
}

func TestNestedObjectRoundTrip(t *testing.T) {
	got := mustDecode(t, `{"a": {"b": 1}}`)

	a := got.GetCompound("a")
	require.NotNil(t, a)
	assert.Equal(t, Int(1), a.MustGet("b"))

	assert.Equal(t, `{"a":{"b":1}}`, mustJSON(t, got))
}

// Mixed suffixes keep only the highest priority bucket: byte, int, long,
// then plain strings. The other entries are dropped.
func TestMixedSuffixesCollapse(t *testing.T) {
	got := mustDecode(t, `{"v": ["1-B", "2-I"]}`)
	assert.Equal(t, ByteArray{1}, got.MustGet("v"))

	got = mustDecode(t, `{"v": ["5-L", "6-I", "plain"]}`)
	assert.Equal(t, IntArray{6}, got.MustGet("v"))

	got = mustDecode(t, `{"v": ["plain", "5-L"]}`)
	assert.Equal(t, LongArray{5}, got.MustGet("v"))

	got = mustDecode(t, `{"v": ["3-I", 4, "9-L"]}`)
	assert.Equal(t, IntArray{3, 4}, got.MustGet("v"))
}

func TestEmptyArray(t *testing.T) {
	got := mustDecode(t, `{"v": []}`)
	v := got.MustGet("v")
	assert.Equal(t, KindList, v.Kind())
	assert.Empty(t, v)

	assert.Equal(t, `{"v":[]}`, mustJSON(t, got))
}

func TestDecodeScalars(t *testing.T) {
	got := mustDecode(t, `{"n": 12, "f": 2.75, "big": 1e12, "s": "text", "nil": null, "neg": -3}`)

	assert.Equal(t, []string{"n", "f", "big", "s", "neg"}, got.Keys())
	assert.Equal(t, Int(12), got.MustGet("n"))
	assert.Equal(t, Int(2), got.MustGet("f"))
	assert.Equal(t, Int(2147483647), got.MustGet("big"))
	assert.Equal(t, String("text"), got.MustGet("s"))
	assert.Equal(t, Int(-3), got.MustGet("neg"))
	assert.False(t, got.Has("nil"))
}

func TestEncodeNarrowsNumbersToInt(t *testing.T) {
	c := NewCompound()
	c.SetDouble("d", 2.9)
	c.SetLong("l", 1<<33+5)
	c.SetByte("b", -4)
	assert.Equal(t, `{"d":2,"l":5,"b":-4}`, mustJSON(t, c))
}

func TestMalformedSuffix(t *testing.T) {
	c, err := UnmarshalJSON([]byte(`{"first": 1, "outer": {"v": ["1-I", "x-I"]}}`))
	require.Error(t, err)
	assert.Nil(t, c)
	assert.True(t, errors.Is(err, ErrMalformedSuffix))
	assert.True(t, errors.Is(err, strconv.ErrSyntax))

	var se *SuffixError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "outer.v", se.Path)
	assert.Equal(t, 1, se.Index)
	assert.Equal(t, "x-I", se.Value)

	_, err = UnmarshalJSON([]byte(`{"v": ["99999999999-I"]}`))
	assert.True(t, errors.Is(err, ErrMalformedSuffix))

	for _, src := range []string{
		`{"v": ["1-B", "x-B"]}`,
		`{"v": ["9999999999999-B"]}`,
		`{"v": ["1-L", "1.5-L"]}`,
		`{"v": ["99999999999999999999-L"]}`,
	} {
		c, err := UnmarshalJSON([]byte(src))
		assert.ErrorIs(t, err, ErrMalformedSuffix, src)
		assert.Nil(t, c, src)

		obj, perr := jsonval.ParseObject([]byte(src))
		require.NoError(t, perr)
		decoded, err := DecodeJSON(obj)
		assert.ErrorIs(t, err, ErrMalformedSuffix, src)
		assert.Nil(t, decoded, src)
	}
}

func TestByteSuffixWraps(t *testing.T) {
	got := mustDecode(t, `{"v": ["200-B"]}`)
	assert.Equal(t, ByteArray{-56}, got.MustGet("v"))
}

func TestEncodeJSONObjectShape(t *testing.T) {
	c := NewCompound()
	c.SetString("id", "minecraft:stone")
	c.SetIntArray("pos", []int32{1, 2})

	obj := EncodeJSON(c)
	want := jsonval.NewObject()
	want.Set("id", jsonval.String("minecraft:stone"))
	want.Set("pos", jsonval.Array{jsonval.String("1-I"), jsonval.String("2-I")})
	assert.True(t, jsonval.Equal(want, obj))
	assert.Equal(t, []string{"id", "pos"}, obj.Keys())
}

func TestMarshalJSONIndent(t *testing.T) {
	c := NewCompound()
	c.SetInt("a", 1)
	data, err := MarshalJSON(c, "  ")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1\n}", string(data))
}
