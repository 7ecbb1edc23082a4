package mcver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := map[string]Version{
		"v1_8_R3":  V1_8_R3,
		"1_13_R1":  V1_13_R1,
		"1.19.4":   V1_19_4,
		"V1_17":    V1_17,
		" v1_20 ":  V1_20,
		"v1_16_r3": V1_16_R3,
	}
	for in, want := range tests {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := Parse("v2_0")
	assert.Error(t, err)
}

func TestOrdering(t *testing.T) {
	assert.True(t, V1_19_4.AtLeast(V1_19))
	assert.False(t, V1_13_R1.AtLeast(V1_14_R1))
	assert.True(t, V1_12_R1.AtMost(V1_12_R1))
	assert.Equal(t, V1_20, Latest())
}

func TestStringAndAll(t *testing.T) {
	assert.Equal(t, "v1_13_R1", V1_13_R1.String())
	assert.Equal(t, "unknown", Version(99).String())
	assert.False(t, Unknown.Known())

	all := All()
	assert.Equal(t, V1_8_R3, all[0])
	assert.Equal(t, Latest(), all[len(all)-1])
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i].AtLeast(all[i-1]))
	}
}
