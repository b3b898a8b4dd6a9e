package cmd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  uint64
	}{
		{"decimal", "42", 8, 42},
		{"hex literal", "0xff", 8, 255},
		{"binary literal", "0b101", 8, 5},
		{"octal literal", "0o17", 8, 15},
		{"negative i8", "-1", 8, 0xff},
		{"negative i16", "-2", 16, 0xfffe},
		{"negative i32", "-1", 32, 0xffffffff},
		{"negative i64", "-1", 64, math.MaxUint64},
		{"max u64", "18446744073709551615", 64, math.MaxUint64},
		{"zero", "0", 32, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseScalar(tt.input, tt.width, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseScalarFloat(t *testing.T) {
	got, err := parseScalar("1.0", 32, true)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3f800000), got)

	got, err = parseScalar("-2.5", 64, true)
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(-2.5), got)
}

func TestParseScalarErrors(t *testing.T) {
	cases := []struct {
		input string
		width int
		float bool
	}{
		{"256", 8, false},      // out of range for width
		{"0x10000", 16, false}, // out of range for width
		{"-129", 8, false},     // below signed range
		{"nope", 32, false},
		{"1.5", 32, false}, // float without -f
		{"42", 12, false},  // bad width
		{"nope", 64, true},
		{"1.0", 8, true}, // float needs 32/64
	}
	for _, c := range cases {
		_, err := parseScalar(c.input, c.width, c.float)
		assert.Error(t, err, "input %q width %d float %v", c.input, c.width, c.float)
	}
}

func TestParseByteList(t *testing.T) {
	got, err := parseByteList([]string{"255", "0x10", "0"})
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 16, 0}, got)

	got, err = parseByteList(nil)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = parseByteList([]string{"256"})
	assert.Error(t, err)
	_, err = parseByteList([]string{"-1"})
	assert.Error(t, err)
}
