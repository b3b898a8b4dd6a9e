package convmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosslang/mossx/modules"
)

func TestModuleRegistration(t *testing.T) {
	m, ok := modules.Get("conv")
	require.True(t, ok, "conv module should be registered")
	assert.Equal(t, "conv", m.Name)
	assert.Equal(t, "Conv", m.Type)

	funcNames := make(map[string]bool)
	for _, f := range m.Funcs {
		funcNames[f.Name] = true
	}
	for _, name := range []string{"to_i", "to_f", "to_b", "to_s", "clamp_i8", "clamp_i16", "clamp_i32", "digit"} {
		assert.True(t, funcNames[name], "missing function: %s", name)
	}
}

func newConv() *Conv { return &Conv{} }

func TestToI(t *testing.T) {
	c := newConv()
	assert.Equal(t, 42, c.ToI(42, -1))
	assert.Equal(t, 3, c.ToI(3.9, -1))
	assert.Equal(t, 17, c.ToI("17", -1))
	assert.Equal(t, 17, c.ToI(" 17 ", -1))
	assert.Equal(t, 1, c.ToI(true, -1))
	assert.Equal(t, 0, c.ToI(false, -1))
	assert.Equal(t, -1, c.ToI("not a number", -1))
	assert.Equal(t, -1, c.ToI(nil, -1))
	assert.Equal(t, -1, c.ToI([]interface{}{1}, -1))
}

func TestToF(t *testing.T) {
	c := newConv()
	assert.Equal(t, 2.5, c.ToF(2.5, 0.0))
	assert.Equal(t, 42.0, c.ToF(42, 0.0))
	assert.Equal(t, 0.5, c.ToF("0.5", 0.0))
	assert.Equal(t, 1.0, c.ToF(true, 0.0))
	assert.Equal(t, -1.0, c.ToF("oops", -1.0))
	assert.Equal(t, -1.0, c.ToF(nil, -1.0))
}

func TestToB(t *testing.T) {
	c := newConv()
	assert.Equal(t, true, c.ToB(true, false))
	assert.Equal(t, true, c.ToB(1, false))
	assert.Equal(t, false, c.ToB(0, true))
	assert.Equal(t, true, c.ToB(0.5, false))
	assert.Equal(t, true, c.ToB("true", false))
	assert.Equal(t, false, c.ToB("0", true))
	assert.Equal(t, true, c.ToB("yes", true))
	assert.Equal(t, false, c.ToB(nil, false))
}

func TestToS(t *testing.T) {
	c := newConv()
	assert.Equal(t, "42", c.ToS(42))
	assert.Equal(t, "2.5", c.ToS(2.5))
	assert.Equal(t, "true", c.ToS(true))
	assert.Equal(t, "hello", c.ToS("hello"))
	assert.Equal(t, "", c.ToS(nil))
}

func TestClamp(t *testing.T) {
	c := newConv()
	assert.Equal(t, 127, c.ClampI8(300))
	assert.Equal(t, -128, c.ClampI8(-300))
	assert.Equal(t, 42, c.ClampI8(42))
	assert.Equal(t, 32767, c.ClampI16(1<<20))
	assert.Equal(t, -32768, c.ClampI16(-(1 << 20)))
	assert.Equal(t, 2147483647, c.ClampI32(1<<40))
	assert.Equal(t, -2147483648, c.ClampI32(-(1 << 40)))
	assert.Equal(t, 0, c.ClampI32(0))
}

func TestDigit(t *testing.T) {
	c := newConv()
	assert.Equal(t, 0, c.Digit("0", -1))
	assert.Equal(t, 9, c.Digit("9", -1))
	assert.Equal(t, -1, c.Digit("a", -1))
	assert.Equal(t, -1, c.Digit("12", -1))
	assert.Equal(t, -1, c.Digit("", -1))
	assert.Equal(t, -1, c.Digit(7, -1))
}
