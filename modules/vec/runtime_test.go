package vecmod

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mosslang/mossx/modules"
)

func TestModuleRegistration(t *testing.T) {
	m, ok := modules.Get("vec")
	require.True(t, ok, "vec module should be registered")
	assert.Equal(t, "vec", m.Name)
	assert.Equal(t, "Vec", m.Type)

	funcNames := make(map[string]bool)
	for _, f := range m.Funcs {
		funcNames[f.Name] = true
	}
	for _, name := range []string{"with_x", "with_y", "with_z", "with_w", "axis"} {
		assert.True(t, funcNames[name], "missing function: %s", name)
	}
}

func newVec() *Vec { return &Vec{} }

func vec3(x, y, z interface{}) []interface{} { return []interface{}{x, y, z} }

func TestWithComponents(t *testing.T) {
	v := newVec()

	got := v.WithX(vec3(1, 2, 3), 9)
	assert.Equal(t, []interface{}{9, 2, 3}, got)

	got = v.WithY(vec3(1, 2, 3), 9)
	assert.Equal(t, []interface{}{1, 9, 3}, got)

	got = v.WithZ(vec3(1.5, 2.5, 3.5), 0.0)
	assert.Equal(t, []interface{}{1.5, 2.5, 0.0}, got)

	quat := []interface{}{0.0, 0.0, 0.0, 1.0}
	got = v.WithW(quat, 0.5)
	assert.Equal(t, []interface{}{0.0, 0.0, 0.0, 0.5}, got)
}

func TestWithDoesNotMutate(t *testing.T) {
	v := newVec()
	orig := vec3(1, 2, 3)
	v.WithX(orig, 9)
	assert.Equal(t, vec3(1, 2, 3), orig, "input vector must not change")
}

func TestAxis(t *testing.T) {
	v := newVec()
	assert.Equal(t, 2, v.Axis(vec3(1, 2, 3), 1))
	assert.Equal(t, 3.5, v.Axis(vec3(1.5, 2.5, 3.5), 2))
}

func TestPanics(t *testing.T) {
	v := newVec()

	assert.PanicsWithValue(t, "vec.with_w: vector has only 2 component(s)", func() {
		v.WithW([]interface{}{1, 2}, 9)
	})
	assert.PanicsWithValue(t, "vec.with_x: component must be a number", func() {
		v.WithX(vec3(1, 2, 3), "nine")
	})
	assert.PanicsWithValue(t, "vec.with_x: expected a vector array", func() {
		v.WithX("not a vector", 9)
	})
	assert.PanicsWithValue(t, "vec.axis: index 3 out of range for 3 component(s)", func() {
		v.Axis(vec3(1, 2, 3), 3)
	})
	assert.PanicsWithValue(t, "vec.axis: index -1 out of range for 3 component(s)", func() {
		v.Axis(vec3(1, 2, 3), -1)
	})
}
