package vecmod

import (
	"fmt"
)

// --- vec module ---
//
// Vectors and quaternions are moss arrays of numbers ([x, y], [x, y, z],
// [x, y, z, w]). Builders never mutate the input: each returns a copy with
// one component replaced, so scripts can chain them safely.

type Vec struct{}

func (*Vec) WithX(vec, v interface{}) interface{} { return withAxis("with_x", vec, 0, v) }

func (*Vec) WithY(vec, v interface{}) interface{} { return withAxis("with_y", vec, 1, v) }

func (*Vec) WithZ(vec, v interface{}) interface{} { return withAxis("with_z", vec, 2, v) }

func (*Vec) WithW(vec, v interface{}) interface{} { return withAxis("with_w", vec, 3, v) }

func (*Vec) Axis(vec interface{}, idx int) interface{} {
	arr := asVec("axis", vec)
	if idx < 0 || idx >= len(arr) {
		panic(fmt.Sprintf("vec.axis: index %d out of range for %d component(s)", idx, len(arr)))
	}
	return arr[idx]
}

func withAxis(fn string, vec interface{}, idx int, v interface{}) interface{} {
	arr := asVec(fn, vec)
	if idx >= len(arr) {
		panic(fmt.Sprintf("vec.%s: vector has only %d component(s)", fn, len(arr)))
	}
	if !isNumber(v) {
		panic(fmt.Sprintf("vec.%s: component must be a number", fn))
	}
	out := make([]interface{}, len(arr))
	copy(out, arr)
	out[idx] = v
	return out
}

func asVec(fn string, val interface{}) []interface{} {
	arr, ok := val.([]interface{})
	if !ok {
		panic(fmt.Sprintf("vec.%s: expected a vector array", fn))
	}
	return arr
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int, float64:
		return true
	}
	return false
}
