package rgbamod

import (
	"fmt"
)

// --- rgba module ---
//
// Colors are moss arrays of four channel ints [r, g, b, a], each 0-255.
// Builders return a copy with one channel replaced; out-of-range channel
// values are clamped, matching how the engine stores color components.

type RGBA struct{}

func (*RGBA) WithR(color interface{}, v int) interface{} { return withChannel("with_r", color, 0, v) }

func (*RGBA) WithG(color interface{}, v int) interface{} { return withChannel("with_g", color, 1, v) }

func (*RGBA) WithB(color interface{}, v int) interface{} { return withChannel("with_b", color, 2, v) }

func (*RGBA) WithA(color interface{}, v int) interface{} { return withChannel("with_a", color, 3, v) }

func (*RGBA) Hex(color interface{}) interface{} {
	c := asColor("hex", color)
	return fmt.Sprintf("#%02x%02x%02x%02x", c[0], c[1], c[2], c[3])
}

func withChannel(fn string, color interface{}, idx, v int) interface{} {
	c := asColor(fn, color)
	c[idx] = clampChannel(v)
	out := make([]interface{}, 4)
	for i, ch := range c {
		out[i] = ch
	}
	return out
}

// asColor returns the four channels as ints, clamped to 0-255.
func asColor(fn string, val interface{}) [4]int {
	arr, ok := val.([]interface{})
	if !ok || len(arr) != 4 {
		panic(fmt.Sprintf("rgba.%s: expected a [r, g, b, a] array", fn))
	}
	var c [4]int
	for i, e := range arr {
		n, ok := e.(int)
		if !ok {
			panic(fmt.Sprintf("rgba.%s: channels must be integers", fn))
		}
		c[i] = clampChannel(n)
	}
	return c
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
