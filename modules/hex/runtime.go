package hexmod

import (
	"math"
)

// --- hex module ---
//
// Output is always zero-padded to the full width: two digits per byte,
// most significant nibble first. Signed inputs encode their
// two's-complement bit pattern, floats their IEEE-754 bit pattern.
// The "0x" prefix defaults to off (bin's "0b" defaults to on).

var hexLower = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
var hexUpper = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}

// encodeUint encodes the width least-significant bytes of v, one digit per
// nibble, most significant first.
func encodeUint(v uint64, width int, upper, prefix bool) string {
	digits := &hexLower
	if upper {
		digits = &hexUpper
	}
	var buf [18]byte // up to 16 digits plus "0x"
	n := 0
	if prefix {
		buf[0], buf[1] = '0', 'x'
		n = 2
	}
	for shift := width*8 - 4; shift >= 0; shift -= 4 {
		buf[n] = digits[v>>uint(shift)&0xF]
		n++
	}
	return string(buf[:n])
}

// Uint8 encodes v as 2 hex digits.
func Uint8(v uint8, upper, prefix bool) string { return encodeUint(uint64(v), 1, upper, prefix) }

// Int8 encodes the two's-complement bit pattern of v as 2 hex digits.
func Int8(v int8, upper, prefix bool) string { return Uint8(uint8(v), upper, prefix) }

// Uint16 encodes v as 4 hex digits.
func Uint16(v uint16, upper, prefix bool) string { return encodeUint(uint64(v), 2, upper, prefix) }

// Int16 encodes the two's-complement bit pattern of v as 4 hex digits.
func Int16(v int16, upper, prefix bool) string { return Uint16(uint16(v), upper, prefix) }

// Uint32 encodes v as 8 hex digits.
func Uint32(v uint32, upper, prefix bool) string { return encodeUint(uint64(v), 4, upper, prefix) }

// Int32 encodes the two's-complement bit pattern of v as 8 hex digits.
func Int32(v int32, upper, prefix bool) string { return Uint32(uint32(v), upper, prefix) }

// Uint64 encodes v as 16 hex digits.
func Uint64(v uint64, upper, prefix bool) string { return encodeUint(v, 8, upper, prefix) }

// Int64 encodes the two's-complement bit pattern of v as 16 hex digits.
func Int64(v int64, upper, prefix bool) string { return Uint64(uint64(v), upper, prefix) }

// Float32 encodes the IEEE-754 bit pattern of f as 8 hex digits.
func Float32(f float32, upper, prefix bool) string {
	return Uint32(math.Float32bits(f), upper, prefix)
}

// Float64 encodes the IEEE-754 bit pattern of f as 16 hex digits.
func Float64(f float64, upper, prefix bool) string {
	return Uint64(math.Float64bits(f), upper, prefix)
}

// Char encodes the code point of r as 8 hex digits.
func Char(r rune, upper, prefix bool) string { return Uint32(uint32(r), upper, prefix) }

// Bytes encodes b as 2 hex digits per byte, in sequence order.
// Empty or nil input yields "" even when prefix is set.
func Bytes(b []byte, upper, prefix bool) string {
	if len(b) == 0 {
		return ""
	}
	digits := &hexLower
	if upper {
		digits = &hexUpper
	}
	out := make([]byte, 0, len(b)*2+2)
	if prefix {
		out = append(out, '0', 'x')
	}
	for _, v := range b {
		out = append(out, digits[v>>4], digits[v&0xF])
	}
	return string(out)
}

type Hex struct{}

func (*Hex) U8(v int, upper, prefix bool) interface{} {
	return Uint8(uint8(v), upper, prefix)
}

func (*Hex) I8(v int, upper, prefix bool) interface{} {
	return Int8(int8(v), upper, prefix)
}

func (*Hex) U16(v int, upper, prefix bool) interface{} {
	return Uint16(uint16(v), upper, prefix)
}

func (*Hex) I16(v int, upper, prefix bool) interface{} {
	return Int16(int16(v), upper, prefix)
}

func (*Hex) U32(v int, upper, prefix bool) interface{} {
	return Uint32(uint32(v), upper, prefix)
}

func (*Hex) I32(v int, upper, prefix bool) interface{} {
	return Int32(int32(v), upper, prefix)
}

func (*Hex) U64(v int, upper, prefix bool) interface{} {
	return Uint64(uint64(v), upper, prefix)
}

func (*Hex) I64(v int, upper, prefix bool) interface{} {
	return Int64(int64(v), upper, prefix)
}

func (*Hex) F32(v float64, upper, prefix bool) interface{} {
	return Float32(float32(v), upper, prefix)
}

func (*Hex) F64(v float64, upper, prefix bool) interface{} {
	return Float64(v, upper, prefix)
}

func (*Hex) Ch(val interface{}, upper, prefix bool) interface{} {
	return Char(hexCharOf(val), upper, prefix)
}

func (*Hex) Bytes(val interface{}, upper, prefix bool) interface{} {
	return Bytes(hexByteSeq(val), upper, prefix)
}

func hexCharOf(val interface{}) rune {
	switch v := val.(type) {
	case string:
		for _, r := range v {
			return r
		}
		panic("hex.ch: empty string has no character")
	case int:
		return rune(v)
	default:
		panic("hex.ch: expected a character or code point")
	}
}

func hexByteSeq(val interface{}) []byte {
	switch v := val.(type) {
	case nil:
		return nil
	case []byte:
		return v
	case string:
		return []byte(v)
	case []interface{}:
		out := make([]byte, len(v))
		for i, e := range v {
			n, ok := e.(int)
			if !ok || n < 0 || n > 255 {
				panic("hex.bytes: array elements must be byte values (0-255)")
			}
			out[i] = byte(n)
		}
		return out
	default:
		panic("hex.bytes: expected a byte array or string")
	}
}
