package binmod

import (
	"math"
)

// --- bin module ---
//
// Output is always zero-padded to the full width: eight digits per byte,
// most significant bit first. Signed inputs encode their two's-complement
// bit pattern, floats their IEEE-754 bit pattern. The "0b" prefix defaults
// to on (hex's "0x" defaults to off).

// octets maps every byte to its zero-padded 8-character binary string, so
// encoding costs one table lookup per byte instead of eight shifts.
var octets = func() [256]string {
	var table [256]string
	for i := 0; i < 256; i++ {
		var b [8]byte
		for bit := 0; bit < 8; bit++ {
			b[bit] = '0' + byte(i>>(7-bit))&1
		}
		table[i] = string(b[:])
	}
	return table
}()

// encodeUint encodes the width least-significant bytes of v, one octet
// lookup per byte, most significant first.
func encodeUint(v uint64, width int, prefix bool) string {
	var buf [66]byte // up to 64 digits plus "0b"
	n := 0
	if prefix {
		buf[0], buf[1] = '0', 'b'
		n = 2
	}
	for shift := (width - 1) * 8; shift >= 0; shift -= 8 {
		n += copy(buf[n:], octets[v>>uint(shift)&0xFF])
	}
	return string(buf[:n])
}

// Uint8 encodes v as 8 binary digits.
func Uint8(v uint8, prefix bool) string { return encodeUint(uint64(v), 1, prefix) }

// Int8 encodes the two's-complement bit pattern of v as 8 binary digits.
func Int8(v int8, prefix bool) string { return Uint8(uint8(v), prefix) }

// Uint16 encodes v as 16 binary digits.
func Uint16(v uint16, prefix bool) string { return encodeUint(uint64(v), 2, prefix) }

// Int16 encodes the two's-complement bit pattern of v as 16 binary digits.
func Int16(v int16, prefix bool) string { return Uint16(uint16(v), prefix) }

// Uint32 encodes v as 32 binary digits.
func Uint32(v uint32, prefix bool) string { return encodeUint(uint64(v), 4, prefix) }

// Int32 encodes the two's-complement bit pattern of v as 32 binary digits.
func Int32(v int32, prefix bool) string { return Uint32(uint32(v), prefix) }

// Uint64 encodes v as 64 binary digits.
func Uint64(v uint64, prefix bool) string { return encodeUint(v, 8, prefix) }

// Int64 encodes the two's-complement bit pattern of v as 64 binary digits.
func Int64(v int64, prefix bool) string { return Uint64(uint64(v), prefix) }

// Float32 encodes the IEEE-754 bit pattern of f as 32 binary digits.
func Float32(f float32, prefix bool) string { return Uint32(math.Float32bits(f), prefix) }

// Float64 encodes the IEEE-754 bit pattern of f as 64 binary digits.
func Float64(f float64, prefix bool) string { return Uint64(math.Float64bits(f), prefix) }

// Char encodes the code point of r as 32 binary digits.
func Char(r rune, prefix bool) string { return Uint32(uint32(r), prefix) }

// Bytes encodes b as 8 binary digits per byte, in sequence order.
// Empty or nil input yields "" even when prefix is set.
func Bytes(b []byte, prefix bool) string {
	if len(b) == 0 {
		return ""
	}
	out := make([]byte, 0, len(b)*8+2)
	if prefix {
		out = append(out, '0', 'b')
	}
	for _, v := range b {
		out = append(out, octets[v]...)
	}
	return string(out)
}

type Bin struct{}

func (*Bin) U8(v int, prefix bool) interface{} {
	return Uint8(uint8(v), prefix)
}

func (*Bin) I8(v int, prefix bool) interface{} {
	return Int8(int8(v), prefix)
}

func (*Bin) U16(v int, prefix bool) interface{} {
	return Uint16(uint16(v), prefix)
}

func (*Bin) I16(v int, prefix bool) interface{} {
	return Int16(int16(v), prefix)
}

func (*Bin) U32(v int, prefix bool) interface{} {
	return Uint32(uint32(v), prefix)
}

func (*Bin) I32(v int, prefix bool) interface{} {
	return Int32(int32(v), prefix)
}

func (*Bin) U64(v int, prefix bool) interface{} {
	return Uint64(uint64(v), prefix)
}

func (*Bin) I64(v int, prefix bool) interface{} {
	return Int64(int64(v), prefix)
}

func (*Bin) F32(v float64, prefix bool) interface{} {
	return Float32(float32(v), prefix)
}

func (*Bin) F64(v float64, prefix bool) interface{} {
	return Float64(v, prefix)
}

func (*Bin) Ch(val interface{}, prefix bool) interface{} {
	return Char(binCharOf(val), prefix)
}

func (*Bin) Bytes(val interface{}, prefix bool) interface{} {
	return Bytes(binByteSeq(val), prefix)
}

func binCharOf(val interface{}) rune {
	switch v := val.(type) {
	case string:
		for _, r := range v {
			return r
		}
		panic("bin.ch: empty string has no character")
	case int:
		return rune(v)
	default:
		panic("bin.ch: expected a character or code point")
	}
}

func binByteSeq(val interface{}) []byte {
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
				panic("bin.bytes: array elements must be byte values (0-255)")
			}
			out[i] = byte(n)
		}
		return out
	default:
		panic("bin.bytes: expected a byte array or string")
	}
}
