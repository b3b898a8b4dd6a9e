package convmod

import (
	"fmt"
	"strconv"
	"strings"
)

// --- conv module ---
//
// Conversions never panic when the caller supplies a default: any value
// that cannot be converted, or parses out of range, yields the default
// instead. Engine scripts use these on untrusted entity metadata.

type Conv struct{}

func (*Conv) ToI(val, def interface{}) interface{} {
	switch v := val.(type) {
	case int:
		return v
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return n
	case bool:
		if v {
			return 1
		}
		return 0
	default:
		return def
	}
}

func (*Conv) ToF(val, def interface{}) interface{} {
	switch v := val.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return def
		}
		return f
	case bool:
		if v {
			return 1.0
		}
		return 0.0
	default:
		return def
	}
}

func (*Conv) ToB(val, def interface{}) interface{} {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float64:
		return v != 0
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return def
		}
		return b
	default:
		return def
	}
}

func (*Conv) ToS(val interface{}) interface{} {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (*Conv) ClampI8(v int) interface{} {
	return clamp(v, -128, 127)
}

func (*Conv) ClampI16(v int) interface{} {
	return clamp(v, -32768, 32767)
}

func (*Conv) ClampI32(v int) interface{} {
	return clamp(v, -2147483648, 2147483647)
}

func (*Conv) Digit(val, def interface{}) interface{} {
	s, ok := val.(string)
	if !ok || len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return def
	}
	return int(s[0] - '0')
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
