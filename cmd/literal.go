package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseScalar parses a command-line value literal into the width
// least-significant bits of a uint64. Accepts decimal, 0x/0b/0o literals
// and negative decimals (stored as their two's-complement bit pattern).
// With isFloat set, the literal is parsed as a float of the given width
// and its IEEE-754 bit pattern is returned.
func parseScalar(s string, width int, isFloat bool) (uint64, error) {
	switch width {
	case 8, 16, 32, 64:
	default:
		return 0, fmt.Errorf("unsupported width %d (use 8, 16, 32 or 64)", width)
	}

	if isFloat {
		if width != 32 && width != 64 {
			return 0, fmt.Errorf("float values need -w 32 or -w 64")
		}
		f, err := strconv.ParseFloat(s, width)
		if err != nil {
			return 0, fmt.Errorf("invalid float %q", s)
		}
		if width == 32 {
			return uint64(math.Float32bits(float32(f))), nil
		}
		return math.Float64bits(f), nil
	}

	if strings.HasPrefix(s, "-") {
		n, err := strconv.ParseInt(s, 0, width)
		if err != nil {
			return 0, fmt.Errorf("invalid value %q for width %d", s, width)
		}
		return uint64(n) & widthMask(width), nil
	}

	v, err := strconv.ParseUint(s, 0, width)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for width %d", s, width)
	}
	return v, nil
}

func widthMask(width int) uint64 {
	if width == 64 {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// parseByteList parses each argument as a byte value (decimal or 0x literal).
func parseByteList(args []string) ([]byte, error) {
	out := make([]byte, 0, len(args))
	for _, a := range args {
		n, err := strconv.ParseUint(a, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid byte %q", a)
		}
		out = append(out, byte(n))
	}
	return out, nil
}
