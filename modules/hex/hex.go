package hexmod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

// Encoder functions take the value plus two optional booleans: uppercase
// digits and the "0x" prefix. Both default to off.
var encFlags = []bool{false, false}

func init() {
	modules.Register(&modules.Module{
		Name: "hex",
		Type: "Hex",
		Doc:  "Fixed-width hexadecimal encoding of numbers and byte arrays.",
		Funcs: []modules.FuncDef{
			{Name: "u8", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 8-bit value as 2 hex digits."},
			{Name: "i8", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 8-bit value (two's complement) as 2 hex digits."},
			{Name: "u16", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 16-bit value as 4 hex digits."},
			{Name: "i16", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 16-bit value (two's complement) as 4 hex digits."},
			{Name: "u32", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 32-bit value as 8 hex digits."},
			{Name: "i32", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 32-bit value (two's complement) as 8 hex digits."},
			{Name: "u64", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 64-bit value as 16 hex digits."},
			{Name: "i64", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 64-bit value (two's complement) as 16 hex digits."},
			{Name: "f32", Args: []modules.ArgType{modules.Float}, OptBools: encFlags, Doc: "Encode the IEEE-754 bit pattern of a 32-bit float as 8 hex digits."},
			{Name: "f64", Args: []modules.ArgType{modules.Float}, OptBools: encFlags, Doc: "Encode the IEEE-754 bit pattern of a 64-bit float as 16 hex digits."},
			{Name: "ch", Args: []modules.ArgType{modules.Any}, OptBools: encFlags, Doc: "Encode a character's code point as 8 hex digits."},
			{Name: "bytes", Args: []modules.ArgType{modules.Any}, OptBools: encFlags, Doc: "Encode a byte array or string as 2 hex digits per byte."},
		},
		GoImports: []string{"math"},
		Runtime:   modules.CleanRuntime(runtime),
	})
}
