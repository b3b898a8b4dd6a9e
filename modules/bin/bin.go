package binmod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

// Encoder functions take the value plus one optional boolean: the "0b"
// prefix. It defaults to on, unlike hex's "0x".
var encFlags = []bool{true}

func init() {
	modules.Register(&modules.Module{
		Name: "bin",
		Type: "Bin",
		Doc:  "Fixed-width binary (base-2) encoding of numbers and byte arrays.",
		Funcs: []modules.FuncDef{
			{Name: "u8", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 8-bit value as 8 binary digits."},
			{Name: "i8", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 8-bit value (two's complement) as 8 binary digits."},
			{Name: "u16", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 16-bit value as 16 binary digits."},
			{Name: "i16", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 16-bit value (two's complement) as 16 binary digits."},
			{Name: "u32", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 32-bit value as 32 binary digits."},
			{Name: "i32", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 32-bit value (two's complement) as 32 binary digits."},
			{Name: "u64", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode an unsigned 64-bit value as 64 binary digits."},
			{Name: "i64", Args: []modules.ArgType{modules.Int}, OptBools: encFlags, Doc: "Encode a signed 64-bit value (two's complement) as 64 binary digits."},
			{Name: "f32", Args: []modules.ArgType{modules.Float}, OptBools: encFlags, Doc: "Encode the IEEE-754 bit pattern of a 32-bit float as 32 binary digits."},
			{Name: "f64", Args: []modules.ArgType{modules.Float}, OptBools: encFlags, Doc: "Encode the IEEE-754 bit pattern of a 64-bit float as 64 binary digits."},
			{Name: "ch", Args: []modules.ArgType{modules.Any}, OptBools: encFlags, Doc: "Encode a character's code point as 32 binary digits."},
			{Name: "bytes", Args: []modules.ArgType{modules.Any}, OptBools: encFlags, Doc: "Encode a byte array or string as 8 binary digits per byte."},
		},
		GoImports: []string{"math"},
		Runtime:   modules.CleanRuntime(runtime),
	})
}
