package convmod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

func init() {
	modules.Register(&modules.Module{
		Name: "conv",
		Type: "Conv",
		Doc:  "Numeric conversions with caller-supplied fallback defaults.",
		Funcs: []modules.FuncDef{
			{Name: "to_i", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Convert a value to an integer, or return the default."},
			{Name: "to_f", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Convert a value to a float, or return the default."},
			{Name: "to_b", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Convert a value to a boolean, or return the default."},
			{Name: "to_s", Args: []modules.ArgType{modules.Any}, Doc: "Convert any value to its string form."},
			{Name: "clamp_i8", Args: []modules.ArgType{modules.Int}, Doc: "Saturate an integer to the signed 8-bit range."},
			{Name: "clamp_i16", Args: []modules.ArgType{modules.Int}, Doc: "Saturate an integer to the signed 16-bit range."},
			{Name: "clamp_i32", Args: []modules.ArgType{modules.Int}, Doc: "Saturate an integer to the signed 32-bit range."},
			{Name: "digit", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Convert a decimal digit character to its value, or return the default."},
		},
		GoImports: []string{"fmt", "strconv", "strings"},
		Runtime:   modules.CleanRuntime(runtime),
	})
}
