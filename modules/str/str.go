package strmod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

func init() {
	modules.Register(&modules.Module{
		Name: "str",
		Type: "Str",
		Doc:  "String emptiness and presence checks.",
		Funcs: []modules.FuncDef{
			{Name: "empty", Args: []modules.ArgType{modules.String}, Doc: "True when the string has zero length."},
			{Name: "blank", Args: []modules.ArgType{modules.String}, Doc: "True when the string is empty after trimming whitespace."},
			{Name: "present", Args: []modules.ArgType{modules.String}, Doc: "True when the string contains non-whitespace characters."},
			{Name: "or_blank", Args: []modules.ArgType{modules.Any}, Doc: "Return the string, or \"\" when the value is nil."},
		},
		GoImports: []string{"strings"},
		Runtime:   modules.CleanRuntime(runtime),
	})
}
