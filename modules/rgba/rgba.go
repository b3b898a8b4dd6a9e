package rgbamod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

func init() {
	modules.Register(&modules.Module{
		Name: "rgba",
		Type: "RGBA",
		Doc:  "Immutable channel builders and hex formatting for colors.",
		Funcs: []modules.FuncDef{
			{Name: "with_r", Args: []modules.ArgType{modules.Any, modules.Int}, Doc: "Copy a color with its red channel replaced (clamped to 0-255)."},
			{Name: "with_g", Args: []modules.ArgType{modules.Any, modules.Int}, Doc: "Copy a color with its green channel replaced (clamped to 0-255)."},
			{Name: "with_b", Args: []modules.ArgType{modules.Any, modules.Int}, Doc: "Copy a color with its blue channel replaced (clamped to 0-255)."},
			{Name: "with_a", Args: []modules.ArgType{modules.Any, modules.Int}, Doc: "Copy a color with its alpha channel replaced (clamped to 0-255)."},
			{Name: "hex", Args: []modules.ArgType{modules.Any}, Doc: "Format a color as \"#rrggbbaa\"."},
		},
		GoImports: []string{"fmt"},
		Runtime:   modules.CleanRuntime(runtime),
	})
}
