package vecmod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

func init() {
	modules.Register(&modules.Module{
		Name: "vec",
		Type: "Vec",
		Doc:  "Immutable component builders for vectors and quaternions.",
		Funcs: []modules.FuncDef{
			{Name: "with_x", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Copy a vector with its x component replaced."},
			{Name: "with_y", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Copy a vector with its y component replaced."},
			{Name: "with_z", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Copy a vector with its z component replaced."},
			{Name: "with_w", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Copy a vector with its w component replaced."},
			{Name: "axis", Args: []modules.ArgType{modules.Any, modules.Int}, Doc: "Return a vector component by index."},
		},
		GoImports: []string{"fmt"},
		Runtime:   modules.CleanRuntime(runtime),
	})
}
