package objmod

import (
	_ "embed"

	"github.com/mosslang/mossx/modules"
)

//go:embed runtime.go
var runtime string

func init() {
	modules.Register(&modules.Module{
		Name: "obj",
		Type: "Obj",
		Doc:  "Null-safety helpers for engine object references.",
		Funcs: []modules.FuncDef{
			{Name: "is_nil", Args: []modules.ArgType{modules.Any}, Doc: "True when the value is nil."},
			{Name: "is_valid", Args: []modules.ArgType{modules.Any}, Doc: "True when the value is non-nil and, for engine handles, still alive."},
			{Name: "or_else", Args: []modules.ArgType{modules.Any, modules.Any}, Doc: "Return the value, or the fallback when it is nil or a dead handle."},
		},
		Runtime: modules.CleanRuntime(runtime),
	})
}
