package doc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mosslang/mossx/modules"
)

func sampleModule() *modules.Module {
	return &modules.Module{
		Name: "enc",
		Type: "Enc",
		Doc:  "Sample encoder.",
		Funcs: []modules.FuncDef{
			{Name: "u8", Doc: "Encode a byte.", Args: []modules.ArgType{modules.Int}, OptBools: []bool{false, true}},
			{Name: "raw", Args: []modules.ArgType{modules.String}, Variadic: true},
			{Name: "noop"},
		},
	}
}

func TestSignature(t *testing.T) {
	m := sampleModule()

	assert.Equal(t, "enc.u8(int, [bool=false], [bool=true])", Signature(m, m.Funcs[0]))
	assert.Equal(t, "enc.raw(string, ...)", Signature(m, m.Funcs[1]))
	assert.Equal(t, "enc.noop()", Signature(m, m.Funcs[2]))
}

func TestSignatureArgNames(t *testing.T) {
	m := &modules.Module{Name: "t"}
	f := modules.FuncDef{
		Name: "f",
		Args: []modules.ArgType{modules.String, modules.Int, modules.Float, modules.Bool, modules.Any},
	}
	assert.Equal(t, "t.f(string, int, float, bool, any)", Signature(m, f))
}

func TestFormatModule(t *testing.T) {
	got := FormatModule(sampleModule())

	assert.True(t, strings.HasPrefix(got, "module enc\n"), "starts with module header:\n%s", got)
	assert.Contains(t, got, "    Sample encoder.")
	assert.Contains(t, got, "  enc.u8(int, [bool=false], [bool=true])")
	assert.Contains(t, got, "      Encode a byte.")
	assert.Contains(t, got, "  enc.noop()")
}

func TestFormatModuleNoDoc(t *testing.T) {
	m := &modules.Module{Name: "bare", Funcs: []modules.FuncDef{{Name: "f"}}}
	got := FormatModule(m)

	assert.Contains(t, got, "module bare\n")
	assert.NotContains(t, got, "    \n")
	assert.Contains(t, got, "  bare.f()")
}
