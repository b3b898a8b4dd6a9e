// Package doc formats registered module documentation for terminal display.
package doc

import (
	"fmt"
	"strings"

	"github.com/mosslang/mossx/modules"
)

// FormatModule formats a stdlib module for terminal display.
func FormatModule(m *modules.Module) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("module %s", m.Name))
	sb.WriteString("\n")
	if m.Doc != "" {
		sb.WriteString("    ")
		sb.WriteString(m.Doc)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, f := range m.Funcs {
		sb.WriteString("  ")
		sb.WriteString(Signature(m, f))
		sb.WriteString("\n")
		if f.Doc != "" {
			sb.WriteString("      ")
			sb.WriteString(strings.ReplaceAll(f.Doc, "\n", "\n      "))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Signature renders a moss call signature for a module function.
// Optional boolean flags show their defaults: hex.u8(int, [bool=false], [bool=false]).
func Signature(m *modules.Module, f modules.FuncDef) string {
	args := make([]string, 0, len(f.Args)+len(f.OptBools)+1)
	for _, a := range f.Args {
		args = append(args, argName(a))
	}
	for _, def := range f.OptBools {
		args = append(args, fmt.Sprintf("[bool=%v]", def))
	}
	if f.Variadic {
		args = append(args, "...")
	}
	return fmt.Sprintf("%s.%s(%s)", m.Name, f.Name, strings.Join(args, ", "))
}

func argName(t modules.ArgType) string {
	switch t {
	case modules.String:
		return "string"
	case modules.Int:
		return "int"
	case modules.Float:
		return "float"
	case modules.Bool:
		return "bool"
	default:
		return "any"
	}
}
