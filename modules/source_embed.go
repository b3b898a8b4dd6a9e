package modules

import "embed"

// Sources embeds module.go and all module subdirectory source files needed
// to reconstruct the modules package tree in the engine's module cache.
// Test files are excluded.
//
//go:embed module.go
//go:embed bin/bin.go bin/runtime.go
//go:embed conv/conv.go conv/runtime.go
//go:embed hex/hex.go hex/runtime.go
//go:embed obj/obj.go obj/runtime.go
//go:embed rgba/rgba.go rgba/runtime.go
//go:embed str/runtime.go str/str.go
//go:embed vec/runtime.go vec/vec.go
var Sources embed.FS
