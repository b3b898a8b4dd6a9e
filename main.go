package main

import (
	"github.com/mosslang/mossx/cmd"
	_ "github.com/mosslang/mossx/modules/bin"
	_ "github.com/mosslang/mossx/modules/conv"
	_ "github.com/mosslang/mossx/modules/hex"
	_ "github.com/mosslang/mossx/modules/obj"
	_ "github.com/mosslang/mossx/modules/rgba"
	_ "github.com/mosslang/mossx/modules/str"
	_ "github.com/mosslang/mossx/modules/vec"
)

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
