package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/mosslang/mossx/doc"
	"github.com/mosslang/mossx/modules"
	binmod "github.com/mosslang/mossx/modules/bin"
	hexmod "github.com/mosslang/mossx/modules/hex"
)

// Execute runs the mossx CLI with the given version string.
// Import modules via blank imports before calling this function
// so they register via init().
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "mossx",
		Usage:                  "Extension modules for the Moss engine scripting runtime",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:   "modules",
				Usage:  "List registered modules",
				Action: modulesAction,
			},
			{
				Name:      "doc",
				Usage:     "Show a module's functions and documentation",
				ArgsUsage: "<module>",
				Action:    docAction,
			},
			{
				Name:      "hex",
				Usage:     "Hex-encode a value the way scripts would",
				ArgsUsage: "<value> | <byte>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "width",
						Aliases: []string{"w"},
						Usage:   "Bit width: 8, 16, 32 or 64",
						Value:   32,
					},
					&cli.BoolFlag{
						Name:    "upper",
						Aliases: []string{"u"},
						Usage:   "Uppercase digits",
					},
					&cli.BoolFlag{
						Name:    "prefix",
						Aliases: []string{"p"},
						Usage:   "Include the 0x prefix",
					},
					&cli.BoolFlag{
						Name:    "float",
						Aliases: []string{"f"},
						Usage:   "Encode the IEEE-754 bit pattern of a float",
					},
					&cli.BoolFlag{
						Name:    "bytes",
						Aliases: []string{"b"},
						Usage:   "Treat arguments as a byte sequence",
					},
				},
				Action: hexAction,
			},
			{
				Name:      "bin",
				Usage:     "Binary-encode a value the way scripts would",
				ArgsUsage: "<value> | <byte>...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "width",
						Aliases: []string{"w"},
						Usage:   "Bit width: 8, 16, 32 or 64",
						Value:   32,
					},
					&cli.BoolFlag{
						Name:    "prefix",
						Aliases: []string{"p"},
						Usage:   "Include the 0b prefix",
						Value:   true,
					},
					&cli.BoolFlag{
						Name:    "float",
						Aliases: []string{"f"},
						Usage:   "Encode the IEEE-754 bit pattern of a float",
					},
					&cli.BoolFlag{
						Name:    "bytes",
						Aliases: []string{"b"},
						Usage:   "Treat arguments as a byte sequence",
					},
				},
				Action: binAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func modulesAction(ctx context.Context, cmd *cli.Command) error {
	bold, reset := ansiCodes()
	for _, name := range modules.Names() {
		m, _ := modules.Get(name)
		fmt.Printf("%s%s%s  %s\n", bold, name, reset, m.Doc)
	}
	return nil
}

func docAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: mossx doc <module>")
	}
	name := cmd.Args().First()
	m, ok := modules.Get(name)
	if !ok {
		return fmt.Errorf("unknown module %q (try: mossx modules)", name)
	}
	fmt.Print(doc.FormatModule(m))
	return nil
}

func hexAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: mossx hex [-w width] [-u] [-p] <value>")
	}
	upper, prefix := cmd.Bool("upper"), cmd.Bool("prefix")

	if cmd.Bool("bytes") {
		b, err := parseByteList(cmd.Args().Slice())
		if err != nil {
			return err
		}
		fmt.Println(hexmod.Bytes(b, upper, prefix))
		return nil
	}

	width := int(cmd.Int("width"))
	v, err := parseScalar(cmd.Args().First(), width, cmd.Bool("float"))
	if err != nil {
		return err
	}
	switch width {
	case 8:
		fmt.Println(hexmod.Uint8(uint8(v), upper, prefix))
	case 16:
		fmt.Println(hexmod.Uint16(uint16(v), upper, prefix))
	case 32:
		fmt.Println(hexmod.Uint32(uint32(v), upper, prefix))
	case 64:
		fmt.Println(hexmod.Uint64(v, upper, prefix))
	}
	return nil
}

func binAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 {
		return fmt.Errorf("usage: mossx bin [-w width] [-p] <value>")
	}
	prefix := cmd.Bool("prefix")

	if cmd.Bool("bytes") {
		b, err := parseByteList(cmd.Args().Slice())
		if err != nil {
			return err
		}
		fmt.Println(binmod.Bytes(b, prefix))
		return nil
	}

	width := int(cmd.Int("width"))
	v, err := parseScalar(cmd.Args().First(), width, cmd.Bool("float"))
	if err != nil {
		return err
	}
	switch width {
	case 8:
		fmt.Println(binmod.Uint8(uint8(v), prefix))
	case 16:
		fmt.Println(binmod.Uint16(uint16(v), prefix))
	case 32:
		fmt.Println(binmod.Uint32(uint32(v), prefix))
	case 64:
		fmt.Println(binmod.Uint64(v, prefix))
	}
	return nil
}

// ansiCodes returns bold/reset escapes, or empty strings when stdout is not
// an interactive terminal or NO_COLOR is set.
func ansiCodes() (string, string) {
	if os.Getenv("NO_COLOR") != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		return "", ""
	}
	return "\x1b[1m", "\x1b[0m"
}
