package main

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("sefn-dict"),
		kong.Description("Dictionary lookups and autocompletion over a prefix tree."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(cli.NewContext()); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
