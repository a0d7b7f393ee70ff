package cli

import (
	"fmt"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/dictionary"
)

type LookupCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// Run prints the entry stored for the exact word.
func (cmd *LookupCmd) Run(ctx *Context) error {
	if err := ctx.loadFiles(); err != nil {
		return err
	}

	entry := ctx.Dict.Lookup(cmd.Word)
	if entry == nil {
		_, err := fmt.Fprintf(ctx.Out, "%q not found\n", cmd.Word)
		return err
	}
	return ctx.writer().Write(ctx.Out, CLI.WordKey, []*dictionary.Entry{entry})
}
