package cli

import "fmt"

type CompleteCmd struct {
	Prefix string `arg:"" optional:"" help:"Prefix to complete, empty lists every word"`
}

// Run lists every entry whose word starts with the prefix.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	if err := ctx.loadFiles(); err != nil {
		return err
	}

	entries := ctx.Dict.Complete(cmd.Prefix)
	ctx.Log.Debug().Str("prefix", cmd.Prefix).Int("matches", len(entries)).Msg("completed prefix")

	if len(entries) == 0 {
		_, err := fmt.Fprintf(ctx.Out, "no words start with %q\n", cmd.Prefix)
		return err
	}
	return ctx.writer().Write(ctx.Out, CLI.WordKey, entries)
}
