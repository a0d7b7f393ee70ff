package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/dictionary"
	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/input"
)

type InteractiveCmd struct{}

const interactiveHelp = `Commands:
  complete [prefix]      list words starting with prefix
  lookup <word>          show the entry for a word
  add <word> [text...]   add a word, the rest of the line as definition
  remove <word>          remove a word
  count                  number of stored words
  help                   show this help
  quit                   leave`

// Run reads commands from the prompt until quit or end of input.
func (cmd *InteractiveCmd) Run(ctx *Context) error {
	if err := ctx.loadFiles(); err != nil {
		return err
	}

	reader := input.NewReader(ctx.In, ctx.Out)
	fmt.Fprintf(ctx.Out, "%d words loaded. Type 'help' for commands.\n", ctx.Dict.Len())

	for {
		line, err := input.ReadString(reader, "> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		name, args := fields[0], fields[1:]

		switch name {
		case "complete":
			prefix := ""
			if len(args) > 0 {
				prefix = args[0]
			}
			words := ctx.Dict.Words(prefix)
			if len(words) == 0 {
				fmt.Fprintf(ctx.Out, "\tno words start with %q\n", prefix)
				continue
			}
			for _, word := range words {
				fmt.Fprintf(ctx.Out, "\t%s\n", word)
			}

		case "lookup":
			if len(args) != 1 {
				fmt.Fprintln(ctx.Out, "\tusage: lookup <word>")
				continue
			}
			entry := ctx.Dict.Lookup(args[0])
			if entry == nil {
				fmt.Fprintf(ctx.Out, "\t%q not found\n", args[0])
				continue
			}
			fmt.Fprintf(ctx.Out, "\t%s", entry.Word)
			for _, key := range sortedAttributeKeys(entry) {
				fmt.Fprintf(ctx.Out, "  %s=%s", key, entry.Attributes[key])
			}
			fmt.Fprintln(ctx.Out)

		case "add":
			if len(args) == 0 {
				fmt.Fprintln(ctx.Out, "\tusage: add <word> [definition...]")
				continue
			}
			entry := dictionary.NewEntry(args[0])
			if len(args) > 1 {
				entry.Attributes["definition"] = strings.Join(args[1:], " ")
			}
			result := ctx.Dict.Add(entry)
			fmt.Fprintf(ctx.Out, "\t%s\n", result)

		case "remove":
			if len(args) != 1 {
				fmt.Fprintln(ctx.Out, "\tusage: remove <word>")
				continue
			}
			if ctx.Dict.Remove(args[0]) {
				fmt.Fprintf(ctx.Out, "\tremoved %q\n", args[0])
			} else {
				fmt.Fprintf(ctx.Out, "\t%q not found\n", args[0])
			}

		case "count":
			fmt.Fprintf(ctx.Out, "\t%d words\n", ctx.Dict.Len())

		case "help":
			fmt.Fprintln(ctx.Out, interactiveHelp)

		case "quit", "exit":
			return nil

		default:
			fmt.Fprintf(ctx.Out, "\tunknown command %q, type 'help'\n", name)
		}
	}
}
