package cli

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Abdurrahman-Sefn/sefn-utils/pkg/dictionary"
)

// CLI is the command tree parsed by kong.
var CLI struct {
	File     []string `help:"Word list files in CSV, TSV, JSON or YAML format" short:"f" type:"existingfile"`
	WordKey  string   `help:"Record key holding the word" default:"word"`
	Format   string   `help:"Output format for matches" enum:"text,json,csv" default:"text"`
	FoldCase bool     `help:"Store and match words lowercased"`
	Verbose  bool     `help:"Enable debug logging" short:"v"`

	Complete    CompleteCmd    `cmd:"" help:"List all entries whose words start with a prefix"`
	Lookup      LookupCmd      `cmd:"" help:"Look up the entry stored for an exact word"`
	Interactive InteractiveCmd `cmd:"" help:"Query and edit the dictionary from an interactive prompt"`
}

// Context carries the shared state every command runs against.
type Context struct {
	Dict *dictionary.Dictionary
	Log  zerolog.Logger
	In   io.Reader
	Out  io.Writer
}

// NewContext builds the command context from the parsed global flags.
func NewContext() *Context {
	level := zerolog.InfoLevel
	if CLI.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(level)

	var opts []dictionary.Option
	if CLI.FoldCase {
		opts = append(opts, dictionary.WithNormalizer(strings.ToLower))
	}

	return &Context{
		Dict: dictionary.New(opts...),
		Log:  logger,
		In:   os.Stdin,
		Out:  os.Stdout,
	}
}

// loadFiles fills the dictionary from the word list files given on the
// command line.
func (c *Context) loadFiles() error {
	for _, file := range CLI.File {
		loaded, err := c.Dict.LoadFile(file, CLI.WordKey)
		if err != nil {
			return err
		}
		c.Log.Debug().Str("file", file).Int("records", loaded).Msg("loaded word list")
	}
	c.Log.Debug().Int("words", c.Dict.Len()).Msg("dictionary ready")
	return nil
}

// writer picks the output writer for the chosen format.
func (c *Context) writer() Writer {
	switch CLI.Format {
	case "json":
		return JsonWriter{}
	case "csv":
		return CsvWriter{Comma: ','}
	default:
		return TextWriter{}
	}
}
