// Package input provides console input reading with validation. A
// prompt is printed, a line is read and parsed, and the user is asked
// again until the value parses and passes the optional validator.
// Reading is done through an explicit Reader so callers can drive the
// loop from any stream, not just the terminal.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	defaultErrorMessage       = "Invalid value. Please try again."
	defaultFormatErrorMessage = "Invalid format. Please try again."
)

// Reader couples an input stream with the output stream prompts and
// error messages are written to.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewReader creates a Reader over the given streams.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// NewConsoleReader creates a Reader over stdin and stdout.
func NewConsoleReader() *Reader {
	return NewReader(os.Stdin, os.Stdout)
}

// Option configures a single read call.
type Option[T any] func(*prompt[T])

type prompt[T any] struct {
	indentTabs         int
	validator          func(T) bool
	errorMessage       string
	formatErrorMessage string
}

// WithIndent indents the prompt by the given number of tabs; error
// messages are indented one tab deeper.
func WithIndent[T any](tabs int) Option[T] {
	return func(p *prompt[T]) {
		p.indentTabs = tabs
	}
}

// WithValidator rejects parsed values the given function returns
// false for, reprinting the error message and prompting again.
func WithValidator[T any](validator func(T) bool) Option[T] {
	return func(p *prompt[T]) {
		p.validator = validator
	}
}

// WithErrorMessage replaces the message shown when validation fails.
func WithErrorMessage[T any](message string) Option[T] {
	return func(p *prompt[T]) {
		p.errorMessage = message
	}
}

// WithFormatErrorMessage replaces the message shown when parsing fails.
func WithFormatErrorMessage[T any](message string) Option[T] {
	return func(p *prompt[T]) {
		p.formatErrorMessage = message
	}
}

// ReadValidated prompts, reads a line, parses it with parse, and
// validates the result, repeating until a value is accepted. The only
// error it can return is from the stream itself, such as io.EOF when
// the input closes before a valid value was read.
func ReadValidated[T any](r *Reader, promptText string, parse func(string) (T, error), opts ...Option[T]) (T, error) {
	p := &prompt[T]{
		errorMessage:       defaultErrorMessage,
		formatErrorMessage: defaultFormatErrorMessage,
	}
	for _, opt := range opts {
		opt(p)
	}

	indent := strings.Repeat("\t", p.indentTabs)
	errorIndent := indent + "\t"

	var zero T
	for {
		fmt.Fprint(r.out, indent+promptText)

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return zero, fmt.Errorf("reading input: %w", err)
			}
			return zero, io.EOF
		}

		value, err := parse(r.scanner.Text())
		if err != nil {
			fmt.Fprintln(r.out, errorIndent+p.formatErrorMessage)
			continue
		}
		if p.validator != nil && !p.validator(value) {
			fmt.Fprintln(r.out, errorIndent+p.errorMessage)
			continue
		}
		return value, nil
	}
}

// ReadInt reads a whole line holding exactly one integer.
func ReadInt(r *Reader, promptText string, opts ...Option[int]) (int, error) {
	return ReadValidated(r, promptText, parseInt, opts...)
}

// ReadFloat reads a whole line holding exactly one number.
func ReadFloat(r *Reader, promptText string, opts ...Option[float64]) (float64, error) {
	return ReadValidated(r, promptText, parseFloat, opts...)
}

// ReadString reads a line and trims surrounding whitespace. A blank
// line is a format error.
func ReadString(r *Reader, promptText string, opts ...Option[string]) (string, error) {
	return ReadValidated(r, promptText, parseString, opts...)
}

// parseInt accepts a single whitespace-delimited integer token and
// nothing else on the line.
func parseInt(line string) (int, error) {
	token, err := singleToken(line)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(token)
}

func parseFloat(line string) (float64, error) {
	token, err := singleToken(line)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(token, 64)
}

func parseString(line string) (string, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return "", fmt.Errorf("empty input")
	}
	return trimmed, nil
}

func singleToken(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 1 {
		return "", fmt.Errorf("expected a single value, got %d", len(fields))
	}
	return fields[0], nil
}
