// Package input structures one command invocation: a command name followed
// by argument tokens that handlers extract one at a time into typed values.
package input

import (
	"fmt"
	"strings"

	"treectl/internal/arglist"
	"treectl/internal/convert"
	"treectl/pkg/treetypes"
)

// Input is the argv of a single command invocation. The first token is the
// command name; argument extraction starts at the second token.
//
// Extraction is not transactional: when a Read fails, values extracted
// earlier stay in their destinations and the caller should abandon the
// invocation.
type Input struct {
	command string
	hasName bool
	args    *arglist.ArgList
}

// New wraps a full argv, command name included.
func New(argv *arglist.ArgList) *Input {
	tokens := argv.Tokens()
	if len(tokens) == 0 {
		return &Input{args: arglist.New(nil)}
	}
	return &Input{
		command: tokens[0],
		hasName: true,
		args:    arglist.New(tokens[1:]),
	}
}

// FromStrings is a convenience constructor for New.
func FromStrings(argv ...string) *Input {
	return New(arglist.New(argv))
}

// Command returns the command name.
func (in *Input) Command() (string, error) {
	if !in.hasName {
		return "", treetypes.ErrEmptyCommand
	}
	return in.command, nil
}

// Next returns the next raw argument token.
func (in *Input) Next() (string, error) {
	tok, err := in.args.Shift()
	if err != nil {
		return "", in.exhausted()
	}
	return tok, nil
}

// Remaining returns the number of arguments not yet extracted.
func (in *Input) Remaining() int {
	return in.args.Remaining()
}

// Rest returns the arguments not yet extracted, without consuming them.
func (in *Input) Rest() []string {
	return in.args.Rest()
}

// Args returns all argument tokens, excluding the command name.
func (in *Input) Args() []string {
	return in.args.Tokens()
}

// Done fails when arguments are left over. Handlers call it after reading
// everything they expect and before performing any side effect.
func (in *Input) Done() error {
	if n := in.args.Remaining(); n > 0 {
		return fmt.Errorf("%w for %s: unexpected \"%s\"",
			treetypes.ErrTrailingArguments, in.name(), strings.Join(in.args.Rest(), " "))
	}
	return nil
}

// String renders the full invocation, command name included.
func (in *Input) String() string {
	if !in.hasName {
		return ""
	}
	return strings.Join(append([]string{in.command}, in.args.Tokens()...), " ")
}

func (in *Input) exhausted() error {
	return fmt.Errorf("%w for %s", treetypes.ErrExhausted, in.name())
}

func (in *Input) name() string {
	if !in.hasName {
		return "empty command"
	}
	return "\"" + in.command + "\""
}

// Read extracts the next argument, parses it with conv and stores it in dst.
// dst is left untouched on failure.
func Read[T any](in *Input, conv convert.Converter[T], dst *T) error {
	return read(in, conv, dst, nil)
}

// ReadRelative is like Read but passes the current value of *dst as the
// previous value, so relative syntaxes such as "toggle" apply to it.
func ReadRelative[T any](in *Input, conv convert.Converter[T], dst *T) error {
	return read(in, conv, dst, dst)
}

func read[T any](in *Input, conv convert.Converter[T], dst *T, previous *T) error {
	tok, err := in.Next()
	if err != nil {
		return err
	}
	v, err := conv.Parse(tok, previous)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
