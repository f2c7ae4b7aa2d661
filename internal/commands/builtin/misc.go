package builtin

import (
	"fmt"
	"strings"

	"treectl/internal/commands"
	"treectl/internal/input"
	"treectl/internal/session"
	"treectl/internal/version"
)

// EchoCommand prints its arguments separated by single spaces.
type EchoCommand struct{}

// Name returns "echo".
func (c *EchoCommand) Name() string { return "echo" }

// Description returns a brief description of the command.
func (c *EchoCommand) Description() string { return "Print the arguments" }

// Usage returns the command syntax.
func (c *EchoCommand) Usage() string { return "echo [ARGS...]" }

// Execute consumes every argument.
func (c *EchoCommand) Execute(in *input.Input, sess *session.Session) error {
	words := make([]string, 0, in.Remaining())
	for in.Remaining() > 0 {
		word, err := in.Next()
		if err != nil {
			return err
		}
		words = append(words, word)
	}
	sess.Out().Println(strings.Join(words, " "))
	return nil
}

// StatusCommand is "true" or "false". It accepts no arguments and returns
// a fixed result.
type StatusCommand struct {
	name   string
	result error
}

// Name returns the command name.
func (c *StatusCommand) Name() string { return c.name }

// Description returns a brief description of the command.
func (c *StatusCommand) Description() string {
	if c.result == nil {
		return "Do nothing, successfully"
	}
	return "Do nothing, unsuccessfully"
}

// Usage returns the command syntax.
func (c *StatusCommand) Usage() string { return c.name }

// Execute returns the fixed result.
func (c *StatusCommand) Execute(in *input.Input, _ *session.Session) error {
	if err := in.Done(); err != nil {
		return err
	}
	return c.result
}

// QuitCommand sets the session's quit flag.
type QuitCommand struct{}

// Name returns "quit".
func (c *QuitCommand) Name() string { return "quit" }

// Description returns a brief description of the command.
func (c *QuitCommand) Description() string { return "End the session" }

// Usage returns the command syntax.
func (c *QuitCommand) Usage() string { return "quit" }

// Execute requests shutdown.
func (c *QuitCommand) Execute(in *input.Input, sess *session.Session) error {
	if err := in.Done(); err != nil {
		return err
	}
	sess.RequestQuit()
	return nil
}

// ListCommandsCommand prints every registered command name.
type ListCommandsCommand struct{}

// Name returns "list_commands".
func (c *ListCommandsCommand) Name() string { return "list_commands" }

// Description returns a brief description of the command.
func (c *ListCommandsCommand) Description() string { return "List all command names" }

// Usage returns the command syntax.
func (c *ListCommandsCommand) Usage() string { return "list_commands" }

// Execute prints one name per line, sorted.
func (c *ListCommandsCommand) Execute(in *input.Input, sess *session.Session) error {
	if err := in.Done(); err != nil {
		return err
	}
	for _, name := range commands.GetGlobalRegistry().Names() {
		sess.Out().Println(name)
	}
	return nil
}

// HelpCommand prints the usage and description of one command.
type HelpCommand struct{}

// Name returns "help".
func (c *HelpCommand) Name() string { return "help" }

// Description returns a brief description of the command.
func (c *HelpCommand) Description() string { return "Show usage of a command" }

// Usage returns the command syntax.
func (c *HelpCommand) Usage() string { return "help COMMAND" }

// Execute looks the command up in the global registry.
func (c *HelpCommand) Execute(in *input.Input, sess *session.Session) error {
	var name string
	if err := in.Scan(&name); err != nil {
		return err
	}
	if err := in.Done(); err != nil {
		return err
	}
	cmd, ok := commands.GetGlobalRegistry().Get(name)
	if !ok {
		return fmt.Errorf("%w: \"%s\"", commands.ErrUnknownCommand, name)
	}
	sess.Out().Println(cmd.Usage())
	sess.Out().Info(cmd.Description())
	return nil
}

// VersionCommand prints the version line.
type VersionCommand struct{}

// Name returns "version".
func (c *VersionCommand) Name() string { return "version" }

// Description returns a brief description of the command.
func (c *VersionCommand) Description() string { return "Print version information" }

// Usage returns the command syntax.
func (c *VersionCommand) Usage() string { return "version" }

// Execute prints the formatted version.
func (c *VersionCommand) Execute(in *input.Input, sess *session.Session) error {
	if err := in.Done(); err != nil {
		return err
	}
	sess.Out().Println(version.GetFormattedVersion())
	return nil
}

func init() {
	for _, cmd := range []commands.Command{
		&EchoCommand{},
		&StatusCommand{name: "true"},
		&StatusCommand{name: "false", result: commands.ErrFailed},
		&QuitCommand{},
		&ListCommandsCommand{},
		&HelpCommand{},
		&VersionCommand{},
	} {
		if err := commands.GetGlobalRegistry().Register(cmd); err != nil {
			panic(fmt.Sprintf("failed to register %s command: %v", cmd.Name(), err))
		}
	}
}
