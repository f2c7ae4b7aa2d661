// Package commands provides command registration and dispatch for treectl.
// A command invocation arrives as argv; the registry wraps it in an
// input.Input, resolves the command name and hands the rest to the handler.
package commands

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"treectl/internal/input"
	"treectl/internal/logger"
	"treectl/internal/session"
)

// ErrUnknownCommand is returned when no command is registered under the
// requested name.
var ErrUnknownCommand = errors.New("command not found")

// Command is a named handler that reads its arguments from an Input.
// Handlers extract every argument they need, call in.Done() and only then
// perform side effects.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(in *input.Input, sess *session.Session) error
}

// Registry maps command names to handlers. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds cmd. It fails on an empty or duplicate name.
func (r *Registry) Register(cmd Command) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cmd.Name() == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if _, exists := r.commands[cmd.Name()]; exists {
		return fmt.Errorf("command %s already registered", cmd.Name())
	}

	r.commands[cmd.Name()] = cmd
	return nil
}

// Unregister removes a command. Unknown names are ignored.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, name)
}

// Get looks a command up by name.
func (r *Registry) Get(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[name]
	return cmd, exists
}

// Names returns all registered command names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs the command named by argv[0] with the remaining tokens as
// arguments. Errors are prefixed with the command name.
func (r *Registry) Execute(argv []string, sess *session.Session) error {
	in := input.FromStrings(argv...)

	name, err := in.Command()
	if err != nil {
		return err
	}

	cmd, exists := r.Get(name)
	if !exists {
		return fmt.Errorf("%w: \"%s\"", ErrUnknownCommand, name)
	}

	id := uuid.NewString()
	logger.CommandExecution(id, name, in.Args())

	if err := cmd.Execute(in, sess); err != nil {
		logger.Debug("Command failed", "id", id, "command", name, "error", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

var globalRegistry = NewRegistry()

// GetGlobalRegistry returns the registry built-in commands register into.
func GetGlobalRegistry() *Registry {
	return globalRegistry
}
