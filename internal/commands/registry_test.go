package commands

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treectl/internal/convert"
	"treectl/internal/input"
	"treectl/internal/objtree"
	"treectl/internal/output"
	"treectl/internal/session"
	"treectl/pkg/treetypes"
)

// MockCommand implements Command for testing.
type MockCommand struct {
	name        string
	executeFunc func(in *input.Input, sess *session.Session) error
}

func NewMockCommand(name string) *MockCommand {
	return &MockCommand{name: name}
}

func (m *MockCommand) Name() string        { return m.name }
func (m *MockCommand) Description() string { return "Mock command: " + m.name }
func (m *MockCommand) Usage() string       { return m.name }

func (m *MockCommand) Execute(in *input.Input, sess *session.Session) error {
	if m.executeFunc != nil {
		return m.executeFunc(in, sess)
	}
	return nil
}

func newTestSession() *session.Session {
	return session.New(nil, output.NewPrinter(output.WithWriter(output.NewCaptureBuffer()), output.TestMode()))
}

func TestRegistry_Register(t *testing.T) {
	registry := NewRegistry()

	require.NoError(t, registry.Register(NewMockCommand("resize")))

	err := registry.Register(NewMockCommand("resize"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")

	err = registry.Register(NewMockCommand(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be empty")

	cmd, ok := registry.Get("resize")
	assert.True(t, ok)
	assert.Equal(t, "resize", cmd.Name())

	registry.Unregister("resize")
	_, ok = registry.Get("resize")
	assert.False(t, ok)
	registry.Unregister("never-registered")
}

func TestRegistry_Names(t *testing.T) {
	registry := NewRegistry()
	for _, name := range []string{"set_attr", "attr", "echo"} {
		require.NoError(t, registry.Register(NewMockCommand(name)))
	}
	assert.Equal(t, []string{"attr", "echo", "set_attr"}, registry.Names())
}

func TestRegistry_ExecuteExtractsArguments(t *testing.T) {
	registry := NewRegistry()

	var (
		name  string
		width int
	)
	cmd := NewMockCommand("set")
	cmd.executeFunc = func(in *input.Input, _ *session.Session) error {
		if err := input.Read(in, convert.Text, &name); err != nil {
			return err
		}
		if err := input.Read(in, convert.Int, &width); err != nil {
			return err
		}
		return in.Done()
	}
	require.NoError(t, registry.Register(cmd))

	require.NoError(t, registry.Execute([]string{"set", "width", "800"}, newTestSession()))
	assert.Equal(t, "width", name)
	assert.Equal(t, 800, width)

	err := registry.Execute([]string{"set", "width"}, newTestSession())
	assert.ErrorIs(t, err, treetypes.ErrExhausted)
	assert.Contains(t, err.Error(), "set: ")

	err = registry.Execute([]string{"set", "width", "12a"}, newTestSession())
	assert.ErrorIs(t, err, treetypes.ErrInvalidArgument)

	err = registry.Execute([]string{"set", "width", "1", "2"}, newTestSession())
	assert.ErrorIs(t, err, treetypes.ErrTrailingArguments)
}

func TestRegistry_ExecuteErrors(t *testing.T) {
	registry := NewRegistry()

	err := registry.Execute(nil, newTestSession())
	assert.ErrorIs(t, err, treetypes.ErrEmptyCommand)

	err = registry.Execute([]string{"nope"}, newTestSession())
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "nope")
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	registry := NewRegistry()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("cmd%d", i)
			assert.NoError(t, registry.Register(NewMockCommand(name)))
			assert.NoError(t, registry.Execute([]string{name}, newTestSession()))
		}(i)
	}
	wg.Wait()

	assert.Len(t, registry.Names(), 20)
}

func TestExitStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, StatusSuccess},
		{"unknown command", fmt.Errorf("%w: x", ErrUnknownCommand), StatusCommandNotFound},
		{"empty command", treetypes.ErrEmptyCommand, StatusCommandNotFound},
		{"invalid argument", treetypes.NewParseError(treetypes.ErrInvalidArgument, "x", ""), StatusInvalidArgument},
		{"out of range", treetypes.NewParseError(treetypes.ErrOutOfRange, "9", ""), StatusInvalidArgument},
		{"no attribute", fmt.Errorf("get_attr: %w", objtree.ErrNoSuchAttribute), StatusSettingNotFound},
		{"no object", objtree.ErrNoSuchObject, StatusSettingNotFound},
		{"read-only", objtree.ErrReadOnly, StatusForbidden},
		{"trailing", treetypes.ErrTrailingArguments, StatusTooManyArguments},
		{"exhausted", fmt.Errorf("x: %w", treetypes.ErrExhausted), StatusNeedMoreArguments},
		{"other", errors.New("boom"), StatusUnknownError},
		{"false", ErrFailed, StatusUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitStatus(tt.err))
		})
	}
}
