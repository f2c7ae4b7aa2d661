package builtin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"treectl/internal/commands"
	"treectl/internal/objtree"
	"treectl/internal/session"
	"treectl/internal/testutils"
	"treectl/pkg/treetypes"
)

func run(t *testing.T, sess *session.Session, argv ...string) error {
	t.Helper()
	return commands.GetGlobalRegistry().Execute(argv, sess)
}

func TestGetAttr(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "get_attr", "settings.frame_gap"))
	assert.Equal(t, []string{"5"}, buffer.Lines())

	err := run(t, sess, "get_attr")
	assert.ErrorIs(t, err, treetypes.ErrExhausted)

	err = run(t, sess, "get_attr", "settings.frame_gap", "extra")
	assert.ErrorIs(t, err, treetypes.ErrTrailingArguments)

	err = run(t, sess, "get_attr", "settings.nope")
	assert.ErrorIs(t, err, objtree.ErrNoSuchAttribute)
	assert.Equal(t, commands.StatusSettingNotFound, commands.ExitStatus(err))
}

func TestSetAttr(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "set_attr", "settings.frame_gap", "12"))
	require.NoError(t, run(t, sess, "set_attr", "settings.focus_follows_mouse", "on"))
	require.NoError(t, run(t, sess, "set_attr", "settings.default_direction", "left"))

	require.NoError(t, run(t, sess, "get_attr", "settings.frame_gap"))
	require.NoError(t, run(t, sess, "get_attr", "settings.focus_follows_mouse"))
	require.NoError(t, run(t, sess, "get_attr", "settings.default_direction"))
	assert.Equal(t, []string{"12", "true", "left"}, buffer.Lines())
}

func TestSetAttr_Errors(t *testing.T) {
	sess, _ := testutils.NewSession()

	err := run(t, sess, "set_attr", "settings.frame_gap", "12a")
	assert.ErrorIs(t, err, treetypes.ErrInvalidArgument)
	assert.Equal(t, `set_attr: invalid integer "12a"`, err.Error())

	err = run(t, sess, "set_attr", "settings.window_gap", "-1")
	assert.ErrorIs(t, err, treetypes.ErrInvalidArgument)

	err = run(t, sess, "set_attr", "settings.frame_gap", "99999999999999999999")
	assert.ErrorIs(t, err, treetypes.ErrOutOfRange)

	err = run(t, sess, "set_attr", "settings.default_direction", "xyz")
	assert.ErrorIs(t, err, treetypes.ErrInvalidArgument)

	err = run(t, sess, "set_attr", "monitors.count", "2")
	assert.ErrorIs(t, err, objtree.ErrReadOnly)
	assert.Equal(t, commands.StatusForbidden, commands.ExitStatus(err))

	err = run(t, sess, "set_attr", "settings.frame_gap")
	assert.ErrorIs(t, err, treetypes.ErrExhausted)
	assert.Equal(t, commands.StatusNeedMoreArguments, commands.ExitStatus(err))
}

func TestSetAttr_ToggleUsesCurrentValue(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "set_attr", "settings.raise_on_focus", "toggle"))
	require.NoError(t, run(t, sess, "get_attr", "settings.raise_on_focus"))
	assert.Equal(t, []string{"true"}, buffer.Lines())
}

func TestToggle(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "toggle", "settings.focus_follows_mouse"))
	require.NoError(t, run(t, sess, "get_attr", "settings.focus_follows_mouse"))
	require.NoError(t, run(t, sess, "toggle", "settings.focus_follows_mouse"))
	require.NoError(t, run(t, sess, "get_attr", "settings.focus_follows_mouse"))
	assert.Equal(t, []string{"true", "false"}, buffer.Lines())

	err := run(t, sess, "toggle", "settings.frame_gap")
	assert.ErrorIs(t, err, treetypes.ErrInvalidArgument)
}

func TestAttr(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "attr"))
	assert.Equal(t, []string{"settings.", "monitors."}, buffer.Lines())

	buffer.Reset()
	require.NoError(t, run(t, sess, "attr", "."))
	assert.Equal(t, []string{"settings.", "monitors."}, buffer.Lines())

	buffer.Reset()
	require.NoError(t, run(t, sess, "attr", "monitors"))
	assert.Equal(t, []string{"uint      - count = 1"}, buffer.Lines())

	buffer.Reset()
	require.NoError(t, run(t, sess, "attr", "settings.snap_distance", "3"))
	require.NoError(t, run(t, sess, "attr", "settings.snap_distance"))
	assert.Equal(t, []string{"3"}, buffer.Lines())

	err := run(t, sess, "attr", "settings", "3")
	assert.ErrorIs(t, err, objtree.ErrNoSuchAttribute)

	err = run(t, sess, "attr", "settings.snap_distance", "-3")
	assert.ErrorIs(t, err, treetypes.ErrOutOfRange)

	err = run(t, sess, "attr", "a", "b", "c")
	assert.ErrorIs(t, err, treetypes.ErrTrailingArguments)
}

func TestDump(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "dump", "settings"))

	var parsed map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(buffer.String()), &parsed))
	assert.Equal(t, "vertical", parsed["default_frame_layout"])
	assert.Equal(t, "right", parsed["default_direction"])

	err := run(t, sess, "dump", "missing")
	assert.ErrorIs(t, err, objtree.ErrNoSuchObject)
}

func TestEcho(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "echo", "hello", "", "world"))
	require.NoError(t, run(t, sess, "echo"))
	assert.Equal(t, []string{"hello  world", ""}, buffer.Lines())
}

func TestTrueFalse(t *testing.T) {
	sess, _ := testutils.NewSession()

	assert.NoError(t, run(t, sess, "true"))

	err := run(t, sess, "false")
	assert.ErrorIs(t, err, commands.ErrFailed)
	assert.Equal(t, commands.StatusUnknownError, commands.ExitStatus(err))

	err = run(t, sess, "true", "x")
	assert.ErrorIs(t, err, treetypes.ErrTrailingArguments)
}

func TestQuit(t *testing.T) {
	sess, _ := testutils.NewSession()

	err := run(t, sess, "quit", "now")
	assert.ErrorIs(t, err, treetypes.ErrTrailingArguments)
	assert.False(t, sess.AboutToQuit(), "failed invocation has no side effects")

	require.NoError(t, run(t, sess, "quit"))
	assert.True(t, sess.AboutToQuit())
}

func TestListCommands(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "list_commands"))
	lines := buffer.Lines()
	for _, name := range []string{"attr", "dump", "echo", "get_attr", "set_attr", "toggle", "quit", "version"} {
		assert.Contains(t, lines, name)
	}
	assert.True(t, strings.Compare(lines[0], lines[len(lines)-1]) < 0)
}

func TestHelp(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "help", "set_attr"))
	assert.Equal(t, []string{"set_attr PATH VALUE", "Assign a new value to an attribute"}, buffer.Lines())

	err := run(t, sess, "help", "nope")
	assert.ErrorIs(t, err, commands.ErrUnknownCommand)
}

func TestVersion(t *testing.T) {
	sess, buffer := testutils.NewSession()

	require.NoError(t, run(t, sess, "version"))
	assert.Contains(t, buffer.String(), "treectl v")
}
