package arglist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"treectl/pkg/treetypes"
)

func TestArgList_New_CopiesInput(t *testing.T) {
	src := []string{"a", "b"}
	args := New(src)
	src[0] = "changed"

	tok, err := args.At(0)
	require.NoError(t, err)
	assert.Equal(t, "a", tok)
}

func TestArgList_At(t *testing.T) {
	args := New([]string{"set", "width", "800"})

	assert.Equal(t, 3, args.Size())

	tok, err := args.At(2)
	require.NoError(t, err)
	assert.Equal(t, "800", tok)

	_, err = args.At(3)
	assert.ErrorIs(t, err, treetypes.ErrIndexOutOfRange)

	_, err = args.At(-1)
	assert.ErrorIs(t, err, treetypes.ErrIndexOutOfRange)
}

func TestArgList_Shift(t *testing.T) {
	args := New([]string{"x", "y"})

	tok, err := args.Shift()
	require.NoError(t, err)
	assert.Equal(t, "x", tok)
	assert.Equal(t, 1, args.Remaining())

	peeked, ok := args.Peek()
	assert.True(t, ok)
	assert.Equal(t, "y", peeked)

	tok, err = args.Shift()
	require.NoError(t, err)
	assert.Equal(t, "y", tok)

	_, err = args.Shift()
	assert.ErrorIs(t, err, treetypes.ErrExhausted)

	_, ok = args.Peek()
	assert.False(t, ok)

	// Shifting never mutates the contents
	assert.Equal(t, []string{"x", "y"}, args.Tokens())

	args.Reset()
	assert.Equal(t, 2, args.Remaining())
}

func TestArgList_Rest(t *testing.T) {
	args := New([]string{"a", "b", "c"})
	_, _ = args.Shift()
	assert.Equal(t, []string{"b", "c"}, args.Rest())
}

func TestArgList_Equal(t *testing.T) {
	a := New([]string{"tags", "0"})
	b := New([]string{"tags", "0"})
	c := New([]string{"tags", "0 "})

	_, _ = b.Shift()
	assert.True(t, a.Equal(b), "cursor must not affect equality")
	assert.False(t, a.Equal(c), "tokens are not normalized")
	assert.False(t, a.Equal(nil))
}

func TestSplitPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", []string{}},
		{"lone delimiter", ".", []string{}},
		{"double delimiter", "..", []string{"", ""}},
		{"single", "settings", []string{"settings"}},
		{"nested", "settings.frame_gap", []string{"settings", "frame_gap"}},
		{"trailing delimiter", "settings.", []string{"settings"}},
		{"interior empty", "a..b", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := SplitPath(tt.input, DefaultPathDelimiter)
			assert.Equal(t, len(tt.expected), p.Size())
			if len(tt.expected) > 0 {
				assert.Equal(t, tt.expected, p.Tokens())
			}
		})
	}
}

func TestSplitPath_RootForms(t *testing.T) {
	root := New(nil)
	assert.True(t, SplitPath("", DefaultPathDelimiter).Equal(root))
	assert.True(t, SplitPath(".", DefaultPathDelimiter).Equal(root))
	assert.True(t, SplitPath("/", '/').Equal(root))
}

func TestArgList_String(t *testing.T) {
	assert.Equal(t, "settings.frame_gap", SplitPath("settings.frame_gap", '.').String())
	assert.Equal(t, "a/b", SplitPath("a/b", '/').Join("/"))
}
