// Package arglist provides the ordered token sequence shared by command
// arguments and object-tree paths.
package arglist

import (
	"fmt"
	"slices"
	"strings"

	"treectl/pkg/treetypes"
)

// DefaultPathDelimiter separates the components of an object-tree path.
const DefaultPathDelimiter = '.'

// ArgList is an ordered, read-only sequence of tokens with a cursor for
// sequential extraction. Shift advances the cursor; the tokens themselves
// never change after construction.
type ArgList struct {
	tokens []string
	pos    int
}

// Path is an ArgList read as the components of an object-tree path.
type Path = ArgList

// New creates an ArgList holding a copy of tokens.
func New(tokens []string) *ArgList {
	return &ArgList{tokens: slices.Clone(tokens)}
}

// SplitPath splits s on delim. A single trailing delimiter is ignored, so
// "settings." and "settings" are the same path and "" and "." are both the
// root. Interior empty components are kept.
func SplitPath(s string, delim rune) *Path {
	s = strings.TrimSuffix(s, string(delim))
	if s == "" {
		return New(nil)
	}
	return New(strings.Split(s, string(delim)))
}

// Size returns the total number of tokens, regardless of the cursor.
func (a *ArgList) Size() int {
	return len(a.tokens)
}

// At returns the token at index i.
func (a *ArgList) At(i int) (string, error) {
	if i < 0 || i >= len(a.tokens) {
		return "", fmt.Errorf("%w: index %d, size %d", treetypes.ErrIndexOutOfRange, i, len(a.tokens))
	}
	return a.tokens[i], nil
}

// Shift returns the token under the cursor and advances the cursor.
func (a *ArgList) Shift() (string, error) {
	if a.pos >= len(a.tokens) {
		return "", treetypes.ErrExhausted
	}
	tok := a.tokens[a.pos]
	a.pos++
	return tok, nil
}

// Peek returns the token under the cursor without advancing.
func (a *ArgList) Peek() (string, bool) {
	if a.pos >= len(a.tokens) {
		return "", false
	}
	return a.tokens[a.pos], true
}

// Remaining returns how many tokens Shift can still return.
func (a *ArgList) Remaining() int {
	return len(a.tokens) - a.pos
}

// Rest returns a copy of the tokens not yet shifted.
func (a *ArgList) Rest() []string {
	return slices.Clone(a.tokens[a.pos:])
}

// Tokens returns a copy of all tokens.
func (a *ArgList) Tokens() []string {
	return slices.Clone(a.tokens)
}

// Reset moves the cursor back to the first token.
func (a *ArgList) Reset() {
	a.pos = 0
}

// Equal compares tokens positionally and exactly. The cursor is ignored.
func (a *ArgList) Equal(other *ArgList) bool {
	if other == nil {
		return false
	}
	return slices.Equal(a.tokens, other.tokens)
}

// Join concatenates all tokens with sep.
func (a *ArgList) Join(sep string) string {
	return strings.Join(a.tokens, sep)
}

// String renders the sequence as a dotted path.
func (a *ArgList) String() string {
	return a.Join(string(DefaultPathDelimiter))
}
