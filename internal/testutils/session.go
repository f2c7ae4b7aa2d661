// Package testutils provides helpers shared by command-level tests.
package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treectl/internal/arglist"
	"treectl/internal/objtree"
	"treectl/internal/output"
	"treectl/internal/session"
)

// NewSession returns a session over a fresh default tree whose printer
// writes plain text into the returned buffer.
func NewSession() (*session.Session, *output.CaptureBuffer) {
	buffer := output.NewCaptureBuffer()
	printer := output.NewPrinter(output.WithWriter(buffer), output.TestMode())
	return session.New(objtree.NewDefaultTree(), printer), buffer
}

// AttributeText returns the text of the attribute at a dotted path,
// failing the test if it cannot be resolved.
func AttributeText(t *testing.T, sess *session.Session, path string) string {
	t.Helper()
	attr, err := sess.Root().ResolveAttribute(arglist.SplitPath(path, arglist.DefaultPathDelimiter))
	require.NoError(t, err, "attribute %s", path)
	return attr.Text()
}
