// Package session holds the state shared by the commands of one control
// session: the object tree, the output printer and the quit flag. It is
// passed explicitly to every command instead of living in globals.
package session

import (
	"sync/atomic"

	"github.com/google/uuid"

	"treectl/internal/objtree"
	"treectl/internal/output"
)

// Session is the explicit context handed to command handlers.
type Session struct {
	id          string
	root        *objtree.Object
	out         *output.Printer
	aboutToQuit atomic.Bool
}

// New creates a session. A nil root gets the default tree and a nil
// printer writes to stdout.
func New(root *objtree.Object, out *output.Printer) *Session {
	if root == nil {
		root = objtree.NewDefaultTree()
	}
	if out == nil {
		out = output.NewPrinter()
	}
	return &Session{
		id:   uuid.NewString(),
		root: root,
		out:  out,
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id
}

// Root returns the object tree root.
func (s *Session) Root() *objtree.Object {
	return s.root
}

// Out returns the printer commands write their results to.
func (s *Session) Out() *output.Printer {
	return s.out
}

// RequestQuit sets the quit flag. The shell loop stops after the current
// command.
func (s *Session) RequestQuit() {
	s.aboutToQuit.Store(true)
}

// AboutToQuit reports whether quit was requested.
func (s *Session) AboutToQuit() bool {
	return s.aboutToQuit.Load()
}
