// Package builtin contains the commands every treectl session provides.
// Commands register themselves with the global registry in init.
package builtin

import (
	"fmt"

	"treectl/internal/arglist"
	"treectl/internal/commands"
	"treectl/internal/convert"
	"treectl/internal/input"
	"treectl/internal/logger"
	"treectl/internal/objtree"
	"treectl/internal/session"
)

func splitPath(text string) *arglist.Path {
	return arglist.SplitPath(text, arglist.DefaultPathDelimiter)
}

func changeAttribute(sess *session.Session, path string, value string) error {
	attr, err := sess.Root().ResolveAttribute(splitPath(path))
	if err != nil {
		return err
	}
	old := attr.Text()
	if err := attr.Change(value); err != nil {
		return err
	}
	logger.AttributeChange(path, old, attr.Text())
	return nil
}

func listObject(sess *session.Session, obj *objtree.Object) {
	out := sess.Out()
	for _, child := range obj.Children() {
		out.Object(child.Name())
	}
	for _, attr := range obj.Attributes() {
		out.Attribute(attr.Type(), attr.Name(), attr.Text(), attr.Writable())
	}
}

// GetAttrCommand implements "get_attr PATH".
type GetAttrCommand struct{}

// Name returns "get_attr".
func (c *GetAttrCommand) Name() string {
	return "get_attr"
}

// Description returns a brief description of the command.
func (c *GetAttrCommand) Description() string {
	return "Print the value of an attribute"
}

// Usage returns the command syntax.
func (c *GetAttrCommand) Usage() string {
	return "get_attr PATH"
}

// Execute prints the attribute's canonical text.
func (c *GetAttrCommand) Execute(in *input.Input, sess *session.Session) error {
	var path string
	if err := input.Read(in, convert.Text, &path); err != nil {
		return err
	}
	if err := in.Done(); err != nil {
		return err
	}

	attr, err := sess.Root().ResolveAttribute(splitPath(path))
	if err != nil {
		return err
	}
	sess.Out().Println(attr.Text())
	return nil
}

// SetAttrCommand implements "set_attr PATH VALUE".
type SetAttrCommand struct{}

// Name returns "set_attr".
func (c *SetAttrCommand) Name() string {
	return "set_attr"
}

// Description returns a brief description of the command.
func (c *SetAttrCommand) Description() string {
	return "Assign a new value to an attribute"
}

// Usage returns the command syntax.
func (c *SetAttrCommand) Usage() string {
	return "set_attr PATH VALUE"
}

// Execute parses VALUE with the attribute's own converter, relative to its
// current value.
func (c *SetAttrCommand) Execute(in *input.Input, sess *session.Session) error {
	var path, value string
	if err := in.Scan(&path, &value); err != nil {
		return err
	}
	if err := in.Done(); err != nil {
		return err
	}
	return changeAttribute(sess, path, value)
}

// ToggleCommand implements "toggle PATH" for boolean attributes.
type ToggleCommand struct{}

// Name returns "toggle".
func (c *ToggleCommand) Name() string {
	return "toggle"
}

// Description returns a brief description of the command.
func (c *ToggleCommand) Description() string {
	return "Negate a boolean attribute"
}

// Usage returns the command syntax.
func (c *ToggleCommand) Usage() string {
	return "toggle PATH"
}

// Execute flips the attribute. Non-boolean attributes reject the keyword
// through their own converter.
func (c *ToggleCommand) Execute(in *input.Input, sess *session.Session) error {
	var path string
	if err := input.Read(in, convert.Text, &path); err != nil {
		return err
	}
	if err := in.Done(); err != nil {
		return err
	}
	return changeAttribute(sess, path, convert.ToggleKeyword)
}

// AttrCommand implements "attr [PATH [VALUE]]".
type AttrCommand struct{}

// Name returns "attr".
func (c *AttrCommand) Name() string {
	return "attr"
}

// Description returns a brief description of the command.
func (c *AttrCommand) Description() string {
	return "List an object, print an attribute, or set an attribute"
}

// Usage returns the command syntax.
func (c *AttrCommand) Usage() string {
	return "attr [PATH [VALUE]]"
}

// Execute lists the object at PATH (the root when omitted). If PATH names an
// attribute, its value is printed, or replaced when VALUE is given.
func (c *AttrCommand) Execute(in *input.Input, sess *session.Session) error {
	var path string
	if in.Remaining() > 0 {
		if err := input.Read(in, convert.Text, &path); err != nil {
			return err
		}
	}

	var value string
	hasValue := in.Remaining() > 0
	if hasValue {
		if err := input.Read(in, convert.Text, &value); err != nil {
			return err
		}
	}
	if err := in.Done(); err != nil {
		return err
	}

	if obj, err := sess.Root().Resolve(splitPath(path)); err == nil {
		if hasValue {
			return fmt.Errorf("%w: \"%s\" is an object", objtree.ErrNoSuchAttribute, path)
		}
		listObject(sess, obj)
		return nil
	}

	if hasValue {
		return changeAttribute(sess, path, value)
	}
	attr, err := sess.Root().ResolveAttribute(splitPath(path))
	if err != nil {
		return err
	}
	sess.Out().Println(attr.Text())
	return nil
}

// DumpCommand implements "dump [PATH]".
type DumpCommand struct{}

// Name returns "dump".
func (c *DumpCommand) Name() string {
	return "dump"
}

// Description returns a brief description of the command.
func (c *DumpCommand) Description() string {
	return "Print an object subtree as YAML"
}

// Usage returns the command syntax.
func (c *DumpCommand) Usage() string {
	return "dump [PATH]"
}

// Execute renders the subtree at PATH.
func (c *DumpCommand) Execute(in *input.Input, sess *session.Session) error {
	var path string
	if in.Remaining() > 0 {
		if err := input.Read(in, convert.Text, &path); err != nil {
			return err
		}
	}
	if err := in.Done(); err != nil {
		return err
	}

	obj, err := sess.Root().Resolve(splitPath(path))
	if err != nil {
		return err
	}
	data, err := obj.DumpYAML()
	if err != nil {
		return err
	}
	sess.Out().Println(string(data))
	return nil
}

func init() {
	for _, cmd := range []commands.Command{
		&GetAttrCommand{},
		&SetAttrCommand{},
		&ToggleCommand{},
		&AttrCommand{},
		&DumpCommand{},
	} {
		if err := commands.GetGlobalRegistry().Register(cmd); err != nil {
			panic(fmt.Sprintf("failed to register %s command: %v", cmd.Name(), err))
		}
	}
}
