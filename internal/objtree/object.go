// Package objtree holds a small in-memory object tree whose leaves are typed
// attributes. Commands address objects and attributes by dotted paths.
package objtree

import (
	"errors"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"treectl/internal/arglist"
)

// Lookup errors.
var (
	ErrNoSuchObject    = errors.New("no such object")
	ErrNoSuchAttribute = errors.New("no such attribute")
	ErrReadOnly        = errors.New("attribute is read-only")
	ErrDuplicate       = errors.New("name already in use")
)

// Object is a node of the tree. Children and attributes keep their
// insertion order for listing.
type Object struct {
	mu         sync.RWMutex
	name       string
	children   map[string]*Object
	childOrder []string
	attrs      map[string]Attribute
	attrOrder  []string
}

// NewObject creates an empty object.
func NewObject(name string) *Object {
	return &Object{
		name:     name,
		children: make(map[string]*Object),
		attrs:    make(map[string]Attribute),
	}
}

// Name returns the object's name within its parent.
func (o *Object) Name() string {
	return o.name
}

// AddChild attaches child under its own name.
func (o *Object) AddChild(child *Object) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.taken(child.name) {
		return fmt.Errorf("%w: %s", ErrDuplicate, child.name)
	}
	o.children[child.name] = child
	o.childOrder = append(o.childOrder, child.name)
	return nil
}

// AddAttribute attaches attr under its own name.
func (o *Object) AddAttribute(attr Attribute) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.taken(attr.Name()) {
		return fmt.Errorf("%w: %s", ErrDuplicate, attr.Name())
	}
	o.attrs[attr.Name()] = attr
	o.attrOrder = append(o.attrOrder, attr.Name())
	return nil
}

func (o *Object) taken(name string) bool {
	_, isChild := o.children[name]
	_, isAttr := o.attrs[name]
	return isChild || isAttr
}

// Child returns the direct child with the given name.
func (o *Object) Child(name string) (*Object, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	child, ok := o.children[name]
	return child, ok
}

// Attribute returns the attribute with the given name.
func (o *Object) Attribute(name string) (Attribute, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	attr, ok := o.attrs[name]
	return attr, ok
}

// Children returns the direct children in insertion order.
func (o *Object) Children() []*Object {
	o.mu.RLock()
	defer o.mu.RUnlock()

	children := make([]*Object, 0, len(o.childOrder))
	for _, name := range o.childOrder {
		children = append(children, o.children[name])
	}
	return children
}

// Attributes returns the attributes in insertion order.
func (o *Object) Attributes() []Attribute {
	o.mu.RLock()
	defer o.mu.RUnlock()

	attrs := make([]Attribute, 0, len(o.attrOrder))
	for _, name := range o.attrOrder {
		attrs = append(attrs, o.attrs[name])
	}
	return attrs
}

// Resolve walks every remaining component of path from o.
func (o *Object) Resolve(path *arglist.Path) (*Object, error) {
	cur := o
	var walked []string
	for path.Remaining() > 0 {
		name, _ := path.Shift()
		walked = append(walked, name)
		child, ok := cur.Child(name)
		if !ok {
			return nil, fmt.Errorf("%w: \"%s\"", ErrNoSuchObject, arglist.New(walked).String())
		}
		cur = child
	}
	return cur, nil
}

// ResolveAttribute walks all but the last component as objects and looks
// the last one up as an attribute.
func (o *Object) ResolveAttribute(path *arglist.Path) (Attribute, error) {
	tokens := path.Rest()
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrNoSuchAttribute)
	}
	owner, err := o.Resolve(arglist.New(tokens[:len(tokens)-1]))
	if err != nil {
		return nil, err
	}
	name := tokens[len(tokens)-1]
	attr, ok := owner.Attribute(name)
	if !ok {
		return nil, fmt.Errorf("%w: \"%s\"", ErrNoSuchAttribute, arglist.New(tokens).String())
	}
	return attr, nil
}

// Dump returns the subtree as nested maps of attribute texts.
func (o *Object) Dump() map[string]any {
	out := make(map[string]any)
	for _, attr := range o.Attributes() {
		out[attr.Name()] = attr.Text()
	}
	for _, child := range o.Children() {
		out[child.Name()] = child.Dump()
	}
	return out
}

// DumpYAML renders Dump as YAML. Keys are sorted.
func (o *Object) DumpYAML() ([]byte, error) {
	data, err := yaml.Marshal(o.Dump())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal object tree: %w", err)
	}
	return data, nil
}
