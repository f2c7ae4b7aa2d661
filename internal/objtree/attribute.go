package objtree

import (
	"fmt"
	"sync"

	"treectl/internal/convert"
)

// Attribute is a named, typed value stored on an Object. Its value is read
// and written as text; the typed representation stays inside.
type Attribute interface {
	Name() string
	// Type returns the short type name shown to users, e.g. "bool".
	Type() string
	// Text returns the canonical rendering of the current value.
	Text() string
	Writable() bool
	// Change parses text relative to the current value and stores the result.
	Change(text string) error
}

// Value is an Attribute holding a T, converted with a convert.Converter[T].
type Value[T any] struct {
	mu       sync.RWMutex
	name     string
	typeName string
	conv     convert.Converter[T]
	value    T
	writable bool
	validate func(T) error
}

// NewValue creates a writable attribute.
func NewValue[T any](name, typeName string, conv convert.Converter[T], initial T) *Value[T] {
	return &Value[T]{
		name:     name,
		typeName: typeName,
		conv:     conv,
		value:    initial,
		writable: true,
	}
}

// Bool creates a writable boolean attribute.
func Bool(name string, initial bool) *Value[bool] {
	return NewValue[bool](name, "bool", convert.Boolean, initial)
}

// Int creates a writable signed integer attribute.
func Int(name string, initial int) *Value[int] {
	return NewValue[int](name, "int", convert.Int, initial)
}

// Uint creates a writable unsigned integer attribute.
func Uint(name string, initial uint64) *Value[uint64] {
	return NewValue[uint64](name, "uint", convert.Ulong, initial)
}

// String creates a writable string attribute.
func String(name string, initial string) *Value[string] {
	return NewValue[string](name, "string", convert.Text, initial)
}

// ReadOnly marks the attribute as not writable through Change.
func (v *Value[T]) ReadOnly() *Value[T] {
	v.writable = false
	return v
}

// WithValidator installs a check that runs on every parsed value before it
// is stored.
func (v *Value[T]) WithValidator(fn func(T) error) *Value[T] {
	v.validate = fn
	return v
}

// Name implements Attribute.
func (v *Value[T]) Name() string {
	return v.name
}

// Type implements Attribute.
func (v *Value[T]) Type() string {
	return v.typeName
}

// Writable implements Attribute.
func (v *Value[T]) Writable() bool {
	return v.writable
}

// Get returns the typed value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores a typed value directly, bypassing the read-only flag but not
// the validator.
func (v *Value[T]) Set(value T) error {
	if v.validate != nil {
		if err := v.validate(value); err != nil {
			return err
		}
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.value = value
	return nil
}

// Text implements Attribute.
func (v *Value[T]) Text() string {
	return v.conv.Text(v.Get())
}

// Change implements Attribute.
func (v *Value[T]) Change(text string) error {
	if !v.writable {
		return fmt.Errorf("%w: %s", ErrReadOnly, v.name)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	current := v.value
	parsed, err := v.conv.Parse(text, &current)
	if err != nil {
		return err
	}
	if v.validate != nil {
		if err := v.validate(parsed); err != nil {
			return err
		}
	}
	v.value = parsed
	return nil
}
