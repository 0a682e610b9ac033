package kvo

import "fmt"

// ChangedFunc observes one attribute: it is invoked with the effective
// value after every change of that attribute, whether the write came
// through this object or through any other member of the same group.
type ChangedFunc func(value any) error

// Object is a mutable string-keyed attribute bag. Attributes are
// declared with Define, read with Get, written with Set and aliased
// across objects with BindTo.
type Object struct {
	sys      *System
	attrs    map[string]*slot
	handlers map[string]ChangedFunc
}

func (s *System) NewObject() *Object {
	return &Object{
		sys:      s,
		attrs:    map[string]*slot{},
		handlers: map[string]ChangedFunc{},
	}
}

// Define declares key with an initial value, or overwrites the value of
// an existing Plain attribute. Defining over a Bound attribute is
// rejected: the slot's metadata is shared state of its whole group.
func (o *Object) Define(key string, value any) error {
	if s, ok := o.attrs[key]; ok {
		if s.bound {
			return fmt.Errorf("define %q: %w", key, ErrBound)
		}
		s.value = value
		return nil
	}
	o.attrs[key] = &slot{value: value}
	return nil
}

func (o *Object) Has(key string) bool {
	_, ok := o.attrs[key]
	return ok
}

// IsBound reports whether key currently delegates to a shared cell.
func (o *Object) IsBound(key string) bool {
	s, ok := o.attrs[key]
	return ok && s.bound
}

// OnChanged registers fn as the change callback for key, replacing any
// previous registration. A nil fn unregisters.
func (o *Object) OnChanged(key string, fn ChangedFunc) {
	if fn == nil {
		delete(o.handlers, key)
		return
	}
	o.handlers[key] = fn
}
