package kvo

import (
	"fmt"
	"reflect"
)

// Get returns the effective value of key: the shared cell's value for a
// bound attribute, the raw slot value for a plain one, nil for a key
// never declared. Get never fails and has no side effects.
func (o *Object) Get(key string) any {
	s, ok := o.attrs[key]
	if !ok {
		return nil
	}
	if s.bound {
		return o.sys.cell(s.desc.cell).value
	}
	return s.value
}

// Set writes value through key. Writing an unchanged value is a no-op
// unless forceCallback is set. On change through a bound attribute the
// shared cell is updated and every live member of its table is
// notified in table order; through a plain attribute only this object's
// own callback fires. Callbacks run synchronously inside Set and may
// re-enter the engine; a reentrant write can reorder or repeat
// notifications for the outer one.
//
// Returns ErrUndefinedAttribute if key was never declared.
func (o *Object) Set(key string, value any, forceCallback bool) error {
	s, ok := o.attrs[key]
	if !ok {
		return fmt.Errorf("set %q: %w", key, ErrUndefinedAttribute)
	}
	if s.bound {
		c := o.sys.cell(s.desc.cell)
		if sameValue(c.value, value) && !forceCallback {
			return nil
		}
		c.value = value
		for i := 0; i < len(c.table); i++ {
			e := c.table[i]
			if !e.live() {
				continue
			}
			o.sys.notify(e.owner, e.key, value)
		}
		return nil
	}
	if sameValue(s.value, value) && !forceCallback {
		return nil
	}
	s.value = value
	o.sys.notify(o, key, value)
	return nil
}

// sameValue compares with Go equality; values of incomparable types
// always count as changed.
func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !reflect.TypeOf(a).Comparable() || !reflect.TypeOf(b).Comparable() {
		return false
	}
	return a == b
}
