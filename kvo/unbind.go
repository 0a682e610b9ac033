package kvo

import "fmt"

// Unbind detaches key from its group. The attribute's table entry is
// tombstoned in place so every index stored by other members stays
// valid, and the slot reverts to Plain carrying the cell's current
// value. No notifications fire. When the last live entry of a cell is
// tombstoned the cell is released; its table is never compacted while
// any member remains.
//
// Returns ErrNotBound if key is Plain or undeclared.
func (o *Object) Unbind(key string) error {
	s, ok := o.attrs[key]
	if !ok || !s.bound {
		return fmt.Errorf("unbind %q: %w", key, ErrNotBound)
	}
	id := s.desc.cell
	c := o.sys.cell(id)
	c.table[s.desc.selfIndex] = entry{}
	*s = slot{value: c.value}

	for _, e := range c.table {
		if e.live() {
			return nil
		}
	}
	o.sys.release(id)
	return nil
}
