package kvo

import "fmt"

// BindTo declares o's key attribute equivalent to target's targetKey
// attribute. An empty targetKey defaults to key. After a successful
// bind both sides (and every attribute bound to either, however deep
// the chain) alias one shared cell holding target's current value; each
// newly joined member whose effective value changed has its change
// callback invoked, in table order. With noNotify the directly joined
// source attribute itself is skipped; members it carried along are
// still notified.
//
// BindTo mutates metadata of other objects: joining a group rewires the
// descriptor of every member carried in by the source side, so no
// participant may assume its own attribute metadata stays untouched
// once anything binds into the same group.
//
// Errors: ErrMissingAttribute if target never declared targetKey,
// ErrAlreadySourced if o's key is already a non-root member of a group.
// Both are raised before any mutation.
func (o *Object) BindTo(key string, target *Object, targetKey string, noNotify bool) error {
	if targetKey == "" {
		targetKey = key
	}
	tslot, ok := target.attrs[targetKey]
	if !ok {
		return fmt.Errorf("bind %q to %q: %w", key, targetKey, ErrMissingAttribute)
	}
	sslot := o.attrs[key]
	if sslot != nil && sslot.bound && sslot.desc.selfIndex != 0 {
		return fmt.Errorf("bind %q to %q: %w", key, targetKey, ErrAlreadySourced)
	}
	// the two sides already alias each other: nothing to do
	if sslot == tslot ||
		(sslot != nil && sslot.bound && tslot.bound && sslot.desc.cell == tslot.desc.cell) {
		return nil
	}

	sys := o.sys

	// promote a plain target to the root of a fresh single-entry cell
	if !tslot.bound {
		id := sys.alloc(tslot.value, entry{target, targetKey})
		*tslot = slot{
			bound: true,
			desc:  &descriptor{selfIndex: 0, cell: id},
		}
	}
	tdesc := tslot.desc
	tcell := sys.cell(tdesc.cell)

	// table length before this call adds anything: the position the
	// source root will occupy, and the offset its subtree shifts by
	n := len(tcell.table)
	tdesc.proxyIndices = append(tdesc.proxyIndices, n)

	var priorValue any
	var abandoned cellID
	if sslot != nil && sslot.bound {
		// merging two groups: shift the source subtree's indices to sit
		// after the target's existing entries, then concatenate. The
		// source's old cell is abandoned, but stays readable until the
		// join loop below has rewired every carried-in descriptor.
		abandoned = sslot.desc.cell
		scell := sys.cell(abandoned)
		priorValue = scell.value
		propagateOffset(o, key, n)
		tcell.table = append(tcell.table, scell.table...)
	} else {
		if sslot == nil {
			// binding an undeclared source declares it
			sslot = &slot{}
			o.attrs[key] = sslot
		}
		priorValue = sslot.value
		*sslot = slot{
			bound: true,
			desc:  &descriptor{selfIndex: n},
		}
		tcell.table = append(tcell.table, entry{o, key})
	}

	// canonicalize every newly joined member onto the target's cell and
	// notify those whose effective value changed
	for i := n; i < len(tcell.table); i++ {
		e := tcell.table[i]
		if !e.live() {
			continue
		}
		e.owner.attrs[e.key].desc.cell = tdesc.cell
		if sameValue(tcell.value, priorValue) {
			continue
		}
		if i == n && noNotify {
			continue
		}
		sys.notify(e.owner, e.key, tcell.value)
	}
	if abandoned != 0 {
		sys.release(abandoned)
	}
	return nil
}
