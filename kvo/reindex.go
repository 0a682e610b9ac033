package kvo

// propagateOffset prepares the attribute's whole downstream subtree for
// a merge that will append its cell's table after off existing entries.
// It shifts the attribute's own selfIndex, then pre-order recurses into
// every live entry its proxyIndices point at so chained observers shift
// their own downstream indices too, and finally shifts the stored
// proxyIndices themselves. It runs strictly before the physical
// concatenation so every stored index is correct once the tables are
// joined. Tombstoned positions are skipped: there is no owner to
// recurse into, and the position itself moves with the table.
func propagateOffset(o *Object, key string, off int) {
	d := o.attrs[key].desc
	d.selfIndex += off
	c := o.sys.cell(d.cell)
	for _, pi := range d.proxyIndices {
		e := c.table[pi]
		if e.live() {
			propagateOffset(e.owner, e.key, off)
		}
	}
	for i := range d.proxyIndices {
		d.proxyIndices[i] += off
	}
}
