package kvo

// cellID is an opaque handle into a System's cell arena. The zero id is
// never allocated; a descriptor carries it only between its promotion
// and the join loop that canonicalizes it onto the target's cell.
type cellID uint32

// entry is one row of a cell's observer table: the object+attribute
// pair aliasing the cell's value. A zeroed entry is a tombstone whose
// position is kept so indices stored elsewhere stay valid.
type entry struct {
	owner *Object
	key   string
}

func (e entry) live() bool {
	return e.owner != nil
}

// cell is the canonical holder of a bound value and the ordered table
// of every attribute currently aliasing it. Position 0 belongs to the
// attribute that was most recently the merge target.
type cell struct {
	value any
	table []entry
}

// descriptor is the per-attribute metadata of a Bound slot.
type descriptor struct {
	// own position within the cell's table
	selfIndex int
	// table positions, within the same cell once merged, of observers
	// chained downstream of this attribute
	proxyIndices []int
	cell         cellID
}

// slot is a tagged attribute value: Plain carries value, Bound carries
// desc and delegates its value to desc's cell.
type slot struct {
	bound bool
	value any
	desc  *descriptor
}
