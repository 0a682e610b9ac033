package kvo

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Member identifies one attribute participating in a group.
type Member struct {
	Owner *Object
	Key   string
}

// GroupMembers returns the live members aliasing key's cell, in table
// order. A plain or undeclared attribute yields only itself or nil.
func (o *Object) GroupMembers(key string) []Member {
	s, ok := o.attrs[key]
	if !ok {
		return nil
	}
	if !s.bound {
		return []Member{{Owner: o, Key: key}}
	}
	c := o.sys.cell(s.desc.cell)
	members := make([]Member, 0, len(c.table))
	for _, e := range c.table {
		if e.live() {
			members = append(members, Member{Owner: e.owner, Key: e.key})
		}
	}
	return members
}

// DistinctCells counts how many separate shared cells back the given
// attribute references. Plain attributes count one pseudo-cell each.
func DistinctCells(refs ...Member) int {
	cells := mapset.NewSet[*cell]()
	plain := 0
	for _, r := range refs {
		s, ok := r.Owner.attrs[r.Key]
		if !ok || !s.bound {
			plain++
			continue
		}
		cells.Add(r.Owner.sys.cell(s.desc.cell))
	}
	return cells.Cardinality() + plain
}

// TableChecksum digests the shape of key's cell table: live positions,
// owner identities and attribute names. Every member of one group
// reports the same checksum; distinct groups differ. A plain attribute
// reports 0.
func (o *Object) TableChecksum(key string) uint64 {
	s, ok := o.attrs[key]
	if !ok || !s.bound {
		return 0
	}
	c := o.sys.cell(s.desc.cell)
	d := xxhash.New()
	for i, e := range c.table {
		if !e.live() {
			fmt.Fprintf(d, "%d:;", i)
			continue
		}
		fmt.Fprintf(d, "%d:%p:%s;", i, e.owner, e.key)
	}
	return d.Sum64()
}
