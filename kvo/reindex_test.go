package kvo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// appending a two-member group after a two-member table shifts the
// whole source subtree by the target's prior table length
func TestMergeOffsetsSourceSubtree(t *testing.T) {
	sys := NewSystem(nil)

	p, q := sys.NewObject(), sys.NewObject()
	require.NoError(t, p.Define("v", 0))
	require.NoError(t, q.BindTo("v", p, "", false))

	x, y := sys.NewObject(), sys.NewObject()
	require.NoError(t, x.Define("v", 0))
	require.NoError(t, y.BindTo("v", x, "", false))

	require.NoError(t, x.BindTo("v", p, "", false))

	pd := p.attrs["v"].desc
	qd := q.attrs["v"].desc
	xd := x.attrs["v"].desc
	yd := y.attrs["v"].desc

	assert.Equal(t, 0, pd.selfIndex)
	assert.Equal(t, 1, qd.selfIndex)
	assert.Equal(t, 2, xd.selfIndex)
	assert.Equal(t, 3, yd.selfIndex)

	// p chained q directly and x's whole group at position 2; x still
	// chains y, offset to its merged position
	assert.Equal(t, []int{1, 2}, pd.proxyIndices)
	assert.Equal(t, []int{3}, xd.proxyIndices)
	assert.Empty(t, qd.proxyIndices)
	assert.Empty(t, yd.proxyIndices)

	// everyone references the single canonical cell
	for _, d := range []*descriptor{pd, qd, xd, yd} {
		assert.Equal(t, pd.cell, d.cell)
	}
	tbl := sys.cell(pd.cell).table
	require.Len(t, tbl, 4)
	for i, d := range []*descriptor{pd, qd, xd, yd} {
		assert.Equal(t, i, tbl[i].owner.attrs[tbl[i].key].desc.selfIndex)
		assert.Equal(t, i, d.selfIndex)
	}
}

// a three-deep chain shifts transitively: the middle attribute's own
// downstream indices move along with it
func TestDeepChainOffsets(t *testing.T) {
	sys := NewSystem(nil)

	a, b, c := sys.NewObject(), sys.NewObject(), sys.NewObject()
	require.NoError(t, b.Define("v", 0))
	require.NoError(t, c.Define("v", 0))
	require.NoError(t, a.BindTo("v", b, "", false))
	require.NoError(t, b.BindTo("v", c, "", false))

	cd := c.attrs["v"].desc
	bd := b.attrs["v"].desc
	ad := a.attrs["v"].desc

	assert.Equal(t, 0, cd.selfIndex)
	assert.Equal(t, 1, bd.selfIndex)
	assert.Equal(t, 2, ad.selfIndex)
	assert.Equal(t, []int{1}, cd.proxyIndices)
	assert.Equal(t, []int{2}, bd.proxyIndices)

	// the abandoned source cell is released from the arena
	assert.Len(t, c.GroupMembers("v"), 3)
}
