package kvo_test

import (
	"testing"

	"github.com/delaneyj/bindparty/kvo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unbinding keeps the detached side's last value and stops propagation
// to it, without disturbing the remaining members
func TestUnbindDetaches(t *testing.T) {
	sys := newSystem(t)

	a, b, c := sys.NewObject(), sys.NewObject(), sys.NewObject()
	require.NoError(t, b.Define("v", 0))
	require.NoError(t, c.Define("v", 0))
	require.NoError(t, a.BindTo("v", b, "", false))
	require.NoError(t, b.BindTo("v", c, "", false))

	require.NoError(t, c.Set("v", 1, false))
	require.NoError(t, a.Unbind("v"))
	assert.False(t, a.IsBound("v"))
	assert.Equal(t, 1, a.Get("v"))

	aCalls := 0
	a.OnChanged("v", func(v any) error {
		aCalls++
		return nil
	})

	require.NoError(t, c.Set("v", 2, false))
	assert.Equal(t, 0, aCalls)
	assert.Equal(t, 1, a.Get("v"))
	assert.Equal(t, 2, b.Get("v"))
	assert.Equal(t, 2, c.Get("v"))
	assert.Len(t, c.GroupMembers("v"), 2)
}

// a group with a tombstone still merges correctly into a larger group
func TestMergeAfterUnbind(t *testing.T) {
	sys := newSystem(t)

	a, b, c := sys.NewObject(), sys.NewObject(), sys.NewObject()
	require.NoError(t, b.Define("v", 0))
	require.NoError(t, c.Define("v", 0))
	require.NoError(t, a.BindTo("v", b, "", false))
	require.NoError(t, b.BindTo("v", c, "", false))
	require.NoError(t, a.Unbind("v"))

	d := sys.NewObject()
	require.NoError(t, d.Define("v", 9))
	require.NoError(t, c.BindTo("v", d, "", false))

	for _, o := range []*kvo.Object{b, c, d} {
		assert.Equal(t, 9, o.Get("v"))
	}
	require.NoError(t, b.Set("v", 10, false))
	for _, o := range []*kvo.Object{b, c, d} {
		assert.Equal(t, 10, o.Get("v"))
	}
	assert.Equal(t, 1, a.Get("v"))
}

// unbinding the last live member releases the group entirely
func TestUnbindLastMember(t *testing.T) {
	sys := newSystem(t)

	target := sys.NewObject()
	require.NoError(t, target.Define("v", "x"))

	src := sys.NewObject()
	require.NoError(t, src.BindTo("v", target, "", false))

	require.NoError(t, src.Unbind("v"))
	require.NoError(t, target.Unbind("v"))
	assert.False(t, src.IsBound("v"))
	assert.False(t, target.IsBound("v"))
	assert.Equal(t, "x", src.Get("v"))
	assert.Equal(t, "x", target.Get("v"))

	// both sides are plain again and may rebind from scratch
	require.NoError(t, target.Set("v", "y", false))
	require.NoError(t, src.BindTo("v", target, "", false))
	assert.Equal(t, "y", src.Get("v"))
}

// unbinding a plain or undeclared attribute fails
func TestUnbindNotBound(t *testing.T) {
	sys := newSystem(t)

	o := sys.NewObject()
	require.NoError(t, o.Define("v", 1))
	require.ErrorIs(t, o.Unbind("v"), kvo.ErrNotBound)
	require.ErrorIs(t, o.Unbind("ghost"), kvo.ErrNotBound)
}
