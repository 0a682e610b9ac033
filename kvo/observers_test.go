package kvo_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/bindparty/kvo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// an Observe2 callback sees the typed current values of both
// attributes whenever either changes
func TestObserve2(t *testing.T) {
	sys := newSystem(t)

	person := sys.NewObject()
	require.NoError(t, person.Define("first", "Ada"))
	require.NoError(t, person.Define("last", "Lovelace"))

	var lines []string
	stop := kvo.Observe2(
		person, "first",
		person, "last",
		func(first, last string) error {
			lines = append(lines, fmt.Sprintf("%s %s", first, last))
			return nil
		},
	)

	require.NoError(t, person.Set("first", "Grace", false))
	require.NoError(t, person.Set("last", "Hopper", false))
	assert.Equal(t, []string{"Grace Lovelace", "Grace Hopper"}, lines)

	stop()
	require.NoError(t, person.Set("first", "Alan", false))
	assert.Len(t, lines, 2)
}

// observers follow bound attributes like any registered callback
func TestObserve1Bound(t *testing.T) {
	sys := newSystem(t)

	model := sys.NewObject()
	require.NoError(t, model.Define("count", 0))

	view := sys.NewObject()
	require.NoError(t, view.BindTo("count", model, "", false))

	var seen []int
	stop := kvo.Observe1(view, "count", func(c int) error {
		seen = append(seen, c)
		return nil
	})
	defer stop()

	require.NoError(t, model.Set("count", 1, false))
	require.NoError(t, model.Set("count", 2, false))
	assert.Equal(t, []int{1, 2}, seen)
}
