package trace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/popnet/contacts"
	"github.com/katalvlaran/popnet/trace"
)

func TestComponents_AllLayersJoin(t *testing.T) {
	comps, err := trace.Components(twoLayers(t))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3, 4, 5}}, comps)
}

func TestComponents_PerLayer(t *testing.T) {
	c := twoLayers(t)

	comps, err := trace.Components(c, trace.WithLayers("w"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 5}, {3, 4}}, comps, "ordered by smallest agent")

	comps, err = trace.Components(c, trace.WithLayers("h"))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, comps)
}

func TestComponents_SelfLoopAndGaps(t *testing.T) {
	c := contacts.New()
	l, err := contacts.FromRows([][]float64{{7, 7}, {2, 9}})
	require.NoError(t, err)
	require.NoError(t, c.AddLayer("h", l))

	comps, err := trace.Components(c)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{2, 9}, {7}}, comps, "agents without edges are not listed")
}

func TestComponents_Errors(t *testing.T) {
	_, err := trace.Components(nil)
	assert.ErrorIs(t, err, trace.ErrContactsNil)
	_, err = trace.Components(twoLayers(t), trace.WithLayers("x"))
	assert.ErrorIs(t, err, trace.ErrUnknownLayer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = trace.Components(twoLayers(t), trace.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	comps, err := trace.Components(contacts.New("h"))
	require.NoError(t, err)
	assert.Empty(t, comps)
}
