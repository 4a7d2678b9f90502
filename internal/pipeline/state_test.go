// internal/pipeline/state_test.go
package pipeline

import (
	"errors"
	"testing"

	"magnet-factory/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		allowed  bool
	}{
		{StateIdle, StateResearching, true},
		{StateResearching, StateDrafting, true},
		{StateDrafting, StateVisualizing, true},
		{StateVisualizing, StateDistributing, true},
		{StateDistributing, StateDone, true},
		{StateIdle, StateFailed, true},
		{StateVisualizing, StateFailed, true},
		{StateIdle, StateDrafting, false},
		{StateDrafting, StateResearching, false},
		{StateResearching, StateDone, false},
		{StateDone, StateFailed, false},
		{StateFailed, StateResearching, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestRun_Lifecycle(t *testing.T) {
	run := newRun(Request{Route: models.RouteTrendJacker})
	assert.Equal(t, StateIdle, run.State())
	assert.NotEmpty(t, run.ID())

	err := run.transition(StateDrafting)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	for _, s := range []State{StateResearching, StateDrafting, StateVisualizing, StateDistributing} {
		require.NoError(t, run.transition(s))
	}
	require.NoError(t, run.finish(&models.ProductionResult{Route: models.RouteTrendJacker}))

	select {
	case <-run.Done():
	default:
		t.Fatal("done channel not closed")
	}

	// terminal runs ignore later failures
	run.fail(errors.New("late"))
	assert.Equal(t, StateDone, run.State())
	assert.NoError(t, run.Err())
}

func TestStore(t *testing.T) {
	store, err := NewStore(2)
	require.NoError(t, err)

	_, ok := store.Latest()
	assert.False(t, ok)

	a := newRun(Request{Route: models.RouteTrendJacker})
	b := newRun(Request{Route: models.RouteProblemSolver})
	c := newRun(Request{Route: models.RouteDataAuthority})
	store.Add(a)
	store.Add(b)
	store.Add(c)

	assert.Equal(t, 2, store.Len())
	_, ok = store.Get(a.ID())
	assert.False(t, ok, "oldest run should be evicted")

	got, ok := store.Get(b.ID())
	require.True(t, ok)
	assert.Same(t, b, got)

	latest, ok := store.Latest()
	require.True(t, ok)
	assert.Same(t, c, latest)
}
