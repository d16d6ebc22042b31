package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmootherSnapsOnFirstSighting(t *testing.T) {
	s := NewSmoother()
	s.Observe("p1", 100, 200)
	x, y, ok := s.Pos("p1")
	require.True(t, ok)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 200.0, y)
}

func TestSmootherEasesTowardTarget(t *testing.T) {
	s := NewSmoother()
	s.Observe("p1", 0, 0)
	s.Observe("p1", 100, 50)

	s.Update(smoothDuration / 2)
	x, y, _ := s.Pos("p1")
	assert.InDelta(t, 50, x, 1)
	assert.InDelta(t, 25, y, 1)

	s.Update(smoothDuration)
	x, y, _ = s.Pos("p1")
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
}

func TestSmootherForget(t *testing.T) {
	s := NewSmoother()
	s.Observe("p1", 1, 2)
	s.Forget("p1")
	_, _, ok := s.Pos("p1")
	assert.False(t, ok)
}

func TestSmootherUnknownId(t *testing.T) {
	s := NewSmoother()
	_, _, ok := s.Pos("nobody")
	assert.False(t, ok)
}
