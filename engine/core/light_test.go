package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLightOrbitEndToEnd(t *testing.T) {
	l := NewLight(LightParams{Phase: 0, Rate: 0.01, Radius: 200, Moving: true})
	for i := 0; i < 100; i++ {
		l.Tick()
	}

	assert.InDelta(t, 1.0, l.Phase, 1e-9)
	assert.InDelta(t, 1.0, l.Direction.Len(), 1e-9)

	x, y, z := math.Sin(1.0), math.Sin(0.2)*math.Cos(0.2)*0.5, math.Cos(1.0)
	n := math.Sqrt(x*x + y*y + z*z)
	assert.InDelta(t, x/n, l.Direction.X, 1e-6)
	assert.InDelta(t, y/n, l.Direction.Y, 1e-6)
	assert.InDelta(t, z/n, l.Direction.Z, 1e-6)
}

func TestLightStillKeepsPhase(t *testing.T) {
	l := NewLight(DefaultLightParams())
	for i := 0; i < 10; i++ {
		l.Tick()
	}

	assert.Equal(t, math.Pi, l.Phase)
	assert.InDelta(t, 0, l.Direction.X, 1e-9)
	assert.Less(t, l.Direction.Z, -0.9)
	assert.InDelta(t, 1.0, l.Direction.Len(), 1e-12)
}

func TestLightInitialDirection(t *testing.T) {
	l := NewLight(DefaultLightParams())

	assert.InDelta(t, -0.5/math.Sqrt(1.25), l.Direction.X, 1e-12)
	assert.Zero(t, l.Direction.Y)
	assert.InDelta(t, -1/math.Sqrt(1.25), l.Direction.Z, 1e-12)
}

func TestLightToggle(t *testing.T) {
	l := NewLight(DefaultLightParams())
	dir := l.Direction

	l.Toggle()
	assert.True(t, l.Moving)
	assert.Equal(t, dir, l.Direction)
	assert.Equal(t, math.Pi, l.Phase)

	l.Tick()
	assert.InDelta(t, math.Pi+0.01, l.Phase, 1e-12)

	l.Toggle()
	assert.False(t, l.Moving)
}
