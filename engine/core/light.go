package core

import (
	"math"

	"github.com/1siamBot/spikes/engine/vecmath"
)

// Light is a directional light orbiting on a parametric path
type Light struct {
	Phase     float64 // radians
	Rate      float64 // radians per tick while moving
	Radius    float64
	Moving    bool
	Direction vecmath.Vector3 // unit vector, recomputed each tick
}

// LightParams configures a Light
type LightParams struct {
	Phase  float64
	Rate   float64
	Radius float64
	Moving bool
}

func DefaultLightParams() LightParams {
	return LightParams{
		Phase:  math.Pi,
		Rate:   0.01,
		Radius: 200,
	}
}

func NewLight(p LightParams) *Light {
	l := &Light{
		Phase:     p.Phase,
		Rate:      p.Rate,
		Radius:    p.Radius,
		Moving:    p.Moving,
		Direction: vecmath.V3(-0.5, 0, -1),
	}
	l.Direction.Normalize()
	return l
}

// Tick advances the phase when moving and recomputes the direction.
// The x/z circle carries a slower vertical wobble on y.
func (l *Light) Tick() {
	if l.Moving {
		l.Phase += l.Rate
	}
	p := l.Phase
	l.Direction = vecmath.V3(
		math.Sin(p)*l.Radius,
		math.Sin(p*0.2)*math.Cos(p*0.2)*l.Radius*0.5,
		math.Cos(p)*l.Radius,
	)
	l.Direction.Normalize()
}

// Toggle flips Moving; the direction changes on the next Tick
func (l *Light) Toggle() {
	l.Moving = !l.Moving
}
