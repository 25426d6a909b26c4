package core

import (
	"math"

	"github.com/1siamBot/spikes/engine/vecmath"
)

// ShadowCommand is the scale and gradient intensity for one shadow element
type ShadowCommand struct {
	Index     int
	Scale     float64
	Intensity float64
}

// ShadowProjector derives the ground shadow from how face-on the shape is.
// The light direction plays no part.
type ShadowProjector struct {
	Scales   []float64
	commands []ShadowCommand
}

func NewShadowProjector(scales []float64) *ShadowProjector {
	s := make([]float64, len(scales))
	copy(s, scales)
	return &ShadowProjector{Scales: s, commands: make([]ShadowCommand, len(s))}
}

// Darkness is the shadow intensity for a rotation about X in degrees
func Darkness(rotX float64) float64 {
	return 0.05 + math.Abs(math.Cos(rotX*vecmath.Rads)*0.3)
}

// Project returns one command per shadow element. A zero element scale
// counts as 1. The returned slice is reused by the next call.
func (sp *ShadowProjector) Project(rotX float64) []ShadowCommand {
	d := Darkness(rotX)
	for i, s := range sp.Scales {
		if s == 0 {
			s = 1
		}
		sp.commands[i] = ShadowCommand{
			Index:     i,
			Scale:     (0.9 - d*0.7) * s,
			Intensity: d,
		}
	}
	return sp.commands
}
