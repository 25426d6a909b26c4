package shape

import (
	"math"

	"github.com/1siamBot/spikes/engine/vecmath"
)

// FaceKind is the side of a spike a face sits on
type FaceKind uint8

const (
	Front FaceKind = iota
	Back
	Left
	Right
)

var faceKinds = [...]FaceKind{Front, Back, Left, Right}

// MaxFaces keeps every face vertex addressable by a 16-bit triangle index
const MaxFaces = 65535 / 3

func (k FaceKind) String() string {
	switch k {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Params describes the ring layout
type Params struct {
	Radius      float64 // distance of outer spikes from the centre
	StepDegrees float64 // angle between neighbouring spikes
	FaceTilt    float64 // normal tilt in degrees for a full-size spike
	InnerScale  float64 // height scale of the inner spikes
	InnerGap    float64 // extra radius for the inner ring
	FaceWidth   float64
	FaceHeight  float64
}

// DefaultParams returns the classic 6+6 spike ring
func DefaultParams() Params {
	return Params{
		Radius:      100,
		StepDegrees: 60,
		FaceTilt:    8.4,
		InnerScale:  0.5,
		InnerGap:    2,
		FaceWidth:   60,
		FaceHeight:  200,
	}
}

// Spike is one pyramid on the ring
type Spike struct {
	Angle  float64 // ring angle in degrees
	Scale  float64
	Inner  bool
	X, Y   float64 // rounded ring position
	Radius float64 // signed; inner spikes sit on the opposite side
}

// Face is one triangular side of a spike. Normal and Vertices are in
// shape space and never change after construction.
type Face struct {
	ID       int
	Kind     FaceKind
	Spike    int
	Normal   vecmath.Vector3
	Vertices [3]vecmath.Vector3 // apex, base left, base right
}

// Ring is the full set of spikes and their faces, indexed by id
type Ring struct {
	Params Params
	Spikes []Spike
	Faces  []Face
}

// SpikesPerLap is the number of spikes on each lap for the given step.
// It is at least one for any positive step.
func SpikesPerLap(stepDegrees float64) int {
	if stepDegrees <= 0 || math.IsNaN(stepDegrees) {
		return 0
	}
	n := math.Round(360 / stepDegrees)
	if n < 1 {
		return 1
	}
	if n > MaxFaces {
		return MaxFaces
	}
	return int(n)
}

// FaceCount is the number of faces NewRing builds for the given step
func FaceCount(stepDegrees float64) int {
	return 2 * SpikesPerLap(stepDegrees) * len(faceKinds)
}

// NewRing steps twice around the circle: the first lap places the outer
// spikes, the second the half-height inner spikes pointing inwards. Both
// laps use the same angles, offset by a full turn. Rings that would exceed
// MaxFaces are left empty.
func NewRing(p Params) *Ring {
	r := &Ring{Params: p}
	n := SpikesPerLap(p.StepDegrees)
	if n == 0 || FaceCount(p.StepDegrees) > MaxFaces {
		return r
	}
	for i := 0; i < 2*n; i++ {
		inner := i >= n
		z := float64(i%n) * p.StepDegrees
		if inner {
			z += 360
		}
		scale, radius := 1.0, p.Radius
		if inner {
			scale, radius = p.InnerScale, -(p.Radius + p.InnerGap)
		}
		zRads := z * vecmath.Rads
		sp := Spike{
			Angle:  z,
			Scale:  scale,
			Inner:  inner,
			X:      math.Round(math.Sin(zRads) * radius),
			Y:      math.Round(math.Cos(zRads) * -radius),
			Radius: radius,
		}
		r.Spikes = append(r.Spikes, sp)

		for _, kind := range faceKinds {
			r.Faces = append(r.Faces, Face{
				ID:       len(r.Faces),
				Kind:     kind,
				Spike:    len(r.Spikes) - 1,
				Normal:   faceNormal(kind, sp, p),
				Vertices: faceVertices(kind, sp, p),
			})
		}
	}
	return r
}

// Normals returns a copy of the face normals indexed by face id
func (r *Ring) Normals() []vecmath.Vector3 {
	out := make([]vecmath.Vector3, len(r.Faces))
	for i, f := range r.Faces {
		out[i] = f.Normal
	}
	return out
}

func faceNormal(kind FaceKind, sp Spike, p Params) vecmath.Vector3 {
	tilt := p.FaceTilt * sp.Scale
	n := vecmath.V3(0, 0, 1)
	switch kind {
	case Front:
		n.Rotate(tilt, 0, 0)
	case Back:
		n.Rotate(-tilt, 180, 0)
	case Left:
		n.Rotate(tilt, -90, 0)
	case Right:
		n.Rotate(tilt, 90, 0)
	}
	n.Rotate(0, 0, sp.Angle)
	return n
}

func faceVertices(kind FaceKind, sp Spike, p Params) [3]vecmath.Vector3 {
	hw := p.FaceWidth / 2
	hh := p.FaceHeight / 2 * sp.Scale

	apex := vecmath.V3(0, -hh, 0)
	var left, right vecmath.Vector3
	switch kind {
	case Front:
		left, right = vecmath.V3(-hw, hh, hw), vecmath.V3(hw, hh, hw)
	case Back:
		left, right = vecmath.V3(hw, hh, -hw), vecmath.V3(-hw, hh, -hw)
	case Left:
		left, right = vecmath.V3(-hw, hh, -hw), vecmath.V3(-hw, hh, hw)
	case Right:
		left, right = vecmath.V3(hw, hh, hw), vecmath.V3(hw, hh, -hw)
	}

	vs := [3]vecmath.Vector3{apex, left, right}
	for i := range vs {
		vs[i].Rotate(0, 0, sp.Angle)
		vs[i].X += sp.X
		vs[i].Y += sp.Y
	}
	return vs
}
