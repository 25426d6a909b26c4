package core

import (
	"math"

	"github.com/1siamBot/spikes/engine/vecmath"
)

// DefaultShadeSteps is the number of swatches in the shade strip
const DefaultShadeSteps = 70

// FaceShade is the shading command for one face
type FaceShade struct {
	FaceID int
	Index  int
}

// FaceShader maps rotated face normals to swatch indices
type FaceShader struct {
	Steps   int
	normals []vecmath.Vector3 // indexed by face id, never mutated
	shades  []FaceShade
}

// NewFaceShader keeps its own copy of the normals
func NewFaceShader(normals []vecmath.Vector3, steps int) *FaceShader {
	ns := make([]vecmath.Vector3, len(normals))
	copy(ns, normals)
	return &FaceShader{
		Steps:   steps,
		normals: ns,
		shades:  make([]FaceShade, len(ns)),
	}
}

// Faces returns the number of shaded faces
func (fs *FaceShader) Faces() int { return len(fs.normals) }

// Shade rotates every normal by the orientation and lights it. The
// returned slice is reused by the next call.
func (fs *FaceShader) Shade(rotX, rotY float64, light vecmath.Vector3) []FaceShade {
	for id, n := range fs.normals {
		n.Rotate(rotX, rotY, 0)
		// normals point outwards, the light vector points along its travel
		dot := -n.Dot(light)
		fs.shades[id] = FaceShade{FaceID: id, Index: ShadeIndex(dot, fs.Steps)}
	}
	return fs.shades
}

// ShadeIndex buckets an illumination value into [0, steps-1]. Faces
// turned away floor to 0 and anything past the strip gets the last swatch.
func ShadeIndex(dot float64, steps int) int {
	if steps <= 0 || math.IsNaN(dot) {
		return 0
	}
	idx := math.Floor(dot*float64(steps) - 1)
	if idx < 0 {
		return 0
	}
	if idx > float64(steps-1) {
		return steps - 1
	}
	return int(idx)
}
