package vecmath

import "math"

// Rads converts degrees to radians
const Rads = math.Pi / 180

// Vector3 is a 3D vector. Normalize and Rotate work in place.
type Vector3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vector3) Len() float64          { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalize scales v to unit length. A zero vector comes out as NaN,
// so callers must never normalize one.
func (v *Vector3) Normalize() {
	l := v.Len()
	v.X /= l
	v.Y /= l
	v.Z /= l
}

// Rotate turns v by the given angles in degrees, about Y first, then Z,
// then X. Face normals are baked with this exact order.
func (v *Vector3) Rotate(rotX, rotY, rotZ float64) {
	v.RotateRadians(rotX*Rads, rotY*Rads, rotZ*Rads)
}

// RotateRadians is Rotate with angles in radians. Zero angles skip their axis.
func (v *Vector3) RotateRadians(rotX, rotY, rotZ float64) {
	if rotY != 0 {
		c, s := math.Cos(rotY), math.Sin(rotY)
		v.X, v.Z = v.X*c+v.Z*s, -v.X*s+v.Z*c
	}
	if rotZ != 0 {
		c, s := math.Cos(rotZ), math.Sin(rotZ)
		v.X, v.Y = v.X*c-v.Y*s, v.X*s+v.Y*c
	}
	if rotX != 0 {
		c, s := math.Cos(rotX), math.Sin(rotX)
		v.Y, v.Z = v.Y*c-v.Z*s, v.Y*s+v.Z*c
	}
}
