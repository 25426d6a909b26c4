package vecmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func randomVector(r *rand.Rand) Vector3 {
	return V3(r.Float64()*200-100, r.Float64()*200-100, r.Float64()*200-100)
}

func TestNormalizeUnitLength(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		v := randomVector(r)
		if v.Len() == 0 {
			continue
		}
		v.Normalize()
		assert.InDelta(t, 1.0, v.Len(), eps)
	}
}

func TestNormalizeZeroIsNaN(t *testing.T) {
	v := V3(0, 0, 0)
	v.Normalize()
	assert.True(t, math.IsNaN(v.X))
	assert.True(t, math.IsNaN(v.Y))
	assert.True(t, math.IsNaN(v.Z))
}

func TestDotSymmetric(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		a, b := randomVector(r), randomVector(r)
		assert.Equal(t, a.Dot(b), b.Dot(a))
	}
	assert.Equal(t, 32.0, V3(1, 2, 3).Dot(V3(4, 5, 6)))
}

func TestRotateZeroIsNoop(t *testing.T) {
	v := V3(0.3, -1.7, 42)
	v.Rotate(0, 0, 0)
	assert.Equal(t, V3(0.3, -1.7, 42), v)

	v.RotateRadians(0, 0, 0)
	assert.Equal(t, V3(0.3, -1.7, 42), v)
}

func TestRotateMatchesAxisOrder(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		v := randomVector(r)
		rx, ry, rz := r.Float64()*720-360, r.Float64()*720-360, r.Float64()*720-360

		// Y first, then Z, then X: M = Rx * Rz * Ry
		m := mgl64.Rotate3DX(rx * Rads).Mul3(mgl64.Rotate3DZ(rz * Rads)).Mul3(mgl64.Rotate3DY(ry * Rads))
		want := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})

		got := v
		got.Rotate(rx, ry, rz)
		assert.InDelta(t, want.X(), got.X, 1e-9)
		assert.InDelta(t, want.Y(), got.Y, 1e-9)
		assert.InDelta(t, want.Z(), got.Z, 1e-9)
	}
}

func TestRotateSingleAxes(t *testing.T) {
	v := V3(1, 0, 0)
	v.Rotate(0, 90, 0)
	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, -1, v.Z, eps)

	v = V3(1, 0, 0)
	v.Rotate(0, 0, 90)
	assert.InDelta(t, 0, v.X, eps)
	assert.InDelta(t, 1, v.Y, eps)

	v = V3(0, 1, 0)
	v.Rotate(90, 0, 0)
	assert.InDelta(t, 0, v.Y, eps)
	assert.InDelta(t, 1, v.Z, eps)
}

func TestRotateInverseOrderRestores(t *testing.T) {
	r := rand.New(rand.NewSource(19))
	for i := 0; i < 500; i++ {
		orig := randomVector(r)
		rx, ry, rz := r.Float64()*360, r.Float64()*360, r.Float64()*360

		v := orig
		v.Rotate(rx, ry, rz)
		v.Rotate(-rx, 0, 0)
		v.Rotate(0, 0, -rz)
		v.Rotate(0, -ry, 0)

		require.InDelta(t, orig.X, v.X, 1e-9)
		require.InDelta(t, orig.Y, v.Y, 1e-9)
		require.InDelta(t, orig.Z, v.Z, 1e-9)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V3(3, 4, 12)
	v.Rotate(33, -71, 190)
	assert.InDelta(t, 13.0, v.Len(), eps)
}
