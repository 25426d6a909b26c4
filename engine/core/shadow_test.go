package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDarkness(t *testing.T) {
	assert.InDelta(t, 0.35, Darkness(0), 1e-12)
	assert.InDelta(t, 0.05, Darkness(90), 1e-12)
	assert.InDelta(t, 0.35, Darkness(180), 1e-12)
	assert.InDelta(t, Darkness(30), Darkness(-30), 1e-12)
}

func TestShadowProject(t *testing.T) {
	sp := NewShadowProjector([]float64{1, 0.5, 0})
	cmds := sp.Project(0)

	require.Len(t, cmds, 3)
	base := 0.9 - 0.35*0.7
	assert.Equal(t, 0, cmds[0].Index)
	assert.InDelta(t, base, cmds[0].Scale, 1e-12)
	assert.InDelta(t, base*0.5, cmds[1].Scale, 1e-12)
	assert.InDelta(t, base, cmds[2].Scale, 1e-12)
	for _, c := range cmds {
		assert.InDelta(t, 0.35, c.Intensity, 1e-12)
	}
}

func TestShadowProjectNoElements(t *testing.T) {
	sp := NewShadowProjector(nil)
	assert.Empty(t, sp.Project(45))
}
