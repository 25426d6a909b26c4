package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/1siamBot/spikes/engine/shape"
)

type fakeRenderer struct {
	rotX, rotY  float64
	orientCalls int
	shadows     map[int][2]float64
	shades      map[int]int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{
		shadows: make(map[int][2]float64),
		shades:  make(map[int]int),
	}
}

func (r *fakeRenderer) SetOrientation(rotX, rotY float64) {
	r.rotX, r.rotY = rotX, rotY
	r.orientCalls++
}

func (r *fakeRenderer) SetShadow(i int, scale, intensity float64) {
	r.shadows[i] = [2]float64{scale, intensity}
}

func (r *fakeRenderer) SetFaceShade(id, idx int) { r.shades[id] = idx }

var (
	supported   = CapabilityFunc(func() bool { return true })
	unsupported = CapabilityFunc(func() bool { return false })
)

func newTestSimulation(r Renderer, opts ...Option) *Simulation {
	ring := shape.NewRing(shape.DefaultParams())
	return NewSimulation(ring.Normals(), r, DefaultParams(), opts...)
}

func TestSimulationGateKeepsItInert(t *testing.T) {
	r := newFakeRenderer()
	sim := newTestSimulation(r)

	assert.False(t, sim.Init(unsupported))
	assert.False(t, sim.Init(nil))
	assert.False(t, sim.Started())

	sim.Tick()
	sim.PointerDown(0, 0)
	assert.Zero(t, r.orientCalls)
	assert.Zero(t, sim.Ticks())
	assert.False(t, sim.Drag.Dragging())
}

func TestSimulationInitIsIdempotent(t *testing.T) {
	sim := newTestSimulation(nil)

	require.True(t, sim.Init(supported))
	assert.Equal(t, 10.0, sim.Orientation.RotX)
	assert.Equal(t, 15.0, sim.Orientation.RotY)

	sim.Orientation.RotY = 99
	require.True(t, sim.Init(supported))
	assert.Equal(t, 99.0, sim.Orientation.RotY)
	assert.Equal(t, 1, sim.Events.Pending())
}

func TestSimulationTickEmitsCommands(t *testing.T) {
	r := newFakeRenderer()
	sim := newTestSimulation(r)
	require.True(t, sim.Init(supported))

	sim.Tick()

	assert.Equal(t, uint64(1), sim.Ticks())
	assert.Equal(t, 1, r.orientCalls)
	assert.Equal(t, 10.0, r.rotX)
	assert.Equal(t, 15.0, r.rotY)

	require.Len(t, r.shadows, 1)
	assert.InDelta(t, Darkness(10), r.shadows[0][1], 1e-12)

	require.Len(t, r.shades, 48)
	for id, idx := range r.shades {
		assert.Equal(t, sim.Shader.shades[id].Index, idx)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, DefaultShadeSteps)
	}
}

func TestSimulationDragAndMomentum(t *testing.T) {
	r := newFakeRenderer()
	sim := newTestSimulation(r)
	require.True(t, sim.Init(supported))

	var release ReleasePayload
	sim.Events.On(EvtDragRelease, func(e Event) { release = e.Payload.(ReleasePayload) })

	sim.PointerDown(0, 0)
	sim.PointerMove(2, 0)
	sim.Tick()
	sim.PointerMove(4, 0)
	sim.Tick()
	sim.PointerMove(6, 0)
	sim.PointerUp()

	assert.Equal(t, 21.0, sim.Orientation.RotY)
	assert.InDelta(t, 0.6, sim.Orientation.VelX, 1e-12)

	sim.Events.Dispatch()
	assert.InDelta(t, 0.6, release.VelX, 1e-12)

	sim.Tick()
	assert.InDelta(t, 21.6, r.rotY, 1e-12)
	assert.InDelta(t, 0.6*0.98, sim.Orientation.VelX, 1e-12)

	// a new drag stops the spin
	sim.PointerDown(6, 0)
	sim.Tick()
	assert.InDelta(t, 21.6, r.rotY, 1e-12)
}

func TestSimulationToggleLight(t *testing.T) {
	obs, logs := observer.New(zap.InfoLevel)
	sim := newTestSimulation(nil, WithLogger(zap.New(obs)))
	require.True(t, sim.Init(supported))

	var moving []bool
	sim.Events.On(EvtLightToggled, func(e Event) { moving = append(moving, e.Payload.(bool)) })

	sim.ToggleLightMovement()
	sim.Tick()
	sim.ToggleLightMovement()
	sim.Events.Dispatch()

	assert.Equal(t, []bool{true, false}, moving)
	assert.InDelta(t, DefaultLightParams().Phase+0.01, sim.Light.Phase, 1e-12)
	assert.Equal(t, 1, logs.FilterMessage("simulation started").Len())
	assert.Equal(t, 2, logs.FilterMessage("light movement toggled").Len())
}

func TestSimulationSharedEventBus(t *testing.T) {
	eb := NewEventBus()
	sim := newTestSimulation(nil, WithEventBus(eb), WithLogger(nil))
	require.True(t, sim.Init(supported))

	assert.Same(t, eb, sim.Events)
	assert.Equal(t, 1, eb.Pending())
}
