package core

import (
	"go.uber.org/zap"

	"github.com/1siamBot/spikes/engine/vecmath"
)

// Params configures a Simulation
type Params struct {
	Steps        int     // shade swatches
	Damping      float64 // momentum kept per tick
	InitialRotX  float64 // spin applied on start, degrees
	InitialRotY  float64
	ShadowScales []float64 // one per shadow element
	Light        LightParams
}

func DefaultParams() Params {
	return Params{
		Steps:        DefaultShadeSteps,
		Damping:      0.98,
		InitialRotX:  10,
		InitialRotY:  15,
		ShadowScales: []float64{1},
		Light:        DefaultLightParams(),
	}
}

// Option customises a Simulation
type Option func(*Simulation)

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}

func WithEventBus(eb *EventBus) Option {
	return func(s *Simulation) {
		if eb != nil {
			s.Events = eb
		}
	}
}

// Simulation holds all state of one spike shape: rotation, light, drag
// gesture and the per-face shading. Input handlers and Tick must be
// called from the same goroutine.
type Simulation struct {
	Orientation *Orientation
	Light       *Light
	Drag        *DragTracker
	Shader      *FaceShader
	Shadows     *ShadowProjector
	Events      *EventBus

	params   Params
	renderer Renderer
	log      *zap.Logger
	started  bool
	ticks    uint64
}

// NewSimulation builds an inert simulation over the given face normals,
// indexed by face id. Nothing happens until Init.
func NewSimulation(normals []vecmath.Vector3, r Renderer, p Params, opts ...Option) *Simulation {
	if r == nil {
		r = nopRenderer{}
	}
	o := NewOrientation(p.Damping)
	s := &Simulation{
		Orientation: o,
		Light:       NewLight(p.Light),
		Drag:        NewDragTracker(o),
		Shader:      NewFaceShader(normals, p.Steps),
		Shadows:     NewShadowProjector(p.ShadowScales),
		Events:      NewEventBus(),
		params:      p,
		renderer:    r,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init starts the simulation if the host can render it. Calling it again
// after a successful start does nothing. Without 3D transform support the
// simulation stays inert and Init reports false.
func (s *Simulation) Init(c Capability) bool {
	if s.started {
		return true
	}
	if c == nil || !c.Supports3DTransforms() {
		s.log.Debug("3d transforms unsupported, staying inert")
		return false
	}

	s.Orientation.RotX = s.params.InitialRotX
	s.Orientation.RotY = s.params.InitialRotY
	s.started = true

	s.Events.Emit(Event{Type: EvtStarted, Tick: s.ticks})
	s.log.Info("simulation started",
		zap.Int("faces", s.Shader.Faces()),
		zap.Int("steps", s.params.Steps),
		zap.Float64("damping", s.params.Damping),
	)
	return true
}

// Started reports whether Init succeeded
func (s *Simulation) Started() bool { return s.started }

// Ticks returns the number of ticks run since start
func (s *Simulation) Ticks() uint64 { return s.ticks }

// Tick advances one frame and pushes the frame's commands to the renderer
func (s *Simulation) Tick() {
	if !s.started {
		return
	}
	s.ticks++

	o := s.Orientation
	o.Tick()
	s.Light.Tick()

	s.renderer.SetOrientation(o.RotX, o.RotY)
	for _, c := range s.Shadows.Project(o.RotX) {
		s.renderer.SetShadow(c.Index, c.Scale, c.Intensity)
	}
	for _, f := range s.Shader.Shade(o.RotX, o.RotY, s.Light.Direction) {
		s.renderer.SetFaceShade(f.FaceID, f.Index)
	}
}

// ToggleLightMovement starts or stops the light orbit
func (s *Simulation) ToggleLightMovement() {
	s.Light.Toggle()
	s.Events.Emit(Event{Type: EvtLightToggled, Tick: s.ticks, Payload: s.Light.Moving})
	s.log.Info("light movement toggled", zap.Bool("moving", s.Light.Moving))
}

func (s *Simulation) PointerDown(x, y float64) {
	if !s.started {
		return
	}
	s.Drag.PointerDown(x, y)
	s.Events.Emit(Event{Type: EvtDragStart, Tick: s.ticks})
}

func (s *Simulation) PointerMove(x, y float64) {
	if !s.started {
		return
	}
	s.Drag.PointerMove(x, y)
}

func (s *Simulation) PointerUp() {
	if !s.started {
		return
	}
	vx, vy, ok := s.Drag.PointerUp()
	if !ok {
		return
	}
	s.Events.Emit(Event{Type: EvtDragRelease, Tick: s.ticks, Payload: ReleasePayload{VelX: vx, VelY: vy}})
}

type nopRenderer struct{}

func (nopRenderer) SetOrientation(float64, float64) {}
func (nopRenderer) SetShadow(int, float64, float64) {}
func (nopRenderer) SetFaceShade(int, int)           {}
