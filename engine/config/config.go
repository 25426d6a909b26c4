package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/1siamBot/spikes/engine/core"
	"github.com/1siamBot/spikes/engine/shape"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full application configuration. Missing keys keep their
// defaults.
type Config struct {
	Window     Window     `yaml:"window"`
	Log        Log        `yaml:"log"`
	Simulation Simulation `yaml:"simulation"`
	Light      Light      `yaml:"light"`
	Shape      Shape      `yaml:"shape"`
	Render     Render     `yaml:"render"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	Vsync  bool   `yaml:"vsync"`
}

type Log struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type Spin struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type Simulation struct {
	Steps        int       `yaml:"steps"`
	Damping      float64   `yaml:"damping"`
	TickRate     float64   `yaml:"tick_rate"` // 0 ticks once per frame
	InitialSpin  Spin      `yaml:"initial_spin"`
	ShadowScales []float64 `yaml:"shadow_scales"`
}

type Light struct {
	Phase  float64 `yaml:"phase"`
	Rate   float64 `yaml:"rate"`
	Radius float64 `yaml:"radius"`
	Moving bool    `yaml:"moving"`
}

type Shape struct {
	Radius      float64 `yaml:"radius"`
	StepDegrees float64 `yaml:"step_degrees"`
	FaceTilt    float64 `yaml:"face_tilt"`
	InnerScale  float64 `yaml:"inner_scale"`
	InnerGap    float64 `yaml:"inner_gap"`
}

type Render struct {
	Scale        float64 `yaml:"scale"`
	OffsetY      float64 `yaml:"offset_y"`
	SwatchWidth  int     `yaml:"swatch_width"`
	SwatchHeight int     `yaml:"swatch_height"`
	ShowHUD      bool    `yaml:"show_hud"`
}

// Default returns the stock spike ring setup
func Default() *Config {
	sim := core.DefaultParams()
	sp := shape.DefaultParams()
	return &Config{
		Window: Window{Width: 800, Height: 600, Title: "Spikes", Vsync: true},
		Log:    Log{Level: "info"},
		Simulation: Simulation{
			Steps:        sim.Steps,
			Damping:      sim.Damping,
			InitialSpin:  Spin{X: sim.InitialRotX, Y: sim.InitialRotY},
			ShadowScales: sim.ShadowScales,
		},
		Light: Light{
			Phase:  sim.Light.Phase,
			Rate:   sim.Light.Rate,
			Radius: sim.Light.Radius,
			Moving: sim.Light.Moving,
		},
		Shape: Shape{
			Radius:      sp.Radius,
			StepDegrees: sp.StepDegrees,
			FaceTilt:    sp.FaceTilt,
			InnerScale:  sp.InnerScale,
			InnerGap:    sp.InnerGap,
		},
		Render: Render{Scale: 0.7, OffsetY: -55, SwatchWidth: 24, SwatchHeight: 80, ShowHUD: true},
	}
}

// Load decodes YAML from r over the defaults and validates the result
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFile reads the config at path. An empty path yields the defaults.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks ranges the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Simulation.Steps < 1:
		return fmt.Errorf("%w: simulation.steps must be at least 1, got %d", ErrInvalid, c.Simulation.Steps)
	case c.Simulation.Damping < 0 || c.Simulation.Damping >= 1:
		return fmt.Errorf("%w: simulation.damping must be in [0, 1), got %g", ErrInvalid, c.Simulation.Damping)
	case c.Simulation.TickRate < 0:
		return fmt.Errorf("%w: simulation.tick_rate must not be negative", ErrInvalid)
	case c.Light.Radius <= 0:
		// a zero radius would normalise a zero vector
		return fmt.Errorf("%w: light.radius must be positive, got %g", ErrInvalid, c.Light.Radius)
	case math.IsNaN(c.Light.Phase) || math.IsInf(c.Light.Phase, 0):
		return fmt.Errorf("%w: light.phase must be finite", ErrInvalid)
	case c.Shape.StepDegrees <= 0 || c.Shape.StepDegrees > 360:
		return fmt.Errorf("%w: shape.step_degrees must be in (0, 360], got %g", ErrInvalid, c.Shape.StepDegrees)
	case shape.FaceCount(c.Shape.StepDegrees) > shape.MaxFaces:
		return fmt.Errorf("%w: shape.step_degrees %g gives %d faces, at most %d are drawn",
			ErrInvalid, c.Shape.StepDegrees, shape.FaceCount(c.Shape.StepDegrees), shape.MaxFaces)
	case c.Render.Scale <= 0:
		return fmt.Errorf("%w: render.scale must be positive", ErrInvalid)
	case c.Render.SwatchWidth < 2 || c.Render.SwatchHeight < 2:
		return fmt.Errorf("%w: render swatch must be at least 2x2", ErrInvalid)
	}
	return nil
}

// SimParams converts the config into simulation parameters
func (c *Config) SimParams() core.Params {
	return core.Params{
		Steps:        c.Simulation.Steps,
		Damping:      c.Simulation.Damping,
		InitialRotX:  c.Simulation.InitialSpin.X,
		InitialRotY:  c.Simulation.InitialSpin.Y,
		ShadowScales: c.Simulation.ShadowScales,
		Light: core.LightParams{
			Phase:  c.Light.Phase,
			Rate:   c.Light.Rate,
			Radius: c.Light.Radius,
			Moving: c.Light.Moving,
		},
	}
}

// ShapeParams converts the config into ring layout parameters
func (c *Config) ShapeParams() shape.Params {
	p := shape.DefaultParams()
	p.Radius = c.Shape.Radius
	p.StepDegrees = c.Shape.StepDegrees
	p.FaceTilt = c.Shape.FaceTilt
	p.InnerScale = c.Shape.InnerScale
	p.InnerGap = c.Shape.InnerGap
	return p
}
