package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/1siamBot/spikes/engine/config"
	"github.com/1siamBot/spikes/engine/core"
	"github.com/1siamBot/spikes/engine/input"
	"github.com/1siamBot/spikes/engine/logging"
	"github.com/1siamBot/spikes/engine/render3d"
	"github.com/1siamBot/spikes/engine/shape"
	"github.com/1siamBot/spikes/engine/swatch"
)

// Game implements ebiten.Game interface
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	sim      *core.Simulation
	loop     *core.GameLoop
	renderer *render3d.Renderer3D
	pointer  *input.PointerState
	showHUD  bool
}

func NewGame(cfg *config.Config, log *zap.Logger) *Game {
	ring := shape.NewRing(cfg.ShapeParams())
	strip := swatch.Render(cfg.Simulation.Steps, swatch.DefaultWidth, swatch.DefaultHeight).
		Scaled(cfg.Render.SwatchWidth, cfg.Render.SwatchHeight)

	renderer := render3d.NewRenderer3D(ring, strip, cfg.Render.Scale, cfg.Render.OffsetY)
	sim := core.NewSimulation(ring.Normals(), renderer, cfg.SimParams(), core.WithLogger(log))

	g := &Game{
		cfg:      cfg,
		log:      log,
		sim:      sim,
		loop:     core.NewGameLoop(sim, cfg.Simulation.TickRate),
		renderer: renderer,
		pointer:  input.NewPointerState(),
		showHUD:  cfg.Render.ShowHUD,
	}

	sim.Events.On(core.EvtDragRelease, func(e core.Event) {
		p := e.Payload.(core.ReleasePayload)
		log.Debug("drag released",
			zap.Uint64("tick", e.Tick),
			zap.Float64("vel_x", p.VelX),
			zap.Float64("vel_y", p.VelY),
		)
	})

	if sim.Init(renderer) {
		g.loop.Play()
	} else {
		log.Warn("renderer cannot draw the shape, nothing to animate")
	}
	return g
}

func (g *Game) Update() error {
	if input.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if input.IsKeyJustPressed(ebiten.KeyL) {
		g.sim.ToggleLightMovement()
	}
	if input.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	g.pointer.Update(g.sim)
	g.loop.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen)
	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	o := g.sim.Orientation
	info := fmt.Sprintf(
		"FPS: %.0f | Tick: %d\n"+
			"Rot: (%.1f, %.1f) | Vel: (%.2f, %.2f)\n"+
			"Light moving: %v | [Drag] Spin [L] Light [H] HUD [Esc] Quit",
		ebiten.ActualFPS(),
		g.loop.CurrentTick(),
		o.RotX, o.RotY, o.VelX, o.VelY,
		g.sim.Light.Moving,
	)
	ebitenutil.DebugPrint(screen, info)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

func newRootCmd() *cobra.Command {
	var (
		configPath  string
		logLevel    string
		lightMoving bool
	)

	cmd := &cobra.Command{
		Use:           "spikes",
		Short:         "Draggable ring of shaded spikes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFile(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("light-moving") {
				cfg.Light.Moving = lightMoving
			}

			log, err := logging.New(cfg.Log.Level, cfg.Log.Development)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
			ebiten.SetWindowTitle(cfg.Window.Title)
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			ebiten.SetVsyncEnabled(cfg.Window.Vsync)

			game := NewGame(cfg, log)
			if err := ebiten.RunGame(game); err != nil {
				return fmt.Errorf("run game: %w", err)
			}
			log.Info("bye", zap.Uint64("ticks", game.loop.CurrentTick()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&lightMoving, "light-moving", false, "start with the light orbiting")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spikes:", err)
		os.Exit(1)
	}
}
