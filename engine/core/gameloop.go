package core

import "time"

// LoopState represents whether the loop is advancing the simulation
type LoopState uint8

const (
	StatePaused LoopState = iota
	StatePlaying
)

// GameLoop drives a Simulation from the host's frame callback.
// With TickRate <= 0 it runs one tick per frame, otherwise fixed steps.
type GameLoop struct {
	Sim         *Simulation
	State       LoopState
	TickRate    float64 // fixed ticks per second, 0 for once per frame
	accumulator float64
	lastTime    time.Time
	now         func() time.Time
}

// NewGameLoop creates a paused loop around sim
func NewGameLoop(sim *Simulation, tickRate float64) *GameLoop {
	return &GameLoop{
		Sim:      sim,
		TickRate: tickRate,
		lastTime: time.Now(),
		now:      time.Now,
	}
}

// Update should be called every render frame. It returns the number of
// simulation ticks run, then dispatches the queued events.
func (gl *GameLoop) Update() int {
	now := gl.now()
	frameTime := now.Sub(gl.lastTime).Seconds()
	gl.lastTime = now

	ticks := 0
	if gl.State == StatePlaying {
		if gl.TickRate <= 0 {
			gl.Sim.Tick()
			ticks = 1
		} else {
			// Cap frame time to avoid spiral of death
			if frameTime > 0.25 {
				frameTime = 0.25
			}
			dt := 1.0 / gl.TickRate
			gl.accumulator += frameTime
			for gl.accumulator >= dt {
				gl.Sim.Tick()
				gl.accumulator -= dt
				ticks++
			}
		}
	}

	gl.Sim.Events.Dispatch()
	return ticks
}

// Play starts or resumes the loop
func (gl *GameLoop) Play() {
	gl.State = StatePlaying
	gl.lastTime = gl.now()
}

// Pause stops ticking; queued events are still dispatched
func (gl *GameLoop) Pause() {
	gl.State = StatePaused
	gl.accumulator = 0
}

// CurrentTick returns the current simulation tick
func (gl *GameLoop) CurrentTick() uint64 {
	return gl.Sim.Ticks()
}
