package core

// Orientation integrates the shape's rotation. Angles are degrees,
// velocities degrees per tick.
type Orientation struct {
	RotX, RotY float64
	VelX, VelY float64
	Damping    float64
}

func NewOrientation(damping float64) *Orientation {
	return &Orientation{Damping: damping}
}

// Drag applies a raw pointer delta straight to the rotation, undamped
func (o *Orientation) Drag(dx, dy float64) {
	o.RotY += dx
	o.RotX -= dy
}

// Halt drops any momentum; called when a drag starts
func (o *Orientation) Halt() {
	o.VelX, o.VelY = 0, 0
}

// SetVelocity hands over the release velocity of a drag
func (o *Orientation) SetVelocity(vx, vy float64) {
	o.VelX, o.VelY = vx, vy
}

// Tick adds the momentum to the rotation, then decays it
func (o *Orientation) Tick() {
	o.RotX -= o.VelY
	o.RotY += o.VelX
	o.VelX *= o.Damping
	o.VelY *= o.Damping
}
