package core

// DragHistorySize is how many pointer deltas a drag remembers
const DragHistorySize = 10

// releaseScale turns the summed history into a release velocity
const releaseScale = 0.1

// Rotator receives live drag deltas and the release momentum
type Rotator interface {
	Drag(dx, dy float64)
	Halt()
	SetVelocity(vx, vy float64)
}

type dragSample struct {
	dx, dy float64
	set    bool
}

// DragTracker turns pointer down/move/up into live rotation and a
// release velocity. Recent deltas live in a fixed ring buffer.
type DragTracker struct {
	target   Rotator
	history  [DragHistorySize]dragSample
	next     int
	lastX    float64
	lastY    float64
	dragging bool
}

func NewDragTracker(target Rotator) *DragTracker {
	return &DragTracker{target: target}
}

// Dragging reports whether a gesture is in progress
func (d *DragTracker) Dragging() bool { return d.dragging }

func (d *DragTracker) PointerDown(x, y float64) {
	d.dragging = true
	d.target.Halt()
	d.next = 0
	d.lastX, d.lastY = x, y
}

func (d *DragTracker) PointerMove(x, y float64) {
	if !d.dragging {
		return
	}
	dx, dy := x-d.lastX, y-d.lastY
	d.history[d.next] = dragSample{dx: dx, dy: dy, set: true}
	d.next = (d.next + 1) % DragHistorySize

	d.target.Drag(dx, dy)
	d.lastX, d.lastY = x, y
}

// PointerUp ends the gesture and returns the release velocity it handed
// to the target. Empty slots are skipped, so short drags keep their speed.
// An up without a down is ignored.
func (d *DragTracker) PointerUp() (vx, vy float64, ok bool) {
	if !d.dragging {
		return 0, 0, false
	}
	d.dragging = false

	for _, s := range d.history {
		if s.set {
			vx += s.dx
			vy += s.dy
		}
	}
	vx *= releaseScale
	vy *= releaseScale
	d.target.SetVelocity(vx, vy)

	d.history = [DragHistorySize]dragSample{}
	return vx, vy, true
}
