package core

// PointerAction is the handler call a button sample maps to
type PointerAction uint8

const (
	PointerNone PointerAction = iota
	PointerPressed
	PointerMoved
	PointerReleased
)

func (a PointerAction) String() string {
	switch a {
	case PointerNone:
		return "none"
	case PointerPressed:
		return "pressed"
	case PointerMoved:
		return "moved"
	case PointerReleased:
		return "released"
	}
	return "unknown"
}

// PointerButton turns per-frame button samples into edges
type PointerButton struct {
	X, Y    float64
	Pressed bool
}

// Step records a sample and reports the edge it crosses. A held button
// that did not move reports PointerNone.
func (b *PointerButton) Step(x, y float64, down bool) PointerAction {
	var a PointerAction
	switch {
	case down && !b.Pressed:
		a = PointerPressed
	case down && (x != b.X || y != b.Y):
		a = PointerMoved
	case !down && b.Pressed:
		a = PointerReleased
	}
	b.X, b.Y, b.Pressed = x, y, down
	return a
}

// Feed steps the button and forwards the edge to h
func (b *PointerButton) Feed(h PointerHandler, x, y float64, down bool) PointerAction {
	a := b.Step(x, y, down)
	switch a {
	case PointerPressed:
		h.PointerDown(x, y)
	case PointerMoved:
		h.PointerMove(x, y)
	case PointerReleased:
		h.PointerUp()
	}
	return a
}
