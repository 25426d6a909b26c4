package core

// Renderer applies the simulation output to the viewport
type Renderer interface {
	SetOrientation(rotX, rotY float64)
	SetShadow(index int, scale, intensity float64)
	SetFaceShade(faceID, shadeIndex int)
}

// Capability reports whether the host can draw the shape at all
type Capability interface {
	Supports3DTransforms() bool
}

// PointerHandler receives pointer events in viewport coordinates
type PointerHandler interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp()
}

// CapabilityFunc adapts a plain function to Capability
type CapabilityFunc func() bool

func (f CapabilityFunc) Supports3DTransforms() bool { return f() }
