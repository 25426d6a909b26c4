package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/1siamBot/spikes/engine/core"
)

// PointerState polls mouse and touch once per frame and turns button
// edges into pointer down/move/up calls.
type PointerState struct {
	core.PointerButton

	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

func NewPointerState() *PointerState {
	return &PointerState{}
}

// Update should be called every frame, before the simulation ticks
func (s *PointerState) Update(h core.PointerHandler) {
	x, y, down := s.poll()
	s.Feed(h, float64(x), float64(y), down)
}

// poll reads the mouse, or the first active touch when there is one
func (s *PointerState) poll() (x, y int, down bool) {
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	if !s.touching && len(s.touchIDs) > 0 {
		s.touchID = s.touchIDs[0]
		s.touching = true
	}
	if s.touching {
		if inpututil.IsTouchJustReleased(s.touchID) {
			s.touching = false
			return int(s.X), int(s.Y), false
		}
		x, y = ebiten.TouchPosition(s.touchID)
		return x, y, true
	}

	x, y = ebiten.CursorPosition()
	return x, y, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// IsKeyJustPressed returns true if key was just pressed this frame
func IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
