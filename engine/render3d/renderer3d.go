package render3d

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/1siamBot/spikes/engine/shape"
	"github.com/1siamBot/spikes/engine/swatch"
	"github.com/1siamBot/spikes/engine/vecmath"
)

const (
	shadowRadius   = 200
	shadowOffsetY  = 75
	shadowSquash   = 0.3
	shadowSegments = 48
)

var (
	backgroundColor = color.RGBA{42, 8, 30, 255}
	shadowInner     = [3]float32{30.0 / 255, 4.0 / 255, 22.0 / 255}
	shadowOuter     = [3]float32{60.0 / 255, 9.0 / 255, 44.0 / 255}
)

type shadowState struct {
	scale     float64
	intensity float64
}

type faceDraw struct {
	id    int
	pts   [3]vecmath.Vector3
	depth float64
}

// Renderer3D draws the spike ring from the commands the simulation sends
// each tick. Faces are textured straight from their swatch in the strip.
type Renderer3D struct {
	Scale   float64 // shape scale on screen
	OffsetY float64 // shape lift from the screen centre

	ring     *shape.Ring
	strip    *swatch.Strip
	stripImg *ebiten.Image
	whiteImg *ebiten.Image
	rotX     float64
	rotY     float64
	shades   []int // swatch index per face id
	shadows  []shadowState
	faces    []faceDraw
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewRenderer3D uploads the swatch strip and prepares per-face state
func NewRenderer3D(ring *shape.Ring, strip *swatch.Strip, scale, offsetY float64) *Renderer3D {
	r := &Renderer3D{
		Scale:   scale,
		OffsetY: offsetY,
		ring:    ring,
		strip:   strip,
		shades:  make([]int, len(ring.Faces)),
		faces:   make([]faceDraw, len(ring.Faces)),
	}
	if strip != nil {
		r.stripImg = ebiten.NewImageFromImage(strip.Image)
	}

	// 1x1 white image for colored triangle rendering
	r.whiteImg = ebiten.NewImage(4, 4)
	r.whiteImg.Fill(color.White)

	return r
}

// Supports3DTransforms reports whether there is a strip to shade with.
// The game always builds both, so this only fails for an empty ring.
func (r *Renderer3D) Supports3DTransforms() bool {
	return r.stripImg != nil && len(r.ring.Faces) > 0
}

func (r *Renderer3D) SetOrientation(rotX, rotY float64) {
	r.rotX, r.rotY = rotX, rotY
}

func (r *Renderer3D) SetShadow(index int, scale, intensity float64) {
	for len(r.shadows) <= index {
		r.shadows = append(r.shadows, shadowState{})
	}
	r.shadows[index] = shadowState{scale: scale, intensity: intensity}
}

func (r *Renderer3D) SetFaceShade(faceID, shadeIndex int) {
	if r.strip == nil || faceID < 0 || faceID >= len(r.shades) {
		return
	}
	r.shades[faceID] = r.strip.Clamp(shadeIndex)
}

// Draw renders shadows first, then faces back to front
func (r *Renderer3D) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if !r.Supports3DTransforms() {
		return
	}

	b := screen.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2

	for _, s := range r.shadows {
		r.drawShadow(screen, cx, cy+shadowOffsetY*r.Scale, s)
	}
	r.drawFaces(screen, cx, cy+r.OffsetY)
}

// drawShadow fans a flattened disc whose vertex colours fade from the
// centre outwards, giving a radial gradient
func (r *Renderer3D) drawShadow(screen *ebiten.Image, cx, cy float64, s shadowState) {
	rad := shadowRadius * s.scale * r.Scale
	if rad <= 0 {
		return
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	r.vertices = append(r.vertices, ebiten.Vertex{
		DstX: float32(cx), DstY: float32(cy),
		SrcX: 1, SrcY: 1,
		ColorR: shadowInner[0], ColorG: shadowInner[1], ColorB: shadowInner[2],
		ColorA: float32(s.intensity),
	})
	for i := 0; i <= shadowSegments; i++ {
		a := float64(i) / shadowSegments * 2 * math.Pi
		r.vertices = append(r.vertices, ebiten.Vertex{
			DstX: float32(cx + math.Cos(a)*rad),
			DstY: float32(cy + math.Sin(a)*rad*shadowSquash),
			SrcX: 1, SrcY: 1,
			ColorR: shadowOuter[0], ColorG: shadowOuter[1], ColorB: shadowOuter[2],
			ColorA: 0,
		})
		if i > 0 {
			r.indices = append(r.indices, 0, uint16(i), uint16(i+1))
		}
	}
	screen.DrawTriangles(r.vertices, r.indices, r.whiteImg, nil)
}

func (r *Renderer3D) drawFaces(screen *ebiten.Image, cx, cy float64) {
	for i, f := range r.ring.Faces {
		fd := faceDraw{id: f.ID}
		for j, v := range f.Vertices {
			v.Rotate(r.rotX, r.rotY, 0)
			fd.pts[j] = v
			fd.depth += v.Z
		}
		r.faces[i] = fd
	}
	// CSS-style axes: +Z points at the viewer, so draw low Z first
	sort.Slice(r.faces, func(a, b int) bool { return r.faces[a].depth < r.faces[b].depth })

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
	for _, fd := range r.faces {
		src := r.strip.Rect(r.shades[fd.id])
		srcPts := [3][2]float32{
			{float32(src.Min.X) + float32(src.Dx())/2, float32(src.Min.Y)},
			{float32(src.Min.X) + 0.5, float32(src.Max.Y)},
			{float32(src.Max.X) - 0.5, float32(src.Max.Y)},
		}

		// shape.MaxFaces keeps this within uint16
		base := uint16(len(r.vertices))
		for j, p := range fd.pts {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(cx + p.X*r.Scale),
				DstY:   float32(cy + p.Y*r.Scale),
				SrcX:   srcPts[j][0],
				SrcY:   srcPts[j][1],
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}
		r.indices = append(r.indices, base, base+1, base+2)
	}

	op := &ebiten.DrawTrianglesOptions{Filter: ebiten.FilterLinear}
	screen.DrawTriangles(r.vertices, r.indices, r.stripImg, op)
}
