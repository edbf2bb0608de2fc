package sapling

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the render target entities draw onto. It only needs the three
// primitives the core uses.
type Surface interface {
	// DrawImage draws img scaled to fill dst.
	DrawImage(img *ebiten.Image, dst Rect)
	// StrokeRect draws the outline of r.
	StrokeRect(r Rect, width float64, c color.Color)
	// FillCircle draws a filled circle centred on (cx, cy).
	FillCircle(cx, cy, radius float64, c color.Color)
}

// ScreenSurface draws onto an ebiten image.
type ScreenSurface struct {
	Target *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewScreenSurface wraps target.
func NewScreenSurface(target *ebiten.Image) *ScreenSurface {
	return &ScreenSurface{Target: target}
}

// DrawImage draws img into dst on the target.
func (s *ScreenSurface) DrawImage(img *ebiten.Image, dst Rect) {
	sz := img.Bounds().Size()
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(dst.Width/float64(sz.X), dst.Height/float64(sz.Y))
	s.op.GeoM.Translate(dst.X, dst.Y)
	s.Target.DrawImage(img, &s.op)
}

// StrokeRect draws the outline of r on the target.
func (s *ScreenSurface) StrokeRect(r Rect, width float64, c color.Color) {
	vector.StrokeRect(s.Target,
		float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
		float32(width), c, false)
}

// FillCircle draws a filled circle on the target.
func (s *ScreenSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.Target, float32(cx), float32(cy), float32(radius), c, false)
}
