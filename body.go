package sapling

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultDebugColor is the outline colour for bodies without a DebugColor.
var DefaultDebugColor color.Color = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// Body is the spatial extent of an entity: a rectangle used for positioning
// and collision, and an optional image drawn centred on it.
type Body struct {
	Rect  Rect
	Image *ebiten.Image

	// FrameDuration is the number of ticks each animation frame is shown
	// (higher is slower). See Entity.AnimationFrame.
	FrameDuration int

	// DebugColor is used for the debug outline; nil means DefaultDebugColor.
	DebugColor color.Color
}

// NewBody returns a body of the given size centred on (x, y).
func NewBody(x, y, width, height float64) *Body {
	b := &Body{Rect: Rect{Width: width, Height: height}}
	b.SetPosition(x, y)
	return b
}

// NewBodyEntity creates an entity with a body centred on (x, y).
func NewBodyEntity(name string, x, y, width, height float64, groups ...*Group) *Entity {
	e := NewEntity(name, groups...)
	e.Body = NewBody(x, y, width, height)
	return e
}

// X returns the horizontal centre.
func (b *Body) X() float64 {
	return b.Rect.X + b.Rect.Width/2
}

// Y returns the vertical centre.
func (b *Body) Y() float64 {
	return b.Rect.Y + b.Rect.Height/2
}

// SetX moves the body so its centre is at x, rounded to the nearest pixel.
func (b *Body) SetX(x float64) {
	b.Rect.X = math.Round(x) - b.Rect.Width/2
}

// SetY moves the body so its centre is at y, rounded to the nearest pixel.
func (b *Body) SetY(y float64) {
	b.Rect.Y = math.Round(y) - b.Rect.Height/2
}

// SetPosition moves the body's centre to (x, y).
func (b *Body) SetPosition(x, y float64) {
	b.SetX(x)
	b.SetY(y)
}

// ImageRect returns the destination rectangle of the image: its natural
// size, centred on the body. Returns the zero Rect when there is no image.
func (b *Body) ImageRect() Rect {
	if b.Image == nil {
		return Rect{}
	}
	sz := b.Image.Bounds().Size()
	w, h := float64(sz.X), float64(sz.Y)
	return Rect{X: b.X() - w/2, Y: b.Y() - h/2, Width: w, Height: h}
}

func (b *Body) debugColor() color.Color {
	if b.DebugColor != nil {
		return b.DebugColor
	}
	return DefaultDebugColor
}
