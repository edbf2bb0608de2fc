package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// recordingSurface logs every draw call as a short string.
type recordingSurface struct {
	ops []string
}

func (r *recordingSurface) DrawImage(img *ebiten.Image, dst Rect) {
	r.ops = append(r.ops, fmt.Sprintf("image %v", dst))
}

func (r *recordingSurface) StrokeRect(rect Rect, width float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("rect %v", rect))
}

func (r *recordingSurface) FillCircle(cx, cy, radius float64, c color.Color) {
	r.ops = append(r.ops, fmt.Sprintf("circle %v,%v", cx, cy))
}

func (r *recordingSurface) mark(s string) {
	r.ops = append(r.ops, s)
}
