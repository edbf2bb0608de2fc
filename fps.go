package sapling

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefreshTicks is how many ticks pass between redraws of the FPS text.
const fpsRefreshTicks = 30

// NewFPSEntity creates an entity whose body image shows the current FPS and
// TPS. It is redrawn every fpsRefreshTicks ticks. Add it to the last child
// group of the root so it is drawn on top.
func NewFPSEntity(groups ...*Group) *Entity {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)

	e := NewBodyEntity("fps", 50, 16, 100, 32, groups...)
	e.Body.Image = img

	e.SetState(func() {
		if e.Tick()%fpsRefreshTicks != 0 {
			return
		}
		img.Clear()
		img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	})
	return e
}
