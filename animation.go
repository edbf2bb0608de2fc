package sapling

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of an entity's body
// simultaneously. Create one via the convenience constructors (TweenPosition,
// TweenRect) and call Update(dt) each tick, typically from a state function.
// If the target entity is killed, the group stops immediately.
//
// There is no global animation manager. Callers drive Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Entity
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target has been killed, Done is set to true and no writes
// occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target != nil && g.target.IsDead() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that moves the centre of e's body to
// (toX, toY) over duration seconds using the easing function.
// Panics if e has no body.
func TweenPosition(e *Entity, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := mustBody(e)
	g := &TweenGroup{count: 2, target: e}
	g.tweens[0] = gween.New(float32(b.Rect.X), float32(toX-b.Rect.Width/2), duration, fn)
	g.tweens[1] = gween.New(float32(b.Rect.Y), float32(toY-b.Rect.Height/2), duration, fn)
	g.fields[0] = &b.Rect.X
	g.fields[1] = &b.Rect.Y
	return g
}

// TweenRect creates a TweenGroup that animates all four components of e's
// body rectangle to the target rectangle.
// Panics if e has no body.
func TweenRect(e *Entity, to Rect, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := mustBody(e)
	g := &TweenGroup{count: 4, target: e}
	g.tweens[0] = gween.New(float32(b.Rect.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(b.Rect.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(b.Rect.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(b.Rect.Height), float32(to.Height), duration, fn)
	g.fields[0] = &b.Rect.X
	g.fields[1] = &b.Rect.Y
	g.fields[2] = &b.Rect.Width
	g.fields[3] = &b.Rect.Height
	return g
}

func mustBody(e *Entity) *Body {
	if e == nil || e.Body == nil {
		panic("sapling: tween target has no body")
	}
	return e.Body
}
