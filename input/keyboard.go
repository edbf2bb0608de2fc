package input

import "github.com/hajimehoshi/ebiten/v2"

// KeyboardChannels returns one button channel per ebiten key, in key-code
// order, so that a keyboard snapshot index equals the ebiten key code.
func KeyboardChannels() []Channel {
	out := make([]Channel, int(ebiten.KeyMax)+1)
	for k := range out {
		out[k] = Button(k)
	}
	return out
}

// NewKeyboardDevice returns a device covering every key on src. Pass a
// KeyboardSource for the real keyboard.
func NewKeyboardDevice(src Source) (*Device, error) {
	return NewDevice("keyboard", src, KeyboardChannels()...)
}

// KeyboardLayout binds the menu keys.
var KeyboardLayout = &Layout{
	Name: "keyboard",
	Channels: map[string]int{
		"ESCAPE": int(ebiten.KeyEscape),
		"SPACE":  int(ebiten.KeySpace),
		"RETURN": int(ebiten.KeyEnter),
	},
}

// KeyboardWASD extends KeyboardLayout with movement on W, A, S and D.
var KeyboardWASD = KeyboardLayout.Extend("keyboard-wasd", map[string]int{
	"UP":    int(ebiten.KeyW),
	"LEFT":  int(ebiten.KeyA),
	"DOWN":  int(ebiten.KeyS),
	"RIGHT": int(ebiten.KeyD),
})

// KeyboardArrows extends KeyboardLayout with movement on the arrow keys.
var KeyboardArrows = KeyboardLayout.Extend("keyboard-arrows", map[string]int{
	"UP":    int(ebiten.KeyArrowUp),
	"LEFT":  int(ebiten.KeyArrowLeft),
	"DOWN":  int(ebiten.KeyArrowDown),
	"RIGHT": int(ebiten.KeyArrowRight),
})
