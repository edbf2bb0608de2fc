package input

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Source is the raw input collaborator a Device reads from. Each method is a
// synchronous read of the state captured for the current tick.
type Source interface {
	// Button reports whether the raw button id is held.
	Button(id int) bool
	// Axis returns the raw axis reading in the device's native range.
	Axis(id int) float64
	// Hat returns the two discrete components of hat id, each in {-1, 0, 1}.
	Hat(id int) (x, y int)
}

var (
	// ErrSubsystemClosed is returned when a Subsystem is used before Init or
	// after Shutdown.
	ErrSubsystemClosed = errors.New("input: subsystem not initialised")
	// ErrNoGamepad is returned when the requested gamepad is not connected.
	ErrNoGamepad = errors.New("input: gamepad not connected")
)

// Subsystem is the process-wide gamepad handle. Devices that read physical
// gamepads obtain their Source from an initialised Subsystem instead of the
// global ebiten state.
type Subsystem struct {
	open bool
	ids  []ebiten.GamepadID
}

// NewSubsystem returns an uninitialised subsystem.
func NewSubsystem() *Subsystem {
	return &Subsystem{}
}

// Init opens the subsystem. Calling Init twice is a no-op.
func (s *Subsystem) Init() {
	s.open = true
}

// Shutdown closes the subsystem. Sources handed out earlier keep reading but
// no new gamepads can be opened.
func (s *Subsystem) Shutdown() {
	s.open = false
	s.ids = s.ids[:0]
}

// Initialized reports whether Init has been called without a later Shutdown.
func (s *Subsystem) Initialized() bool {
	return s.open
}

// Gamepad returns a source for the index-th connected gamepad, in the order
// ebiten reports them.
func (s *Subsystem) Gamepad(index int) (*GamepadSource, error) {
	if !s.open {
		return nil, ErrSubsystemClosed
	}
	if index < 0 {
		return nil, fmt.Errorf("%w: index %d", ErrNoGamepad, index)
	}
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	if index >= len(s.ids) {
		return nil, fmt.Errorf("%w: index %d (%d connected)", ErrNoGamepad, index, len(s.ids))
	}
	return &GamepadSource{ID: s.ids[index]}, nil
}

// Keyboard returns the keyboard source.
func (s *Subsystem) Keyboard() (KeyboardSource, error) {
	if !s.open {
		return KeyboardSource{}, ErrSubsystemClosed
	}
	return KeyboardSource{}, nil
}

// GamepadSource reads one ebiten gamepad.
type GamepadSource struct {
	ID ebiten.GamepadID
}

// Button reports whether raw gamepad button id is pressed.
func (g *GamepadSource) Button(id int) bool {
	return ebiten.IsGamepadButtonPressed(g.ID, ebiten.GamepadButton(id))
}

// Axis returns the raw value of axis id in [-1, 1].
func (g *GamepadSource) Axis(id int) float64 {
	return ebiten.GamepadAxisValue(g.ID, ebiten.GamepadAxisType(id))
}

// Hat returns the d-pad state. ebiten exposes the d-pad through the standard
// gamepad layout only, so hat 0 is the left cluster and every other hat, or a
// pad without a standard mapping, reads as centred. Up is +1 on the vertical
// component.
func (g *GamepadSource) Hat(id int) (x, y int) {
	if id != 0 || !ebiten.IsStandardGamepadLayoutAvailable(g.ID) {
		return 0, 0
	}
	if ebiten.IsStandardGamepadButtonPressed(g.ID, ebiten.StandardGamepadButtonLeftLeft) {
		x--
	}
	if ebiten.IsStandardGamepadButtonPressed(g.ID, ebiten.StandardGamepadButtonLeftRight) {
		x++
	}
	if ebiten.IsStandardGamepadButtonPressed(g.ID, ebiten.StandardGamepadButtonLeftTop) {
		y++
	}
	if ebiten.IsStandardGamepadButtonPressed(g.ID, ebiten.StandardGamepadButtonLeftBottom) {
		y--
	}
	return x, y
}

// KeyboardSource reads the keyboard. Button ids are ebiten key codes; the
// keyboard has no axes or hats.
type KeyboardSource struct{}

// Button reports whether the ebiten key with code id is held.
func (KeyboardSource) Button(id int) bool {
	return ebiten.IsKeyPressed(ebiten.Key(id))
}

// Axis always returns 0.
func (KeyboardSource) Axis(int) float64 { return 0 }

// Hat always returns a centred hat.
func (KeyboardSource) Hat(int) (int, int) { return 0, 0 }
