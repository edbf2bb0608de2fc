package input

// GameCube controller channel indices, as read through a Mayflash adapter.
// Each constant is the channel's position in GamecubeChannels and therefore
// its index in every snapshot of a GameCube device.
const (
	GCA = iota
	GCB
	GCX
	GCY
	GCZ
	GCStart
	GCL
	GCR
	GCLeft
	GCRight
	GCUp
	GCDown
	GCCLeft
	GCCRight
	GCCUp
	GCCDown
	GCLAxis
	GCRAxis
	GCDPadUp
	GCDPadDown
	GCDPadLeft
	GCDPadRight
)

// GamecubeChannels is the Mayflash adapter channel table. The sticks have a
// small dead zone at 0.1 and saturate at 0.77, below the physical maximum,
// because worn sticks rarely reach 1.
var GamecubeChannels = []Channel{
	GCA:     Button(1),
	GCB:     Button(2),
	GCX:     Button(0),
	GCY:     Button(3),
	GCZ:     Button(7),
	GCStart: Button(9),
	GCL:     Button(4),
	GCR:     Button(5),

	GCLeft:  Axis(0, -0.1, -0.77),
	GCRight: Axis(0, 0.1, 0.77),
	GCUp:    Axis(1, -0.1, -0.77),
	GCDown:  Axis(1, 0.1, 0.77),

	GCCLeft:  Axis(5, -0.1, -0.77),
	GCCRight: Axis(5, 0.1, 0.77),
	GCCUp:    Axis(2, -0.1, -0.77),
	GCCDown:  Axis(2, 0.1, 0.77),

	GCLAxis: Axis(3, -0.5, 1),
	GCRAxis: Axis(4, -0.5, 1),

	GCDPadUp:    Hat(0, HatVertical, 0, 1),
	GCDPadDown:  Hat(0, HatVertical, 0, -1),
	GCDPadLeft:  Hat(0, HatHorizontal, 0, -1),
	GCDPadRight: Hat(0, HatHorizontal, 0, 1),
}

// GamecubeLayout names every GameCube channel.
var GamecubeLayout = &Layout{
	Name: "gamecube",
	Channels: map[string]int{
		"A":           GCA,
		"B":           GCB,
		"X":           GCX,
		"Y":           GCY,
		"Z":           GCZ,
		"START":       GCStart,
		"L":           GCL,
		"R":           GCR,
		"LEFT":        GCLeft,
		"RIGHT":       GCRight,
		"UP":          GCUp,
		"DOWN":        GCDown,
		"C_LEFT":      GCCLeft,
		"C_RIGHT":     GCCRight,
		"C_UP":        GCCUp,
		"C_DOWN":      GCCDown,
		"L_AXIS":      GCLAxis,
		"R_AXIS":      GCRAxis,
		"D_PAD_UP":    GCDPadUp,
		"D_PAD_DOWN":  GCDPadDown,
		"D_PAD_LEFT":  GCDPadLeft,
		"D_PAD_RIGHT": GCDPadRight,
	},
}

// NewGamecubeDevice opens the index-th gamepad on sys as a GameCube device.
func NewGamecubeDevice(sys *Subsystem, index int) (*Device, error) {
	pad, err := sys.Gamepad(index)
	if err != nil {
		return nil, err
	}
	return NewDevice("gamecube", pad, GamecubeChannels...)
}
