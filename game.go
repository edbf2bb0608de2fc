package sapling

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Input is anything that samples devices once per tick, such as an
// input.Controller. Inputs are updated before the entity tree.
type Input interface {
	Update()
}

// debugStatsInterval is how many ticks pass between debug stat lines.
const debugStatsInterval = 60

// Game drives a root entity from the ebiten loop: each tick it updates every
// Input, then the root; each frame it draws the root onto the screen. Game
// implements ebiten.Game. The game ends when the root entity is killed.
type Game struct {
	Root   *Entity
	Width  int
	Height int

	// Background fills the screen before drawing; nil leaves it untouched.
	Background color.Color

	inputs []Input
	debug  bool
	ticks  uint64
	stats  debugStats
}

// NewGame returns a game driving root at the given logical size.
func NewGame(root *Entity, width, height int) *Game {
	if root == nil {
		panic("sapling: game needs a root entity")
	}
	return &Game{Root: root, Width: width, Height: height}
}

// AddInput registers inputs to be updated at the start of every tick, in
// registration order.
func (g *Game) AddInput(inputs ...Input) {
	g.inputs = append(g.inputs, inputs...)
}

// SetDebugMode enables or disables debug drawing and checks. When enabled,
// entity bodies are outlined, misuse panics, and timing stats are logged to
// stderr every debugStatsInterval ticks.
func (g *Game) SetDebugMode(enabled bool) {
	g.debug = enabled
	SetDebugMode(enabled)
}

// DebugMode reports whether debug mode is enabled.
func (g *Game) DebugMode() bool {
	return g.debug
}

// Ticks returns the number of completed updates.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.Root.IsDead() {
		return ebiten.Termination
	}
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	for _, in := range g.inputs {
		in.Update()
	}
	g.Root.Update()
	g.ticks++

	if g.debug {
		g.stats.updateTime = time.Since(t0)
		g.stats.tick = g.ticks
		if g.ticks%debugStatsInterval == 0 {
			g.stats.entities = countEntities(g.Root, make(map[*Entity]bool))
			debugLog(g.stats)
		}
	}
	if g.Root.IsDead() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}
	if g.Background != nil {
		screen.Fill(g.Background)
	}
	g.Root.Draw(NewScreenSurface(screen), g.debug)
	if g.debug {
		g.stats.drawTime = time.Since(t0)
	}
}

// Layout implements ebiten.Game. A zero Width or Height follows the outside
// size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.Width, g.Height
	if w <= 0 {
		w = outsideWidth
	}
	if h <= 0 {
		h = outsideHeight
	}
	return w, h
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the tick rate; 0 keeps ebiten's default of 60.
	TPS   int  `yaml:"tps"`
	Debug bool `yaml:"debug"`
	// ShowFPS adds an FPS overlay as the root's topmost child group.
	ShowFPS bool `yaml:"show_fps"`

	Background color.Color `yaml:"-"`
}

// Run opens a window and drives root until it is killed or the window is
// closed. Inputs are updated before the root each tick.
func Run(root *Entity, cfg RunConfig, inputs ...Input) error {
	g := NewGame(root, cfg.Width, cfg.Height)
	g.Background = cfg.Background
	g.AddInput(inputs...)
	g.SetDebugMode(cfg.Debug)
	if cfg.ShowFPS {
		NewFPSEntity(root.AddChildGroup(NewGroup("fps")))
	}

	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	return ebiten.RunGame(g)
}
