// Package game provides the host loop that drives a scene.State on top of Ebiten.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/system"
)

// DefaultTPS is the rate Ebiten calls Update at
const DefaultTPS = 60

// maxStepsPerTick bounds how many simulation steps one Update may run
const maxStepsPerTick = 4

// Game implements ebiten.Game and scene.Host.
//
// Ebiten ticks at a fixed rate; the state's own tick rate is layered on top
// with an accumulator so a state can slow the simulation down (down to a
// standstill) while events and rendering keep running.
type Game struct {
	state    scene.State
	input    system.InputSource
	screenW  int
	screenH  int
	hostTPS  float64
	tickRate float64
	acc      float64
	held     system.InputState

	back     *ebiten.Image
	textures *TextureCache
	log      *zap.Logger
}

// New creates a Game driving state with input from src.
func New(state scene.State, src system.InputSource, screenW, screenH int, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{
		state:    state,
		input:    src,
		screenW:  screenW,
		screenH:  screenH,
		hostTPS:  DefaultTPS,
		tickRate: DefaultTPS,
		textures: NewTextureCache(),
		log:      log.Named("game"),
	}
}

// Update polls input, dispatches key presses and runs the simulation steps
// due this tick. Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.held = g.input.GetInput()
	if g.held.Quit {
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	// Events come first so a key press is visible to the same tick's step
	for _, ev := range g.held.Events() {
		if err := g.state.Event(g, ev); err != nil {
			return err
		}
	}

	return g.step()
}

func (g *Game) step() error {
	g.acc += g.tickRate / g.hostTPS

	for steps := 0; g.acc >= 1 && steps < maxStepsPerTick; steps++ {
		if err := g.state.Update(g); err != nil {
			return err
		}
		g.acc--
	}

	// Drop any backlog left after a slow frame
	if g.acc >= 1 {
		g.acc = 0
	}
	return nil
}

// Draw renders the state into the back buffer and presents it.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.back == nil {
		g.back = ebiten.NewImage(g.screenW, g.screenH)
	}

	if err := g.state.Draw(NewCanvas(g.back, g.textures)); err != nil {
		g.log.Error("draw failed", zap.Error(err))
		return
	}
	screen.DrawImage(g.back, nil)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// IsKeyDown reports whether k was held at the start of this tick
func (g *Game) IsKeyDown(k system.Key) bool {
	return g.held.IsKeyDown(k)
}

// SetTickRate changes the simulation rate. Non-positive rates are ignored.
func (g *Game) SetTickRate(tps float64) {
	if tps <= 0 {
		g.log.Warn("ignoring tick rate", zap.Float64("tps", tps))
		return
	}
	g.tickRate = tps
	g.log.Debug("tick rate changed", zap.Float64("tps", tps))
}

// Canvas returns the back buffer. Until the first frame there is nothing
// to present, so draws are discarded.
func (g *Game) Canvas() scene.Canvas {
	if g.back == nil {
		return discardCanvas{}
	}
	return NewCanvas(g.back, g.textures)
}
