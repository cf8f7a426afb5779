// Package scene defines the contract between a game state and the host loop.
//
// The host calls Event for every discrete key press, Update once per
// simulation tick and Draw once per rendered frame. The state talks back to
// the host only through Host and Canvas.
package scene

import (
	"image/color"

	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/domain/entity"
)

// State is a game state driven by the host loop.
type State interface {
	// Update advances the simulation by one tick.
	// Returns an error to terminate the game.
	Update(host Host) error

	// Draw renders the current state. It must not change the state.
	Draw(canvas Canvas) error

	// Event handles a discrete input event such as a key press.
	Event(host Host, ev system.Event) error
}

// Host is what a State may ask of the loop that drives it.
type Host interface {
	// IsKeyDown reports whether a key is currently held.
	IsKeyDown(k system.Key) bool

	// SetTickRate changes the number of simulation ticks per second.
	// Rendering is not affected.
	SetTickRate(tps float64)

	// Canvas returns a surface for drawing outside the normal frame cycle.
	Canvas() Canvas
}

// Canvas is a 2D drawing surface.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c color.Color)

	// DrawTexture draws tex with its top-left corner at pos.
	DrawTexture(tex entity.Texture, pos entity.Vec2)

	// DrawText draws a label's content with its top-left corner at pos.
	DrawText(l *entity.Label, pos entity.Vec2)
}
