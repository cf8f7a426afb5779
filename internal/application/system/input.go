package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Key is a logical key the game reacts to
type Key int

const (
	KeyW Key = iota
	KeyS
	KeyUp
	KeyDown
	KeyP
	KeyN
	KeyH
	KeyBackspace
	KeyEscape
)

// String returns the key name
func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyP:
		return "P"
	case KeyN:
		return "N"
	case KeyH:
		return "H"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// InputState holds the input of a single host tick
type InputState struct {
	// Held keys, polled continuously for paddle movement
	P1Up   bool
	P1Down bool
	P2Up   bool
	P2Down bool

	// Keys that went down this tick
	Pause       bool
	StartNormal bool
	StartHard   bool
	Menu        bool

	Quit bool
}

// IsKeyDown reports whether a movement key is held
func (s InputState) IsKeyDown(k Key) bool {
	switch k {
	case KeyW:
		return s.P1Up
	case KeyS:
		return s.P1Down
	case KeyUp:
		return s.P2Up
	case KeyDown:
		return s.P2Down
	default:
		return false
	}
}

// Events returns the key presses of this tick in a fixed order
func (s InputState) Events() []Event {
	var events []Event
	if s.Pause {
		events = append(events, KeyPressed{Key: KeyP})
	}
	if s.StartNormal {
		events = append(events, KeyPressed{Key: KeyN})
	}
	if s.StartHard {
		events = append(events, KeyPressed{Key: KeyH})
	}
	if s.Menu {
		events = append(events, KeyPressed{Key: KeyBackspace})
	}
	return events
}

// InputSource produces one InputState per host tick
type InputSource interface {
	GetInput() InputState
}

// InputSystem reads the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		P1Up:        ebiten.IsKeyPressed(ebiten.KeyW),
		P1Down:      ebiten.IsKeyPressed(ebiten.KeyS),
		P2Up:        ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		P2Down:      ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Pause:       inpututil.IsKeyJustPressed(ebiten.KeyP),
		StartNormal: inpututil.IsKeyJustPressed(ebiten.KeyN),
		StartHard:   inpututil.IsKeyJustPressed(ebiten.KeyH),
		Menu:        inpututil.IsKeyJustPressed(ebiten.KeyBackspace),
		Quit:        inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}
}
