// Package audio plays the game's synthesized sound effects.
package audio

// Effect identifies a sound effect
type Effect int

const (
	EffectPaddleHit Effect = iota
	EffectWallBounce
	EffectScore
	EffectWin
)

// String returns the effect name
func (e Effect) String() string {
	switch e {
	case EffectPaddleHit:
		return "PaddleHit"
	case EffectWallBounce:
		return "WallBounce"
	case EffectScore:
		return "Score"
	case EffectWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// Player plays sound effects
type Player interface {
	Play(e Effect)
}

// Nop is a Player that plays nothing
type Nop struct{}

// Play does nothing
func (Nop) Play(Effect) {}
