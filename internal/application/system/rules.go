package system

import (
	"math"

	"github.com/younwookim/pong/internal/domain/entity"
)

// Player identifies a side of the field
type Player int

const (
	PlayerNone Player = iota
	PlayerOne
	PlayerTwo
)

// String returns the string representation of the player
func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "Player1"
	case PlayerTwo:
		return "Player2"
	default:
		return "None"
	}
}

// MovePaddle moves a paddle by its vertical speed.
// The paddle only starts a move while inside [upper, lower] and never
// leaves that range.
func MovePaddle(p *entity.Sprite, up, down bool, upper, lower float64) {
	speed := p.Velocity.Y

	if up && p.Position.Y > upper {
		p.Position.Y = math.Max(p.Position.Y-speed, upper)
	}

	if down && p.Position.Y < lower {
		p.Position.Y = math.Min(p.Position.Y+speed, lower)
	}
}

// Advance moves a sprite one step along its velocity
func Advance(s *entity.Sprite) {
	s.Position = s.Position.Add(s.Velocity)
}

// HitPaddle returns the first paddle the ball overlaps, or nil
func HitPaddle(ball *entity.Sprite, paddles ...*entity.Sprite) *entity.Sprite {
	bounds := ball.Bounds()
	for _, p := range paddles {
		if bounds.Intersects(p.Bounds()) {
			return p
		}
	}
	return nil
}

// Deflect bounces the ball off a paddle.
// Horizontal speed grows by acc and flips; vertical speed gets spin
// proportional to how far from the paddle centre the ball struck.
func Deflect(ball, paddle *entity.Sprite, acc, spin float64) {
	ball.Velocity.X = -(ball.Velocity.X + acc*math.Copysign(1, ball.Velocity.X))

	// Between -1 and 1 while the two overlap
	offset := (paddle.Centre().Y - ball.Centre().Y) / paddle.Height()

	ball.Velocity.Y += spin * -offset
}

// ReflectOffEdges inverts the vertical velocity when the ball touches the
// top or bottom of the field. Returns true on a bounce.
func ReflectOffEdges(ball *entity.Sprite, fieldHeight float64) bool {
	if ball.Position.Y <= 0 || ball.Position.Y+ball.Height() >= fieldHeight {
		ball.Velocity.Y = -ball.Velocity.Y
		return true
	}
	return false
}

// Scorer returns who scores when the ball has left the field by more than
// margin pixels: past the right edge player one, past the left player two.
func Scorer(ball *entity.Sprite, fieldWidth, margin float64) Player {
	switch {
	case ball.Position.X > fieldWidth+margin:
		return PlayerOne
	case ball.Position.X < -margin:
		return PlayerTwo
	default:
		return PlayerNone
	}
}
