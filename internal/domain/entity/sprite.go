package entity

import "image"

// Texture is anything with pixel bounds that a Canvas knows how to draw.
// *ebiten.Image and every image.Image satisfy it.
type Texture interface {
	Bounds() image.Rectangle
}

// Sprite is a moving textured object (a paddle or the ball).
// Its size always comes from the texture.
type Sprite struct {
	Texture  Texture
	Position Vec2
	Velocity Vec2
}

// NewSprite creates a sprite at pos with the given velocity
func NewSprite(tex Texture, pos, vel Vec2) *Sprite {
	return &Sprite{
		Texture:  tex,
		Position: pos,
		Velocity: vel,
	}
}

// Width returns the texture width in pixels
func (s *Sprite) Width() float64 {
	return float64(s.Texture.Bounds().Dx())
}

// Height returns the texture height in pixels
func (s *Sprite) Height() float64 {
	return float64(s.Texture.Bounds().Dy())
}

// Bounds returns the sprite's bounding rectangle in screen space
func (s *Sprite) Bounds() Rect {
	return Rect{
		X:      s.Position.X,
		Y:      s.Position.Y,
		Width:  s.Width(),
		Height: s.Height(),
	}
}

// Centre returns the centre of the sprite in screen space
func (s *Sprite) Centre() Vec2 {
	return s.Bounds().Centre()
}

// CentredIn returns the top-left position that centres a w x h box
// inside a field of fieldW x fieldH.
func CentredIn(w, h, fieldW, fieldH float64) Vec2 {
	return Vec2{X: (fieldW - w) / 2, Y: (fieldH - h) / 2}
}
