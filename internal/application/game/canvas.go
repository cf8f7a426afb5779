package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/domain/entity"
)

var textColor = color.White

// Canvas draws onto an Ebiten image.
type Canvas struct {
	dst      *ebiten.Image
	textures *TextureCache
}

var _ scene.Canvas = (*Canvas)(nil)

// NewCanvas creates a canvas over dst
func NewCanvas(dst *ebiten.Image, textures *TextureCache) *Canvas {
	return &Canvas{dst: dst, textures: textures}
}

// Clear fills the whole image with c
func (c *Canvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

// DrawTexture draws tex with its top-left corner at pos
func (c *Canvas) DrawTexture(tex entity.Texture, pos entity.Vec2) {
	img := c.textures.Image(tex)
	if img == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	c.dst.DrawImage(img, op)
}

// DrawText draws the label content in white, one line per newline
func (c *Canvas) DrawText(l *entity.Label, pos entity.Vec2) {
	if l.Face == nil {
		return
	}

	m := l.Face.Metrics()
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(textColor)
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap

	text.Draw(c.dst, l.Content, l.Face, op)
}

// TextureCache uploads decoded images to the GPU once and reuses them.
type TextureCache struct {
	images map[image.Image]*ebiten.Image
}

// NewTextureCache creates an empty cache
func NewTextureCache() *TextureCache {
	return &TextureCache{images: make(map[image.Image]*ebiten.Image)}
}

// Image returns the Ebiten image for tex, or nil when tex cannot be drawn
func (tc *TextureCache) Image(tex entity.Texture) *ebiten.Image {
	switch t := tex.(type) {
	case *ebiten.Image:
		return t
	case image.Image:
		if img, ok := tc.images[t]; ok {
			return img
		}
		img := ebiten.NewImageFromImage(t)
		tc.images[t] = img
		return img
	default:
		return nil
	}
}

type discardCanvas struct{}

func (discardCanvas) Clear(color.Color)                       {}
func (discardCanvas) DrawTexture(entity.Texture, entity.Vec2) {}
func (discardCanvas) DrawText(*entity.Label, entity.Vec2)     {}
