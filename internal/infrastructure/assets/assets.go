// Package assets loads the sprites and fonts the game needs at startup.
package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // sprite format
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Paths of the game assets, relative to the asset directory
const (
	Player1Sprite = "player1.png"
	Player2Sprite = "player2.png"
	BallSprite    = "ball.png"
	GameFont      = "pong.ttf" // monospace font for scores and the centre line
	MenuFont      = "menu.ttf" // display font for menu and header text
)

// Bundle holds every loaded asset.
// Sprites stay decoded images; the renderer uploads them on first draw.
type Bundle struct {
	Player1  image.Image
	Player2  image.Image
	Ball     image.Image
	GameFont *text.GoTextFaceSource
	MenuFont *text.GoTextFaceSource
}

// Load reads all assets from fsys. The first failure is returned with the
// offending path.
func Load(fsys fs.FS) (*Bundle, error) {
	var (
		b   Bundle
		err error
	)

	if b.Player1, err = LoadImage(fsys, Player1Sprite); err != nil {
		return nil, err
	}
	if b.Player2, err = LoadImage(fsys, Player2Sprite); err != nil {
		return nil, err
	}
	if b.Ball, err = LoadImage(fsys, BallSprite); err != nil {
		return nil, err
	}
	if b.GameFont, err = LoadFont(fsys, GameFont); err != nil {
		return nil, err
	}
	if b.MenuFont, err = LoadFont(fsys, MenuFont); err != nil {
		return nil, err
	}

	return &b, nil
}

// LoadImage reads and decodes an image file
func LoadImage(fsys fs.FS, path string) (image.Image, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode sprite %s: image is empty", path)
	}

	return img, nil
}

// LoadFont reads and parses a TrueType/OpenType font file
func LoadFont(fsys fs.FS, path string) (*text.GoTextFaceSource, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}

	return src, nil
}
