package entity

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Label is a piece of text drawn at a fixed position.
// Score labels also carry a counter; Content always mirrors Value for them.
type Label struct {
	Content  string
	Value    uint8
	Position Vec2
	Face     text.Face
}

// NewLabel creates a static text label
func NewLabel(content string, face text.Face, pos Vec2) *Label {
	return &Label{
		Content:  content,
		Position: pos,
		Face:     face,
	}
}

// NewScoreLabel creates a label showing the counter value
func NewScoreLabel(value uint8, face text.Face, pos Vec2) *Label {
	l := &Label{Position: pos, Face: face}
	l.SetValue(value)
	return l
}

// SetValue updates the counter and its displayed text together
func (l *Label) SetValue(v uint8) {
	l.Value = v
	l.Content = strconv.Itoa(int(v))
}

// Increment adds one to the counter and returns the new value
func (l *Label) Increment() uint8 {
	l.SetValue(l.Value + 1)
	return l.Value
}
