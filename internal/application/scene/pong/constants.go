package pong

import (
	"image/color"
	"strings"

	"github.com/younwookim/pong/internal/domain/entity"
)

// Field
const (
	FieldWidth  = 640.0
	FieldHeight = 480.0

	// FieldMargin keeps paddles this far from the top and bottom edges
	FieldMargin = 10.0
	// PaddleInset is the distance of each paddle from its side edge
	PaddleInset = 16.0
	// ScoreMargin is how far past a side edge the ball travels before it scores
	ScoreMargin = 100.0
)

// Speeds in pixels per tick
const (
	PaddleSpeedNormal = 8.0
	PaddleSpeedHigh   = 13.0
	BallSpeedNormal   = 5.0
	BallSpeedHard     = 9.0

	// PaddleSpin is the vertical speed added for a hit at the paddle's very end
	PaddleSpin = 4.0
	// BallAcc is added to the horizontal ball speed on every paddle hit
	BallAcc = 0.05
)

// WindowTitle is the title of the game window
const WindowTitle = "Pong-Game"

// ScoreLimit ends the round
const ScoreLimit uint8 = 15

// Simulation ticks per second
const (
	DefaultUpdateRate = 60.0
	FreezeUpdateRate  = 0.000001
)

// Font sizes
const (
	ScoreTextSize      = 21.0
	CenterLineSize     = 18.0
	MainMenuHeaderSize = 20.0
	MainMenuUsageSize  = 15.0
)

var (
	scoreTextOffset = entity.Vec2{X: 32, Y: 16}

	menuHeaderPos = entity.Vec2{X: 160, Y: 40}
	menuUsagePos  = entity.Vec2{X: 160, Y: 100}

	winnerPosPlayer1 = entity.Vec2{X: FieldWidth/2 - 300, Y: 100}
	winnerPosPlayer2 = entity.Vec2{X: FieldWidth/2 + 25, Y: 100}

	// cornflower blue
	backgroundColor = color.RGBA{R: 100, G: 149, B: 237, A: 255}
)

var dashedMiddleLine = strings.TrimSuffix(strings.Repeat("|\n", 27), "\n")

const mainMenuHeader = ">---- The Pong-Game ----<"

const mainMenuUsage = `ESC             =>  Quit game
P                => Pause/Resume
Backspace => Main menu

Player 1 (Left hand side):
- Use 'W' and 'S' to move the paddle

Player 2 (Right hand side):
- Use 'UP' and 'DOWN' to move the paddle

Start playing, choose game play mode:
--------------------------------------
N    =>  Normal
H    =>  Hard`

const winMessage = `   > You win the game <

Backspace => Main menu`
