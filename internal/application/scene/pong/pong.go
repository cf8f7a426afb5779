// Package pong provides the two-player Pong game state.
package pong

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/domain/entity"
	"github.com/younwookim/pong/internal/infrastructure/audio"
)

// ErrMissingAsset is returned by New when a texture or font is nil
var ErrMissingAsset = errors.New("missing asset")

// BoolSource yields random booleans. It decides which way the ball serves.
type BoolSource interface {
	Bool() bool
}

type randSource struct {
	rng *rand.Rand
}

// NewRandSource returns a BoolSource seeded with seed
func NewRandSource(seed int64) BoolSource {
	return &randSource{rng: rand.New(rand.NewSource(seed))}
}

func (r *randSource) Bool() bool {
	return r.rng.Intn(2) == 1
}

// Assets are the textures and fonts a GameState is built from
type Assets struct {
	Player1  entity.Texture
	Player2  entity.Texture
	Ball     entity.Texture
	GameFont *text.GoTextFaceSource
	MenuFont *text.GoTextFaceSource
}

func (a Assets) validate() error {
	switch {
	case a.Player1 == nil:
		return fmt.Errorf("player 1 sprite: %w", ErrMissingAsset)
	case a.Player2 == nil:
		return fmt.Errorf("player 2 sprite: %w", ErrMissingAsset)
	case a.Ball == nil:
		return fmt.Errorf("ball sprite: %w", ErrMissingAsset)
	case a.GameFont == nil:
		return fmt.Errorf("game font: %w", ErrMissingAsset)
	case a.MenuFont == nil:
		return fmt.Errorf("menu font: %w", ErrMissingAsset)
	}
	return nil
}

// GameState holds every entity of a match and the mode flags.
// It is the only mutator of its entities.
type GameState struct {
	player1 *entity.Sprite
	player2 *entity.Sprite
	ball    *entity.Sprite

	scorePlayer1 *entity.Label
	scorePlayer2 *entity.Label
	centerLine   *entity.Label
	menuHeader   *entity.Label
	menuUsage    *entity.Label
	winnerMsg    *entity.Label

	isPaused          bool
	isMainMenuShowing bool
	isToEnd           bool
	difficulty        state.Difficulty

	rng   BoolSource
	sound audio.Player
	log   *zap.Logger
}

// New creates a GameState showing the main menu.
// sound and log may be nil.
func New(a Assets, rng BoolSource, sound audio.Player, log *zap.Logger) (*GameState, error) {
	if err := a.validate(); err != nil {
		return nil, fmt.Errorf("init game state: %w", err)
	}
	if rng == nil {
		return nil, errors.New("init game state: nil random source")
	}
	if sound == nil {
		sound = audio.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}

	scoreFace := &text.GoTextFace{Source: a.GameFont, Size: ScoreTextSize}
	headerFace := &text.GoTextFace{Source: a.MenuFont, Size: MainMenuHeaderSize}

	s := &GameState{
		ball: entity.NewSprite(a.Ball, entity.Vec2{}, entity.Vec2{}),

		scorePlayer1: entity.NewScoreLabel(0, scoreFace, entity.Vec2{X: FieldWidth/2 - 43, Y: 16}),
		scorePlayer2: entity.NewScoreLabel(0, scoreFace, entity.Vec2{X: FieldWidth / 2}.Add(scoreTextOffset)),
		centerLine: entity.NewLabel(dashedMiddleLine,
			&text.GoTextFace{Source: a.GameFont, Size: CenterLineSize},
			entity.Vec2{X: FieldWidth / 2}),
		menuHeader: entity.NewLabel(mainMenuHeader, headerFace, menuHeaderPos),
		menuUsage: entity.NewLabel(mainMenuUsage,
			&text.GoTextFace{Source: a.MenuFont, Size: MainMenuUsageSize},
			menuUsagePos),
		winnerMsg: entity.NewLabel(winMessage, headerFace, entity.Vec2{}),

		isMainMenuShowing: true,
		difficulty:        state.DifficultyNormal,

		rng:   rng,
		sound: sound,
		log:   log.Named("pong"),
	}

	// Both paddles start at normal speed; Hard raises it
	paddleVel := entity.Vec2{Y: PaddleSpeedNormal}
	s.player1 = entity.NewSprite(a.Player1, entity.Vec2{}, paddleVel)
	s.player2 = entity.NewSprite(a.Player2, entity.Vec2{}, paddleVel)
	s.resetPaddles()
	s.centreBall()

	return s, nil
}

// Mode reports the current mode
func (s *GameState) Mode() state.Mode {
	switch {
	case s.isMainMenuShowing:
		return state.ModeMainMenu
	case s.isToEnd:
		return state.ModeRoundOver
	case s.isPaused:
		return state.ModePaused
	default:
		return state.ModePlaying
	}
}

// Scores returns the counters of player 1 and player 2
func (s *GameState) Scores() (uint8, uint8) {
	return s.scorePlayer1.Value, s.scorePlayer2.Value
}

// Ball returns a copy of the ball
func (s *GameState) Ball() entity.Sprite {
	return *s.ball
}

// Paddles returns copies of the paddles of player 1 and player 2
func (s *GameState) Paddles() (entity.Sprite, entity.Sprite) {
	return *s.player1, *s.player2
}

// Difficulty returns the difficulty of the current or last round
func (s *GameState) Difficulty() state.Difficulty {
	return s.difficulty
}

// Winner returns the player that reached the score limit, if any
func (s *GameState) Winner() system.Player {
	switch {
	case s.scorePlayer1.Value == ScoreLimit:
		return system.PlayerOne
	case s.scorePlayer2.Value == ScoreLimit:
		return system.PlayerTwo
	default:
		return system.PlayerNone
	}
}

// Update advances the match by one tick (implements scene.State).
// Nothing moves in the main menu, after the round ended or while paused.
func (s *GameState) Update(host scene.Host) error {
	if s.isMainMenuShowing || s.isToEnd || s.isPaused {
		return nil
	}

	s.movePaddle(host, s.player1, system.KeyW, system.KeyS)
	s.movePaddle(host, s.player2, system.KeyUp, system.KeyDown)

	system.Advance(s.ball)

	if paddle := system.HitPaddle(s.ball, s.player1, s.player2); paddle != nil {
		system.Deflect(s.ball, paddle, BallAcc, PaddleSpin)
		s.sound.Play(audio.EffectPaddleHit)
	}

	if system.ReflectOffEdges(s.ball, FieldHeight) {
		s.sound.Play(audio.EffectWallBounce)
	}

	s.checkScore()
	return nil
}

func (s *GameState) movePaddle(host scene.Host, p *entity.Sprite, up, down system.Key) {
	lower := FieldHeight - p.Height() - FieldMargin
	system.MovePaddle(p, host.IsKeyDown(up), host.IsKeyDown(down), FieldMargin, lower)
}

// checkScore awards a point once the ball is out of play and ends the
// round at the score limit
func (s *GameState) checkScore() {
	switch system.Scorer(s.ball, FieldWidth, ScoreMargin) {
	case system.PlayerOne:
		s.award(system.PlayerOne, s.scorePlayer1)
	case system.PlayerTwo:
		s.award(system.PlayerTwo, s.scorePlayer2)
	}

	if s.Winner() != system.PlayerNone && !s.isToEnd {
		s.isToEnd = true
		s.sound.Play(audio.EffectWin)
		p1, p2 := s.Scores()
		s.log.Info("round over",
			zap.Stringer("winner", s.Winner()),
			zap.Uint8("player1", p1),
			zap.Uint8("player2", p2))
	}
}

func (s *GameState) award(p system.Player, score *entity.Label) {
	score.Increment()
	s.centreBall()

	// Serve direction is re-rolled; the magnitude and the vertical speed carry over
	if s.rng.Bool() {
		s.ball.Velocity.X = -s.ball.Velocity.X
	}

	s.sound.Play(audio.EffectScore)
	s.log.Debug("point", zap.Stringer("scorer", p), zap.Uint8("score", score.Value))
}

// Event handles key presses that change the mode (implements scene.State)
func (s *GameState) Event(host scene.Host, ev system.Event) error {
	kp, ok := ev.(system.KeyPressed)
	if !ok {
		return nil
	}

	switch kp.Key {
	case system.KeyP:
		s.togglePause(host)
	case system.KeyN:
		s.start(state.DifficultyNormal)
	case system.KeyH:
		s.start(state.DifficultyHard)
	case system.KeyBackspace:
		s.returnToMenu(host)
	}

	return nil
}

// togglePause freezes or resumes the simulation through the host tick rate
func (s *GameState) togglePause(host scene.Host) {
	if s.isMainMenuShowing {
		return
	}

	s.isPaused = !s.isPaused
	if s.isPaused {
		host.SetTickRate(FreezeUpdateRate)
	} else {
		host.SetTickRate(DefaultUpdateRate)
	}
	s.log.Debug("pause toggled", zap.Bool("paused", s.isPaused))
}

// start serves the ball and leaves the main menu
func (s *GameState) start(d state.Difficulty) {
	if !s.isMainMenuShowing {
		return
	}

	ballSpeed, paddleSpeed := BallSpeedNormal, PaddleSpeedNormal
	if d == state.DifficultyHard {
		ballSpeed, paddleSpeed = BallSpeedHard, PaddleSpeedHigh
	}

	s.player1.Velocity = entity.Vec2{Y: paddleSpeed}
	s.player2.Velocity = entity.Vec2{Y: paddleSpeed}

	// true serves to the left
	if s.rng.Bool() {
		ballSpeed = -ballSpeed
	}
	s.ball.Velocity = entity.Vec2{X: ballSpeed}

	s.difficulty = d
	s.isMainMenuShowing = false
	s.isToEnd = false
	s.log.Debug("round started", zap.Stringer("difficulty", d), zap.Float64("ball_vx", ballSpeed))
}

// returnToMenu resets the match and redraws the reset entities at once
func (s *GameState) returnToMenu(host scene.Host) {
	if s.isMainMenuShowing {
		return
	}

	s.isMainMenuShowing = true
	s.isToEnd = false
	if s.isPaused {
		s.isPaused = false
		host.SetTickRate(DefaultUpdateRate)
	}

	canvas := host.Canvas()

	s.scorePlayer1.SetValue(0)
	s.scorePlayer2.SetValue(0)
	canvas.DrawText(s.scorePlayer1, s.scorePlayer1.Position)
	canvas.DrawText(s.scorePlayer2, s.scorePlayer2.Position)

	s.resetPaddles()
	canvas.DrawTexture(s.player1.Texture, s.player1.Position)
	canvas.DrawTexture(s.player2.Texture, s.player2.Position)

	s.centreBall()
	s.ball.Velocity = entity.Vec2{}
	canvas.DrawTexture(s.ball.Texture, s.ball.Position)

	s.log.Debug("back to main menu")
}

func (s *GameState) resetPaddles() {
	s.player1.Position = entity.Vec2{
		X: PaddleInset,
		Y: (FieldHeight - s.player1.Height()) / 2,
	}
	s.player2.Position = entity.Vec2{
		X: FieldWidth - s.player2.Width() - PaddleInset,
		Y: (FieldHeight - s.player2.Height()) / 2,
	}
}

func (s *GameState) centreBall() {
	s.ball.Position = entity.CentredIn(s.ball.Width(), s.ball.Height(), FieldWidth, FieldHeight)
}

// Draw renders the current mode (implements scene.State)
func (s *GameState) Draw(canvas scene.Canvas) error {
	canvas.Clear(backgroundColor)

	switch {
	case s.isMainMenuShowing:
		canvas.DrawText(s.menuHeader, s.menuHeader.Position)
		canvas.DrawText(s.menuUsage, s.menuUsage.Position)

	case s.isToEnd:
		canvas.DrawText(s.centerLine, s.centerLine.Position)
		canvas.DrawText(s.scorePlayer1, s.scorePlayer1.Position)
		canvas.DrawText(s.scorePlayer2, s.scorePlayer2.Position)

		switch s.Winner() {
		case system.PlayerOne:
			canvas.DrawText(s.winnerMsg, winnerPosPlayer1)
		case system.PlayerTwo:
			canvas.DrawText(s.winnerMsg, winnerPosPlayer2)
		}

	default:
		canvas.DrawTexture(s.ball.Texture, s.ball.Position)
		canvas.DrawText(s.centerLine, s.centerLine.Position)
		canvas.DrawText(s.scorePlayer1, s.scorePlayer1.Position)
		canvas.DrawText(s.scorePlayer2, s.scorePlayer2.Position)
		canvas.DrawTexture(s.player1.Texture, s.player1.Position)
		canvas.DrawTexture(s.player2.Texture, s.player2.Position)
	}

	return nil
}
