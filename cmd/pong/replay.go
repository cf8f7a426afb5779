package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/scene/pong"
	"github.com/younwookim/pong/internal/application/state"
	"github.com/younwookim/pong/internal/application/system"
)

// maxHeadlessFrames stops a headless run whose input never quits (one hour at 60 TPS)
const maxHeadlessFrames = 60 * 60 * 60

// HeadlessResult is the outcome of a headless run
type HeadlessResult struct {
	Frames  int
	Player1 uint8
	Player2 uint8
	Mode    state.Mode
}

// RunHeadless drives st from src without a window until src asks to quit
// or maxFrames host ticks have run.
func RunHeadless(st *pong.GameState, src system.InputSource, maxFrames int, log *zap.Logger) (HeadlessResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	g := game.New(st, src, int(pong.FieldWidth), int(pong.FieldHeight), log)

	frames := 0
	for ; frames < maxFrames; frames++ {
		err := g.Update()
		if errors.Is(err, ebiten.Termination) {
			break
		}
		if err != nil {
			return HeadlessResult{Frames: frames}, err
		}
	}

	p1, p2 := st.Scores()
	res := HeadlessResult{
		Frames:  frames,
		Player1: p1,
		Player2: p2,
		Mode:    st.Mode(),
	}

	log.Info("headless run finished",
		zap.Int("frames", res.Frames),
		zap.Uint8("player1", res.Player1),
		zap.Uint8("player2", res.Player2),
		zap.Stringer("mode", res.Mode))
	return res, nil
}
