package game

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/pong/internal/application/scene"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/domain/entity"
)

// mockState is a test double for scene.State
type mockState struct {
	log       []string
	events    []system.Event
	keysSeen  []bool
	updateErr error
	eventErr  error
	onEvent   func(host scene.Host, ev system.Event)
}

func (m *mockState) Update(host scene.Host) error {
	m.log = append(m.log, "update")
	m.keysSeen = append(m.keysSeen, host.IsKeyDown(system.KeyW))
	return m.updateErr
}

func (m *mockState) Draw(scene.Canvas) error {
	m.log = append(m.log, "draw")
	return nil
}

func (m *mockState) Event(host scene.Host, ev system.Event) error {
	m.log = append(m.log, "event")
	m.events = append(m.events, ev)
	if m.onEvent != nil {
		m.onEvent(host, ev)
	}
	return m.eventErr
}

func (m *mockState) updates() int {
	n := 0
	for _, entry := range m.log {
		if entry == "update" {
			n++
		}
	}
	return n
}

// scriptedInput replays the queued states, then reports nothing pressed
type scriptedInput struct {
	states []system.InputState
}

func (s *scriptedInput) GetInput() system.InputState {
	if len(s.states) == 0 {
		return system.InputState{}
	}
	in := s.states[0]
	s.states = s.states[1:]
	return in
}

func newTestGame(st scene.State, states ...system.InputState) *Game {
	return New(st, &scriptedInput{states: states}, 640, 480, nil)
}

func TestGame_Update_DelegatesToState(t *testing.T) {
	st := &mockState{}
	g := newTestGame(st)

	require.NoError(t, g.Update())

	assert.Equal(t, []string{"update"}, st.log)
}

func TestGame_Update_EventsBeforeStep(t *testing.T) {
	st := &mockState{}
	g := newTestGame(st, system.InputState{Pause: true, Menu: true})

	require.NoError(t, g.Update())

	assert.Equal(t, []string{"event", "event", "update"}, st.log)
	assert.Equal(t, []system.Event{
		system.KeyPressed{Key: system.KeyP},
		system.KeyPressed{Key: system.KeyBackspace},
	}, st.events)
}

func TestGame_Update_QuitTerminates(t *testing.T) {
	st := &mockState{}
	g := newTestGame(st, system.InputState{Quit: true, Pause: true})

	err := g.Update()

	assert.ErrorIs(t, err, ebiten.Termination)
	assert.Empty(t, st.log, "nothing runs on the quitting tick")
}

func TestGame_Update_ErrorsPropagate(t *testing.T) {
	g := newTestGame(&mockState{updateErr: assert.AnError})
	assert.ErrorIs(t, g.Update(), assert.AnError)

	g = newTestGame(&mockState{eventErr: assert.AnError}, system.InputState{StartNormal: true})
	assert.ErrorIs(t, g.Update(), assert.AnError)
}

func TestGame_IsKeyDown(t *testing.T) {
	st := &mockState{}
	g := newTestGame(st, system.InputState{P1Up: true}, system.InputState{})

	require.NoError(t, g.Update())
	require.NoError(t, g.Update())

	assert.Equal(t, []bool{true, false}, st.keysSeen)
}

func TestGame_TickRate(t *testing.T) {
	tests := []struct {
		name        string
		tps         float64
		ticks       int
		wantUpdates int
	}{
		{"default", DefaultTPS, 60, 60},
		{"half speed", DefaultTPS / 2, 60, 30},
		{"frozen", 0.000001, 600, 0},
		{"capped", DefaultTPS * 10, 10, 10 * maxStepsPerTick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := &mockState{}
			g := newTestGame(st)
			g.SetTickRate(tt.tps)

			for i := 0; i < tt.ticks; i++ {
				require.NoError(t, g.Update())
			}

			assert.Equal(t, tt.wantUpdates, st.updates())
		})
	}
}

func TestGame_TickRateChangedByState(t *testing.T) {
	st := &mockState{}
	st.onEvent = func(host scene.Host, ev system.Event) {
		if ev == (system.KeyPressed{Key: system.KeyP}) {
			host.SetTickRate(0.000001)
		}
	}
	g := newTestGame(st, system.InputState{Pause: true})

	for i := 0; i < 10; i++ {
		require.NoError(t, g.Update())
	}

	// The pause lands before the first step
	assert.Zero(t, st.updates())
	assert.Len(t, st.events, 1)

	g.SetTickRate(DefaultTPS)
	require.NoError(t, g.Update())
	assert.Equal(t, 1, st.updates())
}

func TestGame_SetTickRate_IgnoresNonPositive(t *testing.T) {
	st := &mockState{}
	g := newTestGame(st)

	g.SetTickRate(0)
	g.SetTickRate(-5)
	for i := 0; i < 5; i++ {
		require.NoError(t, g.Update())
	}

	assert.Equal(t, 5, st.updates(), "default rate still applies")
}

func TestGame_CanvasBeforeFirstFrame(t *testing.T) {
	g := newTestGame(&mockState{})

	c := g.Canvas()

	require.NotNil(t, c)
	assert.NotPanics(t, func() {
		c.Clear(image.Black)
		c.DrawTexture(image.NewRGBA(image.Rect(0, 0, 4, 4)), entity.Vec2{})
		c.DrawText(entity.NewLabel("x", nil, entity.Vec2{}), entity.Vec2{})
	})
}

func TestGame_Layout(t *testing.T) {
	g := newTestGame(&mockState{})

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestTextureCache_UnknownTexture(t *testing.T) {
	tc := NewTextureCache()

	assert.Nil(t, tc.Image(boundsOnly{}))
	assert.Empty(t, tc.images)
}

type boundsOnly struct{}

func (boundsOnly) Bounds() image.Rectangle { return image.Rect(0, 0, 1, 1) }
