package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open replay: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode replay %s: %w", filename, err)
	}
	if len(data.Frames) == 0 {
		return nil, fmt.Errorf("load replay %s: %w", filename, ErrNoFrames)
	}

	return &data, nil
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Input(), true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Source feeds a replay to the host loop. It quits once the replay is
// done, or earlier when the live source asks to.
type Source struct {
	r      *Replayer
	live   system.InputSource
	log    *zap.Logger
	logged bool
}

var _ system.InputSource = (*Source)(nil)

// NewSource creates an InputSource playing r. Only Quit is taken from
// live, which may be nil.
func NewSource(r *Replayer, live system.InputSource, log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{r: r, live: live, log: log.Named("replay")}
}

// GetInput returns the next recorded frame, or Quit once exhausted or
// when the live source quits
func (s *Source) GetInput() system.InputState {
	if s.live != nil && s.live.GetInput().Quit {
		s.finish("replay stopped")
		return system.InputState{Quit: true}
	}

	if s.r.Done() {
		s.finish("replay finished")
		return system.InputState{Quit: true}
	}

	in, _ := s.r.Next()
	return in
}

func (s *Source) finish(msg string) {
	if s.logged {
		return
	}
	s.logged = true
	s.log.Info(msg,
		zap.Int("frame", s.r.CurrentFrame()),
		zap.Int("frames", s.r.TotalFrames()))
}

// CreateTestReplayData creates replay data for testing: one start key
// press followed by idle frames
func CreateTestReplayData(frames int, start system.Key) ReplayData {
	data := ReplayData{
		Version:   Version,
		Seed:      12345,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i}
	}
	if frames > 0 {
		data.Frames[0].N = start == system.KeyN
		data.Frames[0].H = start == system.KeyH
	}

	return data
}
