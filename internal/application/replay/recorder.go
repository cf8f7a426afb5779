package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/application/system"
)

// ErrNoFrames is returned when saving an empty recording
var ErrNoFrames = errors.New("no frames to save")

// Recorder is an InputSource that records everything its source reports.
type Recorder struct {
	src   system.InputSource
	data  ReplayData
	frame int
	log   *zap.Logger
}

var _ system.InputSource = (*Recorder)(nil)

// NewRecorder wraps src; seed is stored so the serve directions replay too
func NewRecorder(src system.InputSource, seed int64, log *zap.Logger) *Recorder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Recorder{
		src: src,
		data: ReplayData{
			Version:   Version,
			Seed:      seed,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		log: log.Named("recorder"),
	}
}

// GetInput reads the wrapped source and records the result
func (r *Recorder) GetInput() system.InputState {
	in := r.src.GetInput()
	if !in.Quit {
		r.data.Frames = append(r.data.Frames, NewFrameInput(r.frame, in))
		r.frame++
	}
	return in
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrNoFrames
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create replay %s: %w", filename, err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}

	r.log.Info("replay saved",
		zap.String("file", filename),
		zap.Int("frames", len(r.data.Frames)),
		zap.Int64("seed", r.data.Seed))
	return nil
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
