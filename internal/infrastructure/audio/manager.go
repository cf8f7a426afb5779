package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/younwookim/pong/internal/infrastructure/config"
)

// SoundManager mixes effects onto the system speaker
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool
	log         *zap.Logger
}

// NewSoundManager creates a sound manager. Call Initialize before Play.
func NewSoundManager(cfg config.AudioConfig, log *zap.Logger) *SoundManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		log:    log.Named("audio"),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker at %d Hz: %w", sm.rate, err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("speaker ready", zap.Int("sample_rate", int(sm.rate)))
	return nil
}

// Play starts an effect without waiting for it to finish.
// Does nothing until Initialize succeeded.
func (sm *SoundManager) Play(e Effect) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	s := CreateEffect(e, sm.rate, sm.volume)
	if s == nil {
		sm.log.Warn("unknown effect", zap.Stringer("effect", e))
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close silences everything still playing
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to release the device; clearing the mixer is enough
	sm.initialized = false
}

// Open returns a ready Player for cfg. Audio problems are not fatal:
// when audio is disabled or the device cannot be opened, a Nop player
// is returned and the failure logged.
func Open(cfg config.AudioConfig, log *zap.Logger) (Player, func()) {
	if log == nil {
		log = zap.NewNop()
	}
	if !cfg.Enabled {
		log.Info("audio disabled")
		return Nop{}, func() {}
	}

	sm := NewSoundManager(cfg, log)
	if err := sm.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		return Nop{}, func() {}
	}
	return sm, sm.Close
}
