package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/younwookim/pong/internal/application/game"
	"github.com/younwookim/pong/internal/application/replay"
	"github.com/younwookim/pong/internal/application/scene/pong"
	"github.com/younwookim/pong/internal/application/system"
	"github.com/younwookim/pong/internal/infrastructure/assets"
	"github.com/younwookim/pong/internal/infrastructure/audio"
	"github.com/younwookim/pong/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	configFlag := flag.String("config", "", "Load config from file instead of the built-in defaults")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto for a timestamped name)")
	replayFlag := flag.String("replay", "", "Play back input recorded with -record")
	headlessFlag := flag.Bool("headless", false, "Play back -replay without a window and log the final score")
	seedFlag := flag.Int64("seed", 0, "Seed for serve directions (default: current time)")
	flag.Parse()

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: %v\n", err)
		os.Exit(1)
	}
	cfg.Replay.Record = recordTarget(*recordFlag, cfg.Replay.Record)

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pong: init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	bundle, err := assets.Load(os.DirFS(cfg.Assets.Dir))
	if err != nil {
		logger.Fatal("Failed to load assets", zap.String("dir", cfg.Assets.Dir), zap.Error(err))
	}

	seed := time.Now().UnixNano()
	if flagWasSet(flag.CommandLine, "seed") {
		seed = *seedFlag
	}

	var src system.InputSource = system.NewInputSystem()
	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			logger.Fatal("Failed to load replay", zap.Error(err))
		}
		replayer := replay.NewReplayer(*data)
		seed = replayer.Seed()

		// A windowed replay still quits on Escape
		var live system.InputSource
		if !*headlessFlag {
			live = src
		}
		src = replay.NewSource(replayer, live, logger)
		logger.Info("replaying", zap.String("file", *replayFlag), zap.Int("frames", replayer.TotalFrames()))
	}

	if *headlessFlag {
		if *replayFlag == "" {
			logger.Fatal("-headless needs -replay")
		}
		st, err := pong.New(gameAssets(bundle), pong.NewRandSource(seed), nil, logger)
		if err != nil {
			logger.Fatal("Failed to create game", zap.Error(err))
		}
		if _, err := RunHeadless(st, src, maxHeadlessFrames, logger); err != nil {
			logger.Fatal("Headless replay failed", zap.Error(err))
		}
		return
	}

	// Initialize recorder if recording is enabled
	var recorder *replay.Recorder
	if cfg.Replay.Record != "" && *replayFlag == "" {
		recorder = replay.NewRecorder(src, seed, logger)
		src = recorder
		logger.Info("recording enabled", zap.String("file", cfg.Replay.Record), zap.Int64("seed", seed))
	}

	sound, closeSound := audio.Open(cfg.Audio, logger)
	defer closeSound()

	st, err := pong.New(gameAssets(bundle), pong.NewRandSource(seed), sound, logger)
	if err != nil {
		logger.Fatal("Failed to create game", zap.Error(err))
	}
	g := game.New(st, src, int(pong.FieldWidth), int(pong.FieldHeight), logger)

	// Set up ebiten
	ebiten.SetWindowSize(int(pong.FieldWidth)*cfg.Display.Scale, int(pong.FieldHeight)*cfg.Display.Scale)
	ebiten.SetWindowTitle(pong.WindowTitle)
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	ebiten.SetTPS(game.DefaultTPS)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		if err := recorder.Save(cfg.Replay.Record); err != nil {
			logger.Error("Failed to save recording", zap.Error(err))
		}
	}

	if runErr != nil {
		logger.Fatal("Failed to init Pong-Game on this platform", zap.Error(runErr))
	}
}

// autoRecordName as the record target picks a timestamped file name
const autoRecordName = "auto"

// recordTarget resolves where to record: the flag wins over the config
func recordTarget(flagValue, configValue string) string {
	target := configValue
	if flagValue != "" {
		target = flagValue
	}
	if target == autoRecordName {
		return replay.GenerateFilename()
	}
	return target
}

// flagWasSet reports whether name was given on the command line
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// loadConfig reads path, or the embedded default config when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load(config.DefaultFile)
}

func gameAssets(b *assets.Bundle) pong.Assets {
	return pong.Assets{
		Player1:  b.Player1,
		Player2:  b.Player2,
		Ball:     b.Ball,
		GameFont: b.GameFont,
		MenuFont: b.MenuFont,
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
