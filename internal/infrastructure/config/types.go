package config

// Config is the root of pong.toml.
// Gameplay tunables are not configurable; they are constants of the game.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Assets  AssetsConfig  `toml:"assets"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Replay  ReplayConfig  `toml:"replay"`
}

type DisplayConfig struct {
	Scale int `toml:"scale"` // window size = logical size * scale
}

type AssetsConfig struct {
	Dir string `toml:"dir"` // sprites and fonts are loaded relative to this
}

type AudioConfig struct {
	Enabled    bool    `toml:"enabled"`
	Volume     float64 `toml:"volume"` // 0.0-1.0
	SampleRate int     `toml:"sample_rate"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type ReplayConfig struct {
	Record string `toml:"record"` // output file, empty disables recording
}

// Defaults returns the configuration used when no file overrides it
func Defaults() *Config {
	return &Config{
		Display: DisplayConfig{
			Scale: 1,
		},
		Assets: AssetsConfig{
			Dir: "resources",
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     0.5,
			SampleRate: 44100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
