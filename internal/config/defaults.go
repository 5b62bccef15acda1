package config

import (
	_ "embed"
)

//go:embed defaults/tilescore.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/tilescore.yaml.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.tilescore/scores.db",
		},
		Replay: ReplayConfig{
			Variant:  "tiles",
			MaxMoves: 1000000,
		},
		Viewer: ViewerConfig{
			StepRate: 8,
		},
		Log: LogConfig{
			Level:      "info",
			Timestamps: true,
		},
	}
}
