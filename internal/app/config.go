package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PatchPath string // hcl file or directory of hcl files

	Ticks      int     // buffers to compute; 0 means run until cancelled
	SampleRate float64 // samples per second; 0 picks the rack default
	BufferSize int     // samples per tick; 0 picks the rack default

	OutPath string // render destination (WAV); empty disables rendering
	Play    bool   // stream to the default audio device
	Inspect bool   // print the wired rack instead of running it

	LogFormat string
	LogLevel  string
}

// NewConfig validates the configuration for an App instance.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PatchPath == "" {
		return nil, errors.New("PatchPath is a required configuration field and cannot be empty")
	}
	if cfg.Ticks < 0 {
		return nil, errors.New("Ticks cannot be negative")
	}
	if cfg.OutPath != "" && cfg.Play {
		return nil, errors.New("rendering to a file and live playback are mutually exclusive")
	}
	if cfg.OutPath != "" && cfg.Ticks == 0 {
		return nil, errors.New("rendering to a file requires a positive tick count")
	}

	return &cfg, nil
}
