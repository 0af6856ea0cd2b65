package audio

import (
	"time"
)

// Config controls cue playback
type Config struct {
	Enabled bool
	Volume  float64 // 0.0-1.0

	// MinGap drops repeats of the same cue closer than this
	MinGap time.Duration

	SampleRate int
}

// DefaultConfig returns the built-in audio settings
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.5,
		MinGap:     50 * time.Millisecond,
		SampleRate: 44100,
	}
}

func (c *Config) normalize() {
	c.Volume = min(max(c.Volume, 0), 1)
	if c.SampleRate <= 0 {
		c.SampleRate = DefaultConfig().SampleRate
	}
	c.MinGap = max(c.MinGap, 0)
}
