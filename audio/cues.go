package audio

import (
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Cues plays short feedback sounds through the system speaker
// All methods are safe to call when audio is disabled or failed to start
type Cues struct {
	mu          sync.Mutex
	cfg         Config
	cache       *cueCache
	mixer       *beep.Mixer
	lastPlayed  [cueTypeCount]time.Time
	initialized bool
	now         func() time.Time
}

// NewCues creates a cue player; nil cfg uses DefaultConfig
func NewCues(cfg *Config) *Cues {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	c := *cfg
	c.normalize()
	return &Cues{
		cfg:   c,
		cache: newCueCache(c.SampleRate),
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Init opens the speaker and starts the mixer
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if !c.cfg.Enabled {
		return ErrDisabled
	}

	sr := beep.SampleRate(c.cfg.SampleRate)
	if err := speaker.Init(sr, sr.N(50*time.Millisecond)); err != nil {
		return err
	}
	c.cache.preload()
	speaker.Play(c.mixer)
	c.initialized = true
	log.Printf("audio: speaker ready at %d Hz, volume %.2f", c.cfg.SampleRate, c.cfg.Volume)
	return nil
}

// Play queues a cue; repeats inside MinGap are dropped
func (c *Cues) Play(cue CueType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || !c.allow(cue, c.now()) {
		return
	}
	buf := c.cache.get(cue)
	if len(buf) == 0 {
		return
	}

	speaker.Lock()
	c.mixer.Add(newBufferStreamer(buf, c.cfg.Volume))
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (c *Cues) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return ErrNotInitialized
	}
	speaker.Clear()
	speaker.Close()
	c.mixer.Clear()
	c.initialized = false
	return nil
}

// IsInitialized reports whether the speaker is open
func (c *Cues) IsInitialized() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initialized
}

// allow applies the per-cue rate limit; caller holds mu
func (c *Cues) allow(cue CueType, now time.Time) bool {
	if cue < 0 || cue >= cueTypeCount {
		return false
	}
	last := c.lastPlayed[cue]
	if !last.IsZero() && now.Sub(last) < c.cfg.MinGap {
		return false
	}
	c.lastPlayed[cue] = now
	return true
}

// bufferStreamer plays a mono buffer on both channels
type bufferStreamer struct {
	buf  floatBuffer
	gain float64
	pos  int
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos] * s.gain
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
