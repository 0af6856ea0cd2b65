package audio

import (
	"errors"
	"math"
	"testing"
	"time"
)

// TestCuesGracefulDegradation verifies cue calls don't panic without a speaker
func TestCuesGracefulDegradation(t *testing.T) {
	c := NewCues(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Cue operations panicked without initialization: %v", r)
		}
	}()

	for cue := CueType(0); cue < cueTypeCount; cue++ {
		c.Play(cue)
	}
	c.Play(CueType(-1))
	c.Play(cueTypeCount)
	if err := c.Close(); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}

	if c.IsInitialized() {
		t.Error("Expected uninitialized cues")
	}
}

// TestCuesDisabled verifies Init refuses when disabled
func TestCuesDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	c := NewCues(cfg)

	if err := c.Init(); !errors.Is(err, ErrDisabled) {
		t.Errorf("Expected ErrDisabled, got %v", err)
	}
	if c.IsInitialized() {
		t.Error("Expected uninitialized cues")
	}
}

// TestCuesInitialization verifies init and close when a device exists
func TestCuesInitialization(t *testing.T) {
	c := NewCues(nil)

	// No audio device in most CI environments
	if err := c.Init(); err != nil {
		t.Logf("Speaker init failed (expected without audio device): %v", err)
		return
	}
	if err := c.Init(); err != nil {
		t.Errorf("Second Init should be a no-op, got error: %v", err)
	}
	c.Play(CueWin)
	if err := c.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
	if c.IsInitialized() {
		t.Error("Expected cues closed")
	}
}

func TestNewCuesNormalizesConfig(t *testing.T) {
	cfg := &Config{Enabled: true, Volume: 3, SampleRate: -1, MinGap: -time.Second}
	c := NewCues(cfg)

	if c.cfg.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", c.cfg.Volume)
	}
	if c.cfg.SampleRate != 44100 {
		t.Errorf("Expected default sample rate 44100, got %d", c.cfg.SampleRate)
	}
	if c.cfg.MinGap != 0 {
		t.Errorf("Expected MinGap 0, got %v", c.cfg.MinGap)
	}
	if cfg.Volume != 3 {
		t.Error("Expected caller config untouched")
	}
}

func TestAllowRateLimit(t *testing.T) {
	c := NewCues(nil)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if !c.allow(CueTick, base) {
		t.Error("Expected first tick allowed")
	}
	if c.allow(CueTick, base.Add(10*time.Millisecond)) {
		t.Error("Expected tick inside MinGap dropped")
	}
	if !c.allow(CueWin, base.Add(10*time.Millisecond)) {
		t.Error("Expected other cue unaffected by tick gap")
	}
	if !c.allow(CueTick, base.Add(60*time.Millisecond)) {
		t.Error("Expected tick after MinGap allowed")
	}
	if c.allow(cueTypeCount, base) {
		t.Error("Expected out of range cue rejected")
	}
}

func TestBufferStreamer(t *testing.T) {
	s := newBufferStreamer(floatBuffer{1, -1, 0.5}, 0.5)

	out := make([][2]float64, 2)
	n, ok := s.Stream(out)
	if n != 2 || !ok {
		t.Fatalf("Expected 2 samples ok, got %d %v", n, ok)
	}
	if out[0] != [2]float64{0.5, 0.5} || out[1] != [2]float64{-0.5, -0.5} {
		t.Errorf("Expected scaled stereo samples, got %v", out)
	}

	n, ok = s.Stream(out)
	if n != 1 || !ok {
		t.Fatalf("Expected 1 trailing sample, got %d %v", n, ok)
	}
	if out[0][0] != 0.25 {
		t.Errorf("Expected 0.25, got %f", out[0][0])
	}

	n, ok = s.Stream(out)
	if n != 0 || ok {
		t.Errorf("Expected drained streamer, got %d %v", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Expected nil Err, got %v", s.Err())
	}
}

func TestGenerateCues(t *testing.T) {
	const sr = 44100
	for cue := CueType(0); cue < cueTypeCount; cue++ {
		buf := generateCue(cue, sr)
		if len(buf) == 0 {
			t.Errorf("Expected samples for %s", cue)
			continue
		}
		peak := 0.0
		for _, v := range buf {
			if math.IsNaN(v) {
				t.Fatalf("NaN sample in %s", cue)
			}
			peak = max(peak, math.Abs(v))
		}
		if peak == 0 || peak > 1.5 {
			t.Errorf("Expected audible bounded peak for %s, got %f", cue, peak)
		}
	}

	if got, want := len(generateCue(CueWin, sr)), 2*samplesFor(winNoteDuration, sr); got != want {
		t.Errorf("Expected win length %d, got %d", want, got)
	}
	if generateCue(cueTypeCount, sr) != nil {
		t.Error("Expected nil buffer for unknown cue")
	}
}

func TestApplyEnvelopeEdges(t *testing.T) {
	buf := floatBuffer{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	// 1 Hz: 2 sample attack, 3 sample release
	applyEnvelope(buf, 2*time.Second, 3*time.Second, 1)

	if buf[0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0])
	}
	if buf[5] != 1 {
		t.Errorf("Expected full sustain, got %f", buf[5])
	}
	if buf[9] >= buf[7] {
		t.Errorf("Expected release to decay, got %f then %f", buf[7], buf[9])
	}
}

func TestCueCache(t *testing.T) {
	c := newCueCache(8000)
	first := c.get(CueTick)
	second := c.get(CueTick)
	if len(first) == 0 || &first[0] != &second[0] {
		t.Error("Expected cached buffer reused")
	}
	if c.get(CueType(-1)) != nil {
		t.Error("Expected nil for invalid cue")
	}

	c.preload()
	for cue := CueType(0); cue < cueTypeCount; cue++ {
		if !c.ready[cue] {
			t.Errorf("Expected %s preloaded", cue)
		}
	}
}

func TestCueTypeString(t *testing.T) {
	tests := map[CueType]string{
		CueWin:       "win",
		CueExpire:    "expire",
		CueTick:      "tick",
		CueReject:    "reject",
		cueTypeCount: "unknown",
	}
	for cue, want := range tests {
		if got := cue.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
