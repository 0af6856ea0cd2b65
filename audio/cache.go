package audio

import "sync"

// cueCache stores generated unity-gain buffers per cue
type cueCache struct {
	mu         sync.RWMutex
	sampleRate int
	store      [cueTypeCount]floatBuffer
	ready      [cueTypeCount]bool
}

func newCueCache(sampleRate int) *cueCache {
	return &cueCache{sampleRate: sampleRate}
}

// get returns the cached buffer or generates it on demand
func (c *cueCache) get(cue CueType) floatBuffer {
	if cue < 0 || cue >= cueTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[cue] {
		return c.store[cue]
	}

	buf := generateCue(cue, c.sampleRate)
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// preload generates every cue up front
func (c *cueCache) preload() {
	for cue := CueType(0); cue < cueTypeCount; cue++ {
		c.get(cue)
	}
}
