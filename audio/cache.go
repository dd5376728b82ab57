package audio

import "sync"

// soundCache stores pre-generated unity-gain buffers
type soundCache struct {
	mu    sync.RWMutex
	store [soundTypeCount]floatBuffer
	ready [soundTypeCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached buffer, generating on first use
func (c *soundCache) get(st SoundType) floatBuffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[st] {
		buf := c.store[st]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready[st] {
		return c.store[st]
	}
	buf := generateSound(st)
	c.store[st] = buf
	c.ready[st] = true
	return buf
}

// preload generates the pulse blip, the most frequent sound
func (c *soundCache) preload() {
	c.get(SoundPulse)
}
