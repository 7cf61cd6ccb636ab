package audio

import "sync"

type cacheSlot struct {
	once sync.Once
	buf  floatBuffer
}

// soundCache generates each cue at unity gain on first request and keeps it
type soundCache struct {
	slots [soundTypeCount]cacheSlot
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

func (c *soundCache) get(st SoundType) floatBuffer {
	if st < 0 || st >= soundTypeCount {
		return nil
	}
	slot := &c.slots[st]
	slot.once.Do(func() { slot.buf = generateSound(st) })
	return slot.buf
}

// preload warms the contact cues so the first collision does not pay for synthesis
func (c *soundCache) preload() {
	for _, st := range []SoundType{SoundPaddle, SoundWall, SoundBrickHit, SoundBrickBreak} {
		c.get(st)
	}
}
