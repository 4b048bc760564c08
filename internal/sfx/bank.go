package sfx

import (
	"math"
	"sync"

	"outie/internal/sim"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundJump Sound = iota
	SoundLand
	SoundPickup
	SoundCrash
	SoundRestart
	numSounds
)

func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundLand:
		return "land"
	case SoundPickup:
		return "pickup"
	case SoundCrash:
		return "crash"
	case SoundRestart:
		return "restart"
	}
	return "unknown"
}

// ForEvent maps a gameplay event to its sound.
func ForEvent(t sim.EventType) (Sound, bool) {
	switch t {
	case sim.EventJump:
		return SoundJump, true
	case sim.EventLand:
		return SoundLand, true
	case sim.EventPickup:
		return SoundPickup, true
	case sim.EventCrash:
		return SoundCrash, true
	case sim.EventRestart:
		return SoundRestart, true
	}
	return 0, false
}

// Generate synthesizes a mono buffer in [-1, 1].
func Generate(s Sound, rate int) []float64 {
	switch s {
	case SoundJump:
		return genJump(rate)
	case SoundLand:
		return genLand(rate)
	case SoundPickup:
		return genPickup(rate)
	case SoundCrash:
		return genCrash(rate)
	case SoundRestart:
		return genRestart(rate)
	}
	return nil
}

// Bank caches generated buffers per sound. Safe for concurrent use.
type Bank struct {
	Rate int

	mu    sync.Mutex
	cache [numSounds][]float64
}

func NewBank(rate int) *Bank {
	return &Bank{Rate: rate}
}

// Samples returns the cached buffer for s, generating it on first use.
// Callers must not modify the result.
func (b *Bank) Samples(s Sound) []float64 {
	if s < 0 || s >= numSounds {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cache[s] == nil {
		b.cache[s] = Generate(s, b.Rate)
	}
	return b.cache[s]
}

// EncodeStereoF32 writes mono samples as interleaved stereo float32 LE,
// scaled by gain.
func EncodeStereoF32(samples []float64, gain float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		putStereoF32(buf, i, s*gain)
	}
	return buf
}

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}
