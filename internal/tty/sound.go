package tty

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"outie/internal/sfx"
	"outie/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager mixes synthesized effects through the beep speaker.
type SoundManager struct {
	mixer  *beep.Mixer
	bank   *sfx.Bank
	volume float64
}

// NewSoundManager opens the speaker and starts the mixer.
func NewSoundManager(volume float64) (*SoundManager, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return nil, err
	}
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		bank:   sfx.NewBank(int(sampleRate)),
		volume: volume,
	}
	speaker.Play(sm.mixer)
	return sm, nil
}

// Subscribe plays the matching sound for every gameplay event.
func (sm *SoundManager) Subscribe(bus *sim.EventBus) {
	bus.SubscribeAll(func(e sim.Event) {
		if s, ok := sfx.ForEvent(e.Type); ok {
			sm.Play(s)
		}
	})
}

func (sm *SoundManager) Play(s sfx.Sound) {
	samples := sm.bank.Samples(s)
	if len(samples) == 0 {
		return
	}
	speaker.Lock()
	sm.mixer.Add(newBufferStreamer(samples, sm.volume))
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
func (sm *SoundManager) Close() {
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// bufferStreamer plays a mono buffer on both channels once.
type bufferStreamer struct {
	samples []float64
	gain    float64
	pos     int
}

func newBufferStreamer(samples []float64, gain float64) *bufferStreamer {
	return &bufferStreamer{samples: samples, gain: gain}
}

func (b *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= len(b.samples) {
		return 0, false
	}
	for n < len(samples) && b.pos < len(b.samples) {
		v := b.samples[b.pos] * b.gain
		samples[n][0] = v
		samples[n][1] = v
		b.pos++
		n++
	}
	return n, true
}

func (b *bufferStreamer) Err() error {
	return nil
}
