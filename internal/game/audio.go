package game

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"outie/internal/sfx"
	"outie/internal/sim"
)

// Audio plays synthesized effects through an oto context.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	bank   *sfx.Bank
	volume float64

	// active limits simultaneous voices to avoid speaker clipping.
	active int32
}

// NewAudio opens the output device. The context becomes usable once ready
// closes; sounds requested before then are dropped.
func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(SampleRate, ChannelCount, BitDepth)
	if err != nil {
		return nil, err
	}
	return &Audio{
		ctx:    ctx,
		ready:  ready,
		bank:   sfx.NewBank(SampleRate),
		volume: volume,
	}, nil
}

// Subscribe plays the matching sound for every gameplay event.
func (a *Audio) Subscribe(bus *sim.EventBus) {
	bus.SubscribeAll(func(e sim.Event) {
		if s, ok := sfx.ForEvent(e.Type); ok {
			a.Play(s)
		}
	})
}

func (a *Audio) Play(s sfx.Sound) {
	select {
	case <-a.ready:
	default:
		return
	}
	if atomic.LoadInt32(&a.active) >= MaxVoices {
		return
	}
	samples := a.bank.Samples(s)
	if len(samples) == 0 {
		return
	}
	atomic.AddInt32(&a.active, 1)
	go func() {
		defer atomic.AddInt32(&a.active, -1)
		reader := &soundReader{data: sfx.EncodeStereoF32(samples, 1)}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
