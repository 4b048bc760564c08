// Package sfx synthesizes the game's sound effects. Both audio backends
// play the same mono sample buffers.
package sfx

import "math"

// softSat applies gentle tanh-like saturation without harsh clipping.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
// carrier: base frequency, modRatio: modulator/carrier ratio, modIdx: modulation depth.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func samplesFor(seconds float64, rate int) int {
	return int(seconds * float64(rate))
}

// genJump: quick upward FM chirp.
func genJump(rate int) []float64 {
	n := samplesFor(0.12, rate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.3, 0.3)
		freq := 360 + 620*p
		s := fm(t, freq, 2.0, 1.8*env) * env * 0.42
		out[i] = softSat(s)
	}
	return out
}

// genLand: short filtered-noise scuff with a low thump.
func genLand(rate int) []float64 {
	n := samplesFor(0.08, rate)
	out := make([]float64, n)
	seed := uint64(4242)
	lp := 0.0
	for i := range out {
		t := float64(i) / float64(rate)
		p := float64(i) / float64(n)
		lp = lp*0.82 + lcg(&seed)*0.18
		thump := math.Sin(2*math.Pi*(110-50*p)*t) * math.Exp(-p*18)
		s := (lp*0.5 + thump*0.45) * math.Exp(-p*6)
		out[i] = softSat(s)
	}
	return out
}

// genPickup: ascending FM bell arpeggio.
func genPickup(rate int) []float64 {
	freqs := []float64{659.25, 783.99, 1046.5} // E5 G5 C6
	noteLen := samplesFor(0.06, rate)
	tail := samplesFor(0.14, rate)
	total := len(freqs)*noteLen + tail
	mix := make([]float64, total)

	for fi, freq := range freqs {
		start := fi * noteLen
		dur := total - start
		for j := 0; j < dur; j++ {
			t := float64(start+j) / float64(rate)
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.55, 0.05, 0.35)
			s := fm(t, freq, 2.756, 5.0*env) * env * 0.34
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genCrash: noisy hit into a slow descending minor chord.
func genCrash(rate int) []float64 {
	n := samplesFor(0.7, rate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.12}, // C4
		{220.00, 0.24}, // A3
	}
	mix := make([]float64, n)
	seed := uint64(9001)
	for i := range mix {
		p := float64(i) / float64(n)
		mix[i] += lcg(&seed) * math.Exp(-p*40) * 0.5
	}
	for _, note := range notes {
		start := samplesFor(note.onset, rate)
		for i := start; i < n; i++ {
			t := float64(i) / float64(rate)
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.03)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genRestart: crisp click + brief high tone.
func genRestart(rate int) []float64 {
	n := samplesFor(0.065, rate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		out[i] = softSat(fm(t, freq, 1.0, 0.6) * env * 0.38)
	}
	return out
}
