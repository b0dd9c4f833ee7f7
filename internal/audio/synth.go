// Package audio synthesizes the game's sound effects as PCM buffers and
// plays them through a pluggable backend. All generators are pure: the same
// parameters always produce byte-identical output, so the whole sound set is
// rendered once at startup and cached.
package audio

import (
	"math"
	"math/rand"
)

// SampleRate is the PCM rate of every synthesized buffer, in Hz.
const SampleRate = 22050

// noiseSeed makes the noise generator reproducible across runs.
const noiseSeed = 42

const maxAmplitude = 32767

// Buffer is signed 16-bit mono PCM at SampleRate.
type Buffer []int16

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// RenderSine renders a pure tone at the given frequency.
func RenderSine(freqHz, durationSec, volume float64) Buffer {
	total := int(SampleRate * durationSec)
	amp := float64(int(clamp01(volume) * maxAmplitude))
	step := 2 * math.Pi * freqHz / SampleRate

	out := make(Buffer, total)
	for i := range out {
		out[i] = int16(math.Sin(float64(i)*step) * amp)
	}
	return out
}

// RenderSquare renders a square wave. The period is quantized to whole
// samples, so very high frequencies land on the nearest representable pitch.
func RenderSquare(freqHz, durationSec, volume float64) Buffer {
	total := int(SampleRate * durationSec)
	period := int(SampleRate / freqHz)
	if period < 1 {
		period = 1
	}
	high := int16(clamp01(volume) * maxAmplitude)

	out := make(Buffer, total)
	for i := range out {
		if i%period < period/2 {
			out[i] = high
		} else {
			out[i] = -high
		}
	}
	return out
}

// RenderNoise renders white noise, each sample uniform in
// [-amplitude, amplitude]. The generator is seeded deterministically.
func RenderNoise(durationSec, volume float64) Buffer {
	total := int(SampleRate * durationSec)
	amp := int(clamp01(volume) * maxAmplitude)
	rng := rand.New(rand.NewSource(noiseSeed))

	out := make(Buffer, total)
	for i := range out {
		out[i] = int16(rng.Intn(2*amp+1) - amp)
	}
	return out
}

// RenderSweep renders a tone whose frequency moves linearly from startHz to
// endHz over the duration. Phase is accumulated as the running integral of
// the instantaneous frequency, keeping the waveform continuous across the
// whole sweep.
func RenderSweep(startHz, endHz, durationSec, volume float64) Buffer {
	total := int(SampleRate * durationSec)
	amp := float64(int(clamp01(volume) * maxAmplitude))

	out := make(Buffer, total)
	phase := 0.0
	for i := range out {
		out[i] = int16(math.Sin(phase) * amp)
		t := float64(i) / SampleRate
		freq := startHz + (endHz-startHz)*(t/durationSec)
		phase += 2 * math.Pi * freq / SampleRate
	}
	return out
}

// Silence renders a run of zero samples.
func Silence(durationSec float64) Buffer {
	return make(Buffer, int(SampleRate*durationSec))
}

// Mix sums two buffers sample-wise with per-buffer gains. The shorter buffer
// is zero-padded to the longer length and every output sample is clipped to
// the signed 16-bit range so loud overlaps cannot wrap around.
func Mix(a, b Buffer, gainA, gainB float64) Buffer {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}

	out := make(Buffer, n)
	for i := range out {
		var sa, sb float64
		if i < len(a) {
			sa = float64(a[i])
		}
		if i < len(b) {
			sb = float64(b[i])
		}
		v := int(sa*gainA + sb*gainB)
		if v > 32767 {
			v = 32767
		} else if v < -32768 {
			v = -32768
		}
		out[i] = int16(v)
	}
	return out
}

// Concat appends buffers back to back.
func Concat(parts ...Buffer) Buffer {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make(Buffer, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
