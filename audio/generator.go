package audio

import (
	"math"
	"time"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
)

// Cue timings
const (
	winNoteDuration    = 90 * time.Millisecond
	winAttack          = 5 * time.Millisecond
	winRelease         = 40 * time.Millisecond
	expireDuration     = 350 * time.Millisecond
	expireAttack       = 10 * time.Millisecond
	expireRelease      = 200 * time.Millisecond
	tickDuration       = 25 * time.Millisecond
	tickRelease        = 15 * time.Millisecond
	rejectDuration     = 120 * time.Millisecond
	rejectAttack       = 5 * time.Millisecond
	rejectRelease      = 60 * time.Millisecond
	rejectOvertoneGain = 0.4
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples, sampleRate int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(sampleRate)

	for i := range buf {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies a linear attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration, sampleRate int) {
	total := len(buf)
	attackSamples := samplesFor(attack, sampleRate)
	releaseSamples := samplesFor(release, sampleRate)
	releaseStart := max(total-releaseSamples, attackSamples)

	for i := range buf {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixInto adds b scaled into a, extending a if needed
func mixInto(a, b floatBuffer, scale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * scale
	}
	return a
}

func samplesFor(d time.Duration, sampleRate int) int {
	return int(d.Seconds() * float64(sampleRate))
}

// Rising major third, C6 then E6
func generateWin(sampleRate int) floatBuffer {
	n := samplesFor(winNoteDuration, sampleRate)
	first := oscillator(waveSquare, 1046.50, n, sampleRate)
	applyEnvelope(first, winAttack, winRelease, sampleRate)
	second := oscillator(waveSquare, 1318.51, n, sampleRate)
	applyEnvelope(second, winAttack, winRelease, sampleRate)
	return append(first, second...)
}

// Low saw buzz
func generateExpire(sampleRate int) floatBuffer {
	buf := oscillator(waveSaw, 110.0, samplesFor(expireDuration, sampleRate), sampleRate)
	applyEnvelope(buf, expireAttack, expireRelease, sampleRate)
	return buf
}

func generateTick(sampleRate int) floatBuffer {
	buf := oscillator(waveSine, 1760.0, samplesFor(tickDuration, sampleRate), sampleRate)
	applyEnvelope(buf, 0, tickRelease, sampleRate)
	return buf
}

func generateReject(sampleRate int) floatBuffer {
	n := samplesFor(rejectDuration, sampleRate)
	buf := oscillator(waveSine, 220.0, n, sampleRate)
	applyEnvelope(buf, rejectAttack, rejectRelease, sampleRate)
	over := oscillator(waveSine, 330.0, n, sampleRate)
	applyEnvelope(over, rejectAttack, rejectRelease, sampleRate)
	return mixInto(buf, over, rejectOvertoneGain)
}

// generateCue dispatches to the specific generator
func generateCue(c CueType, sampleRate int) floatBuffer {
	switch c {
	case CueWin:
		return generateWin(sampleRate)
	case CueExpire:
		return generateExpire(sampleRate)
	case CueTick:
		return generateTick(sampleRate)
	case CueReject:
		return generateReject(sampleRate)
	default:
		return nil
	}
}
