package audio

import "math"

// softSat applies gentle tanh-like saturation, no harsh clipping.
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

// render synthesises a mono effect in [-1,1].
func render(kind SoundKind) []float64 {
	switch kind {
	case SoundHoof:
		return genHoof()
	case SoundBump:
		return genBump()
	case SoundWhinny:
		return genWhinny()
	case SoundRelease:
		return genRelease()
	}
	return nil
}

// genHoof: two dull thuds on turf, the take-off and the landing of a jump.
func genHoof() []float64 {
	n := int(0.32 * SampleRate)
	out := make([]float64, n)
	seed := uint64(24680)
	lp := 0.0
	for i := range out {
		t := float64(i) / SampleRate
		s := 0.0
		for _, at := range []float64{0, 0.17} {
			if t < at {
				continue
			}
			dt := t - at
			freq := 110 * math.Exp(-dt*18)
			s += math.Sin(2*math.Pi*(55+freq)*dt) * math.Exp(-dt*38) * 0.7
		}
		lp = lp*0.9 + lcg(&seed)*0.1
		s += lp * math.Exp(-t*9) * 0.4
		out[i] = softSat(s)
	}
	return out
}

// genBump: hollow wooden knock, two bodies meeting.
func genBump() []float64 {
	n := int(0.12 * SampleRate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.35, 0.15, 0.5)
		s := fm(t, 190, 1.41, 2.2*env) * env * 0.55
		s += math.Sin(2*math.Pi*95*t) * math.Exp(-p*12) * 0.25
		out[i] = softSat(s)
	}
	return out
}

// genWhinny: a falling neigh with a shaky vibrato.
func genWhinny() []float64 {
	n := int(0.7 * SampleRate)
	out := make([]float64, n)
	phase := 0.0
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.05, 0.2, 0.6, 0.35)
		vib := 1 + 0.06*math.Sin(2*math.Pi*(9+6*p)*t)
		freq := (820 - 420*p) * vib
		phase += 2 * math.Pi * freq / SampleRate
		s := math.Sin(phase+1.8*env*math.Sin(phase*2)) * env * 0.42
		s += math.Sin(phase*3) * env * 0.08
		out[i] = softSat(s)
	}
	return out
}

// genRelease: short rising chirp.
func genRelease() []float64 {
	n := int(0.1 * SampleRate)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.2, 0.3)
		out[i] = softSat(fm(t, 520+480*p, 2.0, 1.5*env) * env * 0.4)
	}
	return out
}

// encodeStereo writes mono samples as float32 LE frames, panned with an
// equal-power law. pan runs from -1 (left) to 1 (right).
func encodeStereo(mono []float64, pan float64) []byte {
	pan = math.Max(-1, math.Min(1, pan))
	angle := (pan + 1) * math.Pi / 4
	gl, gr := math.Cos(angle), math.Sin(angle)
	buf := make([]byte, len(mono)*8)
	for i, s := range mono {
		putStereoF32LR(buf, i, s*gl, s*gr)
	}
	return buf
}

// putStereoF32LR writes independent left/right samples in [-1,1].
func putStereoF32LR(buf []byte, i int, left, right float64) {
	lv := math.Float32bits(float32(left))
	rv := math.Float32bits(float32(right))
	buf[i*8] = byte(lv)
	buf[i*8+1] = byte(lv >> 8)
	buf[i*8+2] = byte(lv >> 16)
	buf[i*8+3] = byte(lv >> 24)
	buf[i*8+4] = byte(rv)
	buf[i*8+5] = byte(rv >> 8)
	buf[i*8+6] = byte(rv >> 16)
	buf[i*8+7] = byte(rv >> 24)
}
