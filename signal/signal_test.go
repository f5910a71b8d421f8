// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"math"
	"testing"
)

func TestSynthesize_ToneLengthAndShape(t *testing.T) {
	t.Parallel()

	p := Params{Components: []Component{{Freq: 440, Amp: 0.7}}}
	wave, err := Synthesize(TypeTone, p, 0.2, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	if len(wave) != 3200 {
		t.Errorf("len(wave) = %d, want 3200", len(wave))
	}

	// First sample of a sine is zero, peak magnitude stays within amplitude
	if wave[0] != 0 {
		t.Errorf("wave[0] = %v, want 0", wave[0])
	}
	for i, v := range wave {
		if math.Abs(v) > 0.7+1e-9 {
			t.Fatalf("wave[%d] = %v exceeds amplitude 0.7", i, v)
		}
	}
}

func TestSynthesize_ToneComponentsSum(t *testing.T) {
	t.Parallel()

	// The original default scene signal: 0.7*440Hz + 0.4*880Hz + 0.3*1200Hz
	p := Params{Components: []Component{
		{Freq: 440, Amp: 0.7},
		{Freq: 880, Amp: 0.4},
		{Freq: 1200, Amp: 0.3},
	}}
	wave, err := Synthesize(TypeTone, p, 0.01, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	i := 37
	tm := float64(i) / 16000
	want := 0.7*math.Sin(2*math.Pi*440*tm) + 0.4*math.Sin(2*math.Pi*880*tm) + 0.3*math.Sin(2*math.Pi*1200*tm)
	if math.Abs(wave[i]-want) > 1e-12 {
		t.Errorf("wave[%d] = %v, want %v", i, wave[i], want)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	t.Parallel()

	p := Params{StartFreq: 100, EndFreq: 2000, Amplitude: 0.5}
	a, err := Synthesize(TypeChirp, p, 0.1, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	b, err := Synthesize(TypeChirp, p, 0.1, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("chirp not deterministic at sample %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestSynthesize_ChirpEndpointFrequencies(t *testing.T) {
	t.Parallel()

	// A chirp with equal start and end frequency degenerates to a tone
	p := Params{StartFreq: 440, EndFreq: 440, Amplitude: 1}
	chirp, err := Synthesize(TypeChirp, p, 0.05, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	tone, err := Synthesize(TypeTone, Params{Components: []Component{{Freq: 440, Amp: 1}}}, 0.05, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	for i := range chirp {
		if math.Abs(chirp[i]-tone[i]) > 1e-9 {
			t.Fatalf("degenerate chirp differs from tone at %d: %v != %v", i, chirp[i], tone[i])
		}
	}
}

func TestSynthesize_WhiteNoiseStdDev(t *testing.T) {
	t.Parallel()

	const sigma = 0.25
	p := Params{Amplitude: sigma, Seed: 42}
	wave, err := Synthesize(TypeWhiteNoise, p, 2.0, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if len(wave) < 10000 {
		t.Fatalf("len(wave) = %d, want >= 10000", len(wave))
	}

	var sum, sumSq float64
	for _, v := range wave {
		sum += v
		sumSq += v * v
	}
	mean := sum / float64(len(wave))
	std := math.Sqrt(sumSq/float64(len(wave)) - mean*mean)

	// Empirical standard deviation within 10% of the requested sigma
	if math.Abs(std-sigma) > 0.1*sigma {
		t.Errorf("empirical std = %v, want %v +/- 10%%", std, sigma)
	}
}

func TestSynthesize_WhiteNoiseSeeded(t *testing.T) {
	t.Parallel()

	p := Params{Amplitude: 0.1, Seed: 7}
	a, _ := Synthesize(TypeWhiteNoise, p, 0.1, 16000)
	b, _ := Synthesize(TypeWhiteNoise, p, 0.1, 16000)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded noise not reproducible at sample %d", i)
		}
	}

	// Different seeds must differ
	c, _ := Synthesize(TypeWhiteNoise, Params{Amplitude: 0.1, Seed: 8}, 0.1, 16000)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("noise with different seeds produced identical samples")
	}
}

func TestSynthesize_Impulse(t *testing.T) {
	t.Parallel()

	p := Params{Amplitude: 0.9, Delay: 0.01}
	wave, err := Synthesize(TypeImpulse, p, 0.1, 16000)
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}

	at := 160 // 0.01s at 16kHz
	for i, v := range wave {
		switch {
		case i == at && v != 0.9:
			t.Errorf("wave[%d] = %v, want 0.9", i, v)
		case i != at && v != 0:
			t.Errorf("wave[%d] = %v, want 0", i, v)
		}
	}
}

func TestSynthesize_InvalidInputs(t *testing.T) {
	t.Parallel()

	tone := Params{Components: []Component{{Freq: 440, Amp: 1}}}

	tests := []struct {
		name     string
		typ      Type
		p        Params
		duration float64
		rate     int
	}{
		{"zero duration", TypeTone, tone, 0, 16000},
		{"negative duration", TypeTone, tone, -1, 16000},
		{"NaN duration", TypeTone, tone, math.NaN(), 16000},
		{"zero rate", TypeTone, tone, 0.1, 0},
		{"negative rate", TypeTone, tone, 0.1, -8000},
		{"tone without components", TypeTone, Params{}, 0.1, 16000},
		{"tone with zero freq", TypeTone, Params{Components: []Component{{Freq: 0, Amp: 1}}}, 0.1, 16000},
		{"tone with negative amp", TypeTone, Params{Components: []Component{{Freq: 440, Amp: -1}}}, 0.1, 16000},
		{"chirp with NaN amp", TypeChirp, Params{StartFreq: 100, EndFreq: 200, Amplitude: math.NaN()}, 0.1, 16000},
		{"noise with infinite amp", TypeWhiteNoise, Params{Amplitude: math.Inf(1)}, 0.1, 16000},
		{"impulse past end", TypeImpulse, Params{Amplitude: 1, Delay: 1}, 0.1, 16000},
		{"file without path", TypeFile, Params{}, 0.1, 16000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			wave, err := Synthesize(tc.typ, tc.p, tc.duration, tc.rate)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Synthesize() error = %v, want ErrInvalidParameter", err)
			}
			if wave != nil {
				t.Error("Synthesize() returned a partial waveform on failure")
			}
		})
	}
}

func TestSynthesize_UnknownType(t *testing.T) {
	t.Parallel()

	_, err := Synthesize(Type(99), Params{}, 0.1, 16000)
	if !errors.Is(err, ErrUnknownType) {
		t.Errorf("Synthesize() error = %v, want ErrUnknownType", err)
	}
}

func TestParseType_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{TypeTone, TypeChirp, TypeWhiteNoise, TypeImpulse, TypeFile} {
		got, err := ParseType(typ.String())
		if err != nil {
			t.Errorf("ParseType(%q) error = %v", typ.String(), err)
		}
		if got != typ {
			t.Errorf("ParseType(%q) = %v, want %v", typ.String(), got, typ)
		}
	}

	if _, err := ParseType("theremin"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseType(unknown) error = %v, want ErrUnknownType", err)
	}
}
