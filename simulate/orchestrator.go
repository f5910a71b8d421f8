// SPDX-License-Identifier: EPL-2.0

package simulate

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"

	"github.com/ik5/roomscene/filter"
	"github.com/ik5/roomscene/mix"
	"github.com/ik5/roomscene/scene"
	"github.com/ik5/roomscene/signal"
)

// Stage is one state of the run state machine.
type Stage int

const (
	StageIdle Stage = iota
	StageValidating
	StagePropagating
	StageMixing
	StagePostprocessing
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageValidating:
		return "validation"
	case StagePropagating:
		return "propagation"
	case StageMixing:
		return "mixing"
	case StagePostprocessing:
		return "postprocessing"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Result is everything a finished run produces. It is immutable after
// construction; a failed run produces no Result at all.
type Result struct {
	// Signals holds one recorded signal per configured microphone, in
	// configuration order.
	Signals [][]float64
	// GroundTruth is the reference signal selected by the run's policy.
	GroundTruth []float64

	SampleRate int
	NumSources int
	NumMics    int

	// Warnings collects non-fatal degradations, currently microphone
	// filters that fell back to pass-through.
	Warnings []string
}

// Orchestrator drives one scene through validation, per-source propagation,
// mixing and microphone post-processing. It is safe to reuse across runs;
// each run treats its Config as an immutable snapshot.
type Orchestrator struct {
	engine     Engine
	synth      *signal.Synthesizer
	gt         GroundTruth
	sampleRate int
	noiseSeed  uint64

	stage atomic.Int32
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRegistry supplies the decoder registry for file-based sources.
func WithRegistry(reg *signal.Registry) Option {
	return func(o *Orchestrator) { o.synth = signal.NewSynthesizer(reg) }
}

// WithGroundTruth overrides the ground-truth selection policy.
func WithGroundTruth(gt GroundTruth) Option {
	return func(o *Orchestrator) { o.gt = gt }
}

// WithSampleRate overrides scene.DefaultSampleRate for this orchestrator.
// The rate is fixed per orchestrator and threaded through synthesis,
// filtering and the engine; it never changes mid-run.
func WithSampleRate(rate int) Option {
	return func(o *Orchestrator) { o.sampleRate = rate }
}

// WithNoiseSeed fixes the microphone self-noise generator, making runs
// reproducible. The zero default draws a fresh seed per run.
func WithNoiseSeed(seed uint64) Option {
	return func(o *Orchestrator) { o.noiseSeed = seed }
}

func New(engine Engine, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		engine:     engine,
		synth:      signal.NewSynthesizer(nil),
		gt:         DefaultGroundTruth(),
		sampleRate: scene.DefaultSampleRate,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Stage reports where the most recent run currently is. It observes a
// single run at a time; concurrent runs on one Orchestrator share it.
func (o *Orchestrator) Stage() Stage {
	return Stage(o.stage.Load())
}

func (o *Orchestrator) fail(stage Stage, err error) (*Result, error) {
	o.stage.Store(int32(StageFailed))
	return nil, &StageError{Stage: stage, Err: err}
}

// Run executes the full pipeline for cfg. It is all-or-nothing: any failure
// in any stage discards all partial work and returns a *StageError naming
// the stage and cause. Cancellation is checked between per-source engine
// calls, so a long multi-source run can be aborted between sources.
func (o *Orchestrator) Run(ctx context.Context, cfg scene.Config) (*Result, error) {
	o.stage.Store(int32(StageValidating))

	if o.engine == nil {
		return o.fail(StageValidating, ErrNoEngine)
	}
	if err := cfg.Validate(); err != nil {
		return o.fail(StageValidating, err)
	}
	if cfg.Duration <= 0 {
		return o.fail(StageValidating, fmt.Errorf("%w: duration = %v (a run needs > 0)", scene.ErrInvariant, cfg.Duration))
	}
	if err := o.gt.validate(cfg); err != nil {
		return o.fail(StageValidating, err)
	}

	n := signal.NumSamples(cfg.Duration, o.sampleRate)
	micPositions := make([][3]float64, len(cfg.Mics))
	for j, mic := range cfg.Mics {
		micPositions[j] = mic.Position
	}

	// Per-source propagation. Sources are independent, but the engine is a
	// black box; calls stay sequential with a cancellation check between
	// them, and a single engine failure aborts the whole run.
	o.stage.Store(int32(StagePropagating))

	dry := make([][]float64, len(cfg.Sources))
	propagated := make([][][]float64, len(cfg.Sources))
	for i, src := range cfg.Sources {
		if err := ctx.Err(); err != nil {
			return o.fail(StagePropagating, err)
		}

		wave, err := o.synth.Render(src.Signal, src.Params, cfg.Duration, o.sampleRate)
		if err != nil {
			return o.fail(StagePropagating, fmt.Errorf("source %q: %w", src.Name, err))
		}
		dry[i] = wave

		prop, err := o.engine.Propagate(ctx, cfg.Room, SourceWave{
			Name:     src.Name,
			Position: src.Position,
			Samples:  wave,
		}, micPositions, o.sampleRate)
		if err != nil {
			return o.fail(StagePropagating, fmt.Errorf("%w: source %q: %w", ErrPropagation, src.Name, err))
		}

		perMic, err := prop.waveforms(wave, len(cfg.Mics), n)
		if err != nil {
			return o.fail(StagePropagating, fmt.Errorf("source %q: %w", src.Name, err))
		}
		propagated[i] = perMic
	}

	// Sum the per-source signals arriving at each microphone.
	o.stage.Store(int32(StageMixing))

	mixed := make([][]float64, len(cfg.Mics))
	for j := range cfg.Mics {
		atMic := make([][]float64, len(cfg.Sources))
		for i := range cfg.Sources {
			atMic[i] = propagated[i][j]
		}
		sum, err := mix.Combine(atMic)
		if err != nil {
			return o.fail(StageMixing, err)
		}
		mixed[j] = sum
	}

	// Microphones share no mutable state, so post-processing runs in
	// parallel, one goroutine per microphone.
	o.stage.Store(int32(StagePostprocessing))

	noiseSeed := o.noiseSeed
	if noiseSeed == 0 {
		noiseSeed = rand.Uint64()
	}

	signals := make([][]float64, len(cfg.Mics))
	warnings := make([]string, len(cfg.Mics))
	errs := make([]error, len(cfg.Mics))

	var wg sync.WaitGroup
	for j, mic := range cfg.Mics {
		wg.Add(1)
		go func() {
			defer wg.Done()
			signals[j], warnings[j], errs[j] = postprocess(mixed[j], mic, o.sampleRate, noiseSeed, uint64(j))
		}()
	}
	wg.Wait()

	for j, err := range errs {
		if err != nil {
			return o.fail(StagePostprocessing, fmt.Errorf("microphone %q: %w", cfg.Mics[j].Name, err))
		}
	}

	truth, err := o.gt.pick(dry, propagated)
	if err != nil {
		return o.fail(StagePostprocessing, err)
	}

	result := &Result{
		Signals:     signals,
		GroundTruth: truth,
		SampleRate:  o.sampleRate,
		NumSources:  len(cfg.Sources),
		NumMics:     len(cfg.Mics),
	}
	for j, w := range warnings {
		if w != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("microphone %q: %s", cfg.Mics[j].Name, w))
		}
	}

	o.stage.Store(int32(StageDone))
	return result, nil
}

// postprocess applies one microphone's characteristics to the mixed signal
// it receives: sensitivity gain, frequency response, additive self-noise.
func postprocess(in []float64, mic scene.Mic, sampleRate int, seed, stream uint64) ([]float64, string, error) {
	scaled := make([]float64, len(in))
	for i, v := range in {
		scaled[i] = v * mic.Sensitivity
	}

	res, err := filter.Apply(scaled, mic.Filter, sampleRate)
	if err != nil {
		return nil, "", err
	}
	out := res.Samples

	if mic.NoiseStd > 0 {
		rng := rand.New(rand.NewPCG(seed, stream+1))
		for i := range out {
			out[i] += mic.NoiseStd * rng.NormFloat64()
		}
	}

	return out, res.Warning, nil
}
