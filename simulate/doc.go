// SPDX-License-Identifier: EPL-2.0

// Package simulate orchestrates a full acoustic scene simulation around an
// external acoustics engine.
//
// # Pipeline
//
// A run moves through a fixed sequence of stages:
//
//	Idle -> Validating -> Propagating -> Mixing -> Postprocessing -> Done
//
// with Failed reachable from every stage. Validation applies the scene
// invariants before any work happens; propagation renders each source and
// asks the Engine how the room carries it to every microphone; mixing sums
// the per-source signals at each microphone; post-processing applies each
// microphone's sensitivity, frequency response and self-noise.
//
//	eng := myEngine{}
//	orch := simulate.New(eng, simulate.WithNoiseSeed(1))
//	result, err := orch.Run(ctx, cfg)
//
// # Engine Contract
//
// The Engine is a black box (image-source, ray tracing, measured data - the
// orchestrator does not care). It may answer with raw impulse responses or
// with already-convolved waveforms; both are normalized to per-source
// per-microphone waveforms of exactly the scene length before mixing, so
// reverb tails never smuggle a length mismatch into the mixer.
//
// # Failure Model
//
// A run is all-or-nothing. Any failure - invariant violation, synthesis
// error, engine error, shape mismatch - halts the state machine and returns
// a *StageError carrying the stage and cause; no partial Result ever
// escapes. An engine failure for one source aborts the whole run and names
// that source. Cancellation via the context is honored between per-source
// engine calls.
//
// # Concurrency
//
// The scene Config is treated as an immutable snapshot for the duration of
// a run. Engine calls are sequential; microphone post-processing runs one
// goroutine per microphone, which is safe because microphones share no
// mutable state. The sample rate is fixed per orchestrator, so concurrent
// orchestrators can run at different rates without interfering.
//
// # Ground Truth
//
// The reference signal for evaluation defaults to the propagated signal of
// the first source at the first microphone. The policy is explicit and
// overridable (WithGroundTruth): dry source signals and the sum of all
// sources are also selectable, and indices are ordinal so the choice is
// deterministic.
package simulate
