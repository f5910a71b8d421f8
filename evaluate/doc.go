// SPDX-License-Identifier: EPL-2.0

// Package evaluate scores simulated microphone recordings against a
// reference signal.
//
// MSE averages the recordings sample-wise and reports the mean squared error
// against the ground truth. SNR reports a signal-to-noise ratio in dB. Both
// are diagnostics over finished simulation results; unlike the mixing
// pipeline they tolerate length mismatches by comparing over the overlap.
package evaluate
