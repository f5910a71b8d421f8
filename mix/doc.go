// SPDX-License-Identifier: EPL-2.0

// Package mix combines per-source signals into per-microphone recordings.
//
// Combine is a sample-wise sum: each output sample is the sum of the
// corresponding sample of every input. Inputs must share one length; a
// mismatch fails with ErrShapeMismatch rather than truncating, since a
// silently shortened mix would skew every metric computed from it.
//
// Average is Combine scaled by 1/k, the conventional delay-free array
// mixdown used when evaluating recordings against a reference signal.
package mix
