// SPDX-License-Identifier: MIT
// Package csvd: compiled bounds, numeric policy constants, and the QR
// state machine vocabulary. These are the single source of truth for the
// engine's numeric behavior; changing any of them changes which elements
// the algorithm treats as zero.

package csvd

import "math"

// MaxDim bounds the supported column count N. The three scratch vectors
// of the reduction (diagonal B, super-diagonal C, working copy T) are
// fixed [MaxDim]float32 arrays living on the stack, which is what keeps
// Decompose allocation-free. Raising the bound requires recompiling.
const MaxDim = 150

// Numeric policy (single precision, preserved from the reference
// formulation of ACM Algorithm 358).
const (
	// tol is the Phase-1 "column is already zero" threshold: the smallest
	// normalized positive float32 divided by machine epsilon. Squared
	// column norms at or below tol produce no reflector.
	tol float32 = 1.5e-31

	// eta is the relative machine precision of float32. The Phase-2
	// negligibility threshold is eps = eta * max_k(S[k]+T[k]), computed
	// once per call from the matrix's own scale.
	eta float32 = 1.1920929e-7
)

// qrState enumerates the stages of the Phase-2 inner loop for one index k.
// The reference formulation expresses this machine with goto fallthrough;
// naming the states keeps the many branch conditions independently
// testable.
type qrState uint8

const (
	// stateSplitting scans upward from k for a split index l where the
	// super-diagonal entry is negligible, or detects a negligible diagonal
	// entry that demands cancellation first.
	stateSplitting qrState = iota

	// stateCancelling runs a Givens sweep from l to k that drives the
	// super-diagonal entries to zero when the diagonal above the split is
	// negligible, rotating U row pairs (and auxiliary rows) in lockstep.
	stateCancelling

	// stateShiftStep applies one implicit QR sweep with a stabilized
	// Wilkinson-style origin shift derived from the trailing 2×2 block.
	stateShiftStep

	// stateConverged terminates the loop for index k: the bottom 1×1 block
	// has decoupled and s[k] holds the (possibly still negative) value.
	stateConverged
)

// sqrt32 narrows math.Sqrt to float32. The float64 round-trip is exact
// for every float32 input, so single-precision semantics are preserved.
func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// abs32 returns |x| in float32.
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}

	return x
}

// cabs32 returns the modulus of z computed in single precision,
// sqrt(re²+im²), matching the reference arithmetic exactly.
func cabs32(z complex64) float32 {
	re, im := real(z), imag(z)

	return sqrt32(re*re + im*im)
}

// conj64 returns the complex conjugate of z.
func conj64(z complex64) complex64 {
	return complex(real(z), -imag(z))
}
