// SPDX-License-Identifier: MIT

package csvd

// Test-Bridge (White-Box) for the Phase-2 step functions
//
// Purpose:
//   - Expose the UNEXPORTED state-machine steps (split scan, cancellation
//     sweep, shifted QR sweep) to csvd_test ONLY, so each branch of the
//     diagonalization loop is independently testable without widening the
//     production API.
//
// Behavior & Determinism:
//   - Thin pass-throughs; no allocations, no side effects of their own.
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here to avoid clutter across
//     files. If a private step changes signature, mirror it here once.

// SplitScan_TestOnly forwards to the private splitScan step.
func SplitScan_TestOnly(s, t []float32, eps float32, k int) (int, bool) {
	return splitScan(s, t, eps, k)
}

// CancelSweep_TestOnly forwards to the private cancelSweep step.
func CancelSweep_TestOnly(s, t []float32, eps float32, l, k int, u []complex64, nu int, a []complex64, lda, n, p int) {
	cancelSweep(s, t, eps, l, k, u, nu, a, lda, n, p)
}

// QRSweep_TestOnly forwards to the private qrSweep step.
func QRSweep_TestOnly(s, t []float32, l, k int, u, v []complex64, nu, nv int, a []complex64, lda, n, p int) {
	qrSweep(s, t, l, k, u, v, nu, nv, a, lda, n, p)
}

// Eta_TestOnly exposes the machine-epsilon constant for threshold tests.
const Eta_TestOnly = eta
