// Package csvd computes the singular value decomposition of a dense
// complex matrix: A = U·S·V*, with U and V unitary and S non-negative,
// sorted in descending order (Businger–Golub, ACM Algorithm 358).
//
// 🚀 What is csvd?
//
//	The numerical core of lvlsvd. Given an M×N complex64 matrix with
//	M ≥ N, Decompose produces:
//	  • S — the N singular values, descending, non-negative
//	  • U — the first NU columns of the M×M left unitary factor
//	  • V — the first NV columns of the N×N right unitary factor
//	and optionally premultiplies P auxiliary columns appended after
//	column N by U* (they ride the same left transformation).
//
// The algorithm runs in three phases:
//  1. Householder bidiagonalization with unit-modulus phase corrections,
//     recording diagonal magnitudes in B and super-diagonal magnitudes in C.
//  2. Implicit-shift QR diagonalization of the real bidiagonal (B, C),
//     driven by an explicit state machine per index
//     {splitting → cancelling → shift-step → converged}, with a single
//     scale-relative negligibility threshold eps computed once per call.
//  3. Selection sort of S (lockstep column swaps in U, V and auxiliary
//     rows), then Householder back-transformation to recover the true
//     singular vectors.
//
// ✨ Key properties:
//   - Caller-owned buffers: A is overwritten in place (take a copy first
//     if you still need it); S, U, V are written into the slices you pass.
//   - No allocation: scratch lives in three fixed [MaxDim]float32 arrays
//     on the stack. N may not exceed MaxDim (currently 150) — raising the
//     bound means recompiling with a larger constant.
//   - Single precision: complex64/float32 arithmetic with the classic
//     thresholds (tol — smallest normalized float32 over machine epsilon;
//     eta — float32 machine epsilon) preserved exactly.
//   - Fail fast: every precondition is checked before any mutation and
//     reported as a sentinel error; invalid shapes are terminal,
//     non-retryable caller bugs.
//   - No package state: concurrent Decompose calls on disjoint buffers
//     need no coordination.
//
// ⚙️ Usage:
//
//	a := make([]complex64, m*n) // row-major, destructively consumed
//	s := make([]float32, n)
//	u := make([]complex64, m*m)
//	v := make([]complex64, n*n)
//	if err := csvd.Decompose(a, m, n, 0, m, n, s, u, v); err != nil {
//	  // errors.Is(err, csvd.ErrRowsLessThanCols), ...
//	}
//
// Complexity: O(M·N²) time, O(1) extra memory beyond caller buffers.
package csvd
