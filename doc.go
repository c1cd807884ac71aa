// Package lvlsvd is a small, allocation-conscious numerical library for
// the singular value decomposition of dense complex matrices and the
// Moore-Penrose pseudo-inverse derived from it.
//
// 🚀 What is lvlsvd?
//
//	A pure-Go, zero-dependency library built around one delicate core:
//		• csvd/    — complex SVD (Businger–Golub, ACM Algorithm 358):
//		             Householder bidiagonalization, implicit-shift QR
//		             diagonalization, sorting and back-transformation
//		• pinv/    — Moore-Penrose pseudo-inverse INV = V·S⁺·U*
//		• cmatrix/ — dense complex64 matrix primitives (Mul, ConjTranspose, …)
//
// ✨ Why choose lvlsvd?
//
//   - Caller-owned buffers – the engine writes results in place and keeps
//     its scratch on the stack, so steady-state calls allocate nothing
//   - Single-precision fidelity – complex64/float32 arithmetic with the
//     classic negligibility thresholds preserved exactly
//   - Rock-solid guarantees – sentinel errors checked before any mutation,
//     deterministic loop orders, no global state
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under three subpackages:
//
//	cmatrix/ — row-major complex64 Dense storage + fail-fast kernels
//	csvd/    — the SVD engine: Decompose(A, M, N, P, NU, NV) → S, U, V
//	pinv/    — FromSVD and the PseudoInverse convenience facade
//
// Quick sketch:
//
//	A (M×N, M ≥ N)  ──Decompose──▶  U (M×NU), S (descending, ≥ 0), V (N×NV)
//	                 ──FromSVD────▶  INV = V·S⁺·U*  (N×M)
//
// Concurrent calls on disjoint buffers are independent: the engine holds
// no cross-call state. A single call must own its buffers exclusively.
//
//	go get github.com/katalvlaran/lvlsvd
package lvlsvd
