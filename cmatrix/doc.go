// Package cmatrix provides dense complex-matrix primitives for the lvlsvd
// decomposition pipeline: flat row-major complex64 storage plus the small
// set of fail-fast kernels the SVD engine's callers and tests need.
//
// 🚀 What is cmatrix?
//
//	The storage and algebra substrate under csvd/ and pinv/:
//	  • Dense      — row-major complex64 matrix in one zeroed allocation
//	  • Mul        — C = A×B with strict inner-dimension validation
//	  • ConjTranspose — A* (conjugate transpose)
//	  • Add / Sub  — elementwise, same-shape only
//	  • ScaleCols  — column scaling by a real vector (forms U·diag(S))
//	  • MaxAbsDiff — ‖A−B‖_max for tolerance checks
//
// ✨ Key properties:
//   - complex64 throughout — the decomposition is a single-precision
//     algorithm, and the storage does not silently promote it
//   - deterministic loop orders, one allocation per fresh result
//   - sentinel errors (ErrDimensionMismatch, ErrIndexOutOfBounds, …)
//     matched via errors.Is; no panics on user-triggered conditions
//   - Data() exposes the backing slice so csvd.Decompose can run on a
//     Dense without copying or allocating
//
// ⚙️ Usage:
//
//	a, _ := cmatrix.NewDense(3, 3)
//	_ = a.Set(0, 0, complex(0.4032, 0.0876))
//	at, _ := cmatrix.ConjTranspose(a)
//	prod, err := cmatrix.Mul(a, at)
//
// Complexity: all kernels are O(r·c) except Mul, which is O(r·n·c).
package cmatrix
