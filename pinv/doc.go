// Package pinv builds the Moore-Penrose pseudo-inverse of a dense complex
// matrix from its singular value decomposition: INV = V·S⁺·U*, where S⁺
// reciprocates every singular value whose magnitude exceeds a cutoff and
// zeroes the rest.
//
// 🚀 What is pinv?
//
//	The only real client of the csvd engine, and a thin one by design:
//	  • FromSVD       — consume S, U, V already produced by csvd.Decompose
//	    (with NU = M, NV = N) and fill a caller-owned N×M result
//	  • PseudoInverse — convenience facade: run the decomposition on A
//	    (destructively) and build the pseudo-inverse in one call
//
// ✨ Key properties:
//   - The cutoff is an absolute constant (DefaultCutoff = 1e-4), not
//     scale-relative like the engine's own negligibility threshold; the
//     asymmetry is deliberate and preserved. WithCutoff lets a caller
//     unify the two policies on purpose.
//   - Rank deficiency is safe: singular values at or below the cutoff map
//     to zero reciprocals, never Inf or NaN.
//   - S is consumed: FromSVD overwrites it with reciprocals and
//     zero-extends it to length M in place (pass a slice of length ≥ M).
//   - FromSVD trusts its inputs to be a valid decomposition; beyond
//     buffer lengths it validates nothing of its own.
//
// ⚙️ Usage:
//
//	a := make([]complex64, m*n) // row-major, destructively consumed
//	inv := make([]complex64, n*m)
//	if err := pinv.PseudoInverse(a, m, n, inv); err != nil {
//	  // csvd sentinels propagate unchanged: errors.Is(err, csvd.ErrRowsLessThanCols)
//	}
//
// Complexity: O(n²·m) time for the triple product, O(m²+n²+m) space in
// the facade (FromSVD itself allocates nothing).
package pinv
