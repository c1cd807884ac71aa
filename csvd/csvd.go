// SPDX-License-Identifier: MIT
// Package csvd: the decomposition engine.
//
// The file is organized along the three phases of ACM Algorithm 358:
//   - bidiagonalize      — Phase 1, Householder reduction of A
//   - diagonalize        — Phase 2, implicit-shift QR on the bidiagonal
//     (splitScan / cancelSweep / qrSweep step the state machine)
//   - sortSingularValues — Phase 3a, selection sort with lockstep swaps
//   - backTransformLeft / backTransformRight — Phase 3b, reflector replay
//
// Index conventions: A is row-major M×(N+P) with stride lda = N+P; U is
// M×NU with stride NU; V is N×NV with stride NV. All loop bounds mirror
// the reference formulation; where the reference exploits fixed Fortran
// leading dimensions, the strides above replace them.

package csvd

import "fmt"

const opDecompose = "Decompose"

// csvdErrorf wraps err with an operation tag, preserving the sentinel via
// %w so call sites still match with errors.Is. Use only when err != nil.
func csvdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Decompose computes the singular value decomposition A = U·S·V* of the
// M×N complex matrix held row-major in a, overwriting a in place.
//
// Implementation:
//   - Stage 1: validate shapes and buffer lengths; fail before mutating.
//   - Stage 2: Householder bidiagonalization (Phase 1).
//   - Stage 3: implicit-shift QR diagonalization with sign normalization
//     (Phase 2), then sort + back-transformation (Phase 3).
//
// Behavior highlights:
//   - a may carry P extra columns after column N; they are premultiplied
//     by U* and are otherwise left out of the decomposition.
//   - s receives the N singular values, descending and non-negative.
//   - u receives the first NU columns of U (M×NU); v the first NV columns
//     of V (N×NV). Pass NU=0 / NV=0 to skip a factor entirely.
//   - a is consumed: after the call it holds reflector data, not the
//     original matrix. Clone beforehand if the original is still needed.
//
// Inputs:
//   - a: row-major M×(N+P) complex64 slice, destructively transformed.
//   - m, n: matrix dimensions, 1 ≤ n ≤ m, n ≤ MaxDim.
//   - p: auxiliary column count (≥ 0).
//   - nu: columns of U to produce (0, or n..m).
//   - nv: columns of V to produce (0, or exactly n).
//   - s, u, v: caller-owned output buffers (never read before writing).
//
// Errors:
//   - ErrColsOutOfRange, ErrExceedsMaxDim, ErrRowsOutOfRange,
//     ErrRowsLessThanCols, ErrAuxColsNegative, ErrFactorWidth,
//     ErrShortBuffer — all raised before any buffer is touched.
//
// Determinism:
//   - Fixed loop orders and a per-call threshold eps derived from the
//     matrix's own scale; identical inputs give identical outputs.
//
// Complexity:
//   - Time O(m·n²), Space O(1) beyond caller buffers (scratch is three
//     fixed [MaxDim]float32 stack arrays).
func Decompose(a []complex64, m, n, p, nu, nv int, s []float32, u, v []complex64) error {
	// Validate everything up front; a failed call mutates nothing.
	if err := validateShape(m, n, p, nu, nv); err != nil {
		return csvdErrorf(opDecompose, err)
	}
	if err := validateBuffers(a, m, n, p, nu, nv, s, u, v); err != nil {
		return csvdErrorf(opDecompose, err)
	}

	// Fixed-capacity scratch: diagonal magnitudes, super-diagonal
	// magnitudes, and the Phase-2 working copy of the super-diagonal.
	var b, c, t [MaxDim]float32
	lda := n + p

	// Phase 1: reduce A to bidiagonal form, riding the P columns along.
	bidiagonalize(a, m, n, p, lda, b[:], c[:])

	// Phase 2: diagonalize the real bidiagonal, accumulating rotations.
	diagonalize(a, m, n, p, nu, nv, lda, s, u, v, b[:], c[:], t[:])

	// Phase 3: descending order, then recover the true singular vectors.
	sortSingularValues(a, n, p, nu, nv, lda, s, u, v)
	backTransformLeft(a, m, n, nu, lda, u, b[:])
	backTransformRight(a, n, nv, lda, v, c[:])

	return nil
}

// bidiagonalize performs the Phase-1 Householder reduction. For each
// column k it eliminates A[k+1..m, k] (recording the magnitude in b[k]),
// applies the reflector to columns k+1..n+p-1 so the P auxiliary columns
// receive the same left transformation, and applies a unit-modulus phase
// correction. It then eliminates A[k, k+2..n] row-wise (recording c[k+1]),
// restricted to the N active columns. Squared norms at or below tol
// produce no reflector: a numerically zero column or row is left as-is.
func bidiagonalize(a []complex64, m, n, p, lda int, b, c []float32) {
	var (
		k1   int       // k+1, pivot of the row elimination
		z, w float32   // squared/2-norm accumulator and pivot modulus
		q    complex64 // reflector phase / projection accumulator
		i, j int       // loop iterators
	)
	c[0] = 0

	for k := 0; k < n; k++ {
		k1 = k + 1

		// Elimination of A[i,k], i = k+1..m-1.
		z = 0
		for i = k; i < m; i++ {
			re, im := real(a[i*lda+k]), imag(a[i*lda+k])
			z += re*re + im*im
		}
		b[k] = 0

		if z > tol {
			z = sqrt32(z)
			b[k] = z
			w = cabs32(a[k*lda+k])
			if w == 0 {
				q = 1
			} else {
				q = a[k*lda+k] / complex(w, 0)
			}
			a[k*lda+k] = q * complex(z+w, 0)

			if k != n-1+p {
				for j = k1; j < n+p; j++ {
					q = 0
					for i = k; i < m; i++ {
						q += conj64(a[i*lda+k]) * a[i*lda+j]
					}
					q /= complex(z*(z+w), 0)
					for i = k; i < m; i++ {
						a[i*lda+j] -= q * a[i*lda+k]
					}
				}

				// Phase transformation: make the pivot row real-aligned.
				q = -conj64(a[k*lda+k]) / complex(cabs32(a[k*lda+k]), 0)
				for j = k1; j < n+p; j++ {
					a[k*lda+j] *= q
				}
			}
		}

		// Elimination of A[k,j], j = k+2..n-1. The auxiliary columns are
		// untouched here: row reflectors act from the right.
		if k == n-1 {
			break
		}

		z = 0
		for j = k1; j < n; j++ {
			re, im := real(a[k*lda+j]), imag(a[k*lda+j])
			z += re*re + im*im
		}
		c[k1] = 0

		if z > tol {
			z = sqrt32(z)
			c[k1] = z
			w = cabs32(a[k*lda+k1])
			if w == 0 {
				q = 1
			} else {
				q = a[k*lda+k1] / complex(w, 0)
			}
			a[k*lda+k1] = q * complex(z+w, 0)

			for i = k1; i < m; i++ {
				q = 0
				for j = k1; j < n; j++ {
					q += conj64(a[k*lda+j]) * a[i*lda+j]
				}
				q /= complex(z*(z+w), 0)
				for j = k1; j < n; j++ {
					a[i*lda+j] -= q * a[k*lda+j]
				}
			}

			// Phase transformation on the pivot column.
			q = -conj64(a[k*lda+k1]) / complex(cabs32(a[k*lda+k1]), 0)
			for i = k1; i < m; i++ {
				a[i*lda+k1] *= q
			}
		}
	}
}

// diagonalize performs Phase 2: it copies the bidiagonal magnitudes into
// s (diagonal) and t (super-diagonal), derives the negligibility
// threshold eps from the matrix's own scale, initializes U and V to
// identity truncations, and runs the per-index state machine until every
// singular value has decoupled. A converged value that comes out negative
// is sign-normalized by flipping s[k] and the matching V column.
func diagonalize(a []complex64, m, n, p, nu, nv, lda int, s []float32, u, v []complex64, b, c, t []float32) {
	// Threshold for negligible elements, from the matrix's own scale.
	var eps float32
	for k := 0; k < n; k++ {
		s[k] = b[k]
		t[k] = c[k]
		if s[k]+t[k] > eps {
			eps = s[k] + t[k]
		}
	}
	eps *= eta

	// Initialization of U and V as identity truncations.
	var i, j int
	if nu > 0 {
		for j = 0; j < nu; j++ {
			for i = 0; i < m; i++ {
				u[i*nu+j] = 0
			}
			u[j*nu+j] = 1
		}
	}
	if nv > 0 {
		for j = 0; j < nv; j++ {
			for i = 0; i < n; i++ {
				v[i*nv+j] = 0
			}
			v[j*nv+j] = 1
		}
	}

	// QR diagonalization, bottom index first.
	var (
		k, l   int
		cancel bool
		state  qrState
	)
	for kk := 0; kk < n; kk++ {
		k = n - 1 - kk

		state = stateSplitting
		for state != stateConverged {
			switch state {
			case stateSplitting:
				l, cancel = splitScan(s, t, eps, k)
				if cancel {
					state = stateCancelling
					continue
				}
				if l == k {
					state = stateConverged
					continue
				}
				state = stateShiftStep

			case stateCancelling:
				cancelSweep(s, t, eps, l, k, u, nu, a, lda, n, p)
				if l == k {
					state = stateConverged
					continue
				}
				state = stateShiftStep

			case stateShiftStep:
				qrSweep(s, t, l, k, u, v, nu, nv, a, lda, n, p)
				state = stateSplitting
			}
		}

		// Convergence: singular values must be non-negative.
		if s[k] < 0 {
			s[k] = -s[k]
			if nv > 0 {
				for j = 0; j < n; j++ {
					v[j*nv+k] = -v[j*nv+k]
				}
			}
		}
	}
}

// splitScan scans upward from k for the split index l. It stops at the
// first l whose super-diagonal entry t[l] is negligible (no cancellation
// needed), or at the first l whose diagonal neighbor s[l-1] is negligible
// (cancellation required before the convergence test). The scan always
// terminates: t[0] is identically zero.
func splitScan(s, t []float32, eps float32, k int) (l int, cancel bool) {
	for l = k; l >= 0; l-- {
		if abs32(t[l]) <= eps {
			return l, false
		}
		// l >= 1 here: the l == 0 case already returned above.
		if abs32(s[l-1]) <= eps {
			return l, true
		}
	}

	// Unreachable: t[0] == 0 <= eps.
	return 0, false
}

// cancelSweep performs the Givens cancellation of t[l..k] when the
// diagonal entry s[l-1] is negligible, rotating the (l-1, i) row pairs of
// U — and of the auxiliary columns — in lockstep. The sweep short-circuits
// as soon as the running super-diagonal contribution becomes negligible.
func cancelSweep(s, t []float32, eps float32, l, k int, u []complex64, nu int, a []complex64, lda, n, p int) {
	cs, sn := float32(0), float32(1)
	l1 := l - 1

	var (
		f, h, w float32
		j       int
	)
	for i := l; i <= k; i++ {
		f = sn * t[i]
		t[i] = cs * t[i]
		if abs32(f) <= eps {
			break
		}

		h = s[i]
		w = sqrt32(f*f + h*h)
		s[i] = w
		cs = h / w
		sn = -f / w

		// Rotate U row pairs. U is still real here: only real parts move.
		if nu > 0 {
			for j = 0; j < n; j++ {
				x := real(u[j*nu+l1])
				y := real(u[j*nu+i])
				u[j*nu+l1] = complex(x*cs+y*sn, 0)
				u[j*nu+i] = complex(y*cs-x*sn, 0)
			}
		}

		// The auxiliary columns carry U*'s action and must follow.
		if p > 0 {
			for j = n; j < n+p; j++ {
				q := a[l1*lda+j]
				r := a[i*lda+j]
				a[l1*lda+j] = q*complex(cs, 0) + r*complex(sn, 0)
				a[i*lda+j] = r*complex(cs, 0) - q*complex(sn, 0)
			}
		}
	}
}

// qrSweep applies one implicit QR step to the block l..k: a stabilized
// Wilkinson-style origin shift computed from the trailing 2×2 block,
// followed by a sweep of Givens rotations chasing the bulge from l+1 to
// k, accumulated into V and U column pairs (and auxiliary rows).
func qrSweep(s, t []float32, l, k int, u, v []complex64, nu, nv int, a []complex64, lda, n, p int) {
	// Origin shift.
	x := s[l]
	y := s[k-1]
	g := t[k-1]
	h := t[k]
	w := s[k]
	f := ((y-w)*(y+w) + (g-h)*(g+h)) / (2 * h * y)
	g = sqrt32(f*f + 1)
	if f < 0 {
		g = -g
	}
	f = ((x-w)*(x+w) + (y/(f+g)-h)*h) / x

	// QR step.
	cs, sn := float32(1), float32(1)
	var j int
	for i := l + 1; i <= k; i++ {
		g = t[i]
		y = s[i]
		h = sn * g
		g = cs * g
		w = sqrt32(h*h + f*f)
		t[i-1] = w
		cs = f / w
		sn = h / w
		f = x*cs + g*sn
		g = g*cs - x*sn
		h = y * sn
		y = y * cs

		if nv > 0 {
			for j = 0; j < n; j++ {
				vx := real(v[j*nv+i-1])
				vw := real(v[j*nv+i])
				v[j*nv+i-1] = complex(vx*cs+vw*sn, 0)
				v[j*nv+i] = complex(vw*cs-vx*sn, 0)
			}
		}

		w = sqrt32(h*h + f*f)
		s[i-1] = w
		cs = f / w
		sn = h / w
		f = cs*g + sn*y
		x = cs*y - sn*g

		if nu > 0 {
			for j = 0; j < n; j++ {
				uy := real(u[j*nu+i-1])
				uw := real(u[j*nu+i])
				u[j*nu+i-1] = complex(uy*cs+uw*sn, 0)
				u[j*nu+i] = complex(uw*cs-uy*sn, 0)
			}
		}

		if p > 0 {
			for j = n; j < n+p; j++ {
				q := a[(i-1)*lda+j]
				r := a[i*lda+j]
				a[(i-1)*lda+j] = q*complex(cs, 0) + r*complex(sn, 0)
				a[i*lda+j] = r*complex(cs, 0) - q*complex(sn, 0)
			}
		}
	}

	t[l] = 0
	t[k] = f
	s[k] = x
}

// sortSingularValues selection-sorts s into descending order, swapping
// the matching columns of U and V — and the auxiliary rows of A — in
// lockstep so the factors stay consistent with the reordered values.
func sortSingularValues(a []complex64, n, p, nu, nv, lda int, s []float32, u, v []complex64) {
	var (
		g    float32
		i, j int
	)
	for k := 0; k < n; k++ {
		g = -1
		j = k
		for i = k; i < n; i++ {
			if s[i] > g {
				g = s[i]
				j = i
			}
		}
		if j == k {
			continue
		}

		s[j] = s[k]
		s[k] = g

		// Interchange V[0..n, j] and V[0..n, k].
		if nv > 0 {
			for i = 0; i < n; i++ {
				v[i*nv+j], v[i*nv+k] = v[i*nv+k], v[i*nv+j]
			}
		}

		// Interchange U[0..n, j] and U[0..n, k]. Rows n..m-1 are still
		// zero in these columns before back-transformation.
		if nu > 0 {
			for i = 0; i < n; i++ {
				u[i*nu+j], u[i*nu+k] = u[i*nu+k], u[i*nu+j]
			}
		}

		// Interchange auxiliary rows j and k.
		if p > 0 {
			for i = n; i < n+p; i++ {
				a[j*lda+i], a[k*lda+i] = a[k*lda+i], a[j*lda+i]
			}
		}
	}
}

// backTransformLeft replays the Phase-1 column reflectors (stored in the
// consumed A) onto U, from the innermost reflector outward, recovering
// the true left singular vectors. Reflectors whose column was already
// negligible (b[k] == 0) were never formed and are skipped.
func backTransformLeft(a []complex64, m, n, nu, lda int, u []complex64, b []float32) {
	if nu == 0 {
		return
	}

	var (
		q    complex64
		i, j int
	)
	for kk := 0; kk < n; kk++ {
		k := n - 1 - kk
		if b[k] == 0 {
			continue
		}

		// Undo the phase correction on row k.
		q = -a[k*lda+k] / complex(cabs32(a[k*lda+k]), 0)
		for j = 0; j < nu; j++ {
			u[k*nu+j] *= q
		}

		// Apply the reflector to every requested column of U.
		for j = 0; j < nu; j++ {
			q = 0
			for i = k; i < m; i++ {
				q += conj64(a[i*lda+k]) * u[i*nu+j]
			}
			q /= complex(cabs32(a[k*lda+k])*b[k], 0)
			for i = k; i < m; i++ {
				u[i*nu+j] -= q * a[i*lda+k]
			}
		}
	}
}

// backTransformRight replays the Phase-1 row reflectors onto V,
// symmetrically to backTransformLeft but acting on V's rows k+1..n-1.
// Degenerate cases (n == 1, or c[k+1] == 0) have nothing to undo.
func backTransformRight(a []complex64, n, nv, lda int, v []complex64, c []float32) {
	if nv == 0 || n < 2 {
		return
	}

	var (
		q    complex64
		i, j int
	)
	for kk := 1; kk < n; kk++ {
		k := n - 1 - kk
		k1 := k + 1
		if c[k1] == 0 {
			continue
		}

		// Undo the phase correction on row k1.
		q = -conj64(a[k*lda+k1]) / complex(cabs32(a[k*lda+k1]), 0)
		for j = 0; j < nv; j++ {
			v[k1*nv+j] *= q
		}

		// Apply the row reflector to every requested column of V.
		for j = 0; j < nv; j++ {
			q = 0
			for i = k1; i < n; i++ {
				q += a[k*lda+i] * v[i*nv+j]
			}
			q /= complex(cabs32(a[k*lda+k1])*c[k1], 0)
			for i = k1; i < n; i++ {
				v[i*nv+j] -= q * conj64(a[k*lda+i])
			}
		}
	}
}
