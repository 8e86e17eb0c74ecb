package rgsw

import "github.com/sergirovira/mfhe-brk/ring"

// Decomposer carries out the gadget decomposition of spec section 4.4:
// given a base B = 2^baseLog and a level count ℓ, it rewrites a scalar
// x ∈ ℤ_q as ℓ signed-balanced digits d_0, …, d_{ℓ-1} ∈ [-B/2, B/2) such
// that x ≈ Σ_i d_i · B^{ℓ-1-i} · 2^shift, shift = 64 - ℓ·baseLog
// (grounded on original_source/src/rlwe.rs's encrypt_rgsw shift
// convention and lib.rs's decomposition helpers).
type Decomposer struct {
	BaseLog int
	Levels  int
}

// NewDecomposer builds a Decomposer for the given gadget parameters.
func NewDecomposer(baseLog, levels int) Decomposer {
	return Decomposer{BaseLog: baseLog, Levels: levels}
}

// shift is the number of low-order bits of x discarded by rounding
// before decomposition.
func (d Decomposer) shift() uint {
	return uint(64 - d.Levels*d.BaseLog)
}

// Digits decomposes a single scalar into d.Levels signed-balanced
// digits, most-significant first, stored as the bit pattern of their
// two's-complement int64 representative.
func (d Decomposer) Digits(x ring.Scalar) []int64 {
	shift := d.shift()
	half := uint64(1) << uint(d.BaseLog-1)
	base := uint64(1) << uint(d.BaseLog)
	mask := base - 1

	rounded := uint64(x)
	if shift > 0 {
		rounding := uint64(1) << (shift - 1)
		rounded = (uint64(x) + rounding) >> shift
	}

	digits := make([]int64, d.Levels)
	carry := uint64(0)
	val := rounded
	for i := d.Levels - 1; i >= 0; i-- {
		chunk := (val & mask) + carry
		carry = 0
		if chunk >= half {
			chunk -= base
			carry = 1
		}
		digits[i] = int64(chunk)
		val >>= uint(d.BaseLog)
	}
	return digits
}

// DecomposePoly decomposes every coefficient of p independently,
// returning d.Levels polynomials (most-significant level first) whose
// i-th coefficients are the i-th digit of p's corresponding coefficient.
func (d Decomposer) DecomposePoly(r *ring.Ring, p ring.Poly) []ring.Poly {
	out := make([]ring.Poly, d.Levels)
	for i := range out {
		out[i] = r.NewPoly()
	}
	for coeffIdx, x := range p {
		digits := d.Digits(x)
		for level, dg := range digits {
			out[level][coeffIdx] = ring.Scalar(dg)
		}
	}
	return out
}

// Delta returns Δ_level = q / B^{level+1} for the 0-indexed level, the
// scaling factor added into row 2*level (mask) / 2*level+1 (body) at
// RGSW-encryption time (spec section 3).
func (d Decomposer) Delta(level int) ring.Scalar {
	shift := uint(64 - d.BaseLog*(level+1))
	return ring.Scalar(1) << shift
}
