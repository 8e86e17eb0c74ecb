package ring

import (
	"math"
	"math/cmplx"
)

// FourierPoly is the Fourier-domain image of a Poly under the negacyclic
// transform 𝔉: a length-preserving linear map on R_q such that
// 𝔉⁻¹(𝔉(a) ⊙ 𝔉(b)) = a·b in R_q up to a bounded rounding error (spec
// section 4.1). It is a distinct value kind from Poly; conversion between
// the two is always explicit (Design Notes, "Fourier representation
// duality").
//
// Implementation: a twisted DFT. Coefficients i and i+N/2 are packed into
// one complex slot, which is multiplied by ζ^i for the primitive 2N-th
// root of unity ζ = e^{iπ/N} (the negacyclic twist) before a standard
// length-N/2 complex DFT, so that X^N = -1 is handled natively without
// doubling the transform length. This is treated purely as a black-box
// transform by every caller (§4.1): no caller inspects FourierPoly beyond
// Forward/Inverse and the pointwise MulAddTo/MulTo/AddTo/SubTo.
type FourierPoly []complex128

// Fourier holds the precomputed twiddle tables for a ring degree N, so
// that repeated forward/inverse transforms do not recompute trigonometric
// tables. Scoped per call site per the resource-ownership model of spec
// section 5 (FourierBuffers are acquired before use and may be reused
// across operations).
type Fourier struct {
	n       int // N
	half    int // N/2
	twist   []complex128
	twistInv []complex128
}

// NewFourier builds the twiddle tables for a ring of degree N.
func NewFourier(N int) *Fourier {
	half := N / 2
	twist := make([]complex128, half)
	twistInv := make([]complex128, half)
	for i := 0; i < half; i++ {
		// ζ^i with ζ = e^{iπ/N}: since ζ^{N/2} = i, the twist folds
		// X^N = -1 into a half-length transform.
		angle := piTimes(i) / float64(N)
		twist[i] = cmplx.Rect(1, angle)
		twistInv[i] = cmplx.Rect(1, -angle)
	}
	return &Fourier{n: N, half: half, twist: twist, twistInv: twistInv}
}

func piTimes(k int) float64 {
	const pi = 3.14159265358979323846
	return pi * float64(k)
}

// NewFourierPoly allocates a zero FourierPoly sized for this Fourier engine
// (N/2 complex coefficients, packing two real coefficients per slot).
func (f *Fourier) NewFourierPoly() FourierPoly {
	return make(FourierPoly, f.half)
}

// Forward computes the negacyclic transform of p into out.
func (f *Fourier) Forward(p Poly, out FourierPoly) {
	half := f.half
	packed := make([]complex128, half)
	for i := 0; i < half; i++ {
		packed[i] = complex(float64(int64(p[i])), float64(int64(p[i+half]))) * f.twist[i]
	}
	dft(packed, false)
	copy(out, packed)
}

// Inverse computes the preimage of a FourierPoly into out, rounding each
// real/imaginary component to the nearest integer and casting back into
// the wrapping Scalar domain.
func (f *Fourier) Inverse(in FourierPoly, out Poly) {
	half := f.half
	packed := make([]complex128, half)
	copy(packed, in)
	dft(packed, true)
	for i := 0; i < half; i++ {
		v := packed[i] * f.twistInv[i]
		out[i] = roundToScalar(real(v) / float64(half))
		out[i+half] = roundToScalar(imag(v) / float64(half))
	}
}

// MulAddTo computes out += a ⊙ b pointwise in the Fourier domain (the
// multiply-accumulate primitive used by RGSW's external product and by
// monomial pre-multiplication).
func (f *Fourier) MulAddTo(a, b, out FourierPoly) {
	for i := range out {
		out[i] += a[i] * b[i]
	}
}

// MulTo computes out = a ⊙ b pointwise in the Fourier domain.
func (f *Fourier) MulTo(a, b, out FourierPoly) {
	for i := range out {
		out[i] = a[i] * b[i]
	}
}

// AddTo computes out = a + b pointwise in the Fourier domain.
func (f *Fourier) AddTo(a, b, out FourierPoly) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

// SubTo computes out = a - b pointwise in the Fourier domain.
func (f *Fourier) SubTo(a, b, out FourierPoly) {
	for i := range out {
		out[i] = a[i] - b[i]
	}
}

func roundToScalar(x float64) Scalar {
	// Reduce modulo 2^64 into [-2^63, 2^63) before the int64 cast, so that
	// products larger than the int64 range wrap like Scalar arithmetic.
	const two64 = 18446744073709551616.0 // 2^64
	x = math.Mod(x, two64)
	if x >= two64/2 {
		x -= two64
	} else if x < -two64/2 {
		x += two64
	}
	r := int64(roundHalfAwayFromZero(x))
	return Scalar(r)
}

func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}

// dft computes an in-place radix-2 Cooley-Tukey DFT (inverse when inv is
// true, unnormalized). len(data) must be a power of two.
func dft(data []complex128, inv bool) {
	n := len(data)
	if n <= 1 {
		return
	}

	// Bit-reversal permutation.
	for i, j := 1, 0; i < n; i++ {
		bit := n >> 1
		for ; j&bit != 0; bit >>= 1 {
			j ^= bit
		}
		j ^= bit
		if i < j {
			data[i], data[j] = data[j], data[i]
		}
	}

	for length := 2; length <= n; length <<= 1 {
		angle := -2 * piTimes(1) / float64(length)
		if inv {
			angle = -angle
		}
		wLen := cmplx.Rect(1, angle)
		for i := 0; i < n; i += length {
			w := complex(1, 0)
			half := length / 2
			for j := 0; j < half; j++ {
				u := data[i+j]
				v := data[i+j+half] * w
				data[i+j] = u + v
				data[i+j+half] = u - v
				w *= wLen
			}
		}
	}
}
