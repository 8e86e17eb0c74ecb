// Package ring implements the negacyclic polynomial ring Z_{2^64}[X]/(X^N+1)
// that backs the LWE, RLWE and RGSW ciphertext algebra: wrapping scalar
// arithmetic, monic-monomial multiplication, a black-box negacyclic Fourier
// transform, and the three random-generator streams (uniform, ternary,
// Gaussian) used by key generation and encryption.
package ring

import (
	"errors"
	"fmt"
	"math/bits"
)

// Scalar is an element of Z_{2^64}. Native uint64 wraparound realizes the
// modulus reduction: no Barrett or Montgomery reduction is needed because
// the modulus is exactly the machine word size.
type Scalar = uint64

// SignedScalar reinterprets a Scalar's top bit as sign, used only for noise
// measurement (the canonical representative of x - q when x is "negative").
type SignedScalar = int64

// ErrInvalidDegree is returned when a requested ring degree is not a power
// of two.
var ErrInvalidDegree = errors.New("ring: degree must be a power of two")

// Ring describes the negacyclic ring Z_q[X]/(X^N+1) for the fixed modulus
// q = 2^64.
type Ring struct {
	N    int
	logN int
}

// NewRing constructs a Ring of degree N. N must be a power of two.
func NewRing(N int) (*Ring, error) {
	if N <= 0 || N&(N-1) != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDegree, N)
	}
	return &Ring{N: N, logN: bits.Len(uint(N)) - 1}, nil
}

// LogN returns log2(N).
func (r *Ring) LogN() int {
	return r.logN
}

// NewPoly allocates the zero polynomial of the ring.
func (r *Ring) NewPoly() Poly {
	return make(Poly, r.N)
}

// CheckDegree panics if p does not have exactly N coefficients. This is a
// shape-mismatch precondition (spec section 7): it is a programming error
// in the core, never user-reachable, so it is asserted rather than
// returned as an error.
func (r *Ring) CheckDegree(p Poly) {
	if len(p) != r.N {
		panic(fmt.Sprintf("ring: degree mismatch: ring N=%d, poly len=%d", r.N, len(p)))
	}
}
