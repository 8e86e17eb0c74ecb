// Package lwe implements LWE ciphertexts and secret keys at an
// arbitrary dimension: encryption/decryption, componentwise wrapping
// arithmetic, sample extraction from RLWE, modulus switching, and
// key-switching (spec section 4.2, 4.7).
package lwe

import "github.com/sergirovira/mfhe-brk/ring"

// Ciphertext is an LWE ciphertext (a ∈ ℤ_q^n, b ∈ ℤ_q) such that
// b − ⟨a, s⟩ = Δ·m + e (spec section 3).
type Ciphertext struct {
	Mask []ring.Scalar
	Body ring.Scalar
}

// NewCiphertext allocates a zero LWE ciphertext of dimension n.
func NewCiphertext(n int) *Ciphertext {
	return &Ciphertext{Mask: make([]ring.Scalar, n)}
}

// Dimension returns n, the mask length.
func (ct *Ciphertext) Dimension() int {
	return len(ct.Mask)
}

// CopyNew returns a deep copy of ct.
func (ct *Ciphertext) CopyNew() *Ciphertext {
	mask := make([]ring.Scalar, len(ct.Mask))
	copy(mask, ct.Mask)
	return &Ciphertext{Mask: mask, Body: ct.Body}
}

// Zero clears ct in place.
func (ct *Ciphertext) Zero() {
	for i := range ct.Mask {
		ct.Mask[i] = 0
	}
	ct.Body = 0
}
