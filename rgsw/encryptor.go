package rgsw

import (
	"github.com/sergirovira/mfhe-brk/ring"
	"github.com/sergirovira/mfhe-brk/rlwe"
)

// EncryptZero produces a fresh RGSW encryption of the zero polynomial:
// every row is an independent secret-key RLWE encryption of 0 (spec
// section 3; grounded on original_source/src/rlwe.rs::encrypt_constant_rgsw,
// which seeds encrypt_rgsw by first building an all-zero base).
func EncryptZero(r *ring.Ring, sk *rlwe.SecretKey, d Decomposer, gen *ring.Generators) *Ciphertext {
	ct := NewCiphertext(r, d)
	zero := r.NewPoly()
	for i := range ct.Rows {
		ct.Rows[i] = rlwe.EncryptSK(r, sk, zero, gen)
	}
	return ct
}

// Encrypt produces a fresh RGSW encryption of plaintext polynomial p
// (spec section 3: "encrypting plaintext polynomial p(X) lays out
// p·Δ_i into the appropriate half of row (2i, 2i+1)"; grounded on
// original_source/src/rlwe.rs::encrypt_rgsw).
func Encrypt(r *ring.Ring, sk *rlwe.SecretKey, p ring.Poly, d Decomposer, gen *ring.Generators) *Ciphertext {
	ct := EncryptZero(r, sk, d, gen)
	scaled := r.NewPoly()
	for level := 0; level < d.Levels; level++ {
		delta := d.Delta(level)
		r.MulScalar(p, delta, scaled)
		maskRow := ct.Rows[2*level]
		r.Add(maskRow.Value[0], scaled, maskRow.Value[0])
		bodyRow := ct.Rows[2*level+1]
		r.Add(bodyRow.Value[1], scaled, bodyRow.Value[1])
	}
	return ct
}

// EncryptConstant encrypts the constant polynomial with coefficient x
// at position 0 and zero elsewhere (used to build the RGSW(0)/RGSW(1)
// constants consumed by the homomorphic indicator, spec section 4.5).
func EncryptConstant(r *ring.Ring, sk *rlwe.SecretKey, x ring.Scalar, d Decomposer, gen *ring.Generators) *Ciphertext {
	p := r.NewPoly()
	p[0] = x
	return Encrypt(r, sk, p, d, gen)
}

// TrivialZero returns a trivial (noiseless) RGSW encryption of zero:
// both halves of every row are left at zero, with no secret-key
// dependence. Used only by debug/test harnesses that need predictable
// ciphertexts (spec section 4.5: "may in debug mode be trivially
// encrypted"; grounded on original_source/src/rlwe.rs's commented-out
// trivial_encrypt_constant_wrapping_ggsw path).
func TrivialZero(r *ring.Ring, d Decomposer) *Ciphertext {
	return NewCiphertext(r, d)
}

// TrivialConstant returns a trivial (noiseless) RGSW encryption of the
// constant x: the plaintext scaling is added directly with no masking
// randomness or noise, for use in debug/test harnesses only.
func TrivialConstant(r *ring.Ring, x ring.Scalar, d Decomposer) *Ciphertext {
	ct := TrivialZero(r, d)
	p := r.NewPoly()
	p[0] = x
	scaled := r.NewPoly()
	for level := 0; level < d.Levels; level++ {
		delta := d.Delta(level)
		r.MulScalar(p, delta, scaled)
		maskRow := ct.Rows[2*level]
		r.Add(maskRow.Value[0], scaled, maskRow.Value[0])
		bodyRow := ct.Rows[2*level+1]
		r.Add(bodyRow.Value[1], scaled, bodyRow.Value[1])
	}
	return ct
}
