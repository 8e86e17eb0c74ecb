package lwe

import "github.com/sergirovira/mfhe-brk/ring"

// EncryptSK encrypts the already-encoded plaintext scalar p (i.e. Δ·m)
// under secret key sk: samples a uniform mask a, Gaussian noise e, and
// sets b = ⟨a, s⟩ + p + e (spec section 3, LWE semantics).
func EncryptSK(sk *SecretKey, p ring.Scalar, gen *ring.Generators) *Ciphertext {
	n := sk.Dimension()
	ct := NewCiphertext(n)
	gen.Uniform.ReadScalars(ct.Mask)
	var as ring.Scalar
	for i := 0; i < n; i++ {
		as += ct.Mask[i] * sk.Value[i]
	}
	ct.Body = as + p + gen.Noise.ReadOne()
	return ct
}

// Decrypt computes b − ⟨a, s⟩ = Δ·m + e; the caller decodes.
func Decrypt(sk *SecretKey, ct *Ciphertext) ring.Scalar {
	var as ring.Scalar
	for i := range ct.Mask {
		as += ct.Mask[i] * sk.Value[i]
	}
	return ct.Body - as
}
