package rlwe

import "github.com/sergirovira/mfhe-brk/ring"

// Decrypt computes B - A·s = Δ·m + e into out (spec section 4.3). The
// caller is responsible for decoding the result with the appropriate
// encoder (binary, ternary, gate, gadget).
func Decrypt(r *ring.Ring, sk *SecretKey, ct *Ciphertext, out ring.Poly) {
	as := r.NewPoly()
	multiplyPoly(r, ct.Value[0], sk.Value, as)
	r.Sub(ct.Value[1], as, out)
}

// DecryptNew is Decrypt returning a freshly allocated polynomial.
func DecryptNew(r *ring.Ring, sk *SecretKey, ct *Ciphertext) ring.Poly {
	out := r.NewPoly()
	Decrypt(r, sk, ct, out)
	return out
}
