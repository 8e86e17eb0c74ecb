package rlwe

import "github.com/sergirovira/mfhe-brk/ring"

// EncryptSK encrypts the plaintext polynomial p(X) under secret key sk,
// secret-key form (spec section 4.3): samples uniform A, Gaussian e, sets
// B = A·s + Δ·m + e.
func EncryptSK(r *ring.Ring, sk *SecretKey, p ring.Poly, gen *ring.Generators) *Ciphertext {
	ct := NewCiphertext(r)
	gen.Uniform.Read(ct.Value[0])
	as := r.NewPoly()
	multiplyPoly(r, ct.Value[0], sk.Value, as)
	e := gen.Noise.ReadNew()
	r.Add(as, p, ct.Value[1])
	r.Add(ct.Value[1], e, ct.Value[1])
	return ct
}

// encryptPKRaw encrypts the zero polynomial under public key pk by
// summing the masks and bodies whose selector bit is set (this helper
// produces the plain public-key-form ciphertext used by EncryptPK below).
func encryptPKRaw(r *ring.Ring, pk *PublicKey, selector []bool) *Ciphertext {
	ct := NewCiphertext(r)
	for i, sel := range pk.Mask {
		if !selector[i] {
			continue
		}
		r.Add(ct.Value[0], sel, ct.Value[0])
		r.Add(ct.Value[1], pk.Body[i], ct.Value[1])
	}
	return ct
}

// EncryptPK encrypts plaintext polynomial p under the shared-mask public
// key pk (spec section 3): samples a fresh random binary selector
// r ∈ {0,1}^m from the uniform generator, sums the selected masks and
// bodies, and adds p to the body. The selector is sampled fresh per call.
func EncryptPK(r *ring.Ring, pk *PublicKey, p ring.Poly, gen *ring.Generators) *Ciphertext {
	selector := sampleSelector(len(pk.Mask), gen.Uniform)
	ct := encryptPKRaw(r, pk, selector)
	r.Add(ct.Value[1], p, ct.Value[1])
	return ct
}

func sampleSelector(m int, uniform *ring.UniformSampler) []bool {
	selector := make([]bool, m)
	nBytes := (m + 7) / 8
	buf := make([]byte, nBytes)
	// Reuse the uniform sampler's underlying PRNG indirectly by drawing a
	// throwaway polynomial and taking its low bits: keeps a single
	// generator surface per spec section 6 rather than introducing a
	// fourth stream just for selector bits.
	dummy := uniform.ReadNew()
	for i := 0; i < nBytes && i < len(dummy); i++ {
		buf[i] = byte(dummy[i])
	}
	for i := 0; i < m; i++ {
		selector[i] = (buf[i/8]>>uint(i%8))&1 == 1
	}
	return selector
}
