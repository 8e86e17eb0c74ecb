// Package rlwe implements RLWE ciphertexts over the negacyclic ring
// Z_{2^64}[X]/(X^N+1): secret and shared-mask public keys, encryption,
// decryption, and the noise-measurement helper (spec sections 3, 4.3).
package rlwe

import "github.com/sergirovira/mfhe-brk/ring"

// SecretKey is a binary-coefficient polynomial in R_q (spec section 3).
type SecretKey struct {
	Value ring.Poly
}

// NewSecretKey samples a fresh binary RLWE secret key over ring r using
// the secret-material generator.
func NewSecretKey(r *ring.Ring, secret *ring.BinarySampler) *SecretKey {
	return &SecretKey{Value: secret.ReadNew()}
}

// ZeroSecretKey returns an all-zero secret key, used as the accumulator for a
// joint/global secret assembled from per-party shares (spec section 3,
// "a distinguished global secret is the sum of k per-party binary keys").
func ZeroSecretKey(r *ring.Ring) *SecretKey {
	return &SecretKey{Value: r.NewPoly()}
}

// Add accumulates other's coefficients into sk in place: used to build
// the joint secret key as the sum of per-party shares.
func (sk *SecretKey) Add(r *ring.Ring, other *SecretKey) {
	r.Add(sk.Value, other.Value, sk.Value)
}

// PublicKey is the shared-mask multiparty public key of spec section 3: a
// length-m list of RLWE ciphertexts where every party shares an identical
// random mask component a_i, and the body b_i is the sum of per-party
// encryptions of zero under that shared mask.
type PublicKey struct {
	Mask []ring.Poly // shared across all parties, length m
	Body []ring.Poly // aggregated sum of per-party zero-encryptions, length m
}

// NewPublicKeyMask samples the shared random mask component (the common
// reference polynomial list) from the uniform generator. Every party
// calls this with the same CRS-derived uniform sampler to agree on Mask.
func NewPublicKeyMask(r *ring.Ring, uniform *ring.UniformSampler, m int) *PublicKey {
	pk := &PublicKey{
		Mask: make([]ring.Poly, m),
		Body: make([]ring.Poly, m),
	}
	for i := 0; i < m; i++ {
		pk.Mask[i] = uniform.ReadNew()
		pk.Body[i] = r.NewPoly()
	}
	return pk
}

// AddShare accumulates one party's encryption-of-zero share
// (a_i*s_party + e_party) onto the aggregate body, under the shared mask
// already present in pk.Mask (grounded on drlwe/keygen_cpk.go's
// GenShare/AggregateShares two-step CKG protocol, generalized from a
// single aggregate key to the per-party body list of spec section 3).
func (pk *PublicKey) AddShare(r *ring.Ring, sk *SecretKey, noise *ring.GaussianSampler) {
	tmp := r.NewPoly()
	for i := range pk.Mask {
		noise.Read(tmp)
		maskXsk := r.NewPoly()
		multiplyPoly(r, pk.Mask[i], sk.Value, maskXsk)
		r.Add(maskXsk, tmp, maskXsk)
		r.Add(pk.Body[i], maskXsk, pk.Body[i])
	}
}

// multiplyPoly computes out = a * b in R_q via negacyclic schoolbook
// convolution. Used by secret-key encryption, decryption and public-key
// share generation; not on the blind-rotation path, which uses the
// Fourier engine instead.
func multiplyPoly(r *ring.Ring, a, b, out ring.Poly) {
	N := r.N
	acc := make(ring.Poly, N)
	for i := 0; i < N; i++ {
		if a[i] == 0 {
			continue
		}
		for j := 0; j < N; j++ {
			if b[j] == 0 {
				continue
			}
			deg := i + j
			v := a[i] * b[j]
			if deg >= N {
				acc[deg-N] -= v
			} else {
				acc[deg] += v
			}
		}
	}
	copy(out, acc)
}
